/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package plan

import (
	"fmt"

	"github.com/vtomdoc/vtomdoc/internal/export"
	"github.com/vtomdoc/vtomdoc/internal/palette"
	"github.com/vtomdoc/vtomdoc/internal/status"
)

const (
	// ImportedLandscapeTitle is the title of a landscape built from an import.
	ImportedLandscapeTitle = "Imported VTOM landscape"
	// StatusSectionTitle is the title of the section grouping applications by status.
	StatusSectionTitle = "Applications by status"
	// ServersSectionTitle is the title of the section listing execution servers.
	ServersSectionTitle = "Servers"
	// HostColor is the color of server items.
	HostColor = "#4A90E2"
	// MissingScript is shown for a treatment whose job carries no script.
	MissingScript = "N/A"
)

// group keeps applications bucketed by key in first-seen key order.
type group struct {
	keys    []string
	buckets map[string][]export.RawApplication
}

func groupBy(apps []export.RawApplication, key func(export.RawApplication) string) group {
	g := group{buckets: make(map[string][]export.RawApplication)}
	for _, app := range apps {
		k := key(app)
		if _, seen := g.buckets[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.buckets[k] = append(g.buckets[k], app)
	}
	return g
}

func familyOf(app export.RawApplication) string {
	if app.Family == "" {
		return export.DefaultFamily
	}
	return app.Family
}

func statusOf(app export.RawApplication) string {
	if app.Status == "" {
		return status.Unknown
	}
	return app.Status
}

func itemFor(app export.RawApplication) PlanItem {
	code := statusOf(app)
	return PlanItem{
		Label: app.Name,
		Color: palette.Normalize(status.ColorFor(code)),
		Muted: status.IsMuted(code),
	}
}

func itemsFor(apps []export.RawApplication) []PlanItem {
	items := make([]PlanItem, 0, len(apps))
	for _, app := range apps {
		items = append(items, itemFor(app))
	}
	return items
}

// BuildColumns groups applications into one column per family, in first-seen order.
func BuildColumns(apps []export.RawApplication) []PlanColumn {
	families := groupBy(apps, familyOf)

	columns := make([]PlanColumn, 0, len(families.keys))
	for i, family := range families.keys {
		columns = append(columns, PlanColumn{
			ID:          fmt.Sprintf("col-%d", i),
			Title:       family,
			Placeholder: "Applications " + family,
			Items:       itemsFor(families.buckets[family]),
		})
	}
	return columns
}

// BuildDetails builds the detail view of every application. A later application with the
// same name replaces the earlier one.
func BuildDetails(apps []export.RawApplication) map[string]AppDetail {
	details := make(map[string]AppDetail, len(apps))
	for _, app := range apps {
		summary := app.Comment
		if summary == "" {
			summary = fmt.Sprintf("Application %s - Mode %s", familyOf(app), app.Mode)
		}

		treatments := make([]Treatment, 0, len(app.Jobs))
		for _, job := range app.Jobs {
			script := job.Script
			if script == "" {
				script = MissingScript
			}
			treatments = append(treatments, Treatment{
				Name:   job.Name,
				Script: script,
				Jobs:   []TreatmentJob{{Label: job.Name}},
			})
		}

		details[app.Name] = AppDetail{
			Name:       app.Name,
			Summary:    summary,
			Treatments: treatments,
		}
	}
	return details
}

// BuildLandscape arranges applications by status, servers, then by family.
func BuildLandscape(apps []export.RawApplication, hosts []export.Host) LandscapePlan {
	sections := make([]LandscapeSection, 0)

	statuses := groupBy(apps, statusOf)
	statusRows := make([]LandscapeRow, 0, len(statuses.keys))
	for _, code := range statuses.keys {
		statusRows = append(statusRows, StackRow{Items: itemsFor(statuses.buckets[code])})
	}
	sections = append(sections, LandscapeSection{Title: StatusSectionTitle, Rows: statusRows})

	if len(hosts) > 0 {
		hostItems := make([]PlanItem, 0, len(hosts))
		for _, host := range hosts {
			hostItems = append(hostItems, PlanItem{Label: host.Name, Color: HostColor})
		}
		sections = append(sections, LandscapeSection{
			Title: ServersSectionTitle,
			Rows:  []LandscapeRow{GridRow{Items: hostItems}},
		})
	}

	families := groupBy(apps, familyOf)
	for _, family := range families.keys {
		members := families.buckets[family]
		if len(members) == 0 {
			continue
		}
		sections = append(sections, LandscapeSection{
			Title: family,
			Rows:  []LandscapeRow{GridRow{Items: itemsFor(members)}},
		})
	}

	return LandscapePlan{Title: ImportedLandscapeTitle, Sections: sections}
}

// Normalize builds the full topology of an import.
func Normalize(apps []export.RawApplication, hosts []export.Host) Topology {
	return Topology{
		PlanColumns: BuildColumns(apps),
		PlanDetails: BuildDetails(apps),
		Landscape:   BuildLandscape(apps, hosts),
	}
}
