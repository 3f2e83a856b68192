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
	"encoding/json"

	"github.com/vtomdoc/vtomdoc/internal/export"
)

// PlanItem is one labelled, colored entry of a column or landscape row.
type PlanItem struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Muted bool   `json:"muted,omitempty"`
}

// PlanColumn groups the applications of one family.
type PlanColumn struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Placeholder string     `json:"placeholder"`
	Items       []PlanItem `json:"items"`
}

// TreatmentJob is an entry of the job list shown under a treatment.
type TreatmentJob struct {
	Label string `json:"label"`
}

// Treatment is the display form of one job of an application.
type Treatment struct {
	Name   string         `json:"name"`
	Script string         `json:"script"`
	Jobs   []TreatmentJob `json:"jobs,omitempty"`
}

// AppDetail is the detail view of one application.
type AppDetail struct {
	Name       string      `json:"name"`
	Summary    string      `json:"summary,omitempty"`
	Treatments []Treatment `json:"treatments"`
}

// LandscapeSection is a titled group of landscape rows.
type LandscapeSection struct {
	Title string         `json:"title"`
	Rows  []LandscapeRow `json:"rows"`
}

// LandscapePlan is the row based alternative view of the topology.
type LandscapePlan struct {
	Title    string             `json:"title"`
	Sections []LandscapeSection `json:"sections"`
}

// Topology is the normalized output of one import.
type Topology struct {
	PlanColumns []PlanColumn         `json:"planColumns"`
	PlanDetails map[string]AppDetail `json:"planDetails"`
	Landscape   LandscapePlan        `json:"landscape"`
}

// Graph holds the positioned view of the latest import.
type Graph struct {
	Applications  []export.ApplicationNode `json:"applications"`
	Links         []export.AppLink         `json:"links"`
	JobLinks      []export.JobLink         `json:"jobLinks"`
	TrafficLights []export.TrafficLight    `json:"trafficLights"`
	Comments      []export.Comment         `json:"comments"`
}

// PlanData is the full payload served to the documentation site. Editorial blocks are
// carried through untouched.
type PlanData struct {
	Hero                  json.RawMessage      `json:"hero,omitempty"`
	HomeSections          json.RawMessage      `json:"homeSections,omitempty"`
	DocumentationSections json.RawMessage      `json:"documentationSections,omitempty"`
	QuickAccess           json.RawMessage      `json:"quickAccess,omitempty"`
	PlanColumns           []PlanColumn         `json:"planColumns"`
	PlanDetails           map[string]AppDetail `json:"planDetails"`
	Landscape             LandscapePlan        `json:"landscape"`
}

// ApplicationEntry is a searchable application tagged with the column or section it
// was found in.
type ApplicationEntry struct {
	PlanItem
	Column string `json:"column"`
}

// NewGraph builds the graph view from an extraction.
func NewGraph(extraction export.Extraction) Graph {
	return Graph{
		Applications:  extraction.ApplicationNodes,
		Links:         extraction.Links,
		JobLinks:      extraction.JobLinks,
		TrafficLights: extraction.TrafficLights,
		Comments:      extraction.Comments,
	}
}

func (g Graph) clone() Graph {
	return Graph{
		Applications:  append([]export.ApplicationNode{}, g.Applications...),
		Links:         append([]export.AppLink{}, g.Links...),
		JobLinks:      append([]export.JobLink{}, g.JobLinks...),
		TrafficLights: append([]export.TrafficLight{}, g.TrafficLights...),
		Comments:      append([]export.Comment{}, g.Comments...),
	}
}

func (d PlanData) clone() PlanData {
	return PlanData{
		Hero:                  cloneRaw(d.Hero),
		HomeSections:          cloneRaw(d.HomeSections),
		DocumentationSections: cloneRaw(d.DocumentationSections),
		QuickAccess:           cloneRaw(d.QuickAccess),
		PlanColumns:           cloneColumns(d.PlanColumns),
		PlanDetails:           cloneDetails(d.PlanDetails),
		Landscape:             d.Landscape.clone(),
	}
}

func (l LandscapePlan) clone() LandscapePlan {
	sections := make([]LandscapeSection, 0, len(l.Sections))
	for _, section := range l.Sections {
		rows := make([]LandscapeRow, 0, len(section.Rows))
		for _, row := range section.Rows {
			if row != nil {
				rows = append(rows, row.clone())
			}
		}
		sections = append(sections, LandscapeSection{Title: section.Title, Rows: rows})
	}
	return LandscapePlan{Title: l.Title, Sections: sections}
}

func (a AppDetail) clone() AppDetail {
	treatments := make([]Treatment, 0, len(a.Treatments))
	for _, treatment := range a.Treatments {
		treatment.Jobs = append([]TreatmentJob(nil), treatment.Jobs...)
		treatments = append(treatments, treatment)
	}
	a.Treatments = treatments
	return a
}

func cloneColumns(columns []PlanColumn) []PlanColumn {
	cloned := make([]PlanColumn, 0, len(columns))
	for _, column := range columns {
		column.Items = cloneItems(column.Items)
		cloned = append(cloned, column)
	}
	return cloned
}

func cloneDetails(details map[string]AppDetail) map[string]AppDetail {
	cloned := make(map[string]AppDetail, len(details))
	for name, detail := range details {
		cloned[name] = detail.clone()
	}
	return cloned
}

func cloneItems(items []PlanItem) []PlanItem {
	return append([]PlanItem{}, items...)
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage{}, raw...)
}
