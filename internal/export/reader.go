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

package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/vtomdoc/vtomdoc/internal/palette"
	"github.com/vtomdoc/vtomdoc/internal/status"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
)

const (
	defaultApplicationName = "Unnamed"
	// DefaultFamily is the family assigned to applications that do not declare one.
	DefaultFamily    = "Uncategorized"
	defaultFrequency = "D"
	defaultStatus    = status.Unknown
	defaultMode      = "J"
)

var (
	environmentsPath = jp.MustParseString("$.Domain.Environments.Environment")
	linksPath        = jp.MustParseString("$.Domain.Links.Link")
	hostsPath        = jp.MustParseString("$.Domain..Hosts.Host")
)

// Reader extracts typed records from a Document. Every extraction returns a non-nil
// slice; unexpected shapes are skipped and recorded as diagnostics.
type Reader struct {
	doc         *Document
	logger      *log.Logger
	diagnostics []Diagnostic
}

// NewReader creates a Reader for the given document.
func NewReader(doc *Document) *Reader {
	return &Reader{
		doc:         doc,
		logger:      log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ExportReader")),
		diagnostics: []Diagnostic{},
	}
}

// Diagnostics returns the diagnostics recorded so far.
func (r *Reader) Diagnostics() []Diagnostic {
	return append([]Diagnostic{}, r.diagnostics...)
}

// elements returns the map elements found at the given path, flattening single elements
// and lists alike.
func (r *Reader) elements(step, name string, path jp.Expr) []map[string]any {
	elements := []map[string]any{}
	for _, found := range path.Get(r.doc.root) {
		for i, item := range asList(found) {
			element, ok := asMap(item)
			if !ok {
				r.record(step, fmt.Sprintf("%s[%d]", name, i), fmt.Sprintf("expected an element, got %T", item))
				continue
			}
			elements = append(elements, element)
		}
	}
	return elements
}

// children returns the repeated child elements container.name of a node.
func (r *Reader) children(step, path string, node map[string]any, container, name string) []map[string]any {
	elements := []map[string]any{}

	value, present := node[container]
	if !present {
		return elements
	}
	parent, ok := asMap(value)
	if !ok {
		r.record(step, path+"."+container, fmt.Sprintf("expected an element, got %T", value))
		return elements
	}

	for i, item := range asList(parent[name]) {
		element, ok := asMap(item)
		if !ok {
			r.record(step, fmt.Sprintf("%s.%s.%s[%d]", path, container, name, i),
				fmt.Sprintf("expected an element, got %T", item))
			continue
		}
		elements = append(elements, element)
	}
	return elements
}

// environments returns the environment elements of the domain.
func (r *Reader) environments(step string) []map[string]any {
	return r.elements(step, "Domain.Environments.Environment", environmentsPath)
}

// applicationElements returns every application element with its diagnostic path.
func (r *Reader) applicationElements(step string) ([]map[string]any, []string) {
	apps := []map[string]any{}
	paths := []string{}
	for i, env := range r.environments(step) {
		envPath := fmt.Sprintf("Domain.Environments.Environment[%d]", i)
		for j, app := range r.children(step, envPath, env, "Applications", "Application") {
			apps = append(apps, app)
			paths = append(paths, fmt.Sprintf("%s.Applications.Application[%d]", envPath, j))
		}
	}
	return apps, paths
}

// Applications returns every application of every environment, in source order.
func (r *Reader) Applications() []RawApplication {
	return runStep(r, StepApplications, func() []RawApplication {
		elements, paths := r.applicationElements(StepApplications)

		apps := make([]RawApplication, 0, len(elements))
		for i, element := range elements {
			apps = append(apps, RawApplication{
				Name:      attr(element, "name", defaultApplicationName),
				Family:    attr(element, "family", DefaultFamily),
				Comment:   attr(element, "comment", ""),
				Frequency: attr(element, "frequency", defaultFrequency),
				Status:    attr(element, "status", defaultStatus),
				Mode:      attr(element, "mode", defaultMode),
				Jobs:      r.jobs(paths[i], element),
			})
		}
		return apps
	})
}

func (r *Reader) jobs(appPath string, app map[string]any) []RawJob {
	elements := r.children(StepApplications, appPath, app, "Jobs", "Job")

	jobs := make([]RawJob, 0, len(elements))
	for _, element := range elements {
		jobs = append(jobs, RawJob{
			Name:       attr(element, "name", ""),
			Comment:    attr(element, "comment", ""),
			Script:     scriptCommand(element),
			HostsGroup: attr(element, "hostsGroup", ""),
			User:       attr(element, "user", ""),
			Status:     attr(element, "status", defaultStatus),
		})
	}
	return jobs
}

// scriptCommand returns the trimmed Script/Command text of a job.
func scriptCommand(job map[string]any) string {
	script, ok := child(job, "Script")
	if !ok {
		return ""
	}
	for _, command := range asList(script["Command"]) {
		if value := strings.TrimSpace(text(command)); value != "" {
			return value
		}
	}
	return ""
}

// Hosts returns every host declared anywhere under the domain.
func (r *Reader) Hosts() []Host {
	return runStep(r, StepHosts, func() []Host {
		elements := r.elements(StepHosts, "Hosts.Host", hostsPath)

		hosts := make([]Host, 0, len(elements))
		for _, element := range elements {
			hosts = append(hosts, Host{
				Name:     attr(element, "name", ""),
				Comment:  attr(element, "comment", ""),
				Hostname: attr(element, "hostname", ""),
				OS:       attr(element, "os", ""),
			})
		}
		return hosts
	})
}

// ApplicationNodes returns the applications carrying a graph position.
func (r *Reader) ApplicationNodes() []ApplicationNode {
	return runStep(r, StepApplicationNodes, func() []ApplicationNode {
		elements, paths := r.applicationElements(StepApplicationNodes)

		nodes := []ApplicationNode{}
		for i, element := range elements {
			node, ok := child(element, "Node")
			if !ok || !hasAttr(node, "x") || !hasAttr(node, "y") {
				continue
			}

			x, y, ok := position(node)
			if !ok {
				r.record(StepApplicationNodes, paths[i]+".Node", "non numeric coordinates")
				continue
			}

			props := foldProperties(node)
			appStatus := attr(element, "status", "")
			nodes = append(nodes, ApplicationNode{
				Name:         attr(element, "name", defaultApplicationName),
				X:            x,
				Y:            y,
				Width:        props.Int(propertyWidth, defaultAppWidth),
				Background:   palette.Normalize(props.String(propertyBackground, defaultAppBackground)),
				Family:       attr(element, "family", ""),
				Status:       appStatus,
				StatusIcon:   status.IconFor(appStatus),
				Comment:      attr(element, "comment", ""),
				CycleEnabled: attr(element, "cycleEnabled", ""),
				Cycle:        attr(element, "cycle", ""),
				JobsCount:    len(r.children(StepApplicationNodes, paths[i], element, "Jobs", "Job")),
			})
		}
		return nodes
	})
}

// position returns the integer coordinates of a positioned node.
func position(node map[string]any) (int, int, bool) {
	x, errX := strconv.Atoi(strings.TrimSpace(attr(node, "x", "")))
	y, errY := strconv.Atoi(strings.TrimSpace(attr(node, "y", "")))
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}

// Extraction bundles every record collection read from one document.
type Extraction struct {
	Applications     []RawApplication  `json:"applications"`
	Hosts            []Host            `json:"hosts"`
	Links            []AppLink         `json:"links"`
	JobLinks         []JobLink         `json:"jobLinks"`
	TrafficLights    []TrafficLight    `json:"trafficLights"`
	Comments         []Comment         `json:"comments"`
	ApplicationNodes []ApplicationNode `json:"applicationNodes"`
	Diagnostics      []Diagnostic      `json:"diagnostics"`
}

// ExtractAll runs every extraction step against the document.
func (r *Reader) ExtractAll() Extraction {
	extraction := Extraction{
		Applications:     r.Applications(),
		Hosts:            r.Hosts(),
		Links:            r.Links(),
		JobLinks:         r.JobLinks(),
		TrafficLights:    r.TrafficLights(),
		Comments:         r.Comments(),
		ApplicationNodes: r.ApplicationNodes(),
	}
	extraction.Diagnostics = r.Diagnostics()
	return extraction
}
