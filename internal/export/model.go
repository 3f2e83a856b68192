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

// RawApplication is one application read from the export, before normalization.
type RawApplication struct {
	Name      string   `json:"name"`
	Family    string   `json:"family"`
	Comment   string   `json:"comment,omitempty"`
	Frequency string   `json:"frequency"`
	Status    string   `json:"status"`
	Mode      string   `json:"mode"`
	Jobs      []RawJob `json:"jobs"`
}

// RawJob is one processing step of an application, in source order.
type RawJob struct {
	Name       string `json:"name"`
	Comment    string `json:"comment,omitempty"`
	Script     string `json:"script"`
	HostsGroup string `json:"hostsGroup,omitempty"`
	User       string `json:"user,omitempty"`
	Status     string `json:"status"`
}

// AppLink is a dependency between two different applications.
type AppLink struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// JobLink is a dependency between two jobs of the same application.
type JobLink struct {
	Application string `json:"application"`
	From        string `json:"from"`
	To          string `json:"to"`
	Type        string `json:"type"`
}

// Host is an execution server declared in the export.
type Host struct {
	Name     string `json:"name"`
	Comment  string `json:"comment,omitempty"`
	Hostname string `json:"hostname"`
	OS       string `json:"os,omitempty"`
}

// TrafficLight is a checkpoint marker drawn on the graph.
type TrafficLight struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Label  string `json:"label"`
}

// FontSpec is the decoded form of a "<family>#<size>#<bold>#<italic>" font descriptor.
type FontSpec struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Bold   bool   `json:"bold"`
	Italic bool   `json:"italic"`
}

// Comment is a free text annotation drawn on the graph.
type Comment struct {
	X          int      `json:"x"`
	Y          int      `json:"y"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Label      string   `json:"label"`
	Foreground string   `json:"foreground"`
	Font       FontSpec `json:"font"`
}

// ApplicationNode is an application positioned on the graph view.
type ApplicationNode struct {
	Name         string `json:"name"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Width        int    `json:"width"`
	Background   string `json:"background"`
	Family       string `json:"family,omitempty"`
	Status       string `json:"status,omitempty"`
	StatusIcon   string `json:"statusIcon"`
	Comment      string `json:"comment,omitempty"`
	CycleEnabled string `json:"cycleEnabled,omitempty"`
	Cycle        string `json:"cycle,omitempty"`
	JobsCount    int    `json:"jobsCount"`
}
