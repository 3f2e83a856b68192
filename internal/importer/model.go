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

package importer

import (
	"io"

	"github.com/vtomdoc/vtomdoc/internal/export"
	"github.com/vtomdoc/vtomdoc/internal/plan"
)

// ImportFile is an uploaded export. Size is the size declared by the client.
type ImportFile struct {
	Name    string
	Size    int64
	Content io.Reader
}

// ImportCounts summarizes what an export contained.
type ImportCounts struct {
	Applications  int `json:"applications"`
	Jobs          int `json:"jobs"`
	Columns       int `json:"columns"`
	Hosts         int `json:"hosts"`
	Links         int `json:"links"`
	JobLinks      int `json:"jobLinks"`
	TrafficLights int `json:"trafficLights"`
	Comments      int `json:"comments"`
}

// TransformResult is the normalized form of one export.
type TransformResult struct {
	Topology    plan.Topology       `json:"topology"`
	Graph       plan.Graph          `json:"graph"`
	Counts      ImportCounts        `json:"counts"`
	Diagnostics []export.Diagnostic `json:"diagnostics"`
}

// ImportResult is the outcome of an import applied to the active plan.
type ImportResult struct {
	ImportID string `json:"importId"`
	FileName string `json:"fileName"`
	TransformResult
}

// ValidationReport is the outcome of a validation only pass over an export.
type ValidationReport struct {
	FileName string                     `json:"fileName"`
	Size     int                        `json:"size"`
	Valid    bool                       `json:"valid"`
	Kind     export.ValidationErrorKind `json:"kind,omitempty"`
	Error    string                     `json:"error,omitempty"`
	Preview  []string                   `json:"preview"`
}
