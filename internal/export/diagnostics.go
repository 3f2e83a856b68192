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

	"github.com/vtomdoc/vtomdoc/internal/system/log"
)

// Extraction steps reported in diagnostics.
const (
	StepApplications     = "applications"
	StepLinks            = "links"
	StepJobLinks         = "job_links"
	StepHosts            = "hosts"
	StepTrafficLights    = "traffic_lights"
	StepComments         = "comments"
	StepApplicationNodes = "application_nodes"
)

// Diagnostic records an unexpected shape met while extracting records. The affected
// element is skipped; extraction continues with the rest of the document.
type Diagnostic struct {
	Step    string `json:"step"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (r *Reader) record(step, path, message string) {
	r.logger.Warn("Skipping unexpected export element", log.String("step", step),
		log.String("path", path), log.String("reason", message))
	r.diagnostics = append(r.diagnostics, Diagnostic{Step: step, Path: path, Message: message})
}

// runStep runs one extraction step. A panic inside the step degrades to an empty result.
func runStep[T any](r *Reader, step string, extract func() []T) (result []T) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.record(step, "", fmt.Sprintf("extraction aborted: %v", recovered))
			result = []T{}
		}
	}()

	result = extract()
	if result == nil {
		result = []T{}
	}
	return result
}
