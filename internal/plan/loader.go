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
	"fmt"
	"os"
	"path/filepath"
)

// LoadPlanData reads a plan payload from a JSON file. A relative path is resolved against
// home.
func LoadPlanData(home, path string) (PlanData, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(home, path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return PlanData{}, fmt.Errorf("failed to read plan data file: %w", err)
	}
	return ParsePlanData(content)
}

// ParsePlanData decodes a plan payload. Landscape rows of an unknown type are rejected.
func ParsePlanData(content []byte) (PlanData, error) {
	var data PlanData
	if err := json.Unmarshal(content, &data); err != nil {
		return PlanData{}, fmt.Errorf("failed to decode plan data: %w", err)
	}
	if data.PlanColumns == nil {
		data.PlanColumns = []PlanColumn{}
	}
	if data.PlanDetails == nil {
		data.PlanDetails = map[string]AppDetail{}
	}
	if data.Landscape.Sections == nil {
		data.Landscape.Sections = []LandscapeSection{}
	}
	return data, nil
}
