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

import "fmt"

// ValidationErrorKind distinguishes content that is not XML from XML that is not an export.
type ValidationErrorKind string

const (
	// KindStructural marks content that could not be parsed.
	KindStructural ValidationErrorKind = "structural"
	// KindMissingMarker marks well formed content without the export root element.
	KindMissingMarker ValidationErrorKind = "missing_marker"
)

// ValidationResult is the outcome of a pre-flight validation.
type ValidationResult struct {
	Valid bool                `json:"valid"`
	Kind  ValidationErrorKind `json:"kind,omitempty"`
	Error string              `json:"error,omitempty"`
}

// Validate checks that the content parses and carries the export root element.
func Validate(content []byte) ValidationResult {
	_, result := ValidateDocument(content)
	return result
}

// ValidateDocument validates the content and returns the parsed document when valid.
func ValidateDocument(content []byte) (doc *Document, result ValidationResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			doc = nil
			result = ValidationResult{Kind: KindStructural, Error: fmt.Sprintf("invalid XML format: %v", recovered)}
		}
	}()

	parsed, err := Parse(content)
	if err != nil {
		return nil, ValidationResult{Kind: KindStructural, Error: "invalid XML format: " + err.Error()}
	}
	if !parsed.HasMarker() {
		return nil, ValidationResult{
			Kind:  KindMissingMarker,
			Error: fmt.Sprintf("invalid scheduler export: missing <%s> element", markerName),
		}
	}
	return parsed, ValidationResult{Valid: true}
}
