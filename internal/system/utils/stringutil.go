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

package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenerateUUID generates a random version 4 UUID string.
func GenerateUUID() string {
	return uuid.NewString()
}

// SanitizeString trims the input and drops control characters so it is safe to log or echo.
func SanitizeString(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(input))
}

// FoldForSearch returns an accent-stripped, case-folded form of s for substring matching.
func FoldForSearch(s string) string {
	// Transformers keep internal state, so a fresh chain is built per call.
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(stripAccents, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(strings.TrimSpace(stripped))
}

// SplitLines returns at most limit leading lines of content, without line terminators.
func SplitLines(content string, limit int) []string {
	if content == "" || limit <= 0 {
		return []string{}
	}

	lines := strings.SplitN(content, "\n", limit+1)
	if len(lines) > limit {
		lines = lines[:limit]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
