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

import "strings"

// asList coerces a value that may be absent, a single element or a list into a list.
func asList(value any) []any {
	switch v := value.(type) {
	case nil:
		return []any{}
	case []any:
		return v
	default:
		return []any{v}
	}
}

// asMap returns the element as a map. An empty element is an empty map.
func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case string:
		if strings.TrimSpace(v) == "" {
			return map[string]any{}, true
		}
	}
	return nil, false
}

// attr returns the named attribute of a node, or def when absent or empty.
func attr(node map[string]any, name, def string) string {
	if value, ok := node[attrPrefix+name].(string); ok && value != "" {
		return value
	}
	return def
}

// hasAttr reports whether the node carries a non-empty attribute.
func hasAttr(node map[string]any, name string) bool {
	return attr(node, name, "") != ""
}

// text returns the character data of an element.
func text(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		if t, ok := v[textKey].(string); ok {
			return t
		}
	}
	return ""
}

// child returns the named child element as a map, if it is one.
func child(node map[string]any, name string) (map[string]any, bool) {
	value, present := node[name]
	if !present {
		return nil, false
	}
	return asMap(value)
}

// leadingInt parses the leading integer of s, returning def when there is none or it is zero.
func leadingInt(s string, def int) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}

	value := 0
	for _, c := range s[digits:end] {
		value = value*10 + int(c-'0')
	}
	if s[0] == '-' {
		value = -value
	}
	if value == 0 {
		return def
	}
	return value
}
