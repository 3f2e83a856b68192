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

const (
	propertyBackground = "background"
	propertyWidth      = "width"
	propertyHeight     = "height"
	propertyIcon       = "icon"
	propertyForeground = "foreground"
	propertyFont       = "font"

	trafficLightIcon = "trafficlight_on"

	defaultAppBackground     = "#4b68ff"
	defaultAppWidth          = 220
	defaultTrafficLightWidth = 90
	defaultTrafficHeight     = 40
	defaultCommentWidth      = 200
	defaultCommentHeight     = 40
	defaultForeground        = "#000000"
	defaultFont              = "SansSerif#12#false#false"
)

// Properties is the flattened property bag of a graph node.
type Properties map[string]string

// foldProperties folds the Properties.Property key/value pairs of a node into a flat map.
// Later duplicates win.
func foldProperties(node map[string]any) Properties {
	props := Properties{}

	container, ok := child(node, "Properties")
	if !ok {
		return props
	}
	for _, entry := range asList(container["Property"]) {
		property, ok := asMap(entry)
		if !ok {
			continue
		}
		if key := attr(property, "key", ""); key != "" {
			props[key] = attr(property, "value", "")
		}
	}
	return props
}

// String returns the property value, or def when absent or empty.
func (p Properties) String(key, def string) string {
	if value := p[key]; value != "" {
		return value
	}
	return def
}

// Int returns the leading integer of the property value, or def when there is none.
func (p Properties) Int(key string, def int) int {
	return leadingInt(p[key], def)
}

// ParseFontSpec decodes a "<family>#<size>#<bold>#<italic>" descriptor. Missing or
// malformed parts fall back to the default font.
func ParseFontSpec(descriptor string) FontSpec {
	parts := strings.Split(defaultFont, "#")
	for i, part := range strings.SplitN(descriptor, "#", 4) {
		if strings.TrimSpace(part) != "" {
			parts[i] = strings.TrimSpace(part)
		}
	}

	return FontSpec{
		Family: parts[0],
		Size:   leadingInt(parts[1], 12),
		Bold:   strings.EqualFold(parts[2], "true"),
		Italic: strings.EqualFold(parts[3], "true"),
	}
}
