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

// Package status classifies scheduler status codes for display.
package status

const (
	// Waiting is the status of an application waiting for its start conditions.
	Waiting = "W"
	// Ended is the status of an application that completed successfully.
	Ended = "E"
	// Done is the status of an application acknowledged as finished.
	Done = "D"
	// Unknown is the status of an application that has not been scheduled; it is muted.
	Unknown = "U"
	// Held is the status of an application put on hold.
	Held = "O"
	// Running is the status of an application currently executing.
	Running = "R"
)

const (
	defaultIcon  = "❓"
	defaultColor = "#607D8B"
	defaultLabel = "Unrecognized"
)

var icons = map[string]string{
	Ended:   "✅",
	Waiting: "⏳",
	Running: "▶️",
	Unknown: "🔄",
}

var colors = map[string]string{
	Waiting: "#FFA500",
	Ended:   "#4CAF50",
	Done:    "#2196F3",
	Unknown: "#9E9E9E",
	Held:    "#FF9800",
	Running: "#F44336",
}

var labels = map[string]string{
	Waiting: "Waiting",
	Ended:   "Ended",
	Done:    "Done",
	Unknown: "Unknown",
	Held:    "Held",
	Running: "Running",
}

// IconFor returns the pictogram shown next to an application with the given status.
func IconFor(code string) string {
	if icon, ok := icons[code]; ok {
		return icon
	}
	return defaultIcon
}

// ColorFor returns the raw display color for the given status.
func ColorFor(code string) string {
	if color, ok := colors[code]; ok {
		return color
	}
	return defaultColor
}

// IsMuted reports whether items with the given status are rendered greyed out.
func IsMuted(code string) bool {
	return code == Unknown
}

// Label returns a human readable name for the given status.
func Label(code string) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return defaultLabel
}
