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

// Package palette normalizes scheduler display colors into a readable, consistent palette.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	midTone       = 160.0
	blendWeight   = 0.7
	minBrightness = 40.0
	maxBrightness = 220.0
	minChannel    = 30.0
	maxChannel    = 235.0
	maxSaturation = 0.85
)

// softened maps vivid colors commonly used in exports to curated pastel equivalents.
// Keys are uppercase #RRGGBB.
var softened = map[string]string{
	// blues
	"#0000FF": "#7C9FFF",
	"#0000CD": "#93ADFF",
	"#00008B": "#6B8FEE",
	"#000080": "#5B7FDD",
	"#0000AA": "#7A8FEE",
	"#4B68FF": "#7C9FFF",
	// violets
	"#FF00FF": "#C89FFF",
	"#8B008B": "#B388EA",
	"#800080": "#A77FDD",
	"#9400D3": "#B49FEE",
	"#FF00AA": "#E098DD",
	// reds
	"#FF0000": "#FF8888",
	"#DC143C": "#FF9999",
	"#8B0000": "#DD7777",
	"#CD5C5C": "#FFAAAA",
	// greens
	"#00FF00": "#88DD99",
	"#00AA00": "#77CC88",
	"#008000": "#66BB77",
	"#32CD32": "#88DD99",
	"#00FF7F": "#88EEAA",
	// yellows and oranges
	"#FFFF00": "#FFEE88",
	"#FFD700": "#FFDD77",
	"#FFA500": "#FFBB66",
	"#FF8C00": "#FFAA55",
	// cyans
	"#00FFFF": "#77DDEE",
	"#00CED1": "#66CCDD",
	"#00AAAA": "#66BBCC",
	// pinks
	"#FF1493": "#FF88BB",
	"#FF69B4": "#FFAACC",
	"#FFB6C1": "#FFCCDD",
}

// Normalize maps a #RRGGBB color (leading # optional, any case) to its display color.
// Curated substitutions win; otherwise overly saturated, dark or bright colors are pulled
// toward a mid tone. Malformed input is returned unchanged.
func Normalize(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}

	canonical := formatHex(r, g, b)
	if replacement, found := softened[canonical]; found {
		return replacement
	}
	if !needsCorrection(r, g, b) {
		return canonical
	}

	return correct(r, g, b)
}

func parseHex(hex string) (float64, float64, float64, bool) {
	raw := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(raw) != 6 {
		return 0, 0, 0, false
	}
	value, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return float64(value >> 16 & 0xFF), float64(value >> 8 & 0xFF), float64(value & 0xFF), true
}

func formatHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", int(r), int(g), int(b))
}

func brightness(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

func saturation(r, g, b float64) float64 {
	high := math.Max(r, math.Max(g, b))
	if high == 0 {
		return 0
	}
	low := math.Min(r, math.Min(g, b))
	return (high - low) / high
}

func needsCorrection(r, g, b float64) bool {
	y := brightness(r, g, b)
	return saturation(r, g, b) > maxSaturation || y < minBrightness || y > maxBrightness
}

func correct(r, g, b float64) string {
	channels := []float64{r, g, b}
	for i, c := range channels {
		channels[i] = c*blendWeight + midTone*(1-blendWeight)
	}

	y := brightness(channels[0], channels[1], channels[2])
	shift := 0.0
	switch {
	case y < minBrightness:
		shift = minBrightness - y
	case y > maxBrightness:
		shift = maxBrightness - y
	}

	for i, c := range channels {
		channels[i] = math.Round(math.Min(maxChannel, math.Max(minChannel, c+shift)))
	}
	return formatHex(channels[0], channels[1], channels[2])
}
