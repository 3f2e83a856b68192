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

package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vtomdoc/vtomdoc/internal/export"
	"github.com/vtomdoc/vtomdoc/internal/plan"
	"github.com/vtomdoc/vtomdoc/internal/status"
)

var (
	accent = lipgloss.Color("#4A90E2")
	dim    = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <file>",
		Short: "Print a colored overview of the families and statuses of an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readExport(args[0])
			if err != nil {
				return err
			}
			doc, validation := export.ValidateDocument(content)
			if !validation.Valid {
				return fmt.Errorf("%s: %s", args[0], validation.Error)
			}

			extraction := export.NewReader(doc).ExtractAll()
			renderSummary(cmd.OutOrStdout(), args[0], extraction)
			return nil
		},
	}
}

// renderSummary writes the family columns followed by a per status count.
func renderSummary(w io.Writer, name string, extraction export.Extraction) {
	columns := plan.BuildColumns(extraction.Applications)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s\n%d applications · %d families · %d servers",
		name, len(extraction.Applications), len(columns), len(extraction.Hosts))))
	b.WriteString("\n\n")

	for _, column := range columns {
		b.WriteString(titleStyle.Render(column.Title))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d)", len(column.Items))))
		b.WriteString("\n")
		for _, item := range column.Items {
			b.WriteString("  ")
			b.WriteString(renderItem(item))
			b.WriteString("\n")
		}
	}

	counts := make(map[string]int)
	for _, app := range extraction.Applications {
		code := app.Status
		if code == "" {
			code = status.Unknown
		}
		counts[code]++
	}
	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	if len(codes) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Statuses"))
		b.WriteString("\n")
	}
	for _, code := range codes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(status.ColorFor(code)))
		b.WriteString(fmt.Sprintf("  %s %s %d\n", status.IconFor(code),
			style.Render(status.Label(code)), counts[code]))
	}

	if len(extraction.Diagnostics) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d element(s) skipped while reading the export",
			len(extraction.Diagnostics))))
		b.WriteString("\n")
	}

	_, _ = io.WriteString(w, b.String())
}

func renderItem(item plan.PlanItem) string {
	if item.Muted {
		return dimStyle.Render("○ " + item.Label + " (not scheduled)")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(item.Color)).Render("● " + item.Label)
}
