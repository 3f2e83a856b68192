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
	"errors"
	"fmt"
)

// RowType is the discriminator of a landscape row in its JSON form.
type RowType string

const (
	// RowTypeStack is a vertical pile of items.
	RowTypeStack RowType = "stack"
	// RowTypeGrid is an auto-flow grid of items.
	RowTypeGrid RowType = "grid"
	// RowTypeConnection is two items joined by a directed edge.
	RowTypeConnection RowType = "connection"
	// RowTypeSingle is one item spanning the full width.
	RowTypeSingle RowType = "single"
	// RowTypeColumns is a set of named sub-groups of items.
	RowTypeColumns RowType = "columns"
)

// LandscapeRow is one row of a landscape section. The set of implementations is closed
// to this package.
type LandscapeRow interface {
	// Type returns the JSON discriminator of the row.
	Type() RowType
	// FlattenItems returns the items displayed by the row, in display order.
	FlattenItems() []PlanItem

	isLandscapeRow()
	clone() LandscapeRow
}

// StackRow piles its items vertically.
type StackRow struct {
	Items []PlanItem
}

// GridRow flows its items into a grid.
type GridRow struct {
	Items []PlanItem
}

// ConnectionRow draws a directed edge between two items.
type ConnectionRow struct {
	From PlanItem
	To   PlanItem
}

// SingleRow is one item spanning the row.
type SingleRow struct {
	Label string
	Color string
}

// LandscapeColumn is one named sub-group of a ColumnsRow.
type LandscapeColumn struct {
	Title string     `json:"title,omitempty"`
	Items []PlanItem `json:"items"`
}

// ColumnsRow lays out several sub-groups side by side.
type ColumnsRow struct {
	Columns []LandscapeColumn
}

var (
	errUnknownRowType = errors.New("unknown landscape row type")
	errMissingRowType = errors.New("landscape row has no type")
)

// FlattenRowItems returns the items of any landscape row. A nil row has no items.
func FlattenRowItems(row LandscapeRow) []PlanItem {
	if row == nil {
		return []PlanItem{}
	}
	return row.FlattenItems()
}

func (StackRow) Type() RowType      { return RowTypeStack }
func (GridRow) Type() RowType       { return RowTypeGrid }
func (ConnectionRow) Type() RowType { return RowTypeConnection }
func (SingleRow) Type() RowType     { return RowTypeSingle }
func (ColumnsRow) Type() RowType    { return RowTypeColumns }

func (StackRow) isLandscapeRow()      {}
func (GridRow) isLandscapeRow()       {}
func (ConnectionRow) isLandscapeRow() {}
func (SingleRow) isLandscapeRow()     {}
func (ColumnsRow) isLandscapeRow()    {}

// FlattenItems returns a copy of the stacked items.
func (r StackRow) FlattenItems() []PlanItem {
	return cloneItems(r.Items)
}

// FlattenItems returns a copy of the grid items.
func (r GridRow) FlattenItems() []PlanItem {
	return cloneItems(r.Items)
}

// FlattenItems returns both endpoints, source first.
func (r ConnectionRow) FlattenItems() []PlanItem {
	return []PlanItem{r.From, r.To}
}

// FlattenItems returns the single item built from the row label and color.
func (r SingleRow) FlattenItems() []PlanItem {
	return []PlanItem{{Label: r.Label, Color: r.Color}}
}

// FlattenItems concatenates the items of every sub-group in declaration order.
func (r ColumnsRow) FlattenItems() []PlanItem {
	items := []PlanItem{}
	for _, column := range r.Columns {
		items = append(items, column.Items...)
	}
	return items
}

func (r StackRow) clone() LandscapeRow      { return StackRow{Items: cloneItems(r.Items)} }
func (r GridRow) clone() LandscapeRow       { return GridRow{Items: cloneItems(r.Items)} }
func (r ConnectionRow) clone() LandscapeRow { return r }
func (r SingleRow) clone() LandscapeRow     { return r }

func (r ColumnsRow) clone() LandscapeRow {
	columns := make([]LandscapeColumn, 0, len(r.Columns))
	for _, column := range r.Columns {
		columns = append(columns, LandscapeColumn{Title: column.Title, Items: cloneItems(column.Items)})
	}
	return ColumnsRow{Columns: columns}
}

type itemsRowJSON struct {
	Type  RowType    `json:"type"`
	Items []PlanItem `json:"items"`
}

type connectionRowJSON struct {
	Type RowType  `json:"type"`
	From PlanItem `json:"from"`
	To   PlanItem `json:"to"`
}

type singleRowJSON struct {
	Type  RowType `json:"type"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
}

type columnsRowJSON struct {
	Type    RowType           `json:"type"`
	Columns []LandscapeColumn `json:"columns"`
}

// MarshalJSON encodes the row with its "stack" discriminator.
func (r StackRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemsRowJSON{Type: RowTypeStack, Items: cloneItems(r.Items)})
}

// MarshalJSON encodes the row with its "grid" discriminator.
func (r GridRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemsRowJSON{Type: RowTypeGrid, Items: cloneItems(r.Items)})
}

// MarshalJSON encodes the row with its "connection" discriminator.
func (r ConnectionRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(connectionRowJSON{Type: RowTypeConnection, From: r.From, To: r.To})
}

// MarshalJSON encodes the row with its "single" discriminator.
func (r SingleRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(singleRowJSON{Type: RowTypeSingle, Label: r.Label, Color: r.Color})
}

// MarshalJSON encodes the row with its "columns" discriminator.
func (r ColumnsRow) MarshalJSON() ([]byte, error) {
	columns := r.Columns
	if columns == nil {
		columns = []LandscapeColumn{}
	}
	return json.Marshal(columnsRowJSON{Type: RowTypeColumns, Columns: columns})
}

// DecodeRow decodes one landscape row, selecting the variant from its "type" field.
func DecodeRow(data []byte) (LandscapeRow, error) {
	var head struct {
		Type RowType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("failed to decode landscape row: %w", err)
	}

	switch head.Type {
	case RowTypeStack, RowTypeGrid:
		var row itemsRowJSON
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("failed to decode %s row: %w", head.Type, err)
		}
		if head.Type == RowTypeStack {
			return StackRow{Items: cloneItems(row.Items)}, nil
		}
		return GridRow{Items: cloneItems(row.Items)}, nil
	case RowTypeConnection:
		var row connectionRowJSON
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("failed to decode connection row: %w", err)
		}
		return ConnectionRow{From: row.From, To: row.To}, nil
	case RowTypeSingle:
		var row singleRowJSON
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("failed to decode single row: %w", err)
		}
		return SingleRow{Label: row.Label, Color: row.Color}, nil
	case RowTypeColumns:
		var row columnsRowJSON
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, fmt.Errorf("failed to decode columns row: %w", err)
		}
		return ColumnsRow{Columns: row.Columns}, nil
	case "":
		return nil, errMissingRowType
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownRowType, head.Type)
	}
}

// UnmarshalJSON decodes a section, rejecting rows with an unknown discriminator.
func (s *LandscapeSection) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title string            `json:"title"`
		Rows  []json.RawMessage `json:"rows"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rows := make([]LandscapeRow, 0, len(raw.Rows))
	for i, rowData := range raw.Rows {
		row, err := DecodeRow(rowData)
		if err != nil {
			return fmt.Errorf("section %q row %d: %w", raw.Title, i, err)
		}
		rows = append(rows, row)
	}

	s.Title = raw.Title
	s.Rows = rows
	return nil
}

// MarshalJSON encodes a section, writing an empty row list rather than null.
func (s LandscapeSection) MarshalJSON() ([]byte, error) {
	rows := s.Rows
	if rows == nil {
		rows = []LandscapeRow{}
	}
	return json.Marshal(struct {
		Title string         `json:"title"`
		Rows  []LandscapeRow `json:"rows"`
	}{Title: s.Title, Rows: rows})
}
