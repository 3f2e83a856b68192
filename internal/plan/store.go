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
	"fmt"
	"strings"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/vtomdoc/vtomdoc/internal/system/log"
	"github.com/vtomdoc/vtomdoc/internal/system/utils"
)

const (
	// PendingDocumentationSummary is the summary of an application with no known detail.
	PendingDocumentationSummary = "Documentation coming soon for this application."

	sectionLabelSeparator = " • "
	storeLoggerComponent  = "PlanStore"
)

// ImportRecord describes the import currently applied to the store.
type ImportRecord struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	AppliedAt  time.Time `json:"appliedAt"`
	Columns    int       `json:"columns"`
	Details    int       `json:"details"`
	GraphNodes int       `json:"graphNodes"`
}

// Store holds the single active plan payload. Columns and landscape are replaced on import
// while details are merged so applications absent from an import keep their detail.
type Store struct {
	mu         sync.RWMutex
	defaults   PlanData
	current    PlanData
	graph      Graph
	lastImport *ImportRecord
	logger     *log.Logger
}

// NewStore creates a store serving the given defaults until the first import.
func NewStore(defaults PlanData) *Store {
	if defaults.PlanDetails == nil {
		defaults.PlanDetails = map[string]AppDetail{}
	}
	return &Store{
		defaults: defaults.clone(),
		current:  defaults.clone(),
		graph:    Graph{}.clone(),
		logger:   log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponent)),
	}
}

// ApplyImport replaces columns, landscape and graph with the imported ones and merges the
// imported details over the known ones.
func (s *Store) ApplyImport(record ImportRecord, topology Topology, graph *Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	details := cloneDetails(s.current.PlanDetails)
	if err := mergo.Merge(&details, cloneDetails(topology.PlanDetails), mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge application details: %w", err)
	}

	s.current.PlanColumns = cloneColumns(topology.PlanColumns)
	s.current.Landscape = topology.Landscape.clone()
	s.current.PlanDetails = details
	if graph != nil {
		s.graph = graph.clone()
	} else {
		s.graph = Graph{}.clone()
	}

	record.Columns = len(topology.PlanColumns)
	record.Details = len(topology.PlanDetails)
	record.GraphNodes = len(s.graph.Applications)
	s.lastImport = &record

	s.logger.Info("Applied imported plan",
		log.String(log.LoggerKeyImportID, record.ID),
		log.String(log.LoggerKeyFileName, record.FileName),
		log.Int("columns", record.Columns),
		log.Int("details", len(details)))
	return nil
}

// Reset restores the bundled defaults and drops the imported graph.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.defaults.clone()
	s.graph = Graph{}.clone()
	s.lastImport = nil
	s.logger.Info("Plan reset to bundled defaults")
}

// Snapshot returns a copy of the current payload.
func (s *Store) Snapshot() PlanData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.clone()
}

// Graph returns a copy of the graph of the latest import.
func (s *Store) Graph() Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph.clone()
}

// LastImport returns the import currently applied, or nil when serving defaults.
func (s *Store) LastImport() *ImportRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastImport == nil {
		return nil
	}
	record := *s.lastImport
	return &record
}

// AppDetail returns the detail of an application, or a placeholder when none is known.
func (s *Store) AppDetail(label string) (AppDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if detail, ok := s.current.PlanDetails[label]; ok {
		return detail.clone(), true
	}
	return AppDetail{
		Name:       label,
		Summary:    PendingDocumentationSummary,
		Treatments: []Treatment{},
	}, false
}

// Applications lists every non-muted item of the columns and the landscape, tagged with
// where it was found.
func (s *Store) Applications() []ApplicationEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return applicationEntries(s.current)
}

// Search returns the applications whose label contains query, ignoring case and accents.
// An empty query matches every application.
func (s *Store) Search(query string) []ApplicationEntry {
	entries := s.Applications()

	needle := utils.FoldForSearch(query)
	if needle == "" {
		return entries
	}

	matches := make([]ApplicationEntry, 0)
	for _, entry := range entries {
		if strings.Contains(utils.FoldForSearch(entry.Label), needle) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Ready reports whether the store holds a plan to serve.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.current.PlanColumns) > 0 || len(s.current.Landscape.Sections) > 0
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return "PlanStore"
}

func applicationEntries(data PlanData) []ApplicationEntry {
	entries := make([]ApplicationEntry, 0)
	for _, column := range data.PlanColumns {
		entries = appendVisible(entries, column.Items, column.Title)
	}
	for _, section := range data.Landscape.Sections {
		label := data.Landscape.Title + sectionLabelSeparator + section.Title
		for _, row := range section.Rows {
			entries = appendVisible(entries, FlattenRowItems(row), label)
		}
	}
	return entries
}

func appendVisible(entries []ApplicationEntry, items []PlanItem, column string) []ApplicationEntry {
	for _, item := range items {
		if item.Muted {
			continue
		}
		entries = append(entries, ApplicationEntry{PlanItem: item, Column: column})
	}
	return entries
}
