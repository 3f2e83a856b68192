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

// Package plan holds the active plan payload and the topology normalizer that builds it
// from scheduler exports.
package plan

import (
	"unicode/utf8"

	"github.com/vtomdoc/vtomdoc/internal/export"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
)

const (
	loggerComponentName = "PlanService"

	// MaxSearchQueryLength bounds the application search query, in characters.
	MaxSearchQueryLength = 200
)

// PlanServiceInterface defines the operations on the active plan.
type PlanServiceInterface interface {
	GetPlan() PlanData
	GetGraph() Graph
	GetLastImport() *ImportRecord
	SearchApplications(query string) ([]ApplicationEntry, *serviceerror.ServiceError)
	GetAppDetail(name string) (*AppDetail, bool, *serviceerror.ServiceError)
	GetJobLinks(name string) ([]export.JobLink, *serviceerror.ServiceError)
	ApplyImport(record ImportRecord, topology Topology, graph *Graph) *serviceerror.ServiceError
	Reset()
	Name() string
	Ready() bool
}

// planService is the default implementation of PlanServiceInterface.
type planService struct {
	store *Store
}

// newPlanService creates a plan service serving the given defaults.
func newPlanService(defaults PlanData) PlanServiceInterface {
	return &planService{store: NewStore(defaults)}
}

// GetPlan returns the active plan payload.
func (ps *planService) GetPlan() PlanData {
	return ps.store.Snapshot()
}

// GetGraph returns the graph view of the latest import.
func (ps *planService) GetGraph() Graph {
	return ps.store.Graph()
}

// GetLastImport returns the import currently applied, if any.
func (ps *planService) GetLastImport() *ImportRecord {
	return ps.store.LastImport()
}

// SearchApplications lists the visible applications matching the query.
func (ps *planService) SearchApplications(query string) ([]ApplicationEntry, *serviceerror.ServiceError) {
	if utf8.RuneCountInString(query) > MaxSearchQueryLength {
		return nil, &ErrorInvalidSearchQuery
	}
	return ps.store.Search(query), nil
}

// GetAppDetail returns the detail of an application and whether it is documented.
func (ps *planService) GetAppDetail(name string) (*AppDetail, bool, *serviceerror.ServiceError) {
	if name == "" {
		return nil, false, &ErrorMissingApplicationName
	}
	detail, found := ps.store.AppDetail(name)
	return &detail, found, nil
}

// GetJobLinks returns the job level links of one application from the latest import.
func (ps *planService) GetJobLinks(name string) ([]export.JobLink, *serviceerror.ServiceError) {
	if name == "" {
		return nil, &ErrorMissingApplicationName
	}

	links := make([]export.JobLink, 0)
	for _, link := range ps.store.Graph().JobLinks {
		if link.Application == name {
			links = append(links, link)
		}
	}
	return links, nil
}

// ApplyImport makes an imported topology the active plan.
func (ps *planService) ApplyImport(record ImportRecord, topology Topology,
	graph *Graph) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if len(topology.PlanColumns) == 0 {
		return &ErrorEmptyTopology
	}
	if err := ps.store.ApplyImport(record, topology, graph); err != nil {
		logger.Error("Failed to apply imported topology", log.String(log.LoggerKeyImportID, record.ID),
			log.Error(err))
		return &ErrorApplyImportFailed
	}
	return nil
}

// Reset restores the bundled plan.
func (ps *planService) Reset() {
	ps.store.Reset()
}

// Name identifies the plan in readiness reports.
func (ps *planService) Name() string {
	return ps.store.Name()
}

// Ready reports whether a plan is available to serve.
func (ps *planService) Ready() bool {
	return ps.store.Ready()
}
