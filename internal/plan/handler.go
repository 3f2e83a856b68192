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
	"net/http"
	"time"

	"github.com/vtomdoc/vtomdoc/internal/export"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
	sysutils "github.com/vtomdoc/vtomdoc/internal/system/utils"
)

const handlerLoggerComponentName = "PlanHandler"

// TopologyUploadName is recorded as the file name of topologies uploaded as JSON.
const TopologyUploadName = "topology.json"

// ApplicationDetailResponse is the detail of one application with its documentation state.
type ApplicationDetailResponse struct {
	AppDetail
	Documented bool `json:"documented"`
}

// ApplicationListResponse is the result of an application search.
type ApplicationListResponse struct {
	Query        string             `json:"query"`
	TotalResults int                `json:"totalResults"`
	Applications []ApplicationEntry `json:"applications"`
}

// JobLinkListResponse lists the job level links of one application.
type JobLinkListResponse struct {
	Application string           `json:"application"`
	Links       []export.JobLink `json:"links"`
}

// planHandler is the handler for plan operations.
type planHandler struct {
	planService PlanServiceInterface
}

// newPlanHandler creates a new instance of planHandler.
func newPlanHandler(planService PlanServiceInterface) *planHandler {
	return &planHandler{
		planService: planService,
	}
}

// HandlePlanGetRequest handles the get plan request.
func (ph *planHandler) HandlePlanGetRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSONResponse(w, http.StatusOK, ph.planService.GetPlan())
}

// HandleGraphGetRequest handles the get graph request.
func (ph *planHandler) HandleGraphGetRequest(w http.ResponseWriter, r *http.Request) {
	sysutils.WriteJSONResponse(w, http.StatusOK, ph.planService.GetGraph())
}

// HandleApplicationSearchRequest handles the application search request.
func (ph *planHandler) HandleApplicationSearchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	query := r.URL.Query().Get("q")
	applications, svcErr := ph.planService.SearchApplications(query)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, ApplicationListResponse{
		Query:        query,
		TotalResults: len(applications),
		Applications: applications,
	})
	logger.Debug("Searched applications", log.Int("totalResults", len(applications)))
}

// HandleDetailGetRequest handles the get application detail request.
func (ph *planHandler) HandleDetailGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	detail, documented, svcErr := ph.planService.GetAppDetail(r.PathValue("name"))
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, ApplicationDetailResponse{
		AppDetail:  *detail,
		Documented: documented,
	})
}

// HandleJobLinksGetRequest handles the get application job links request.
func (ph *planHandler) HandleJobLinksGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	name := r.PathValue("name")
	links, svcErr := ph.planService.GetJobLinks(name)
	if svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, JobLinkListResponse{Application: name, Links: links})
}

// HandleTopologyPutRequest handles the upload of a converted topology, such as the output of
// planctl convert. It is applied the same way as an imported export, without a graph.
func (ph *planHandler) HandleTopologyPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	topology, err := sysutils.DecodeJSONBody[Topology](r)
	if err != nil {
		sysutils.WriteJSONError(w, ErrorInvalidTopologyPayload.Code, ErrorInvalidTopologyPayload.Error,
			err.Error(), http.StatusBadRequest, nil)
		return
	}

	record := ImportRecord{
		ID:        sysutils.GenerateUUID(),
		FileName:  TopologyUploadName,
		AppliedAt: time.Now().UTC(),
	}
	if svcErr := ph.planService.ApplyImport(record, *topology, nil); svcErr != nil {
		ph.handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, ph.planService.GetLastImport())
}

// HandleResetRequest handles the reset plan request.
func (ph *planHandler) HandleResetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	ph.planService.Reset()
	logger.Debug("Plan reset requested")
	sysutils.WriteJSONResponse(w, http.StatusOK, ph.planService.GetPlan())
}

// handleError writes a service error using the status mapped from its code.
func (ph *planHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	if !svcErr.IsClientError() {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}

	statusCode := http.StatusBadRequest
	if svcErr.Code == ErrorEmptyTopology.Code {
		statusCode = http.StatusUnprocessableEntity
	}
	sysutils.WriteServiceError(w, svcErr, statusCode)
}
