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

package vtom

import (
	"context"
	"net/http"

	serverconst "github.com/vtomdoc/vtomdoc/internal/system/constants"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
	sysutils "github.com/vtomdoc/vtomdoc/internal/system/utils"
)

const handlerLoggerComponentName = "VTOMProxyHandler"

// statusClientClosedRequest is written when the caller went away before the upstream answered.
const statusClientClosedRequest = 499

// vtomHandler is the handler for scheduler API proxy operations.
type vtomHandler struct {
	vtomService VTOMServiceInterface
}

// newVTOMHandler creates a new instance of vtomHandler.
func newVTOMHandler(vtomService VTOMServiceInterface) *vtomHandler {
	return &vtomHandler{
		vtomService: vtomService,
	}
}

// HandleEnvironmentsRequest handles the list environments request.
func (vh *vtomHandler) HandleEnvironmentsRequest(w http.ResponseWriter, r *http.Request) {
	vh.proxy(w, r, "Failed to fetch scheduler environments",
		func(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError) {
			return vh.vtomService.GetEnvironments(ctx)
		})
}

// HandleApplicationsRequest handles the list environment applications request.
func (vh *vtomHandler) HandleApplicationsRequest(w http.ResponseWriter, r *http.Request) {
	environment := r.PathValue("environment")
	vh.proxy(w, r, "Failed to fetch scheduler applications",
		func(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError) {
			return vh.vtomService.GetApplications(ctx, environment)
		})
}

// HandleUsersRequest handles the list users request.
func (vh *vtomHandler) HandleUsersRequest(w http.ResponseWriter, r *http.Request) {
	vh.proxy(w, r, "Failed to fetch scheduler users",
		func(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError) {
			return vh.vtomService.GetUsers(ctx)
		})
}

// proxy runs one upstream call and writes its answer. Successful bodies are passed through
// untouched; upstream error statuses are wrapped with the given message.
func (vh *vtomHandler) proxy(w http.ResponseWriter, r *http.Request, failure string,
	call func(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError)) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	result, svcErr := call(r.Context())
	if svcErr != nil {
		vh.handleError(w, logger, svcErr)
		return
	}

	if !result.Succeeded() {
		sysutils.WriteJSONResponse(w, result.StatusCode, UpstreamErrorResponse{
			Error:   failure,
			Status:  result.StatusCode,
			Details: string(result.Body),
		})
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(result.StatusCode)
	if _, err := w.Write(result.Body); err != nil {
		logger.Error("Error writing proxied response", log.Error(err))
	}
}

// handleError writes a proxy failure as an {error, message} body.
func (vh *vtomHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	if svcErr.Code == ErrorMissingEnvironment.Code {
		sysutils.WriteServiceError(w, svcErr, http.StatusBadRequest)
		return
	}

	statusCode := http.StatusInternalServerError
	switch svcErr.Code {
	case ErrorUpstreamTimeout.Code:
		statusCode = http.StatusGatewayTimeout
	case ErrorRequestCancelled.Code:
		statusCode = statusClientClosedRequest
	default:
		logger.Error("Scheduler API proxy failed", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}

	sysutils.WriteJSONResponse(w, statusCode, ProxyErrorResponse{
		Error:   svcErr.Error,
		Message: svcErr.ErrorDescription,
	})
}
