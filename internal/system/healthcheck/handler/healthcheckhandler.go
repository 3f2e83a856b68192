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

// Package handler provides HTTP handlers for managing health check related API requests.
package handler

import (
	"net/http"
	"time"

	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/model"
	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/service"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
	"github.com/vtomdoc/vtomdoc/internal/system/utils"
)

const backendMessage = "Hello from the plan documentation backend!"

// HealthCheckHandler defines the handler for managing health check API requests.
type HealthCheckHandler struct {
	Service service.HealthCheckServiceInterface
	now     func() time.Time
}

// NewHealthCheckHandler creates a new instance of HealthCheckHandler.
func NewHealthCheckHandler(healthCheckService service.HealthCheckServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		Service: healthCheckService,
		now:     time.Now,
	}
}

// HandleLivenessRequest handles the health check liveness request.
func (hch *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))
	w.WriteHeader(http.StatusOK)
	logger.Debug("Health Check Liveness response sent")
}

// HandleReadinessRequest handles the health check readiness request.
func (hch *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	serverStatus := hch.Service.CheckReadiness()

	statusCode := http.StatusOK
	if serverStatus.Status != model.StatusUp {
		logger.Error("Readiness check failed", log.String("serverstatus", string(serverStatus.Status)))
		statusCode = http.StatusServiceUnavailable
	}

	utils.WriteJSONResponse(w, statusCode, serverStatus)
	logger.Debug("Health Check Readiness response sent")
}

// HandleAPIHealthRequest answers the frontend facing health probe.
func (hch *HealthCheckHandler) HandleAPIHealthRequest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, model.APIStatus{
		Status:    "ok",
		Timestamp: hch.now().UTC().Format(time.RFC3339),
	})
}

// HandleMessageRequest answers the frontend connectivity test.
func (hch *HealthCheckHandler) HandleMessageRequest(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, model.MessageResponse{
		Message:   backendMessage,
		Timestamp: hch.now().UTC().Format(time.RFC3339),
		Status:    "ok",
	})
}
