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

// Package healthcheck wires the liveness, readiness and frontend health endpoints.
package healthcheck

import (
	"net/http"

	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/handler"
	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/model"
	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/service"
	"github.com/vtomdoc/vtomdoc/internal/system/middleware"
)

// Initialize registers the health routes. Readiness is UP only when every probe is ready.
func Initialize(mux *http.ServeMux, probes ...model.ReadinessProbe) service.HealthCheckServiceInterface {
	healthCheckService := service.NewHealthCheckService(probes...)
	registerRoutes(mux, handler.NewHealthCheckHandler(healthCheckService))
	return healthCheckService
}

func registerRoutes(mux *http.ServeMux, healthCheckHandler *handler.HealthCheckHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Accept",
		AllowCredentials: false,
	}

	routes := map[string]http.HandlerFunc{
		"/health/liveness":  healthCheckHandler.HandleLivenessRequest,
		"/health/readiness": healthCheckHandler.HandleReadinessRequest,
		"/api/health":       healthCheckHandler.HandleAPIHealthRequest,
		"/api/message":      healthCheckHandler.HandleMessageRequest,
	}
	for path, handlerFunc := range routes {
		mux.HandleFunc(middleware.WithCORS("GET "+path, handlerFunc, opts))
		mux.HandleFunc(middleware.WithCORS("OPTIONS "+path, middleware.NoContentHandler, opts))
	}
}
