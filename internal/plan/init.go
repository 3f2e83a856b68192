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

	"github.com/vtomdoc/vtomdoc/internal/system/middleware"
)

// Initialize initializes the plan service and registers its routes.
func Initialize(mux *http.ServeMux, defaults PlanData) PlanServiceInterface {
	planService := newPlanService(defaults)
	planHandler := newPlanHandler(planService)
	registerRoutes(mux, planHandler)
	return planService
}

// registerRoutes registers the routes for plan operations.
func registerRoutes(mux *http.ServeMux, planHandler *planHandler) {
	readOpts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Accept",
		AllowCredentials: false,
	}
	mux.HandleFunc(middleware.WithCORS("GET /api/plan", planHandler.HandlePlanGetRequest, readOpts))
	mux.HandleFunc(middleware.WithCORS("GET /api/plan/graph", planHandler.HandleGraphGetRequest, readOpts))
	mux.HandleFunc(middleware.WithCORS("GET /api/plan/applications",
		planHandler.HandleApplicationSearchRequest, readOpts))
	mux.HandleFunc(middleware.WithCORS("GET /api/plan/details/{name}",
		planHandler.HandleDetailGetRequest, readOpts))
	mux.HandleFunc(middleware.WithCORS("GET /api/plan/details/{name}/links",
		planHandler.HandleJobLinksGetRequest, readOpts))
	for _, path := range []string{"/api/plan", "/api/plan/graph", "/api/plan/applications",
		"/api/plan/details/{name}", "/api/plan/details/{name}/links"} {
		mux.HandleFunc(middleware.WithCORS("OPTIONS "+path, middleware.NoContentHandler, readOpts))
	}

	resetOpts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Accept",
		AllowCredentials: false,
	}
	mux.HandleFunc(middleware.WithCORS("POST /api/plan/reset", planHandler.HandleResetRequest, resetOpts))

	uploadOpts := middleware.CORSOptions{
		AllowedMethods:   "PUT",
		AllowedHeaders:   "Content-Type, Accept",
		AllowCredentials: false,
	}
	mux.HandleFunc(middleware.WithCORS("PUT /api/plan/topology", planHandler.HandleTopologyPutRequest, uploadOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/plan/topology", middleware.NoContentHandler, uploadOpts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/plan/reset", middleware.NoContentHandler, resetOpts))
}
