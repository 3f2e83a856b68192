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
	"net/http"

	"github.com/vtomdoc/vtomdoc/internal/system/config"
	"github.com/vtomdoc/vtomdoc/internal/system/middleware"
)

// Initialize initializes the scheduler API proxy and registers its routes.
func Initialize(mux *http.ServeMux, cfg config.VTOMConfig) VTOMServiceInterface {
	vtomService := newVTOMService(cfg)
	vtomHandler := newVTOMHandler(vtomService)
	registerRoutes(mux, vtomHandler)
	return vtomService
}

// registerRoutes registers the routes for scheduler API proxy operations.
func registerRoutes(mux *http.ServeMux, vtomHandler *vtomHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Accept",
		AllowCredentials: false,
	}
	mux.HandleFunc(middleware.WithCORS("GET /api/vtom/environments",
		vtomHandler.HandleEnvironmentsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/vtom/environments", middleware.NoContentHandler, opts))
	mux.HandleFunc(middleware.WithCORS("GET /api/vtom/environments/{environment}/applications",
		vtomHandler.HandleApplicationsRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/vtom/environments/{environment}/applications",
		middleware.NoContentHandler, opts))
	mux.HandleFunc(middleware.WithCORS("GET /api/vtom/users", vtomHandler.HandleUsersRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/vtom/users", middleware.NoContentHandler, opts))
}
