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

package importer

import (
	"net/http"

	"github.com/vtomdoc/vtomdoc/internal/plan"
	"github.com/vtomdoc/vtomdoc/internal/system/config"
	"github.com/vtomdoc/vtomdoc/internal/system/middleware"
)

// Initialize initializes the import service and registers its routes.
func Initialize(mux *http.ServeMux, planService plan.PlanServiceInterface,
	cfg config.ImportConfig) ImportServiceInterface {
	importService := newImportService(planService, cfg)
	importHandler := newImportHandler(importService, maxFileSizeOf(cfg))
	registerRoutes(mux, importHandler)
	return importService
}

// registerRoutes registers the routes for import operations.
func registerRoutes(mux *http.ServeMux, importHandler *importHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Accept",
		AllowCredentials: false,
	}
	mux.HandleFunc(middleware.WithCORS("POST /api/import", importHandler.HandleImportRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/import", middleware.NoContentHandler, opts))
	mux.HandleFunc(middleware.WithCORS("POST /api/import/validate", importHandler.HandleValidateRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/import/validate", middleware.NoContentHandler, opts))
}
