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

package main

import (
	"net/http"

	"github.com/vtomdoc/vtomdoc/internal/importer"
	"github.com/vtomdoc/vtomdoc/internal/plan"
	"github.com/vtomdoc/vtomdoc/internal/system/config"
	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
	"github.com/vtomdoc/vtomdoc/internal/vtom"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config, serverHome string) {
	logger := log.GetLogger()

	defaults, err := plan.LoadPlanData(serverHome, cfg.Plan.DataFile)
	if err != nil {
		logger.Fatal("Failed to load the default plan", log.String("file", cfg.Plan.DataFile), log.Error(err))
	}

	planService := plan.Initialize(mux, defaults)
	_ = importer.Initialize(mux, planService, cfg.Import)
	vtomService := vtom.Initialize(mux, cfg.VTOM)

	if !vtomService.Ready() {
		logger.Warn("No scheduler API base URL configured, live scheduler views are disabled")
	}

	_ = healthcheck.Initialize(mux, planService, vtomService)
}
