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

// Package service provides health check-related business logic and operations.
package service

import (
	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/model"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
)

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness() model.ServerStatus
}

// HealthCheckService is the default implementation of the HealthCheckServiceInterface.
type HealthCheckService struct {
	probes []model.ReadinessProbe
}

// NewHealthCheckService creates a health check service evaluating the given probes.
func NewHealthCheckService(probes ...model.ReadinessProbe) HealthCheckServiceInterface {
	return &HealthCheckService{
		probes: probes,
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness() model.ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	status := model.StatusUp
	serviceStatus := make([]model.ServiceStatus, 0, len(hcs.probes))
	for _, probe := range hcs.probes {
		probeStatus := model.StatusUp
		if !probe.Ready() {
			logger.Warn("Readiness probe failed", log.String("probe", probe.Name()))
			probeStatus = model.StatusDown
			status = model.StatusDown
		}
		serviceStatus = append(serviceStatus, model.ServiceStatus{
			ServiceName: probe.Name(),
			Status:      probeStatus,
		})
	}

	return model.ServerStatus{
		Status:        status,
		ServiceStatus: serviceStatus,
	}
}
