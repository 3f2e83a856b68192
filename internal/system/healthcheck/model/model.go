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

// Package model defines the data structures returned by the health check endpoints.
package model

// Status represents the status of the server or one of its dependencies.
type Status string

const (
	// StatusUp indicates that the component is ready to serve requests.
	StatusUp Status = "UP"
	// StatusDown indicates that the component cannot serve requests.
	StatusDown Status = "DOWN"
)

// ServiceStatus holds the readiness status of a single dependency.
type ServiceStatus struct {
	ServiceName string `json:"service_name"`
	Status      Status `json:"status"`
}

// ServerStatus holds the aggregated readiness status of the server.
type ServerStatus struct {
	Status        Status          `json:"status"`
	ServiceStatus []ServiceStatus `json:"service_status"`
}

// ReadinessProbe is implemented by components that take part in the readiness check.
type ReadinessProbe interface {
	Name() string
	Ready() bool
}

// APIStatus is the body returned by the frontend facing health endpoint.
type APIStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// MessageResponse is the body returned by the connectivity test endpoint.
type MessageResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}
