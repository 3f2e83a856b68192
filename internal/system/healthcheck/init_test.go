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

package healthcheck

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vtomdoc/vtomdoc/internal/system/config"
	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/model"
)

type staticProbe struct {
	name  string
	ready bool
}

func (p staticProbe) Name() string { return p.name }
func (p staticProbe) Ready() bool  { return p.ready }

type HealthCheckRoutesTestSuite struct {
	suite.Suite
}

func TestHealthCheckRoutesSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckRoutesTestSuite))
}

func (suite *HealthCheckRoutesTestSuite) SetupTest() {
	config.ResetRuntime()
	_ = config.InitializeRuntime("/tmp", &config.Config{})
}

func (suite *HealthCheckRoutesTestSuite) TearDownTest() {
	config.ResetRuntime()
}

func (suite *HealthCheckRoutesTestSuite) TestRegisteredRoutes() {
	mux := http.NewServeMux()
	Initialize(mux, staticProbe{name: "PlanStore", ready: true}, staticProbe{name: "VTOMProxy"})

	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/health/liveness", http.StatusOK},
		{"GET", "/health/readiness", http.StatusServiceUnavailable},
		{"GET", "/api/health", http.StatusOK},
		{"GET", "/api/message", http.StatusOK},
		{"OPTIONS", "/api/message", http.StatusNoContent},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.method+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func (suite *HealthCheckRoutesTestSuite) TestReadinessReportsEachProbe() {
	mux := http.NewServeMux()
	Initialize(mux, staticProbe{name: "PlanStore", ready: true}, staticProbe{name: "VTOMProxy", ready: true})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	var status model.ServerStatus
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(suite.T(), model.StatusUp, status.Status)
	require.Len(suite.T(), status.ServiceStatus, 2)
	assert.Equal(suite.T(), "PlanStore", status.ServiceStatus[0].ServiceName)
	assert.Equal(suite.T(), "VTOMProxy", status.ServiceStatus[1].ServiceName)
}
