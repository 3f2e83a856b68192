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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vtomdoc/vtomdoc/internal/system/constants"
	"github.com/vtomdoc/vtomdoc/internal/system/healthcheck/model"
	"github.com/vtomdoc/vtomdoc/tests/mocks/healthcheckmock"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	handler     *HealthCheckHandler
	mockService *healthcheckmock.HealthCheckServiceInterfaceMock
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (suite *HealthCheckHandlerTestSuite) SetupTest() {
	suite.mockService = healthcheckmock.NewHealthCheckServiceInterfaceMock(suite.T())
	suite.handler = NewHealthCheckHandler(suite.mockService)
	suite.handler.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	}
}

func (suite *HealthCheckHandlerTestSuite) TestHandleLivenessRequest() {
	req := httptest.NewRequest("GET", "/health/liveness", nil)
	rec := httptest.NewRecorder()

	suite.handler.HandleLivenessRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *HealthCheckHandlerTestSuite) TestHandleReadinessRequest() {
	testCases := []struct {
		name           string
		serverStatus   model.ServerStatus
		expectedStatus int
	}{
		{
			name: "AllUp",
			serverStatus: model.ServerStatus{
				Status:        model.StatusUp,
				ServiceStatus: []model.ServiceStatus{{ServiceName: "PlanData", Status: model.StatusUp}},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Down",
			serverStatus: model.ServerStatus{
				Status:        model.StatusDown,
				ServiceStatus: []model.ServiceStatus{{ServiceName: "VTOMUpstream", Status: model.StatusDown}},
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			mockService := healthcheckmock.NewHealthCheckServiceInterfaceMock(t)
			mockService.On("CheckReadiness").Return(tc.serverStatus).Once()
			suite.handler.Service = mockService

			rec := httptest.NewRecorder()
			suite.handler.HandleReadinessRequest(rec, httptest.NewRequest("GET", "/health/readiness", nil))

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, constants.ContentTypeJSON, rec.Header().Get(constants.ContentTypeHeaderName))

			var body model.ServerStatus
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.serverStatus, body)
		})
	}
}

func (suite *HealthCheckHandlerTestSuite) TestHandleAPIHealthRequest() {
	rec := httptest.NewRecorder()
	suite.handler.HandleAPIHealthRequest(rec, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.JSONEq(suite.T(), `{"status":"ok","timestamp":"2025-03-14T09:30:00Z"}`, rec.Body.String())
}

func (suite *HealthCheckHandlerTestSuite) TestHandleMessageRequest() {
	rec := httptest.NewRecorder()
	suite.handler.HandleMessageRequest(rec, httptest.NewRequest("GET", "/api/message", nil))

	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var body model.MessageResponse
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(suite.T(), backendMessage, body.Message)
	assert.Equal(suite.T(), "ok", body.Status)
	assert.Equal(suite.T(), "2025-03-14T09:30:00Z", body.Timestamp)
}
