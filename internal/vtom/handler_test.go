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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vtomdoc/vtomdoc/internal/system/config"
	syshttp "github.com/vtomdoc/vtomdoc/internal/system/http"
	"github.com/vtomdoc/vtomdoc/tests/mocks/httpmock"
)

const DefaultTestTimeout = 5 * time.Second

type VTOMHandlerTestSuite struct {
	suite.Suite
	upstream *httptest.Server
	requests []string
	mux      *http.ServeMux
}

func TestVTOMHandlerSuite(t *testing.T) {
	suite.Run(t, new(VTOMHandlerTestSuite))
}

func (suite *VTOMHandlerTestSuite) SetupTest() {
	suite.requests = nil
	suite.upstream = httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.requests = append(suite.requests, r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case APIPathPrefix + "/environments":
			_, _ = w.Write([]byte(`[{"name":"PROD"},{"name":"TEST"}]`))
		case APIPathPrefix + "/environments/PROD/applications":
			_, _ = w.Write([]byte(`[{"name":"PAYROLL","status":"Running"}]`))
		case APIPathPrefix + "/users":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`invalid api key`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`not found`))
		}
	}))

	suite.mux = http.NewServeMux()
	Initialize(suite.mux, config.VTOMConfig{
		BaseURL:   suite.upstream.URL,
		APIKey:    "secret",
		Timeout:   5,
		VerifyTLS: false,
	})
}

func (suite *VTOMHandlerTestSuite) TearDownTest() {
	suite.upstream.Close()
}

func (suite *VTOMHandlerTestSuite) serve(target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func (suite *VTOMHandlerTestSuite) TestEnvironmentsPassThrough() {
	rr := suite.serve("/api/vtom/environments")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.Equal(suite.T(), "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `[{"name":"PROD"},{"name":"TEST"}]`, rr.Body.String())
}

func (suite *VTOMHandlerTestSuite) TestApplicationsPassThrough() {
	rr := suite.serve("/api/vtom/environments/PROD/applications")

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.JSONEq(suite.T(), `[{"name":"PAYROLL","status":"Running"}]`, rr.Body.String())
}

func (suite *VTOMHandlerTestSuite) TestApplicationsEscapesEnvironment() {
	rr := suite.serve("/api/vtom/environments/R%26D%20env/applications")

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	require.Len(suite.T(), suite.requests, 1)
	assert.Equal(suite.T(), APIPathPrefix+"/environments/R&D%20env/applications", suite.requests[0])
}

func (suite *VTOMHandlerTestSuite) TestUpstreamErrorStatus() {
	rr := suite.serve("/api/vtom/users")

	assert.Equal(suite.T(), http.StatusUnauthorized, rr.Code)
	var response UpstreamErrorResponse
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Failed to fetch scheduler users", response.Error)
	assert.Equal(suite.T(), http.StatusUnauthorized, response.Status)
	assert.Equal(suite.T(), "invalid api key", response.Details)
}

func (suite *VTOMHandlerTestSuite) TestUnreachable() {
	httpClient := httpmock.NewHTTPClientInterfaceMock(suite.T())
	httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	handler := newVTOMHandler(&vtomService{
		configured: true,
		client:     newVTOMClient("https://vtom.example", "k", httpClient),
	})

	rr := httptest.NewRecorder()
	handler.HandleEnvironmentsRequest(rr, httptest.NewRequest(http.MethodGet, "/api/vtom/environments", nil))

	assert.Equal(suite.T(), http.StatusInternalServerError, rr.Code)
	var response ProxyErrorResponse
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(suite.T(), ErrorUpstreamUnreachable.Error, response.Error)
	assert.Contains(suite.T(), response.Message, "connection refused")
}

func (suite *VTOMHandlerTestSuite) TestTimeout() {
	release := make(chan struct{})
	slow := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer slow.Close()
	defer close(release)

	client := slow.Client()
	client.Timeout = 50 * time.Millisecond
	handler := newVTOMHandler(&vtomService{
		configured: true,
		client:     newVTOMClient(slow.URL, "k", syshttp.NewHTTPClientWithConfig(client)),
	})

	rr := httptest.NewRecorder()
	handler.HandleUsersRequest(rr, httptest.NewRequest(http.MethodGet, "/api/vtom/users", nil))

	assert.Equal(suite.T(), http.StatusGatewayTimeout, rr.Code)
	var response ProxyErrorResponse
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(suite.T(), ErrorUpstreamTimeout.Error, response.Error)
}

func (suite *VTOMHandlerTestSuite) TestCancelledCaller() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	httpClient := httpmock.NewHTTPClientInterfaceMock(suite.T())
	httpClient.On("Do", mock.Anything).Return(nil, context.Canceled).Once()
	handler := newVTOMHandler(&vtomService{
		configured: true,
		client:     newVTOMClient("https://vtom.example", "k", httpClient),
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/vtom/environments", nil).WithContext(ctx)
	handler.HandleEnvironmentsRequest(rr, req)

	assert.Equal(suite.T(), statusClientClosedRequest, rr.Code)
}

func (suite *VTOMHandlerTestSuite) TestNotConfigured() {
	mux := http.NewServeMux()
	service := Initialize(mux, config.VTOMConfig{})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/vtom/users", nil))

	assert.False(suite.T(), service.Ready())
	assert.Equal(suite.T(), http.StatusInternalServerError, rr.Code)
	var response ProxyErrorResponse
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(suite.T(), ErrorUpstreamNotConfigured.Error, response.Error)
}

func (suite *VTOMHandlerTestSuite) TestPreflight() {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/vtom/environments", nil))

	assert.Equal(suite.T(), http.StatusNoContent, rr.Code)
}
