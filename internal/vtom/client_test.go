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
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	syshttp "github.com/vtomdoc/vtomdoc/internal/system/http"
	"github.com/vtomdoc/vtomdoc/tests/mocks/httpmock"
)

type VTOMClientTestSuite struct {
	suite.Suite
}

func TestVTOMClientSuite(t *testing.T) {
	suite.Run(t, new(VTOMClientTestSuite))
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

var _ net.Error = timeoutError{}

func (suite *VTOMClientTestSuite) TestGetSendsKeyAndHeaders() {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "/vtom/public/domain/5.0/environments", r.URL.Path)
		assert.Equal(suite.T(), "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(suite.T(), "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"name":"PROD"}]`))
	}))
	defer server.Close()

	client := newVTOMClient(server.URL+"/", "secret", syshttp.NewHTTPClientWithConfig(server.Client()))
	resp, err := client.Get(context.Background(), "/environments")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
	assert.JSONEq(suite.T(), `[{"name":"PROD"}]`, string(resp.Body))
}

func (suite *VTOMClientTestSuite) TestGetSelfSignedWithoutVerification() {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newVTOMClient(server.URL, "k", syshttp.NewHTTPClientWithTLSOptions(DefaultTestTimeout, false))
	resp, err := client.Get(context.Background(), "/users")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, resp.StatusCode)
}

func (suite *VTOMClientTestSuite) TestGetSelfSignedWithVerification() {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newVTOMClient(server.URL, "k", syshttp.NewHTTPClientWithTLSOptions(DefaultTestTimeout, true))
	_, err := client.Get(context.Background(), "/users")

	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, errUpstreamUnreachable)
}

func (suite *VTOMClientTestSuite) TestGetClassifiesTransportErrors() {
	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "NetTimeout", err: timeoutError{}, expected: errUpstreamTimeout},
		{name: "Deadline", err: context.DeadlineExceeded, expected: errUpstreamTimeout},
		{name: "Refused", err: errors.New("connection refused"), expected: errUpstreamUnreachable},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			httpClient := httpmock.NewHTTPClientInterfaceMock(suite.T())
			httpClient.On("Do", mock.Anything).Return(nil, tc.err).Once()

			client := newVTOMClient("https://vtom.example", "k", httpClient)
			_, err := client.Get(context.Background(), "/environments")

			assert.ErrorIs(suite.T(), err, tc.expected)
		})
	}
}

func (suite *VTOMClientTestSuite) TestGetCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	httpClient := httpmock.NewHTTPClientInterfaceMock(suite.T())
	httpClient.On("Do", mock.Anything).Return(nil, context.Canceled).Once()

	client := newVTOMClient("https://vtom.example", "k", httpClient)
	_, err := client.Get(ctx, "/environments")

	assert.ErrorIs(suite.T(), err, context.Canceled)
	assert.NotErrorIs(suite.T(), err, errUpstreamUnreachable)
}
