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

package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vtomdoc/vtomdoc/internal/system/error/apierror"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

func (suite *HTTPUtilTestSuite) TestWriteJSONResponse() {
	w := httptest.NewRecorder()

	WriteJSONResponse(w, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	assert.Equal(suite.T(), "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(suite.T(), `{"status":"ok"}`, w.Body.String())
}

func (suite *HTTPUtilTestSuite) TestWriteJSONError() {
	w := httptest.NewRecorder()

	WriteJSONError(w, "IMP-1001", "Invalid file type", "Only .xml files are accepted",
		http.StatusBadRequest, []map[string]string{{"X-Test": "value"}})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), "value", w.Header().Get("X-Test"))

	var resp apierror.ErrorResponse
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "IMP-1001", resp.Code)
	assert.Equal(suite.T(), "Invalid file type", resp.Message)
	assert.Equal(suite.T(), "Only .xml files are accepted", resp.Description)
}

func (suite *HTTPUtilTestSuite) TestWriteServiceError() {
	testCases := []struct {
		name           string
		svcErr         *serviceerror.ServiceError
		expectedStatus int
	}{
		{
			name: "ClientError",
			svcErr: &serviceerror.ServiceError{Code: "IMP-1005", Type: serviceerror.ClientErrorType,
				Error: "No applications found"},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "ServerError",
			svcErr:         &serviceerror.InternalServerError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteServiceError(w, tc.svcErr, http.StatusUnprocessableEntity)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.svcErr.Code)
		})
	}
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	type payload struct {
		Name string `json:"name"`
	}

	testCases := []struct {
		name        string
		body        string
		expectError bool
		expected    string
	}{
		{"Valid", `{"name":"PAYROLL"}`, false, "PAYROLL"},
		{"Empty", ``, true, ""},
		{"Malformed", `{"name":`, true, ""},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tc.body))
			result, err := DecodeJSONBody[payload](req)
			if tc.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, result.Name)
		})
	}
}
