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
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vtomdoc/vtomdoc/internal/plan"
	"github.com/vtomdoc/vtomdoc/internal/system/config"
	"github.com/vtomdoc/vtomdoc/internal/system/error/apierror"
)

type ImportHandlerTestSuite struct {
	suite.Suite
	mux         *http.ServeMux
	planService plan.PlanServiceInterface
}

func TestImportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImportHandlerTestSuite))
}

func (suite *ImportHandlerTestSuite) SetupTest() {
	suite.mux = http.NewServeMux()
	suite.planService = plan.Initialize(suite.mux, plan.PlanData{})
	Initialize(suite.mux, suite.planService, config.ImportConfig{MaxFileSize: 4096})
}

func multipartRequest(t *testing.T, target, field, fileName string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (suite *ImportHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	suite.mux.ServeHTTP(rr, req)
	return rr
}

func (suite *ImportHandlerTestSuite) errorCode(rr *httptest.ResponseRecorder) string {
	var response apierror.ErrorResponse
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &response))
	return response.Code
}

func (suite *ImportHandlerTestSuite) TestImport() {
	req := multipartRequest(suite.T(), "/api/import", "file", "scenario.xml",
		readFixture(suite.T(), "scenario.xml"))

	rr := suite.serve(req)

	assert.Equal(suite.T(), http.StatusCreated, rr.Code)
	var result ImportResult
	require.NoError(suite.T(), json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(suite.T(), "scenario.xml", result.FileName)
	assert.Equal(suite.T(), 2, result.Counts.Applications)
	require.Len(suite.T(), result.Topology.PlanColumns, 1)
	assert.Equal(suite.T(), "F1", suite.planService.GetPlan().PlanColumns[0].Title)
}

func (suite *ImportHandlerTestSuite) TestImportErrors() {
	testCases := []struct {
		name     string
		req      *http.Request
		status   int
		code     string
		fileName string
	}{
		{
			name:   "WrongExtension",
			req:    multipartRequest(suite.T(), "/api/import", "file", "plan.json", []byte("{}")),
			status: http.StatusUnsupportedMediaType,
			code:   ErrorUnsupportedFileType.Code,
		},
		{
			name:   "WrongField",
			req:    multipartRequest(suite.T(), "/api/import", "upload", "scenario.xml", []byte("<Domain/>")),
			status: http.StatusBadRequest,
			code:   ErrorMissingFile.Code,
		},
		{
			name:   "NotMultipart",
			req:    httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader("<Domain/>")),
			status: http.StatusBadRequest,
			code:   ErrorMissingFile.Code,
		},
		{
			name: "BodyTooLarge",
			req: multipartRequest(suite.T(), "/api/import", "file", "big.xml",
				bytes.Repeat([]byte("a"), 4096+(2<<20))),
			status: http.StatusRequestEntityTooLarge,
			code:   ErrorFileTooLarge.Code,
		},
		{
			name:   "InvalidXML",
			req:    multipartRequest(suite.T(), "/api/import", "file", "broken.xml", []byte("<NotXml")),
			status: http.StatusBadRequest,
			code:   ErrorInvalidXML.Code,
		},
		{
			name:   "NotAnExport",
			req:    multipartRequest(suite.T(), "/api/import", "file", "root.xml", []byte("<Root/>")),
			status: http.StatusBadRequest,
			code:   ErrorNotAnExport.Code,
		},
		{
			name:   "NoApplications",
			req:    multipartRequest(suite.T(), "/api/import", "file", "empty.xml", []byte("<Domain/>")),
			status: http.StatusUnprocessableEntity,
			code:   ErrorNoApplications.Code,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			rr := suite.serve(tc.req)
			assert.Equal(suite.T(), tc.status, rr.Code)
			assert.Equal(suite.T(), tc.code, suite.errorCode(rr))
		})
	}
	assert.Nil(suite.T(), suite.planService.GetLastImport())
}

func (suite *ImportHandlerTestSuite) TestValidate() {
	req := multipartRequest(suite.T(), "/api/import/validate", "file", "root.xml", []byte("<Root/>"))

	rr := suite.serve(req)

	assert.Equal(suite.T(), http.StatusOK, rr.Code)
	assert.JSONEq(suite.T(), `{"fileName":"root.xml","size":7,"valid":false,"kind":"missing_marker",
		"error":"invalid scheduler export: missing <Domain> element","preview":["<Root/>"]}`, rr.Body.String())
	assert.Nil(suite.T(), suite.planService.GetLastImport())
}

func (suite *ImportHandlerTestSuite) TestPreflight() {
	rr := suite.serve(httptest.NewRequest(http.MethodOptions, "/api/import", nil))

	assert.Equal(suite.T(), http.StatusNoContent, rr.Code)
}
