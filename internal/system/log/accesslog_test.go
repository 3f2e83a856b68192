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

package log

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type AccessLogTestSuite struct {
	suite.Suite
}

func TestAccessLogSuite(t *testing.T) {
	suite.Run(t, new(AccessLogTestSuite))
}

func (suite *AccessLogTestSuite) TestAccessLogHandler() {
	var buf bytes.Buffer
	testLogger := newLogger(zapcore.AddSync(&buf), zapcore.DebugLevel)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			suite.T().Errorf("Failed to write response: %v", err)
		}
	})

	handler := AccessLogHandler(testLogger, testHandler)

	req := httptest.NewRequest("POST", "/api/import", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(suite.T(), http.StatusAccepted, rr.Code)
	assert.Equal(suite.T(), "OK", rr.Body.String())

	output := buf.String()
	assert.Contains(suite.T(), output, "192.168.1.1")
	assert.Contains(suite.T(), output, "POST /api/import")
	assert.Contains(suite.T(), output, " 202 2 ")
}

func (suite *AccessLogTestSuite) TestAccessLogHandlerWithoutPort() {
	var buf bytes.Buffer
	testLogger := newLogger(zapcore.AddSync(&buf), zapcore.InfoLevel)

	handler := AccessLogHandler(testLogger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/api/plan", nil)
	req.RemoteAddr = "unix-socket"
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(suite.T(), buf.String(), "unix-socket - - [")
	assert.Contains(suite.T(), buf.String(), " 200 0 ")
}

func (suite *AccessLogTestSuite) TestAccessLogHandlerProbesAtDebug() {
	var buf bytes.Buffer
	handler := AccessLogHandler(newLogger(zapcore.AddSync(&buf), zapcore.InfoLevel),
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health/readiness", nil))
	assert.Empty(suite.T(), buf.String())

	var debugBuf bytes.Buffer
	handler = AccessLogHandler(newLogger(zapcore.AddSync(&debugBuf), zapcore.DebugLevel),
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health/readiness", nil))
	assert.Contains(suite.T(), debugBuf.String(), "GET /health/readiness")
}

func (suite *AccessLogTestSuite) TestLoggingResponseWriter() {
	rec := httptest.NewRecorder()
	lrw := &loggingResponseWriter{
		ResponseWriter: rec,
		statusCode:     http.StatusOK,
	}

	lrw.WriteHeader(http.StatusNotFound)
	assert.Equal(suite.T(), http.StatusNotFound, lrw.statusCode)

	n, err := lrw.Write([]byte("test content"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, n)
	assert.Equal(suite.T(), 12, lrw.size)

	n, err = lrw.Write([]byte(" more"))
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, n)
	assert.Equal(suite.T(), 17, lrw.size)

	lrw.Flush()
	assert.True(suite.T(), rec.Flushed)
	assert.Equal(suite.T(), "test content more", rec.Body.String())
}
