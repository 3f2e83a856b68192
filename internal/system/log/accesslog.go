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
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"
)

// probePathPrefix marks liveness and readiness polls, logged at debug level only.
const probePathPrefix = "/health/"

// AccessLogHandler writes one Apache common log line per request, followed by the
// response time in milliseconds.
func AccessLogHandler(logger *Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(recorder, r)

		line := commonLogLine(r, start, recorder.statusCode, recorder.size, time.Since(start))
		if strings.HasPrefix(r.URL.Path, probePathPrefix) {
			logger.Debug(line)
			return
		}
		logger.Info(line)
	})
}

func commonLogLine(r *http.Request, start time.Time, status, size int, elapsed time.Duration) string {
	client, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || client == "" {
		client = r.RemoteAddr
	}
	return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d %d`, client,
		start.Format("02/Jan/2006:15:04:05 -0700"), r.Method, r.RequestURI, r.Proto,
		status, size, elapsed.Milliseconds())
}

// loggingResponseWriter records the status and body size written by the wrapped handler.
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// Flush forwards to the wrapped writer when it supports streaming.
func (lrw *loggingResponseWriter) Flush() {
	if flusher, ok := lrw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
