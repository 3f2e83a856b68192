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

// UpstreamResult is an answer of the scheduler API, passed through verbatim.
type UpstreamResult struct {
	StatusCode int
	Body       []byte
}

// Succeeded reports whether the scheduler API answered with a 2xx status.
func (r *UpstreamResult) Succeeded() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// UpstreamErrorResponse is returned when the scheduler API answers with an error status.
type UpstreamErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Details string `json:"details"`
}

// ProxyErrorResponse is returned when the scheduler API could not be called.
type ProxyErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
