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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vtomdoc/vtomdoc/internal/system/constants"
	"github.com/vtomdoc/vtomdoc/internal/system/error/apierror"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
)

// maxJSONBodySize bounds request bodies decoded by DecodeJSONBody.
const maxJSONBodySize = 1 << 20

// WriteJSONResponse writes the given body as JSON with the given status code.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.GetLogger().Error("Error encoding response", log.Error(err))
	}
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, code, message, description string, statusCode int,
	respHeaders []map[string]string) {
	logger := log.GetLogger()
	logger.Debug("Error in HTTP response", log.String("code", code), log.String("description", description))

	for _, header := range respHeaders {
		for key, value := range header {
			w.Header().Set(key, value)
		}
	}

	WriteJSONResponse(w, statusCode, apierror.ErrorResponse{
		Code:        code,
		Message:     message,
		Description: description,
	})
}

// WriteServiceError writes a service error as an API error response. Client errors map to
// the given client status, server errors always map to 500.
func WriteServiceError(w http.ResponseWriter, svcErr *serviceerror.ServiceError, clientStatus int) {
	statusCode := clientStatus
	if !svcErr.IsClientError() {
		statusCode = http.StatusInternalServerError
	}
	WriteJSONResponse(w, statusCode, apierror.FromServiceError(svcErr))
}

// DecodeJSONBody decodes a bounded JSON request body into a value of type T.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}

	var value T
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))
	if err := decoder.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is empty")
		}
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}
	return &value, nil
}
