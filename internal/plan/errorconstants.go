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

package plan

import "github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"

// Client errors for plan operations.
var (
	// ErrorMissingApplicationName is the error returned when no application name is given.
	ErrorMissingApplicationName = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLN-1001",
		Error:            "Invalid request format",
		ErrorDescription: "Application name is required",
	}
	// ErrorInvalidSearchQuery is the error returned when the search query is too long.
	ErrorInvalidSearchQuery = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLN-1002",
		Error:            "Invalid search query",
		ErrorDescription: "The search query exceeds the maximum allowed length",
	}
	// ErrorEmptyTopology is the error returned when an import carries no column.
	ErrorEmptyTopology = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLN-1003",
		Error:            "Empty topology",
		ErrorDescription: "The imported topology does not contain any application",
	}
	// ErrorInvalidTopologyPayload is the error returned when an uploaded topology is not valid JSON.
	ErrorInvalidTopologyPayload = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "PLN-1004",
		Error:            "Invalid topology payload",
		ErrorDescription: "The request body must be a plan topology in JSON format",
	}
)

// Server errors for plan operations.
var (
	// ErrorApplyImportFailed is the error returned when an import cannot be applied.
	ErrorApplyImportFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "PLN-5001",
		Error:            "Import not applied",
		ErrorDescription: "The imported topology could not be applied to the active plan",
	}
)
