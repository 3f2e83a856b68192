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

import "github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"

// Client errors for scheduler API operations.
var (
	// ErrorMissingEnvironment is the error returned when no environment name is given.
	ErrorMissingEnvironment = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "VTM-1001",
		Error:            "Invalid request format",
		ErrorDescription: "Environment name is required",
	}
	// ErrorRequestCancelled is the error returned when the caller went away mid request.
	ErrorRequestCancelled = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "VTM-1002",
		Error:            "Request cancelled",
		ErrorDescription: "The request was cancelled before the scheduler API answered",
	}
)

// Server errors for scheduler API operations.
var (
	// ErrorUpstreamUnreachable is the error returned when the scheduler API cannot be reached.
	ErrorUpstreamUnreachable = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "VTM-5001",
		Error:            "Scheduler API unreachable",
		ErrorDescription: "Could not connect to the scheduler API",
	}
	// ErrorUpstreamTimeout is the error returned when the scheduler API does not answer in time.
	ErrorUpstreamTimeout = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "VTM-5002",
		Error:            "Scheduler API timeout",
		ErrorDescription: "The scheduler API did not answer in time",
	}
	// ErrorUpstreamNotConfigured is the error returned when no scheduler API URL is configured.
	ErrorUpstreamNotConfigured = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "VTM-5003",
		Error:            "Scheduler API not configured",
		ErrorDescription: "No scheduler API base URL is configured",
	}
)
