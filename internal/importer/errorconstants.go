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

import "github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"

// Client errors for import operations.
var (
	// ErrorUnsupportedFileType is the error returned when the file extension is not accepted.
	ErrorUnsupportedFileType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "IMP-1001",
		Error:            "Unsupported file type",
		ErrorDescription: "Only scheduler XML exports can be imported",
	}
	// ErrorFileTooLarge is the error returned when the file exceeds the size ceiling.
	ErrorFileTooLarge = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "IMP-1002",
		Error:            "File too large",
		ErrorDescription: "The file exceeds the maximum import size",
	}
	// ErrorInvalidXML is the error returned when the content cannot be parsed.
	ErrorInvalidXML = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "IMP-1003",
		Error:            "Invalid XML",
		ErrorDescription: "The file is not a well formed XML document",
	}
	// ErrorNotAnExport is the error returned when the XML lacks the export root element.
	ErrorNotAnExport = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "IMP-1004",
		Error:            "Not a scheduler export",
		ErrorDescription: "The XML document does not contain a <Domain> element",
	}
	// ErrorNoApplications is the error returned when the export yields no application.
	ErrorNoApplications = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "IMP-1005",
		Error:            "No applications found",
		ErrorDescription: "The export does not contain any application",
	}
	// ErrorMissingFile is the error returned when the request carries no file.
	ErrorMissingFile = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "IMP-1007",
		Error:            "Invalid request format",
		ErrorDescription: "A file must be sent in the 'file' form field",
	}
	// ErrorImportCancelled is the error returned when the caller went away before completion.
	ErrorImportCancelled = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "IMP-1008",
		Error:            "Import cancelled",
		ErrorDescription: "The import was cancelled before it completed",
	}
)

// Server errors for import operations.
var (
	// ErrorReadFailed is the error returned when the uploaded content cannot be read.
	ErrorReadFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "IMP-1006",
		Error:            "Read failed",
		ErrorDescription: "The uploaded file could not be read",
	}
)
