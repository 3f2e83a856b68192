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
	"errors"
	"mime/multipart"
	"net/http"

	serverconst "github.com/vtomdoc/vtomdoc/internal/system/constants"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
	sysutils "github.com/vtomdoc/vtomdoc/internal/system/utils"
)

const handlerLoggerComponentName = "ImportHandler"

// importHandler is the handler for import operations.
type importHandler struct {
	importService ImportServiceInterface
	maxBodySize   int64
}

// newImportHandler creates a new instance of importHandler. Request bodies are capped at
// the import ceiling plus the multipart memory budget for form overhead.
func newImportHandler(importService ImportServiceInterface, maxFileSize int64) *importHandler {
	return &importHandler{
		importService: importService,
		maxBodySize:   maxFileSize + serverconst.MaxMultipartMemory,
	}
}

// HandleImportRequest handles the import export file request.
func (ih *importHandler) HandleImportRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	file, cleanup, svcErr := ih.extractFile(w, r)
	if svcErr != nil {
		ih.handleError(w, logger, svcErr)
		return
	}
	defer cleanup()

	result, svcErr := ih.importService.ImportFile(r.Context(), file)
	if svcErr != nil {
		ih.handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusCreated, result)
}

// HandleValidateRequest handles the validate export file request.
func (ih *importHandler) HandleValidateRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	file, cleanup, svcErr := ih.extractFile(w, r)
	if svcErr != nil {
		ih.handleError(w, logger, svcErr)
		return
	}
	defer cleanup()

	report, svcErr := ih.importService.ValidateFile(r.Context(), file)
	if svcErr != nil {
		ih.handleError(w, logger, svcErr)
		return
	}

	sysutils.WriteJSONResponse(w, http.StatusOK, report)
}

// extractFile reads the uploaded file part from a bounded multipart body.
func (ih *importHandler) extractFile(w http.ResponseWriter, r *http.Request) (ImportFile, func(),
	*serviceerror.ServiceError) {
	r.Body = http.MaxBytesReader(w, r.Body, ih.maxBodySize)

	if err := r.ParseMultipartForm(serverconst.MaxMultipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ImportFile{}, nil, &ErrorFileTooLarge
		}
		return ImportFile{}, nil, serviceerror.CustomServiceError(ErrorMissingFile,
			"The request must be a multipart form carrying a 'file' field")
	}

	part, header, err := r.FormFile(serverconst.ImportFormFieldName)
	if err != nil {
		return ImportFile{}, nil, &ErrorMissingFile
	}

	cleanup := func() {
		closePart(part)
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}
	return ImportFile{Name: header.Filename, Size: header.Size, Content: part}, cleanup, nil
}

func closePart(part multipart.File) {
	if err := part.Close(); err != nil {
		log.GetLogger().Debug("Failed to close uploaded file", log.Error(err))
	}
}

// handleError writes a service error using the status mapped from its code.
func (ih *importHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusBadRequest
	if svcErr.IsClientError() {
		switch svcErr.Code {
		case ErrorUnsupportedFileType.Code:
			statusCode = http.StatusUnsupportedMediaType
		case ErrorFileTooLarge.Code:
			statusCode = http.StatusRequestEntityTooLarge
		case ErrorNoApplications.Code:
			statusCode = http.StatusUnprocessableEntity
		case ErrorImportCancelled.Code:
			statusCode = http.StatusRequestTimeout
		default:
			statusCode = http.StatusBadRequest
		}
	} else {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}

	sysutils.WriteServiceError(w, svcErr, statusCode)
}
