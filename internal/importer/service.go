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

// Package importer turns uploaded scheduler exports into the active plan.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/ubuntu/decorate"

	"github.com/vtomdoc/vtomdoc/internal/export"
	"github.com/vtomdoc/vtomdoc/internal/plan"
	"github.com/vtomdoc/vtomdoc/internal/system/config"
	serverconst "github.com/vtomdoc/vtomdoc/internal/system/constants"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
	"github.com/vtomdoc/vtomdoc/internal/system/utils"
)

const (
	loggerComponentName = "ImportService"
	readChunkSize       = 32 * 1024
)

var (
	errContentTooLarge = errors.New("content exceeds the maximum import size")
	errNoContent       = errors.New("no content to read")
)

// ImportServiceInterface defines the operations on uploaded exports.
type ImportServiceInterface interface {
	ImportFile(ctx context.Context, file ImportFile) (*ImportResult, *serviceerror.ServiceError)
	ValidateFile(ctx context.Context, file ImportFile) (*ValidationReport, *serviceerror.ServiceError)
}

// importService is the default implementation of ImportServiceInterface.
type importService struct {
	planService       plan.PlanServiceInterface
	maxFileSize       int64
	allowedExtensions []string
	now               func() time.Time
}

// newImportService creates an import service applying imports to the given plan.
func newImportService(planService plan.PlanServiceInterface, cfg config.ImportConfig) ImportServiceInterface {
	allowedExtensions := cfg.AllowedExtensions
	if len(allowedExtensions) == 0 {
		allowedExtensions = []string{config.DefaultImportExtension}
	}
	return &importService{
		planService:       planService,
		maxFileSize:       maxFileSizeOf(cfg),
		allowedExtensions: allowedExtensions,
		now:               time.Now,
	}
}

// maxFileSizeOf returns the configured import ceiling, or the default one.
func maxFileSizeOf(cfg config.ImportConfig) int64 {
	if cfg.MaxFileSize <= 0 {
		return config.DefaultMaxImportFileSize
	}
	return cfg.MaxFileSize
}

// ImportFile validates, transforms and applies an uploaded export.
func (is *importService) ImportFile(ctx context.Context, file ImportFile) (*ImportResult,
	*serviceerror.ServiceError) {
	importID := utils.GenerateUUID()
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyImportID, importID),
		log.String(log.LoggerKeyFileName, utils.SanitizeString(file.Name)))

	content, svcErr := is.load(ctx, logger, file)
	if svcErr != nil {
		return nil, svcErr
	}

	transformed, svcErr := Transform(content)
	if svcErr != nil {
		logger.Debug("Rejected export", log.String("code", svcErr.Code))
		return nil, svcErr
	}

	if ctx.Err() != nil {
		logger.Debug("Import cancelled before it was applied")
		return nil, &ErrorImportCancelled
	}

	record := plan.ImportRecord{ID: importID, FileName: file.Name, AppliedAt: is.now()}
	if svcErr := is.planService.ApplyImport(record, transformed.Topology, &transformed.Graph); svcErr != nil {
		return nil, svcErr
	}

	logger.Info("Imported scheduler export",
		log.Int("applications", transformed.Counts.Applications),
		log.Int("columns", transformed.Counts.Columns),
		log.Int("diagnostics", len(transformed.Diagnostics)))
	return &ImportResult{ImportID: importID, FileName: file.Name, TransformResult: *transformed}, nil
}

// ValidateFile checks an uploaded export without applying it and returns its first lines.
func (is *importService) ValidateFile(ctx context.Context, file ImportFile) (*ValidationReport,
	*serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyFileName, utils.SanitizeString(file.Name)))

	content, svcErr := is.load(ctx, logger, file)
	if svcErr != nil {
		return nil, svcErr
	}

	result := export.Validate(content)
	return &ValidationReport{
		FileName: file.Name,
		Size:     len(content),
		Valid:    result.Valid,
		Kind:     result.Kind,
		Error:    result.Error,
		Preview:  utils.SplitLines(string(content), serverconst.PreviewLineCount),
	}, nil
}

// load checks the file type and declared size, then reads the content within the size
// ceiling.
func (is *importService) load(ctx context.Context, logger *log.Logger, file ImportFile) ([]byte,
	*serviceerror.ServiceError) {
	if !utils.ContainsFold(is.allowedExtensions, filepath.Ext(file.Name)) {
		return nil, &ErrorUnsupportedFileType
	}
	if file.Size > is.maxFileSize {
		return nil, is.tooLarge()
	}

	content, err := readContent(ctx, file.Content, is.maxFileSize)
	switch {
	case err == nil:
		return content, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Debug("Import cancelled while reading the file")
		return nil, &ErrorImportCancelled
	case errors.Is(err, errContentTooLarge):
		return nil, is.tooLarge()
	default:
		logger.Error("Failed to read uploaded file", log.Error(err))
		return nil, &ErrorReadFailed
	}
}

func (is *importService) tooLarge() *serviceerror.ServiceError {
	return serviceerror.CustomServiceError(ErrorFileTooLarge,
		fmt.Sprintf("The file exceeds the maximum import size of %d bytes", is.maxFileSize))
}

// Transform validates an export and normalizes it without touching the active plan.
func Transform(content []byte) (*TransformResult, *serviceerror.ServiceError) {
	doc, validation := export.ValidateDocument(content)
	if !validation.Valid {
		if validation.Kind == export.KindMissingMarker {
			return nil, serviceerror.CustomServiceError(ErrorNotAnExport, validation.Error)
		}
		return nil, serviceerror.CustomServiceError(ErrorInvalidXML, validation.Error)
	}

	extraction := export.NewReader(doc).ExtractAll()
	topology := plan.Normalize(extraction.Applications, extraction.Hosts)
	if len(topology.PlanColumns) == 0 {
		return nil, &ErrorNoApplications
	}

	jobs := 0
	for _, app := range extraction.Applications {
		jobs += len(app.Jobs)
	}

	return &TransformResult{
		Topology: topology,
		Graph:    plan.NewGraph(extraction),
		Counts: ImportCounts{
			Applications:  len(extraction.Applications),
			Jobs:          jobs,
			Columns:       len(topology.PlanColumns),
			Hosts:         len(extraction.Hosts),
			Links:         len(extraction.Links),
			JobLinks:      len(extraction.JobLinks),
			TrafficLights: len(extraction.TrafficLights),
			Comments:      len(extraction.Comments),
		},
		Diagnostics: extraction.Diagnostics,
	}, nil
}

// readContent reads at most limit bytes, stopping as soon as ctx is done.
func readContent(ctx context.Context, content io.Reader, limit int64) (data []byte, err error) {
	defer decorate.OnError(&err, "could not read export content")

	if content == nil {
		return nil, errNoContent
	}

	var buf bytes.Buffer
	chunk := make([]byte, readChunkSize)
	limited := io.LimitReader(content, limit+1)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		n, readErr := limited.Read(chunk)
		buf.Write(chunk[:n])
		if int64(buf.Len()) > limit {
			return nil, errContentTooLarge
		}
		if errors.Is(readErr, io.EOF) {
			return buf.Bytes(), nil
		}
		if readErr != nil {
			return nil, readErr
		}
	}
}
