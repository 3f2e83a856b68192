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

// Package vtom proxies read only calls to the scheduler REST API.
package vtom

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/vtomdoc/vtomdoc/internal/system/config"
	"github.com/vtomdoc/vtomdoc/internal/system/error/serviceerror"
	syshttp "github.com/vtomdoc/vtomdoc/internal/system/http"
	"github.com/vtomdoc/vtomdoc/internal/system/log"
)

const loggerComponentName = "VTOMProxyService"

// VTOMServiceInterface defines the scheduler API calls exposed by the proxy.
type VTOMServiceInterface interface {
	GetEnvironments(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError)
	GetApplications(ctx context.Context, environment string) (*UpstreamResult, *serviceerror.ServiceError)
	GetUsers(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError)
	Name() string
	Ready() bool
}

// vtomService is the default implementation of VTOMServiceInterface.
type vtomService struct {
	configured bool
	client     vtomClientInterface
}

// newVTOMService creates a proxy service from the scheduler API configuration.
func newVTOMService(cfg config.VTOMConfig) VTOMServiceInterface {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = time.Duration(config.DefaultVTOMTimeout) * time.Second
	}
	httpClient := syshttp.NewHTTPClientWithTLSOptions(timeout, cfg.VerifyTLS)
	return &vtomService{
		configured: cfg.BaseURL != "",
		client:     newVTOMClient(cfg.BaseURL, cfg.APIKey, httpClient),
	}
}

// GetEnvironments lists the scheduler environments.
func (vs *vtomService) GetEnvironments(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError) {
	return vs.fetch(ctx, "/environments")
}

// GetApplications lists the applications of one scheduler environment.
func (vs *vtomService) GetApplications(ctx context.Context, environment string) (*UpstreamResult,
	*serviceerror.ServiceError) {
	if environment == "" {
		return nil, &ErrorMissingEnvironment
	}
	return vs.fetch(ctx, "/environments/"+url.PathEscape(environment)+"/applications")
}

// GetUsers lists the scheduler users.
func (vs *vtomService) GetUsers(ctx context.Context) (*UpstreamResult, *serviceerror.ServiceError) {
	return vs.fetch(ctx, "/users")
}

// Name identifies the scheduler API in readiness reports.
func (vs *vtomService) Name() string {
	return "VTOMProxy"
}

// Ready reports whether a scheduler API is configured.
func (vs *vtomService) Ready() bool {
	return vs.configured
}

func (vs *vtomService) fetch(ctx context.Context, path string) (*UpstreamResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String("path", path))

	if !vs.configured {
		return nil, &ErrorUpstreamNotConfigured
	}

	resp, err := vs.client.Get(ctx, path)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			logger.Debug("Scheduler API call cancelled by the caller")
			return nil, &ErrorRequestCancelled
		case errors.Is(err, errUpstreamTimeout):
			logger.Warn("Scheduler API call timed out", log.Error(err))
			return nil, serviceerror.CustomServiceError(ErrorUpstreamTimeout, err.Error())
		default:
			logger.Warn("Scheduler API call failed", log.Error(err))
			return nil, serviceerror.CustomServiceError(ErrorUpstreamUnreachable, err.Error())
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Debug("Scheduler API answered with an error status", log.Int("status", resp.StatusCode))
	}
	return &UpstreamResult{StatusCode: resp.StatusCode, Body: resp.Body}, nil
}
