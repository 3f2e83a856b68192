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

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	serverconst "github.com/vtomdoc/vtomdoc/internal/system/constants"
	syshttp "github.com/vtomdoc/vtomdoc/internal/system/http"
)

const (
	// APIPathPrefix is the path of the scheduler domain API under the configured base URL.
	APIPathPrefix = "/vtom/public/domain/5.0"

	maxUpstreamBodySize = 10 * 1024 * 1024
)

var (
	errUpstreamTimeout     = errors.New("scheduler API did not answer in time")
	errUpstreamUnreachable = errors.New("scheduler API is unreachable")
)

// upstreamResponse is a raw answer of the scheduler API.
type upstreamResponse struct {
	StatusCode int
	Body       []byte
}

// vtomClientInterface fetches resources from the scheduler API.
type vtomClientInterface interface {
	Get(ctx context.Context, path string) (*upstreamResponse, error)
}

// vtomClient calls the scheduler API with the configured key.
type vtomClient struct {
	baseURL    string
	apiKey     string
	httpClient syshttp.HTTPClientInterface
}

// newVTOMClient creates a client for the scheduler API rooted at baseURL.
func newVTOMClient(baseURL, apiKey string, httpClient syshttp.HTTPClientInterface) vtomClientInterface {
	return &vtomClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Get issues a GET for the given API path. Transport failures are reported as either a
// timeout or an unreachable upstream; a cancelled ctx is returned as is.
func (c *vtomClient) Get(ctx context.Context, path string) (*upstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+APIPathPrefix+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUpstreamUnreachable, err)
	}
	req.Header.Set(serverconst.APIKeyHeaderName, c.apiKey)
	req.Header.Set(serverconst.AcceptHeaderName, serverconst.ContentTypeJSON)
	req.Header.Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBodySize))
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	return &upstreamResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", errUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %w", errUpstreamUnreachable, err)
}
