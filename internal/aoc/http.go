// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package aoc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	arverrors "github.com/arrivehq/arrive/internal/errors"
	"github.com/arrivehq/arrive/pkg/version"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL   string
	userAgent string
	transport http.RoundTripper
	client    *http.Client
	log       zerolog.Logger
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithUserAgent overrides the User-Agent sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *HTTPClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTransport sets the transport the User-Agent transport wraps.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *HTTPClient) { c.transport = rt }
}

// WithLogger sets the logger for request tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *HTTPClient) { c.log = log }
}

// NewHTTPClient creates a client for the website at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: version.UserAgent(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Transport: newUserAgentTransport(c.transport, c.userAgent)}
	return c
}

// FetchInput implements Client.
func (c *HTTPClient) FetchInput(ctx context.Context, token string, year, day uint) (string, error) {
	endpoint := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build input request: %w", err)
	}

	body, err := c.do(req, token)
	if err != nil {
		return "", fmt.Errorf("fetch input for %d/%02d: %w", year, day, err)
	}
	return body, nil
}

// SubmitAnswer implements Client.
func (c *HTTPClient) SubmitAnswer(ctx context.Context, token string, year, day uint, level int, answer string) (string, error) {
	endpoint := fmt.Sprintf("%s/%d/day/%d/answer", c.baseURL, year, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(answerForm(level, answer)))
	if err != nil {
		return "", fmt.Errorf("failed to build answer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, token)
	if err != nil {
		return "", fmt.Errorf("submit answer for %d/%02d: %w", year, day, err)
	}
	return body, nil
}

// answerForm encodes the form with level first, the order the website's own
// form uses. url.Values would sort the keys.
func answerForm(level int, answer string) string {
	return "level=" + strconv.Itoa(level) + "&answer=" + url.QueryEscape(answer)
}

// do sends req with the session cookie and returns the body of a 200 reply.
func (c *HTTPClient) do(req *http.Request, token string) (string, error) {
	if err := ValidateToken(token); err != nil {
		return "", err
	}
	req.Header.Set("Cookie", "session="+token)

	c.log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Msg("sending request")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", arverrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %w", arverrors.ErrNetworkFailure, err)
	}

	c.log.Debug().Int("status", resp.StatusCode).Int("bytes", len(data)).Msg("received response")

	if resp.StatusCode != http.StatusOK {
		return "", &arverrors.StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return string(data), nil
}
