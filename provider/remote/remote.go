/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package remote fetches tokens, token groups, and brands from the
// design-system service's REST API.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"bennypowers.dev/dsexport/internal/logger"
	"bennypowers.dev/dsexport/internal/version"
	"bennypowers.dev/dsexport/provider"
	"bennypowers.dev/dsexport/token"
)

const (
	// DefaultBaseURL is the design-system API root.
	DefaultBaseURL = "https://api.supernova.io/api/v2"

	// DefaultTimeout bounds a single HTTP attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultRetryMax is the number of retries after the first attempt.
	DefaultRetryMax = 3

	// DefaultMaxSize is the maximum allowed response size (50 MB).
	DefaultMaxSize int64 = 50 * 1024 * 1024
)

// ErrUnauthorized indicates the service rejected the API token.
var ErrUnauthorized = errors.New("unauthorized")

// Options configures a Client.
type Options struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// Token is sent as a bearer token when set.
	Token string

	// RetryMax defaults to DefaultRetryMax. Negative disables retries.
	RetryMax int

	// RetryWaitMin and RetryWaitMax bound the backoff between attempts.
	// Zero keeps the retryablehttp defaults.
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration

	// MaxSize defaults to DefaultMaxSize.
	MaxSize int64
}

// Client implements provider.Provider over HTTP.
type Client struct {
	baseURL string
	token   string
	maxSize int64
	http    *retryablehttp.Client
}

var _ provider.Provider = (*Client)(nil)

// New creates a Client.
func New(opts Options) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}

	hc := retryablehttp.NewClient()
	hc.Logger = leveledLogger{}
	hc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	switch {
	case opts.RetryMax < 0:
		hc.RetryMax = 0
	case opts.RetryMax == 0:
		hc.RetryMax = DefaultRetryMax
	default:
		hc.RetryMax = opts.RetryMax
	}
	if opts.RetryWaitMin > 0 {
		hc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		hc.RetryWaitMax = opts.RetryWaitMax
	}

	hc.HTTPClient.Timeout = opts.Timeout
	if hc.HTTPClient.Timeout == 0 {
		hc.HTTPClient.Timeout = DefaultTimeout
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   opts.Token,
		maxSize: maxSize,
		http:    hc,
	}, nil
}

// Tokens fetches all tokens of a design system version.
func (c *Client) Tokens(ctx context.Context, ref provider.VersionRef) ([]*token.Token, error) {
	body, err := c.get(ctx, ref, "tokens")
	if err != nil {
		return nil, err
	}
	return provider.DecodeTokens(body)
}

// TokenGroups fetches all token groups of a design system version.
func (c *Client) TokenGroups(ctx context.Context, ref provider.VersionRef) ([]*token.Group, error) {
	body, err := c.get(ctx, ref, "token-groups")
	if err != nil {
		return nil, err
	}
	return provider.DecodeGroups(body)
}

// Brands fetches all brands of a design system version.
func (c *Client) Brands(ctx context.Context, ref provider.VersionRef) ([]*token.Brand, error) {
	body, err := c.get(ctx, ref, "brands")
	if err != nil {
		return nil, err
	}
	return provider.DecodeBrands(body)
}

func (c *Client) endpoint(ref provider.VersionRef, resource string) string {
	return fmt.Sprintf("%s/design-systems/%s/versions/%s/%s",
		c.baseURL, url.PathEscape(ref.DesignSystemID), url.PathEscape(ref.VersionID), resource)
}

func (c *Client) get(ctx context.Context, ref provider.VersionRef, resource string) ([]byte, error) {
	if ref.DesignSystemID == "" || ref.VersionID == "" {
		return nil, fmt.Errorf("design system id and version id are required")
	}

	endpoint := c.endpoint(ref, resource)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", endpoint, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("fetching %s: %w (%s)", endpoint, ErrUnauthorized, resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("fetching %s: unexpected status %s", endpoint, resp.Status)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, c.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}
	if int64(len(content)) > c.maxSize {
		return nil, fmt.Errorf("response from %s exceeds maximum size of %d bytes", endpoint, c.maxSize)
	}

	logger.Debug("fetched %s (%d bytes)", endpoint, len(content))
	return content, nil
}

// leveledLogger routes retryablehttp's logging through the dsexport logger.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...any) { logger.Error("%s %v", msg, kv) }
func (leveledLogger) Warn(msg string, kv ...any)  { logger.Warn("%s %v", msg, kv) }
func (leveledLogger) Info(msg string, kv ...any)  { logger.Debug("%s %v", msg, kv) }
func (leveledLogger) Debug(msg string, kv ...any) { logger.Debug("%s %v", msg, kv) }
