// Package parallel is a typed HTTP client for the Parallel.ai
// web-intelligence API: search, extraction, monitors, task runs, task
// groups and entity discovery. It performs no caching and no retries;
// every failure surfaces to the caller as a typed error.
package parallel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/webwinghq/webwing/types"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.parallel.ai"

	// BetaHeader marks the service revision for beta endpoints.
	BetaHeader = "search-extract-2025-10-10"

	defaultTimeout = 30 * time.Second
)

// Client issues typed requests against the remote API. Each instance
// owns its http.Client; connections are released by the transport on
// all exit paths. Safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// injectable for waiter tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, for testing or proxies.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a client for the given credential. An empty
// credential is a configuration error; no call will ever reach the
// network without one.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, types.NewConfigurationError("parallel.apiKey")
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		now:        time.Now,
		sleep:      sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// do issues one request and decodes a 2xx response into out. Request
// bodies are marshalled as-is: absent optionals carry omitempty tags
// and never serialise as null. A non-2xx status yields an *APIError
// with the raw body; out is left untouched in that case.
func (c *Client) do(ctx context.Context, method, path string, body any, beta bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if beta {
		req.Header.Set("parallel-beta", BetaHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
