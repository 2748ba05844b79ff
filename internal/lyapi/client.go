// Package lyapi is a client for the Legislative Yuan open-data API (v2).
//
// FILES:
//   - client.go:   shared HTTP gateway
//   - query.go:    ordered query parameters
//   - filters.go:  per-resource filter sets and upstream key translation
//   - envelope.go: normalized response envelope and error taxonomy
//   - bills.go, committees.go, gazettes.go, interpellations.go, ivods.go,
//     stats.go: resource accessors
package lyapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production Legislative Yuan API base URL.
// The canonical definition lives here. config.DefaultBaseURL re-exports it.
const DefaultBaseURL = "https://ly.govapi.tw/v2"

// DefaultTimeout is the fixed per-call timeout for upstream requests.
const DefaultTimeout = 30 * time.Second

// Pagination defaults applied by list accessors when the caller omits them.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Client is the Legislative Yuan API client. One instance is shared for the
// process lifetime; its http.Client connection pool is safe for concurrent
// in-flight requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the upstream base URL (tests point this at a local
// server).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a new Legislative Yuan API client. The upstream API is
// public; no credentials are involved.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do issues the single outbound GET for one accessor call. No retries and no
// backoff: an upstream failure surfaces straight to the normalizer.
func (c *Client) do(ctx context.Context, path string, q Query) (int, []byte, error) {
	url := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		url += "?" + enc
	}
	reqID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "ly-gateway/1.0")

	log.Debug().Str("request_id", reqID).Str("url", url).Msg("upstream request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Str("request_id", reqID).Str("url", url).Err(err).Msg("upstream request failed")
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}

	log.Debug().
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("upstream response")

	return resp.StatusCode, body, nil
}

// fetch runs one JSON-mode call through the gateway and the normalizer.
func (c *Client) fetch(ctx context.Context, path string, q Query) *Envelope {
	status, body, err := c.do(ctx, path, q)
	return normalize(status, body, err, false)
}

// fetchText is the text-mode variant. Only the doc_html accessor opts in;
// text mode is never auto-detected.
func (c *Client) fetchText(ctx context.Context, path string, q Query) *Envelope {
	status, body, err := c.do(ctx, path, q)
	return normalize(status, body, err, true)
}
