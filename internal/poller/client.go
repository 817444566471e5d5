package poller

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxDrainBytes bounds how much of the response body is drained before
// the connection is released. Bodies larger than this are discarded by
// closing the connection instead.
const maxDrainBytes = 1 << 20 // 1MB

// connection pooling limits; the monitor talks to a single host, so the
// pool stays small
const (
	defaultMaxIdleConns    = 2
	defaultMaxConnsPerHost = 2
	defaultIdleConnTimeout = 60 * time.Second
)

// Response holds the result of one GET made by [Client].
//
// The body is never retained: it is drained and discarded so the
// underlying connection can be reused. Only the status line (code and
// reason phrase) is captured.
type Response struct {
	// StatusCode is the HTTP status code (e.g., 200, 404, 500).
	// Zero if the request failed before receiving a response.
	StatusCode int

	// Reason is the reason phrase from the status line (e.g. "OK").
	// Empty if the request failed before receiving a response.
	Reason string

	// Latency is the total time taken for the request.
	Latency time.Duration

	// Error contains any error that occurred during the request,
	// including failures while draining the body. nil indicates the
	// status line was read and the connection released cleanly.
	Error error
}

// Client is an HTTP client wrapper for polling a single endpoint.
//
// Timeouts are applied per-request via context rather than as a global
// client timeout. Response bodies are drained to io.Discard (bounded)
// and closed on every path, so the connection is always released whether
// the request succeeds or fails.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a polling [Client].
//
// The transport keeps at most two idle connections since the monitor
// only ever talks to one host. Keep-alives are enabled so sequential
// iterations can reuse the same connection.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			// no default timeout - per-request timeouts via context
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConns,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
				DisableKeepAlives:   false,
			},
		},
	}
}

// Fetch performs one GET against url and returns a structured [Response].
//
// The timeout is applied via context cancellation. The response body is
// fully drained and discarded before returning, releasing the connection
// for reuse. Fetch always returns a Response; errors are captured in the
// Error field rather than returned separately, which keeps handling in
// the loop uniform: DNS failure, connection refusal, TLS failure,
// timeout, and read failure all surface the same way.
func (c *Client) Fetch(ctx context.Context, url string, timeout time.Duration) Response {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{
			Latency: time.Since(start),
			Error:   fmt.Errorf("failed to create request: %w", err),
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{
			Latency: time.Since(start),
			Error:   fmt.Errorf("request failed: %w", err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	// drain the body so the connection is released for reuse; content is
	// discarded, only the status line matters
	if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes)); err != nil {
		return Response{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
			Latency:    time.Since(start),
			Error:      fmt.Errorf("failed to read response body: %w", err),
		}
	}

	return Response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Latency:    time.Since(start),
		Error:      nil,
	}
}

// reasonPhrase extracts the reason phrase from a response status line.
// resp.Status is "200 OK"; strip the leading code to get "OK". Falls
// back to the standard text for the code if the server sent none.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}

// Close closes all idle connections in the client's connection pool.
//
// Safe to call multiple times and on a nil receiver. After Close, the
// client remains usable but new connections will be established as
// needed.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
