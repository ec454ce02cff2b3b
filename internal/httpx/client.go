// Package httpx provides the JSON API client shared by the dashboard data
// services: a pluggable base URL, a request timeout, and retry with backoff
// on server errors.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/shoplens/shoplens/internal/logging"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
}

// Client issues JSON GET requests against a single API base URL.
type Client struct {
	base     string
	http     *http.Client
	attempts uint64
	delay    time.Duration
	log      logging.Logger
}

// New builds a Client for base. attempts counts retries after the first
// try; only responses with status >= 500 are retried.
func New(base string, timeout time.Duration, attempts int, delay time.Duration, log logging.Logger) *Client {
	if attempts < 0 {
		attempts = 0
	}
	return &Client{
		base:     base,
		http:     &http.Client{Timeout: timeout},
		attempts: uint64(attempts),
		delay:    delay,
		log:      log,
	}
}

// GetJSON fetches base+path and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(c.attempts, retry.NewConstant(c.delay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.getOnce(ctx, path, out)
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Status >= http.StatusInternalServerError {
			c.log.Warn(ctx, "retrying after server error", "url", statusErr.URL, "status", statusErr.Status)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) getOnce(ctx context.Context, path string, out any) error {
	u, err := url.Parse(c.base + path)
	if err != nil {
		return fmt.Errorf("building request url: %w", err)
	}
	// Cache-busting timestamp, matching what the upstream demo APIs expect
	// from dashboard clients.
	q := u.Query()
	q.Set("_t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused across retries.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, URL: c.base + path}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
