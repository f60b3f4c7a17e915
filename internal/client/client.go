// Package client talks to a running lifecost HTTP API (lifecost serve).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/pipeline"
	"github.com/theirongolddev/lifecost/internal/server"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

// ErrUnavailable indicates the server could not be reached or answered
// with an unexpected status.
var ErrUnavailable = errors.New("client: server unavailable")

// Client calls the lifecost API at a base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for baseURL, e.g. "http://127.0.0.1:8788".
// Returns nil if the URL is empty. A missing scheme defaults to http.
func New(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	if !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// Health reports whether the server answers /healthz.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/healthz", nil)
	return err
}

// Countries lists the countries the server knows.
func (c *Client) Countries(ctx context.Context) ([]server.CountrySummary, error) {
	body, err := c.do(ctx, http.MethodGet, "/v1/countries", nil)
	if err != nil {
		return nil, err
	}

	var out []server.CountrySummary
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("client: parsing countries: %w", err)
	}
	return out, nil
}

// Estimate asks the server for an estimate. Unknown countries come back as
// pipeline.ErrUnknownCountry and rejected inputs as finance.ErrInvalidArgument.
func (c *Client) Estimate(ctx context.Context, country string, values model.Values) (model.Estimate, error) {
	var est model.Estimate

	payload, err := json.Marshal(server.EstimateRequest{Country: country, Values: values})
	if err != nil {
		return est, fmt.Errorf("client: encoding request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/v1/estimate", payload)
	if err != nil {
		return est, err
	}
	if err := json.Unmarshal(body, &est); err != nil {
		return est, fmt.Errorf("client: parsing estimate: %w", err)
	}
	return est, nil
}

// do performs a request and returns the response body of a 2xx answer.
func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("client: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "lifecost/1.0")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("client: reading response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", pipeline.ErrUnknownCountry, serverMessage(body))
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", finance.ErrInvalidArgument, serverMessage(body))
	default:
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, serverMessage(body))
	}
}

// serverMessage extracts the error text from an API error body, falling
// back to the raw body.
func serverMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
