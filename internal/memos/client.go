// Package memos is a thin client for the Memos v1 REST API. Every call is a
// single HTTP round trip; responses are returned as raw JSON so callers can
// pass them through unchanged.
package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// HTTPClient abstracts HTTP calls for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx response from the Memos API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP Error %d: %s", e.Status, e.Body)
}

// Client talks to a Memos instance.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	logger     *slog.Logger
}

// NewClient creates a client for the Memos instance at baseURL. apiKey may be
// empty for unauthenticated instances.
func NewClient(baseURL, apiKey string, httpClient HTTPClient, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// BaseURL returns the configured Memos base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// HasAPIKey reports whether the client sends an Authorization header.
func (c *Client) HasAPIKey() bool { return c.apiKey != "" }

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Info("memos api request", "method", method, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("memos api error", "method", method, "url", u, "error", err)
		return nil, fmt.Errorf("calling memos API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	c.logger.Info("memos api response", "method", method, "url", u, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}
