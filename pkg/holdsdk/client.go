// Package holdsdk provides a typed Go client for the payment hold service
// plus the request/response types the service itself serves.
package holdsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal API client for the hold service. The zero value is
// not usable; construct with New.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (e.g. for custom
// transports or timeouts).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client authenticating with the given
// bearer token. Copies share the underlying http.Client.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// CreateHold places a hold on a client. Returns the hold and whether it was
// newly created (false on idempotent replay of a previously seen key).
func (c *Client) CreateHold(
	ctx context.Context,
	clientID, idempotencyKey string,
	req CreateHoldRequest,
) (Hold, bool, error) {
	var hold Hold
	status, err := c.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/clients/%s/payment-holds", url.PathEscape(clientID)),
		map[string]string{"Idempotency-Key": idempotencyKey},
		req, &hold)
	if err != nil {
		return Hold{}, false, err
	}
	return hold, status == http.StatusCreated, nil
}

// ListHolds lists a client's holds. status is ACTIVE, RELEASED or ALL;
// empty defaults to ACTIVE on the server.
func (c *Client) ListHolds(ctx context.Context, clientID, status string) (ListHoldsResponse, error) {
	path := fmt.Sprintf("/v1/clients/%s/payment-holds", url.PathEscape(clientID))
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var out ListHoldsResponse
	_, err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

// CheckHolds reports whether the client is currently blocked.
func (c *Client) CheckHolds(ctx context.Context, clientID string) (CheckHoldsResponse, error) {
	var out CheckHoldsResponse
	_, err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/v1/clients/%s/payment-holds:check", url.PathEscape(clientID)),
		nil, nil, &out)
	return out, err
}

// GetHold fetches one hold by the client/hold id pair.
func (c *Client) GetHold(ctx context.Context, clientID, holdID string) (Hold, error) {
	var out Hold
	_, err := c.doJSON(ctx, http.MethodGet,
		fmt.Sprintf("/v1/clients/%s/payment-holds/%s",
			url.PathEscape(clientID), url.PathEscape(holdID)),
		nil, nil, &out)
	return out, err
}

// ReleaseHold transitions an active hold to RELEASED.
func (c *Client) ReleaseHold(
	ctx context.Context,
	clientID, holdID string,
	req ReleaseHoldRequest,
) (Hold, error) {
	var out Hold
	_, err := c.doJSON(ctx, http.MethodPost,
		fmt.Sprintf("/v1/clients/%s/payment-holds/%s:release",
			url.PathEscape(clientID), url.PathEscape(holdID)),
		nil, req, &out)
	return out, err
}

// CreateClient provisions a new bank client record.
func (c *Client) CreateClient(ctx context.Context, req CreateClientRequest) (ClientInfo, error) {
	var out ClientInfo
	_, err := c.doJSON(ctx, http.MethodPost, "/v1/clients", nil, req, &out)
	return out, err
}

// Livez calls the liveness probe.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	_, err := c.doJSON(ctx, http.MethodGet, "/livez", nil, nil, &out)
	return out, err
}

// Readyz calls the readiness probe.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	_, err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, nil, &out)
	return out, err
}

// doJSON performs one request/response cycle: JSON in, JSON out, APIError
// on any non-2xx status. Returns the HTTP status code for callers that care
// about 200-vs-201 semantics.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	headers map[string]string,
	body, out any,
) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("holdsdk: marshal request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("holdsdk: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("holdsdk: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Error
		}
		return resp.StatusCode, apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("holdsdk: decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
