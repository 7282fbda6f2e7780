// Package graph talks to the companion graph service that mirrors user
// identities for relationship queries. The mirror is eventual: callers that
// treat it as best-effort swallow failures and keep the local result.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CreateUserRequest mirrors a newly registered user into the graph.
type CreateUserRequest struct {
	UserID   int64  `json:"userId"`
	UserName string `json:"userName"`
}

// Client is the outbound contract consumed by the registration flow.
type Client interface {
	CreateUser(ctx context.Context, req CreateUserRequest) error
	DeleteUser(ctx context.Context, userID int64) error
}

// StatusError reports a non-2xx answer from the graph service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graph service returned %d: %s", e.StatusCode, e.Body)
}

// IsClientError reports whether the failure was a 4xx answer.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// httpClient is the HTTP implementation of Client.
type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a graph client against baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) CreateUser(ctx context.Context, req CreateUserRequest) error {
	return c.do(ctx, http.MethodPost, "/users", req)
}

func (c *httpClient) DeleteUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil)
}

func (c *httpClient) do(ctx context.Context, method, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal graph request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build graph request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call graph service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// Keep a short slice of the body for logging; never unbounded.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
}
