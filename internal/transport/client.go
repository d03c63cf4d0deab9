// Package transport provides authenticated HTTP client plumbing shared by
// the collaborator clients.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/vitalsync/vitalsync/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// Client provides HTTP client functionality with authentication.
type Client struct {
	http    *http.Client
	auth    Authenticator
	service string
	headers map[string]string
}

// New creates a new transport client for the named service with the
// specified authenticator.
func New(service string, auth Authenticator) *Client {
	if auth == nil {
		auth = &NoAuth{}
	}
	return &Client{
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		auth:    auth,
		service: service,
		headers: make(map[string]string),
	}
}

// SetAuth replaces the client's authenticator. Used after a login exchange
// upgrades credentials to a session token.
func (c *Client) SetAuth(auth Authenticator) {
	if auth == nil {
		auth = &NoAuth{}
	}
	c.auth = auth
}

// SetHeader registers a header added to every request, such as a service
// version pin.
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.auth.Apply(req)

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request and decodes the JSON response into target.
func (c *Client) Get(ctx context.Context, url string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &errors.APIError{Service: c.service, Endpoint: url, Message: "failed to create request", Err: err}
	}

	resp, err := c.Do(req)
	if err != nil {
		return &errors.APIError{Service: c.service, Endpoint: url, Message: "request failed", Err: err}
	}

	return c.DecodeResponse(resp, target)
}

// Post marshals body to JSON, performs a POST request, and decodes the JSON
// response into target. A nil target discards the response body.
func (c *Client) Post(ctx context.Context, url string, body, target any) error {
	return c.send(ctx, http.MethodPost, url, body, target)
}

// Patch marshals body to JSON, performs a PATCH request, and decodes the
// JSON response into target. A nil target discards the response body.
func (c *Client) Patch(ctx context.Context, url string, body, target any) error {
	return c.send(ctx, http.MethodPatch, url, body, target)
}

func (c *Client) send(ctx context.Context, method, url string, body, target any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WrapParse("json", "request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &errors.APIError{Service: c.service, Endpoint: url, Message: "failed to create request", Err: err}
	}

	resp, err := c.Do(req)
	if err != nil {
		return &errors.APIError{Service: c.service, Endpoint: url, Message: "request failed", Err: err}
	}

	return c.DecodeResponse(resp, target)
}

// DecodeResponse decodes a JSON response into the target structure.
// Non-2xx statuses become an errors.APIError carrying the response body.
// A nil target discards the body after the status check.
func (c *Client) DecodeResponse(resp *http.Response, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &errors.APIError{Service: c.service, StatusCode: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &errors.APIError{
			Service:    c.service,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", c.service+" response", err)
	}

	return nil
}
