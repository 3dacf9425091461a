// Package transport provides the authenticated HTTP plumbing shared by the
// API clients in this module.
package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http      *http.Client
	auth      Authenticator
	apiKey    string
	userAgent string
}

// New creates a transport client that authenticates every request with the
// given authenticator and credential.
func New(auth Authenticator, apiKey string) *Client {
	return NewWithHTTPClient(nil, auth, apiKey)
}

// NewWithHTTPClient creates a transport client around a caller-supplied
// *http.Client, keeping its timeout and transport settings. A nil client
// falls back to the default.
func NewWithHTTPClient(httpClient *http.Client, auth Authenticator, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	if auth == nil {
		auth = &NoAuth{}
	}
	return &Client{
		http:   httpClient,
		auth:   auth,
		apiKey: apiKey,
	}
}

// SetUserAgent sets the User-Agent header applied to every request.
func (c *Client) SetUserAgent(userAgent string) {
	c.userAgent = userAgent
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.apiKey != "" {
		c.auth.Apply(req, c.apiKey)
	}

	// Set common headers
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Method == "POST" || req.Method == "PUT" || req.Method == "PATCH" {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", url, body)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "POST "+url, err)
	}
	return c.Do(req)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, url string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "PUT", url, body)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "PUT "+url, err)
	}
	return c.Do(req)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "DELETE", url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "DELETE "+url, err)
	}
	return c.Do(req)
}
