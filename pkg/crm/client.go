// Package crm provides a typed client for the live organizing platform's
// v1 REST API. It covers the endpoints rollcall needs: paging through
// users, creating and updating them, attaching notes, and the chapter and
// event surfaces.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/fieldops/rollcall/internal/transport"
	"github.com/fieldops/rollcall/pkg/errors"
)

// serviceName attributes API errors to this client.
const serviceName = "crm"

const defaultUserAgent = "rollcall"

// Client talks to one live CRM instance.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	transport  *transport.Client
}

// Option configures a Client.
type Option func(*Client) error

// WithAPIKey sets the Bearer credential sent with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(key) == "" {
			return errors.ErrAPIKeyRequired
		}
		c.apiKey = key
		return nil
	}
}

// WithBaseURL points the client at a CRM instance's API root, for example
// "https://api.example-crm.com/v1". A trailing slash is tolerated.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if trimmed == "" {
			return errors.NewConfigError(serviceName, "base URL cannot be empty", errors.ErrBaseURLRequired)
		}
		c.baseURL = trimmed
		return nil
	}
}

// WithHTTPClient substitutes the underlying *http.Client, keeping its
// timeout and transport settings.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return errors.NewValidationError("http_client", nil, "cannot be nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) error {
		c.userAgent = userAgent
		return nil
	}
}

// New creates a CRM client. An API key and a base URL are required.
func New(opts ...Option) (*Client, error) {
	c := &Client{userAgent: defaultUserAgent}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}
	if c.baseURL == "" {
		return nil, errors.NewConfigError(serviceName, "no base URL configured", errors.ErrBaseURLRequired)
	}

	c.transport = transport.NewWithHTTPClient(c.httpClient, &transport.BearerAuth{}, c.apiKey)
	c.transport.SetUserAgent(c.userAgent)
	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// endpoint builds a fully qualified URL for an API path.
func (c *Client) endpoint(path string, params url.Values) string {
	u := c.baseURL + "/" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) get(ctx context.Context, path string, params url.Values, target any) error {
	resp, err := c.transport.Get(ctx, c.endpoint(path, params))
	if err != nil {
		return err
	}
	return transport.DecodeResponse(serviceName, resp, target)
}

func (c *Client) post(ctx context.Context, path string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	resp, err := c.transport.Post(ctx, c.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return transport.DecodeResponse(serviceName, resp, target)
}

func (c *Client) put(ctx context.Context, path string, body, target any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	resp, err := c.transport.Put(ctx, c.endpoint(path, nil), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return transport.DecodeResponse(serviceName, resp, target)
}

func (c *Client) del(ctx context.Context, path string, target any) error {
	resp, err := c.transport.Delete(ctx, c.endpoint(path, nil))
	if err != nil {
		return err
	}
	return transport.DecodeResponse(serviceName, resp, target)
}
