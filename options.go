package rollcall

import (
	"net/http"

	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/crm"
	"github.com/fieldops/rollcall/pkg/errors"
)

// options configures a Client.
type options struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
	threshold  float64
	pageSize   int
	userLists  []int64
	crm        *crm.Client // prebuilt client; overrides the connection options
}

func defaultOptions() *options {
	return &options{
		threshold: constants.DefaultMatchThreshold,
		pageSize:  constants.DefaultPageSize,
	}
}

// Option is a function that configures a Client.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns client options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithAPIKey sets the live-system API credential.
func WithAPIKey(key string) Option {
	return func(o *options) error {
		o.apiKey = key
		return nil
	}
}

// WithBaseURL points the client at a CRM instance's API root.
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		o.baseURL = baseURL
		return nil
	}
}

// WithUserAgent overrides the User-Agent header on API requests.
func WithUserAgent(userAgent string) Option {
	return func(o *options) error {
		o.userAgent = userAgent
		return nil
	}
}

// WithHTTPClient substitutes the *http.Client used for API requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) error {
		if httpClient == nil {
			return &errors.ValidationError{
				Field:   "http_client",
				Message: "cannot be nil",
			}
		}
		o.httpClient = httpClient
		return nil
	}
}

// WithThreshold sets the confidence cutoff for reported matches. Must be
// greater than 0 and at most 1.
func WithThreshold(threshold float64) Option {
	return func(o *options) error {
		o.threshold = threshold
		return nil
	}
}

// WithPageSize sets how many users each live-system page request asks for.
func WithPageSize(pageSize int) Option {
	return func(o *options) error {
		o.pageSize = pageSize
		return nil
	}
}

// WithUserLists restricts the live roster to members of the given user
// lists. An empty set means the whole roster.
func WithUserLists(userListIDs ...int64) Option {
	return func(o *options) error {
		o.userLists = userListIDs
		return nil
	}
}

// WithClient injects a prebuilt CRM client, bypassing the connection
// options.
func WithClient(client *crm.Client) Option {
	return func(o *options) error {
		if client == nil {
			return &errors.ValidationError{
				Field:   "client",
				Message: "cannot be nil",
			}
		}
		o.crm = client
		return nil
	}
}
