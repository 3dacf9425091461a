// Package match reconciles exported person records against live user records.
//
// Matching is deterministic and rule-based: candidates are found through
// exact equality of normalized fields, never through fuzzy similarity.
// Email and phone equality carry full confidence; a first+last name hit
// carries less, raised when the postal codes agree as well. The same inputs
// always produce the same ranked output.
//
// A Matcher is cheap to construct and safe for concurrent use; each call
// builds its own working state.
package match

import (
	"github.com/fieldops/rollcall/pkg/constants"
	"github.com/fieldops/rollcall/pkg/errors"
)

// Matcher runs reconciliation with a fixed threshold and page size.
type Matcher struct {
	threshold float64
	pageSize  int
}

// Option is a function that configures a Matcher.
type Option func(*Matcher) error

// WithThreshold sets the minimum confidence a candidate needs to be
// reported. Valid values are in (0.0, 1.0].
func WithThreshold(threshold float64) Option {
	return func(m *Matcher) error {
		if threshold <= 0 || threshold > 1 {
			return &errors.ValidationError{
				Field:   "threshold",
				Value:   threshold,
				Message: "must be in (0.0, 1.0]",
			}
		}
		m.threshold = threshold
		return nil
	}
}

// WithPageSize sets how many users FetchUsers requests per page.
func WithPageSize(size int) Option {
	return func(m *Matcher) error {
		if size <= 0 {
			return &errors.ValidationError{
				Field:   "page_size",
				Value:   size,
				Message: "must be positive",
			}
		}
		m.pageSize = size
		return nil
	}
}

// New creates a Matcher with the given options. Defaults: threshold 0.8,
// page size 100.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{
		threshold: constants.DefaultMatchThreshold,
		pageSize:  constants.DefaultPageSize,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Threshold returns the configured confidence threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// PageSize returns the configured fetch page size.
func (m *Matcher) PageSize() int {
	return m.pageSize
}
