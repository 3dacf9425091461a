// Package rollcall reconciles person records from an organizing-system
// export with the live membership system's user records.
//
// Matching is deterministic and rule-based: a person and a user pair up
// only when a normalized identity key matches exactly, and every match
// carries a confidence that reflects which key agreed:
//   - email or phone: 1.0
//   - first and last name confirmed by zip code: 0.9
//   - first and last name alone: 0.7
//
// Candidates below the configured threshold are dropped, and nothing is
// ever written back to the live system during a match run.
//
// Example usage:
//
//	client, err := rollcall.New(
//	    rollcall.WithAPIKey(os.Getenv("ROLLCALL_API_KEY")),
//	    rollcall.WithBaseURL("https://api.example-crm.com/v1"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// One best match per exported person (nil when nothing clears the bar)
//	best, err := client.FindBestMatches(ctx, "export.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for personID, m := range best {
//	    if m == nil {
//	        fmt.Printf("person %d: no match\n", personID)
//	        continue
//	    }
//	    fmt.Printf("person %d -> user %d (%.1f)\n", personID, m.UserID, m.Confidence)
//	}
package rollcall

import (
	"context"

	"github.com/fieldops/rollcall/pkg/crm"
	"github.com/fieldops/rollcall/pkg/export"
	"github.com/fieldops/rollcall/pkg/logging"
	"github.com/fieldops/rollcall/pkg/match"
	"github.com/fieldops/rollcall/pkg/people"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Matcher pairs exported persons with live users.
type Matcher interface {
	// FindMatches returns every live-user match at or above the confidence
	// threshold for each person in the export, strongest first. Persons
	// with no match are absent from the result.
	FindMatches(ctx context.Context, exportPath string) (map[int64][]match.Match, error)

	// FindBestMatches returns the single strongest match per person. Every
	// person in the export has an entry; nil marks those with no match at
	// or above the threshold.
	FindBestMatches(ctx context.Context, exportPath string) (map[int64]*match.Match, error)
}

// Client is the high-level entry point for reconciliation runs.
type Client interface {

	// Matcher pairs exported persons with live users
	Matcher

	// Users pages through every user in the live system
	Users(ctx context.Context) ([]people.User, error)

	// CRM exposes the underlying API client for operations beyond matching
	CRM() *crm.Client
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	crm     *crm.Client
	matcher *match.Matcher
}

// New creates a new Client instance with the given options. An API key and
// a base URL are required unless a prebuilt CRM client is injected.
func New(opts ...Option) (Client, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	matcher, err := match.New(
		match.WithThreshold(options.threshold),
		match.WithPageSize(options.pageSize),
	)
	if err != nil {
		return nil, err
	}

	c := &client{
		options: options,
		matcher: matcher,
		crm:     options.crm,
	}

	if c.crm == nil {
		crmOpts := []crm.Option{
			crm.WithAPIKey(options.apiKey),
			crm.WithBaseURL(options.baseURL),
		}
		if options.httpClient != nil {
			crmOpts = append(crmOpts, crm.WithHTTPClient(options.httpClient))
		}
		if options.userAgent != "" {
			crmOpts = append(crmOpts, crm.WithUserAgent(options.userAgent))
		}
		if c.crm, err = crm.New(crmOpts...); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// FindMatches loads the export at exportPath, pages every user out of the
// live system, and returns all matches at or above the threshold.
func (c *client) FindMatches(ctx context.Context, exportPath string) (map[int64][]match.Match, error) {
	snapshot, users, err := c.load(ctx, exportPath)
	if err != nil {
		return nil, err
	}
	return c.matcher.Match(snapshot.People, users), nil
}

// FindBestMatches runs the same reconciliation as FindMatches and keeps
// only the strongest match per person.
func (c *client) FindBestMatches(ctx context.Context, exportPath string) (map[int64]*match.Match, error) {
	snapshot, users, err := c.load(ctx, exportPath)
	if err != nil {
		return nil, err
	}
	return c.matcher.Best(snapshot.People, users), nil
}

// Users pages through every user in the live system, honoring any
// configured user list restriction.
func (c *client) Users(ctx context.Context) ([]people.User, error) {
	return c.matcher.FetchUsers(ctx, c.crm.PageFunc(c.options.userLists...))
}

// CRM exposes the underlying API client.
func (c *client) CRM() *crm.Client {
	return c.crm
}

// load pulls both sides of a reconciliation run: the export snapshot and
// the full live roster. The roster is fetched once per run.
func (c *client) load(ctx context.Context, exportPath string) (*export.Snapshot, []people.User, error) {
	snapshot, err := export.Load(exportPath)
	if err != nil {
		return nil, nil, err
	}

	log := logging.Ctx(ctx)
	log.Debug().
		Str("export", exportPath).
		Int("people", len(snapshot.People)).
		Msg("Export snapshot loaded")

	users, err := c.matcher.FetchUsers(ctx, c.crm.PageFunc(c.options.userLists...))
	if err != nil {
		return nil, nil, err
	}

	log.Debug().
		Int("users", len(users)).
		Msg("Live roster fetched")

	return snapshot, users, nil
}
