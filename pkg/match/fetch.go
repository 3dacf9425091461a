package match

import (
	"context"

	"github.com/fieldops/rollcall/pkg/errors"
	"github.com/fieldops/rollcall/pkg/logging"
	"github.com/fieldops/rollcall/pkg/people"
)

// Page is one page of live user records. TotalCount carries the server's
// reported total when the API includes one; nil means unknown.
type Page struct {
	Users      []people.User
	TotalCount *int64
}

// PageFunc fetches one page of users at the given offset. Implementations
// must honor ctx cancellation and return an error for any failed fetch.
type PageFunc func(ctx context.Context, limit, offset int) (Page, error)

// FetchUsers walks the paginated user listing sequentially until it is
// exhausted and returns every record in arrival order. The walk stops on an
// empty page, on a page shorter than requested, or once the accumulated
// count reaches the server's reported total. A page error aborts the whole
// fetch; there are no retries, and the partial result is discarded.
func (m *Matcher) FetchUsers(ctx context.Context, fn PageFunc) ([]people.User, error) {
	log := logging.FromContext(ctx)

	var all []people.User
	limit := m.pageSize
	offset := 0
	for {
		log.Debug().Int("limit", limit).Int("offset", offset).Msg("fetching users page")

		page, err := fn(ctx, limit, offset)
		if err != nil {
			return nil, errors.WrapFetch("users", offset, err)
		}
		if len(page.Users) == 0 {
			break
		}

		all = append(all, page.Users...)

		if page.TotalCount != nil && int64(len(all)) >= *page.TotalCount {
			break
		}
		// A short page means the listing ran out even without a total.
		if len(page.Users) < limit {
			break
		}

		offset += limit
	}

	log.Debug().Int("users", len(all)).Msg("fetched all users")
	return all, nil
}
