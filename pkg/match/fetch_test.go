package match_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/fieldops/rollcall/pkg/errors"
	"github.com/fieldops/rollcall/pkg/match"
	"github.com/fieldops/rollcall/pkg/people"
)

// pageRecorder serves a fixed user list page by page and records every
// request it sees.
type pageRecorder struct {
	users      []people.User
	totalCount *int64
	offsets    []int
	limits     []int
	failAt     int // offset that returns an error; -1 disables
	err        error
}

func newPageRecorder(n int, withTotal bool) *pageRecorder {
	users := make([]people.User, n)
	for i := range users {
		users[i] = people.User{ID: int64(i + 1)}
	}
	r := &pageRecorder{users: users, failAt: -1}
	if withTotal {
		total := int64(n)
		r.totalCount = &total
	}
	return r
}

func (r *pageRecorder) fetch(_ context.Context, limit, offset int) (match.Page, error) {
	r.offsets = append(r.offsets, offset)
	r.limits = append(r.limits, limit)

	if r.failAt >= 0 && offset == r.failAt {
		return match.Page{}, r.err
	}

	if offset >= len(r.users) {
		return match.Page{TotalCount: r.totalCount}, nil
	}
	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}
	return match.Page{Users: r.users[offset:end], TotalCount: r.totalCount}, nil
}

func TestFetchUsers(t *testing.T) {
	t.Run("stops at reported total", func(t *testing.T) {
		r := newPageRecorder(5, true)
		m := newMatcher(t, match.WithPageSize(2))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.NoError(t, err)

		assert.Len(t, users, 5)
		assert.Equal(t, []int{0, 2, 4}, r.offsets)
		assert.Equal(t, []int{2, 2, 2}, r.limits)
	})

	t.Run("no extra request when total lands on a page boundary", func(t *testing.T) {
		r := newPageRecorder(4, true)
		m := newMatcher(t, match.WithPageSize(2))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.NoError(t, err)

		assert.Len(t, users, 4)
		assert.Equal(t, []int{0, 2}, r.offsets)
	})

	t.Run("short page ends the walk without a total", func(t *testing.T) {
		r := newPageRecorder(5, false)
		m := newMatcher(t, match.WithPageSize(2))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.NoError(t, err)

		assert.Len(t, users, 5)
		// The final page holds one user (< limit), so no further request.
		assert.Equal(t, []int{0, 2, 4}, r.offsets)
	})

	t.Run("full final page without total costs one empty request", func(t *testing.T) {
		r := newPageRecorder(4, false)
		m := newMatcher(t, match.WithPageSize(2))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.NoError(t, err)

		assert.Len(t, users, 4)
		assert.Equal(t, []int{0, 2, 4}, r.offsets)
	})

	t.Run("empty listing", func(t *testing.T) {
		r := newPageRecorder(0, false)
		m := newMatcher(t, match.WithPageSize(2))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.NoError(t, err)

		assert.Empty(t, users)
		assert.Equal(t, []int{0}, r.offsets)
	})

	t.Run("single page under limit", func(t *testing.T) {
		r := newPageRecorder(3, false)
		m := newMatcher(t, match.WithPageSize(100))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.NoError(t, err)

		assert.Len(t, users, 3)
		assert.Equal(t, []int{0}, r.offsets)
	})

	t.Run("records arrive in listing order", func(t *testing.T) {
		r := newPageRecorder(5, true)
		m := newMatcher(t, match.WithPageSize(2))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.NoError(t, err)

		for i, u := range users {
			assert.Equal(t, int64(i+1), u.ID)
		}
	})

	t.Run("page error aborts the fetch", func(t *testing.T) {
		r := newPageRecorder(5, true)
		r.failAt = 2
		r.err = errors.New("connection reset")
		m := newMatcher(t, match.WithPageSize(2))

		users, err := m.FetchUsers(context.Background(), r.fetch)
		require.Error(t, err)
		assert.Nil(t, users)

		// The failing offset is carried and the cause stays reachable.
		var fetchErr *pkgerrors.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, 2, fetchErr.Offset)
		assert.Equal(t, "users", fetchErr.Resource)
		assert.ErrorIs(t, err, r.err)

		// No retry after the failure.
		assert.Equal(t, []int{0, 2}, r.offsets)
	})

	t.Run("error on first page", func(t *testing.T) {
		r := newPageRecorder(5, true)
		r.failAt = 0
		r.err = errors.New("boom")
		m := newMatcher(t, match.WithPageSize(2))

		_, err := m.FetchUsers(context.Background(), r.fetch)
		require.Error(t, err)
		assert.Equal(t, []int{0}, r.offsets)
	})
}
