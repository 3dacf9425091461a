package crm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldops/rollcall/pkg/match"
	"github.com/fieldops/rollcall/pkg/people"
)

// ListUsers returns one page of live users. Optional user list IDs restrict
// the listing to members of those lists.
func (c *Client) ListUsers(ctx context.Context, params ListParams, userListIDs ...int64) (*Page[people.User], error) {
	values := params.values()
	if len(userListIDs) > 0 {
		ids := make([]string, len(userListIDs))
		for i, id := range userListIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		values.Set("user_list_ids", strings.Join(ids, ","))
	}

	var page Page[people.User]
	if err := c.get(ctx, "users", values, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetUser fetches a single live user by ID.
func (c *Client) GetUser(ctx context.Context, userID int64) (*people.User, error) {
	var user people.User
	if err := c.get(ctx, fmt.Sprintf("users/%d", userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a live user and returns the stored record.
func (c *Client) CreateUser(ctx context.Context, user UserCreate) (*people.User, error) {
	var created people.User
	if err := c.post(ctx, "users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateUser applies a partial update to a live user and returns the
// stored record.
func (c *Client) UpdateUser(ctx context.Context, userID int64, user UserUpdate) (*people.User, error) {
	var updated people.User
	if err := c.put(ctx, fmt.Sprintf("users/%d", userID), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CreateUserNote attaches a note to a live user.
func (c *Client) CreateUserNote(ctx context.Context, note UserNoteCreate) (*UserNote, error) {
	var created UserNote
	if err := c.post(ctx, "user_notes", note, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteUserNote removes a note from a live user.
func (c *Client) DeleteUserNote(ctx context.Context, noteID int64) error {
	return c.del(ctx, fmt.Sprintf("user_notes/%d", noteID), nil)
}

// PageFunc adapts ListUsers to the match engine's page-fetch capability.
// Optional user list IDs restrict every fetched page to those lists.
func (c *Client) PageFunc(userListIDs ...int64) match.PageFunc {
	return func(ctx context.Context, limit, offset int) (match.Page, error) {
		page, err := c.ListUsers(ctx, ListParams{Limit: limit, Offset: offset}, userListIDs...)
		if err != nil {
			return match.Page{}, err
		}

		out := match.Page{Users: page.Data}
		if page.Meta != nil {
			out.TotalCount = page.Meta.TotalCount
		}
		return out, nil
	}
}
