package crm

import "context"

// ListChapters returns one page of organizing chapters.
func (c *Client) ListChapters(ctx context.Context, params ListParams) (*Page[Chapter], error) {
	var page Page[Chapter]
	if err := c.get(ctx, "chapters", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}
