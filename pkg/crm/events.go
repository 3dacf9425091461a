package crm

import "context"

// ListEvents returns one page of events.
func (c *Client) ListEvents(ctx context.Context, params ListParams) (*Page[Event], error) {
	var page Page[Event]
	if err := c.get(ctx, "events", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateEventRSVP RSVPs a user to an event session.
func (c *Client) CreateEventRSVP(ctx context.Context, rsvp EventRSVPCreate) (*EventRSVP, error) {
	var created EventRSVP
	if err := c.post(ctx, "event_rsvps", rsvp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
