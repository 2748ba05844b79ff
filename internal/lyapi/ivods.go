package lyapi

import (
	"context"
	"net/url"
)

// ListIvods searches the IVOD (internet video on demand) recordings.
func (c *Client) ListIvods(ctx context.Context, f IvodFilter) *Envelope {
	return c.fetch(ctx, "/ivods", f.params()).unwrapList("ivods")
}

// GetIvod returns one recording by IVOD_ID, via the filtered list endpoint.
func (c *Client) GetIvod(ctx context.Context, ivodID string) *Envelope {
	var q Query
	q.Add(paramIvodID, ivodID)
	return c.fetch(ctx, "/ivods", q).unwrapList("ivods").firstOrNotFound("IVOD 影片", ivodID)
}

// MeetIvods returns the recordings of one meeting.
func (c *Client) MeetIvods(ctx context.Context, meetID string, f IvodFilter) *Envelope {
	path := "/meets/" + url.PathEscape(meetID) + "/ivods"
	return c.fetch(ctx, path, f.params()).unwrapList("ivods")
}
