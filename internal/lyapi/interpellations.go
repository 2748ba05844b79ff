package lyapi

import (
	"context"
	"net/url"
	"strconv"
)

// ListInterpellations searches the interpellation records.
func (c *Client) ListInterpellations(ctx context.Context, f InterpellationFilter) *Envelope {
	return c.fetch(ctx, "/interpellations", f.params()).unwrapList("interpellations")
}

// GetInterpellation returns one interpellation by 質詢編號, via the filtered
// list endpoint.
func (c *Client) GetInterpellation(ctx context.Context, interpellationID string) *Envelope {
	var q Query
	q.Add(paramInterpellationID, interpellationID)
	return c.fetch(ctx, "/interpellations", q).
		unwrapList("interpellations").
		firstOrNotFound("質詢", interpellationID)
}

// LegislatorInterpellations returns the interpellations raised by one
// legislator in one term.
func (c *Client) LegislatorInterpellations(ctx context.Context, term int, name string, f InterpellationFilter) *Envelope {
	// The path pins the legislator's term; the query-side term filter
	// mirrors it unless the caller narrows it separately.
	if f.Term == nil {
		f.Term = &term
	}
	path := "/legislators/" + strconv.Itoa(term) + "/" + url.PathEscape(name) + "/interpellations"
	return c.fetch(ctx, path, f.params()).unwrapList("interpellations")
}
