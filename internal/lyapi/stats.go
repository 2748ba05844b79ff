package lyapi

import "context"

// Stat returns the upstream API's aggregate statistics. No filters apply.
func (c *Client) Stat(ctx context.Context) *Envelope {
	return c.fetch(ctx, "/stat", Query{})
}
