package lyapi

import (
	"context"
	"net/url"
)

// ListCommittees searches the committee registry.
func (c *Client) ListCommittees(ctx context.Context, f CommitteeFilter) *Envelope {
	return c.fetch(ctx, "/committees", f.params()).unwrapList("committees")
}

// GetCommittee returns one committee by 委員會代號, via the filtered list
// endpoint.
func (c *Client) GetCommittee(ctx context.Context, comtCd string) *Envelope {
	var q Query
	q.Add(paramCommitteeCode, comtCd)
	return c.fetch(ctx, "/committees", q).unwrapList("committees").firstOrNotFound("委員會", comtCd)
}

// CommitteeMeets returns the meeting records of one committee.
func (c *Client) CommitteeMeets(ctx context.Context, comtCd string, f CommitteeMeetsFilter) *Envelope {
	path := "/committees/" + url.PathEscape(comtCd) + "/meets"
	return c.fetch(ctx, path, f.params()).unwrapList("meets")
}
