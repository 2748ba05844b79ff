package lyapi

import (
	"context"
	"net/url"
)

// ListBills searches the bill registry.
func (c *Client) ListBills(ctx context.Context, f BillFilter) *Envelope {
	return c.fetch(ctx, "/bills", f.params()).unwrapList("bills")
}

// GetBill returns one bill by 議案編號, via the filtered list endpoint.
func (c *Client) GetBill(ctx context.Context, billNo string) *Envelope {
	var q Query
	q.Add(paramBillNumber, billNo)
	return c.fetch(ctx, "/bills", q).unwrapList("bills").firstOrNotFound("議案", billNo)
}

// BillRelatedBills returns the bills related to one bill.
func (c *Client) BillRelatedBills(ctx context.Context, billNo string, f PageFilter) *Envelope {
	path := "/bills/" + url.PathEscape(billNo) + "/related_bills"
	return c.fetch(ctx, path, f.params()).unwrapList("related_bills")
}

// BillMeets returns the meeting records that handled one bill.
func (c *Client) BillMeets(ctx context.Context, billNo string, f BillMeetsFilter) *Envelope {
	path := "/bills/" + url.PathEscape(billNo) + "/meets"
	return c.fetch(ctx, path, f.params()).unwrapList("meets")
}

// BillDocHTML returns the bill's document HTML verbatim. This is the only
// text-mode accessor; no field extraction is attempted on the document.
func (c *Client) BillDocHTML(ctx context.Context, billNo string) *Envelope {
	path := "/bills/" + url.PathEscape(billNo) + "/doc_html"
	return c.fetchText(ctx, path, Query{})
}
