package lyapi

import (
	"context"
	"net/url"
)

// ListGazettes searches the gazette registry.
func (c *Client) ListGazettes(ctx context.Context, f GazetteFilter) *Envelope {
	return c.fetch(ctx, "/gazettes", f.params()).unwrapList("gazettes")
}

// GetGazette returns one gazette by 公報編號, via the filtered list endpoint.
func (c *Client) GetGazette(ctx context.Context, gazetteID string) *Envelope {
	var q Query
	q.Add(paramGazetteID, gazetteID)
	return c.fetch(ctx, "/gazettes", q).unwrapList("gazettes").firstOrNotFound("公報", gazetteID)
}

// GazetteAgendas returns the agendas contained in one gazette.
func (c *Client) GazetteAgendas(ctx context.Context, gazetteID string, f GazetteAgendaFilter) *Envelope {
	// The gazette is identified by the path; a stray filter value would
	// conflict with it.
	f.GazetteID = nil
	path := "/gazettes/" + url.PathEscape(gazetteID) + "/agendas"
	return c.fetch(ctx, path, f.params()).unwrapList("gazette_agendas")
}

// ListGazetteAgendas searches gazette agendas across all gazettes.
func (c *Client) ListGazetteAgendas(ctx context.Context, f GazetteAgendaFilter) *Envelope {
	return c.fetch(ctx, "/gazette_agendas", f.params()).unwrapList("gazette_agendas")
}

// GetGazetteAgenda returns one gazette agenda by 公報議程編號, via the
// filtered list endpoint.
func (c *Client) GetGazetteAgenda(ctx context.Context, agendaID string) *Envelope {
	var q Query
	q.Add(paramGazetteAgendaID, agendaID)
	return c.fetch(ctx, "/gazette_agendas", q).unwrapList("gazette_agendas").firstOrNotFound("公報目錄", agendaID)
}
