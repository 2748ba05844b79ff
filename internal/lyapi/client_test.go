package lyapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a stub upstream and records each request's
// decoded query.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL)), srv
}

func TestListBillsSendsDefaultsAndUnwraps(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 2, "total_page": 1, "page": 1, "limit": 20,
			"bills": [{"議案編號": "a"}, {"議案編號": "b"}]}`))
	})

	env := c.ListBills(context.Background(), BillFilter{})

	require.True(t, env.Success)
	assert.Equal(t, "/bills", gotPath)
	assert.Equal(t, []string{"1"}, gotQuery["page"])
	assert.Equal(t, []string{"20"}, gotQuery["limit"])
	assert.Len(t, gotQuery, 2, "an empty filter sends paging only")

	assert.JSONEq(t, `[{"議案編號": "a"}, {"議案編號": "b"}]`, string(env.Payload))
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(2), env.Pagination.Total)
}

func TestListBillsSendsChineseFilterKeys(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"total": 0, "bills": []}`))
	})

	term, session := 11, 2
	proposer := "王委員"
	env := c.ListBills(context.Background(), BillFilter{
		Term:         &term,
		Session:      &session,
		Proposer:     &proposer,
		OutputFields: []string{"議案編號", "議案名稱"},
	})

	require.True(t, env.Success)
	assert.Equal(t, []string{"11"}, gotQuery["屆"])
	assert.Equal(t, []string{"2"}, gotQuery["會期"])
	assert.Equal(t, []string{"王委員"}, gotQuery["提案人"])
	assert.Equal(t, []string{"議案編號", "議案名稱"}, gotQuery["output_fields"])
}

func TestGetBillReturnsFirstMatch(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"total": 1, "bills": [{"議案編號": "203110077970000", "議案名稱": "條例草案"}]}`))
	})

	env := c.GetBill(context.Background(), "203110077970000")

	require.True(t, env.Success)
	assert.Equal(t, []string{"203110077970000"}, gotQuery["議案編號"])
	assert.NotContains(t, gotQuery, "page", "single lookups send no paging")
	assert.JSONEq(t, `{"議案編號": "203110077970000", "議案名稱": "條例草案"}`, string(env.Payload))
	assert.Nil(t, env.Pagination)
}

func TestGetBillNotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "bills": []}`))
	})

	env := c.GetBill(context.Background(), "203999999999999")

	assert.False(t, env.Success)
	require.NotNil(t, env.Err)
	assert.Equal(t, ErrNotFound, env.Err.Kind)
	assert.Contains(t, env.Err.Message, "203999999999999")
}

func TestGetCommitteeNotFoundNamesTheCode(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total": 0, "committees": []}`))
	})

	env := c.GetCommittee(context.Background(), "99")

	assert.False(t, env.Success)
	require.NotNil(t, env.Err)
	assert.Equal(t, ErrNotFound, env.Err.Kind)
	assert.Equal(t, "查無資料：找不到委員會（99）。", env.Err.Message)
}

func TestBillDocHTMLReturnsBodyVerbatim(t *testing.T) {
	const doc = "<html><body><h1>議案本文</h1></body></html>"
	var gotPath string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(doc))
	})

	env := c.BillDocHTML(context.Background(), "203110077970000")

	require.True(t, env.Success)
	assert.Equal(t, "/bills/203110077970000/doc_html", gotPath)
	assert.Equal(t, doc, env.Text)
	assert.Nil(t, env.Payload)
}

func TestSubresourcePaths(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *Client) *Envelope
		wantPath string
		body     string
	}{
		{
			name: "bill related bills",
			call: func(c *Client) *Envelope {
				return c.BillRelatedBills(context.Background(), "203110077970000", PageFilter{})
			},
			wantPath: "/bills/203110077970000/related_bills",
			body:     `{"total": 0, "related_bills": []}`,
		},
		{
			name: "bill meets",
			call: func(c *Client) *Envelope {
				return c.BillMeets(context.Background(), "203110077970000", BillMeetsFilter{})
			},
			wantPath: "/bills/203110077970000/meets",
			body:     `{"total": 0, "meets": []}`,
		},
		{
			name: "committee meets",
			call: func(c *Client) *Envelope {
				return c.CommitteeMeets(context.Background(), "15", CommitteeMeetsFilter{})
			},
			wantPath: "/committees/15/meets",
			body:     `{"total": 0, "meets": []}`,
		},
		{
			name: "gazette agendas",
			call: func(c *Client) *Envelope {
				return c.GazetteAgendas(context.Background(), "1137701", GazetteAgendaFilter{})
			},
			wantPath: "/gazettes/1137701/agendas",
			body:     `{"total": 0, "gazette_agendas": []}`,
		},
		{
			name: "meet ivods",
			call: func(c *Client) *Envelope {
				return c.MeetIvods(context.Background(), "院會-11-2-1", IvodFilter{})
			},
			wantPath: "/meets/" + url.PathEscape("院會-11-2-1") + "/ivods",
			body:     `{"total": 0, "ivods": []}`,
		},
		{
			name: "legislator interpellations",
			call: func(c *Client) *Envelope {
				return c.LegislatorInterpellations(context.Background(), 11, "王委員", InterpellationFilter{})
			},
			wantPath: "/legislators/11/" + url.PathEscape("王委員") + "/interpellations",
			body:     `{"total": 0, "interpellations": []}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotURI string
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotURI = r.URL.EscapedPath()
				_, _ = w.Write([]byte(tt.body))
			})

			env := tt.call(c)

			require.True(t, env.Success)
			assert.Equal(t, tt.wantPath, gotURI)
		})
	}
}

func TestLegislatorInterpellationsPinsTermFilter(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"total": 0, "interpellations": []}`))
	})

	env := c.LegislatorInterpellations(context.Background(), 11, "王委員", InterpellationFilter{})

	require.True(t, env.Success)
	assert.Equal(t, []string{"11"}, gotQuery["屆"])
}

func TestStatHitsStatEndpoint(t *testing.T) {
	var gotPath, gotRawQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"bill": {"total": 100000}}`))
	})

	env := c.Stat(context.Background())

	require.True(t, env.Success)
	assert.Equal(t, "/stat", gotPath)
	assert.Empty(t, gotRawQuery)
	assert.Nil(t, env.Pagination)
}

func TestClientTimeoutClassifiedAsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(WithBaseURL(srv.URL), WithTimeout(50*time.Millisecond))

	env := c.Stat(context.Background())

	assert.False(t, env.Success)
	require.NotNil(t, env.Err)
	assert.Equal(t, ErrTimeout, env.Err.Kind)
	assert.Contains(t, env.Err.Message, "請求逾時")
}

func TestClientConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore
	c := NewClient(WithBaseURL(srv.URL))

	env := c.Stat(context.Background())

	assert.False(t, env.Success)
	require.NotNil(t, env.Err)
	assert.Equal(t, ErrConnection, env.Err.Kind)
	assert.Contains(t, env.Err.Message, "連線錯誤")
}

func TestClientUpstreamStatusSurfaced(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	env := c.ListBills(context.Background(), BillFilter{})

	assert.False(t, env.Success)
	require.NotNil(t, env.Err)
	assert.Equal(t, ErrUpstream, env.Err.Kind)
}

func TestClientSendsIdentityHeaders(t *testing.T) {
	var gotAccept, gotUA string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	})

	env := c.Stat(context.Background())

	require.True(t, env.Success)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "ly-gateway/1.0", gotUA)
}
