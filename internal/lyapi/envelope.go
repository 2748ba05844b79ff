package lyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// ErrorKind classifies one failed upstream call.
type ErrorKind string

const (
	ErrConnection  ErrorKind = "connection_failure"
	ErrTimeout     ErrorKind = "timeout"
	ErrNotFound    ErrorKind = "not_found"
	ErrRateLimited ErrorKind = "rate_limited"
	ErrUpstream    ErrorKind = "upstream_error"
	ErrParse       ErrorKind = "parse_error"
)

// maxErrorBodyLen limits upstream error body text carried into messages.
const maxErrorBodyLen = 500

// ErrorDescriptor pairs a classification with an operator-facing message.
// Messages are in Chinese; the audience is the same as the upstream API's.
type ErrorDescriptor struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

// Pagination is the metadata upstream list bodies carry.
type Pagination struct {
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
	Page      int64 `json:"page"`
	Limit     int64 `json:"limit"`
}

// Envelope is the normalized outcome of one upstream call. It lives for a
// single accessor invocation; failures are data here, never raised errors.
type Envelope struct {
	Success    bool
	Payload    json.RawMessage // structured payload (JSON mode)
	Text       string          // raw body (text mode, doc_html only)
	Pagination *Pagination
	Err        *ErrorDescriptor
}

func failure(kind ErrorKind, msg string) *Envelope {
	return &Envelope{Err: &ErrorDescriptor{Kind: kind, Message: msg}}
}

// normalize converts one transport outcome into an Envelope. It never fails:
// this is the single boundary where errors become data, so accessors above
// it handle every outcome uniformly.
func normalize(status int, body []byte, err error, text bool) *Envelope {
	if err != nil {
		return classifyTransport(err)
	}
	if status < 200 || status > 299 {
		return classifyStatus(status, body)
	}
	if text {
		return &Envelope{Success: true, Text: string(body)}
	}
	if !gjson.ValidBytes(body) {
		return failure(ErrParse, "回應內容不是有效的 JSON。")
	}
	return &Envelope{
		Success:    true,
		Payload:    json.RawMessage(body),
		Pagination: extractPagination(body),
	}
}

func classifyTransport(err error) *Envelope {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return failure(ErrTimeout, "請求逾時。API 服務可能繁忙，請稍後再試。")
	}
	return failure(ErrConnection, "連線錯誤。請檢查網路連線或 API 服務是否正常。")
}

func classifyStatus(status int, body []byte) *Envelope {
	switch status {
	case http.StatusNotFound:
		return failure(ErrNotFound, "查無資料：所查詢的資源不存在 (404)。請檢查參數是否正確。")
	case http.StatusTooManyRequests:
		return failure(ErrRateLimited, "請求過於頻繁 (429)。請稍後再試。")
	case http.StatusInternalServerError:
		return failure(ErrUpstream, "伺服器內部錯誤 (500)。API 服務可能暫時不可用。")
	default:
		msg := fmt.Sprintf("API 請求失敗：HTTP %d", status)
		if detail := strings.TrimSpace(string(body)); detail != "" {
			msg += "：" + truncate(detail, maxErrorBodyLen)
		}
		return failure(ErrUpstream, msg)
	}
}

// truncate caps s at n bytes without splitting a multi-byte rune; upstream
// error bodies are Chinese text.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// extractPagination lifts the pagination fields out of a JSON object body.
// Their absence is not an error; single entities carry none.
func extractPagination(body []byte) *Pagination {
	total := gjson.GetBytes(body, "total")
	totalPage := gjson.GetBytes(body, "total_page")
	if !total.Exists() && !totalPage.Exists() {
		return nil
	}
	return &Pagination{
		Total:     total.Int(),
		TotalPage: totalPage.Int(),
		Page:      gjson.GetBytes(body, "page").Int(),
		Limit:     gjson.GetBytes(body, "limit").Int(),
	}
}

// unwrapList reduces a list body to its rows. Upstream wraps rows under a
// resource-named key; older deployments used "data". A body with neither is
// passed through as-is.
func (e *Envelope) unwrapList(itemsKey string) *Envelope {
	if !e.Success {
		return e
	}
	items := gjson.GetBytes(e.Payload, itemsKey)
	if !items.Exists() {
		items = gjson.GetBytes(e.Payload, "data")
	}
	if items.Exists() {
		e.Payload = json.RawMessage(items.Raw)
	}
	return e
}

// firstOrNotFound implements get-single over a filtered list: the upstream
// API has no dedicated single-item endpoint for these resources. An empty
// result set is a domain-level not-found, not a transport error.
func (e *Envelope) firstOrNotFound(what, key string) *Envelope {
	if !e.Success {
		return e
	}
	rows := gjson.ParseBytes(e.Payload)
	if rows.IsArray() {
		if arr := rows.Array(); len(arr) > 0 {
			e.Payload = json.RawMessage(arr[0].Raw)
			e.Pagination = nil
			return e
		}
	}
	return failure(ErrNotFound, fmt.Sprintf("查無資料：找不到%s（%s）。", what, key))
}
