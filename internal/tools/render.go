package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/sjson"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
	"github.com/lygovtw/ly-gateway/internal/utils"
)

// render converts an envelope into a tool result. Failures become
// error-flagged text results carrying the envelope's message; a failed
// lookup must never surface as a protocol fault and abort the host session.
func render(env *lyapi.Envelope) *mcp.CallToolResult {
	if !env.Success {
		return mcp.NewToolResultError(env.Err.Message)
	}
	if env.Payload == nil {
		// Text-mode payload (doc_html): pass the document through verbatim.
		return mcp.NewToolResultText(env.Text)
	}
	body, err := renderJSON(env)
	if err != nil {
		return mcp.NewToolResultError("結果序列化失敗：" + err.Error())
	}
	return mcp.NewToolResultText(body)
}

// renderJSON assembles {data, total, total_page, page, limit} for paginated
// results and passes single payloads through untouched. Non-ASCII content
// stays literal.
func renderJSON(env *lyapi.Envelope) (string, error) {
	raw := []byte(env.Payload)
	if p := env.Pagination; p != nil {
		out := []byte(`{}`)
		var err error
		if out, err = sjson.SetRawBytes(out, "data", raw); err != nil {
			return "", err
		}
		if out, err = sjson.SetBytes(out, "total", p.Total); err != nil {
			return "", err
		}
		if out, err = sjson.SetBytes(out, "total_page", p.TotalPage); err != nil {
			return "", err
		}
		if out, err = sjson.SetBytes(out, "page", p.Page); err != nil {
			return "", err
		}
		if out, err = sjson.SetBytes(out, "limit", p.Limit); err != nil {
			return "", err
		}
		raw = out
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	pretty, err := utils.MarshalIndentNoEscape(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(pretty), nil
}
