// Package tools exposes the lyapi accessors as MCP tools.
//
// FILES:
//   - registry.go: explicit tool table and server construction
//   - args.go:     argument decoding that preserves absence semantics
//   - render.go:   envelope to tool-result rendering
//   - bills.go, committees.go, gazettes.go, interpellations.go, ivods.go,
//     stats.go: tool schemas and handlers, one file per resource
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

// toolSpec pairs one tool schema with its handler. The registry is an
// explicit table built once at startup; nothing is registered dynamically
// after that.
type toolSpec struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// NewServer builds the MCP server with every Legislative Yuan tool
// registered.
func NewServer(client *lyapi.Client, version string) *server.MCPServer {
	s := server.NewMCPServer("立法院 API v2", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, spec := range registry(client) {
		s.AddTool(spec.tool, spec.handler)
	}
	return s
}

func registry(c *lyapi.Client) []toolSpec {
	var specs []toolSpec
	specs = append(specs, statTools(c)...)
	specs = append(specs, billTools(c)...)
	specs = append(specs, committeeTools(c)...)
	specs = append(specs, gazetteTools(c)...)
	specs = append(specs, interpellationTools(c)...)
	specs = append(specs, ivodTools(c)...)
	return specs
}

// Shared property options: every list tool carries the same pagination and
// output-field parameters.
func pagingOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("page", mcp.Description("頁數，預設1")),
		mcp.WithNumber("limit", mcp.Description("每頁筆數，預設20，建議不超過100")),
	}
}

func outputFieldsOption() mcp.ToolOption {
	return mcp.WithArray("output_fields",
		mcp.Description("自訂回傳欄位（如需指定欄位，請填寫欄位名稱列表）"),
		mcp.Items(map[string]any{"type": "string"}),
	)
}
