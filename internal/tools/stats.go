package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

func statTools(c *lyapi.Client) []toolSpec {
	return []toolSpec{
		{tool: getStatTool(), handler: getStatHandler(c)},
	}
}

func getStatTool() mcp.Tool {
	return mcp.NewTool("get_stat",
		mcp.WithDescription("取得立法院 API 的整體統計資訊（議案、會議、公報、質詢、IVOD 等資料筆數與最新屆期）。"),
	)
}

func getStatHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return render(c.Stat(ctx)), nil
	}
}
