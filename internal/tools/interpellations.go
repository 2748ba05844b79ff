package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

func interpellationTools(c *lyapi.Client) []toolSpec {
	return []toolSpec{
		{tool: listInterpellationsTool(), handler: listInterpellationsHandler(c)},
		{tool: getInterpellationTool(), handler: getInterpellationHandler(c)},
		{tool: getLegislatorInterpellationsTool(), handler: getLegislatorInterpellationsHandler(c)},
	}
}

func listInterpellationsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("列出立法院質詢列表。"),
		mcp.WithString("interpellation_member", mcp.Description("質詢委員姓名，例：羅智強")),
		mcp.WithNumber("term", mcp.Description("屆，例：11")),
		mcp.WithNumber("session", mcp.Description("會期，例：2")),
		mcp.WithString("meeting_code", mcp.Description("會議代碼")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("list_interpellations", opts...)
}

func listInterpellationsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		f := lyapi.InterpellationFilter{
			Member:       strArg(args, "interpellation_member"),
			Term:         intArg(args, "term"),
			Session:      intArg(args, "session"),
			MeetingCode:  strArg(args, "meeting_code"),
			Page:         intArg(args, "page"),
			Limit:        intArg(args, "limit"),
			OutputFields: strListArg(args, "output_fields"),
		}
		return render(c.ListInterpellations(ctx, f)), nil
	}
}

func getInterpellationTool() mcp.Tool {
	return mcp.NewTool("get_interpellation",
		mcp.WithDescription("取得特定質詢的詳細資訊，包含質詢內容、質詢委員、相關會議等。"),
		mcp.WithString("interpellation_id", mcp.Required(), mcp.Description("質詢編號，必填，例：11-2-1-1")),
	)
}

func getInterpellationHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		interpellationID, err := req.RequireString("interpellation_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.GetInterpellation(ctx, interpellationID)), nil
	}
}

func getLegislatorInterpellationsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("取得委員為質詢委員的質詢列表。"),
		mcp.WithNumber("term", mcp.Required(), mcp.Description("屆，必填，例：11")),
		mcp.WithString("name", mcp.Required(), mcp.Description("委員姓名，必填，例：韓國瑜")),
		mcp.WithString("interpellation_member", mcp.Description("質詢委員姓名，例：羅智強")),
		mcp.WithNumber("session", mcp.Description("會期，例：2")),
		mcp.WithString("meeting_code", mcp.Description("會議代碼，例：院會-11-2-6")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("get_legislator_interpellations", opts...)
}

func getLegislatorInterpellationsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args := req.GetArguments()
		term := intArg(args, "term")
		if term == nil {
			return mcp.NewToolResultError("缺少必填參數：term（屆）"), nil
		}
		f := lyapi.InterpellationFilter{
			Member:       strArg(args, "interpellation_member"),
			Session:      intArg(args, "session"),
			MeetingCode:  strArg(args, "meeting_code"),
			Page:         intArg(args, "page"),
			Limit:        intArg(args, "limit"),
			OutputFields: strListArg(args, "output_fields"),
		}
		return render(c.LegislatorInterpellations(ctx, *term, name, f)), nil
	}
}
