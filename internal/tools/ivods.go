package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

func ivodTools(c *lyapi.Client) []toolSpec {
	return []toolSpec{
		{tool: listIvodsTool(), handler: listIvodsHandler(c)},
		{tool: getIvodTool(), handler: getIvodHandler(c)},
		{tool: getMeetIvodsTool(), handler: getMeetIvodsHandler(c)},
	}
}

func ivodFilterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("term", mcp.Description("屆，例：11")),
		mcp.WithNumber("session", mcp.Description("會期，例：2")),
		mcp.WithString("meeting_code", mcp.Description("會議代碼")),
		mcp.WithString("member_name", mcp.Description("委員名稱，例：韓國瑜")),
		mcp.WithNumber("committee_code", mcp.Description("委員會代碼，例：23")),
		mcp.WithString("meeting_code_data", mcp.Description("會議資料.會議代碼，例：委員會-11-2-22-5")),
		mcp.WithString("date", mcp.Description("日期，格式：YYYY-MM-DD")),
		mcp.WithString("video_type", mcp.Description("影片種類，例：Clip、Full")),
	}
}

func ivodFilterFromArgs(args map[string]any) lyapi.IvodFilter {
	return lyapi.IvodFilter{
		Term:            intArg(args, "term"),
		Session:         intArg(args, "session"),
		MeetingCode:     strArg(args, "meeting_code"),
		MemberName:      strArg(args, "member_name"),
		CommitteeCode:   intArg(args, "committee_code"),
		MeetingDataCode: strArg(args, "meeting_code_data"),
		Date:            strArg(args, "date"),
		VideoType:       strArg(args, "video_type"),
		Page:            intArg(args, "page"),
		Limit:           intArg(args, "limit"),
		OutputFields:    strListArg(args, "output_fields"),
	}
}

func listIvodsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("列出立法院 IVOD（網路電視）影片列表。"),
	}
	opts = append(opts, ivodFilterOptions()...)
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("list_ivods", opts...)
}

func listIvodsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return render(c.ListIvods(ctx, ivodFilterFromArgs(req.GetArguments()))), nil
	}
}

func getIvodTool() mcp.Tool {
	return mcp.NewTool("get_ivod",
		mcp.WithDescription("取得特定 IVOD 影片的詳細資訊，包含影片連結、會議資訊、發言委員等。"),
		mcp.WithString("ivod_id", mcp.Required(), mcp.Description("IVOD 影片編號，必填，例：156045")),
	)
}

func getIvodHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ivodID, err := req.RequireString("ivod_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.GetIvod(ctx, ivodID)), nil
	}
}

func getMeetIvodsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("取得特定會議的 IVOD 影片列表。"),
		mcp.WithString("meet_id", mcp.Required(), mcp.Description("會議編號，必填，例：2024091177")),
	}
	opts = append(opts, ivodFilterOptions()...)
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("get_meet_ivods", opts...)
}

func getMeetIvodsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		meetID, err := req.RequireString("meet_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.MeetIvods(ctx, meetID, ivodFilterFromArgs(req.GetArguments()))), nil
	}
}
