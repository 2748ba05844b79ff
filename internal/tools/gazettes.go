package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

func gazetteTools(c *lyapi.Client) []toolSpec {
	return []toolSpec{
		{tool: listGazettesTool(), handler: listGazettesHandler(c)},
		{tool: getGazetteTool(), handler: getGazetteHandler(c)},
		{tool: getGazetteAgendasTool(), handler: getGazetteAgendasHandler(c)},
		{tool: listGazetteAgendasTool(), handler: listGazetteAgendasHandler(c)},
		{tool: getGazetteAgendaTool(), handler: getGazetteAgendaHandler(c)},
	}
}

func listGazettesTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("列出立法院公報列表。"),
		mcp.WithString("gazette_id", mcp.Description("公報編號，例：1137701")),
		mcp.WithNumber("volume", mcp.Description("卷，例：113")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("list_gazettes", opts...)
}

func listGazettesHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		f := lyapi.GazetteFilter{
			GazetteID:    strArg(args, "gazette_id"),
			Volume:       intArg(args, "volume"),
			Page:         intArg(args, "page"),
			Limit:        intArg(args, "limit"),
			OutputFields: strListArg(args, "output_fields"),
		}
		return render(c.ListGazettes(ctx, f)), nil
	}
}

func getGazetteTool() mcp.Tool {
	return mcp.NewTool("get_gazette",
		mcp.WithDescription("取得特定公報的詳細資訊。"),
		mcp.WithString("gazette_id", mcp.Required(), mcp.Description("公報編號，必填，例：1137701")),
	)
}

func getGazetteHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		gazetteID, err := req.RequireString("gazette_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.GetGazette(ctx, gazetteID)), nil
	}
}

func getGazetteAgendasTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("取得特定公報所含的公報目錄列表。"),
		mcp.WithString("gazette_id", mcp.Required(), mcp.Description("公報編號，必填，例：1137701")),
		mcp.WithNumber("volume", mcp.Description("卷，例：113")),
		mcp.WithNumber("term", mcp.Description("屆，例：11")),
		mcp.WithString("meeting_date", mcp.Description("會議日期，格式：YYYY-MM-DD，例：2024-10-04")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("get_gazette_agendas", opts...)
}

func getGazetteAgendasHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		gazetteID, err := req.RequireString("gazette_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args := req.GetArguments()
		f := lyapi.GazetteAgendaFilter{
			Volume:       intArg(args, "volume"),
			Term:         intArg(args, "term"),
			MeetingDate:  strArg(args, "meeting_date"),
			Page:         intArg(args, "page"),
			Limit:        intArg(args, "limit"),
			OutputFields: strListArg(args, "output_fields"),
		}
		return render(c.GazetteAgendas(ctx, gazetteID, f)), nil
	}
}

func listGazetteAgendasTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("列出公報目錄列表。"),
		mcp.WithString("gazette_id", mcp.Description("公報編號，例：1137701")),
		mcp.WithNumber("volume", mcp.Description("卷，例：113")),
		mcp.WithNumber("term", mcp.Description("屆，例：11")),
		mcp.WithString("meeting_date", mcp.Description("會議日期，格式：YYYY-MM-DD，例：2024-10-04")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("list_gazette_agendas", opts...)
}

func listGazetteAgendasHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		f := lyapi.GazetteAgendaFilter{
			GazetteID:    strArg(args, "gazette_id"),
			Volume:       intArg(args, "volume"),
			Term:         intArg(args, "term"),
			MeetingDate:  strArg(args, "meeting_date"),
			Page:         intArg(args, "page"),
			Limit:        intArg(args, "limit"),
			OutputFields: strListArg(args, "output_fields"),
		}
		return render(c.ListGazetteAgendas(ctx, f)), nil
	}
}

func getGazetteAgendaTool() mcp.Tool {
	return mcp.NewTool("get_gazette_agenda",
		mcp.WithDescription("取得特定公報目錄的詳細資訊。"),
		mcp.WithString("gazette_agenda_id", mcp.Required(), mcp.Description("公報議程編號，必填，例：1137701_00001")),
	)
}

func getGazetteAgendaHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		agendaID, err := req.RequireString("gazette_agenda_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.GetGazetteAgenda(ctx, agendaID)), nil
	}
}
