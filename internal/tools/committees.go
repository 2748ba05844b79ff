package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

func committeeTools(c *lyapi.Client) []toolSpec {
	return []toolSpec{
		{tool: listCommitteesTool(), handler: listCommitteesHandler(c)},
		{tool: getCommitteeTool(), handler: getCommitteeHandler(c)},
		{tool: getCommitteeMeetsTool(), handler: getCommitteeMeetsHandler(c)},
	}
}

func listCommitteesTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("列出立法院委員會列表。"),
		mcp.WithString("committee_type", mcp.Description("委員會類別")),
		mcp.WithString("comt_cd", mcp.Description("委員會代號")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("list_committees", opts...)
}

func listCommitteesHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		f := lyapi.CommitteeFilter{
			CommitteeType: strArg(args, "committee_type"),
			CommitteeCode: strArg(args, "comt_cd"),
			Page:          intArg(args, "page"),
			Limit:         intArg(args, "limit"),
			OutputFields:  strListArg(args, "output_fields"),
		}
		return render(c.ListCommittees(ctx, f)), nil
	}
}

func getCommitteeTool() mcp.Tool {
	return mcp.NewTool("get_committee",
		mcp.WithDescription("取得特定委員會資訊，包含委員會基本資料、委員資訊等。"),
		mcp.WithString("comt_cd", mcp.Required(), mcp.Description("委員會代號，必填，例：15")),
	)
}

func getCommitteeHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		comtCd, err := req.RequireString("comt_cd")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.GetCommittee(ctx, comtCd)), nil
	}
}

func getCommitteeMeetsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("取得委員會相關會議列表（會議編號、會議日期、出席委員等）。"),
		mcp.WithString("comt_cd", mcp.Required(), mcp.Description("委員會代號，必填，例：15")),
		mcp.WithNumber("term", mcp.Description("屆，例：11")),
		mcp.WithString("meeting_code", mcp.Description("會議代碼")),
		mcp.WithNumber("session", mcp.Description("會期，例：2")),
		mcp.WithString("meeting_type", mcp.Description("會議種類，例：院會、委員會")),
		mcp.WithString("member", mcp.Description("會議資料.出席委員")),
		mcp.WithString("date", mcp.Description("日期，格式：YYYY-MM-DD")),
		mcp.WithString("committee_code", mcp.Description("委員會代號")),
		mcp.WithString("meet_id", mcp.Description("會議資料.會議編號")),
		mcp.WithString("bill_no", mcp.Description("議事網資料.關係文書.議案.議案編號")),
		mcp.WithString("law_number", mcp.Description("議事網資料.關係文書.議案.法律編號")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("get_committee_meets", opts...)
}

func getCommitteeMeetsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		comtCd, err := req.RequireString("comt_cd")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args := req.GetArguments()
		f := lyapi.CommitteeMeetsFilter{
			Term:            intArg(args, "term"),
			MeetingCode:     strArg(args, "meeting_code"),
			Session:         intArg(args, "session"),
			MeetingType:     strArg(args, "meeting_type"),
			AttendingMember: strArg(args, "member"),
			Date:            strArg(args, "date"),
			CommitteeCode:   strArg(args, "committee_code"),
			MeetID:          strArg(args, "meet_id"),
			BillNumber:      strArg(args, "bill_no"),
			LawNumber:       strArg(args, "law_number"),
			Page:            intArg(args, "page"),
			Limit:           intArg(args, "limit"),
			OutputFields:    strListArg(args, "output_fields"),
		}
		return render(c.CommitteeMeets(ctx, comtCd, f)), nil
	}
}
