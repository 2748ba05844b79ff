package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

func billTools(c *lyapi.Client) []toolSpec {
	return []toolSpec{
		{tool: listBillsTool(), handler: listBillsHandler(c)},
		{tool: getBillTool(), handler: getBillHandler(c)},
		{tool: getBillRelatedBillsTool(), handler: getBillRelatedBillsHandler(c)},
		{tool: getBillMeetsTool(), handler: getBillMeetsHandler(c)},
		{tool: getBillDocHTMLTool(), handler: getBillDocHTMLHandler(c)},
	}
}

func listBillsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("列出立法院議案列表。"),
		mcp.WithNumber("term", mcp.Description("屆，例：11")),
		mcp.WithNumber("session", mcp.Description("會期，例：2")),
		mcp.WithString("bill_flow_status", mcp.Description("議案流程狀態，如：交付審查、三讀")),
		mcp.WithString("bill_type", mcp.Description("議案類別，如：法律案、預算案")),
		mcp.WithString("proposer", mcp.Description("提案人姓名")),
		mcp.WithString("cosigner", mcp.Description("連署人姓名")),
		mcp.WithString("law_number", mcp.Description("法律編號")),
		mcp.WithString("bill_status", mcp.Description("議案狀態，如：交付審查、三讀、排入院會")),
		mcp.WithString("meeting_code", mcp.Description("會議代碼")),
		mcp.WithString("proposal_source", mcp.Description("提案來源，如：委員提案、政府提案")),
		mcp.WithString("bill_number", mcp.Description("議案編號")),
		mcp.WithString("proposal_number", mcp.Description("提案編號")),
		mcp.WithString("reference_number", mcp.Description("字號")),
		mcp.WithString("article_number", mcp.Description("法條編號")),
		mcp.WithString("proposal_date", mcp.Description("提案日期，格式：YYYY-MM-DD")),
	}
	opts = append(opts, pagingOptions()...)
	opts = append(opts, outputFieldsOption())
	return mcp.NewTool("list_bills", opts...)
}

func listBillsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		f := lyapi.BillFilter{
			Term:            intArg(args, "term"),
			Session:         intArg(args, "session"),
			BillFlowStatus:  strArg(args, "bill_flow_status"),
			BillType:        strArg(args, "bill_type"),
			Proposer:        strArg(args, "proposer"),
			CoProposer:      strArg(args, "cosigner"),
			LawNumber:       strArg(args, "law_number"),
			BillStatus:      strArg(args, "bill_status"),
			MeetingCode:     strArg(args, "meeting_code"),
			ProposalSource:  strArg(args, "proposal_source"),
			BillNumber:      strArg(args, "bill_number"),
			ProposalNumber:  strArg(args, "proposal_number"),
			ReferenceNumber: strArg(args, "reference_number"),
			ArticleNumber:   strArg(args, "article_number"),
			ProposalDate:    strArg(args, "proposal_date"),
			Page:            intArg(args, "page"),
			Limit:           intArg(args, "limit"),
			OutputFields:    strListArg(args, "output_fields"),
		}
		return render(c.ListBills(ctx, f)), nil
	}
}

func getBillTool() mcp.Tool {
	return mcp.NewTool("get_bill",
		mcp.WithDescription("取得特定議案的詳細資訊，包含議案基本資料、提案人資訊、議案流程、相關法條等。"),
		mcp.WithString("bill_no", mcp.Required(), mcp.Description("議案編號，必填，例：203110077970000")),
	)
}

func getBillHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		billNo, err := req.RequireString("bill_no")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.GetBill(ctx, billNo)), nil
	}
}

func getBillRelatedBillsTool() mcp.Tool {
	return mcp.NewTool("get_bill_related_bills",
		mcp.WithDescription("取得特定議案的相關議案列表（關聯類型、相關議案編號等）。"),
		mcp.WithString("bill_no", mcp.Required(), mcp.Description("議案編號，必填，例：203110077970000")),
		mcp.WithNumber("page", mcp.Description("頁數，預設1")),
		mcp.WithNumber("limit", mcp.Description("每頁筆數，預設20，建議不超過50")),
	)
}

func getBillRelatedBillsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		billNo, err := req.RequireString("bill_no")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args := req.GetArguments()
		f := lyapi.PageFilter{
			Page:  intArg(args, "page"),
			Limit: intArg(args, "limit"),
		}
		return render(c.BillRelatedBills(ctx, billNo, f)), nil
	}
}

func getBillMeetsTool() mcp.Tool {
	return mcp.NewTool("get_bill_meets",
		mcp.WithDescription("取得特定議案的相關會議列表（會議資訊、審議結果、發言紀錄等）。"),
		mcp.WithString("bill_no", mcp.Required(), mcp.Description("議案編號，必填，例：203110077970000")),
		mcp.WithNumber("term", mcp.Description("屆，例：11")),
		mcp.WithNumber("session", mcp.Description("會期，例：2")),
		mcp.WithString("meeting_type", mcp.Description("會議種類，例：院會、委員會")),
		mcp.WithString("date", mcp.Description("會議日期，格式：YYYY-MM-DD，例：2024-10-25")),
		mcp.WithNumber("page", mcp.Description("頁數，預設1")),
		mcp.WithNumber("limit", mcp.Description("每頁筆數，預設20")),
	)
}

func getBillMeetsHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		billNo, err := req.RequireString("bill_no")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args := req.GetArguments()
		f := lyapi.BillMeetsFilter{
			Term:        intArg(args, "term"),
			Session:     intArg(args, "session"),
			MeetingType: strArg(args, "meeting_type"),
			Date:        strArg(args, "date"),
			Page:        intArg(args, "page"),
			Limit:       intArg(args, "limit"),
		}
		return render(c.BillMeets(ctx, billNo, f)), nil
	}
}

func getBillDocHTMLTool() mcp.Tool {
	return mcp.NewTool("get_bill_doc_html",
		mcp.WithDescription("取得特定議案的文件 HTML 內容（議案本文、附件、修正對照表等）。"+
			"若回傳空白內容，可能是議案尚無正式文件或文件尚未數位化。"),
		mcp.WithString("bill_no", mcp.Required(), mcp.Description("議案編號，必填，例：203110077970000")),
	)
}

func getBillDocHTMLHandler(c *lyapi.Client) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		billNo, err := req.RequireString("bill_no")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return render(c.BillDocHTML(ctx, billNo)), nil
	}
}
