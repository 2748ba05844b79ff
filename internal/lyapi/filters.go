package lyapi

// Upstream parameter names. The v2 API filters on Chinese field paths; the
// internal field names follow the API's English documentation.
const (
	paramTerm                 = "屆"
	paramSession              = "會期"
	paramBillFlowStatus       = "議案流程.狀態"
	paramBillType             = "議案類別"
	paramProposer             = "提案人"
	paramCoProposer           = "連署人"
	paramLawNumber            = "法律編號"
	paramBillStatus           = "議案狀態"
	paramMeetingCode          = "會議代碼"
	paramProposalSource       = "提案來源"
	paramBillNumber           = "議案編號"
	paramProposalNumber       = "提案編號"
	paramReferenceNumber      = "字號"
	paramArticleNumber        = "法條編號"
	paramProposalDate         = "提案日期"
	paramCommitteeType        = "委員會類別"
	paramCommitteeCode        = "委員會代號"
	paramMeetingType          = "會議種類"
	paramDate                 = "日期"
	paramAttendingMember      = "會議資料.出席委員"
	paramMeetID               = "會議資料.會議編號"
	paramDocBillNumber        = "議事網資料.關係文書.議案.議案編號"
	paramDocLawNumber         = "議事網資料.關係文書.議案.法律編號"
	paramGazetteID            = "公報編號"
	paramGazetteAgendaID      = "公報議程編號"
	paramVolume               = "卷"
	paramMeetingDate          = "會議日期"
	paramInterpellationMember = "質詢委員"
	paramInterpellationID     = "質詢編號"
	paramIvodID               = "IVOD_ID"
	paramMemberName           = "委員名稱"
	paramIvodCommitteeCode    = "委員會代碼"
	paramMeetDataMeetingCode  = "會議資料.會議代碼"
	paramVideoType            = "影片種類"
	paramPage                 = "page"
	paramLimit                = "limit"
	paramOutputFields         = "output_fields"
)

// addPaging applies the list-accessor pagination defaults. Single-item
// lookups never call this; they carry no pagination at all.
func addPaging(q *Query, page, limit *int) {
	q.AddInt(paramPage, orDefault(page, DefaultPage))
	q.AddInt(paramLimit, orDefault(limit, DefaultPageSize))
}

func orDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// PageFilter carries pagination controls only.
type PageFilter struct {
	Page  *int
	Limit *int
}

func (f PageFilter) params() Query {
	var q Query
	addPaging(&q, f.Page, f.Limit)
	return q
}

// BillFilter holds the optional search criteria for /bills.
type BillFilter struct {
	Term            *int
	Session         *int
	BillFlowStatus  *string
	BillType        *string
	Proposer        *string
	CoProposer      *string
	LawNumber       *string
	BillStatus      *string
	MeetingCode     *string
	BillNumber      *string
	ProposalSource  *string
	ProposalNumber  *string
	ReferenceNumber *string
	ArticleNumber   *string
	ProposalDate    *string
	Page            *int
	Limit           *int
	OutputFields    []string
}

func (f BillFilter) params() Query {
	var q Query
	q.SetInt(paramTerm, f.Term)
	q.SetInt(paramSession, f.Session)
	q.SetString(paramBillFlowStatus, f.BillFlowStatus)
	q.SetString(paramBillType, f.BillType)
	q.SetString(paramProposer, f.Proposer)
	q.SetString(paramCoProposer, f.CoProposer)
	q.SetString(paramLawNumber, f.LawNumber)
	q.SetString(paramBillStatus, f.BillStatus)
	q.SetString(paramMeetingCode, f.MeetingCode)
	q.SetString(paramProposalSource, f.ProposalSource)
	q.SetString(paramBillNumber, f.BillNumber)
	q.SetString(paramProposalNumber, f.ProposalNumber)
	q.SetString(paramReferenceNumber, f.ReferenceNumber)
	q.SetString(paramArticleNumber, f.ArticleNumber)
	q.SetString(paramProposalDate, f.ProposalDate)
	addPaging(&q, f.Page, f.Limit)
	q.SetList(paramOutputFields, f.OutputFields)
	return q
}

// BillMeetsFilter narrows the meeting records of one bill.
type BillMeetsFilter struct {
	Term        *int
	Session     *int
	MeetingType *string
	Date        *string
	Page        *int
	Limit       *int
}

func (f BillMeetsFilter) params() Query {
	var q Query
	q.SetInt(paramTerm, f.Term)
	q.SetInt(paramSession, f.Session)
	q.SetString(paramMeetingType, f.MeetingType)
	q.SetString(paramDate, f.Date)
	addPaging(&q, f.Page, f.Limit)
	return q
}

// CommitteeFilter holds the optional search criteria for /committees.
type CommitteeFilter struct {
	CommitteeType *string
	CommitteeCode *string
	Page          *int
	Limit         *int
	OutputFields  []string
}

func (f CommitteeFilter) params() Query {
	var q Query
	q.SetString(paramCommitteeType, f.CommitteeType)
	q.SetString(paramCommitteeCode, f.CommitteeCode)
	addPaging(&q, f.Page, f.Limit)
	q.SetList(paramOutputFields, f.OutputFields)
	return q
}

// CommitteeMeetsFilter narrows the meeting records of one committee. The
// nested BillNumber/LawNumber fields search the meeting's attached document
// records, not the meeting itself.
type CommitteeMeetsFilter struct {
	Term            *int
	MeetingCode     *string
	Session         *int
	MeetingType     *string
	AttendingMember *string
	Date            *string
	CommitteeCode   *string
	MeetID          *string
	BillNumber      *string
	LawNumber       *string
	Page            *int
	Limit           *int
	OutputFields    []string
}

func (f CommitteeMeetsFilter) params() Query {
	var q Query
	q.SetInt(paramTerm, f.Term)
	q.SetString(paramMeetingCode, f.MeetingCode)
	q.SetInt(paramSession, f.Session)
	q.SetString(paramMeetingType, f.MeetingType)
	q.SetString(paramAttendingMember, f.AttendingMember)
	q.SetString(paramDate, f.Date)
	q.SetString(paramCommitteeCode, f.CommitteeCode)
	q.SetString(paramMeetID, f.MeetID)
	q.SetString(paramDocBillNumber, f.BillNumber)
	q.SetString(paramDocLawNumber, f.LawNumber)
	addPaging(&q, f.Page, f.Limit)
	q.SetList(paramOutputFields, f.OutputFields)
	return q
}

// GazetteFilter holds the optional search criteria for /gazettes.
type GazetteFilter struct {
	GazetteID    *string
	Volume       *int
	Page         *int
	Limit        *int
	OutputFields []string
}

func (f GazetteFilter) params() Query {
	var q Query
	q.SetString(paramGazetteID, f.GazetteID)
	q.SetInt(paramVolume, f.Volume)
	addPaging(&q, f.Page, f.Limit)
	q.SetList(paramOutputFields, f.OutputFields)
	return q
}

// GazetteAgendaFilter holds the optional search criteria for gazette agenda
// listings. GazetteID is ignored on the per-gazette path, where the gazette
// is already identified.
type GazetteAgendaFilter struct {
	GazetteID    *string
	Volume       *int
	Term         *int
	MeetingDate  *string
	Page         *int
	Limit        *int
	OutputFields []string
}

func (f GazetteAgendaFilter) params() Query {
	var q Query
	q.SetString(paramGazetteID, f.GazetteID)
	q.SetInt(paramVolume, f.Volume)
	q.SetInt(paramTerm, f.Term)
	q.SetString(paramMeetingDate, f.MeetingDate)
	addPaging(&q, f.Page, f.Limit)
	q.SetList(paramOutputFields, f.OutputFields)
	return q
}

// InterpellationFilter holds the optional search criteria for
// /interpellations.
type InterpellationFilter struct {
	Member       *string
	Term         *int
	Session      *int
	MeetingCode  *string
	Page         *int
	Limit        *int
	OutputFields []string
}

func (f InterpellationFilter) params() Query {
	var q Query
	q.SetString(paramInterpellationMember, f.Member)
	q.SetInt(paramTerm, f.Term)
	q.SetInt(paramSession, f.Session)
	q.SetString(paramMeetingCode, f.MeetingCode)
	addPaging(&q, f.Page, f.Limit)
	q.SetList(paramOutputFields, f.OutputFields)
	return q
}

// IvodFilter holds the optional search criteria for /ivods.
type IvodFilter struct {
	Term            *int
	Session         *int
	MeetingCode     *string
	MemberName      *string
	CommitteeCode   *int
	MeetingDataCode *string
	Date            *string
	VideoType       *string
	Page            *int
	Limit           *int
	OutputFields    []string
}

func (f IvodFilter) params() Query {
	var q Query
	q.SetInt(paramTerm, f.Term)
	q.SetInt(paramSession, f.Session)
	q.SetString(paramMeetingCode, f.MeetingCode)
	q.SetString(paramMemberName, f.MemberName)
	q.SetInt(paramIvodCommitteeCode, f.CommitteeCode)
	q.SetString(paramMeetDataMeetingCode, f.MeetingDataCode)
	q.SetString(paramDate, f.Date)
	q.SetString(paramVideoType, f.VideoType)
	addPaging(&q, f.Page, f.Limit)
	q.SetList(paramOutputFields, f.OutputFields)
	return q
}
