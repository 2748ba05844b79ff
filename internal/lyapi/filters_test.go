package lyapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intp(v int) *int       { return &v }
func strp(v string) *string { return &v }

func TestBillFilterTranslatesToUpstreamKeys(t *testing.T) {
	f := BillFilter{
		Term:     intp(11),
		Session:  intp(2),
		Proposer: strp("王委員"),
	}
	q := f.params()

	assert.Equal(t, []string{"11"}, q.Get("屆"))
	assert.Equal(t, []string{"2"}, q.Get("會期"))
	assert.Equal(t, []string{"王委員"}, q.Get("提案人"))
	assert.Equal(t, []string{"1"}, q.Get("page"))
	assert.Equal(t, []string{"20"}, q.Get("limit"))
	assert.Equal(t, []string{"屆", "會期", "提案人", "page", "limit"}, q.Keys())
}

func TestBillFilterEmptySendsOnlyPagingDefaults(t *testing.T) {
	q := BillFilter{}.params()
	assert.Equal(t, []string{"page", "limit"}, q.Keys())
	assert.Equal(t, []string{"1"}, q.Get("page"))
	assert.Equal(t, []string{"20"}, q.Get("limit"))
}

func TestBillFilterExplicitPagingOverridesDefaults(t *testing.T) {
	q := BillFilter{Page: intp(3), Limit: intp(50)}.params()
	assert.Equal(t, []string{"3"}, q.Get("page"))
	assert.Equal(t, []string{"50"}, q.Get("limit"))
}

func TestBillFilterOutputFieldsFollowPaging(t *testing.T) {
	f := BillFilter{OutputFields: []string{"議案編號", "議案名稱"}}
	q := f.params()
	assert.Equal(t, []string{"page", "limit", "output_fields"}, q.Keys())
	assert.Equal(t, []string{"議案編號", "議案名稱"}, q.Get("output_fields"))
}

func TestCommitteeMeetsFilterUsesNestedDocumentPaths(t *testing.T) {
	f := CommitteeMeetsFilter{
		AttendingMember: strp("王委員"),
		MeetID:          strp("院會-11-2-1"),
		BillNumber:      strp("203110077970000"),
		LawNumber:       strp("04491"),
	}
	q := f.params()

	assert.Equal(t, []string{"王委員"}, q.Get("會議資料.出席委員"))
	assert.Equal(t, []string{"院會-11-2-1"}, q.Get("會議資料.會議編號"))
	assert.Equal(t, []string{"203110077970000"}, q.Get("議事網資料.關係文書.議案.議案編號"))
	assert.Equal(t, []string{"04491"}, q.Get("議事網資料.關係文書.議案.法律編號"))
}

func TestIvodFilterDistinguishesCommitteeCodeKeys(t *testing.T) {
	// IVOD records filter on 委員會代碼 (an integer), unlike the committee
	// resource's 委員會代號.
	f := IvodFilter{
		CommitteeCode:   intp(23),
		MeetingDataCode: strp("委員會-11-2-22-2"),
		MemberName:      strp("王委員"),
		VideoType:       strp("Clip"),
	}
	q := f.params()

	assert.Equal(t, []string{"23"}, q.Get("委員會代碼"))
	assert.Equal(t, []string{"委員會-11-2-22-2"}, q.Get("會議資料.會議代碼"))
	assert.Equal(t, []string{"王委員"}, q.Get("委員名稱"))
	assert.Equal(t, []string{"Clip"}, q.Get("影片種類"))
	assert.Empty(t, q.Get("委員會代號"))
}

func TestGazetteAgendaFilterKeys(t *testing.T) {
	f := GazetteAgendaFilter{
		GazetteID:   strp("1137701"),
		Volume:      intp(113),
		Term:        intp(11),
		MeetingDate: strp("2024-10-04"),
	}
	q := f.params()

	assert.Equal(t, []string{"1137701"}, q.Get("公報編號"))
	assert.Equal(t, []string{"113"}, q.Get("卷"))
	assert.Equal(t, []string{"11"}, q.Get("屆"))
	assert.Equal(t, []string{"2024-10-04"}, q.Get("會議日期"))
}
