package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lygovtw/ly-gateway/internal/lyapi"
)

func TestRegistryExposesEveryTool(t *testing.T) {
	want := []string{
		"get_stat",
		"list_bills",
		"get_bill",
		"get_bill_related_bills",
		"get_bill_meets",
		"get_bill_doc_html",
		"list_committees",
		"get_committee",
		"get_committee_meets",
		"list_gazettes",
		"get_gazette",
		"get_gazette_agendas",
		"list_gazette_agendas",
		"get_gazette_agenda",
		"list_interpellations",
		"get_interpellation",
		"get_legislator_interpellations",
		"list_ivods",
		"get_ivod",
		"get_meet_ivods",
	}

	specs := registry(lyapi.NewClient())
	require.Len(t, specs, len(want))

	var got []string
	for _, spec := range specs {
		got = append(got, spec.tool.Name)
		assert.NotNil(t, spec.handler, "tool %s has no handler", spec.tool.Name)
		assert.NotEmpty(t, spec.tool.Description, "tool %s has no description", spec.tool.Name)
	}
	assert.ElementsMatch(t, want, got)

	seen := make(map[string]bool)
	for _, name := range got {
		assert.False(t, seen[name], "duplicate tool name %s", name)
		seen[name] = true
	}
}

func TestNewServerRegistersWithoutPanic(t *testing.T) {
	srv := NewServer(lyapi.NewClient(), "test")
	require.NotNil(t, srv)
}

func TestListToolsCarryPagingParameters(t *testing.T) {
	listTools := map[string]bool{
		"list_bills": true, "list_committees": true, "list_gazettes": true,
		"get_gazette_agendas": true, "list_gazette_agendas": true,
		"list_interpellations": true, "get_legislator_interpellations": true,
		"list_ivods": true, "get_meet_ivods": true, "get_committee_meets": true,
		"get_bill_related_bills": true, "get_bill_meets": true,
	}

	for _, spec := range registry(lyapi.NewClient()) {
		if !listTools[spec.tool.Name] {
			continue
		}
		props := spec.tool.InputSchema.Properties
		assert.Contains(t, props, "page", "tool %s", spec.tool.Name)
		assert.Contains(t, props, "limit", "tool %s", spec.tool.Name)
	}
}
