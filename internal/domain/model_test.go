package domain_test

import (
	"testing"

	"github.com/dirqc/dirqc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseTestType(t *testing.T) {
	tests := []struct {
		in   string
		want domain.TestType
	}{
		{"SB", domain.TestTypeSB},
		{"sb", domain.TestTypeSB},
		{"Sb", domain.TestTypeSB},
		{" sb ", domain.TestTypeSB},
		{"OTHER", domain.TestTypeOther},
		{"anything", domain.TestTypeOther},
		{"", domain.TestTypeOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ParseTestType(tt.in), "input %q", tt.in)
	}
}

func TestAggregate_PartitionsPreservingOrder(t *testing.T) {
	dirs := []domain.CheckOutcome{
		domain.Existing("base"),
		domain.Missing("base/NVA"),
		domain.Existing("base/REPORTS"),
		domain.Missing("base/REQUESTINFO"),
	}
	files := []domain.CheckOutcome{
		domain.Missing("a.xlsx"),
		{Status: domain.StatusIssue, Path: "b.xlsx", Detail: "file too small"},
		domain.Existing("c.xlsx"),
	}

	r := domain.Aggregate(dirs, files)

	assert.Equal(t, []string{"base", "base/REPORTS"}, paths(r.ExistingDirs))
	assert.Equal(t, []string{"base/NVA", "base/REQUESTINFO"}, paths(r.MissingDirs))
	assert.Equal(t, []string{"a.xlsx"}, paths(r.MissingFiles))
	assert.Equal(t, []string{"b.xlsx"}, paths(r.FileIssues))
	assert.Equal(t, []string{"c.xlsx"}, paths(r.ExistingFiles))
	assert.False(t, r.Passed)
}

func TestAggregate_PassedRequiresNoMissingAndNoIssues(t *testing.T) {
	r := domain.Aggregate(
		[]domain.CheckOutcome{domain.Existing("base")},
		[]domain.CheckOutcome{domain.Existing("a.xlsx")},
	)
	assert.True(t, r.Passed)

	r = domain.Aggregate(
		[]domain.CheckOutcome{domain.Existing("base")},
		[]domain.CheckOutcome{{Status: domain.StatusIssue, Path: "a.xlsx"}},
	)
	assert.False(t, r.Passed)

	r = domain.Aggregate([]domain.CheckOutcome{domain.Missing("base")}, nil)
	assert.False(t, r.Passed)
}

func TestFailureSummary(t *testing.T) {
	r := domain.Aggregate(
		[]domain.CheckOutcome{domain.Missing("base/NVA"), domain.Missing("base/REPORTS")},
		[]domain.CheckOutcome{
			domain.Missing("a.xlsx"),
			{Status: domain.StatusIssue, Path: "b.xlsx"},
		},
	)
	assert.Equal(t, "2 missing directories, 1 missing files, 1 file issues", r.FailureSummary())
}

func TestFailureSummary_OmitsZeroCategories(t *testing.T) {
	r := domain.Aggregate(
		[]domain.CheckOutcome{domain.Existing("base")},
		[]domain.CheckOutcome{{Status: domain.StatusIssue, Path: "b.xlsx"}},
	)
	assert.Equal(t, "1 file issues", r.FailureSummary())
}

func TestFailureSummary_EmptyWhenPassed(t *testing.T) {
	r := domain.Aggregate(
		[]domain.CheckOutcome{domain.Existing("base")},
		[]domain.CheckOutcome{domain.Existing("a.xlsx")},
	)
	assert.Empty(t, r.FailureSummary())
}

func TestToolConfig_HistoryEnabled(t *testing.T) {
	assert.True(t, domain.DefaultConfig().HistoryEnabled())

	off := false
	cfg := domain.ToolConfig{History: &off}
	assert.False(t, cfg.HistoryEnabled())

	on := true
	cfg.History = &on
	assert.True(t, cfg.HistoryEnabled())
}
