package audit

import (
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func ms(v int) *int { return &v }

func TestSummarize(t *testing.T) {
	pages := []model.AuditPage{
		{ID: "u1", LoadTimeMs: ms(200)},
		{ID: "u2", LoadTimeMs: ms(401), Severities: []string{model.SeverityError, model.SeverityWarning}},
		{ID: "u3", Severities: []string{model.SeverityNotice, model.SeverityError, "unknown"}},
		{ID: "u4", LoadTimeMs: ms(0)},
	}

	got := Summarize(pages)

	assert.Equal(t, model.AuditSummary{
		TotalUrls:   4,
		Healthy:     2,
		WithIssues:  2,
		Errors:      2,
		Warnings:    1,
		Notices:     1,
		AvgLoadTime: 301,
	}, got)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, model.AuditSummary{}, Summarize(nil))
}

func TestCountByType(t *testing.T) {
	issue := func(code, severity string) model.AuditIssue {
		return model.AuditIssue{Code: code, Name: "name " + code, Severity: severity, Category: "crawl"}
	}
	issues := []model.AuditIssue{
		issue("broken-link", model.SeverityError),
		issue("missing-alt", model.SeverityWarning),
		issue("broken-link", model.SeverityError),
		issue("duplicate-title", model.SeverityWarning),
		issue("missing-alt", model.SeverityWarning),
		issue("long-url", model.SeverityNotice),
		issue("broken-link", model.SeverityError),
	}

	got := CountByType(issues)

	assert.Equal(t, []model.IssueTypeCount{
		{Code: "broken-link", Name: "name broken-link", Severity: model.SeverityError, Category: "crawl", Count: 3},
		{Code: "missing-alt", Name: "name missing-alt", Severity: model.SeverityWarning, Category: "crawl", Count: 2},
		{Code: "duplicate-title", Name: "name duplicate-title", Severity: model.SeverityWarning, Category: "crawl", Count: 1},
		{Code: "long-url", Name: "name long-url", Severity: model.SeverityNotice, Category: "crawl", Count: 1},
	}, got)
}

func TestCountByType_Empty(t *testing.T) {
	assert.Empty(t, CountByType(nil))
}
