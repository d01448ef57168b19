package persistence

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_Pages_GroupsIssues(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewAuditRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN audit_issue i ON i.audit_url_id = u.id")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "load_time_ms", "severity"}).
			AddRow("u1", 250, "error").
			AddRow("u1", 250, "notice").
			AddRow("u2", nil, nil))

	got, err := repo.Pages(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"error", "notice"}, got[0].Severities)
	assert.Equal(t, 250, *got[0].LoadTimeMs)
	assert.Empty(t, got[1].Severities)
	assert.Nil(t, got[1].LoadTimeMs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Urls_WithoutIssues(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewAuditRepository(db, log)
	hasIssues := false

	columns := []string{"id", "url", "status_code", "word_count", "load_time_ms", "crawl_depth", "internal_links",
		"external_links", "issue_count"}
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE u.project_id = ? AND NOT EXISTS (SELECT 1 FROM audit_issue i WHERE i.audit_url_id = u.id) "+
			"ORDER BY u.crawled_at DESC LIMIT ? OFFSET ?")).
		WithArgs("p1", 100, 0).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("u2", "https://example.com/about", 200, 640, 180, 1, 12, nil, 0))

	got, err := repo.Urls(context.Background(), "p1", model.AuditUrlFilter{HasIssues: &hasIssues, Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 200, *got[0].StatusCode)
	assert.Nil(t, got[0].ExternalLinks)
	assert.Zero(t, got[0].IssueCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_UrlIssues(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewAuditRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE i.audit_url_id = ?")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "severity", "category", "details"}).
			AddRow("i1", "broken-link", "Broken link", "error", "links", "/old-page").
			AddRow("i2", "missing-alt", "Missing alt text", "warning", "images", nil))

	got, err := repo.UrlIssues(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "/old-page", *got[0].Details)
	assert.Nil(t, got[1].Details)
	assert.NoError(t, mock.ExpectationsWereMet())
}
