package persistence

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *slog.Logger) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, mock, slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInClause(t *testing.T) {
	in, args := inClause([]string{"a", "b", "c"})
	assert.Equal(t, "?, ?, ?", in)
	assert.Equal(t, []any{"a", "b", "c"}, args)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%seo%", containsPattern("seo"))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
}

func TestGapRepository_DomainIDs(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewGapRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, domain FROM domain WHERE domain IN (?, ?)")).
		WithArgs("example.com", "rival.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "domain"}).AddRow("d1", "Example.com"))

	got, err := repo.DomainIDs(context.Background(), []string{"example.com", "rival.com"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"d1": "example.com"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGapRepository_DomainIDs_Empty(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewGapRepository(db, log)

	got, err := repo.DomainIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGapRepository_LiveBacklinks(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewGapRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("is_lost = FALSE")).
		WithArgs("d1", "d2").
		WillReturnRows(sqlmock.NewRows([]string{"source_domain", "target_domain_id", "authority_score"}).
			AddRow("blog.io", "d1", 40).
			AddRow("news.io", "d2", 70))

	got, err := repo.LiveBacklinks(context.Background(), []string{"d1", "d2"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "news.io", got[1].SourceDomain)
	assert.Equal(t, 70, got[1].AuthorityScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDomainRepository_Overview(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewDomainRepository(db, log)

	columns := []string{"id", "domain", "name", "authority_score", "organic_keywords", "organic_traffic",
		"paid_keywords", "backlinks_total", "referring_domains"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.domain = ?")).
		WithArgs("example.com").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("d1", "example.com", nil, 55, 1200, 34000, 10, 900, 120))

	got, err := repo.Overview(context.Background(), "example.com")
	require.NoError(t, err)
	assert.Equal(t, "d1", got.ID)
	assert.Nil(t, got.Industry)
	assert.Equal(t, 55, got.AuthorityScore)
	assert.Equal(t, 120, got.ReferringDomains)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDomainRepository_Overview_NotFound(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewDomainRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.domain = ?")).
		WithArgs("missing.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Overview(context.Background(), "missing.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeywordRepository_Search_WithCountry(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewKeywordRepository(db, log)

	columns := []string{"id", "keyword", "country", "volume", "cpc", "difficulty", "intent", "trend"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE keyword LIKE ? AND country = ?")).
		WithArgs("%seo%", "us", 50).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("k1", "seo tools", "us", 9000, 4.5, 60, "commercial", "up"))

	got, err := repo.Search(context.Background(), "seo", "us", 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4.5, got[0].Cpc)
	require.NotNil(t, got[0].Trend)
	assert.Equal(t, "up", *got[0].Trend)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingRepository_TrackedKeywords_LimitsDepth(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewTrackingRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tracked_keyword t JOIN keyword k")).
		WithArgs("p1", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword", "volume"}).
			AddRow("t1", "seo tools", 9000).
			AddRow("t2", "rank tracker", 3000))

	day := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	historyColumns := []string{"tracked_keyword_id", "date", "position", "url", "visibility", "estimated_traffic"}
	mock.ExpectQuery(regexp.QuoteMeta("ROW_NUMBER() OVER (PARTITION BY tracked_keyword_id ORDER BY date DESC)")).
		WithArgs("t1", "t2", 2).
		WillReturnRows(sqlmock.NewRows(historyColumns).
			AddRow("t1", day.AddDate(0, 0, 2), 3, "https://a.com/x", 1.5, 120).
			AddRow("t1", day.AddDate(0, 0, 1), 5, nil, nil, nil).
			AddRow("t2", day, nil, nil, nil, nil))

	got, err := repo.TrackedKeywords(context.Background(), "p1", 2, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Len(t, got[0].History, 2)
	assert.Equal(t, 3, *got[0].History[0].Position)
	assert.Equal(t, 120, *got[0].History[0].EstimatedTraffic)
	assert.Equal(t, 5, *got[0].History[1].Position)
	require.Len(t, got[1].History, 1)
	assert.Nil(t, got[1].History[0].Position)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApiKeyRepository_IsActive(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewApiKeyRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT is_active FROM api_key")).
		WithArgs("hash").
		WillReturnRows(sqlmock.NewRows([]string{"is_active"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT is_active FROM api_key")).
		WithArgs("unknown").
		WillReturnError(sql.ErrNoRows)

	active, err := repo.IsActive(context.Background(), "hash")
	require.NoError(t, err)
	assert.True(t, active)

	_, err = repo.IsActive(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}
