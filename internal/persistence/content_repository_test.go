package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_Topics(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewContentRepository(db, log)

	columns := []string{"id", "topic", "keyword", "volume", "difficulty", "trend_score", "questions",
		"related_topics", "content_type"}
	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM topic_idea WHERE content_type = ? AND volume >= ? ORDER BY trend_score DESC LIMIT ?")).
		WithArgs("guide", 500, 50).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("t1", "Local SEO", "local seo", 2400, 35, 8.5, `["What is local SEO?"]`, nil, "guide"))

	got, err := repo.Topics(context.Background(), model.TopicFilter{ContentType: "guide", MinVolume: 500, Limit: 50})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"What is local SEO?"}, got[0].Questions)
	assert.Equal(t, []string{}, got[0].RelatedTopics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_Pieces_ScoreBounds(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewContentRepository(db, log)
	maxScore := 60
	updated := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "url", "title", "word_count", "reading_time", "seo_score", "readability",
		"target_keyword", "last_updated", "status", "issues"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM content_piece WHERE seo_score <= ? ORDER BY seo_score ASC LIMIT ?")).
		WithArgs(60, 20).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("c1", "https://example.com/blog/a", "A", 800, 4, 42, 61.5, nil, updated, "needs-update",
				`["thin content"]`))

	got, err := repo.Pieces(context.Background(), model.ContentPieceFilter{MaxSeoScore: &maxScore, Limit: 20})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0].SeoScore)
	assert.Nil(t, got[0].TargetKeyword)
	assert.Equal(t, []string{"thin content"}, got[0].Issues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_Totals(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewContentRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(SUM(status = ?), 0) FROM content_piece")).
		WithArgs("needs-update").
		WillReturnRows(sqlmock.NewRows([]string{"c", "s", "w", "n"}).AddRow(3, 71.6667, 1250.5, 1))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status ORDER BY status")).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("needs-update", 1).AddRow("published", 2))

	got, err := repo.Totals(context.Background(), "needs-update")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Pieces)
	assert.Equal(t, 71.6667, got.AvgSeoScore)
	assert.Equal(t, 1, got.NeedsUpdate)
	assert.Equal(t, []model.StatusCount{{Status: "needs-update", Count: 1}, {Status: "published", Count: 2}},
		got.ByStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}
