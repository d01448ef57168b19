package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibilityRepository_Mentions_Filters(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewVisibilityRepository(db, log)
	mentioned := true
	checked := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)

	columns := []string{"id", "brand", "ai_platform", "query", "mentioned", "position", "sentiment", "context",
		"competitors", "checked_at"}
	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM ai_mention WHERE brand LIKE ? AND ai_platform = ? AND mentioned = ? ORDER BY checked_at DESC LIMIT ?")).
		WithArgs("%acme%", "chatgpt", true, 100).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("m1", "Acme", "chatgpt", "best crm", true, 2, "positive", nil, `["Globex"]`, checked))

	got, err := repo.Mentions(context.Background(), model.AIMentionFilter{Brand: "acme", AIPlatform: "chatgpt",
		Mentioned: &mentioned, Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, *got[0].Position)
	assert.Nil(t, got[0].Context)
	assert.Equal(t, []string{"Globex"}, got[0].Competitors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisibilityRepository_MentionTotals(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewVisibilityRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COALESCE(SUM(mentioned), 0)")).
		WithArgs("%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"q", "m", "avg"}).AddRow(10, 6, 2.5))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE brand LIKE ? AND mentioned = TRUE GROUP BY sentiment")).
		WithArgs("%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"sentiment", "count"}).AddRow("neutral", 2).AddRow("positive", 4))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY ai_platform ORDER BY ai_platform")).
		WithArgs("%acme%").
		WillReturnRows(sqlmock.NewRows([]string{"platform", "mentions", "total"}).
			AddRow("chatgpt", 4, 5).AddRow("gemini", 2, 5))

	got, err := repo.MentionTotals(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Queries)
	assert.Equal(t, 6, got.Mentioned)
	assert.Equal(t, 2.5, *got.AvgPosition)
	assert.Equal(t, []model.SentimentCount{{Sentiment: "neutral", Count: 2}, {Sentiment: "positive", Count: 4}},
		got.Sentiments)
	assert.Equal(t, []model.PlatformMentions{{Platform: "chatgpt", Mentions: 4, Total: 5},
		{Platform: "gemini", Mentions: 2, Total: 5}}, got.Platforms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisibilityRepository_MentionTotals_NoChecks(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewVisibilityRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COALESCE(SUM(mentioned), 0)")).
		WillReturnRows(sqlmock.NewRows([]string{"q", "m", "avg"}).AddRow(0, 0, nil))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE mentioned = TRUE GROUP BY sentiment")).
		WillReturnRows(sqlmock.NewRows([]string{"sentiment", "count"}))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY ai_platform")).
		WillReturnRows(sqlmock.NewRows([]string{"platform", "mentions", "total"}))

	got, err := repo.MentionTotals(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, got.AvgPosition)
	assert.NotNil(t, got.Sentiments)
	assert.NotNil(t, got.Platforms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisibilityRepository_MentionTotals_QueryError(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewVisibilityRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("FROM ai_mention")).WillReturnError(errors.New("connection reset"))

	_, err := repo.MentionTotals(context.Background(), "")
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisibilityRepository_PrCampaigns_DecodesLists(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewVisibilityRepository(db, log)
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "name", "brand", "status", "target_audience", "key_messages", "media_outlets",
		"pitch_template", "sent_count", "open_count", "reply_count", "placement_count", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM ai_pr_campaign WHERE status = ? ORDER BY updated_at DESC LIMIT ?")).
		WithArgs("active", 50).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("pr1", "Launch", "Acme", "active", `["devs"]`, nil, `["TechDaily","DevWeekly"]`, nil,
				20, 10, 3, 1, created, created))

	got, err := repo.PrCampaigns(context.Background(), model.PrCampaignFilter{Status: "active", Limit: 50})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"devs"}, got[0].TargetAudience)
	assert.Equal(t, []string{}, got[0].KeyMessages)
	assert.Equal(t, []string{"TechDaily", "DevWeekly"}, got[0].MediaOutlets)
	assert.Nil(t, got[0].PitchTemplate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
