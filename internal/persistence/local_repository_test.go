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

func TestLocalRepository_Listings_DecodesNap(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewLocalRepository(db, log)
	synced := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "business_name", "platform", "profile_url", "status", "nap", "categories", "rating",
		"review_count", "is_verified", "last_synced", "issues"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM local_listing WHERE platform = ? ORDER BY last_synced DESC LIMIT ?")).
		WithArgs("google", 100).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("l1", "Acme Bakery", "google", nil, "synced",
				`{"name":"Acme Bakery","address":"1 Main St","phone":"555-0100"}`, `["Bakery"]`, 4.6, 120, true,
				synced, `["NAP mismatch on phone"]`).
			AddRow("l2", "Acme Cafe", "google", nil, "pending", nil, nil, nil, 0, false, synced, nil))

	got, err := repo.Listings(context.Background(), model.LocalListingFilter{Platform: "google", Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, &model.Nap{Name: "Acme Bakery", Address: "1 Main St", Phone: "555-0100"}, got[0].Nap)
	assert.Equal(t, []string{"Bakery"}, got[0].Categories)
	assert.Equal(t, 4.6, *got[0].Rating)
	assert.Nil(t, got[1].Nap)
	assert.Nil(t, got[1].Rating)
	assert.Equal(t, []string{}, got[1].Issues)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_Totals(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewLocalRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("FROM local_listing")).
		WillReturnRows(sqlmock.NewRows([]string{"c", "v", "avg", "nap"}).AddRow(5, 3, nil, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SUM(NOT is_responded)")).
		WillReturnRows(sqlmock.NewRows([]string{"c", "p"}).AddRow(40, 7))

	got, err := repo.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.LocalTotals{Listings: 5, VerifiedListings: 3, Reviews: 40, PendingResponses: 7,
		NapIssues: 1}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_Reviews_Unresponded(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewLocalRepository(db, log)
	responded := false
	published := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "listing_id", "platform", "author_name", "rating", "content", "sentiment",
		"is_responded", "response", "published_at", "responded_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM review WHERE is_responded = ? ORDER BY published_at DESC LIMIT ?")).
		WithArgs(false, 100).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("r1", "l1", "google", "Sam", 2, "Cold coffee", "negative", false, nil, published, nil))

	got, err := repo.Reviews(context.Background(), model.ReviewFilter{Responded: &responded, Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cold coffee", *got[0].Content)
	assert.Nil(t, got[0].Response)
	assert.Nil(t, got[0].RespondedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_ReviewCounts(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewLocalRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY rating ORDER BY rating DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).AddRow(5, 30).AddRow(1, 10))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY sentiment ORDER BY sentiment")).
		WillReturnRows(sqlmock.NewRows([]string{"sentiment", "count"}).AddRow("negative", 10).AddRow("positive", 30))

	ratings, sentiments, err := repo.ReviewCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.RatingCount{{Rating: 5, Count: 30}, {Rating: 1, Count: 10}}, ratings)
	assert.Equal(t, []model.SentimentCount{{Sentiment: "negative", Count: 10}, {Sentiment: "positive", Count: 30}},
		sentiments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRepository_MapRankings(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewLocalRepository(db, log)
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "keyword", "location", "grid_size", "positions", "avg_rank", "top_rank", "date"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM map_ranking WHERE keyword LIKE ? AND location = ? ORDER BY date DESC")).
		WithArgs("%bakery%", "Austin", 50).
		WillReturnRows(sqlmock.NewRows(columns).AddRow("mr1", "bakery near me", "Austin", 3, "[1,2,4]", 2.3, 1, date))

	got, err := repo.MapRankings(context.Background(), model.MapRankingFilter{Keyword: "bakery", Location: "Austin",
		Limit: 50})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{1, 2, 4}, got[0].Positions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
