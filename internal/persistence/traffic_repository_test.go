package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrafficRepository_Daily(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewTrafficRepository(db, log)
	since := time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)

	columns := []string{"id", "domain", "date", "visits", "page_views", "bounce_rate", "avg_duration",
		"pages_per_visit", "direct_traffic", "search_traffic", "social_traffic", "referral_traffic", "paid_traffic"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM traffic_data WHERE domain = ? AND date >= ? ORDER BY date ASC")).
		WithArgs("example.com", since).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("t1", "example.com", since, 1200, 3100, 41.5, 95.0, 2.6, 20.0, 55.0, 10.0, 10.0, 5.0))

	got, err := repo.Daily(context.Background(), "example.com", since)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1200, got[0].Visits)
	assert.Equal(t, 41.5, got[0].BounceRate)
	assert.Equal(t, 55.0, got[0].SearchTraffic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrafficRepository_MarketOverview_LatestDate(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewTrafficRepository(db, log)
	date := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("date = (SELECT MAX(date) FROM market_data WHERE industry_slug = ?)")).
		WithArgs("retail", "retail", 20).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "industry_slug", "domain", "market_share", "traffic", "growth_rate", "date"}).
			AddRow("m1", "retail", "shop.com", 31.2, 800000, 4.1, date))

	got, err := repo.MarketOverview(context.Background(), "retail", 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "shop.com", got[0].Domain)
	assert.Equal(t, 31.2, got[0].MarketShare)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrafficRepository_Industries(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewTrafficRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT industry_slug FROM market_data")).
		WillReturnRows(sqlmock.NewRows([]string{"industry_slug"}).AddRow("finance").AddRow("retail"))

	got, err := repo.Industries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"finance", "retail"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
