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

func TestSocialRepository_Posts_Filters(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewSocialRepository(db, log)
	published := time.Date(2026, 10, 10, 9, 0, 0, 0, time.UTC)

	columns := []string{"id", "profile_id", "platform", "content", "post_type", "likes", "comments", "shares",
		"impressions", "reach", "published_at", "url"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE platform = ? AND post_type = ? ORDER BY published_at DESC LIMIT ?")).
		WithArgs("instagram", "reel", 50).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("s1", "p1", "instagram", nil, "reel", 120, 8, 3, 5400, 4100, published, "https://ig.example/s1"))

	got, err := repo.Posts(context.Background(), model.SocialPostFilter{Platform: "instagram", PostType: "reel",
		Limit: 50})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Content)
	assert.Equal(t, 5400, got[0].Impressions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialRepository_Profiles_AllPlatforms(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewSocialRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("FROM social_profile ORDER BY followers DESC LIMIT ?")).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.Profiles(context.Background(), "", 50)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialRepository_Totals(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewSocialRepository(db, log)

	mock.ExpectQuery(regexp.QuoteMeta("FROM social_profile")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "followers", "engagement"}).AddRow(3, 15000, 2.456))
	mock.ExpectQuery(regexp.QuoteMeta("FROM social_post")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "impressions"}).AddRow(40, 120000))

	got, err := repo.Totals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.SocialTotals{Profiles: 3, Followers: 15000, AvgEngagementRate: 2.456, Posts: 40,
		Impressions: 120000}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSocialRepository_MetricTotals(t *testing.T) {
	db, mock, log := newMock(t)
	repo := NewSocialRepository(db, log)
	since := time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM social_metric WHERE date >= ?")).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"impressions", "engagements", "change"}).AddRow(9000, 300, 42))

	got, err := repo.MetricTotals(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, model.SocialMetricTotals{Impressions: 9000, Engagements: 300, FollowersChange: 42}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
