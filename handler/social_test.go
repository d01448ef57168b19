package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSocialHandler(t *testing.T) (*SocialHandler, *mocks.SocialStorage) {
	repo := mocks.NewSocialStorage(t)
	h := NewSocialHandler(repo)
	h.now = func() time.Time { return now }
	return h, repo
}

func TestSocialHandler_GetSocialStats(t *testing.T) {
	h, repo := newSocialHandler(t)
	repo.On("Totals", mock.Anything).Return(model.SocialTotals{Profiles: 2, Followers: 3000,
		AvgEngagementRate: 3.14159, Posts: 12, Impressions: 48000}, nil)

	c, w := newContext(t, "/social/stats")
	h.GetSocialStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_profiles":2,"total_followers":3000,"avg_engagement_rate":3.14,"total_posts":12,
		"total_impressions":48000}`, w.Body.String())
}

func TestSocialHandler_GetPosts_Filters(t *testing.T) {
	h, repo := newSocialHandler(t)
	repo.On("Posts", mock.Anything, model.SocialPostFilter{ProfileID: "sp1", PostType: "video",
		Limit: defaultSocialPosts}).Return([]model.SocialPost{}, nil)

	c, w := newContext(t, "/social/posts?profile_id=sp1&post_type=video")
	h.GetPosts(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSocialHandler_GetTopPosts_BadLimit(t *testing.T) {
	h, _ := newSocialHandler(t)

	c, w := newContext(t, "/social/posts/top?limit=ten")
	h.GetTopPosts(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSocialHandler_GetAggregatedMetrics(t *testing.T) {
	h, repo := newSocialHandler(t)
	repo.On("MetricTotals", mock.Anything, now.AddDate(0, 0, -7)).
		Return(model.SocialMetricTotals{Impressions: 2000, Engagements: 50, FollowersChange: 12}, nil)

	c, w := newContext(t, "/social/metrics?days=7")
	h.GetAggregatedMetrics(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_impressions":2000,"total_engagements":50,"follower_growth":12,
		"engagement_rate":2.5}`, w.Body.String())
}

func TestSocialHandler_GetProfileMetrics(t *testing.T) {
	h, repo := newSocialHandler(t)
	repo.On("Metrics", mock.Anything, "sp1", now.AddDate(0, 0, -30)).
		Return([]model.SocialMetric{{ID: "m1", ProfileID: "sp1", Followers: 1000}}, nil)

	c, w := newContext(t, "/social/profiles/sp1/metrics", gin.Param{Key: "id", Value: "sp1"})
	h.GetProfileMetrics(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"followers":1000`)
}
