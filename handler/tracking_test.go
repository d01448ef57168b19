package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/IliaW/rank-api/internal/tracking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTrackingHandler(t *testing.T) (*TrackingHandler, *mocks.TrackingStorage) {
	repo := mocks.NewTrackingStorage(t)
	h := NewTrackingHandler(repo)
	h.now = func() time.Time { return now }
	return h, repo
}

func p(v int) *int { return &v }

func TestTrackingHandler_GetProjectSummary(t *testing.T) {
	h, repo := newTrackingHandler(t)
	repo.On("TrackedKeywords", mock.Anything, "p1", tracking.SummaryDepth, 0, 0).
		Return([]model.TrackedKeywordHistory{
			{ID: "t1", History: []model.RankHistoryPoint{{Position: p(2)}, {Position: p(4)}}},
			{ID: "t2", History: []model.RankHistoryPoint{{Position: p(15)}, {Position: p(11)}}},
		}, nil)

	c, w := newContext(t, "/projects/p1/tracking/summary", gin.Param{Key: "id", Value: "p1"})
	h.GetProjectSummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.ProjectTrackingSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, model.ProjectTrackingSummary{
		TotalKeywords: 2, AvgPosition: 8.5, Improved: 1, Declined: 1, TopPositions: 1, FirstPage: 1,
	}, got)
}

func TestTrackingHandler_GetTrackedKeywords(t *testing.T) {
	h, repo := newTrackingHandler(t)
	repo.On("TrackedKeywords", mock.Anything, "p1", tracking.TrendDepth, 25, 50).
		Return([]model.TrackedKeywordHistory{
			{ID: "t1", Keyword: "seo tools", History: []model.RankHistoryPoint{{Position: p(9)}, {Position: p(3)}}},
		}, nil)

	c, w := newContext(t, "/projects/p1/tracking/keywords?limit=25&offset=50", gin.Param{Key: "id", Value: "p1"})
	h.GetTrackedKeywords(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"trend":"down"`)
}

func TestTrackingHandler_GetProjectHistory(t *testing.T) {
	h, repo := newTrackingHandler(t)
	since := now.AddDate(0, 0, -7)
	repo.On("ProjectHistory", mock.Anything, "p1", since).Return([]model.RankHistoryPoint{
		{Date: since, Position: p(3)},
		{Date: since, Position: p(5)},
	}, nil)

	c, w := newContext(t, "/projects/p1/tracking/history?days=7", gin.Param{Key: "id", Value: "p1"})
	h.GetProjectHistory(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date":"2026-10-12","avg_position":4,"total_traffic":0}]`, w.Body.String())
}

func TestTrackingHandler_GetKeywordHistory_DefaultWindow(t *testing.T) {
	h, repo := newTrackingHandler(t)
	repo.On("KeywordHistory", mock.Anything, "t1", now.AddDate(0, 0, -30)).Return([]model.RankHistoryPoint{}, nil)

	c, w := newContext(t, "/tracking/keywords/t1/history", gin.Param{Key: "id", Value: "t1"})
	h.GetKeywordHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrackingHandler_GetKeywordHistory_BadDays(t *testing.T) {
	h, _ := newTrackingHandler(t)

	c, w := newContext(t, "/tracking/keywords/t1/history?days=-3", gin.Param{Key: "id", Value: "t1"})
	h.GetKeywordHistory(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackingHandler_GetProjectHistory_CapsDays(t *testing.T) {
	h, repo := newTrackingHandler(t)
	repo.On("ProjectHistory", mock.Anything, "p1", now.AddDate(0, 0, -365)).Return([]model.RankHistoryPoint{}, nil)

	c, w := newContext(t, "/projects/p1/tracking/history?days=5000", gin.Param{Key: "id", Value: "p1"})
	h.GetProjectHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
