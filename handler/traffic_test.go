package handler

import (
	"encoding/json"
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

func newTrafficHandler(t *testing.T) (*TrafficHandler, *mocks.TrafficStorage) {
	repo := mocks.NewTrafficStorage(t)
	h := NewTrafficHandler(repo)
	h.now = func() time.Time { return now }
	return h, repo
}

func TestTrafficHandler_GetTrafficSummary(t *testing.T) {
	h, repo := newTrafficHandler(t)
	repo.On("Daily", mock.Anything, "example.com", now.AddDate(0, 0, -14)).Return([]model.TrafficData{
		{Date: now.AddDate(0, 0, -10), Visits: 100, PageViews: 200},
		{Date: now.AddDate(0, 0, -3), Visits: 150, PageViews: 300, BounceRate: 40, AvgDuration: 60,
			SearchTraffic: 55},
	}, nil)

	c, w := newContext(t, "/traffic/domains/example.com/summary?days=7",
		gin.Param{Key: "domain", Value: "example.com"})
	h.GetTrafficSummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.TrafficSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 150, got.TotalVisits)
	assert.Equal(t, 100, got.PreviousVisits)
	assert.Equal(t, 55.0, got.TrafficSources.Search)
	require.NotNil(t, got.VisitsChange)
	assert.Equal(t, 50.0, *got.VisitsChange)
}

func TestTrafficHandler_GetTrafficSummary_NoTraffic(t *testing.T) {
	h, repo := newTrafficHandler(t)
	repo.On("Daily", mock.Anything, "quiet.com", now.AddDate(0, 0, -60)).Return([]model.TrafficData{}, nil)

	c, w := newContext(t, "/traffic/domains/quiet.com/summary", gin.Param{Key: "domain", Value: "quiet.com"})
	h.GetTrafficSummary(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrafficHandler_GetDomainTraffic_CapsDays(t *testing.T) {
	h, repo := newTrafficHandler(t)
	repo.On("Daily", mock.Anything, "example.com", now.AddDate(0, 0, -365)).Return([]model.TrafficData{}, nil)

	c, w := newContext(t, "/traffic/domains/example.com?days=900", gin.Param{Key: "domain", Value: "example.com"})
	h.GetDomainTraffic(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTrafficHandler_GetTopTraffic(t *testing.T) {
	h, repo := newTrafficHandler(t)
	repo.On("TopDomains", mock.Anything, now.AddDate(0, 0, -30), 5).
		Return([]model.DomainTraffic{{Domain: "example.com", TotalVisits: 9000, AvgBounceRate: 38.2}}, nil)

	c, w := newContext(t, "/traffic/top?limit=5")
	h.GetTopTraffic(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"domain":"example.com","total_visits":9000,"avg_bounce_rate":38.2}]`, w.Body.String())
}

func TestTrafficHandler_GetMarketOverview(t *testing.T) {
	h, repo := newTrafficHandler(t)
	repo.On("MarketOverview", mock.Anything, "retail", defaultMarketShare).
		Return([]model.MarketShare{{ID: "m1", IndustrySlug: "retail", Domain: "shop.com"}}, nil)

	c, w := newContext(t, "/markets/retail", gin.Param{Key: "industry", Value: "retail"})
	h.GetMarketOverview(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"domain":"shop.com"`)
}

func TestTrafficHandler_GetIndustries(t *testing.T) {
	h, repo := newTrafficHandler(t)
	repo.On("Industries", mock.Anything).Return([]string{"finance", "retail"}, nil)

	c, w := newContext(t, "/markets")
	h.GetIndustries(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["finance","retail"]`, w.Body.String())
}
