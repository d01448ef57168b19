package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvertisingHandler_GetPpcKeywords_Search(t *testing.T) {
	repo := mocks.NewAdvertisingStorage(t)
	h := NewAdvertisingHandler(repo)
	repo.On("SearchPpcKeywords", mock.Anything, "seo", defaultPpcSearch).
		Return([]model.PpcKeyword{{ID: "k1", Keyword: "seo tools"}}, nil)

	c, w := newContext(t, "/advertising/ppc-keywords?q=%20seo%20")
	h.GetPpcKeywords(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"keyword":"seo tools"`)
}

func TestAdvertisingHandler_GetPpcKeywords_Filters(t *testing.T) {
	repo := mocks.NewAdvertisingStorage(t)
	h := NewAdvertisingHandler(repo)
	maxCpc := 2.5
	repo.On("PpcKeywords", mock.Anything, model.PpcKeywordFilter{MinVolume: 1000, MaxCpc: &maxCpc,
		Limit: defaultPpcList}).Return([]model.PpcKeyword{}, nil)

	c, w := newContext(t, "/advertising/ppc-keywords?min_volume=1000&max_cpc=2.5")
	h.GetPpcKeywords(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdvertisingHandler_GetPpcKeywords_BadCpc(t *testing.T) {
	h := NewAdvertisingHandler(mocks.NewAdvertisingStorage(t))

	c, w := newContext(t, "/advertising/ppc-keywords?max_cpc=-1")
	h.GetPpcKeywords(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvertisingHandler_GetCampaigns_AddsRates(t *testing.T) {
	repo := mocks.NewAdvertisingStorage(t)
	h := NewAdvertisingHandler(repo)
	repo.On("Campaigns", mock.Anything, model.AdCampaignFilter{Domain: "rival", Status: "active",
		Limit: defaultAdCampaigns}).
		Return([]model.AdCampaign{{ID: "c1", Impressions: 1000, Clicks: 50, Conversions: 5}}, nil)

	c, w := newContext(t, "/advertising/campaigns?domain=rival&status=active")
	h.GetCampaigns(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got []model.AdCampaign
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 5.0, got[0].Ctr)
	assert.Equal(t, 10.0, got[0].ConversionRate)
}

func TestAdvertisingHandler_GetAdvertisingStats(t *testing.T) {
	repo := mocks.NewAdvertisingStorage(t)
	h := NewAdvertisingHandler(repo)
	repo.On("Totals", mock.Anything).Return(model.AdvertisingTotals{Campaigns: 3, ActiveCampaigns: 1, Spend: 420.5,
		Impressions: 4000, Clicks: 100}, nil)

	c, w := newContext(t, "/advertising/stats")
	h.GetAdvertisingStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_campaigns":3,"active_campaigns":1,"total_spend":420.5,"total_impressions":4000,
		"total_clicks":100,"avg_ctr":2.5}`, w.Body.String())
}

func TestAdvertisingHandler_GetCompetitorAds(t *testing.T) {
	repo := mocks.NewAdvertisingStorage(t)
	h := NewAdvertisingHandler(repo)
	repo.On("CompetitorCreatives", mock.Anything, "rival.com", 5).
		Return([]model.AdCreative{{ID: "a1", Headline: "Rank higher"}}, nil)

	c, w := newContext(t, "/advertising/competitors/rival.com/ads?limit=5",
		gin.Param{Key: "domain", Value: "rival.com"})
	h.GetCompetitorAds(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"headline":"Rank higher"`)
}
