package advertising

import (
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestWithRates(t *testing.T) {
	campaigns := WithRates([]model.AdCampaign{
		{ID: "c1", Impressions: 2000, Clicks: 50, Conversions: 5},
		{ID: "c2"},
	})

	assert.Equal(t, 2.5, campaigns[0].Ctr)
	assert.Equal(t, 10.0, campaigns[0].ConversionRate)
	assert.Zero(t, campaigns[1].Ctr)
	assert.Zero(t, campaigns[1].ConversionRate)
}

func TestStats(t *testing.T) {
	got := Stats(model.AdvertisingTotals{Campaigns: 4, ActiveCampaigns: 2, Spend: 1250.5, Impressions: 8000,
		Clicks: 200})

	assert.Equal(t, model.AdvertisingStats{
		TotalCampaigns:   4,
		ActiveCampaigns:  2,
		TotalSpend:       1250.5,
		TotalImpressions: 8000,
		TotalClicks:      200,
		AvgCtr:           2.5,
	}, got)
}
