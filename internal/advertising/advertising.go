// Package advertising derives paid campaign rates.
package advertising

import (
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
)

// WithRates fills the click-through rate and the conversion rate, both in percent, of every campaign.
func WithRates(campaigns []model.AdCampaign) []model.AdCampaign {
	for i := range campaigns {
		c := &campaigns[i]
		c.Ctr = util.Percent(float64(c.Clicks), float64(c.Impressions))
		c.ConversionRate = util.Percent(float64(c.Conversions), float64(c.Clicks))
	}
	return campaigns
}

func Stats(t model.AdvertisingTotals) model.AdvertisingStats {
	return model.AdvertisingStats{
		TotalCampaigns:   t.Campaigns,
		ActiveCampaigns:  t.ActiveCampaigns,
		TotalSpend:       t.Spend,
		TotalImpressions: t.Impressions,
		TotalClicks:      t.Clicks,
		AvgCtr:           util.Percent(float64(t.Clicks), float64(t.Impressions)),
	}
}
