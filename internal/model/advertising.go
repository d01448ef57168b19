package model

import "time"

type AdCopy struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
}

type PpcKeyword struct {
	ID            string    `json:"id"`
	Keyword       string    `json:"keyword"`
	Volume        int       `json:"volume"`
	Cpc           float64   `json:"cpc"`
	Competition   float64   `json:"competition"`
	CompetitorAds int       `json:"competitor_ads"`
	Trend         []float64 `json:"trend"`
	LastSeen      time.Time `json:"last_seen"`
	AdCopies      []AdCopy  `json:"ad_copies"`
}

// PpcKeywordFilter narrows paid keywords. A nil MaxCpc applies no upper bound.
type PpcKeywordFilter struct {
	MinVolume int
	MaxCpc    *float64
	Limit     int
}

type AdCampaign struct {
	ID             string     `json:"id"`
	Domain         string     `json:"domain"`
	Platform       string     `json:"platform"`
	CampaignType   string     `json:"campaign_type"`
	Budget         *float64   `json:"budget"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Status         string     `json:"status"`
	Impressions    int        `json:"impressions"`
	Clicks         int        `json:"clicks"`
	Conversions    int        `json:"conversions"`
	Spend          float64    `json:"spend"`
	Ctr            float64    `json:"ctr"`
	ConversionRate float64    `json:"conversion_rate"`
}

// AdCampaignFilter narrows campaigns. Domain matches by substring, the other fields exactly.
type AdCampaignFilter struct {
	Domain   string
	Platform string
	Status   string
	Limit    int
}

type AdCreative struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Headline    string    `json:"headline"`
	Description *string   `json:"description"`
	DisplayUrl  *string   `json:"display_url"`
	FinalUrl    *string   `json:"final_url"`
	Format      string    `json:"format"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Ctr         float64   `json:"ctr"`
	FirstSeen   time.Time `json:"first_seen"`
	LastSeen    time.Time `json:"last_seen"`
}

type AdCreativeFilter struct {
	CampaignID string
	Format     string
	Limit      int
}

// AdvertisingTotals are the raw campaign counts and sums.
type AdvertisingTotals struct {
	Campaigns       int
	ActiveCampaigns int
	Spend           float64
	Impressions     int
	Clicks          int
}

// AdvertisingStats godoc
// @Description Totals over every ad campaign
// @Type AdvertisingStats
type AdvertisingStats struct {
	TotalCampaigns   int     `json:"total_campaigns"`
	ActiveCampaigns  int     `json:"active_campaigns"`
	TotalSpend       float64 `json:"total_spend"`
	TotalImpressions int     `json:"total_impressions"`
	TotalClicks      int     `json:"total_clicks"`
	AvgCtr           float64 `json:"avg_ctr"`
}
