package model

import "time"

// TrafficData is one day of traffic of a domain. The source fields are shares of the visits in percent.
type TrafficData struct {
	ID              string    `json:"id"`
	Domain          string    `json:"domain"`
	Date            time.Time `json:"date"`
	Visits          int       `json:"visits"`
	PageViews       int       `json:"page_views"`
	BounceRate      float64   `json:"bounce_rate"`
	AvgDuration     float64   `json:"avg_duration"`
	PagesPerVisit   float64   `json:"pages_per_visit"`
	DirectTraffic   float64   `json:"direct_traffic"`
	SearchTraffic   float64   `json:"search_traffic"`
	SocialTraffic   float64   `json:"social_traffic"`
	ReferralTraffic float64   `json:"referral_traffic"`
	PaidTraffic     float64   `json:"paid_traffic"`
}

type TrafficSources struct {
	Direct   float64 `json:"direct"`
	Search   float64 `json:"search"`
	Social   float64 `json:"social"`
	Referral float64 `json:"referral"`
	Paid     float64 `json:"paid"`
}

// TrafficSummary godoc
// @Description Traffic totals of a domain over a window, with the change against the preceding window
// @Type TrafficSummary
type TrafficSummary struct {
	TotalVisits     int            `json:"total_visits"`
	TotalPageViews  int            `json:"total_page_views"`
	AvgBounceRate   float64        `json:"avg_bounce_rate"`
	AvgDuration     int            `json:"avg_duration"`
	TrafficSources  TrafficSources `json:"traffic_sources"`
	PreviousVisits  int            `json:"previous_visits"`
	VisitsChange    *float64       `json:"visits_change"`
	PageViewsChange *float64       `json:"page_views_change"`
}

type DomainTraffic struct {
	Domain        string  `json:"domain"`
	TotalVisits   int     `json:"total_visits"`
	AvgBounceRate float64 `json:"avg_bounce_rate"`
}

type MarketShare struct {
	ID           string    `json:"id"`
	IndustrySlug string    `json:"industry_slug"`
	Domain       string    `json:"domain"`
	MarketShare  float64   `json:"market_share"`
	Traffic      int       `json:"traffic"`
	GrowthRate   float64   `json:"growth_rate"`
	Date         time.Time `json:"date"`
}

type MarketTrendPoint struct {
	Date        time.Time `json:"date"`
	MarketShare float64   `json:"market_share"`
	Traffic     int       `json:"traffic"`
}
