package model

import "time"

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// RankHistoryPoint is one daily observation of a tracked keyword.
type RankHistoryPoint struct {
	Date             time.Time `json:"date"`
	Position         *int      `json:"position"`
	Url              *string   `json:"url"`
	Visibility       *float64  `json:"visibility"`
	EstimatedTraffic *int      `json:"estimated_traffic"`
}

// TrackedKeywordHistory is a tracked keyword with its recent history, newest point first.
type TrackedKeywordHistory struct {
	ID      string
	Keyword string
	Volume  int
	History []RankHistoryPoint
}

type TrackedKeywordSummary struct {
	ID               string `json:"id"`
	Keyword          string `json:"keyword"`
	Volume           int    `json:"volume"`
	CurrentPosition  *int   `json:"current_position"`
	PreviousPosition *int   `json:"previous_position"`
	BestPosition     *int   `json:"best_position"`
	WorstPosition    *int   `json:"worst_position"`
	EstimatedTraffic *int   `json:"estimated_traffic"`
	Trend            Trend  `json:"trend"`
}

// ProjectTrackingSummary godoc
// @Description Position tracking KPIs of a project
// @Type ProjectTrackingSummary
type ProjectTrackingSummary struct {
	TotalKeywords int     `json:"total_keywords"`
	AvgPosition   float64 `json:"avg_position"`
	Improved      int     `json:"improved"`
	Declined      int     `json:"declined"`
	Unchanged     int     `json:"unchanged"`
	TopPositions  int     `json:"top_positions"`
	FirstPage     int     `json:"first_page"`
}

type AggregatedRankPoint struct {
	Date         string  `json:"date"`
	AvgPosition  float64 `json:"avg_position"`
	TotalTraffic int     `json:"total_traffic"`
}
