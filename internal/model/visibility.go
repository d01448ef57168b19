package model

import (
	"time"

	"github.com/IliaW/rank-api/util"
)

type AIMention struct {
	ID          string    `json:"id"`
	Brand       string    `json:"brand"`
	AIPlatform  string    `json:"ai_platform"`
	Query       string    `json:"query"`
	Mentioned   bool      `json:"mentioned"`
	Position    *int      `json:"position"`
	Sentiment   string    `json:"sentiment"`
	Context     *string   `json:"context"`
	Competitors []string  `json:"competitors"`
	CheckedAt   time.Time `json:"checked_at"`
}

// AIMentionFilter narrows mention checks. Brand matches by substring, a nil Mentioned keeps both outcomes.
type AIMentionFilter struct {
	Brand      string
	AIPlatform string
	Mentioned  *bool
	Limit      int
}

// MentionCheck is the outcome of one brand check.
type MentionCheck struct {
	CheckedAt time.Time
	Mentioned bool
}

type SentimentCount struct {
	Sentiment string  `json:"sentiment"`
	Count     int     `json:"count"`
	Share     float64 `json:"share"`
}

type PlatformMentions struct {
	Platform string `json:"platform"`
	Mentions int    `json:"mentions"`
	Total    int    `json:"total"`
}

// MentionTotals are the raw counts behind the AI visibility stats.
type MentionTotals struct {
	Queries     int
	Mentioned   int
	AvgPosition *float64
	Sentiments  []SentimentCount
	Platforms   []PlatformMentions
}

// AIVisibilityStats godoc
// @Description How often AI assistants mention a brand
// @Type AIVisibilityStats
type AIVisibilityStats struct {
	TotalQueries       int                `json:"total_queries"`
	MentionRate        float64            `json:"mention_rate"`
	AvgPosition        float64            `json:"avg_position"`
	SentimentBreakdown []SentimentCount   `json:"sentiment_breakdown"`
	PlatformBreakdown  []PlatformMentions `json:"platform_breakdown"`
}

type MentionTrendPoint struct {
	Date         string `json:"date"`
	Mentioned    int    `json:"mentioned"`
	NotMentioned int    `json:"not_mentioned"`
}

type PrCampaign struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Status         string    `json:"status"`
	TargetAudience []string  `json:"target_audience"`
	KeyMessages    []string  `json:"key_messages"`
	MediaOutlets   []string  `json:"media_outlets"`
	PitchTemplate  *string   `json:"pitch_template"`
	SentCount      int       `json:"sent_count"`
	OpenCount      int       `json:"open_count"`
	ReplyCount     int       `json:"reply_count"`
	PlacementCount int       `json:"placement_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PrCampaignFilter struct {
	Brand  string
	Status string
	Limit  int
}

type PrTotals struct {
	Campaigns       int
	ActiveCampaigns int
	Sent            int
	Opened          int
	Replied         int
	Placements      int
}

type PrStats struct {
	TotalCampaigns  int     `json:"total_campaigns"`
	ActiveCampaigns int     `json:"active_campaigns"`
	TotalSent       int     `json:"total_sent"`
	TotalPlacements int     `json:"total_placements"`
	AvgOpenRate     float64 `json:"avg_open_rate"`
	AvgReplyRate    float64 `json:"avg_reply_rate"`
}

// WithShares fills the share in percent of every sentiment among all the counted ones.
func WithShares(counts []SentimentCount) []SentimentCount {
	var total int
	for _, c := range counts {
		total += c.Count
	}
	out := make([]SentimentCount, len(counts))
	for i, c := range counts {
		c.Share = util.Round(util.Percent(float64(c.Count), float64(total)), 1)
		out[i] = c
	}
	return out
}
