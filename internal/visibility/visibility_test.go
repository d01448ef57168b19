package visibility

import (
	"testing"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	avg := 2.345
	got := Stats(model.MentionTotals{
		Queries:     30,
		Mentioned:   7,
		AvgPosition: &avg,
		Sentiments: []model.SentimentCount{
			{Sentiment: "negative", Count: 1},
			{Sentiment: "neutral", Count: 2},
			{Sentiment: "positive", Count: 4},
		},
		Platforms: []model.PlatformMentions{{Platform: "chatgpt", Mentions: 7, Total: 30}},
	})

	assert.Equal(t, 30, got.TotalQueries)
	assert.Equal(t, 23.3, got.MentionRate)
	assert.Equal(t, 2.3, got.AvgPosition)
	assert.Equal(t, []model.SentimentCount{
		{Sentiment: "negative", Count: 1, Share: 14.3},
		{Sentiment: "neutral", Count: 2, Share: 28.6},
		{Sentiment: "positive", Count: 4, Share: 57.1},
	}, got.SentimentBreakdown)
	assert.Equal(t, []model.PlatformMentions{{Platform: "chatgpt", Mentions: 7, Total: 30}}, got.PlatformBreakdown)
}

func TestStats_NoChecks(t *testing.T) {
	got := Stats(model.MentionTotals{})

	assert.Zero(t, got.MentionRate)
	assert.Zero(t, got.AvgPosition)
	assert.Empty(t, got.SentimentBreakdown)
	assert.NotNil(t, got.PlatformBreakdown)
}

func TestTrend(t *testing.T) {
	d1 := time.Date(2026, 10, 2, 23, 30, 0, 0, time.UTC)
	d0 := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	got := Trend([]model.MentionCheck{
		{CheckedAt: d1, Mentioned: true},
		{CheckedAt: d0, Mentioned: false},
		{CheckedAt: d1.Add(-time.Hour), Mentioned: false},
		{CheckedAt: d0, Mentioned: true},
		{CheckedAt: d1, Mentioned: true},
	})

	assert.Equal(t, []model.MentionTrendPoint{
		{Date: "2026-10-01", Mentioned: 1, NotMentioned: 1},
		{Date: "2026-10-02", Mentioned: 2, NotMentioned: 1},
	}, got)
}

func TestPrStats(t *testing.T) {
	got := PrStats(model.PrTotals{Campaigns: 5, ActiveCampaigns: 2, Sent: 300, Opened: 121, Replied: 17,
		Placements: 4})

	assert.Equal(t, model.PrStats{
		TotalCampaigns:  5,
		ActiveCampaigns: 2,
		TotalSent:       300,
		TotalPlacements: 4,
		AvgOpenRate:     40.3,
		AvgReplyRate:    5.7,
	}, got)
}

func TestPrStats_NothingSent(t *testing.T) {
	got := PrStats(model.PrTotals{Campaigns: 1})

	assert.Zero(t, got.AvgOpenRate)
	assert.Zero(t, got.AvgReplyRate)
}
