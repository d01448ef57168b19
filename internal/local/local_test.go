package local

import (
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	rating := 4.26
	got := Stats(model.LocalTotals{Listings: 6, VerifiedListings: 4, AvgRating: &rating, Reviews: 120,
		PendingResponses: 9, NapIssues: 2})

	assert.Equal(t, model.LocalStats{
		TotalListings:    6,
		VerifiedListings: 4,
		AverageRating:    4.3,
		TotalReviews:     120,
		PendingResponses: 9,
		NapIssues:        2,
	}, got)
}

func TestStats_NoRatings(t *testing.T) {
	assert.Zero(t, Stats(model.LocalTotals{Listings: 1}).AverageRating)
}

func TestReviewStats(t *testing.T) {
	got := ReviewStats(
		[]model.RatingCount{{Rating: 5, Count: 6}, {Rating: 1, Count: 2}},
		[]model.SentimentCount{{Sentiment: "negative", Count: 2}, {Sentiment: "positive", Count: 6}},
	)

	assert.Equal(t, 8, got.Total)
	assert.Equal(t, []model.SentimentCount{
		{Sentiment: "negative", Count: 2, Share: 25},
		{Sentiment: "positive", Count: 6, Share: 75},
	}, got.BySentiment)
}

func TestReviewStats_Empty(t *testing.T) {
	got := ReviewStats(nil, nil)

	assert.Zero(t, got.Total)
	assert.NotNil(t, got.ByRating)
	assert.NotNil(t, got.BySentiment)
}

func TestLocationRanks(t *testing.T) {
	got := LocationRanks([]model.LocationRank{{Location: "Austin, TX", AvgRank: 3.6666, Count: 3}})

	assert.Equal(t, []model.LocationRank{{Location: "Austin, TX", AvgRank: 3.7, Count: 3}}, got)
}
