// Package local derives local listing, review and map ranking KPIs.
package local

import (
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
)

func Stats(t model.LocalTotals) model.LocalStats {
	s := model.LocalStats{
		TotalListings:    t.Listings,
		VerifiedListings: t.VerifiedListings,
		TotalReviews:     t.Reviews,
		PendingResponses: t.PendingResponses,
		NapIssues:        t.NapIssues,
	}
	if t.AvgRating != nil {
		s.AverageRating = util.Round(*t.AvgRating, 1)
	}
	return s
}

// ReviewStats sums the rating counts into the total and adds sentiment shares.
func ReviewStats(byRating []model.RatingCount, bySentiment []model.SentimentCount) model.ReviewStats {
	s := model.ReviewStats{
		ByRating:    byRating,
		BySentiment: model.WithShares(bySentiment),
	}
	if s.ByRating == nil {
		s.ByRating = []model.RatingCount{}
	}
	for _, r := range byRating {
		s.Total += r.Count
	}
	return s
}

// LocationRanks rounds the average rank of every location to one decimal.
func LocationRanks(ranks []model.LocationRank) []model.LocationRank {
	for i := range ranks {
		ranks[i].AvgRank = util.Round(ranks[i].AvgRank, 1)
	}
	return ranks
}
