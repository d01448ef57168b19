// Package visibility derives how AI assistants mention a brand and how its AI PR campaigns perform.
package visibility

import (
	"cmp"
	"slices"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
)

// Stats turns mention counts into rates. The sentiment breakdown covers mentioned checks only.
func Stats(t model.MentionTotals) model.AIVisibilityStats {
	s := model.AIVisibilityStats{
		TotalQueries:       t.Queries,
		MentionRate:        util.Round(util.Percent(float64(t.Mentioned), float64(t.Queries)), 1),
		SentimentBreakdown: model.WithShares(t.Sentiments),
		PlatformBreakdown:  t.Platforms,
	}
	if t.AvgPosition != nil {
		s.AvgPosition = util.Round(*t.AvgPosition, 1)
	}
	if s.PlatformBreakdown == nil {
		s.PlatformBreakdown = []model.PlatformMentions{}
	}

	return s
}

// Trend counts mentioned and not mentioned checks per UTC calendar day, oldest day first.
func Trend(checks []model.MentionCheck) []model.MentionTrendPoint {
	byDate := make(map[string]*model.MentionTrendPoint)
	for _, c := range checks {
		date := c.CheckedAt.UTC().Format(time.DateOnly)
		p, ok := byDate[date]
		if !ok {
			p = &model.MentionTrendPoint{Date: date}
			byDate[date] = p
		}
		if c.Mentioned {
			p.Mentioned++
		} else {
			p.NotMentioned++
		}
	}

	out := make([]model.MentionTrendPoint, 0, len(byDate))
	for _, p := range byDate {
		out = append(out, *p)
	}
	slices.SortFunc(out, func(a, b model.MentionTrendPoint) int {
		return cmp.Compare(a.Date, b.Date)
	})

	return out
}

// PrStats turns outreach sums into open and reply rates over the sent pitches.
func PrStats(t model.PrTotals) model.PrStats {
	return model.PrStats{
		TotalCampaigns:  t.Campaigns,
		ActiveCampaigns: t.ActiveCampaigns,
		TotalSent:       t.Sent,
		TotalPlacements: t.Placements,
		AvgOpenRate:     util.Round(util.Percent(float64(t.Opened), float64(t.Sent)), 1),
		AvgReplyRate:    util.Round(util.Percent(float64(t.Replied), float64(t.Sent)), 1),
	}
}
