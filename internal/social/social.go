// Package social derives social media KPIs from profile and post totals.
package social

import (
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
)

func Stats(t model.SocialTotals) model.SocialStats {
	return model.SocialStats{
		TotalProfiles:     t.Profiles,
		TotalFollowers:    t.Followers,
		AvgEngagementRate: util.Round(t.AvgEngagementRate, 2),
		TotalPosts:        t.Posts,
		TotalImpressions:  t.Impressions,
	}
}

// Aggregate adds the engagement rate, engagements per impression in percent, to the metric sums.
func Aggregate(t model.SocialMetricTotals) model.AggregatedSocialMetrics {
	return model.AggregatedSocialMetrics{
		TotalImpressions: t.Impressions,
		TotalEngagements: t.Engagements,
		FollowerGrowth:   t.FollowersChange,
		EngagementRate:   util.Round(util.Percent(float64(t.Engagements), float64(t.Impressions)), 2),
	}
}
