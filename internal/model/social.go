package model

import "time"

type SocialProfile struct {
	ID             string    `json:"id"`
	Platform       string    `json:"platform"`
	Handle         string    `json:"handle"`
	DisplayName    *string   `json:"display_name"`
	Followers      int       `json:"followers"`
	Following      int       `json:"following"`
	PostCount      int       `json:"post_count"`
	EngagementRate float64   `json:"engagement_rate"`
	ProfileUrl     *string   `json:"profile_url"`
	IsVerified     bool      `json:"is_verified"`
	LastUpdated    time.Time `json:"last_updated"`
}

type SocialPost struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	Platform    string    `json:"platform"`
	Content     *string   `json:"content"`
	PostType    string    `json:"post_type"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	Impressions int       `json:"impressions"`
	Reach       int       `json:"reach"`
	PublishedAt time.Time `json:"published_at"`
	Url         *string   `json:"url"`
}

// SocialPostFilter narrows posts. Empty fields match every post.
type SocialPostFilter struct {
	ProfileID string
	Platform  string
	PostType  string
	Limit     int
}

type SocialMetric struct {
	ID              string    `json:"id"`
	ProfileID       string    `json:"profile_id"`
	Date            time.Time `json:"date"`
	Followers       int       `json:"followers"`
	FollowersChange int       `json:"followers_change"`
	Impressions     int       `json:"impressions"`
	Engagements     int       `json:"engagements"`
	Reach           int       `json:"reach"`
}

// SocialTotals are the raw sums over every profile and post.
type SocialTotals struct {
	Profiles          int
	Followers         int
	AvgEngagementRate float64
	Posts             int
	Impressions       int
}

// SocialStats godoc
// @Description Totals over every tracked social profile
// @Type SocialStats
type SocialStats struct {
	TotalProfiles     int     `json:"total_profiles"`
	TotalFollowers    int     `json:"total_followers"`
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalPosts        int     `json:"total_posts"`
	TotalImpressions  int     `json:"total_impressions"`
}

type PlatformProfiles struct {
	Platform  string `json:"platform"`
	Count     int    `json:"count"`
	Followers int    `json:"followers"`
}

// SocialMetricTotals are the raw sums of the daily profile metrics over a window.
type SocialMetricTotals struct {
	Impressions     int
	Engagements     int
	FollowersChange int
}

type AggregatedSocialMetrics struct {
	TotalImpressions int     `json:"total_impressions"`
	TotalEngagements int     `json:"total_engagements"`
	FollowerGrowth   int     `json:"follower_growth"`
	EngagementRate   float64 `json:"engagement_rate"`
}
