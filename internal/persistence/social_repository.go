package persistence

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/IliaW/rank-api/internal/model"
)

const socialPostSelect = `SELECT id, profile_id, platform, content, post_type, likes, comments, shares, impressions,
	reach, published_at, url FROM social_post`

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name SocialStorage
type SocialStorage interface {
	Profiles(ctx context.Context, platform string, limit int) ([]model.SocialProfile, error)
	Totals(ctx context.Context) (model.SocialTotals, error)
	ProfilesByPlatform(ctx context.Context) ([]model.PlatformProfiles, error)
	Posts(ctx context.Context, filter model.SocialPostFilter) ([]model.SocialPost, error)
	TopPosts(ctx context.Context, limit int) ([]model.SocialPost, error)
	Metrics(ctx context.Context, profileID string, since time.Time) ([]model.SocialMetric, error)
	MetricTotals(ctx context.Context, since time.Time) (model.SocialMetricTotals, error)
}

type SocialRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewSocialRepository(db *sql.DB, log *slog.Logger) *SocialRepository {
	return &SocialRepository{
		db:  db,
		log: log,
	}
}

// Profiles lists profiles by followers. An empty platform matches every platform.
func (r *SocialRepository) Profiles(ctx context.Context, platform string, limit int) ([]model.SocialProfile, error) {
	var c conditions
	c.addIf("platform", platform)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, platform, handle, display_name, followers, following, post_count, engagement_rate,
		profile_url, is_verified, last_updated FROM social_profile`+c.where()+` ORDER BY followers DESC LIMIT ?`,
		append(c.args, limit)...)
	if err != nil {
		r.log.Debug("failed to list social profiles.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SocialProfile, 0)
	for rows.Next() {
		var p model.SocialProfile
		var displayName, profileUrl sql.NullString
		if err = rows.Scan(&p.ID, &p.Platform, &p.Handle, &displayName, &p.Followers, &p.Following, &p.PostCount,
			&p.EngagementRate, &profileUrl, &p.IsVerified, &p.LastUpdated); err != nil {
			return nil, err
		}
		p.DisplayName = stringPtr(displayName)
		p.ProfileUrl = stringPtr(profileUrl)
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *SocialRepository) Totals(ctx context.Context) (model.SocialTotals, error) {
	var t model.SocialTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(followers), 0), COALESCE(AVG(engagement_rate), 0) FROM social_profile`).
		Scan(&t.Profiles, &t.Followers, &t.AvgEngagementRate)
	if err != nil {
		r.log.Debug("failed to sum social profiles.", slog.String("err", err.Error()))
		return t, err
	}
	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(impressions), 0) FROM social_post`).
		Scan(&t.Posts, &t.Impressions)
	if err != nil {
		r.log.Debug("failed to sum social posts.", slog.String("err", err.Error()))
	}

	return t, err
}

func (r *SocialRepository) ProfilesByPlatform(ctx context.Context) ([]model.PlatformProfiles, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT platform, COUNT(*), COALESCE(SUM(followers), 0) FROM social_profile
		GROUP BY platform ORDER BY platform`)
	if err != nil {
		r.log.Debug("failed to group social profiles.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PlatformProfiles, 0)
	for rows.Next() {
		var p model.PlatformProfiles
		if err = rows.Scan(&p.Platform, &p.Count, &p.Followers); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

// Posts lists the newest posts matching the filter.
func (r *SocialRepository) Posts(ctx context.Context, filter model.SocialPostFilter) ([]model.SocialPost, error) {
	var c conditions
	c.addIf("profile_id", filter.ProfileID)
	c.addIf("platform", filter.Platform)
	c.addIf("post_type", filter.PostType)
	return r.posts(ctx, socialPostSelect+c.where()+" ORDER BY published_at DESC LIMIT ?",
		append(c.args, filter.Limit)...)
}

func (r *SocialRepository) TopPosts(ctx context.Context, limit int) ([]model.SocialPost, error) {
	return r.posts(ctx, socialPostSelect+" ORDER BY impressions DESC LIMIT ?", limit)
}

func (r *SocialRepository) posts(ctx context.Context, query string, args ...any) ([]model.SocialPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to list social posts.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SocialPost, 0)
	for rows.Next() {
		var p model.SocialPost
		var content, url sql.NullString
		if err = rows.Scan(&p.ID, &p.ProfileID, &p.Platform, &content, &p.PostType, &p.Likes, &p.Comments,
			&p.Shares, &p.Impressions, &p.Reach, &p.PublishedAt, &url); err != nil {
			return nil, err
		}
		p.Content = stringPtr(content)
		p.Url = stringPtr(url)
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *SocialRepository) Metrics(ctx context.Context, profileID string, since time.Time) ([]model.SocialMetric, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, profile_id, date, followers, followers_change, impressions, engagements, reach
		FROM social_metric WHERE profile_id = ? AND date >= ? ORDER BY date ASC`, profileID, since)
	if err != nil {
		r.log.Debug("failed to load social metrics.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SocialMetric, 0)
	for rows.Next() {
		var m model.SocialMetric
		if err = rows.Scan(&m.ID, &m.ProfileID, &m.Date, &m.Followers, &m.FollowersChange, &m.Impressions,
			&m.Engagements, &m.Reach); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *SocialRepository) MetricTotals(ctx context.Context, since time.Time) (model.SocialMetricTotals, error) {
	var t model.SocialMetricTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(impressions), 0), COALESCE(SUM(engagements), 0), COALESCE(SUM(followers_change), 0)
		FROM social_metric WHERE date >= ?`, since).
		Scan(&t.Impressions, &t.Engagements, &t.FollowersChange)
	if err != nil {
		r.log.Debug("failed to sum social metrics.", slog.String("err", err.Error()))
	}

	return t, err
}
