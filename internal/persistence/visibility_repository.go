package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/IliaW/rank-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name VisibilityStorage
type VisibilityStorage interface {
	Mentions(ctx context.Context, filter model.AIMentionFilter) ([]model.AIMention, error)
	MentionTotals(ctx context.Context, brand string) (model.MentionTotals, error)
	MentionChecks(ctx context.Context, brand string, since time.Time) ([]model.MentionCheck, error)
	PrCampaigns(ctx context.Context, filter model.PrCampaignFilter) ([]model.PrCampaign, error)
	PrTotals(ctx context.Context) (model.PrTotals, error)
}

type VisibilityRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewVisibilityRepository(db *sql.DB, log *slog.Logger) *VisibilityRepository {
	return &VisibilityRepository{
		db:  db,
		log: log,
	}
}

func brandConditions(brand string) conditions {
	var c conditions
	if brand != "" {
		c.add("brand LIKE ?", containsPattern(brand))
	}
	return c
}

// Mentions lists the newest mention checks matching the filter.
func (r *VisibilityRepository) Mentions(ctx context.Context, filter model.AIMentionFilter) ([]model.AIMention, error) {
	c := brandConditions(filter.Brand)
	c.addIf("ai_platform", filter.AIPlatform)
	if filter.Mentioned != nil {
		c.add("mentioned = ?", *filter.Mentioned)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, brand, ai_platform, query, mentioned, position, sentiment, context, competitors, checked_at
		FROM ai_mention`+c.where()+` ORDER BY checked_at DESC LIMIT ?`, append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list ai mentions.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AIMention, 0)
	for rows.Next() {
		m := model.AIMention{Competitors: []string{}}
		var position sql.NullInt64
		var mentionContext, competitors sql.NullString
		if err = rows.Scan(&m.ID, &m.Brand, &m.AIPlatform, &m.Query, &m.Mentioned, &position, &m.Sentiment,
			&mentionContext, &competitors, &m.CheckedAt); err != nil {
			return nil, err
		}
		m.Position = intPtr(position)
		m.Context = stringPtr(mentionContext)
		if err = decodeJSON(competitors, &m.Competitors); err != nil {
			return nil, fmt.Errorf("ai mention '%s' competitors: %w", m.ID, err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// MentionTotals counts the checks of brands containing brand. An empty brand counts every check.
func (r *VisibilityRepository) MentionTotals(ctx context.Context, brand string) (model.MentionTotals, error) {
	t := model.MentionTotals{Sentiments: []model.SentimentCount{}, Platforms: []model.PlatformMentions{}}
	c := brandConditions(brand)

	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(mentioned), 0),
		AVG(CASE WHEN mentioned AND position IS NOT NULL THEN position END)
		FROM ai_mention`+c.where(), c.args...).Scan(&t.Queries, &t.Mentioned, &avg)
	if err != nil {
		r.log.Debug("failed to count ai mentions.", slog.String("err", err.Error()))
		return t, err
	}
	t.AvgPosition = floatPtr(avg)

	mentioned := brandConditions(brand)
	mentioned.add("mentioned = TRUE")
	sentiments, err := r.db.QueryContext(ctx,
		`SELECT sentiment, COUNT(*) FROM ai_mention`+mentioned.where()+` GROUP BY sentiment ORDER BY sentiment`,
		mentioned.args...)
	if err != nil {
		r.log.Debug("failed to group ai mentions by sentiment.", slog.String("err", err.Error()))
		return t, err
	}
	defer sentiments.Close()
	for sentiments.Next() {
		var s model.SentimentCount
		if err = sentiments.Scan(&s.Sentiment, &s.Count); err != nil {
			return t, err
		}
		t.Sentiments = append(t.Sentiments, s)
	}
	if err = sentiments.Err(); err != nil {
		return t, err
	}

	platforms, err := r.db.QueryContext(ctx,
		`SELECT ai_platform, COALESCE(SUM(mentioned), 0), COUNT(*) FROM ai_mention`+c.where()+
			` GROUP BY ai_platform ORDER BY ai_platform`, c.args...)
	if err != nil {
		r.log.Debug("failed to group ai mentions by platform.", slog.String("err", err.Error()))
		return t, err
	}
	defer platforms.Close()
	for platforms.Next() {
		var p model.PlatformMentions
		if err = platforms.Scan(&p.Platform, &p.Mentions, &p.Total); err != nil {
			return t, err
		}
		t.Platforms = append(t.Platforms, p)
	}

	return t, platforms.Err()
}

func (r *VisibilityRepository) MentionChecks(ctx context.Context, brand string,
	since time.Time) ([]model.MentionCheck, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT checked_at, mentioned FROM ai_mention WHERE brand LIKE ? AND checked_at >= ? ORDER BY checked_at ASC`,
		containsPattern(brand), since)
	if err != nil {
		r.log.Debug("failed to load mention checks.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.MentionCheck, 0)
	for rows.Next() {
		var m model.MentionCheck
		if err = rows.Scan(&m.CheckedAt, &m.Mentioned); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// PrCampaigns lists the most recently updated AI PR campaigns matching the filter.
func (r *VisibilityRepository) PrCampaigns(ctx context.Context, filter model.PrCampaignFilter) ([]model.PrCampaign, error) {
	c := brandConditions(filter.Brand)
	c.addIf("status", filter.Status)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, brand, status, target_audience, key_messages, media_outlets, pitch_template, sent_count,
		open_count, reply_count, placement_count, created_at, updated_at
		FROM ai_pr_campaign`+c.where()+` ORDER BY updated_at DESC LIMIT ?`, append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list ai pr campaigns.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.PrCampaign, 0)
	for rows.Next() {
		p := model.PrCampaign{TargetAudience: []string{}, KeyMessages: []string{}, MediaOutlets: []string{}}
		var audience, messages, outlets, pitch sql.NullString
		if err = rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Status, &audience, &messages, &outlets, &pitch,
			&p.SentCount, &p.OpenCount, &p.ReplyCount, &p.PlacementCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.PitchTemplate = stringPtr(pitch)
		for _, list := range []struct {
			raw sql.NullString
			dst *[]string
		}{{audience, &p.TargetAudience}, {messages, &p.KeyMessages}, {outlets, &p.MediaOutlets}} {
			if err = decodeJSON(list.raw, list.dst); err != nil {
				return nil, fmt.Errorf("ai pr campaign '%s': %w", p.ID, err)
			}
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *VisibilityRepository) PrTotals(ctx context.Context) (model.PrTotals, error) {
	var t model.PrTotals
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(status = 'active'), 0), COALESCE(SUM(sent_count), 0),
		COALESCE(SUM(open_count), 0), COALESCE(SUM(reply_count), 0), COALESCE(SUM(placement_count), 0)
		FROM ai_pr_campaign`).
		Scan(&t.Campaigns, &t.ActiveCampaigns, &t.Sent, &t.Opened, &t.Replied, &t.Placements)
	if err != nil {
		r.log.Debug("failed to sum ai pr campaigns.", slog.String("err", err.Error()))
	}

	return t, err
}
