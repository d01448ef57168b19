package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/IliaW/rank-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name ContentStorage
type ContentStorage interface {
	Topics(ctx context.Context, filter model.TopicFilter) ([]model.TopicIdea, error)
	Pieces(ctx context.Context, filter model.ContentPieceFilter) ([]model.ContentPiece, error)
	Totals(ctx context.Context, needsUpdateStatus string) (model.ContentTotals, error)
}

type ContentRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewContentRepository(db *sql.DB, log *slog.Logger) *ContentRepository {
	return &ContentRepository{
		db:  db,
		log: log,
	}
}

// Topics lists topic ideas by trend score.
func (r *ContentRepository) Topics(ctx context.Context, filter model.TopicFilter) ([]model.TopicIdea, error) {
	var c conditions
	c.addIf("content_type", filter.ContentType)
	c.add("volume >= ?", filter.MinVolume)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, topic, keyword, volume, difficulty, trend_score, questions, related_topics, content_type
		FROM topic_idea`+c.where()+` ORDER BY trend_score DESC LIMIT ?`, append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list topic ideas.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.TopicIdea, 0)
	for rows.Next() {
		t := model.TopicIdea{Questions: []string{}, RelatedTopics: []string{}}
		var questions, related sql.NullString
		if err = rows.Scan(&t.ID, &t.Topic, &t.Keyword, &t.Volume, &t.Difficulty, &t.TrendScore, &questions,
			&related, &t.ContentType); err != nil {
			return nil, err
		}
		if err = decodeJSON(questions, &t.Questions); err != nil {
			return nil, fmt.Errorf("topic idea '%s' questions: %w", t.ID, err)
		}
		if err = decodeJSON(related, &t.RelatedTopics); err != nil {
			return nil, fmt.Errorf("topic idea '%s' related topics: %w", t.ID, err)
		}
		out = append(out, t)
	}

	return out, rows.Err()
}

// Pieces lists content pieces matching the filter, lowest SEO score first.
func (r *ContentRepository) Pieces(ctx context.Context, filter model.ContentPieceFilter) ([]model.ContentPiece, error) {
	var c conditions
	c.addIf("status", filter.Status)
	if filter.MinSeoScore != nil {
		c.add("seo_score >= ?", *filter.MinSeoScore)
	}
	if filter.MaxSeoScore != nil {
		c.add("seo_score <= ?", *filter.MaxSeoScore)
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, url, title, word_count, reading_time, seo_score, readability, target_keyword, last_updated,
		status, issues FROM content_piece`+c.where()+` ORDER BY seo_score ASC LIMIT ?`,
		append(c.args, filter.Limit)...)
	if err != nil {
		r.log.Debug("failed to list content pieces.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ContentPiece, 0)
	for rows.Next() {
		p := model.ContentPiece{Issues: []string{}}
		var target, issues sql.NullString
		if err = rows.Scan(&p.ID, &p.Url, &p.Title, &p.WordCount, &p.ReadingTime, &p.SeoScore, &p.Readability,
			&target, &p.LastUpdated, &p.Status, &issues); err != nil {
			return nil, err
		}
		p.TargetKeyword = stringPtr(target)
		if err = decodeJSON(issues, &p.Issues); err != nil {
			return nil, fmt.Errorf("content piece '%s' issues: %w", p.ID, err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *ContentRepository) Totals(ctx context.Context, needsUpdateStatus string) (model.ContentTotals, error) {
	t := model.ContentTotals{ByStatus: []model.StatusCount{}}
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(seo_score), 0), COALESCE(AVG(word_count), 0),
		COALESCE(SUM(status = ?), 0) FROM content_piece`, needsUpdateStatus).
		Scan(&t.Pieces, &t.AvgSeoScore, &t.AvgWordCount, &t.NeedsUpdate)
	if err != nil {
		r.log.Debug("failed to sum content pieces.", slog.String("err", err.Error()))
		return t, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM content_piece GROUP BY status ORDER BY status`)
	if err != nil {
		r.log.Debug("failed to group content pieces.", slog.String("err", err.Error()))
		return t, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.StatusCount
		if err = rows.Scan(&s.Status, &s.Count); err != nil {
			return t, err
		}
		t.ByStatus = append(t.ByStatus, s)
	}

	return t, rows.Err()
}
