package persistence

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/IliaW/rank-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name TrackingStorage
type TrackingStorage interface {
	TrackedKeywords(ctx context.Context, projectID string, depth, limit, offset int) ([]model.TrackedKeywordHistory, error)
	KeywordHistory(ctx context.Context, trackedKeywordID string, since time.Time) ([]model.RankHistoryPoint, error)
	ProjectHistory(ctx context.Context, projectID string, since time.Time) ([]model.RankHistoryPoint, error)
}

type TrackingRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewTrackingRepository(db *sql.DB, log *slog.Logger) *TrackingRepository {
	return &TrackingRepository{
		db:  db,
		log: log,
	}
}

// TrackedKeywords returns the tracked keywords of a project, each with its newest depth history points.
// A non-positive limit returns every tracked keyword.
func (r *TrackingRepository) TrackedKeywords(ctx context.Context, projectID string, depth, limit,
	offset int) ([]model.TrackedKeywordHistory, error) {
	query := `SELECT t.id, k.keyword, k.volume FROM tracked_keyword t JOIN keyword k ON k.id = t.keyword_id
		WHERE t.project_id = ? ORDER BY t.id`
	args := []any{projectID}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to load tracked keywords.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	var tracked []model.TrackedKeywordHistory
	index := make(map[string]int)
	for rows.Next() {
		var t model.TrackedKeywordHistory
		if err = rows.Scan(&t.ID, &t.Keyword, &t.Volume); err != nil {
			return nil, err
		}
		index[t.ID] = len(tracked)
		tracked = append(tracked, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(tracked) == 0 || depth <= 0 {
		return tracked, nil
	}

	ids := make([]string, len(tracked))
	for i, t := range tracked {
		ids[i] = t.ID
	}
	in, inArgs := inClause(ids)
	historyRows, err := r.db.QueryContext(ctx,
		`SELECT tracked_keyword_id, date, position, url, visibility, estimated_traffic FROM (
			SELECT tracked_keyword_id, date, position, url, visibility, estimated_traffic,
			ROW_NUMBER() OVER (PARTITION BY tracked_keyword_id ORDER BY date DESC) AS rn
			FROM rank_history WHERE tracked_keyword_id IN (`+in+`)
		) newest WHERE rn <= ? ORDER BY tracked_keyword_id, date DESC`, append(inArgs, depth)...)
	if err != nil {
		r.log.Debug("failed to load rank history.", slog.String("err", err.Error()))
		return nil, err
	}
	defer historyRows.Close()

	for historyRows.Next() {
		var id string
		point, err := scanHistoryPoint(historyRows, &id)
		if err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok || len(tracked[i].History) >= depth {
			continue
		}
		tracked[i].History = append(tracked[i].History, point)
	}

	return tracked, historyRows.Err()
}

func (r *TrackingRepository) KeywordHistory(ctx context.Context, trackedKeywordID string,
	since time.Time) ([]model.RankHistoryPoint, error) {
	return r.history(ctx,
		`SELECT tracked_keyword_id, date, position, url, visibility, estimated_traffic FROM rank_history
		WHERE tracked_keyword_id = ? AND date >= ? ORDER BY date ASC`, trackedKeywordID, since)
}

func (r *TrackingRepository) ProjectHistory(ctx context.Context, projectID string,
	since time.Time) ([]model.RankHistoryPoint, error) {
	return r.history(ctx,
		`SELECT h.tracked_keyword_id, h.date, h.position, h.url, h.visibility, h.estimated_traffic
		FROM rank_history h JOIN tracked_keyword t ON t.id = h.tracked_keyword_id
		WHERE t.project_id = ? AND h.date >= ? ORDER BY h.date ASC`, projectID, since)
}

func (r *TrackingRepository) history(ctx context.Context, query string, args ...any) ([]model.RankHistoryPoint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to load rank history.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.RankHistoryPoint, 0)
	for rows.Next() {
		var id string
		point, err := scanHistoryPoint(rows, &id)
		if err != nil {
			return nil, err
		}
		out = append(out, point)
	}

	return out, rows.Err()
}

func scanHistoryPoint(s scanner, trackedKeywordID *string) (model.RankHistoryPoint, error) {
	var p model.RankHistoryPoint
	var position, traffic sql.NullInt64
	var url sql.NullString
	var visibility sql.NullFloat64
	if err := s.Scan(trackedKeywordID, &p.Date, &position, &url, &visibility, &traffic); err != nil {
		return p, err
	}
	p.Position = intPtr(position)
	p.Url = stringPtr(url)
	p.Visibility = floatPtr(visibility)
	p.EstimatedTraffic = intPtr(traffic)

	return p, nil
}
