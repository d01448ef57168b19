package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IliaW/rank-api/internal/model"
)

const keywordSelect = "SELECT id, keyword, country, volume, cpc, difficulty, intent, trend FROM keyword"

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name KeywordStorage
type KeywordStorage interface {
	Overview(ctx context.Context, keyword, country string) (*model.KeywordOverview, error)
	Rankings(ctx context.Context, keywordID string, limit int) ([]model.KeywordRanking, error)
	Search(ctx context.Context, query, country string, limit int) ([]model.KeywordOverview, error)
	Top(ctx context.Context, limit int) ([]model.KeywordOverview, error)
	Groups(ctx context.Context, parentID string) ([]model.KeywordGroup, error)
	ByGroup(ctx context.Context, groupID string, limit int) ([]model.KeywordOverview, error)
}

type KeywordRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewKeywordRepository(db *sql.DB, log *slog.Logger) *KeywordRepository {
	return &KeywordRepository{
		db:  db,
		log: log,
	}
}

func (r *KeywordRepository) Overview(ctx context.Context, keyword, country string) (*model.KeywordOverview, error) {
	row := r.db.QueryRowContext(ctx, keywordSelect+" WHERE keyword = ? AND country = ? LIMIT 1", keyword, country)
	k, err := scanKeyword(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("keyword '%s' (%s): %w", keyword, country, ErrNotFound)
		}
		r.log.Debug("failed to get keyword from database.", slog.String("err", err.Error()))
		return nil, err
	}

	return k, nil
}

func (r *KeywordRepository) Rankings(ctx context.Context, keywordID string, limit int) ([]model.KeywordRanking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.domain, o.position, o.url, o.traffic_percent, d.authority_score
		FROM organic_rank o JOIN domain d ON d.id = o.domain_id
		WHERE o.keyword_id = ? ORDER BY o.position ASC LIMIT ?`, keywordID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.KeywordRanking, 0)
	for rows.Next() {
		var rank model.KeywordRanking
		var traffic sql.NullFloat64
		if err = rows.Scan(&rank.Domain, &rank.Position, &rank.Url, &traffic, &rank.AuthorityScore); err != nil {
			return nil, err
		}
		rank.TrafficPercent = floatPtr(traffic)
		out = append(out, rank)
	}

	return out, rows.Err()
}

// Search matches keywords containing query, optionally restricted to a country.
func (r *KeywordRepository) Search(ctx context.Context, query, country string, limit int) ([]model.KeywordOverview, error) {
	if country == "" {
		return r.list(ctx, keywordSelect+" WHERE keyword LIKE ? ORDER BY volume DESC LIMIT ?",
			containsPattern(query), limit)
	}
	return r.list(ctx, keywordSelect+" WHERE keyword LIKE ? AND country = ? ORDER BY volume DESC LIMIT ?",
		containsPattern(query), country, limit)
}

func (r *KeywordRepository) Top(ctx context.Context, limit int) ([]model.KeywordOverview, error) {
	return r.list(ctx, keywordSelect+" ORDER BY volume DESC LIMIT ?", limit)
}

// Groups lists the children of parentID, or the root groups when parentID is empty.
func (r *KeywordRepository) Groups(ctx context.Context, parentID string) ([]model.KeywordGroup, error) {
	query := `SELECT g.id, g.name, g.parent_id, COUNT(k.id)
		FROM keyword_group g LEFT JOIN keyword k ON k.group_id = g.id`
	var args []any
	if parentID == "" {
		query += " WHERE g.parent_id IS NULL"
	} else {
		query += " WHERE g.parent_id = ?"
		args = append(args, parentID)
	}
	query += " GROUP BY g.id, g.name, g.parent_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.KeywordGroup, 0)
	for rows.Next() {
		var g model.KeywordGroup
		var parent sql.NullString
		if err = rows.Scan(&g.ID, &g.Name, &parent, &g.KeywordCount); err != nil {
			return nil, err
		}
		g.ParentID = stringPtr(parent)
		out = append(out, g)
	}

	return out, rows.Err()
}

func (r *KeywordRepository) ByGroup(ctx context.Context, groupID string, limit int) ([]model.KeywordOverview, error) {
	return r.list(ctx, keywordSelect+" WHERE group_id = ? ORDER BY volume DESC LIMIT ?", groupID, limit)
}

func (r *KeywordRepository) list(ctx context.Context, query string, args ...any) ([]model.KeywordOverview, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to list keywords.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.KeywordOverview, 0)
	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *k)
	}

	return out, rows.Err()
}

func scanKeyword(s scanner) (*model.KeywordOverview, error) {
	var k model.KeywordOverview
	var trend sql.NullString
	err := s.Scan(&k.ID, &k.Keyword, &k.Country, &k.Volume, &k.Cpc, &k.Difficulty, &k.Intent, &trend)
	if err != nil {
		return nil, err
	}
	k.Trend = stringPtr(trend)

	return &k, nil
}
