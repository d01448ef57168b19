package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IliaW/rank-api/internal/model"
)

const domainOverviewSelect = `SELECT d.id, d.domain, i.name, d.authority_score, d.organic_keywords,
	d.organic_traffic, d.paid_keywords, d.backlinks_total, d.referring_domains
	FROM domain d LEFT JOIN industry i ON i.id = d.industry_id`

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name DomainStorage
type DomainStorage interface {
	Overview(context.Context, string) (*model.DomainOverview, error)
	Rankings(ctx context.Context, domainID string, limit, offset int) ([]model.DomainRanking, error)
	Backlinks(ctx context.Context, domainID string, limit, offset int) ([]model.DomainBacklink, error)
	Search(ctx context.Context, query string, limit int) ([]model.DomainOverview, error)
	Top(ctx context.Context, limit int) ([]model.DomainOverview, error)
}

type DomainRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewDomainRepository(db *sql.DB, log *slog.Logger) *DomainRepository {
	return &DomainRepository{
		db:  db,
		log: log,
	}
}

func (r *DomainRepository) Overview(ctx context.Context, domain string) (*model.DomainOverview, error) {
	row := r.db.QueryRowContext(ctx, domainOverviewSelect+" WHERE d.domain = ?", domain)
	overview, err := scanOverview(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("domain '%s': %w", domain, ErrNotFound)
		}
		r.log.Debug("failed to get domain from database.", slog.String("err", err.Error()))
		return nil, err
	}
	r.log.Debug("domain fetched from db.")

	return overview, nil
}

func (r *DomainRepository) Rankings(ctx context.Context, domainID string, limit, offset int) ([]model.DomainRanking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.id, k.keyword, o.position, o.previous_position, k.volume, o.url, o.traffic_percent, k.difficulty
		FROM organic_rank o JOIN keyword k ON k.id = o.keyword_id
		WHERE o.domain_id = ? ORDER BY o.position ASC LIMIT ? OFFSET ?`, domainID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.DomainRanking, 0)
	for rows.Next() {
		var rank model.DomainRanking
		var previous sql.NullInt64
		var traffic sql.NullFloat64
		if err = rows.Scan(&rank.ID, &rank.Keyword, &rank.Position, &previous, &rank.Volume, &rank.Url,
			&traffic, &rank.Difficulty); err != nil {
			return nil, err
		}
		rank.PreviousPosition = intPtr(previous)
		rank.TrafficPercent = floatPtr(traffic)
		out = append(out, rank)
	}

	return out, rows.Err()
}

func (r *DomainRepository) Backlinks(ctx context.Context, domainID string, limit, offset int) ([]model.DomainBacklink, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_domain, source_url, target_url, anchor, is_dofollow, authority_score, first_seen,
		is_lost, toxicity_score
		FROM backlink WHERE target_domain_id = ? ORDER BY first_seen DESC LIMIT ? OFFSET ?`,
		domainID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.DomainBacklink, 0)
	for rows.Next() {
		var link model.DomainBacklink
		var anchor sql.NullString
		if err = rows.Scan(&link.ID, &link.SourceDomain, &link.SourceUrl, &link.TargetUrl, &anchor,
			&link.IsDofollow, &link.AuthorityScore, &link.FirstSeen, &link.IsLost, &link.ToxicityScore); err != nil {
			return nil, err
		}
		link.Anchor = stringPtr(anchor)
		out = append(out, link)
	}

	return out, rows.Err()
}

func (r *DomainRepository) Search(ctx context.Context, query string, limit int) ([]model.DomainOverview, error) {
	return r.list(ctx, domainOverviewSelect+" WHERE d.domain LIKE ? LIMIT ?", containsPattern(query), limit)
}

func (r *DomainRepository) Top(ctx context.Context, limit int) ([]model.DomainOverview, error) {
	return r.list(ctx, domainOverviewSelect+" ORDER BY d.authority_score DESC LIMIT ?", limit)
}

func (r *DomainRepository) list(ctx context.Context, query string, args ...any) ([]model.DomainOverview, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Debug("failed to list domains.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	out := make([]model.DomainOverview, 0)
	for rows.Next() {
		overview, err := scanOverview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *overview)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOverview(s scanner) (*model.DomainOverview, error) {
	var d model.DomainOverview
	var industry sql.NullString
	err := s.Scan(&d.ID, &d.Domain, &industry, &d.AuthorityScore, &d.OrganicKeywords, &d.OrganicTraffic,
		&d.PaidKeywords, &d.BacklinksTotal, &d.ReferringDomains)
	if err != nil {
		return nil, err
	}
	d.Industry = stringPtr(industry)

	return &d, nil
}
