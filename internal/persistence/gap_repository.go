package persistence

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/IliaW/rank-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name GapStorage
type GapStorage interface {
	DomainIDs(context.Context, []string) (map[string]string, error)
	OrganicRanks(context.Context, []string) ([]model.OrganicRankRow, error)
	LiveBacklinks(context.Context, []string) ([]model.BacklinkRow, error)
	SearchDomainNames(context.Context, string, int) ([]string, error)
}

type GapRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewGapRepository(db *sql.DB, log *slog.Logger) *GapRepository {
	return &GapRepository{
		db:  db,
		log: log,
	}
}

// DomainIDs maps the ids of the known domains among names to their lowercased names.
func (r *GapRepository) DomainIDs(ctx context.Context, names []string) (map[string]string, error) {
	out := make(map[string]string, len(names))
	if len(names) == 0 {
		return out, nil
	}
	in, args := inClause(names)
	rows, err := r.db.QueryContext(ctx, "SELECT id, domain FROM domain WHERE domain IN ("+in+")", args...)
	if err != nil {
		r.log.Debug("failed to resolve domains.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = strings.ToLower(name)
	}

	return out, rows.Err()
}

func (r *GapRepository) OrganicRanks(ctx context.Context, domainIDs []string) ([]model.OrganicRankRow, error) {
	if len(domainIDs) == 0 {
		return nil, nil
	}
	in, args := inClause(domainIDs)
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.domain_id, o.keyword_id, k.keyword, k.volume, k.difficulty, k.intent, o.position
		FROM organic_rank o JOIN keyword k ON k.id = o.keyword_id
		WHERE o.domain_id IN (`+in+`)`, args...)
	if err != nil {
		r.log.Debug("failed to load organic ranks.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	var out []model.OrganicRankRow
	for rows.Next() {
		var row model.OrganicRankRow
		if err = rows.Scan(&row.DomainID, &row.KeywordID, &row.Keyword, &row.Volume, &row.Difficulty,
			&row.Intent, &row.Position); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	r.log.Debug("organic ranks fetched from db.", slog.Int("count", len(out)))

	return out, rows.Err()
}

func (r *GapRepository) LiveBacklinks(ctx context.Context, domainIDs []string) ([]model.BacklinkRow, error) {
	if len(domainIDs) == 0 {
		return nil, nil
	}
	in, args := inClause(domainIDs)
	rows, err := r.db.QueryContext(ctx,
		`SELECT source_domain, target_domain_id, authority_score FROM backlink
		WHERE target_domain_id IN (`+in+`) AND is_lost = FALSE`, args...)
	if err != nil {
		r.log.Debug("failed to load backlinks.", slog.String("err", err.Error()))
		return nil, err
	}
	defer rows.Close()

	var out []model.BacklinkRow
	for rows.Next() {
		var row model.BacklinkRow
		if err = rows.Scan(&row.SourceDomain, &row.TargetDomainID, &row.AuthorityScore); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	r.log.Debug("backlinks fetched from db.", slog.Int("count", len(out)))

	return out, rows.Err()
}

func (r *GapRepository) SearchDomainNames(ctx context.Context, query string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT domain FROM domain WHERE domain LIKE ? ORDER BY authority_score DESC LIMIT ?",
		containsPattern(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, limit)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}

	return out, rows.Err()
}
