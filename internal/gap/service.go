package gap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/IliaW/rank-api/config"
	cacheClient "github.com/IliaW/rank-api/internal/cache"
	"github.com/IliaW/rank-api/internal/metrics"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
)

// ErrDomainsNotFound is returned when none of the compared domains is known.
var ErrDomainsNotFound = errors.New("none of the requested domains were found")

const defaultSearchLimit = 10

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name Analyzer
type Analyzer interface {
	KeywordGap(context.Context, model.GapQuery) (*model.KeywordGapSummary, error)
	BacklinkGap(context.Context, model.GapQuery) (*model.BacklinkGapSummary, error)
	SearchDomains(context.Context, string, int) ([]string, error)
	MaxCompetitors() int
}

type Service struct {
	repo  persistence.GapStorage
	cache cacheClient.CachedClient
	cfg   *config.GapConfig
	log   *slog.Logger
}

func NewService(repo persistence.GapStorage, cache cacheClient.CachedClient, cfg *config.GapConfig,
	log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		log:   log,
	}
}

func (s *Service) MaxCompetitors() int {
	return s.cfg.MaxCompetitors
}

func (s *Service) KeywordGap(ctx context.Context, q model.GapQuery) (*model.KeywordGapSummary, error) {
	if summary, ok := s.cache.GetKeywordGap(q); ok {
		summary.PrimaryDomain, summary.Competitors = q.Primary, slices.Clone(q.Competitors)
		return summary, nil
	}
	started := time.Now()

	domainNames, err := s.resolveDomains(ctx, q)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.OrganicRanks(ctx, slices.Collect(maps.Keys(domainNames)))
	if err != nil {
		return nil, fmt.Errorf("failed to load organic ranks: %w", err)
	}
	summary := ClassifyKeywords(q, domainNames, rows, s.cfg.ResultLimit)
	metrics.RecordGap(ctx, metrics.KindKeyword, started, summary.TotalKeywords)
	s.log.Debug("keyword gap computed.", slog.String("primary", q.Primary),
		slog.String("competitors", strings.Join(q.Competitors, ",")),
		slog.Int("keywords", summary.TotalKeywords))

	s.cache.SaveKeywordGap(q, summary)

	return summary, nil
}

func (s *Service) BacklinkGap(ctx context.Context, q model.GapQuery) (*model.BacklinkGapSummary, error) {
	if summary, ok := s.cache.GetBacklinkGap(q); ok {
		summary.PrimaryDomain, summary.Competitors = q.Primary, slices.Clone(q.Competitors)
		return summary, nil
	}
	started := time.Now()

	domainNames, err := s.resolveDomains(ctx, q)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.LiveBacklinks(ctx, slices.Collect(maps.Keys(domainNames)))
	if err != nil {
		return nil, fmt.Errorf("failed to load backlinks: %w", err)
	}
	summary := ClassifyBacklinks(q, domainNames, rows, s.cfg.ResultLimit)
	metrics.RecordGap(ctx, metrics.KindBacklink, started, summary.TotalReferringDomains)
	s.log.Debug("backlink gap computed.", slog.String("primary", q.Primary),
		slog.String("competitors", strings.Join(q.Competitors, ",")),
		slog.Int("referring_domains", summary.TotalReferringDomains))

	s.cache.SaveBacklinkGap(q, summary)

	return summary, nil
}

// SearchDomains returns domain names containing the query, strongest first.
func (s *Service) SearchDomains(ctx context.Context, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.repo.SearchDomainNames(ctx, strings.ToLower(strings.TrimSpace(query)), limit)
}

func (s *Service) resolveDomains(ctx context.Context, q model.GapQuery) (map[string]string, error) {
	domainNames, err := s.repo.DomainIDs(ctx, q.Domains())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve domains: %w", err)
	}
	if len(domainNames) == 0 {
		return nil, ErrDomainsNotFound
	}

	return domainNames, nil
}
