package gap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/IliaW/rank-api/config"
	cacheMocks "github.com/IliaW/rank-api/internal/cache/mocks"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *mocks.GapStorage, *cacheMocks.CachedClient) {
	repo := mocks.NewGapStorage(t)
	cache := cacheMocks.NewCachedClient(t)
	cfg := &config.GapConfig{MaxCompetitors: 4, ResultLimit: 500}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewService(repo, cache, cfg, log), repo, cache
}

func TestService_KeywordGap(t *testing.T) {
	s, repo, cache := newService(t)
	ctx := context.Background()

	cache.On("GetKeywordGap", query).Return(nil, false)
	repo.On("DomainIDs", ctx, []string{"me.com", "a.com", "b.com"}).Return(names, nil)
	repo.On("OrganicRanks", ctx, mock.MatchedBy(func(ids []string) bool {
		return assert.ElementsMatch(t, []string{"d-me", "d-a", "d-b"}, ids)
	})).Return([]model.OrganicRankRow{rank("d-a", "k1", 100, 3)}, nil)
	cache.On("SaveKeywordGap", query, mock.AnythingOfType("*model.KeywordGapSummary")).Return()

	summary, err := s.KeywordGap(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalKeywords)
	assert.Equal(t, 1, summary.MissingCount)
}

func TestService_KeywordGap_Cached(t *testing.T) {
	s, _, cache := newService(t)
	cached := &model.KeywordGapSummary{PrimaryDomain: "me.com", TotalKeywords: 42}

	cache.On("GetKeywordGap", query).Return(cached, true)

	summary, err := s.KeywordGap(context.Background(), query)
	require.NoError(t, err)
	assert.Same(t, cached, summary)
}

func TestService_KeywordGap_CachedKeepsRequestOrder(t *testing.T) {
	s, _, cache := newService(t)
	reversed := model.GapQuery{Primary: "me.com", Competitors: []string{"b.com", "a.com"}}
	cached := &model.KeywordGapSummary{PrimaryDomain: "me.com", Competitors: []string{"a.com", "b.com"}}

	cache.On("GetKeywordGap", reversed).Return(cached, true)

	summary, err := s.KeywordGap(context.Background(), reversed)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.com", "a.com"}, summary.Competitors)
}

func TestService_BacklinkGap_CachedKeepsRequestOrder(t *testing.T) {
	s, _, cache := newService(t)
	reversed := model.GapQuery{Primary: "me.com", Competitors: []string{"b.com", "a.com"}}
	cached := &model.BacklinkGapSummary{PrimaryDomain: "me.com", Competitors: []string{"a.com", "b.com"}}

	cache.On("GetBacklinkGap", reversed).Return(cached, true)

	summary, err := s.BacklinkGap(context.Background(), reversed)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.com", "a.com"}, summary.Competitors)
}

func TestService_KeywordGap_NoDomains(t *testing.T) {
	s, repo, cache := newService(t)
	ctx := context.Background()

	cache.On("GetKeywordGap", query).Return(nil, false)
	repo.On("DomainIDs", ctx, query.Domains()).Return(map[string]string{}, nil)

	_, err := s.KeywordGap(ctx, query)
	assert.ErrorIs(t, err, ErrDomainsNotFound)
}

func TestService_BacklinkGap(t *testing.T) {
	s, repo, cache := newService(t)
	ctx := context.Background()

	cache.On("GetBacklinkGap", query).Return(nil, false)
	repo.On("DomainIDs", ctx, query.Domains()).Return(names, nil)
	repo.On("LiveBacklinks", ctx, mock.Anything).Return([]model.BacklinkRow{
		backlink("blog.io", "d-me", 20),
		backlink("blog.io", "d-a", 60),
		backlink("news.io", "d-b", 80),
	}, nil)
	cache.On("SaveBacklinkGap", query, mock.AnythingOfType("*model.BacklinkGapSummary")).Return()

	summary, err := s.BacklinkGap(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalReferringDomains)
	assert.Equal(t, 1, summary.SharedCount)
	assert.Equal(t, 1, summary.OpportunityCount)
}

func TestService_BacklinkGap_RepositoryError(t *testing.T) {
	s, repo, cache := newService(t)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	cache.On("GetBacklinkGap", query).Return(nil, false)
	repo.On("DomainIDs", ctx, query.Domains()).Return(names, nil)
	repo.On("LiveBacklinks", ctx, mock.Anything).Return(nil, dbErr)

	_, err := s.BacklinkGap(ctx, query)
	assert.ErrorIs(t, err, dbErr)
	cache.AssertNotCalled(t, "SaveBacklinkGap", mock.Anything, mock.Anything)
}

func TestService_SearchDomains(t *testing.T) {
	s, repo, _ := newService(t)
	ctx := context.Background()

	repo.On("SearchDomainNames", ctx, "exam", 10).Return([]string{"example.com"}, nil)

	got, err := s.SearchDomains(ctx, "  EXAM ", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com"}, got)
	assert.Equal(t, 4, s.MaxCompetitors())
}
