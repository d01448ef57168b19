// Package gap compares the keyword rankings and referring domains of a primary domain against its competitors.
package gap

import (
	"cmp"
	"slices"
	"strings"

	"github.com/IliaW/rank-api/internal/model"
)

// ClassifyKeywords groups the organic ranks by keyword and classifies every keyword by the primary
// domain's position against the best competitor position. domainNames maps domain id to domain name and is
// matched case-insensitively against the query, rows of unknown domains are ignored. Counts cover all keywords, the returned list holds at most limit.
func ClassifyKeywords(q model.GapQuery, domainNames map[string]string, rows []model.OrganicRankRow,
	limit int) *model.KeywordGapSummary {
	domains := q.Domains()
	names := requestedNames(domains, domainNames)
	byKeyword := make(map[string]*model.KeywordGapResult)
	var order []*model.KeywordGapResult

	for _, row := range rows {
		name, ok := names[row.DomainID]
		if !ok {
			continue
		}
		res, ok := byKeyword[row.KeywordID]
		if !ok {
			res = &model.KeywordGapResult{
				Keyword:    row.Keyword,
				KeywordID:  row.KeywordID,
				Volume:     row.Volume,
				Difficulty: row.Difficulty,
				Intent:     row.Intent,
				Positions:  make(map[string]*int, len(domains)),
			}
			for _, d := range domains {
				res.Positions[d] = nil
			}
			byKeyword[row.KeywordID] = res
			order = append(order, res)
		}
		pos := row.Position
		res.Positions[name] = &pos
	}

	summary := &model.KeywordGapSummary{
		PrimaryDomain: q.Primary,
		Competitors:   q.Competitors,
		Keywords:      make([]model.KeywordGapResult, 0, len(order)),
	}
	for _, res := range order {
		res.Type = keywordType(res.Positions[q.Primary], bestPosition(res.Positions, q.Competitors))
		switch res.Type {
		case model.KeywordMissing:
			summary.MissingCount++
		case model.KeywordUntapped:
			summary.UntappedCount++
		case model.KeywordStrong:
			summary.StrongCount++
		case model.KeywordWeak:
			summary.WeakCount++
		default:
			summary.SharedCount++
		}
		summary.Keywords = append(summary.Keywords, *res)
	}

	slices.SortStableFunc(summary.Keywords, func(a, b model.KeywordGapResult) int {
		if c := cmp.Compare(b.Volume, a.Volume); c != 0 {
			return c
		}
		return cmp.Compare(a.Keyword, b.Keyword)
	})
	summary.TotalKeywords = len(summary.Keywords)
	summary.Keywords = truncate(summary.Keywords, limit)

	return summary
}

// bestPosition returns the lowest position among the competitors, nil when none of them ranks.
func bestPosition(positions map[string]*int, competitors []string) *int {
	var best *int
	for _, c := range competitors {
		p := positions[c]
		if p != nil && (best == nil || *p < *best) {
			best = p
		}
	}

	return best
}

func keywordType(primary, bestCompetitor *int) model.KeywordGapType {
	switch {
	case primary == nil && bestCompetitor != nil:
		return model.KeywordMissing
	case primary != nil && bestCompetitor == nil:
		return model.KeywordUntapped
	case primary != nil && *primary < *bestCompetitor:
		return model.KeywordStrong
	case primary != nil && *primary > *bestCompetitor:
		return model.KeywordWeak
	default:
		return model.KeywordShared
	}
}

// ClassifyBacklinks groups live backlinks by source domain, keeping the highest authority score seen,
// and classifies each source by whether it links to the primary domain, the competitors or both.
func ClassifyBacklinks(q model.GapQuery, domainNames map[string]string, rows []model.BacklinkRow,
	limit int) *model.BacklinkGapSummary {
	domains := q.Domains()
	names := requestedNames(domains, domainNames)
	bySource := make(map[string]*model.BacklinkGapResult)
	var order []*model.BacklinkGapResult

	for _, row := range rows {
		target, ok := names[row.TargetDomainID]
		if !ok {
			continue
		}
		res, ok := bySource[row.SourceDomain]
		if !ok {
			res = &model.BacklinkGapResult{
				SourceDomain:         row.SourceDomain,
				SourceAuthorityScore: row.AuthorityScore,
				LinksTo:              make(map[string]bool, len(domains)),
			}
			for _, d := range domains {
				res.LinksTo[d] = false
			}
			bySource[row.SourceDomain] = res
			order = append(order, res)
		}
		res.LinksTo[target] = true
		res.SourceAuthorityScore = max(res.SourceAuthorityScore, row.AuthorityScore)
	}

	summary := &model.BacklinkGapSummary{
		PrimaryDomain:    q.Primary,
		Competitors:      q.Competitors,
		ReferringDomains: make([]model.BacklinkGapResult, 0, len(order)),
	}
	for _, res := range order {
		toPrimary := res.LinksTo[q.Primary]
		toCompetitors := slices.ContainsFunc(q.Competitors, func(c string) bool { return res.LinksTo[c] })
		switch {
		case toPrimary && toCompetitors:
			res.Type = model.BacklinkShared
			summary.SharedCount++
		case toPrimary:
			res.Type = model.BacklinkExclusive
			summary.ExclusiveCount++
		case toCompetitors:
			res.Type = model.BacklinkOpportunity
			summary.OpportunityCount++
		default:
			continue
		}
		summary.ReferringDomains = append(summary.ReferringDomains, *res)
	}

	slices.SortStableFunc(summary.ReferringDomains, func(a, b model.BacklinkGapResult) int {
		if c := cmp.Compare(b.SourceAuthorityScore, a.SourceAuthorityScore); c != 0 {
			return c
		}
		return cmp.Compare(a.SourceDomain, b.SourceDomain)
	})
	summary.TotalReferringDomains = len(summary.ReferringDomains)
	summary.ReferringDomains = truncate(summary.ReferringDomains, limit)

	return summary
}

// requestedNames maps domain ids to the requested spelling of their names, dropping ids of domains
// that were not requested.
func requestedNames(domains []string, domainNames map[string]string) map[string]string {
	requested := make(map[string]string, len(domains))
	for _, d := range domains {
		requested[strings.ToLower(d)] = d
	}
	out := make(map[string]string, len(domainNames))
	for id, name := range domainNames {
		if d, ok := requested[strings.ToLower(name)]; ok {
			out[id] = d
		}
	}
	return out
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
