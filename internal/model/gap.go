package model

import (
	"errors"
	"fmt"
	"slices"

	"github.com/IliaW/rank-api/util"
	"github.com/go-playground/validator/v10"
)

type KeywordGapType string

const (
	KeywordShared   KeywordGapType = "shared"
	KeywordMissing  KeywordGapType = "missing"
	KeywordWeak     KeywordGapType = "weak"
	KeywordStrong   KeywordGapType = "strong"
	KeywordUntapped KeywordGapType = "untapped"
)

type BacklinkGapType string

const (
	BacklinkShared      BacklinkGapType = "shared"
	BacklinkExclusive   BacklinkGapType = "exclusive"
	BacklinkOpportunity BacklinkGapType = "opportunity"
)

var validate = validator.New()

// GapQuery godoc
// @Description A primary domain compared against its competitors
// @Type GapQuery
type GapQuery struct {
	Primary     string   `json:"primary" validate:"required,fqdn"`
	Competitors []string `json:"competitors" validate:"min=1,dive,fqdn"`
}

// NewGapQuery normalizes the domains. Blank and duplicate competitors, and the primary itself, are dropped.
func NewGapQuery(primary string, competitors []string) (GapQuery, error) {
	p, err := util.GetDomain(primary)
	if err != nil {
		return GapQuery{}, fmt.Errorf("invalid primary domain: %w", err)
	}
	q := GapQuery{Primary: p}
	for _, c := range competitors {
		d, err := util.GetDomain(c)
		if err != nil {
			if errors.Is(err, util.ErrEmptyDomain) {
				continue
			}
			return GapQuery{}, fmt.Errorf("invalid competitor domain: %w", err)
		}
		if d == p || slices.Contains(q.Competitors, d) {
			continue
		}
		q.Competitors = append(q.Competitors, d)
	}

	return q, nil
}

// Validate checks the query against the struct rules and the competitor limit.
func (q GapQuery) Validate(maxCompetitors int) error {
	if err := validate.Struct(q); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	if maxCompetitors > 0 && len(q.Competitors) > maxCompetitors {
		return fmt.Errorf("validation failed: at most %d competitors are allowed, got %d",
			maxCompetitors, len(q.Competitors))
	}

	return nil
}

// Domains returns the primary followed by the competitors.
func (q GapQuery) Domains() []string {
	return append([]string{q.Primary}, q.Competitors...)
}

// OrganicRankRow is an organic rank joined with its keyword.
type OrganicRankRow struct {
	DomainID   string
	KeywordID  string
	Keyword    string
	Volume     int
	Difficulty int
	Intent     string
	Position   int
}

// BacklinkRow is a live backlink pointing at one of the compared domains.
type BacklinkRow struct {
	SourceDomain   string
	TargetDomainID string
	AuthorityScore int
}

type KeywordGapResult struct {
	Keyword    string          `json:"keyword"`
	KeywordID  string          `json:"keyword_id"`
	Volume     int             `json:"volume"`
	Difficulty int             `json:"difficulty"`
	Intent     string          `json:"intent"`
	Positions  map[string]*int `json:"positions"`
	Type       KeywordGapType  `json:"type"`
}

// KeywordGapSummary godoc
// @Description Keyword overlap between the primary domain and its competitors
// @Type KeywordGapSummary
type KeywordGapSummary struct {
	PrimaryDomain string             `json:"primary_domain"`
	Competitors   []string           `json:"competitors"`
	TotalKeywords int                `json:"total_keywords"`
	SharedCount   int                `json:"shared_count"`
	MissingCount  int                `json:"missing_count"`
	WeakCount     int                `json:"weak_count"`
	StrongCount   int                `json:"strong_count"`
	UntappedCount int                `json:"untapped_count"`
	Keywords      []KeywordGapResult `json:"keywords"`
}

type BacklinkGapResult struct {
	SourceDomain         string          `json:"source_domain"`
	SourceAuthorityScore int             `json:"source_authority_score"`
	LinksTo              map[string]bool `json:"links_to"`
	Type                 BacklinkGapType `json:"type"`
}

// BacklinkGapSummary godoc
// @Description Referring domain overlap between the primary domain and its competitors
// @Type BacklinkGapSummary
type BacklinkGapSummary struct {
	PrimaryDomain         string              `json:"primary_domain"`
	Competitors           []string            `json:"competitors"`
	TotalReferringDomains int                 `json:"total_referring_domains"`
	SharedCount           int                 `json:"shared_count"`
	ExclusiveCount        int                 `json:"exclusive_count"`
	OpportunityCount      int                 `json:"opportunity_count"`
	ReferringDomains      []BacklinkGapResult `json:"referring_domains"`
}
