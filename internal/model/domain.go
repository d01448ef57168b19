package model

import "time"

// DomainOverview godoc
// @Description Headline SEO metrics of a domain
// @Type DomainOverview
type DomainOverview struct {
	ID               string  `json:"id"`
	Domain           string  `json:"domain"`
	Industry         *string `json:"industry"`
	AuthorityScore   int     `json:"authority_score"`
	OrganicKeywords  int     `json:"organic_keywords"`
	OrganicTraffic   int     `json:"organic_traffic"`
	PaidKeywords     int     `json:"paid_keywords"`
	BacklinksTotal   int     `json:"backlinks_total"`
	ReferringDomains int     `json:"referring_domains"`
}

type DomainRanking struct {
	ID               string   `json:"id"`
	Keyword          string   `json:"keyword"`
	Position         int      `json:"position"`
	PreviousPosition *int     `json:"previous_position"`
	Volume           int      `json:"volume"`
	Url              string   `json:"url"`
	TrafficPercent   *float64 `json:"traffic_percent"`
	Difficulty       int      `json:"difficulty"`
}

type DomainBacklink struct {
	ID             string    `json:"id"`
	SourceDomain   string    `json:"source_domain"`
	SourceUrl      string    `json:"source_url"`
	TargetUrl      string    `json:"target_url"`
	Anchor         *string   `json:"anchor"`
	IsDofollow     bool      `json:"is_dofollow"`
	AuthorityScore int       `json:"authority_score"`
	FirstSeen      time.Time `json:"first_seen"`
	IsLost         bool      `json:"is_lost"`
	ToxicityScore  int       `json:"toxicity_score"`
}

// DomainDetail godoc
// @Description Domain overview with the optionally included rankings and backlinks
// @Type DomainDetail
type DomainDetail struct {
	*DomainOverview
	Rankings  []DomainRanking  `json:"rankings,omitempty"`
	Backlinks []DomainBacklink `json:"backlinks,omitempty"`
}
