package model

type KeywordOverview struct {
	ID         string  `json:"id"`
	Keyword    string  `json:"keyword"`
	Country    string  `json:"country"`
	Volume     int     `json:"volume"`
	Cpc        float64 `json:"cpc"`
	Difficulty int     `json:"difficulty"`
	Intent     string  `json:"intent"`
	Trend      *string `json:"trend"`
}

type KeywordRanking struct {
	Domain         string   `json:"domain"`
	Position       int      `json:"position"`
	Url            string   `json:"url"`
	TrafficPercent *float64 `json:"traffic_percent"`
	AuthorityScore int      `json:"authority_score"`
}

type KeywordGroup struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	KeywordCount int     `json:"keyword_count"`
	ParentID     *string `json:"parent_id"`
}

// KeywordDetail godoc
// @Description Keyword metrics with the domains ranking for it
// @Type KeywordDetail
type KeywordDetail struct {
	*KeywordOverview
	Rankings []KeywordRanking `json:"rankings"`
}
