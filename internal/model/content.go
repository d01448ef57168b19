package model

import "time"

type TopicIdea struct {
	ID            string   `json:"id"`
	Topic         string   `json:"topic"`
	Keyword       string   `json:"keyword"`
	Volume        int      `json:"volume"`
	Difficulty    int      `json:"difficulty"`
	TrendScore    float64  `json:"trend_score"`
	Questions     []string `json:"questions"`
	RelatedTopics []string `json:"related_topics"`
	ContentType   string   `json:"content_type"`
}

type TopicFilter struct {
	ContentType string
	MinVolume   int
	Limit       int
}

type ContentPiece struct {
	ID            string    `json:"id"`
	Url           string    `json:"url"`
	Title         string    `json:"title"`
	WordCount     int       `json:"word_count"`
	ReadingTime   int       `json:"reading_time"`
	SeoScore      int       `json:"seo_score"`
	Readability   float64   `json:"readability"`
	TargetKeyword *string   `json:"target_keyword"`
	LastUpdated   time.Time `json:"last_updated"`
	Status        string    `json:"status"`
	Issues        []string  `json:"issues"`
}

// ContentPieceFilter narrows content pieces. Nil score bounds are not applied.
type ContentPieceFilter struct {
	Status      string
	MinSeoScore *int
	MaxSeoScore *int
	Limit       int
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type ContentTotals struct {
	Pieces       int
	AvgSeoScore  float64
	AvgWordCount float64
	NeedsUpdate  int
	ByStatus     []StatusCount
}

// ContentStats godoc
// @Description Content inventory health
// @Type ContentStats
type ContentStats struct {
	TotalPieces      int           `json:"total_pieces"`
	AverageSeoScore  int           `json:"average_seo_score"`
	AverageWordCount int           `json:"average_word_count"`
	NeedsUpdate      int           `json:"needs_update"`
	ByStatus         []StatusCount `json:"by_status"`
}
