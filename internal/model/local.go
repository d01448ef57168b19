package model

import "time"

// Nap is the name, address and phone of a business listing.
type Nap struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type LocalListing struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	Platform     string    `json:"platform"`
	ProfileUrl   *string   `json:"profile_url"`
	Status       string    `json:"status"`
	Nap          *Nap      `json:"nap"`
	Categories   []string  `json:"categories"`
	Rating       *float64  `json:"rating"`
	ReviewCount  int       `json:"review_count"`
	IsVerified   bool      `json:"is_verified"`
	LastSynced   time.Time `json:"last_synced"`
	Issues       []string  `json:"issues"`
}

type LocalListingFilter struct {
	Platform string
	Status   string
	Limit    int
}

type Review struct {
	ID          string     `json:"id"`
	ListingID   string     `json:"listing_id"`
	Platform    string     `json:"platform"`
	AuthorName  string     `json:"author_name"`
	Rating      int        `json:"rating"`
	Content     *string    `json:"content"`
	Sentiment   string     `json:"sentiment"`
	IsResponded bool       `json:"is_responded"`
	Response    *string    `json:"response"`
	PublishedAt time.Time  `json:"published_at"`
	RespondedAt *time.Time `json:"responded_at"`
}

// ReviewFilter narrows reviews. A nil Responded keeps answered and unanswered reviews.
type ReviewFilter struct {
	Platform  string
	Sentiment string
	Responded *bool
	Limit     int
}

type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type ReviewStats struct {
	Total       int              `json:"total"`
	ByRating    []RatingCount    `json:"by_rating"`
	BySentiment []SentimentCount `json:"by_sentiment"`
}

type MapRanking struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	Location  string    `json:"location"`
	GridSize  int       `json:"grid_size"`
	Positions []int     `json:"positions"`
	AvgRank   float64   `json:"avg_rank"`
	TopRank   int       `json:"top_rank"`
	Date      time.Time `json:"date"`
}

// MapRankingFilter narrows map rankings. Keyword matches by substring.
type MapRankingFilter struct {
	Keyword  string
	Location string
	Limit    int
}

type LocationRank struct {
	Location string  `json:"location"`
	AvgRank  float64 `json:"avg_rank"`
	Count    int     `json:"count"`
}

type LocalTotals struct {
	Listings         int
	VerifiedListings int
	AvgRating        *float64
	Reviews          int
	PendingResponses int
	NapIssues        int
}

// LocalStats godoc
// @Description Totals over every local business listing and its reviews
// @Type LocalStats
type LocalStats struct {
	TotalListings    int     `json:"total_listings"`
	VerifiedListings int     `json:"verified_listings"`
	AverageRating    float64 `json:"average_rating"`
	TotalReviews     int     `json:"total_reviews"`
	PendingResponses int     `json:"pending_responses"`
	NapIssues        int     `json:"nap_issues"`
}
