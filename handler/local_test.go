package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocalHandler_GetListings(t *testing.T) {
	repo := mocks.NewLocalStorage(t)
	h := NewLocalHandler(repo)
	repo.On("Listings", mock.Anything, model.LocalListingFilter{Platform: "yelp", Limit: defaultListings}).
		Return([]model.LocalListing{{ID: "l1", BusinessName: "Acme Bakery", Categories: []string{},
			Issues: []string{}}}, nil)

	c, w := newContext(t, "/local/listings?platform=yelp")
	h.GetListings(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"business_name":"Acme Bakery"`)
}

func TestLocalHandler_GetLocalStats(t *testing.T) {
	repo := mocks.NewLocalStorage(t)
	h := NewLocalHandler(repo)
	avg := 4.46
	repo.On("Totals", mock.Anything).Return(model.LocalTotals{Listings: 4, VerifiedListings: 3, AvgRating: &avg,
		Reviews: 90, PendingResponses: 6, NapIssues: 1}, nil)

	c, w := newContext(t, "/local/stats")
	h.GetLocalStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_listings":4,"verified_listings":3,"average_rating":4.5,"total_reviews":90,
		"pending_responses":6,"nap_issues":1}`, w.Body.String())
}

func TestLocalHandler_GetReviews_Unresponded(t *testing.T) {
	repo := mocks.NewLocalStorage(t)
	h := NewLocalHandler(repo)
	responded := false
	repo.On("Reviews", mock.Anything, model.ReviewFilter{Sentiment: "negative", Responded: &responded,
		Limit: defaultReviews}).Return([]model.Review{}, nil)

	c, w := newContext(t, "/local/reviews?sentiment=negative&responded=false")
	h.GetReviews(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLocalHandler_GetReviewStats(t *testing.T) {
	repo := mocks.NewLocalStorage(t)
	h := NewLocalHandler(repo)
	repo.On("ReviewCounts", mock.Anything).Return(
		[]model.RatingCount{{Rating: 5, Count: 3}, {Rating: 2, Count: 1}},
		[]model.SentimentCount{{Sentiment: "negative", Count: 1}, {Sentiment: "positive", Count: 3}},
		nil)

	c, w := newContext(t, "/local/reviews/stats")
	h.GetReviewStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":4,
		"by_rating":[{"rating":5,"count":3},{"rating":2,"count":1}],
		"by_sentiment":[{"sentiment":"negative","count":1,"share":25},{"sentiment":"positive","count":3,"share":75}]
	}`, w.Body.String())
}

func TestLocalHandler_GetLocationRanks_Failure(t *testing.T) {
	repo := mocks.NewLocalStorage(t)
	h := NewLocalHandler(repo)
	repo.On("LocationRanks", mock.Anything).Return(nil, errors.New("db down"))

	c, w := newContext(t, "/local/map-rankings/locations")
	h.GetLocationRanks(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
