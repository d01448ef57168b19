package handler

import (
	"net/http"

	"github.com/IliaW/rank-api/internal/local"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-gonic/gin"
)

const (
	defaultListings    = 100
	defaultReviews     = 100
	defaultMapRankings = 50
)

type LocalHandler struct {
	localRepo persistence.LocalStorage
}

func NewLocalHandler(localRepo persistence.LocalStorage) *LocalHandler {
	return &LocalHandler{
		localRepo: localRepo,
	}
}

// GetListings godoc
// @Summary Most recently synced business listings
// @Tags Local
// @Produce json
// @Param platform query string false "Listing platform filter"
// @Param status query string false "Sync status filter"
// @Param limit query int false "Maximum number of listings" default(100)
// @Success 200 {array} model.LocalListing
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /local/listings [get]
func (h *LocalHandler) GetListings(c *gin.Context) {
	limit, err := queryLimit(c, defaultListings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	listings, err := h.localRepo.Listings(c.Request.Context(), model.LocalListingFilter{
		Platform: c.Query("platform"),
		Status:   c.Query("status"),
		Limit:    limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch local listings")
		return
	}

	c.JSON(http.StatusOK, listings)
}

// GetLocalStats godoc
// @Summary Totals over every business listing and its reviews
// @Tags Local
// @Produce json
// @Success 200 {object} model.LocalStats
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /local/stats [get]
func (h *LocalHandler) GetLocalStats(c *gin.Context) {
	totals, err := h.localRepo.Totals(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch local stats")
		return
	}

	c.JSON(http.StatusOK, local.Stats(totals))
}

// GetReviews godoc
// @Summary Newest reviews of the business listings
// @Tags Local
// @Produce json
// @Param platform query string false "Review platform filter"
// @Param sentiment query string false "Sentiment filter"
// @Param responded query bool false "Keep only answered (true) or unanswered (false) reviews"
// @Param limit query int false "Maximum number of reviews" default(100)
// @Success 200 {array} model.Review
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /local/reviews [get]
func (h *LocalHandler) GetReviews(c *gin.Context) {
	limit, err := queryLimit(c, defaultReviews)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	responded, err := queryOptionalBool(c, "responded")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reviews, err := h.localRepo.Reviews(c.Request.Context(), model.ReviewFilter{
		Platform:  c.Query("platform"),
		Sentiment: c.Query("sentiment"),
		Responded: responded,
		Limit:     limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GetReviewStats godoc
// @Summary Review counts by rating and by sentiment
// @Tags Local
// @Produce json
// @Success 200 {object} model.ReviewStats
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /local/reviews/stats [get]
func (h *LocalHandler) GetReviewStats(c *gin.Context) {
	ratings, sentiments, err := h.localRepo.ReviewCounts(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch review stats")
		return
	}

	c.JSON(http.StatusOK, local.ReviewStats(ratings, sentiments))
}

// GetMapRankings godoc
// @Summary Newest local map rankings
// @Tags Local
// @Produce json
// @Param keyword query string false "Part of the keyword"
// @Param location query string false "Location filter"
// @Param limit query int false "Maximum number of rankings" default(50)
// @Success 200 {array} model.MapRanking
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /local/map-rankings [get]
func (h *LocalHandler) GetMapRankings(c *gin.Context) {
	limit, err := queryLimit(c, defaultMapRankings)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rankings, err := h.localRepo.MapRankings(c.Request.Context(), model.MapRankingFilter{
		Keyword:  c.Query("keyword"),
		Location: c.Query("location"),
		Limit:    limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch map rankings")
		return
	}

	c.JSON(http.StatusOK, rankings)
}

// GetLocationRanks godoc
// @Summary Average map rank per location
// @Tags Local
// @Produce json
// @Success 200 {array} model.LocationRank
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /local/map-rankings/locations [get]
func (h *LocalHandler) GetLocationRanks(c *gin.Context) {
	ranks, err := h.localRepo.LocationRanks(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch location ranks")
		return
	}

	c.JSON(http.StatusOK, local.LocationRanks(ranks))
}
