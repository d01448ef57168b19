package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/IliaW/rank-api/internal/visibility"
	"github.com/IliaW/rank-api/util"
	"github.com/gin-gonic/gin"
)

const (
	defaultMentions    = 100
	defaultPrCampaigns = 50
)

type VisibilityHandler struct {
	visibilityRepo persistence.VisibilityStorage
	now            func() time.Time
}

func NewVisibilityHandler(visibilityRepo persistence.VisibilityStorage) *VisibilityHandler {
	return &VisibilityHandler{
		visibilityRepo: visibilityRepo,
		now:            time.Now,
	}
}

// GetMentions godoc
// @Summary Newest AI assistant mention checks
// @Tags AI Visibility
// @Produce json
// @Param brand query string false "Part of the brand name"
// @Param platform query string false "AI platform filter"
// @Param mentioned query bool false "Keep only checks with (true) or without (false) a mention"
// @Param limit query int false "Maximum number of checks" default(100)
// @Success 200 {array} model.AIMention
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /ai/mentions [get]
func (h *VisibilityHandler) GetMentions(c *gin.Context) {
	limit, err := queryLimit(c, defaultMentions)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mentioned, err := queryOptionalBool(c, "mentioned")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	mentions, err := h.visibilityRepo.Mentions(c.Request.Context(), model.AIMentionFilter{
		Brand:      strings.TrimSpace(c.Query("brand")),
		AIPlatform: c.Query("platform"),
		Mentioned:  mentioned,
		Limit:      limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch ai mentions")
		return
	}

	c.JSON(http.StatusOK, mentions)
}

// GetVisibilityStats godoc
// @Summary Mention rate, average position and breakdowns of a brand in AI answers
// @Tags AI Visibility
// @Produce json
// @Param brand query string false "Part of the brand name, every brand when empty"
// @Success 200 {object} model.AIVisibilityStats
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /ai/visibility [get]
func (h *VisibilityHandler) GetVisibilityStats(c *gin.Context) {
	totals, err := h.visibilityRepo.MentionTotals(c.Request.Context(), strings.TrimSpace(c.Query("brand")))
	if err != nil {
		abortWithError(c, err, "failed to fetch ai visibility")
		return
	}

	c.JSON(http.StatusOK, visibility.Stats(totals))
}

// GetMentionTrend godoc
// @Summary Daily mentioned and not mentioned checks of a brand
// @Tags AI Visibility
// @Produce json
// @Param brand query string true "Part of the brand name"
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {array} model.MentionTrendPoint
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /ai/mentions/trend [get]
func (h *VisibilityHandler) GetMentionTrend(c *gin.Context) {
	brand := strings.TrimSpace(c.Query("brand"))
	if brand == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'brand' query parameter is required"})
		return
	}
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	checks, err := h.visibilityRepo.MentionChecks(c.Request.Context(), brand, util.Since(h.now(), days))
	if err != nil {
		abortWithError(c, err, "failed to fetch mention trend")
		return
	}

	c.JSON(http.StatusOK, visibility.Trend(checks))
}

// GetPrCampaigns godoc
// @Summary Most recently updated AI PR campaigns
// @Tags AI Visibility
// @Produce json
// @Param brand query string false "Part of the brand name"
// @Param status query string false "Campaign status filter"
// @Param limit query int false "Maximum number of campaigns" default(50)
// @Success 200 {array} model.PrCampaign
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /ai/pr/campaigns [get]
func (h *VisibilityHandler) GetPrCampaigns(c *gin.Context) {
	limit, err := queryLimit(c, defaultPrCampaigns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaigns, err := h.visibilityRepo.PrCampaigns(c.Request.Context(), model.PrCampaignFilter{
		Brand:  strings.TrimSpace(c.Query("brand")),
		Status: c.Query("status"),
		Limit:  limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch pr campaigns")
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// GetPrStats godoc
// @Summary Outreach totals and rates over every AI PR campaign
// @Tags AI Visibility
// @Produce json
// @Success 200 {object} model.PrStats
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /ai/pr/stats [get]
func (h *VisibilityHandler) GetPrStats(c *gin.Context) {
	totals, err := h.visibilityRepo.PrTotals(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch pr stats")
		return
	}

	c.JSON(http.StatusOK, visibility.PrStats(totals))
}
