package handler

import (
	"net/http"
	"time"

	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/IliaW/rank-api/internal/tracking"
	"github.com/IliaW/rank-api/util"
	"github.com/gin-gonic/gin"
)

const defaultTrackedKeyword = 100

type TrackingHandler struct {
	trackingRepo persistence.TrackingStorage
	now          func() time.Time
}

func NewTrackingHandler(trackingRepo persistence.TrackingStorage) *TrackingHandler {
	return &TrackingHandler{
		trackingRepo: trackingRepo,
		now:          time.Now,
	}
}

// GetProjectSummary godoc
// @Summary Position tracking KPIs of a project
// @Tags Tracking
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.ProjectTrackingSummary
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /projects/{id}/tracking/summary [get]
func (h *TrackingHandler) GetProjectSummary(c *gin.Context) {
	keywords, err := h.trackingRepo.TrackedKeywords(c.Request.Context(), c.Param("id"), tracking.SummaryDepth, 0, 0)
	if err != nil {
		abortWithError(c, err, "failed to fetch tracking summary")
		return
	}

	c.JSON(http.StatusOK, tracking.Summarize(keywords))
}

// GetTrackedKeywords godoc
// @Summary Tracked keywords of a project with their weekly trend
// @Tags Tracking
// @Produce json
// @Param id path string true "Project ID"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.TrackedKeywordSummary
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /projects/{id}/tracking/keywords [get]
func (h *TrackingHandler) GetTrackedKeywords(c *gin.Context) {
	limit, offset, err := pagination(c, defaultTrackedKeyword)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	keywords, err := h.trackingRepo.TrackedKeywords(c.Request.Context(), c.Param("id"), tracking.TrendDepth,
		limit, offset)
	if err != nil {
		abortWithError(c, err, "failed to fetch tracked keywords")
		return
	}

	c.JSON(http.StatusOK, tracking.Keywords(keywords))
}

// GetProjectHistory godoc
// @Summary Daily average position and traffic of a project
// @Tags Tracking
// @Produce json
// @Param id path string true "Project ID"
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {array} model.AggregatedRankPoint
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /projects/{id}/tracking/history [get]
func (h *TrackingHandler) GetProjectHistory(c *gin.Context) {
	since, ok := h.since(c)
	if !ok {
		return
	}
	points, err := h.trackingRepo.ProjectHistory(c.Request.Context(), c.Param("id"), since)
	if err != nil {
		abortWithError(c, err, "failed to fetch project history")
		return
	}

	c.JSON(http.StatusOK, tracking.Aggregate(points))
}

// GetKeywordHistory godoc
// @Summary Rank history of a tracked keyword
// @Tags Tracking
// @Produce json
// @Param id path string true "Tracked keyword ID"
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {array} model.RankHistoryPoint
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /tracking/keywords/{id}/history [get]
func (h *TrackingHandler) GetKeywordHistory(c *gin.Context) {
	since, ok := h.since(c)
	if !ok {
		return
	}
	points, err := h.trackingRepo.KeywordHistory(c.Request.Context(), c.Param("id"), since)
	if err != nil {
		abortWithError(c, err, "failed to fetch keyword history")
		return
	}

	c.JSON(http.StatusOK, points)
}

func (h *TrackingHandler) since(c *gin.Context) (time.Time, bool) {
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return time.Time{}, false
	}
	return util.Since(h.now(), days), true
}
