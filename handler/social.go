package handler

import (
	"net/http"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/IliaW/rank-api/internal/social"
	"github.com/IliaW/rank-api/util"
	"github.com/gin-gonic/gin"
)

const (
	defaultSocialProfiles = 50
	defaultSocialPosts    = 50
	defaultTopPosts       = 10
)

type SocialHandler struct {
	socialRepo persistence.SocialStorage
	now        func() time.Time
}

func NewSocialHandler(socialRepo persistence.SocialStorage) *SocialHandler {
	return &SocialHandler{
		socialRepo: socialRepo,
		now:        time.Now,
	}
}

// GetProfiles godoc
// @Summary Social profiles by followers
// @Tags Social
// @Produce json
// @Param platform query string false "Platform filter"
// @Param limit query int false "Maximum number of profiles" default(50)
// @Success 200 {array} model.SocialProfile
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /social/profiles [get]
func (h *SocialHandler) GetProfiles(c *gin.Context) {
	limit, err := queryLimit(c, defaultSocialProfiles)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profiles, err := h.socialRepo.Profiles(c.Request.Context(), c.Query("platform"), limit)
	if err != nil {
		abortWithError(c, err, "failed to fetch social profiles")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetPlatforms godoc
// @Summary Profile count and followers per platform
// @Tags Social
// @Produce json
// @Success 200 {array} model.PlatformProfiles
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /social/platforms [get]
func (h *SocialHandler) GetPlatforms(c *gin.Context) {
	platforms, err := h.socialRepo.ProfilesByPlatform(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch social platforms")
		return
	}

	c.JSON(http.StatusOK, platforms)
}

// GetSocialStats godoc
// @Summary Totals over every social profile
// @Tags Social
// @Produce json
// @Success 200 {object} model.SocialStats
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /social/stats [get]
func (h *SocialHandler) GetSocialStats(c *gin.Context) {
	totals, err := h.socialRepo.Totals(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch social stats")
		return
	}

	c.JSON(http.StatusOK, social.Stats(totals))
}

// GetPosts godoc
// @Summary Newest social posts
// @Tags Social
// @Produce json
// @Param profile_id query string false "Profile filter"
// @Param platform query string false "Platform filter"
// @Param post_type query string false "Post type filter"
// @Param limit query int false "Maximum number of posts" default(50)
// @Success 200 {array} model.SocialPost
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /social/posts [get]
func (h *SocialHandler) GetPosts(c *gin.Context) {
	limit, err := queryLimit(c, defaultSocialPosts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	posts, err := h.socialRepo.Posts(c.Request.Context(), model.SocialPostFilter{
		ProfileID: c.Query("profile_id"),
		Platform:  c.Query("platform"),
		PostType:  c.Query("post_type"),
		Limit:     limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch social posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetTopPosts godoc
// @Summary Social posts with the most impressions
// @Tags Social
// @Produce json
// @Param limit query int false "Maximum number of posts" default(10)
// @Success 200 {array} model.SocialPost
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /social/posts/top [get]
func (h *SocialHandler) GetTopPosts(c *gin.Context) {
	limit, err := queryLimit(c, defaultTopPosts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	posts, err := h.socialRepo.TopPosts(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, err, "failed to fetch top posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetProfileMetrics godoc
// @Summary Daily metrics of a social profile
// @Tags Social
// @Produce json
// @Param id path string true "Profile ID"
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {array} model.SocialMetric
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /social/profiles/{id}/metrics [get]
func (h *SocialHandler) GetProfileMetrics(c *gin.Context) {
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics, err := h.socialRepo.Metrics(c.Request.Context(), c.Param("id"), util.Since(h.now(), days))
	if err != nil {
		abortWithError(c, err, "failed to fetch profile metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetAggregatedMetrics godoc
// @Summary Impressions, engagements and follower growth over every profile
// @Tags Social
// @Produce json
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {object} model.AggregatedSocialMetrics
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /social/metrics [get]
func (h *SocialHandler) GetAggregatedMetrics(c *gin.Context) {
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	totals, err := h.socialRepo.MetricTotals(c.Request.Context(), util.Since(h.now(), days))
	if err != nil {
		abortWithError(c, err, "failed to fetch social metrics")
		return
	}

	c.JSON(http.StatusOK, social.Aggregate(totals))
}
