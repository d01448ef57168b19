package handler

import (
	"net/http"

	"github.com/IliaW/rank-api/internal/content"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-gonic/gin"
)

const (
	defaultTopics          = 50
	defaultTrendingTopics  = 10
	defaultContentPieces   = 100
	defaultLowScoringPiece = 20
)

type ContentHandler struct {
	contentRepo persistence.ContentStorage
}

func NewContentHandler(contentRepo persistence.ContentStorage) *ContentHandler {
	return &ContentHandler{
		contentRepo: contentRepo,
	}
}

// GetTopics godoc
// @Summary Topic ideas by trend score
// @Tags Content
// @Produce json
// @Param content_type query string false "Content type filter"
// @Param min_volume query int false "Minimum monthly volume" default(0)
// @Param limit query int false "Maximum number of topics" default(50)
// @Success 200 {array} model.TopicIdea
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /content/topics [get]
func (h *ContentHandler) GetTopics(c *gin.Context) {
	limit, err := queryLimit(c, defaultTopics)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	minVolume, err := queryInt(c, "min_volume", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeTopics(c, model.TopicFilter{ContentType: c.Query("content_type"), MinVolume: minVolume, Limit: limit})
}

// GetTrendingTopics godoc
// @Summary Topic ideas with the highest trend score
// @Tags Content
// @Produce json
// @Param limit query int false "Maximum number of topics" default(10)
// @Success 200 {array} model.TopicIdea
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /content/topics/trending [get]
func (h *ContentHandler) GetTrendingTopics(c *gin.Context) {
	limit, err := queryLimit(c, defaultTrendingTopics)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writeTopics(c, model.TopicFilter{Limit: limit})
}

func (h *ContentHandler) writeTopics(c *gin.Context, filter model.TopicFilter) {
	topics, err := h.contentRepo.Topics(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err, "failed to fetch topic ideas")
		return
	}

	c.JSON(http.StatusOK, topics)
}

// GetPieces godoc
// @Summary Content pieces, lowest SEO score first
// @Tags Content
// @Produce json
// @Param status query string false "Status filter"
// @Param min_seo_score query int false "Lowest SEO score"
// @Param max_seo_score query int false "Highest SEO score"
// @Param limit query int false "Maximum number of pieces" default(100)
// @Success 200 {array} model.ContentPiece
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /content/pieces [get]
func (h *ContentHandler) GetPieces(c *gin.Context) {
	limit, err := queryLimit(c, defaultContentPieces)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	minScore, err := queryOptionalInt(c, "min_seo_score")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	maxScore, err := queryOptionalInt(c, "max_seo_score")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.writePieces(c, model.ContentPieceFilter{Status: c.Query("status"), MinSeoScore: minScore,
		MaxSeoScore: maxScore, Limit: limit})
}

// GetLowScoringPieces godoc
// @Summary Content pieces with an SEO score of 60 or less
// @Tags Content
// @Produce json
// @Param limit query int false "Maximum number of pieces" default(20)
// @Success 200 {array} model.ContentPiece
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /content/pieces/low-scoring [get]
func (h *ContentHandler) GetLowScoringPieces(c *gin.Context) {
	limit, err := queryLimit(c, defaultLowScoringPiece)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	threshold := content.LowScoreThreshold
	h.writePieces(c, model.ContentPieceFilter{MaxSeoScore: &threshold, Limit: limit})
}

func (h *ContentHandler) writePieces(c *gin.Context, filter model.ContentPieceFilter) {
	pieces, err := h.contentRepo.Pieces(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, err, "failed to fetch content pieces")
		return
	}

	c.JSON(http.StatusOK, pieces)
}

// GetContentStats godoc
// @Summary Content inventory totals
// @Tags Content
// @Produce json
// @Success 200 {object} model.ContentStats
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /content/stats [get]
func (h *ContentHandler) GetContentStats(c *gin.Context) {
	totals, err := h.contentRepo.Totals(c.Request.Context(), content.StatusNeedsUpdate)
	if err != nil {
		abortWithError(c, err, "failed to fetch content stats")
		return
	}

	c.JSON(http.StatusOK, content.Stats(totals))
}
