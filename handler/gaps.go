package handler

import (
	"errors"
	"net/http"

	"github.com/IliaW/rank-api/internal/gap"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
	"github.com/gin-gonic/gin"
)

type GapHandler struct {
	analyzer gap.Analyzer
}

func NewGapHandler(analyzer gap.Analyzer) *GapHandler {
	return &GapHandler{
		analyzer: analyzer,
	}
}

// GetKeywordGap godoc
// @Summary Compare the keywords of a domain with its competitors
// @Description Classifies every keyword as missing, weak, strong, shared or untapped for the primary domain
// @Tags Gap
// @Produce json
// @Param primary query string true "Primary domain"
// @Param competitors query []string true "Competitor domains, repeated or comma separated" collectionFormat(multi)
// @Success 200 {object} model.KeywordGapSummary
// @Failure 400 {object} error "Bad request"
// @Failure 404 {object} error "None of the domains were found"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /gaps/keywords [get]
func (h *GapHandler) GetKeywordGap(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	summary, err := h.analyzer.KeywordGap(c.Request.Context(), q)
	if err != nil {
		h.abort(c, err, "failed to compute keyword gap")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetBacklinkGap godoc
// @Summary Compare the referring domains of a domain with its competitors
// @Description Classifies every referring domain as shared, exclusive or an opportunity for the primary domain
// @Tags Gap
// @Produce json
// @Param primary query string true "Primary domain"
// @Param competitors query []string true "Competitor domains, repeated or comma separated" collectionFormat(multi)
// @Success 200 {object} model.BacklinkGapSummary
// @Failure 400 {object} error "Bad request"
// @Failure 404 {object} error "None of the domains were found"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /gaps/backlinks [get]
func (h *GapHandler) GetBacklinkGap(c *gin.Context) {
	q, ok := h.bindQuery(c)
	if !ok {
		return
	}
	summary, err := h.analyzer.BacklinkGap(c.Request.Context(), q)
	if err != nil {
		h.abort(c, err, "failed to compute backlink gap")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// SearchGapDomains godoc
// @Summary Autocomplete domain names for the gap forms
// @Tags Gap
// @Produce json
// @Param q query string true "Part of the domain name"
// @Param limit query int false "Maximum number of names" default(10)
// @Success 200 {array} string
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /gaps/domains [get]
func (h *GapHandler) SearchGapDomains(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'q' query parameter is required"})
		return
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	names, err := h.analyzer.SearchDomains(c.Request.Context(), q, limit)
	if err != nil {
		abortWithError(c, err, "failed to search domains")
		return
	}

	c.JSON(http.StatusOK, names)
}

func (h *GapHandler) bindQuery(c *gin.Context) (model.GapQuery, bool) {
	primary := c.Query("primary")
	if primary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'primary' query parameter is required"})
		return model.GapQuery{}, false
	}
	q, err := model.NewGapQuery(primary, util.SplitList(c.QueryArray("competitors")))
	if err == nil {
		err = q.Validate(h.analyzer.MaxCompetitors())
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.GapQuery{}, false
	}

	return q, true
}

func (h *GapHandler) abort(c *gin.Context, err error, msg string) {
	if errors.Is(err, gap.ErrDomainsNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	abortWithError(c, err, msg)
}
