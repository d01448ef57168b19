package handler

import (
	"net/http"
	"strings"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-gonic/gin"
)

const (
	defaultCountry          = "us"
	defaultKeywordSearch    = 50
	defaultKeywordListLimit = 100
)

type KeywordHandler struct {
	keywordRepo persistence.KeywordStorage
}

func NewKeywordHandler(keywordRepo persistence.KeywordStorage) *KeywordHandler {
	return &KeywordHandler{
		keywordRepo: keywordRepo,
	}
}

// GetKeywords godoc
// @Summary Search keywords or list the most searched ones
// @Tags Keywords
// @Produce json
// @Param q query string false "Part of the keyword"
// @Param country query string false "Country code filter for the search"
// @Param limit query int false "Maximum number of keywords"
// @Success 200 {array} model.KeywordOverview
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /keywords [get]
func (h *KeywordHandler) GetKeywords(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	def := defaultKeywordListLimit
	if q != "" {
		def = defaultKeywordSearch
	}
	limit, err := queryInt(c, "limit", def)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var keywords []model.KeywordOverview
	if q != "" {
		keywords, err = h.keywordRepo.Search(c.Request.Context(), q, strings.ToLower(c.Query("country")), limit)
	} else {
		keywords, err = h.keywordRepo.Top(c.Request.Context(), limit)
	}
	if err != nil {
		abortWithError(c, err, "failed to fetch keywords")
		return
	}

	c.JSON(http.StatusOK, keywords)
}

// GetKeyword godoc
// @Summary Get keyword metrics and the domains ranking for it
// @Tags Keywords
// @Produce json
// @Param keyword path string true "Keyword"
// @Param country query string false "Country code" default(us)
// @Success 200 {object} model.KeywordDetail
// @Failure 404 {object} error "Keyword not found"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /keywords/{keyword} [get]
func (h *KeywordHandler) GetKeyword(c *gin.Context) {
	country := strings.ToLower(c.DefaultQuery("country", defaultCountry))
	overview, err := h.keywordRepo.Overview(c.Request.Context(), c.Param("keyword"), country)
	if err != nil {
		abortWithError(c, err, "failed to fetch keyword")
		return
	}
	rankings, err := h.keywordRepo.Rankings(c.Request.Context(), overview.ID, defaultKeywordListLimit)
	if err != nil {
		abortWithError(c, err, "failed to fetch keyword rankings")
		return
	}

	c.JSON(http.StatusOK, model.KeywordDetail{KeywordOverview: overview, Rankings: rankings})
}

// GetKeywordGroups godoc
// @Summary List keyword groups
// @Description Children of 'parent_id', or the root groups when it is empty
// @Tags Keywords
// @Produce json
// @Param parent_id query string false "Parent group ID"
// @Success 200 {array} model.KeywordGroup
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /keyword-groups [get]
func (h *KeywordHandler) GetKeywordGroups(c *gin.Context) {
	groups, err := h.keywordRepo.Groups(c.Request.Context(), c.Query("parent_id"))
	if err != nil {
		abortWithError(c, err, "failed to fetch keyword groups")
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroupKeywords godoc
// @Summary List the keywords of a group by volume
// @Tags Keywords
// @Produce json
// @Param id path string true "Group ID"
// @Param limit query int false "Maximum number of keywords" default(100)
// @Success 200 {array} model.KeywordOverview
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /keyword-groups/{id}/keywords [get]
func (h *KeywordHandler) GetGroupKeywords(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultKeywordListLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	keywords, err := h.keywordRepo.ByGroup(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		abortWithError(c, err, "failed to fetch group keywords")
		return
	}

	c.JSON(http.StatusOK, keywords)
}
