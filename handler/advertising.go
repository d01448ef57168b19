package handler

import (
	"net/http"
	"strings"

	"github.com/IliaW/rank-api/internal/advertising"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-gonic/gin"
)

const (
	defaultPpcSearch     = 20
	defaultPpcList       = 100
	defaultAdCampaigns   = 50
	defaultAdCreatives   = 50
	defaultCompetitorAds = 20
)

type AdvertisingHandler struct {
	advertisingRepo persistence.AdvertisingStorage
}

func NewAdvertisingHandler(advertisingRepo persistence.AdvertisingStorage) *AdvertisingHandler {
	return &AdvertisingHandler{
		advertisingRepo: advertisingRepo,
	}
}

// GetPpcKeywords godoc
// @Summary Search paid keywords or list them by volume
// @Tags Advertising
// @Produce json
// @Param q query string false "Part of the keyword"
// @Param min_volume query int false "Minimum monthly volume" default(0)
// @Param max_cpc query number false "Maximum cost per click"
// @Param limit query int false "Maximum number of keywords"
// @Success 200 {array} model.PpcKeyword
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /advertising/ppc-keywords [get]
func (h *AdvertisingHandler) GetPpcKeywords(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	def := defaultPpcList
	if q != "" {
		def = defaultPpcSearch
	}
	limit, err := queryLimit(c, def)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q != "" {
		keywords, err := h.advertisingRepo.SearchPpcKeywords(c.Request.Context(), q, limit)
		if err != nil {
			abortWithError(c, err, "failed to search ppc keywords")
			return
		}
		c.JSON(http.StatusOK, keywords)
		return
	}

	minVolume, err := queryInt(c, "min_volume", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	maxCpc, err := queryOptionalFloat(c, "max_cpc")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	keywords, err := h.advertisingRepo.PpcKeywords(c.Request.Context(),
		model.PpcKeywordFilter{MinVolume: minVolume, MaxCpc: maxCpc, Limit: limit})
	if err != nil {
		abortWithError(c, err, "failed to fetch ppc keywords")
		return
	}

	c.JSON(http.StatusOK, keywords)
}

// GetCampaigns godoc
// @Summary Ad campaigns with their click-through and conversion rates
// @Tags Advertising
// @Produce json
// @Param domain query string false "Part of the advertiser domain"
// @Param platform query string false "Ad platform filter"
// @Param status query string false "Campaign status filter"
// @Param limit query int false "Maximum number of campaigns" default(50)
// @Success 200 {array} model.AdCampaign
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /advertising/campaigns [get]
func (h *AdvertisingHandler) GetCampaigns(c *gin.Context) {
	limit, err := queryLimit(c, defaultAdCampaigns)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	campaigns, err := h.advertisingRepo.Campaigns(c.Request.Context(), model.AdCampaignFilter{
		Domain:   strings.TrimSpace(c.Query("domain")),
		Platform: c.Query("platform"),
		Status:   c.Query("status"),
		Limit:    limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch ad campaigns")
		return
	}

	c.JSON(http.StatusOK, advertising.WithRates(campaigns))
}

// GetAdvertisingStats godoc
// @Summary Totals over every ad campaign
// @Tags Advertising
// @Produce json
// @Success 200 {object} model.AdvertisingStats
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /advertising/stats [get]
func (h *AdvertisingHandler) GetAdvertisingStats(c *gin.Context) {
	totals, err := h.advertisingRepo.Totals(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch advertising stats")
		return
	}

	c.JSON(http.StatusOK, advertising.Stats(totals))
}

// GetCreatives godoc
// @Summary Ad creatives by impressions
// @Tags Advertising
// @Produce json
// @Param campaign_id query string false "Campaign filter"
// @Param format query string false "Creative format filter"
// @Param limit query int false "Maximum number of creatives" default(50)
// @Success 200 {array} model.AdCreative
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /advertising/creatives [get]
func (h *AdvertisingHandler) GetCreatives(c *gin.Context) {
	limit, err := queryLimit(c, defaultAdCreatives)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	creatives, err := h.advertisingRepo.Creatives(c.Request.Context(), model.AdCreativeFilter{
		CampaignID: c.Query("campaign_id"),
		Format:     c.Query("format"),
		Limit:      limit,
	})
	if err != nil {
		abortWithError(c, err, "failed to fetch ad creatives")
		return
	}

	c.JSON(http.StatusOK, creatives)
}

// GetCompetitorAds godoc
// @Summary Most recently seen ad creatives of a competitor
// @Tags Advertising
// @Produce json
// @Param domain path string true "Competitor domain"
// @Param limit query int false "Maximum number of creatives" default(20)
// @Success 200 {array} model.AdCreative
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /advertising/competitors/{domain}/ads [get]
func (h *AdvertisingHandler) GetCompetitorAds(c *gin.Context) {
	limit, err := queryLimit(c, defaultCompetitorAds)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	creatives, err := h.advertisingRepo.CompetitorCreatives(c.Request.Context(), c.Param("domain"), limit)
	if err != nil {
		abortWithError(c, err, "failed to fetch competitor ads")
		return
	}

	c.JSON(http.StatusOK, creatives)
}
