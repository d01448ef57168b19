package handler

import (
	"net/http"
	"time"

	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/IliaW/rank-api/internal/traffic"
	"github.com/IliaW/rank-api/util"
	"github.com/gin-gonic/gin"
)

const (
	defaultTopTraffic  = 20
	defaultMarketShare = 20
)

type TrafficHandler struct {
	trafficRepo persistence.TrafficStorage
	now         func() time.Time
}

func NewTrafficHandler(trafficRepo persistence.TrafficStorage) *TrafficHandler {
	return &TrafficHandler{
		trafficRepo: trafficRepo,
		now:         time.Now,
	}
}

// GetDomainTraffic godoc
// @Summary Daily traffic of a domain
// @Tags Traffic
// @Produce json
// @Param domain path string true "Domain name"
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {array} model.TrafficData
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /traffic/domains/{domain} [get]
func (h *TrafficHandler) GetDomainTraffic(c *gin.Context) {
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := h.trafficRepo.Daily(c.Request.Context(), c.Param("domain"), util.Since(h.now(), days))
	if err != nil {
		abortWithError(c, err, "failed to fetch traffic")
		return
	}

	c.JSON(http.StatusOK, rows)
}

// GetTrafficSummary godoc
// @Summary Traffic totals of a domain compared with the preceding window
// @Tags Traffic
// @Produce json
// @Param domain path string true "Domain name"
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {object} model.TrafficSummary
// @Failure 400 {object} error "Bad request"
// @Failure 404 {object} error "No traffic in the window"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /traffic/domains/{domain}/summary [get]
func (h *TrafficHandler) GetTrafficSummary(c *gin.Context) {
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := h.now()
	rows, err := h.trafficRepo.Daily(c.Request.Context(), c.Param("domain"), util.Since(now, 2*days))
	if err != nil {
		abortWithError(c, err, "failed to fetch traffic summary")
		return
	}
	summary := traffic.Summarize(rows, util.Since(now, days))
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no traffic data for the domain"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMarketTrend godoc
// @Summary Market share history of a domain
// @Tags Traffic
// @Produce json
// @Param domain path string true "Domain name"
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Success 200 {array} model.MarketTrendPoint
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /traffic/domains/{domain}/market-trend [get]
func (h *TrafficHandler) GetMarketTrend(c *gin.Context) {
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	points, err := h.trafficRepo.MarketTrend(c.Request.Context(), c.Param("domain"), util.Since(h.now(), days))
	if err != nil {
		abortWithError(c, err, "failed to fetch market trend")
		return
	}

	c.JSON(http.StatusOK, points)
}

// GetTopTraffic godoc
// @Summary Domains with the most visits in the window
// @Tags Traffic
// @Produce json
// @Param days query int false "Window in days, capped at 365" default(30) maximum(365)
// @Param limit query int false "Maximum number of domains" default(20)
// @Success 200 {array} model.DomainTraffic
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /traffic/top [get]
func (h *TrafficHandler) GetTopTraffic(c *gin.Context) {
	days, err := queryDays(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, err := queryLimit(c, defaultTopTraffic)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	domains, err := h.trafficRepo.TopDomains(c.Request.Context(), util.Since(h.now(), days), limit)
	if err != nil {
		abortWithError(c, err, "failed to fetch top traffic")
		return
	}

	c.JSON(http.StatusOK, domains)
}

// GetIndustries godoc
// @Summary Industries with market data
// @Tags Traffic
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /markets [get]
func (h *TrafficHandler) GetIndustries(c *gin.Context) {
	industries, err := h.trafficRepo.Industries(c.Request.Context())
	if err != nil {
		abortWithError(c, err, "failed to fetch industries")
		return
	}

	c.JSON(http.StatusOK, industries)
}

// GetMarketOverview godoc
// @Summary Largest market shares of an industry at its latest date
// @Tags Traffic
// @Produce json
// @Param industry path string true "Industry slug"
// @Param limit query int false "Maximum number of domains" default(20)
// @Success 200 {array} model.MarketShare
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /markets/{industry} [get]
func (h *TrafficHandler) GetMarketOverview(c *gin.Context) {
	limit, err := queryLimit(c, defaultMarketShare)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	shares, err := h.trafficRepo.MarketOverview(c.Request.Context(), c.Param("industry"), limit)
	if err != nil {
		abortWithError(c, err, "failed to fetch market overview")
		return
	}

	c.JSON(http.StatusOK, shares)
}
