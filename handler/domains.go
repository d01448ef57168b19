package handler

import (
	"net/http"
	"strings"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/IliaW/rank-api/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const (
	defaultDomainListLimit = 10
	defaultDomainRowsLimit = 100
)

type DomainHandler struct {
	domainRepo persistence.DomainStorage
}

func NewDomainHandler(domainRepo persistence.DomainStorage) *DomainHandler {
	return &DomainHandler{
		domainRepo: domainRepo,
	}
}

// GetDomains godoc
// @Summary Search domains or list the strongest ones
// @Description Domains whose name contains 'q', or the top domains by authority score when 'q' is empty
// @Tags Domains
// @Produce json
// @Param q query string false "Part of the domain name"
// @Param limit query int false "Maximum number of domains" default(10)
// @Success 200 {array} model.DomainOverview
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /domains [get]
func (h *DomainHandler) GetDomains(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultDomainListLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var domains []model.DomainOverview
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		domains, err = h.domainRepo.Search(c.Request.Context(), strings.ToLower(q), limit)
	} else {
		domains, err = h.domainRepo.Top(c.Request.Context(), limit)
	}
	if err != nil {
		abortWithError(c, err, "failed to fetch domains")
		return
	}

	c.JSON(http.StatusOK, domains)
}

// GetDomain godoc
// @Summary Get a domain overview
// @Description Domain metrics, optionally with its top rankings and newest backlinks
// @Tags Domains
// @Produce json
// @Param domain path string true "Domain name"
// @Param include query string false "Comma separated sections: rankings, backlinks"
// @Success 200 {object} model.DomainDetail
// @Failure 400 {object} error "Bad request"
// @Failure 404 {object} error "Domain not found"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /domains/{domain} [get]
func (h *DomainHandler) GetDomain(c *gin.Context) {
	domain, err := util.GetDomain(c.Param("domain"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	overview, err := h.domainRepo.Overview(ctx, domain)
	if err != nil {
		abortWithError(c, err, "failed to fetch domain data")
		return
	}

	detail := model.DomainDetail{DomainOverview: overview}
	include := includes(c)
	g, gctx := errgroup.WithContext(ctx)
	if include["rankings"] {
		g.Go(func() error {
			rankings, err := h.domainRepo.Rankings(gctx, overview.ID, defaultDomainRowsLimit, 0)
			detail.Rankings = rankings
			return err
		})
	}
	if include["backlinks"] {
		g.Go(func() error {
			backlinks, err := h.domainRepo.Backlinks(gctx, overview.ID, defaultDomainRowsLimit, 0)
			detail.Backlinks = backlinks
			return err
		})
	}
	if err = g.Wait(); err != nil {
		abortWithError(c, err, "failed to fetch domain data")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetDomainRankings godoc
// @Summary List the organic rankings of a domain
// @Tags Domains
// @Produce json
// @Param domain path string true "Domain name"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.DomainRanking
// @Failure 404 {object} error "Domain not found"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /domains/{domain}/rankings [get]
func (h *DomainHandler) GetDomainRankings(c *gin.Context) {
	overview, limit, offset, ok := h.pagedDomain(c)
	if !ok {
		return
	}
	rankings, err := h.domainRepo.Rankings(c.Request.Context(), overview.ID, limit, offset)
	if err != nil {
		abortWithError(c, err, "failed to fetch domain rankings")
		return
	}

	c.JSON(http.StatusOK, rankings)
}

// GetDomainBacklinks godoc
// @Summary List the backlinks of a domain, newest first
// @Tags Domains
// @Produce json
// @Param domain path string true "Domain name"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.DomainBacklink
// @Failure 404 {object} error "Domain not found"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /domains/{domain}/backlinks [get]
func (h *DomainHandler) GetDomainBacklinks(c *gin.Context) {
	overview, limit, offset, ok := h.pagedDomain(c)
	if !ok {
		return
	}
	backlinks, err := h.domainRepo.Backlinks(c.Request.Context(), overview.ID, limit, offset)
	if err != nil {
		abortWithError(c, err, "failed to fetch domain backlinks")
		return
	}

	c.JSON(http.StatusOK, backlinks)
}

func (h *DomainHandler) pagedDomain(c *gin.Context) (*model.DomainOverview, int, int, bool) {
	limit, offset, err := pagination(c, defaultDomainRowsLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, 0, 0, false
	}
	domain, err := util.GetDomain(c.Param("domain"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, 0, 0, false
	}
	overview, err := h.domainRepo.Overview(c.Request.Context(), domain)
	if err != nil {
		abortWithError(c, err, "failed to fetch domain data")
		return nil, 0, 0, false
	}

	return overview, limit, offset, true
}
