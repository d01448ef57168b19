package handler

import (
	"net/http"

	"github.com/IliaW/rank-api/internal/audit"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-gonic/gin"
)

const defaultAuditUrlLimit = 100

type AuditHandler struct {
	auditRepo persistence.AuditStorage
}

func NewAuditHandler(auditRepo persistence.AuditStorage) *AuditHandler {
	return &AuditHandler{
		auditRepo: auditRepo,
	}
}

// GetAuditSummary godoc
// @Summary Site audit health of a project
// @Tags Audit
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} model.AuditSummary
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /projects/{id}/audit/summary [get]
func (h *AuditHandler) GetAuditSummary(c *gin.Context) {
	pages, err := h.auditRepo.Pages(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err, "failed to fetch audit summary")
		return
	}

	c.JSON(http.StatusOK, audit.Summarize(pages))
}

// GetAuditUrls godoc
// @Summary Crawled urls of a project, newest first
// @Tags Audit
// @Produce json
// @Param id path string true "Project ID"
// @Param has_issues query bool false "Keep only urls with (true) or without (false) issues"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} model.AuditUrl
// @Failure 400 {object} error "Bad request"
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /projects/{id}/audit/urls [get]
func (h *AuditHandler) GetAuditUrls(c *gin.Context) {
	limit, offset, err := pagination(c, defaultAuditUrlLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hasIssues, err := queryOptionalBool(c, "has_issues")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	urls, err := h.auditRepo.Urls(c.Request.Context(), c.Param("id"),
		model.AuditUrlFilter{HasIssues: hasIssues, Limit: limit, Offset: offset})
	if err != nil {
		abortWithError(c, err, "failed to fetch audit urls")
		return
	}

	c.JSON(http.StatusOK, urls)
}

// GetIssueTypes godoc
// @Summary Issue counts of a project grouped by issue type, most frequent first
// @Tags Audit
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {array} model.IssueTypeCount
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /projects/{id}/audit/issues [get]
func (h *AuditHandler) GetIssueTypes(c *gin.Context) {
	issues, err := h.auditRepo.ProjectIssues(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err, "failed to fetch audit issues")
		return
	}

	c.JSON(http.StatusOK, audit.CountByType(issues))
}

// GetUrlIssues godoc
// @Summary Issues found on a crawled url
// @Tags Audit
// @Produce json
// @Param id path string true "Audit url ID"
// @Success 200 {array} model.AuditIssue
// @Failure 500 {object} error "Internal server error"
// @Security ApiKeyAuth
// @Router /audit/urls/{id}/issues [get]
func (h *AuditHandler) GetUrlIssues(c *gin.Context) {
	issues, err := h.auditRepo.UrlIssues(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err, "failed to fetch url issues")
		return
	}

	c.JSON(http.StatusOK, issues)
}
