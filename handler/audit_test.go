package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuditHandler_GetAuditSummary(t *testing.T) {
	repo := mocks.NewAuditStorage(t)
	h := NewAuditHandler(repo)
	repo.On("Pages", mock.Anything, "p1").Return([]model.AuditPage{
		{ID: "u1", LoadTimeMs: p(200), Severities: []string{model.SeverityError, model.SeverityWarning}},
		{ID: "u2", LoadTimeMs: p(400)},
		{ID: "u3"},
	}, nil)

	c, w := newContext(t, "/projects/p1/audit/summary", gin.Param{Key: "id", Value: "p1"})
	h.GetAuditSummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	var got model.AuditSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, model.AuditSummary{TotalUrls: 3, Healthy: 2, WithIssues: 1, Errors: 1, Warnings: 1,
		AvgLoadTime: 300}, got)
}

func TestAuditHandler_GetAuditUrls_HasIssues(t *testing.T) {
	repo := mocks.NewAuditStorage(t)
	h := NewAuditHandler(repo)
	hasIssues := true
	repo.On("Urls", mock.Anything, "p1", model.AuditUrlFilter{HasIssues: &hasIssues, Limit: 10, Offset: 20}).
		Return([]model.AuditUrl{{ID: "u1", Url: "https://example.com/", IssueCount: 2}}, nil)

	c, w := newContext(t, "/projects/p1/audit/urls?has_issues=true&limit=10&offset=20",
		gin.Param{Key: "id", Value: "p1"})
	h.GetAuditUrls(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"issue_count":2`)
}

func TestAuditHandler_GetAuditUrls_BadFlag(t *testing.T) {
	h := NewAuditHandler(mocks.NewAuditStorage(t))

	c, w := newContext(t, "/projects/p1/audit/urls?has_issues=maybe", gin.Param{Key: "id", Value: "p1"})
	h.GetAuditUrls(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuditHandler_GetIssueTypes(t *testing.T) {
	repo := mocks.NewAuditStorage(t)
	h := NewAuditHandler(repo)
	repo.On("ProjectIssues", mock.Anything, "p1").Return([]model.AuditIssue{
		{ID: "i1", Code: "missing-alt", Name: "Missing alt", Severity: "warning", Category: "images"},
		{ID: "i2", Code: "broken-link", Name: "Broken link", Severity: "error", Category: "links"},
		{ID: "i3", Code: "broken-link", Name: "Broken link", Severity: "error", Category: "links"},
	}, nil)

	c, w := newContext(t, "/projects/p1/audit/issues", gin.Param{Key: "id", Value: "p1"})
	h.GetIssueTypes(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"code":"broken-link","name":"Broken link","severity":"error","category":"links","count":2},
		{"code":"missing-alt","name":"Missing alt","severity":"warning","category":"images","count":1}
	]`, w.Body.String())
}

func TestAuditHandler_GetUrlIssues_Failure(t *testing.T) {
	repo := mocks.NewAuditStorage(t)
	h := NewAuditHandler(repo)
	repo.On("UrlIssues", mock.Anything, "u1").Return(nil, errors.New("db down"))

	c, w := newContext(t, "/audit/urls/u1/issues", gin.Param{Key: "id", Value: "u1"})
	h.GetUrlIssues(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"failed to fetch url issues"}`, w.Body.String())
}
