package handler

import (
	"net/http"
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKeywordHandler_GetKeywords(t *testing.T) {
	repo := mocks.NewKeywordStorage(t)
	h := NewKeywordHandler(repo)
	repo.On("Search", mock.Anything, "seo", "de", 50).
		Return([]model.KeywordOverview{{ID: "k1", Keyword: "seo tools", Country: "de"}}, nil)

	c, w := newContext(t, "/keywords?q=seo&country=DE")
	h.GetKeywords(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "seo tools")
}

func TestKeywordHandler_GetKeywords_Top(t *testing.T) {
	repo := mocks.NewKeywordStorage(t)
	h := NewKeywordHandler(repo)
	repo.On("Top", mock.Anything, 100).Return([]model.KeywordOverview{}, nil)

	c, w := newContext(t, "/keywords")
	h.GetKeywords(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestKeywordHandler_GetKeyword(t *testing.T) {
	repo := mocks.NewKeywordStorage(t)
	h := NewKeywordHandler(repo)
	repo.On("Overview", mock.Anything, "seo tools", "us").
		Return(&model.KeywordOverview{ID: "k1", Keyword: "seo tools", Country: "us", Volume: 9000}, nil)
	repo.On("Rankings", mock.Anything, "k1", 100).
		Return([]model.KeywordRanking{{Domain: "example.com", Position: 1}}, nil)

	c, w := newContext(t, "/keywords/seo%20tools", gin.Param{Key: "keyword", Value: "seo tools"})
	h.GetKeyword(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"volume":9000`)
	assert.Contains(t, w.Body.String(), `"domain":"example.com"`)
}

func TestKeywordHandler_GetKeyword_NotFound(t *testing.T) {
	repo := mocks.NewKeywordStorage(t)
	h := NewKeywordHandler(repo)
	repo.On("Overview", mock.Anything, "nothing", "us").Return(nil, persistence.ErrNotFound)

	c, w := newContext(t, "/keywords/nothing", gin.Param{Key: "keyword", Value: "nothing"})
	h.GetKeyword(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeywordHandler_GetKeywordGroups(t *testing.T) {
	repo := mocks.NewKeywordStorage(t)
	h := NewKeywordHandler(repo)
	repo.On("Groups", mock.Anything, "").
		Return([]model.KeywordGroup{{ID: "g1", Name: "Tools", KeywordCount: 12}}, nil)

	c, w := newContext(t, "/keyword-groups")
	h.GetKeywordGroups(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"g1","name":"Tools","keyword_count":12,"parent_id":null}]`, w.Body.String())
}
