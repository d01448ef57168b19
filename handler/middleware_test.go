package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/IliaW/rank-api/internal/persistence/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProtectedRouter(keys persistence.ApiKeyStorage) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.Use(ApiKeyCheck(keys))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })
	return r
}

func serve(r *gin.Engine, apiKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestApiKeyCheck(t *testing.T) {
	keys := mocks.NewApiKeyStorage(t)
	keys.On("IsActive", mock.Anything, HashAPIKey("active")).Return(true, nil)
	keys.On("IsActive", mock.Anything, HashAPIKey("disabled")).Return(false, nil)
	keys.On("IsActive", mock.Anything, HashAPIKey("unknown")).Return(false, persistence.ErrNotFound)
	keys.On("IsActive", mock.Anything, HashAPIKey("broken")).Return(false, errors.New("db down"))
	r := newProtectedRouter(keys)

	assert.Equal(t, http.StatusUnauthorized, serve(r, "").Code)
	assert.Equal(t, http.StatusOK, serve(r, "active").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "disabled").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "unknown").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(r, "broken").Code)
}

func TestRequestID(t *testing.T) {
	keys := mocks.NewApiKeyStorage(t)
	keys.On("IsActive", mock.Anything, mock.Anything).Return(true, nil)
	r := newProtectedRouter(keys)

	w := serve(r, "key")
	id := w.Header().Get(requestIDHeader)
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(apiKeyHeader, "key")
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestHashAPIKey(t *testing.T) {
	assert.Equal(t, "2c26b46b68ffc68ff99b453c1d30413413422d706483bfa0f98a5e886266e7ae", HashAPIKey("foo"))
}
