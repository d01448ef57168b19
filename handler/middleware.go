package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"

	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
	apiKeyHeader    = "X-API-Key"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func LimitBodySize(maxMegabytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxMegabytes*1024*1024)
	}
}

func ApiKeyCheck(keys persistence.ApiKeyStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(apiKeyHeader)
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-API-Key header is missing"})
			return
		}

		isActive, err := keys.IsActive(c.Request.Context(), HashAPIKey(apiKey))
		if err != nil {
			if errors.Is(err, persistence.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid api-key"})
				return
			}
			slog.Error("failed to query api key", slog.String("err", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "api-key check failed"})
			return
		}

		if !isActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "api-key is not active"})
			return
		}

		c.Next()
	}
}

func HashAPIKey(apiKey string) string {
	hash := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(hash[:])
}
