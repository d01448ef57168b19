package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/IliaW/rank-api/internal/persistence"
	"github.com/gin-gonic/gin"
)

const (
	maxPageSize = 1000

	// maxHistoryDays bounds the 'days' window of the history endpoints.
	maxHistoryDays     = 365
	defaultHistoryDays = 30
)

// queryInt reads a non-negative integer query parameter capped at maxPageSize, falling back to def when absent.
func queryInt(c *gin.Context, name string, def int) (int, error) {
	return queryIntMax(c, name, def, maxPageSize)
}

// queryDays reads the 'days' window capped at maxHistoryDays.
func queryDays(c *gin.Context) (int, error) {
	return queryIntMax(c, "days", defaultHistoryDays, maxHistoryDays)
}

func queryIntMax(c *gin.Context, name string, def, limit int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("'%s' query parameter must be a non-negative integer", name)
	}
	return min(v, limit), nil
}

// queryLimit reads 'limit', treating zero like an absent value.
func queryLimit(c *gin.Context, def int) (int, error) {
	limit, err := queryInt(c, "limit", def)
	if err != nil || limit == 0 {
		return def, err
	}
	return limit, nil
}

// queryOptionalInt reads an integer query parameter, nil when absent.
func queryOptionalInt(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("'%s' query parameter must be an integer", name)
	}
	return &v, nil
}

func queryOptionalFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, fmt.Errorf("'%s' query parameter must be a non-negative number", name)
	}
	return &v, nil
}

// queryOptionalBool reads a boolean query parameter, nil when absent.
func queryOptionalBool(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("'%s' query parameter must be true or false", name)
	}
	return &v, nil
}

// pagination reads 'limit' and 'offset'.
func pagination(c *gin.Context, defLimit int) (limit, offset int, err error) {
	if limit, err = queryInt(c, "limit", defLimit); err != nil {
		return 0, 0, err
	}
	if limit == 0 {
		limit = defLimit
	}
	if offset, err = queryInt(c, "offset", 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func includes(c *gin.Context) map[string]bool {
	out := make(map[string]bool)
	for _, part := range strings.Split(c.Query("include"), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out[p] = true
		}
	}
	return out
}

// abortWithError answers 404 for missing rows and 500 with msg otherwise.
func abortWithError(c *gin.Context, err error, msg string) {
	if errors.Is(err, persistence.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	slog.Error(msg, slog.String("request_id", c.GetString(requestIDKey)), slog.String("err", err.Error()))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msg})
}
