package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	assert.Equal(t, 8.5, Round(8.46, 1))
	assert.Equal(t, 2.35, Round(2.346, 2))
	assert.Equal(t, 3.0, Round(2.5, 0))
	assert.Equal(t, 0.0, Round(0, 1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 25.0, Percent(1, 4))
	assert.Equal(t, 0.0, Percent(3, 0))
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 2.5, Average([]int{1, 2, 3, 4}))
	assert.Equal(t, 0.0, Average([]float64{}))
}

func TestSince(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 19, 12, 0, 0, 0, time.UTC), Since(now, 30))
}
