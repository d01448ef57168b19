package content

import (
	"testing"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	got := Stats(model.ContentTotals{
		Pieces:       12,
		AvgSeoScore:  71.5,
		AvgWordCount: 1480.2,
		NeedsUpdate:  3,
		ByStatus:     []model.StatusCount{{Status: "published", Count: 9}, {Status: StatusNeedsUpdate, Count: 3}},
	})

	assert.Equal(t, model.ContentStats{
		TotalPieces:      12,
		AverageSeoScore:  72,
		AverageWordCount: 1480,
		NeedsUpdate:      3,
		ByStatus:         []model.StatusCount{{Status: "published", Count: 9}, {Status: StatusNeedsUpdate, Count: 3}},
	}, got)
}

func TestStats_Empty(t *testing.T) {
	got := Stats(model.ContentTotals{})

	assert.Zero(t, got.AverageSeoScore)
	assert.Equal(t, []model.StatusCount{}, got.ByStatus)
}
