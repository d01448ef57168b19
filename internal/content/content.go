// Package content derives content inventory KPIs.
package content

import (
	"math"

	"github.com/IliaW/rank-api/internal/model"
)

const (
	StatusNeedsUpdate = "needs-update"
	// LowScoreThreshold is the highest SEO score of a piece that still counts as low scoring.
	LowScoreThreshold = 60
)

func Stats(t model.ContentTotals) model.ContentStats {
	s := model.ContentStats{
		TotalPieces:      t.Pieces,
		AverageSeoScore:  int(math.Round(t.AvgSeoScore)),
		AverageWordCount: int(math.Round(t.AvgWordCount)),
		NeedsUpdate:      t.NeedsUpdate,
		ByStatus:         t.ByStatus,
	}
	if s.ByStatus == nil {
		s.ByStatus = []model.StatusCount{}
	}
	return s
}
