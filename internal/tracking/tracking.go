// Package tracking turns rank history into position tracking KPIs.
package tracking

import (
	"cmp"
	"slices"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
)

const (
	// TrendDepth is the number of newest history points considered per keyword.
	TrendDepth = 7
	// SummaryDepth is the number of newest history points needed to compare movement.
	SummaryDepth = 2

	topPositionMax = 3
	firstPageMax   = 10
)

// Summarize computes the project KPIs from keywords whose history is ordered newest first.
func Summarize(keywords []model.TrackedKeywordHistory) *model.ProjectTrackingSummary {
	summary := &model.ProjectTrackingSummary{TotalKeywords: len(keywords)}
	var total, count int

	for _, kw := range keywords {
		latest := positionAt(kw.History, 0)
		if latest == nil {
			continue
		}
		total += *latest
		count++
		if *latest <= topPositionMax {
			summary.TopPositions++
		}
		if *latest <= firstPageMax {
			summary.FirstPage++
		}

		previous := positionAt(kw.History, 1)
		if previous == nil {
			continue
		}
		switch {
		case *latest < *previous:
			summary.Improved++
		case *latest > *previous:
			summary.Declined++
		default:
			summary.Unchanged++
		}
	}
	if count > 0 {
		summary.AvgPosition = util.Round(float64(total)/float64(count), 1)
	}

	return summary
}

// Keyword summarizes a keyword whose history is ordered newest first. Points without a position are skipped
// for the current, previous, best and worst positions.
func Keyword(kw model.TrackedKeywordHistory) model.TrackedKeywordSummary {
	var positions []int
	for _, p := range kw.History {
		if p.Position != nil {
			positions = append(positions, *p.Position)
		}
	}

	s := model.TrackedKeywordSummary{
		ID:      kw.ID,
		Keyword: kw.Keyword,
		Volume:  kw.Volume,
		Trend:   model.TrendStable,
	}
	if len(positions) > 0 {
		s.CurrentPosition = &positions[0]
		best, worst := slices.Min(positions), slices.Max(positions)
		s.BestPosition, s.WorstPosition = &best, &worst
	}
	if len(positions) > 1 {
		s.PreviousPosition = &positions[1]
		switch {
		case positions[0] < positions[1]:
			s.Trend = model.TrendUp
		case positions[0] > positions[1]:
			s.Trend = model.TrendDown
		}
	}
	if len(kw.History) > 0 {
		s.EstimatedTraffic = kw.History[0].EstimatedTraffic
	}

	return s
}

func Keywords(keywords []model.TrackedKeywordHistory) []model.TrackedKeywordSummary {
	out := make([]model.TrackedKeywordSummary, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, Keyword(kw))
	}
	return out
}

// Aggregate groups history points by UTC calendar day, averaging positions and summing traffic.
func Aggregate(points []model.RankHistoryPoint) []model.AggregatedRankPoint {
	type day struct {
		positions []int
		traffic   int
	}
	byDate := make(map[string]*day)
	for _, p := range points {
		date := p.Date.UTC().Format(time.DateOnly)
		d, ok := byDate[date]
		if !ok {
			d = &day{}
			byDate[date] = d
		}
		if p.Position != nil {
			d.positions = append(d.positions, *p.Position)
		}
		if p.EstimatedTraffic != nil {
			d.traffic += *p.EstimatedTraffic
		}
	}

	out := make([]model.AggregatedRankPoint, 0, len(byDate))
	for date, d := range byDate {
		point := model.AggregatedRankPoint{Date: date, TotalTraffic: d.traffic}
		if len(d.positions) > 0 {
			point.AvgPosition = util.Round(util.Average(d.positions), 1)
		}
		out = append(out, point)
	}
	slices.SortFunc(out, func(a, b model.AggregatedRankPoint) int {
		return cmp.Compare(a.Date, b.Date)
	})

	return out
}

func positionAt(history []model.RankHistoryPoint, i int) *int {
	if i >= len(history) {
		return nil
	}
	return history[i].Position
}
