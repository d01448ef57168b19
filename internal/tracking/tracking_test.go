package tracking

import (
	"testing"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(v int) *int { return &v }

func history(positions ...*int) []model.RankHistoryPoint {
	start := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	out := make([]model.RankHistoryPoint, len(positions))
	for i, p := range positions {
		out[i] = model.RankHistoryPoint{Date: start.AddDate(0, 0, -i), Position: p}
	}
	return out
}

func TestSummarize(t *testing.T) {
	keywords := []model.TrackedKeywordHistory{
		{ID: "improved", History: history(pos(2), pos(5))},
		{ID: "declined", History: history(pos(12), pos(8))},
		{ID: "unchanged", History: history(pos(7), pos(7))},
		{ID: "single", History: history(pos(1))},
		{ID: "unranked", History: history(nil, pos(4))},
		{ID: "empty"},
	}

	s := Summarize(keywords)

	assert.Equal(t, 6, s.TotalKeywords)
	assert.Equal(t, 1, s.Improved)
	assert.Equal(t, 1, s.Declined)
	assert.Equal(t, 1, s.Unchanged)
	assert.Equal(t, 2, s.TopPositions)
	assert.Equal(t, 3, s.FirstPage)
	// (2 + 12 + 7 + 1) / 4
	assert.Equal(t, 5.5, s.AvgPosition)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalKeywords)
	assert.Equal(t, 0.0, s.AvgPosition)
}

func TestSummarize_RoundsAverage(t *testing.T) {
	s := Summarize([]model.TrackedKeywordHistory{
		{History: history(pos(1))},
		{History: history(pos(2))},
		{History: history(pos(2))},
	})
	assert.Equal(t, 1.7, s.AvgPosition)
}

func TestKeyword(t *testing.T) {
	traffic := 340
	h := history(pos(4), nil, pos(6), pos(3), pos(9))
	h[0].EstimatedTraffic = &traffic

	s := Keyword(model.TrackedKeywordHistory{ID: "t1", Keyword: "seo tools", Volume: 9000, History: h})

	require.NotNil(t, s.CurrentPosition)
	assert.Equal(t, 4, *s.CurrentPosition)
	assert.Equal(t, 6, *s.PreviousPosition)
	assert.Equal(t, 3, *s.BestPosition)
	assert.Equal(t, 9, *s.WorstPosition)
	assert.Equal(t, 340, *s.EstimatedTraffic)
	assert.Equal(t, model.TrendUp, s.Trend)
}

func TestKeyword_Trends(t *testing.T) {
	assert.Equal(t, model.TrendDown, Keyword(model.TrackedKeywordHistory{History: history(pos(8), pos(3))}).Trend)
	assert.Equal(t, model.TrendStable, Keyword(model.TrackedKeywordHistory{History: history(pos(3), pos(3))}).Trend)
	assert.Equal(t, model.TrendStable, Keyword(model.TrackedKeywordHistory{History: history(pos(3))}).Trend)

	none := Keyword(model.TrackedKeywordHistory{History: history(nil, nil)})
	assert.Nil(t, none.CurrentPosition)
	assert.Nil(t, none.BestPosition)
	assert.Equal(t, model.TrendStable, none.Trend)
}

func TestAggregate(t *testing.T) {
	day1 := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	t100, t50 := 100, 50
	points := []model.RankHistoryPoint{
		{Date: day2, Position: pos(4), EstimatedTraffic: &t50},
		{Date: day1, Position: pos(1), EstimatedTraffic: &t100},
		{Date: day1.Add(time.Hour), Position: pos(2), EstimatedTraffic: &t50},
		{Date: day2, Position: nil},
		{Date: day1.AddDate(0, 0, 2)},
	}

	got := Aggregate(points)

	require.Len(t, got, 3)
	assert.Equal(t, model.AggregatedRankPoint{Date: "2026-10-01", AvgPosition: 1.5, TotalTraffic: 150}, got[0])
	assert.Equal(t, model.AggregatedRankPoint{Date: "2026-10-02", AvgPosition: 4, TotalTraffic: 50}, got[1])
	assert.Equal(t, model.AggregatedRankPoint{Date: "2026-10-03"}, got[2])
}
