// Package metrics records gap computation statistics with OpenCensus.
package metrics

import (
	"context"
	"log/slog"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

const (
	KindKeyword  = "keyword"
	KindBacklink = "backlink"
)

var (
	GapLatency = stats.Float64("rank_api/gap/latency", "Time spent computing a gap report",
		stats.UnitMilliseconds)
	GapResults = stats.Int64("rank_api/gap/results", "Number of classified rows in a gap report",
		stats.UnitDimensionless)

	KeyKind = tag.MustNewKey("kind")

	GapLatencyView = &view.View{
		Name:        "rank_api/gap/latency",
		Measure:     GapLatency,
		Description: "Distribution of gap computation latency",
		Aggregation: view.Distribution(5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000),
		TagKeys:     []tag.Key{KeyKind},
	}
	GapCountView = &view.View{
		Name:        "rank_api/gap/count",
		Measure:     GapResults,
		Description: "Number of computed gap reports",
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{KeyKind},
	}
	GapResultsView = &view.View{
		Name:        "rank_api/gap/results",
		Measure:     GapResults,
		Description: "Total classified rows",
		Aggregation: view.Sum(),
		TagKeys:     []tag.Key{KeyKind},
	}
)

func Register() error {
	return view.Register(GapLatencyView, GapCountView, GapResultsView)
}

func Unregister() {
	view.Unregister(GapLatencyView, GapCountView, GapResultsView)
}

// RecordGap records a finished gap computation of the given kind.
func RecordGap(ctx context.Context, kind string, started time.Time, results int) {
	ctx, err := tag.New(ctx, tag.Upsert(KeyKind, kind))
	if err != nil {
		slog.Error("failed to tag gap metrics.", slog.String("err", err.Error()))
		return
	}
	elapsed := float64(time.Since(started)) / float64(time.Millisecond)
	stats.Record(ctx, GapLatency.M(elapsed), GapResults.M(int64(results)))
}

type ViewRow struct {
	Tags  map[string]string `json:"tags"`
	Count int64             `json:"count,omitempty"`
	Sum   float64           `json:"sum,omitempty"`
	Mean  float64           `json:"mean,omitempty"`
}

// Snapshot returns the current aggregated rows of every registered gap view, keyed by view name.
func Snapshot() (map[string][]ViewRow, error) {
	out := make(map[string][]ViewRow)
	for _, v := range []*view.View{GapLatencyView, GapCountView, GapResultsView} {
		rows, err := view.RetrieveData(v.Name)
		if err != nil {
			return nil, err
		}
		out[v.Name] = toViewRows(rows)
	}

	return out, nil
}

func toViewRows(rows []*view.Row) []ViewRow {
	out := make([]ViewRow, 0, len(rows))
	for _, r := range rows {
		vr := ViewRow{Tags: make(map[string]string, len(r.Tags))}
		for _, t := range r.Tags {
			vr.Tags[t.Key.Name()] = t.Value
		}
		switch data := r.Data.(type) {
		case *view.CountData:
			vr.Count = data.Value
		case *view.SumData:
			vr.Sum = data.Value
		case *view.DistributionData:
			vr.Count = data.Count
			vr.Mean = data.Mean
		}
		out = append(out, vr)
	}

	return out
}
