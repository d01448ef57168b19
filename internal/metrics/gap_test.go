package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRow(rows []ViewRow, kind string) (ViewRow, bool) {
	for _, r := range rows {
		if r.Tags["kind"] == kind {
			return r, true
		}
	}
	return ViewRow{}, false
}

func TestRecordGap(t *testing.T) {
	require.NoError(t, Register())
	defer Unregister()

	RecordGap(context.Background(), KindKeyword, time.Now(), 12)
	RecordGap(context.Background(), KindKeyword, time.Now(), 3)
	RecordGap(context.Background(), KindBacklink, time.Now(), 7)

	snapshot, err := Snapshot()
	require.NoError(t, err)

	count, ok := findRow(snapshot[GapCountView.Name], KindKeyword)
	require.True(t, ok)
	assert.Equal(t, int64(2), count.Count)

	sum, ok := findRow(snapshot[GapResultsView.Name], KindKeyword)
	require.True(t, ok)
	assert.Equal(t, float64(15), sum.Sum)

	latency, ok := findRow(snapshot[GapLatencyView.Name], KindBacklink)
	require.True(t, ok)
	assert.Equal(t, int64(1), latency.Count)
}
