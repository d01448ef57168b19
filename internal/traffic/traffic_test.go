package traffic

import (
	"testing"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var since = time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

func day(offset, visits, pageViews int, bounce float64) model.TrafficData {
	return model.TrafficData{
		Domain:          "example.com",
		Date:            since.AddDate(0, 0, offset),
		Visits:          visits,
		PageViews:       pageViews,
		BounceRate:      bounce,
		AvgDuration:     100,
		DirectTraffic:   20,
		SearchTraffic:   50,
		SocialTraffic:   10,
		ReferralTraffic: 15,
		PaidTraffic:     5,
	}
}

func TestSummarize(t *testing.T) {
	rows := []model.TrafficData{
		day(-2, 400, 900, 60),
		day(-1, 600, 1100, 60),
		day(0, 500, 1000, 40.5),
		day(1, 700, 1500, 41),
	}
	rows[3].AvgDuration = 131

	got := Summarize(rows, since)

	require.NotNil(t, got)
	assert.Equal(t, 1200, got.TotalVisits)
	assert.Equal(t, 2500, got.TotalPageViews)
	assert.Equal(t, 40.8, got.AvgBounceRate)
	assert.Equal(t, 116, got.AvgDuration)
	assert.Equal(t, model.TrafficSources{Direct: 20, Search: 50, Social: 10, Referral: 15, Paid: 5}, got.TrafficSources)
	assert.Equal(t, 1000, got.PreviousVisits)
	require.NotNil(t, got.VisitsChange)
	assert.Equal(t, 20.0, *got.VisitsChange)
	require.NotNil(t, got.PageViewsChange)
	assert.Equal(t, 25.0, *got.PageViewsChange)
}

func TestSummarize_NoBaseline(t *testing.T) {
	got := Summarize([]model.TrafficData{day(0, 10, 20, 50)}, since)

	require.NotNil(t, got)
	assert.Nil(t, got.VisitsChange)
	assert.Nil(t, got.PageViewsChange)
}

func TestSummarize_NoVisits(t *testing.T) {
	assert.Nil(t, Summarize(nil, since))
	assert.Nil(t, Summarize([]model.TrafficData{day(-1, 300, 400, 50), day(0, 0, 0, 0)}, since))
}
