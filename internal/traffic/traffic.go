// Package traffic summarizes daily domain traffic.
package traffic

import (
	"math"
	"time"

	"github.com/IliaW/rank-api/internal/model"
	"github.com/IliaW/rank-api/util"
)

// Summarize totals the daily rows dated on or after since and compares them with the rows dated before
// since, which are expected to cover a window of the same length. It returns nil when the window has
// no visits.
func Summarize(rows []model.TrafficData, since time.Time) *model.TrafficSummary {
	var current, previous []model.TrafficData
	for _, r := range rows {
		if r.Date.Before(since) {
			previous = append(previous, r)
		} else {
			current = append(current, r)
		}
	}

	visits, pageViews := totals(current)
	if visits == 0 {
		return nil
	}
	previousVisits, previousPageViews := totals(previous)

	return &model.TrafficSummary{
		TotalVisits:    visits,
		TotalPageViews: pageViews,
		AvgBounceRate:  util.Round(average(current, func(d model.TrafficData) float64 { return d.BounceRate }), 1),
		AvgDuration:    int(math.Round(average(current, func(d model.TrafficData) float64 { return d.AvgDuration }))),
		TrafficSources: model.TrafficSources{
			Direct:   util.Round(average(current, func(d model.TrafficData) float64 { return d.DirectTraffic }), 1),
			Search:   util.Round(average(current, func(d model.TrafficData) float64 { return d.SearchTraffic }), 1),
			Social:   util.Round(average(current, func(d model.TrafficData) float64 { return d.SocialTraffic }), 1),
			Referral: util.Round(average(current, func(d model.TrafficData) float64 { return d.ReferralTraffic }), 1),
			Paid:     util.Round(average(current, func(d model.TrafficData) float64 { return d.PaidTraffic }), 1),
		},
		PreviousVisits:  previousVisits,
		VisitsChange:    change(visits, previousVisits),
		PageViewsChange: change(pageViews, previousPageViews),
	}
}

func totals(rows []model.TrafficData) (visits, pageViews int) {
	for _, r := range rows {
		visits += r.Visits
		pageViews += r.PageViews
	}
	return visits, pageViews
}

func average(rows []model.TrafficData, field func(model.TrafficData) float64) float64 {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = field(r)
	}
	return util.Average(values)
}

// change is the relative change in percent, nil without a baseline.
func change(current, previous int) *float64 {
	if previous == 0 {
		return nil
	}
	v := util.Round(util.Percent(float64(current-previous), float64(previous)), 1)
	return &v
}
