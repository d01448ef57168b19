package util

import (
	"math"
	"time"
)

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

// Percent returns part as a percentage of total, 0 when total is not positive.
func Percent(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}

// Average returns the mean of values, 0 for an empty slice.
func Average[T int | int64 | float64](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// Since returns the start of the window covering the last days days.
func Since(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}
