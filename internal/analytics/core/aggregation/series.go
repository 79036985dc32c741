package aggregation

import "analytics-service/internal/analytics/core/domain"

// TimeFrameLayout is how bucket starts are rendered on the chart axis.
const TimeFrameLayout = "2006-01-02 15:04:05"

// BuildSeries returns one chart point per bucket, in bucket order.
func BuildSeries(buckets []domain.TimeBucket) domain.Series {
	s := domain.Series{
		X:      make([]string, len(buckets)),
		Visits: make([]int, len(buckets)),
	}
	for i, b := range buckets {
		s.X[i] = b.Start.UTC().Format(TimeFrameLayout)
		s.Visits[i] = b.Count
	}
	return s
}
