package aggregation

import (
	"context"
	"time"

	"analytics-service/internal/analytics/core/domain"
)

// Pipeline turns the raw records of one dashboard request into chart data.
type Pipeline struct {
	// Shards is the tally parallelism; zero uses every CPU.
	Shards int
}

// Handle partitions records, tallies the buckets and builds the chart series.
// It returns a nil result and no error when there are no records at all.
func (p Pipeline) Handle(ctx context.Context, records []domain.Record, unit domain.BucketUnit, from, to, now time.Time) (*domain.Result, error) {
	if len(records) == 0 {
		return nil, nil
	}

	buckets, err := Partition(records, unit, from, to, now)
	if err != nil {
		return nil, err
	}

	params, err := AggregateConcurrent(ctx, buckets, p.Shards)
	if err != nil {
		return nil, err
	}

	return &domain.Result{
		Params: params,
		Chart:  BuildSeries(buckets),
	}, nil
}
