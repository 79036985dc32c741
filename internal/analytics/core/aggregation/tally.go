package aggregation

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"analytics-service/internal/analytics/core/domain"
)

// Aggregate counts every tracked dimension value over all bucketed records.
// Null values are skipped.
func Aggregate(buckets []domain.TimeBucket) domain.Tally {
	t := domain.NewTally()
	for i := range buckets {
		tallyBucket(t, &buckets[i])
	}
	return t
}

// AggregateConcurrent gives the same result as Aggregate but tallies
// contiguous shards of buckets in parallel and merges them afterwards.
// shards <= 0 means one shard per available CPU.
func AggregateConcurrent(ctx context.Context, buckets []domain.TimeBucket, shards int) (domain.Tally, error) {
	if shards <= 0 {
		shards = runtime.GOMAXPROCS(0)
	}
	if shards > len(buckets) {
		shards = len(buckets)
	}
	if shards <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Aggregate(buckets), nil
	}

	partial := make([]domain.Tally, shards)
	size := (len(buckets) + shards - 1) / shards

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < shards; i++ {
		i := i
		lo := i * size
		hi := min(lo+size, len(buckets))
		if lo >= hi {
			partial[i] = domain.NewTally()
			continue
		}
		g.Go(func() error {
			t := domain.NewTally()
			for j := lo; j < hi; j++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				tallyBucket(t, &buckets[j])
			}
			partial[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := domain.NewTally()
	for _, t := range partial {
		res.Merge(t)
	}
	return res, nil
}

func tallyBucket(t domain.Tally, b *domain.TimeBucket) {
	for i := range b.Records {
		rec := &b.Records[i]
		for _, d := range domain.TrackedDimensions {
			if v, ok := rec.Value(d); ok {
				t[d][v]++
			}
		}
	}
}
