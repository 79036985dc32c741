package aggregation

import (
	"slices"
	"sort"
	"time"

	"analytics-service/internal/analytics/core/domain"
)

// Partition splits records into contiguous, gap-filled buckets of one unit
// covering [from, to]. The window never extends past the unit that contains now.
//
// A record belongs to the bucket with Start <= CreatedAt < End. Every record is
// claimed by at most one bucket; records outside the window are dropped.
// Records do not need to be sorted.
func Partition(records []domain.Record, unit domain.BucketUnit, from, to, now time.Time) ([]domain.TimeBucket, error) {
	cursor, ceiling, err := bounds(unit, from, to, now)
	if err != nil {
		return nil, err
	}
	limit := ceiling.Add(time.Nanosecond)

	// pending holds the indexes of unclaimed records in time order;
	// each bucket consumes a prefix of it.
	pending := make([]int, len(records))
	for i := range pending {
		pending[i] = i
	}
	slices.SortStableFunc(pending, func(a, b int) int {
		return records[a].CreatedAt.Compare(records[b].CreatedAt)
	})
	skip := sort.Search(len(pending), func(i int) bool {
		return !records[pending[i]].CreatedAt.Before(cursor)
	})
	pending = pending[skip:]

	var buckets []domain.TimeBucket
	for cursor.Before(ceiling) {
		next := step(cursor, unit)
		end := next
		if end.After(limit) {
			end = limit
		}

		n := 0
		for n < len(pending) && records[pending[n]].CreatedAt.Before(end) {
			n++
		}
		claimed := make([]domain.Record, n)
		for i, idx := range pending[:n] {
			claimed[i] = records[idx]
		}
		pending = pending[n:]

		buckets = append(buckets, domain.TimeBucket{
			Start:   cursor,
			End:     end,
			Records: claimed,
			Count:   n,
		})
		cursor = next
	}

	return buckets, nil
}

// CountBuckets returns how many buckets Partition would build for the window,
// without touching any records. Counting stops once it passes atMost, so the
// result is at most atMost+1; atMost <= 0 counts everything.
func CountBuckets(unit domain.BucketUnit, from, to, now time.Time, atMost int) (int, error) {
	cursor, ceiling, err := bounds(unit, from, to, now)
	if err != nil {
		return 0, err
	}

	n := 0
	for cursor.Before(ceiling) {
		n++
		if atMost > 0 && n > atMost {
			break
		}
		cursor = step(cursor, unit)
	}
	return n, nil
}

// bounds returns the first bucket start and the last instant any bucket may cover.
func bounds(unit domain.BucketUnit, from, to, now time.Time) (cursor, ceiling time.Time, err error) {
	if cursor, err = alignStart(from, unit); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if ceiling, err = endOf(now, unit); err != nil {
		return time.Time{}, time.Time{}, err
	}
	toEnd, err := endOf(to, unit)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if toEnd.Before(ceiling) {
		ceiling = toEnd
	}
	return cursor, ceiling, nil
}
