package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"analytics-service/internal/analytics/core/aggregation"
	"analytics-service/internal/analytics/core/domain"
	"analytics-service/internal/analytics/core/ports"
	"analytics-service/internal/analytics/core/window"
	projectdomain "analytics-service/internal/projects/core/domain"
)

var (
	ErrInvalidProjectID = errors.New("the provided Project ID (pid) is incorrect")
	ErrMissingTimeframe = errors.New("the timeframe (either from/to pair or period) has to be provided")
	ErrInvalidTimeRange = errors.New("the timeframe 'from' parameter cannot be greater than 'to'")
	ErrTooManyBuckets   = errors.New("the timeframe is too wide for the selected time bucket")
)

// MaxBuckets caps the chart length of one request. It fits a week of minutes
// and two years of hours.
const MaxBuckets = 20000

type GetAnalyticsInput struct {
	ProjectID  string
	TimeBucket string // minute | hour | day | week | month | year

	// Either From and To (ISO-8601) or Period ("7d", "4w", "3M", ...).
	From   string
	To     string
	Period string
}

type GetAnalyticsUseCase struct {
	source   ports.RecordSourcePort
	pipeline aggregation.Pipeline
	now      func() time.Time
	log      zerolog.Logger
	observe  func(unit domain.BucketUnit, took time.Duration)
}

type Option func(*options)

type options struct {
	now     func() time.Time
	log     zerolog.Logger
	shards  int
	observe func(unit domain.BucketUnit, took time.Duration)
}

// WithClock replaces time.Now, which bounds every window.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithShards sets how many goroutines tally a request's buckets.
func WithShards(n int) Option {
	return func(o *options) { o.shards = n }
}

// WithAggregationObserver is called with the bucketing time of every request.
func WithAggregationObserver(fn func(unit domain.BucketUnit, took time.Duration)) Option {
	return func(o *options) { o.observe = fn }
}

func buildOptions(opts []Option) options {
	o := options{
		now:     time.Now,
		log:     zerolog.Nop(),
		observe: func(domain.BucketUnit, time.Duration) {},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewGetAnalyticsUseCase(source ports.RecordSourcePort, opts ...Option) *GetAnalyticsUseCase {
	o := buildOptions(opts)
	return &GetAnalyticsUseCase{
		source:   source,
		pipeline: aggregation.Pipeline{Shards: o.shards},
		now:      o.now,
		log:      o.log,
		observe:  o.observe,
	}
}

// Execute validates the query, loads the project's records for the window and
// groups them into chart buckets. A nil result with a nil error means the
// project has no records in the window.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, in GetAnalyticsInput) (*domain.Result, error) {
	if !projectdomain.IsValidID(in.ProjectID) {
		return nil, ErrInvalidProjectID
	}

	unit, err := domain.ParseBucketUnit(in.TimeBucket)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	from, to, err := resolveWindow(in, now)
	if err != nil {
		return nil, err
	}

	n, err := aggregation.CountBuckets(unit, from, to, now, MaxBuckets)
	if err != nil {
		return nil, err
	}
	if n > MaxBuckets {
		return nil, fmt.Errorf("%w: more than %d %s buckets", ErrTooManyBuckets, MaxBuckets, unit)
	}

	records, err := uc.source.FetchEvents(ctx, ports.EventsFilter{
		ProjectID: in.ProjectID,
		From:      from,
		To:        to,
	})
	if err != nil {
		return nil, err
	}

	started := time.Now()
	res, err := uc.pipeline.Handle(ctx, records, unit, from, to, now)
	if err != nil {
		return nil, err
	}
	took := time.Since(started)
	uc.observe(unit, took)

	uc.log.Debug().
		Str("pid", in.ProjectID).
		Str("time_bucket", string(unit)).
		Int("records", len(records)).
		Dur("took", took).
		Msg("grouped records by time bucket")

	return res, nil
}

func resolveWindow(in GetAnalyticsInput, now time.Time) (from, to time.Time, err error) {
	switch {
	case in.From != "" && in.To != "":
		if from, err = window.ParseTimestamp(in.From); err != nil {
			return time.Time{}, time.Time{}, err
		}
		if to, err = window.ParseTimestamp(in.To); err != nil {
			return time.Time{}, time.Time{}, err
		}
		if from.After(to) {
			return time.Time{}, time.Time{}, ErrInvalidTimeRange
		}
		if to.After(now) {
			to = now.Truncate(time.Second)
		}
		return from, to, nil
	case in.Period != "":
		return window.ResolvePeriod(in.Period, now)
	default:
		return time.Time{}, time.Time{}, ErrMissingTimeframe
	}
}
