package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"analytics-service/internal/analytics/core/domain"
	"analytics-service/internal/analytics/core/ports"
	projectdomain "analytics-service/internal/projects/core/domain"
)

var (
	ErrNoProjects  = errors.New("an array of Project ID's (pids) or a Project ID (pid) has to be provided")
	ErrCountFailed = errors.New("can't process the provided PID, please try again later")
)

const week = 7 * 24 * time.Hour

type GetBirdseyeUseCase struct {
	counter ports.EventCounterPort
	cache   ports.BirdseyeCachePort // optional
	now     func() time.Time
	log     zerolog.Logger
}

// NewGetBirdseyeUseCase builds the week-over-week summary usecase.
// cache may be nil.
func NewGetBirdseyeUseCase(counter ports.EventCounterPort, cache ports.BirdseyeCachePort, opts ...Option) *GetBirdseyeUseCase {
	o := buildOptions(opts)
	return &GetBirdseyeUseCase{
		counter: counter,
		cache:   cache,
		now:     o.now,
		log:     o.log,
	}
}

// Execute returns the summary of every distinct pid. An empty pids list
// yields an empty map.
func (uc *GetBirdseyeUseCase) Execute(ctx context.Context, pids []string) (map[string]domain.Birdseye, error) {
	for _, pid := range pids {
		if !projectdomain.IsValidID(pid) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidProjectID, pid)
		}
	}

	now := uc.now().UTC().Truncate(time.Second)
	res := make(map[string]domain.Birdseye, len(pids))

	for _, pid := range pids {
		if _, done := res[pid]; done {
			continue
		}

		if uc.cache != nil {
			b, err := uc.cache.GetBirdseye(ctx, pid)
			if err == nil {
				res[pid] = b
				continue
			}
			if !errors.Is(err, ports.ErrCacheMiss) {
				uc.log.Warn().Err(err).Str("pid", pid).Msg("birdseye cache read failed")
			}
		}

		b, err := uc.compute(ctx, pid, now)
		if err != nil {
			return nil, fmt.Errorf("%w (%s): %w", ErrCountFailed, pid, err)
		}
		res[pid] = b

		if uc.cache != nil {
			if err := uc.cache.SetBirdseye(ctx, pid, b); err != nil {
				uc.log.Warn().Err(err).Str("pid", pid).Msg("birdseye cache write failed")
			}
		}
	}

	return res, nil
}

func (uc *GetBirdseyeUseCase) compute(ctx context.Context, pid string, now time.Time) (domain.Birdseye, error) {
	oneWeekAgo := now.Add(-week)
	twoWeeksAgo := oneWeekAgo.Add(-week)

	// Counts are [From, To); records are stored at second precision, so the
	// extra second keeps the current one in this week.
	thisWeek, err := uc.counter.CountEvents(ctx, ports.EventsFilter{ProjectID: pid, From: oneWeekAgo, To: now.Add(time.Second)})
	if err != nil {
		return domain.Birdseye{}, err
	}
	lastWeek, err := uc.counter.CountEvents(ctx, ports.EventsFilter{ProjectID: pid, From: twoWeeksAgo, To: oneWeekAgo})
	if err != nil {
		return domain.Birdseye{}, err
	}

	return domain.Birdseye{
		ThisWeek:   thisWeek,
		LastWeek:   lastWeek,
		PercChange: PercentageChange(lastWeek, thisWeek),
	}, nil
}

// PercentageChange returns the change from prev to curr in percent,
// rounded to two decimals.
func PercentageChange(prev, curr int64) float64 {
	if prev == 0 {
		if curr == 0 {
			return 0
		}
		return 100
	}
	change := float64(curr-prev) / float64(prev) * 100
	return math.Round(change*100) / 100
}
