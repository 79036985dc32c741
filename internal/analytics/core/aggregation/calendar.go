package aggregation

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"analytics-service/internal/analytics/core/domain"
)

// Weeks start on Sunday, all calendar math happens in UTC.
var calendar = &now.Config{
	WeekStartDay: time.Sunday,
	TimeLocation: time.UTC,
}

// alignStart returns the first bucket start for from.
// Day, week, month and year cursors are all aligned to the start of the day;
// only the step between buckets differs.
func alignStart(from time.Time, unit domain.BucketUnit) (time.Time, error) {
	c := calendar.With(from.UTC())
	switch unit {
	case domain.UnitMinute:
		return c.BeginningOfMinute(), nil
	case domain.UnitHour:
		return c.BeginningOfHour(), nil
	case domain.UnitDay, domain.UnitWeek, domain.UnitMonth, domain.UnitYear:
		return c.BeginningOfDay(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidWindow, unit)
	}
}

// endOf returns the last instant of the unit that contains t.
func endOf(t time.Time, unit domain.BucketUnit) (time.Time, error) {
	c := calendar.With(t.UTC())
	switch unit {
	case domain.UnitMinute:
		return c.EndOfMinute(), nil
	case domain.UnitHour:
		return c.EndOfHour(), nil
	case domain.UnitDay:
		return c.EndOfDay(), nil
	case domain.UnitWeek:
		return c.EndOfWeek(), nil
	case domain.UnitMonth:
		return c.EndOfMonth(), nil
	case domain.UnitYear:
		return c.EndOfYear(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidWindow, unit)
	}
}

// step advances t by one unit. Month and year steps clamp the day of month,
// so Jan 31 + 1 month is the last day of February.
func step(t time.Time, unit domain.BucketUnit) time.Time {
	switch unit {
	case domain.UnitMinute:
		return t.Add(time.Minute)
	case domain.UnitHour:
		return t.Add(time.Hour)
	case domain.UnitDay:
		return t.AddDate(0, 0, 1)
	case domain.UnitWeek:
		return t.AddDate(0, 0, 7)
	case domain.UnitMonth:
		return addMonths(t, 1)
	case domain.UnitYear:
		return addMonths(t, 12)
	default:
		return t
	}
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := calendar.With(first).EndOfMonth().Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
