// Package window turns the dashboard's timeframe parameters into a UTC range.
package window

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidPeriod    = errors.New("invalid period")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Layouts accepted for from/to, tried in order. Values without a zone are UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// ResolvePeriod resolves a relative period such as "7d" or "3M" to the
// range [now - period, now]. Units: m minute, h hour, d day, w week, M month, y year.
func ResolvePeriod(period string, now time.Time) (from, to time.Time, err error) {
	if len(period) < 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	n, err := strconv.Atoi(period[:len(period)-1])
	if err != nil || n <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	to = now.UTC().Truncate(time.Second)
	switch period[len(period)-1] {
	case 'm':
		from = to.Add(-time.Duration(n) * time.Minute)
	case 'h':
		from = to.Add(-time.Duration(n) * time.Hour)
	case 'd':
		from = to.AddDate(0, 0, -n)
	case 'w':
		from = to.AddDate(0, 0, -7*n)
	case 'M':
		from = to.AddDate(0, -n, 0)
	case 'y':
		from = to.AddDate(-n, 0, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	return from, to, nil
}
