package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindow = errors.New("invalid time bucket")

type BucketUnit string

const (
	UnitMinute BucketUnit = "minute"
	UnitHour   BucketUnit = "hour"
	UnitDay    BucketUnit = "day"
	UnitWeek   BucketUnit = "week"
	UnitMonth  BucketUnit = "month"
	UnitYear   BucketUnit = "year"
)

func (u BucketUnit) Valid() bool {
	switch u {
	case UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitYear:
		return true
	default:
		return false
	}
}

func ParseBucketUnit(s string) (BucketUnit, error) {
	u := BucketUnit(s)
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidWindow, s)
	}
	return u, nil
}

// TimeBucket is the half-open interval [Start, End) and the records it claimed.
type TimeBucket struct {
	Start   time.Time
	End     time.Time
	Records []Record
	Count   int
}

// Series is the chart payload, aligned by index.
type Series struct {
	X      []string
	Visits []int
}

type Result struct {
	Params Tally
	Chart  Series
}

// Birdseye is the week-over-week summary of one project.
type Birdseye struct {
	ThisWeek   int64   `json:"thisWeek"`
	LastWeek   int64   `json:"lastWeek"`
	PercChange float64 `json:"percChange"`
}
