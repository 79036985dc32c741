package domain

import (
	"strconv"
	"time"
)

// Record is one logged pageview or custom event as read back from the event store.
// Optional columns are nil when the client did not send them.
type Record struct {
	ID          string
	ProjectID   string
	EventName   *string
	Page        *string
	Locale      *string
	Referrer    *string
	ScreenWidth *int
	Source      *string
	Medium      *string
	Campaign    *string
	Language    *string
	Country     *string
	CreatedAt   time.Time // UTC, second precision
}

// Value returns the record's value for a tracked dimension.
// ok is false when the column is null.
func (r *Record) Value(d Dimension) (value string, ok bool) {
	switch d {
	case DimensionCountry:
		return deref(r.Country)
	case DimensionPage:
		return deref(r.Page)
	case DimensionLocale:
		return deref(r.Locale)
	case DimensionReferrer:
		return deref(r.Referrer)
	case DimensionScreenWidth:
		if r.ScreenWidth == nil {
			return "", false
		}
		return strconv.Itoa(*r.ScreenWidth), true
	case DimensionSource:
		return deref(r.Source)
	case DimensionMedium:
		return deref(r.Medium)
	case DimensionCampaign:
		return deref(r.Campaign)
	case DimensionLanguage:
		return deref(r.Language)
	default:
		return "", false
	}
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}
