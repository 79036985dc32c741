package domain

import "time"

// Event is one stored pageview or custom event. Optional attributes stay nil
// when the tracker did not send them.
type Event struct {
	ID        string
	ProjectID string

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

	CreatedAt time.Time
}
