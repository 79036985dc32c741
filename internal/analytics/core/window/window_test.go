package window_test

import (
	"errors"
	"testing"
	"time"

	"analytics-service/internal/analytics/core/window"
)

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, 3, 31, 15, 4, 5, 999, time.UTC)
	to := time.Date(2024, 3, 31, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		period string
		from   time.Time
	}{
		{"30m", time.Date(2024, 3, 31, 14, 34, 5, 0, time.UTC)},
		{"1h", time.Date(2024, 3, 31, 14, 4, 5, 0, time.UTC)},
		{"7d", time.Date(2024, 3, 24, 15, 4, 5, 0, time.UTC)},
		{"1w", time.Date(2024, 3, 24, 15, 4, 5, 0, time.UTC)},
		{"4w", time.Date(2024, 3, 3, 15, 4, 5, 0, time.UTC)},
		{"3M", time.Date(2023, 12, 31, 15, 4, 5, 0, time.UTC)},
		{"2y", time.Date(2022, 3, 31, 15, 4, 5, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			from, gotTo, err := window.ResolvePeriod(tt.period, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !from.Equal(tt.from) {
				t.Fatalf("expected from=%v, got %v", tt.from, from)
			}
			if !gotTo.Equal(to) {
				t.Fatalf("expected to=%v, got %v", to, gotTo)
			}
		})
	}
}

func TestResolvePeriod_Invalid(t *testing.T) {
	for _, p := range []string{"", "d", "0d", "-1d", "7x", "sevend", "7"} {
		t.Run(p, func(t *testing.T) {
			_, _, err := window.ResolvePeriod(p, time.Now())
			if !errors.Is(err, window.ErrInvalidPeriod) {
				t.Fatalf("expected ErrInvalidPeriod, got %v", err)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, s := range []string{
		"2024-01-02T03:04:05Z",
		"2024-01-02T05:04:05+02:00",
		"2024-01-02 03:04:05",
		"2024-01-02T03:04:05",
	} {
		got, err := window.ParseTimestamp(s)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: expected %v, got %v", s, want, got)
		}
	}

	day, err := window.ParseTimestamp("2024-01-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", day)
	}

	if _, err := window.ParseTimestamp("yesterday"); !errors.Is(err, window.ErrInvalidTimestamp) {
		t.Fatalf("expected ErrInvalidTimestamp, got %v", err)
	}
}
