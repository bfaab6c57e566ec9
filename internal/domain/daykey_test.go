package domain

import (
	"testing"
	"time"
)

func TestDayKeyFor(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)

	tests := []struct {
		name     string
		t        time.Time
		expected DayKey
	}{
		{
			name:     "midday maps to its own day",
			t:        time.Date(2024, 3, 10, 12, 0, 0, 0, zone),
			expected: "2024-03-10",
		},
		{
			name:     "local midnight belongs to the new day",
			t:        time.Date(2024, 3, 10, 0, 0, 0, 0, zone),
			expected: "2024-03-10",
		},
		{
			name:     "UTC evening is still the local previous day",
			t:        time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC),
			expected: "2024-03-10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKeyFor(tt.t, zone); got != tt.expected {
				t.Errorf("DayKeyFor() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)

	start, err := ParseDayKey("2024-03-10", zone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := DayKeyFor(start, zone); got != "2024-03-10" {
		t.Errorf("round trip key = %s, want 2024-03-10", got)
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("parsed day start is not midnight: %v", start)
	}
}

func TestDayStart(t *testing.T) {
	zone := time.FixedZone("UTC+9", 9*60*60)
	at := time.Date(2024, 6, 1, 23, 59, 59, 0, zone)

	start := DayStart(at, zone)
	if start.Hour() != 0 || start.Day() != 1 {
		t.Errorf("DayStart() = %v, want local midnight of June 1", start)
	}

	next := NextDayStart(at, zone)
	if next.Day() != 2 || next.Hour() != 0 {
		t.Errorf("NextDayStart() = %v, want local midnight of June 2", next)
	}
	if !next.After(start) {
		t.Errorf("NextDayStart not after DayStart")
	}
}
