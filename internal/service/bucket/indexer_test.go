package bucket

import (
	"testing"
	"time"
)

func TestForMinute(t *testing.T) {
	tests := []struct {
		name     string
		minute   int
		expected int
	}{
		{
			name:     "minute zero maps to bucket zero",
			minute:   0,
			expected: 0,
		},
		{
			name:     "minute one rounds up to the 15-minute mark",
			minute:   1,
			expected: 1,
		},
		{
			name:     "exact boundary stays on its own bucket",
			minute:   15,
			expected: 1,
		},
		{
			name:     "one past a boundary rounds into the next bucket",
			minute:   16,
			expected: 2,
		},
		{
			name:     "08:01 falls in the 08:15 bucket",
			minute:   8*60 + 1,
			expected: 33,
		},
		{
			name:     "last partial slot clamps to the final bucket",
			minute:   1426,
			expected: 95,
		},
		{
			name:     "end of day clamps to the final bucket",
			minute:   1440,
			expected: 95,
		},
		{
			name:     "negative input is treated as midnight",
			minute:   -10,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForMinute(tt.minute); got != tt.expected {
				t.Errorf("ForMinute(%d) = %d, want %d", tt.minute, got, tt.expected)
			}
		})
	}
}

func TestForMinuteMonotonic(t *testing.T) {
	prev := ForMinute(0)
	for m := 1; m <= 1440; m++ {
		cur := ForMinute(m)
		if cur < prev {
			t.Fatalf("ForMinute(%d) = %d < ForMinute(%d) = %d", m, cur, m-1, prev)
		}
		if cur < 0 || cur >= SlotsPerDay {
			t.Fatalf("ForMinute(%d) = %d out of range", m, cur)
		}
		prev = cur
	}
}

func TestForTime(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*60*60)

	// 08:01 local
	at := time.Date(2024, 3, 10, 8, 1, 0, 0, zone)
	if got := ForTime(at, zone); got != 33 {
		t.Errorf("ForTime(08:01) = %d, want 33", got)
	}

	// The same instant viewed from UTC must index by local clock time.
	if got := ForTime(at.UTC(), zone); got != 33 {
		t.Errorf("ForTime(08:01 as UTC instant) = %d, want 33", got)
	}
}

func TestWindowBounds(t *testing.T) {
	zone := time.FixedZone("UTC", 0)
	dayStart := time.Date(2024, 3, 10, 0, 0, 0, 0, zone)

	start := WindowStart(dayStart, 4)
	end := WindowEnd(dayStart, 4)

	if start.Hour() != 1 || start.Minute() != 0 {
		t.Errorf("WindowStart(4) = %v, want 01:00", start)
	}
	if end.Sub(start) != 15*time.Minute {
		t.Errorf("window width = %v, want 15m", end.Sub(start))
	}
}
