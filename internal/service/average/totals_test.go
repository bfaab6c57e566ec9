package average

import (
	"math"
	"testing"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/bucket"
)

func TestFeedTotalAt(t *testing.T) {
	dayStart := todayStart

	feedings := []domain.Feeding{
		{Timestamp: dayStart.Add(6 * time.Hour), Ounces: 4},           // bucket 24
		{Timestamp: dayStart.Add(10 * time.Hour), Ounces: 5},          // bucket 40
		{Timestamp: dayStart.Add(-2 * time.Hour), Ounces: 99},         // previous day, ignored
		{Timestamp: dayStart.Add(25 * time.Hour), Ounces: 99},         // next day, ignored
		{Timestamp: dayStart.Add(7 * time.Hour), Ounces: math.Inf(1)}, // malformed, skipped
	}

	tests := []struct {
		name     string
		bucket   int
		expected float64
	}{
		{
			name:     "before any feed",
			bucket:   10,
			expected: 0,
		},
		{
			name:     "through the first feed",
			bucket:   24,
			expected: 4,
		},
		{
			name:     "between feeds",
			bucket:   39,
			expected: 4,
		},
		{
			name:     "end of day includes everything",
			bucket:   95,
			expected: 9,
		},
		{
			name:     "out-of-range bucket clamps to end of day",
			bucket:   500,
			expected: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FeedTotalAt(feedings, dayStart, tt.bucket, zone); got != tt.expected {
				t.Errorf("FeedTotalAt(%d) = %f, want %f", tt.bucket, got, tt.expected)
			}
		})
	}
}

func TestFeedTotalAtMonotonic(t *testing.T) {
	dayStart := todayStart
	feedings := []domain.Feeding{
		{Timestamp: dayStart.Add(3 * time.Hour), Ounces: 3},
		{Timestamp: dayStart.Add(9 * time.Hour), Ounces: 4},
		{Timestamp: dayStart.Add(20 * time.Hour), Ounces: 5},
	}

	prev := FeedTotalAt(feedings, dayStart, 0, zone)
	for k := 1; k < bucket.SlotsPerDay; k++ {
		cur := FeedTotalAt(feedings, dayStart, k, zone)
		if cur < prev {
			t.Fatalf("total decreased at bucket %d: %f < %f", k, cur, prev)
		}
		prev = cur
	}
}

func TestSleepTotalAt(t *testing.T) {
	dayStart := todayStart
	now := dayStart.Add(12 * time.Hour)

	sessions := []domain.SleepSession{
		// 01:00 - 03:00
		{StartTime: dayStart.Add(time.Hour), EndTime: dayStart.Add(3 * time.Hour)},
	}

	// Bucket 11 ends at 03:00.
	if got := SleepTotalAt(sessions, nil, dayStart, now, 11, zone); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("SleepTotalAt(11) = %f, want 2", got)
	}
	// Bucket 7 ends at 02:00: only half the session has elapsed.
	if got := SleepTotalAt(sessions, nil, dayStart, now, 7, zone); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("SleepTotalAt(7) = %f, want 1", got)
	}
	// Before the session starts.
	if got := SleepTotalAt(sessions, nil, dayStart, now, 2, zone); got != 0 {
		t.Errorf("SleepTotalAt(2) = %f, want 0", got)
	}
}

func TestSleepTotalAtWithActiveSession(t *testing.T) {
	dayStart := todayStart
	now := dayStart.Add(10 * time.Hour)

	active := &domain.SleepSession{StartTime: now.Add(-90 * time.Minute)}

	got := SleepTotalAt(nil, active, dayStart, now, 95, zone)
	if math.Abs(got-1.5) > 1e-9 {
		t.Errorf("active session credit = %f hours, want 1.5", got)
	}
}

func TestSleepTotalAtActiveFutureStartCorrected(t *testing.T) {
	// Start recorded "in the future" relative to now: the single-sided
	// correction pulls it back a day, so its overlap with today is the span
	// since midnight.
	dayStart := todayStart
	now := dayStart.Add(1 * time.Hour)
	active := &domain.SleepSession{StartTime: dayStart.Add(22 * time.Hour)}

	got := SleepTotalAt(nil, active, dayStart, now, 95, zone)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("corrected active session credit = %f hours, want 1", got)
	}
}

func TestSleepTotalAtMonotonic(t *testing.T) {
	dayStart := todayStart
	now := dayStart.Add(23 * time.Hour)
	sessions := []domain.SleepSession{
		{StartTime: dayStart.Add(time.Hour), EndTime: dayStart.Add(2 * time.Hour)},
		{StartTime: dayStart.Add(13 * time.Hour), EndTime: dayStart.Add(15 * time.Hour)},
	}

	prev := SleepTotalAt(sessions, nil, dayStart, now, 0, zone)
	for k := 1; k < bucket.SlotsPerDay; k++ {
		cur := SleepTotalAt(sessions, nil, dayStart, now, k, zone)
		if cur < prev-1e-12 {
			t.Fatalf("total decreased at bucket %d: %f < %f", k, cur, prev)
		}
		prev = cur
	}
}

func TestNursingAndSolidsTotals(t *testing.T) {
	dayStart := todayStart

	nursing := []domain.NursingSession{
		{Timestamp: dayStart.Add(5 * time.Hour), LeftDuration: 10 * time.Minute, RightDuration: 20 * time.Minute},
	}
	if got := NursingTotalAt(nursing, dayStart, 95, zone); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("NursingTotalAt = %f, want 0.5", got)
	}

	solids := []domain.SolidsSession{
		{Timestamp: dayStart.Add(11 * time.Hour), Foods: []string{"pear"}},
	}
	if got := SolidsTotalAt(solids, dayStart, 95, zone); got != 1 {
		t.Errorf("SolidsTotalAt = %f, want 1", got)
	}
}
