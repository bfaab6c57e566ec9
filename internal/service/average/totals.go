package average

import (
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/bucket"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/interval"
)

// The TotalAt functions answer "how much had accumulated by bucket k on this
// day", used to plot today's running line against the average profile.

// FeedTotalAt sums ounces through targetBucket (inclusive) for the day
// beginning at dayStart.
func FeedTotalAt(feedings []domain.Feeding, dayStart time.Time, targetBucket int, loc *time.Location) float64 {
	return pointTotalAt(feedings, feedingTime, feedingQuantity, dayStart, targetBucket, loc)
}

// NursingTotalAt sums nursing hours through targetBucket for the day.
func NursingTotalAt(sessions []domain.NursingSession, dayStart time.Time, targetBucket int, loc *time.Location) float64 {
	return pointTotalAt(sessions, nursingTime, nursingQuantity, dayStart, targetBucket, loc)
}

// SolidsTotalAt counts foods offered through targetBucket for the day.
func SolidsTotalAt(sessions []domain.SolidsSession, dayStart time.Time, targetBucket int, loc *time.Location) float64 {
	return pointTotalAt(sessions, solidsTime, solidsQuantity, dayStart, targetBucket, loc)
}

func pointTotalAt[T any](events []T, at func(T) time.Time, quantity func(T) (float64, bool), dayStart time.Time, targetBucket int, loc *time.Location) float64 {
	targetBucket = clampBucket(targetBucket)
	dayEnd := domain.NextDayStart(dayStart, loc)

	total := 0.0
	for _, ev := range events {
		t := at(ev)
		if t.IsZero() || t.Before(dayStart) || !t.Before(dayEnd) {
			continue
		}
		q, ok := quantity(ev)
		if !ok {
			continue
		}
		if bucket.ForTime(t, loc) <= targetBucket {
			total += q
		}
	}
	return total
}

// SleepTotalAt sums slept hours through targetBucket for the day beginning
// at dayStart. An in-progress session, if supplied, contributes its open
// [start, now) span after a single-sided start correction, so a live nap
// earns partial credit.
func SleepTotalAt(sessions []domain.SleepSession, active *domain.SleepSession, dayStart, now time.Time, targetBucket int, loc *time.Location) float64 {
	cutoff := bucket.WindowEnd(dayStart, clampBucket(targetBucket))

	total := 0.0
	for _, s := range sessions {
		end := s.EndTime
		if end.IsZero() {
			end = now
		}
		iv, ok := interval.Normalize(s.StartTime, end, now)
		if !ok {
			continue
		}
		total += clampedOverlap(iv, dayStart, cutoff)
	}

	if active != nil && !active.StartTime.IsZero() {
		start := interval.NormalizeStart(active.StartTime, now)
		if start.Before(now) {
			total += clampedOverlap(interval.Interval{Start: start, End: now}, dayStart, cutoff)
		}
	}

	return total
}

func clampedOverlap(iv interval.Interval, windowStart, windowEnd time.Time) float64 {
	start := iv.Start
	if start.Before(windowStart) {
		start = windowStart
	}
	end := iv.End
	if end.After(windowEnd) {
		end = windowEnd
	}
	if ov := end.Sub(start); ov > 0 {
		return ov.Hours()
	}
	return 0
}

func clampBucket(k int) int {
	if k < 0 {
		return 0
	}
	if k >= bucket.SlotsPerDay {
		return bucket.SlotsPerDay - 1
	}
	return k
}
