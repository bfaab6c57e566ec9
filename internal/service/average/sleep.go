package average

import (
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/bucket"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/history"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/interval"
)

// SleepProfile averages slept hours per bucket. Sleep differs from the point
// metrics: sessions are intervals that cross bucket edges and midnights, so
// each day's increments are the overlap of every normalized session with
// that day's 15-minute windows. A day is touched by every session whose span
// intersects it, not just sessions starting on it.
func SleepProfile(sessions []domain.SleepSession, todayStart, now time.Time, loc *time.Location) *Profile {
	if len(sessions) == 0 {
		return nil
	}

	historical := make(map[domain.DayKey][]float64)
	var today []float64

	for _, s := range sessions {
		end := s.EndTime
		if end.IsZero() {
			end = now
		}
		iv, ok := interval.Normalize(s.StartTime, end, now)
		if !ok {
			continue
		}

		for dayStart := domain.DayStart(iv.Start, loc); dayStart.Before(iv.End); dayStart = dayStart.AddDate(0, 0, 1) {
			switch {
			case dayStart.Before(todayStart):
				key := domain.DayKeyFor(dayStart, loc)
				if historical[key] == nil {
					historical[key] = make([]float64, bucket.SlotsPerDay)
				}
				addOverlap(historical[key], iv, dayStart)
			case dayStart.Equal(todayStart):
				if today == nil {
					today = make([]float64, bucket.SlotsPerDay)
				}
				addOverlap(today, iv, dayStart)
			}
		}
	}

	days := history.SelectRecentDays(historical, history.AverageWindowDays)

	dayCurves := make([][]float64, 0, len(days)+1)
	for _, key := range days {
		dayCurves = append(dayCurves, historical[key])
	}
	if len(days) < history.AverageWindowDays && today != nil {
		dayCurves = append(dayCurves, today)
	}

	if len(dayCurves) == 0 {
		return nil
	}

	sum := make([]float64, bucket.SlotsPerDay)
	for _, increments := range dayCurves {
		addCumulative(sum, increments)
	}
	return averaged(sum, len(dayCurves))
}

// addOverlap adds the hours of iv overlapping each 15-minute window of the
// day starting at dayStart into increments.
func addOverlap(increments []float64, iv interval.Interval, dayStart time.Time) {
	for k := 0; k < bucket.SlotsPerDay; k++ {
		winStart := bucket.WindowStart(dayStart, k)
		winEnd := bucket.WindowEnd(dayStart, k)
		if !iv.End.After(winStart) {
			break
		}
		if !iv.Start.Before(winEnd) {
			continue
		}

		start := iv.Start
		if start.Before(winStart) {
			start = winStart
		}
		end := iv.End
		if end.After(winEnd) {
			end = winEnd
		}
		if ov := end.Sub(start); ov > 0 {
			increments[k] += ov.Hours()
		}
	}
}
