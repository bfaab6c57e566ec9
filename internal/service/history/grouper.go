// Package history groups flat activity lists into local calendar days and
// selects the window of days an average is computed over.
package history

import (
	"sort"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

// AverageWindowDays is the rolling window of historical days behind every
// average bucket profile.
const AverageWindowDays = 7

// GroupByDay buckets events by the local calendar day of their
// representative timestamp, excluding anything on or after todayStart.
// Today is never part of the historical pool at this stage; the bootstrap
// policy folds it back in separately. Events without a usable timestamp are
// skipped.
func GroupByDay[T any](events []T, at func(T) time.Time, todayStart time.Time, loc *time.Location) map[domain.DayKey][]T {
	byDay := make(map[domain.DayKey][]T)
	for _, ev := range events {
		t := at(ev)
		if t.IsZero() || !t.Before(todayStart) {
			continue
		}
		key := domain.DayKeyFor(t, loc)
		byDay[key] = append(byDay[key], ev)
	}
	return byDay
}

// TodayEvents returns the events falling on the day starting at todayStart.
func TodayEvents[T any](events []T, at func(T) time.Time, todayStart time.Time, loc *time.Location) []T {
	dayEnd := domain.NextDayStart(todayStart, loc)
	var today []T
	for _, ev := range events {
		t := at(ev)
		if t.IsZero() || t.Before(todayStart) || !t.Before(dayEnd) {
			continue
		}
		today = append(today, ev)
	}
	return today
}

// SelectRecentDays returns up to max day keys in descending order. Sparse
// history is not an error: fewer than max days means all of them are used.
func SelectRecentDays[T any](byDay map[domain.DayKey][]T, max int) []domain.DayKey {
	keys := make([]domain.DayKey, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	if len(keys) > max {
		keys = keys[:max]
	}
	return keys
}
