// Package average builds the 96-point average bucket profiles the comparison
// charts are drawn from, and the matching "today so far" cumulative totals.
//
// Every profile is the element-wise mean of per-day cumulative curves over a
// rolling window of recent complete days. Today's partial data participates
// only under the bootstrap policy: when fewer complete days exist than the
// window asks for.
package average

import (
	"math"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/bucket"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/history"
)

// Profile is an averaged daily cumulative curve. Buckets[k] is the mean
// quantity accumulated by the right edge of bucket k across DaysUsed days.
type Profile struct {
	Buckets  []float64 `json:"buckets"`
	DaysUsed int       `json:"days_used"`
}

// FinalTotal is the average full-day total, the last point of the curve.
func (p *Profile) FinalTotal() float64 {
	if p == nil || len(p.Buckets) == 0 {
		return 0
	}
	return p.Buckets[len(p.Buckets)-1]
}

// FeedProfile averages bottle ounces per bucket. Returns nil when no
// qualifying days exist.
func FeedProfile(feedings []domain.Feeding, todayStart time.Time, loc *time.Location) *Profile {
	return pointProfile(feedings, feedingTime, feedingQuantity, todayStart, loc)
}

// NursingProfile averages nursing hours per bucket.
func NursingProfile(sessions []domain.NursingSession, todayStart time.Time, loc *time.Location) *Profile {
	return pointProfile(sessions, nursingTime, nursingQuantity, todayStart, loc)
}

// SolidsProfile averages the count of foods offered per bucket.
func SolidsProfile(sessions []domain.SolidsSession, todayStart time.Time, loc *time.Location) *Profile {
	return pointProfile(sessions, solidsTime, solidsQuantity, todayStart, loc)
}

func feedingTime(f domain.Feeding) time.Time { return f.Timestamp }

func feedingQuantity(f domain.Feeding) (float64, bool) {
	return f.Ounces, finite(f.Ounces) && f.Ounces >= 0
}

func nursingTime(n domain.NursingSession) time.Time { return n.Timestamp }

func nursingQuantity(n domain.NursingSession) (float64, bool) {
	d := n.TotalDuration()
	return d.Hours(), d >= 0
}

func solidsTime(s domain.SolidsSession) time.Time { return s.Timestamp }

func solidsQuantity(s domain.SolidsSession) (float64, bool) {
	return float64(len(s.Foods)), len(s.Foods) > 0
}

// pointProfile is the shared shape for point-event metrics: group by day,
// select the window, bucket each day's quantities with the ceiling index,
// convert to cumulative sums and average. Malformed records are skipped
// per-record, never aborting the day.
func pointProfile[T any](events []T, at func(T) time.Time, quantity func(T) (float64, bool), todayStart time.Time, loc *time.Location) *Profile {
	if len(events) == 0 {
		return nil
	}

	byDay := history.GroupByDay(events, at, todayStart, loc)
	days := history.SelectRecentDays(byDay, history.AverageWindowDays)

	dayLists := make([][]T, 0, len(days)+1)
	for _, key := range days {
		dayLists = append(dayLists, byDay[key])
	}

	// Bootstrap: admit today's partial day only while history is short.
	if len(days) < history.AverageWindowDays {
		if today := history.TodayEvents(events, at, todayStart, loc); len(today) > 0 {
			dayLists = append(dayLists, today)
		}
	}

	if len(dayLists) == 0 {
		return nil
	}

	sum := make([]float64, bucket.SlotsPerDay)
	for _, list := range dayLists {
		increments := make([]float64, bucket.SlotsPerDay)
		for _, ev := range list {
			q, ok := quantity(ev)
			if !ok {
				continue
			}
			increments[bucket.ForTime(at(ev), loc)] += q
		}
		addCumulative(sum, increments)
	}

	return averaged(sum, len(dayLists))
}

// addCumulative folds one day's increment array into sum as a running total.
func addCumulative(sum, increments []float64) {
	running := 0.0
	for i, v := range increments {
		running += v
		sum[i] += running
	}
}

func averaged(sum []float64, daysUsed int) *Profile {
	if daysUsed == 0 {
		return nil
	}
	buckets := make([]float64, len(sum))
	for i, v := range sum {
		buckets[i] = v / float64(daysUsed)
	}
	return &Profile{Buckets: buckets, DaysUsed: daysUsed}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
