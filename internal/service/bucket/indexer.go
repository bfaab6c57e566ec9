// Package bucket maps clock times onto the fixed 15-minute grid every
// aggregation in this service shares.
package bucket

import (
	"time"
)

const (
	// SlotMinutes is the width of one bucket.
	SlotMinutes = 15
	// SlotsPerDay is the number of buckets covering a 24-hour day.
	SlotsPerDay = 96

	minutesPerDay = 24 * 60
)

// ForMinute maps a minute-of-day to a bucket index in [0, SlotsPerDay).
// Minutes round UP to the next 15-minute boundary, so a cumulative total
// "as of bucket k" includes everything strictly before the bucket's right
// edge. Minute 0 maps to bucket 0; the last bucket absorbs end-of-day
// overflow from the ceiling rounding.
func ForMinute(minute int) int {
	if minute < 0 {
		minute = 0
	}

	rounded := (minute + SlotMinutes - 1) / SlotMinutes * SlotMinutes
	if rounded > minutesPerDay {
		rounded = minutesPerDay
	}

	idx := rounded / SlotMinutes
	if idx >= SlotsPerDay {
		idx = SlotsPerDay - 1
	}
	return idx
}

// ForTime maps a timestamp to the bucket of its local time-of-day.
func ForTime(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return ForMinute(local.Hour()*60 + local.Minute())
}

// WindowStart returns the absolute start of bucket idx's 15-minute window
// within the day beginning at dayStart.
func WindowStart(dayStart time.Time, idx int) time.Time {
	return dayStart.Add(time.Duration(idx) * SlotMinutes * time.Minute)
}

// WindowEnd returns the exclusive end of bucket idx's window.
func WindowEnd(dayStart time.Time, idx int) time.Time {
	return WindowStart(dayStart, idx+1)
}
