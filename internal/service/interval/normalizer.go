// Package interval corrects raw sleep session timestamps for day-boundary
// recording artifacts. A session logged just after midnight for a nap that
// started the previous evening can carry a start time that, read naively,
// sits hours in the future.
package interval

import (
	"time"
)

// FutureStartSlack is how far in the future a start time may sit before it
// is treated as belonging to the previous day.
const FutureStartSlack = 3 * time.Hour

const day = 24 * time.Hour

// Interval is a normalized sleep span with Start <= End.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Normalize corrects a raw start/end pair. If the start is more than
// FutureStartSlack past now it is pulled back a day; if the end still
// precedes the start, the start is pulled back one more day. Pairs that
// remain inverted after both corrections are unrecoverable and rejected.
func Normalize(start, end, now time.Time) (Interval, bool) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, false
	}

	if start.After(now.Add(FutureStartSlack)) {
		start = start.Add(-day)
	}
	if end.Before(start) {
		start = start.Add(-day)
	}
	if end.Before(start) {
		return Interval{}, false
	}

	return Interval{Start: start, End: end}, true
}

// NormalizeStart is the single-sided correction for an in-progress session:
// there is no end to validate against, so only the future-start rollback
// applies.
func NormalizeStart(start, now time.Time) time.Time {
	if start.After(now.Add(FutureStartSlack)) {
		return start.Add(-day)
	}
	return start
}
