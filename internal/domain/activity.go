package domain

import (
	"time"
)

// ActivityKind identifies a tracked activity type for aggregation purposes.
type ActivityKind string

const (
	ActivityFeed    ActivityKind = "feed"
	ActivityNursing ActivityKind = "nursing"
	ActivitySolids  ActivityKind = "solids"
	ActivitySleep   ActivityKind = "sleep"
)

func (k ActivityKind) String() string {
	return string(k)
}

// ParseActivityKind maps a route/query value to an ActivityKind.
func ParseActivityKind(s string) (ActivityKind, bool) {
	switch ActivityKind(s) {
	case ActivityFeed, ActivityNursing, ActivitySolids, ActivitySleep:
		return ActivityKind(s), true
	}
	return "", false
}

// Feeding is a bottle feeding point event.
type Feeding struct {
	ID        string
	Timestamp time.Time
	Ounces    float64
}

// NursingSession is a nursing point event, timed per side.
type NursingSession struct {
	ID            string
	Timestamp     time.Time
	LeftDuration  time.Duration
	RightDuration time.Duration
}

// TotalDuration returns the combined nursing time across both sides.
func (n NursingSession) TotalDuration() time.Duration {
	return n.LeftDuration + n.RightDuration
}

// SolidsSession is a solids feeding point event; the number of foods offered
// is the aggregated quantity.
type SolidsSession struct {
	ID        string
	Timestamp time.Time
	Foods     []string
}

// SleepSession is an interval event. A zero EndTime marks an in-progress
// session; aggregation substitutes the current time.
type SleepSession struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
}

func (s SleepSession) InProgress() bool {
	return !s.StartTime.IsZero() && s.EndTime.IsZero()
}

// KidProfile carries the per-kid settings the projection rebuild reads.
type KidProfile struct {
	ID                string
	Name              string
	TargetDailyOunces float64
	TypicalFeedOunces float64
	TypicalNapHours   float64
}
