package domain

import (
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey identifies a local calendar day. Grouping and averaging always work
// on local days, never UTC: a baby's schedule is inherently local-time.
type DayKey string

func (k DayKey) String() string {
	return string(k)
}

// DayKeyFor returns the key of the local calendar day containing t.
func DayKeyFor(t time.Time, loc *time.Location) DayKey {
	return DayKey(t.In(loc).Format(dayKeyLayout))
}

// ParseDayKey returns local midnight of the day the key names.
func ParseDayKey(key DayKey, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayKeyLayout, string(key), loc)
}

// DayStart returns local midnight of the day containing t.
func DayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NextDayStart returns local midnight of the day after the one containing t.
func NextDayStart(t time.Time, loc *time.Location) time.Time {
	return DayStart(t, loc).AddDate(0, 0, 1)
}
