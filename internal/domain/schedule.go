package domain

import (
	"time"
)

// ScheduleItemType classifies a projected schedule item.
type ScheduleItemType string

const (
	ScheduleItemFeed  ScheduleItemType = "feed"
	ScheduleItemSleep ScheduleItemType = "sleep"
)

func (t ScheduleItemType) String() string {
	return string(t)
}

func (t ScheduleItemType) Valid() bool {
	return t == ScheduleItemFeed || t == ScheduleItemSleep
}

// ScheduleItem is one predicted event in a day's projection schedule.
type ScheduleItem struct {
	ID               string           `json:"id"`
	Type             ScheduleItemType `json:"type"`
	Time             time.Time        `json:"time"`
	TargetOunces     float64          `json:"target_oz,omitempty"`
	AvgDurationHours float64          `json:"avg_duration_hours,omitempty"`
	IsCompleted      bool             `json:"is_completed,omitempty"`
	Matched          bool             `json:"matched,omitempty"`
	ActualOunces     float64          `json:"actual_oz,omitempty"`
}

// Valid reports whether the item carries enough to be displayed. Items
// lacking an ID, a known type, or a time are dropped from card conversion
// rather than rendered broken.
func (i ScheduleItem) Valid() bool {
	return i.ID != "" && i.Type.Valid() && !i.Time.IsZero()
}

// DailySchedule is the persisted projection for one local day.
type DailySchedule struct {
	DateKey   DayKey         `json:"date_key"`
	Items     []ScheduleItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewDailySchedule(dateKey DayKey, items []ScheduleItem) *DailySchedule {
	return &DailySchedule{
		DateKey:   dateKey,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}
}

// ScheduleUpdate is the payload broadcast whenever a schedule is written.
type ScheduleUpdate struct {
	DateKey DayKey         `json:"date_key"`
	Items   []ScheduleItem `json:"items"`
}
