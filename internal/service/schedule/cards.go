package schedule

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

// TimelineCard is the display form of a schedule item.
type TimelineCard struct {
	ID        string                  `json:"id"`
	Type      domain.ScheduleItemType `json:"type"`
	Time      time.Time               `json:"time"`
	Label     string                  `json:"label"`
	Completed bool                    `json:"completed"`
}

// TimelineCards renders the stored schedule for a day as display cards.
// Items that fail validation are dropped rather than surfaced as errors.
func (s *Service) TimelineCards(ctx context.Context, dateKey domain.DayKey) []TimelineCard {
	sched := s.Read(ctx, dateKey)
	if sched == nil {
		return nil
	}

	cards := make([]TimelineCard, 0, len(sched.Items))
	for _, item := range sched.Items {
		if !item.Valid() {
			continue
		}
		cards = append(cards, TimelineCard{
			ID:        item.ID,
			Type:      item.Type,
			Time:      item.Time,
			Label:     cardLabel(item),
			Completed: item.IsCompleted,
		})
	}
	return cards
}

func cardLabel(item domain.ScheduleItem) string {
	switch item.Type {
	case domain.ScheduleItemFeed:
		if item.IsCompleted && item.ActualOunces > 0 {
			return fmt.Sprintf("Fed %.1f oz", item.ActualOunces)
		}
		return fmt.Sprintf("Feed %.1f oz", item.TargetOunces)
	case domain.ScheduleItemSleep:
		return "Nap " + formatHours(item.AvgDurationHours)
	}
	return ""
}

func formatHours(hours float64) string {
	minutes := int(math.Round(hours * 60))
	h := minutes / 60
	m := minutes % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d hr %d min", h, m)
	case h > 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}
