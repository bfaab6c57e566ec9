package history

import (
	"testing"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

var zone = time.FixedZone("UTC-5", -5*60*60)

func feeding(t time.Time) domain.Feeding {
	return domain.Feeding{Timestamp: t, Ounces: 4}
}

func feedingAt(f domain.Feeding) time.Time {
	return f.Timestamp
}

func TestGroupByDayExcludesToday(t *testing.T) {
	todayStart := time.Date(2024, 3, 10, 0, 0, 0, 0, zone)

	events := []domain.Feeding{
		feeding(todayStart.Add(-20 * time.Hour)), // yesterday
		feeding(todayStart.Add(-2 * time.Hour)),  // yesterday evening
		feeding(todayStart),                      // today, excluded
		feeding(todayStart.Add(9 * time.Hour)),   // today, excluded
	}

	byDay := GroupByDay(events, feedingAt, todayStart, zone)

	if len(byDay) != 1 {
		t.Fatalf("expected 1 day, got %d", len(byDay))
	}
	yesterday := domain.DayKey("2024-03-09")
	if got := len(byDay[yesterday]); got != 2 {
		t.Errorf("expected 2 events on %s, got %d", yesterday, got)
	}
}

func TestGroupByDaySkipsZeroTimestamps(t *testing.T) {
	todayStart := time.Date(2024, 3, 10, 0, 0, 0, 0, zone)

	events := []domain.Feeding{
		{Ounces: 4}, // no timestamp
		feeding(todayStart.Add(-time.Hour)),
	}

	byDay := GroupByDay(events, feedingAt, todayStart, zone)
	total := 0
	for _, evs := range byDay {
		total += len(evs)
	}
	if total != 1 {
		t.Errorf("expected 1 grouped event, got %d", total)
	}
}

func TestTodayEvents(t *testing.T) {
	todayStart := time.Date(2024, 3, 10, 0, 0, 0, 0, zone)

	events := []domain.Feeding{
		feeding(todayStart.Add(-time.Minute)),               // yesterday
		feeding(todayStart.Add(8 * time.Hour)),              // today
		feeding(todayStart.Add(24*time.Hour + time.Minute)), // tomorrow
	}

	today := TodayEvents(events, feedingAt, todayStart, zone)
	if len(today) != 1 {
		t.Fatalf("expected 1 today event, got %d", len(today))
	}
}

func TestSelectRecentDays(t *testing.T) {
	byDay := map[domain.DayKey][]domain.Feeding{}
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, zone)
	for i := 0; i < 10; i++ {
		day := base.AddDate(0, 0, i)
		byDay[domain.DayKeyFor(day, zone)] = []domain.Feeding{feeding(day)}
	}

	days := SelectRecentDays(byDay, AverageWindowDays)

	if len(days) != AverageWindowDays {
		t.Fatalf("expected %d days, got %d", AverageWindowDays, len(days))
	}
	if days[0] != "2024-03-10" {
		t.Errorf("most recent day = %s, want 2024-03-10", days[0])
	}
	for i := 1; i < len(days); i++ {
		if days[i] >= days[i-1] {
			t.Errorf("days not descending at index %d: %s >= %s", i, days[i], days[i-1])
		}
	}
}

func TestSelectRecentDaysSparseHistory(t *testing.T) {
	byDay := map[domain.DayKey][]domain.Feeding{
		"2024-03-08": {feeding(time.Date(2024, 3, 8, 10, 0, 0, 0, zone))},
		"2024-03-09": {feeding(time.Date(2024, 3, 9, 10, 0, 0, 0, zone))},
	}

	days := SelectRecentDays(byDay, AverageWindowDays)
	if len(days) != 2 {
		t.Errorf("sparse history should use all days, got %d", len(days))
	}
}
