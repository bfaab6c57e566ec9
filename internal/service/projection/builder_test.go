package projection

import (
	"math"
	"testing"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/average"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/bucket"
)

var zone = time.FixedZone("UTC-5", -5*60*60)

var dayStart = time.Date(2024, 3, 10, 0, 0, 0, 0, zone)

// stepProfile builds a cumulative curve that jumps by the given amounts at
// the given bucket indexes.
func stepProfile(steps map[int]float64, daysUsed int) *average.Profile {
	buckets := make([]float64, bucket.SlotsPerDay)
	running := 0.0
	for k := 0; k < bucket.SlotsPerDay; k++ {
		running += steps[k]
		buckets[k] = running
	}
	return &average.Profile{Buckets: buckets, DaysUsed: daysUsed}
}

func TestBuildFeedItems(t *testing.T) {
	b := NewBuilder(zone, 0)

	// Historical pattern: 4oz around 08:00 (bucket 32), 4oz around 15:00
	// (bucket 60).
	in := Input{
		DayStart:    dayStart,
		FeedProfile: stepProfile(map[int]float64{32: 4, 60: 4}, 7),
	}

	items := b.Build(in)
	if len(items) != 2 {
		t.Fatalf("expected 2 feed items, got %d", len(items))
	}

	first, second := items[0], items[1]
	if first.Type != domain.ScheduleItemFeed || second.Type != domain.ScheduleItemFeed {
		t.Fatalf("expected feed items, got %s / %s", first.Type, second.Type)
	}
	if !first.Time.Equal(dayStart.Add(8 * time.Hour)) {
		t.Errorf("first feed at %v, want 08:00", first.Time)
	}
	if !second.Time.Equal(dayStart.Add(15 * time.Hour)) {
		t.Errorf("second feed at %v, want 15:00", second.Time)
	}
	if first.TargetOunces != DefaultFeedOunces {
		t.Errorf("target = %f, want default %f", first.TargetOunces, DefaultFeedOunces)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Errorf("items need distinct non-empty IDs")
	}
}

func TestBuildFeedItemsUsesKidSettings(t *testing.T) {
	b := NewBuilder(zone, 0)

	in := Input{
		DayStart:    dayStart,
		Kid:         &domain.KidProfile{TypicalFeedOunces: 5, TargetDailyOunces: 10},
		FeedProfile: stepProfile(map[int]float64{32: 4, 60: 4}, 7),
	}

	items := b.Build(in)
	if len(items) != 2 {
		t.Fatalf("expected 2 feed items at 5oz each toward 10oz, got %d", len(items))
	}
	for _, it := range items {
		if it.TargetOunces != 5 {
			t.Errorf("target = %f, want 5", it.TargetOunces)
		}
	}
}

func TestBuildMatchesActualFeedings(t *testing.T) {
	b := NewBuilder(zone, 0)

	in := Input{
		DayStart:    dayStart,
		FeedProfile: stepProfile(map[int]float64{32: 4}, 7),
		TodayFeedings: []domain.Feeding{
			{Timestamp: dayStart.Add(8*time.Hour + 10*time.Minute), Ounces: 3.5},
		},
	}

	items := b.Build(in)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].Matched || !items[0].IsCompleted {
		t.Errorf("feed within tolerance should be matched and completed")
	}
	if items[0].ActualOunces != 3.5 {
		t.Errorf("actual = %f, want 3.5", items[0].ActualOunces)
	}
}

func TestBuildSleepItems(t *testing.T) {
	b := NewBuilder(zone, 0)

	// A solid hour-long nap around 09:00: buckets 36-39 fully slept.
	steps := map[int]float64{36: 0.25, 37: 0.25, 38: 0.25, 39: 0.25}
	in := Input{
		DayStart:     dayStart,
		SleepProfile: stepProfile(steps, 7),
	}

	items := b.Build(in)
	if len(items) != 1 {
		t.Fatalf("expected 1 sleep item, got %d", len(items))
	}
	it := items[0]
	if it.Type != domain.ScheduleItemSleep {
		t.Fatalf("expected sleep item, got %s", it.Type)
	}
	if !it.Time.Equal(dayStart.Add(9 * time.Hour)) {
		t.Errorf("nap at %v, want 09:00", it.Time)
	}
	if math.Abs(it.AvgDurationHours-1.0) > 1e-9 {
		t.Errorf("nap duration = %f, want 1", it.AvgDurationHours)
	}
}

func TestBuildSleepItemsFloorsAtTypicalNap(t *testing.T) {
	b := NewBuilder(zone, 0)

	// Half-slept buckets 36-37 average out to a 0.25h run, shorter than this
	// kid's usual nap; the typical length wins.
	in := Input{
		DayStart:     dayStart,
		Kid:          &domain.KidProfile{TypicalNapHours: 1.5},
		SleepProfile: stepProfile(map[int]float64{36: 0.125, 37: 0.125}, 7),
	}

	items := b.Build(in)
	if len(items) != 1 {
		t.Fatalf("expected 1 sleep item, got %d", len(items))
	}
	if math.Abs(items[0].AvgDurationHours-1.5) > 1e-9 {
		t.Errorf("nap duration = %f, want typical 1.5", items[0].AvgDurationHours)
	}

	// A longer historical run is kept as-is.
	in.SleepProfile = stepProfile(map[int]float64{36: 0.25, 37: 0.25, 38: 0.25, 39: 0.25, 40: 0.25, 41: 0.25, 42: 0.25, 43: 0.25}, 7)
	items = b.Build(in)
	if len(items) != 1 {
		t.Fatalf("expected 1 sleep item, got %d", len(items))
	}
	if math.Abs(items[0].AvgDurationHours-2.0) > 1e-9 {
		t.Errorf("nap duration = %f, want averaged 2", items[0].AvgDurationHours)
	}
}

func TestBuildSkipsNoiseNaps(t *testing.T) {
	b := NewBuilder(zone, 0)

	// A single bucket barely over threshold but under the minimum nap length
	// is averaging noise.
	in := Input{
		DayStart:     dayStart,
		SleepProfile: stepProfile(map[int]float64{40: 0.13}, 7),
	}

	if items := b.Build(in); len(items) != 0 {
		t.Errorf("expected no items for sub-minimum nap, got %d", len(items))
	}
}

func TestBuildNilProfiles(t *testing.T) {
	b := NewBuilder(zone, 0)
	if items := b.Build(Input{DayStart: dayStart}); len(items) != 0 {
		t.Errorf("expected no items without profiles, got %d", len(items))
	}
}

func TestBuildSortsItemsByTime(t *testing.T) {
	b := NewBuilder(zone, 0)

	in := Input{
		DayStart:     dayStart,
		FeedProfile:  stepProfile(map[int]float64{60: 4}, 7),
		SleepProfile: stepProfile(map[int]float64{36: 0.25, 37: 0.25}, 7),
	}

	items := b.Build(in)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Time.Before(items[1].Time) {
		t.Errorf("items not sorted: %v then %v", items[0].Time, items[1].Time)
	}
}
