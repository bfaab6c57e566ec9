// Package projection rebuilds a day's predicted feed/sleep schedule from the
// historical average curves.
package projection

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/average"
	"github.com/arlebowski/Tiny-Time-sub003/internal/service/bucket"
)

const (
	// DefaultFeedOunces is assumed per feed when the kid profile carries no
	// typical feed size.
	DefaultFeedOunces = 4.0

	// DefaultMatchTolerance pairs a projected item with an actual event when
	// they sit within this distance of each other.
	DefaultMatchTolerance = 45 * time.Minute

	// minNapHours drops projected naps shorter than one bucket's worth of
	// sleep; they are averaging noise, not a pattern.
	minNapHours = 0.25

	// napBucketThresholdHours is the per-bucket average sleep above which a
	// bucket counts as part of a habitual nap window (half a bucket slept).
	napBucketThresholdHours = 0.125
)

type Builder struct {
	loc       *time.Location
	tolerance time.Duration
}

func NewBuilder(loc *time.Location, tolerance time.Duration) *Builder {
	if tolerance <= 0 {
		tolerance = DefaultMatchTolerance
	}
	return &Builder{loc: loc, tolerance: tolerance}
}

// Input carries everything one rebuild reads. Profiles may be nil when
// history is insufficient; the corresponding items are simply absent.
type Input struct {
	DayStart      time.Time
	Kid           *domain.KidProfile
	FeedProfile   *average.Profile
	SleepProfile  *average.Profile
	TodayFeedings []domain.Feeding
	TodaySleeps   []domain.SleepSession
}

// Build derives the day's projected items and pairs them with today's actual
// events. The result is sorted by time.
func (b *Builder) Build(in Input) []domain.ScheduleItem {
	items := b.feedItems(in)
	items = append(items, b.sleepItems(in)...)

	sort.Slice(items, func(i, j int) bool { return items[i].Time.Before(items[j].Time) })
	return items
}

// feedItems places one projected feed each time the average cumulative curve
// crosses another typical-feed-size multiple.
func (b *Builder) feedItems(in Input) []domain.ScheduleItem {
	if in.FeedProfile == nil || in.FeedProfile.FinalTotal() <= 0 {
		return nil
	}

	perFeed := DefaultFeedOunces
	if in.Kid != nil && in.Kid.TypicalFeedOunces > 0 {
		perFeed = in.Kid.TypicalFeedOunces
	}

	dailyTarget := in.FeedProfile.FinalTotal()
	if in.Kid != nil && in.Kid.TargetDailyOunces > 0 {
		dailyTarget = in.Kid.TargetDailyOunces
	}

	// Scale the historical curve toward the configured daily target so a
	// deliberately increased target yields more projected feeds.
	scale := dailyTarget / in.FeedProfile.FinalTotal()

	var items []domain.ScheduleItem
	k := 0
	for threshold := perFeed; threshold <= dailyTarget+1e-9; threshold += perFeed {
		for k < len(in.FeedProfile.Buckets) && in.FeedProfile.Buckets[k]*scale < threshold-1e-9 {
			k++
		}
		if k >= len(in.FeedProfile.Buckets) {
			break
		}

		item := domain.ScheduleItem{
			ID:           uuid.NewString(),
			Type:         domain.ScheduleItemFeed,
			Time:         bucket.WindowStart(in.DayStart, k),
			TargetOunces: perFeed,
		}
		b.matchFeed(&item, in.TodayFeedings)
		items = append(items, item)
	}
	return items
}

// sleepItems finds habitual nap windows: runs of buckets whose average slept
// time clears the threshold.
func (b *Builder) sleepItems(in Input) []domain.ScheduleItem {
	if in.SleepProfile == nil {
		return nil
	}

	typicalNap := 0.0
	if in.Kid != nil && in.Kid.TypicalNapHours > 0 {
		typicalNap = in.Kid.TypicalNapHours
	}

	var items []domain.ScheduleItem
	runStart := -1
	runHours := 0.0

	flush := func(endIdx int) {
		if runStart < 0 {
			return
		}
		if runHours >= minNapHours {
			// The averaged run understates a habitual nap whenever part of
			// the window lacks history, so the kid's typical nap length acts
			// as a floor on the projected duration.
			duration := runHours
			if duration < typicalNap {
				duration = typicalNap
			}
			item := domain.ScheduleItem{
				ID:               uuid.NewString(),
				Type:             domain.ScheduleItemSleep,
				Time:             bucket.WindowStart(in.DayStart, runStart),
				AvgDurationHours: duration,
			}
			b.matchSleep(&item, in.TodaySleeps)
			items = append(items, item)
		}
		runStart = -1
		runHours = 0
	}

	prev := 0.0
	for k, cum := range in.SleepProfile.Buckets {
		inc := cum - prev
		prev = cum
		if inc >= napBucketThresholdHours {
			if runStart < 0 {
				runStart = k
			}
			runHours += inc
			continue
		}
		flush(k)
	}
	flush(len(in.SleepProfile.Buckets))

	return items
}

func (b *Builder) matchFeed(item *domain.ScheduleItem, feedings []domain.Feeding) {
	for _, f := range feedings {
		if f.Timestamp.IsZero() {
			continue
		}
		if absDuration(f.Timestamp.Sub(item.Time)) <= b.tolerance {
			item.Matched = true
			item.IsCompleted = true
			item.ActualOunces = f.Ounces
			return
		}
	}
}

func (b *Builder) matchSleep(item *domain.ScheduleItem, sleeps []domain.SleepSession) {
	for _, s := range sleeps {
		if s.StartTime.IsZero() {
			continue
		}
		if absDuration(s.StartTime.Sub(item.Time)) <= b.tolerance {
			item.Matched = true
			item.IsCompleted = !s.EndTime.IsZero()
			return
		}
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
