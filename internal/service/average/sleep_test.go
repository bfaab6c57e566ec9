package average

import (
	"math"
	"testing"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

func TestSleepProfileMidnightSplit(t *testing.T) {
	// A single session 23:00 -> 01:00 crossing into the next day. Both days
	// are historical, so the average runs over exactly those two days and
	// the full 120 minutes must be accounted once.
	now := todayStart
	start := todayStart.AddDate(0, 0, -2).Add(23 * time.Hour)
	end := start.Add(2 * time.Hour)

	p := SleepProfile([]domain.SleepSession{{StartTime: start, EndTime: end}}, todayStart, now, zone)
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.DaysUsed != 2 {
		t.Fatalf("DaysUsed = %d, want 2", p.DaysUsed)
	}

	approx := func(got, want float64, label string) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %f, want %f", label, got, want)
		}
	}

	// Day D+1 contributes 1h over buckets 0..3; day D contributes 1h over
	// buckets 92..95. Averaged over the two days:
	approx(p.Buckets[3], 0.5, "Buckets[3]")
	approx(p.Buckets[91], 0.5, "Buckets[91]")
	approx(p.Buckets[95], 1.0, "Buckets[95]")

	// Total slept hours across the window: average * days = full session.
	if total := p.FinalTotal() * float64(p.DaysUsed); math.Abs(total-2.0) > 1e-9 {
		t.Errorf("accounted sleep = %f hours, want exactly 2", total)
	}
}

func TestSleepProfileExcludesToday(t *testing.T) {
	now := todayStart.Add(10 * time.Hour)

	sessions := []domain.SleepSession{
		// Yesterday's nap.
		{StartTime: todayStart.Add(-14 * time.Hour), EndTime: todayStart.Add(-13 * time.Hour)},
		// Session straddling midnight into today: only the yesterday part
		// may land in the historical pool when history is full.
		{StartTime: todayStart.Add(-time.Hour), EndTime: todayStart.Add(time.Hour)},
	}
	// Pad history to a full window so the bootstrap cannot admit today.
	for i := 2; i <= 7; i++ {
		s := todayStart.AddDate(0, 0, -i).Add(13 * time.Hour)
		sessions = append(sessions, domain.SleepSession{StartTime: s, EndTime: s.Add(time.Hour)})
	}

	p := SleepProfile(sessions, todayStart, now, zone)
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.DaysUsed != 7 {
		t.Fatalf("DaysUsed = %d, want 7", p.DaysUsed)
	}

	// Yesterday carries 1h (nap) + 1h (pre-midnight half); other six days 1h
	// each. If today's post-midnight hour leaked in, the mean would exceed it.
	want := (2.0 + 6.0) / 7.0
	if math.Abs(p.FinalTotal()-want) > 1e-9 {
		t.Errorf("FinalTotal() = %f, want %f", p.FinalTotal(), want)
	}
}

func TestSleepProfileInProgressSessionUsesNow(t *testing.T) {
	// History is a single short day, so the bootstrap admits today, where an
	// in-progress session has been running for 2h.
	now := todayStart.Add(9 * time.Hour)

	sessions := []domain.SleepSession{
		{StartTime: todayStart.Add(-12 * time.Hour), EndTime: todayStart.Add(-11 * time.Hour)},
		{StartTime: now.Add(-2 * time.Hour)}, // open session
	}

	p := SleepProfile(sessions, todayStart, now, zone)
	if p == nil {
		t.Fatal("expected profile, got nil")
	}
	if p.DaysUsed != 2 {
		t.Fatalf("DaysUsed = %d, want 2", p.DaysUsed)
	}
	want := (1.0 + 2.0) / 2.0
	if math.Abs(p.FinalTotal()-want) > 1e-9 {
		t.Errorf("FinalTotal() = %f, want %f", p.FinalTotal(), want)
	}
}

func TestSleepProfileDropsUnsalvageableSessions(t *testing.T) {
	now := todayStart
	sessions := []domain.SleepSession{
		// End two days before start: rejected by normalization.
		{StartTime: todayStart.Add(-10 * time.Hour), EndTime: todayStart.Add(-58 * time.Hour)},
	}

	if p := SleepProfile(sessions, todayStart, now, zone); p != nil {
		t.Errorf("expected nil profile when every session is dropped, got %+v", p)
	}
}
