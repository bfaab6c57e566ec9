package stub

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// ActivityStorage holds seeded synthetic activity history. Seeded days are
// expanded lazily into events when queried, so repeated seeds of the same
// day produce the same deterministic IDs.
type ActivityStorage struct {
	mu       sync.RWMutex
	kid      KidResponse
	feedings []FeedingResponse
	nursing  []NursingSessionResponse
	solids   []SolidsSessionResponse
	sleeps   []SleepSessionResponse
}

func NewActivityStorage() *ActivityStorage {
	return &ActivityStorage{
		kid: KidResponse{
			ID:                "kid-stub",
			Name:              "Stub Kid",
			TargetDailyOunces: 28,
			TypicalFeedOunces: 4,
			TypicalNapHours:   1.5,
		},
	}
}

func (s *ActivityStorage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedings = nil
	s.nursing = nil
	s.solids = nil
	s.sleeps = nil
}

func (s *ActivityStorage) SetKid(kid KidResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kid = kid
}

func (s *ActivityStorage) Kid() KidResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kid
}

// SeedDay expands one day description into evenly spaced events between
// 07:00 and 19:00 local time and appends them.
func (s *ActivityStorage) SeedDay(dayStart time.Time, day SeedDay) {
	s.mu.Lock()
	defer s.mu.Unlock()

	windowStart := dayStart.Add(7 * time.Hour)
	window := 12 * time.Hour

	if day.FeedCount > 0 {
		interval := window / time.Duration(day.FeedCount)
		for i := 0; i < day.FeedCount; i++ {
			t := windowStart.Add(time.Duration(i) * interval)
			s.feedings = append(s.feedings, FeedingResponse{
				ID:        generateEventID("feed", dayStart, i),
				Timestamp: t.UnixMilli(),
				Ounces:    day.FeedOunces,
			})
		}
	}

	if day.NapCount > 0 {
		interval := window / time.Duration(day.NapCount)
		napLength := time.Duration(day.NapHours * float64(time.Hour))
		for i := 0; i < day.NapCount; i++ {
			start := windowStart.Add(time.Duration(i) * interval)
			s.sleeps = append(s.sleeps, SleepSessionResponse{
				ID:        generateEventID("sleep", dayStart, i),
				StartTime: start.UnixMilli(),
				EndTime:   start.Add(napLength).UnixMilli(),
			})
		}
	}

	if day.SolidsCount > 0 {
		interval := window / time.Duration(day.SolidsCount)
		for i := 0; i < day.SolidsCount; i++ {
			t := windowStart.Add(time.Duration(i) * interval)
			s.solids = append(s.solids, SolidsSessionResponse{
				ID:        generateEventID("solids", dayStart, i),
				Timestamp: t.UnixMilli(),
				Foods:     []string{"oatmeal"},
			})
		}
	}
}

func (s *ActivityStorage) FeedingsInRange(start, end int64) []FeedingResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]FeedingResponse, 0)
	for _, f := range s.feedings {
		if f.Timestamp >= start && f.Timestamp < end {
			out = append(out, f)
		}
	}
	return out
}

func (s *ActivityStorage) NursingInRange(start, end int64) []NursingSessionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]NursingSessionResponse, 0)
	for _, n := range s.nursing {
		if n.Timestamp >= start && n.Timestamp < end {
			out = append(out, n)
		}
	}
	return out
}

func (s *ActivityStorage) SolidsInRange(start, end int64) []SolidsSessionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SolidsSessionResponse, 0)
	for _, v := range s.solids {
		if v.Timestamp >= start && v.Timestamp < end {
			out = append(out, v)
		}
	}
	return out
}

// SleepsInRange returns sessions overlapping [start, end), not just those
// starting inside it, matching how the consumer treats intervals.
func (s *ActivityStorage) SleepsInRange(start, end int64) []SleepSessionResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]SleepSessionResponse, 0)
	for _, v := range s.sleeps {
		sessionEnd := v.EndTime
		if sessionEnd == 0 {
			sessionEnd = end
		}
		if sessionEnd > start && v.StartTime < end {
			out = append(out, v)
		}
	}
	return out
}

func generateEventID(kind string, dayStart time.Time, index int) string {
	input := fmt.Sprintf("%s-%s-%d", kind, dayStart.Format("20060102"), index)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%s-%s", kind, hex.EncodeToString(hash[:8]))
}
