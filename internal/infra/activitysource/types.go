package activitysource

import (
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

// Wire shapes of the core Tiny Time API. Timestamps travel as epoch
// milliseconds; zero means absent.

type feedingRecord struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"`
	Ounces    float64 `json:"ounces"`
}

type nursingSessionRecord struct {
	ID               string  `json:"id"`
	Timestamp        int64   `json:"timestamp"`
	LeftDurationSec  float64 `json:"leftDurationSec"`
	RightDurationSec float64 `json:"rightDurationSec"`
}

type solidsSessionRecord struct {
	ID        string   `json:"id"`
	Timestamp int64    `json:"timestamp"`
	Foods     []string `json:"foods"`
}

type sleepSessionRecord struct {
	ID        string `json:"id"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

type kidProfileRecord struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TargetDailyOunces float64 `json:"targetDailyOunces"`
	TypicalFeedOunces float64 `json:"typicalFeedOunces"`
	TypicalNapHours   float64 `json:"typicalNapHours"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func msToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func feedingToDomain(r feedingRecord) domain.Feeding {
	return domain.Feeding{
		ID:        r.ID,
		Timestamp: msToTime(r.Timestamp),
		Ounces:    r.Ounces,
	}
}

func nursingToDomain(r nursingSessionRecord) domain.NursingSession {
	return domain.NursingSession{
		ID:            r.ID,
		Timestamp:     msToTime(r.Timestamp),
		LeftDuration:  time.Duration(r.LeftDurationSec * float64(time.Second)),
		RightDuration: time.Duration(r.RightDurationSec * float64(time.Second)),
	}
}

func solidsToDomain(r solidsSessionRecord) domain.SolidsSession {
	return domain.SolidsSession{
		ID:        r.ID,
		Timestamp: msToTime(r.Timestamp),
		Foods:     r.Foods,
	}
}

func sleepToDomain(r sleepSessionRecord) domain.SleepSession {
	return domain.SleepSession{
		ID:        r.ID,
		StartTime: msToTime(r.StartTime),
		EndTime:   msToTime(r.EndTime),
	}
}

func kidToDomain(r kidProfileRecord) *domain.KidProfile {
	return &domain.KidProfile{
		ID:                r.ID,
		Name:              r.Name,
		TargetDailyOunces: r.TargetDailyOunces,
		TypicalFeedOunces: r.TypicalFeedOunces,
		TypicalNapHours:   r.TypicalNapHours,
	}
}
