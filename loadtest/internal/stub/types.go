package stub

// Wire shapes mirror the core Tiny Time API: epoch millisecond timestamps,
// camelCase fields, list payloads wrapped in items/count.

type FeedingResponse struct {
	ID        string  `json:"id"`
	Timestamp int64   `json:"timestamp"`
	Ounces    float64 `json:"ounces"`
}

type NursingSessionResponse struct {
	ID               string  `json:"id"`
	Timestamp        int64   `json:"timestamp"`
	LeftDurationSec  float64 `json:"leftDurationSec"`
	RightDurationSec float64 `json:"rightDurationSec"`
}

type SolidsSessionResponse struct {
	ID        string   `json:"id"`
	Timestamp int64    `json:"timestamp"`
	Foods     []string `json:"foods"`
}

type SleepSessionResponse struct {
	ID        string `json:"id"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

type KidResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TargetDailyOunces float64 `json:"targetDailyOunces"`
	TypicalFeedOunces float64 `json:"typicalFeedOunces"`
	TypicalNapHours   float64 `json:"typicalNapHours"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// SeedRequest describes synthetic history to generate. Each day entry
// expands into evenly spaced feedings and naps for that local day.
type SeedRequest struct {
	Kid  *KidResponse `json:"kid,omitempty"`
	Days []SeedDay    `json:"days"`
}

type SeedDay struct {
	Date        string  `json:"date"`
	FeedCount   int     `json:"feed_count"`
	FeedOunces  float64 `json:"feed_ounces"`
	NapCount    int     `json:"nap_count"`
	NapHours    float64 `json:"nap_hours"`
	SolidsCount int     `json:"solids_count"`
}
