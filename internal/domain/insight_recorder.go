package domain

import (
	"context"
	"time"
)

// DailyTotalRecord is one metric's accumulated quantity for one local day,
// emitted after a schedule refresh for offline analysis.
type DailyTotalRecord struct {
	KidID      string
	DateKey    DayKey
	Metric     ActivityKind
	Total      float64
	DaysUsed   int
	RecordedAt time.Time
}

type InsightRecorder interface {
	RecordDailyTotals(ctx context.Context, records []DailyTotalRecord) error
	Flush(ctx context.Context) error
	Close() error
}
