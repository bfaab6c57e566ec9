package insightrecorder

import (
	"context"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.InsightRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordDailyTotals(_ context.Context, _ []domain.DailyTotalRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
