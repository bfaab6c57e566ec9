package activitysource

import (
	"context"
	"time"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=activitysource

// Source supplies the raw activity records every aggregation consumes. The
// canonical implementation fetches from the core Tiny Time API; tests mock
// it and CachedSource layers a Redis day cache over it.
type Source interface {
	ListFeedings(ctx context.Context, start, end time.Time) ([]domain.Feeding, error)
	ListNursingSessions(ctx context.Context, start, end time.Time) ([]domain.NursingSession, error)
	ListSolidsSessions(ctx context.Context, start, end time.Time) ([]domain.SolidsSession, error)
	ListSleepSessions(ctx context.Context, start, end time.Time) ([]domain.SleepSession, error)
	GetKidProfile(ctx context.Context) (*domain.KidProfile, error)
}
