package activitysource

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

const (
	cacheKeyPrefix  = "tt:activity_cache:"
	defaultCacheTTL = 10 * time.Minute
)

// CachedSource wraps a Source with a short-lived Redis cache keyed by
// endpoint and query window. Cache failures fall through to the
// underlying source so a degraded Redis never blocks a refresh.
type CachedSource struct {
	inner  Source
	client redis.UniversalClient
	ttl    time.Duration
}

func NewCachedSource(inner Source, client redis.UniversalClient, ttl time.Duration) *CachedSource {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedSource{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (s *CachedSource) ListFeedings(ctx context.Context, start, end time.Time) ([]domain.Feeding, error) {
	return cachedList(ctx, s, "feedings", start, end, s.inner.ListFeedings)
}

func (s *CachedSource) ListNursingSessions(ctx context.Context, start, end time.Time) ([]domain.NursingSession, error) {
	return cachedList(ctx, s, "nursing", start, end, s.inner.ListNursingSessions)
}

func (s *CachedSource) ListSolidsSessions(ctx context.Context, start, end time.Time) ([]domain.SolidsSession, error) {
	return cachedList(ctx, s, "solids", start, end, s.inner.ListSolidsSessions)
}

func (s *CachedSource) ListSleepSessions(ctx context.Context, start, end time.Time) ([]domain.SleepSession, error) {
	return cachedList(ctx, s, "sleep", start, end, s.inner.ListSleepSessions)
}

func (s *CachedSource) GetKidProfile(ctx context.Context) (*domain.KidProfile, error) {
	key := cacheKeyPrefix + "kid"
	if data, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var profile domain.KidProfile
		if err := json.Unmarshal(data, &profile); err == nil {
			return &profile, nil
		}
	}

	profile, err := s.inner.GetKidProfile(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, profile)
	return profile, nil
}

func cachedList[T any](ctx context.Context, s *CachedSource, kind string, start, end time.Time, fetch func(context.Context, time.Time, time.Time) ([]T, error)) ([]T, error) {
	key := listCacheKey(kind, start, end)
	if data, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		slog.WarnContext(ctx, "failed to read activity cache",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	items, err := fetch(ctx, start, end)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, items)
	return items, nil
}

func (s *CachedSource) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to write activity cache",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func listCacheKey(kind string, start, end time.Time) string {
	return cacheKeyPrefix + kind + ":" + start.UTC().Format(time.RFC3339) + ":" + end.UTC().Format(time.RFC3339)
}
