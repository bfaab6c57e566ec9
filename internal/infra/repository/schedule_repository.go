package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/tracing"
)

const (
	scheduleKeyPrefix = "tt:daily_projection_schedule:v1:"
	updateChannel     = "tt:projection-schedule-updated"

	scheduleTTL = 48 * time.Hour // covers today plus one rollover day
)

type scheduleItemRecord struct {
	ID               string  `json:"id"`
	Type             string  `json:"type"`
	TimeMs           int64   `json:"time_ms"`
	TargetOunces     float64 `json:"target_ounces,omitempty"`
	AvgDurationHours float64 `json:"avg_duration_hours,omitempty"`
	IsCompleted      bool    `json:"is_completed"`
	Matched          bool    `json:"matched"`
	ActualOunces     float64 `json:"actual_ounces,omitempty"`
}

type scheduleRecord struct {
	DateKey     string               `json:"date_key"`
	Items       []scheduleItemRecord `json:"items"`
	UpdatedAtMs int64                `json:"updated_at_ms"`
}

type updateMessage struct {
	DateKey string               `json:"date_key"`
	Items   []scheduleItemRecord `json:"items"`
}

type scheduleRepository struct {
	client *redis.Client
}

func NewScheduleRepository(client *redis.Client) domain.ScheduleRepository {
	return &scheduleRepository{
		client: client,
	}
}

func (r *scheduleRepository) ReadSchedule(ctx context.Context, dateKey domain.DayKey) (*domain.DailySchedule, error) {
	key := scheduleKeyPrefix + string(dateKey)

	ctx, span := tracing.StartRedisOperationSpan(ctx, "get", key)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}

	var record scheduleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidScheduleData
	}

	return &domain.DailySchedule{
		DateKey:   domain.DayKey(record.DateKey),
		Items:     itemsToDomain(record.Items),
		UpdatedAt: time.UnixMilli(record.UpdatedAtMs),
	}, nil
}

func (r *scheduleRepository) WriteSchedule(ctx context.Context, schedule *domain.DailySchedule) error {
	if schedule == nil {
		return ErrInvalidScheduleData
	}

	record := scheduleRecord{
		DateKey:     string(schedule.DateKey),
		Items:       itemsToRecords(schedule.Items),
		UpdatedAtMs: schedule.UpdatedAt.UnixMilli(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidScheduleData
	}

	message, err := json.Marshal(updateMessage{
		DateKey: record.DateKey,
		Items:   record.Items,
	})
	if err != nil {
		return ErrInvalidScheduleData
	}

	key := scheduleKeyPrefix + string(schedule.DateKey)

	ctx, span := tracing.StartRedisOperationSpan(ctx, "set_publish", key)
	defer span.End()

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, scheduleTTL)
	pipe.Publish(ctx, updateChannel, message)

	_, err = pipe.Exec(ctx)
	return err
}

func (r *scheduleRepository) DeleteSchedule(ctx context.Context, dateKey domain.DayKey) error {
	key := scheduleKeyPrefix + string(dateKey)

	ctx, span := tracing.StartRedisOperationSpan(ctx, "del", key)
	defer span.End()

	return r.client.Del(ctx, key).Err()
}

// SubscribeUpdates delivers schedule writes published by any process
// sharing the Redis instance. The returned close function stops the
// subscription and closes the channel.
func (r *scheduleRepository) SubscribeUpdates(ctx context.Context) (<-chan domain.ScheduleUpdate, func() error, error) {
	sub := r.client.Subscribe(ctx, updateChannel)

	// Wait for the subscription to become active so callers never miss
	// writes that happen right after SubscribeUpdates returns.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	updates := make(chan domain.ScheduleUpdate)

	go func() {
		defer close(updates)
		for msg := range sub.Channel() {
			var message updateMessage
			if err := json.Unmarshal([]byte(msg.Payload), &message); err != nil {
				slog.Warn("failed to decode schedule update message",
					slog.String("channel", updateChannel),
					slog.String("error", err.Error()),
				)
				continue
			}
			select {
			case updates <- domain.ScheduleUpdate{
				DateKey: domain.DayKey(message.DateKey),
				Items:   itemsToDomain(message.Items),
			}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, sub.Close, nil
}

func itemsToRecords(items []domain.ScheduleItem) []scheduleItemRecord {
	records := make([]scheduleItemRecord, 0, len(items))
	for _, it := range items {
		records = append(records, scheduleItemRecord{
			ID:               it.ID,
			Type:             string(it.Type),
			TimeMs:           it.Time.UnixMilli(),
			TargetOunces:     it.TargetOunces,
			AvgDurationHours: it.AvgDurationHours,
			IsCompleted:      it.IsCompleted,
			Matched:          it.Matched,
			ActualOunces:     it.ActualOunces,
		})
	}
	return records
}

func itemsToDomain(records []scheduleItemRecord) []domain.ScheduleItem {
	items := make([]domain.ScheduleItem, 0, len(records))
	for _, r := range records {
		items = append(items, domain.ScheduleItem{
			ID:               r.ID,
			Type:             domain.ScheduleItemType(r.Type),
			Time:             time.UnixMilli(r.TimeMs),
			TargetOunces:     r.TargetOunces,
			AvgDurationHours: r.AvgDurationHours,
			IsCompleted:      r.IsCompleted,
			Matched:          r.Matched,
			ActualOunces:     r.ActualOunces,
		})
	}
	return items
}
