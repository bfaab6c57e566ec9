package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	scheduleMeterName = "schedule.service"
)

type ScheduleMetrics struct {
	refreshesTotal    metric.Int64Counter
	refreshDuration   metric.Float64Histogram
	itemsProjected    metric.Int64Counter
	daysUsed          metric.Int64Histogram
	remindersRegister metric.Int64Counter
}

func NewScheduleMetrics() (*ScheduleMetrics, error) {
	meter := otel.Meter(scheduleMeterName)

	refreshesTotal, err := meter.Int64Counter(
		"schedule_refreshes_total",
		metric.WithDescription("Total number of schedule refreshes"),
		metric.WithUnit("{refresh}"),
	)
	if err != nil {
		return nil, err
	}

	refreshDuration, err := meter.Float64Histogram(
		"schedule_refresh_duration_seconds",
		metric.WithDescription("Schedule refresh duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
		),
	)
	if err != nil {
		return nil, err
	}

	itemsProjected, err := meter.Int64Counter(
		"schedule_items_projected_total",
		metric.WithDescription("Total number of projected schedule items"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	daysUsed, err := meter.Int64Histogram(
		"schedule_profile_days_used",
		metric.WithDescription("Number of history days backing a profile"),
		metric.WithUnit("{day}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 4, 5, 6, 7),
	)
	if err != nil {
		return nil, err
	}

	remindersRegister, err := meter.Int64Counter(
		"schedule_reminders_registered_total",
		metric.WithDescription("Total number of feed reminders registered"),
		metric.WithUnit("{task}"),
	)
	if err != nil {
		return nil, err
	}

	return &ScheduleMetrics{
		refreshesTotal:    refreshesTotal,
		refreshDuration:   refreshDuration,
		itemsProjected:    itemsProjected,
		daysUsed:          daysUsed,
		remindersRegister: remindersRegister,
	}, nil
}

func (m *ScheduleMetrics) RecordRefresh(ctx context.Context, outcome string, duration time.Duration) {
	m.refreshesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
	m.refreshDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

func (m *ScheduleMetrics) RecordItemsProjected(ctx context.Context, itemType string, count int) {
	m.itemsProjected.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("item_type", itemType),
	))
}

func (m *ScheduleMetrics) RecordDaysUsed(ctx context.Context, metricName string, days int) {
	m.daysUsed.Record(ctx, int64(days), metric.WithAttributes(
		attribute.String("metric", metricName),
	))
}

func (m *ScheduleMetrics) RecordReminderRegistered(ctx context.Context, outcome string) {
	m.remindersRegister.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
