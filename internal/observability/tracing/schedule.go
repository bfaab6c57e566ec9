package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const scheduleTracerName = "github.com/arlebowski/Tiny-Time-sub003/internal/service/schedule"

func ScheduleTracer() trace.Tracer {
	return otel.Tracer(scheduleTracerName)
}

func StartRefreshSpan(ctx context.Context, dateKey string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.refresh",
		trace.WithAttributes(
			attribute.String("schedule.date_key", dateKey),
		),
	)
}

func StartProfileSpan(ctx context.Context, metric string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.profile."+metric,
		trace.WithAttributes(
			attribute.String("profile.metric", metric),
		),
	)
}

func StartExternalAPISpan(ctx context.Context, operation, url string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.external_api."+operation,
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return ScheduleTracer().Start(ctx, "schedule.redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordRefreshResult(span trace.Span, itemCount, feedDaysUsed, sleepDaysUsed int, duration time.Duration, err error) {
	span.SetAttributes(
		attribute.Int("refresh.item_count", itemCount),
		attribute.Int("refresh.feed_days_used", feedDaysUsed),
		attribute.Int("refresh.sleep_days_used", sleepDaysUsed),
		attribute.Int64("refresh.duration_ms", duration.Milliseconds()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
