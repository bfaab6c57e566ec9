//go:build !gcloud

package insightrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/arlebowski/Tiny-Time-sub003/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.InsightRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "daily total recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, daily total recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "daily total recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordDailyTotals(ctx context.Context, records []domain.DailyTotalRecord) error {
	if len(records) == 0 {
		return nil
	}

	for _, record := range records {
		// Use real time as timestamp to prevent overwrites between refreshes
		pointTime := time.Now()

		point := influxdb2.NewPoint(
			"daily_total",
			map[string]string{
				"kid_id":   record.KidID,
				"metric":   record.Metric.String(),
				"date_key": string(record.DateKey),
			},
			map[string]any{
				"total":     record.Total,
				"days_used": record.DaysUsed,
			},
			pointTime,
		)

		if err := r.writeAPI.WritePoint(ctx, point); err != nil {
			slog.WarnContext(ctx, "failed to write daily total to InfluxDB",
				slog.String("error", err.Error()),
				slog.String("metric", record.Metric.String()),
				slog.String("date_key", string(record.DateKey)),
			)
		}
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
