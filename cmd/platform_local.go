//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/arlebowski/Tiny-Time-sub003/internal/config"
	"github.com/arlebowski/Tiny-Time-sub003/internal/infra/taskqueue"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability"
	"github.com/arlebowski/Tiny-Time-sub003/internal/observability/logging"
)

func initTaskQueue(_ context.Context, cfg *config.Config) (taskqueue.TaskQueue, func() error, error) {
	if cfg.TaskQueue.TinyTasksURL == "" {
		slog.Warn("TINY_TASKS_URL not set, feed reminder registration disabled")

		return nil, nil, nil
	}

	tq := taskqueue.NewTinyTasksClient(
		cfg.TaskQueue.TinyTasksURL,
		cfg.TaskQueue.QueueName,
		cfg.TaskQueue.MaxRetries,
	)

	slog.Info("task queue initialized",
		slog.String("type", "tiny_tasks"),
		slog.String("url", cfg.TaskQueue.TinyTasksURL),
		slog.String("queue", cfg.TaskQueue.QueueName),
	)

	return tq, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "daily-projection"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("daily-projection"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
