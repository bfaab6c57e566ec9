package logging

import (
	"context"
	"log/slog"
	"os"
)

// Environment selects the log output shape. Dev uses a text handler for
// readable local output, prod emits JSON.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags every record from a logger so multi-component processes can be
// filtered by origin.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	ServiceInfo ServiceInfo
	Environment Environment
	ProjectID   string
	Module      Module
}

// NewLogger builds the process logger. Records carry the service identity and
// default module; the handler also folds in request IDs and trace attributes
// from the context.
func NewLogger(cfg Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Environment == EnvDev {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if cfg.Environment == EnvDev {
		inner = slog.NewTextHandler(os.Stdout, opts)
	} else {
		inner = slog.NewJSONHandler(os.Stdout, opts)
	}

	attrs := []slog.Attr{
		slog.String("service", cfg.ServiceInfo.Name),
		slog.String("module", string(cfg.Module)),
	}
	if cfg.ServiceInfo.Version != "" {
		attrs = append(attrs, slog.String("version", cfg.ServiceInfo.Version))
	}
	if cfg.ServiceInfo.Revision != "" {
		attrs = append(attrs, slog.String("revision", cfg.ServiceInfo.Revision))
	}

	return slog.New(&contextHandler{
		inner:     inner.WithAttrs(attrs),
		projectID: cfg.ProjectID,
	})
}

// contextHandler enriches records with the request ID and platform trace
// attributes carried in the context.
type contextHandler struct {
	inner     slog.Handler
	projectID string
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		record.AddAttrs(slog.String("request_id", requestID))
	}
	if attrs := gcpTraceAttrs(ctx, h.projectID); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.inner.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{inner: h.inner.WithAttrs(attrs), projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{inner: h.inner.WithGroup(name), projectID: h.projectID}
}
