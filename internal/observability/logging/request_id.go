package logging

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

const maxRequestIDLength = 128

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request ID stored in the context, or an
// empty string.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// ValidateAndExtractRequestID returns the candidate when it is usable as a
// propagated request ID, otherwise a fresh UUID. Oversized values are
// replaced rather than truncated so downstream IDs stay unique.
func ValidateAndExtractRequestID(candidate string) string {
	if candidate == "" || len(candidate) > maxRequestIDLength {
		return uuid.NewString()
	}
	return candidate
}
