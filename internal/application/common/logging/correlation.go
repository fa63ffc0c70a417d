package logging

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for correlation ID management
type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

// NewCorrelationID returns a fresh correlation id for one run.
func NewCorrelationID() string {
	return uuid.New().String()
}

// WithCorrelationID returns a context carrying the correlation id.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// CorrelationIDFromContext returns the correlation id stored in ctx, if any.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// getOrGenerateCorrelationID gets correlation ID from context or generates a new one
func getOrGenerateCorrelationID(ctx context.Context) string {
	if correlationID := CorrelationIDFromContext(ctx); correlationID != "" {
		return correlationID
	}
	return NewCorrelationID()
}
