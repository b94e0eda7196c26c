package logger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id to and from callers.
const RequestIDHeader = "X-Request-ID"

// Caller supplied ids longer than this are replaced.
const maxRequestIDLen = 128

type requestIDKey struct{}

// ResolveRequestID returns the caller's id when it is usable, otherwise a new UUID.
func ResolveRequestID(supplied string) string {
	id := strings.TrimSpace(supplied)
	if id == "" || len(id) > maxRequestIDLen {
		return uuid.NewString()
	}
	return id
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// For returns l annotated with the request id and trace id carried by ctx.
func For(ctx context.Context, l *zap.Logger) *zap.Logger {
	var fields []zap.Field
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
	}
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}
