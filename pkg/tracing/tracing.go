package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns a named tracer for fault-lib components.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// TraceID returns the current span's trace id, or "" when the context
// carries no valid span. Fault events and log entries use it to stay
// correlated with the originating request.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
