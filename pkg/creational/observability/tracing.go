package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("creational")

// SpanManager handles acquire span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartAcquireSpan starts a span for one acquire call.
	StartAcquireSpan(ctx context.Context, registry, key string) (context.Context, trace.Span)

	// EndAcquireSpan records whether the call constructed a new instance and ends the span.
	EndAcquireSpan(span trace.Span, created bool)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartAcquireSpan starts a span for one acquire call.
func (m *otelSpanManager) StartAcquireSpan(ctx context.Context, registry, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "creational.acquire",
		trace.WithAttributes(
			attribute.String("registry.name", registry),
			attribute.String("instance.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndAcquireSpan completes the span.
func (m *otelSpanManager) EndAcquireSpan(span trace.Span, created bool) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Bool("instance.created", created))
	if created {
		span.AddEvent("instance created")
	}
	span.SetStatus(codes.Ok, "")
	span.End()
}
