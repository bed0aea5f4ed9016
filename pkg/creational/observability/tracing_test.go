package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs a tracer provider backed by an in-memory exporter.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, func()) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)

	originalProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("creational")

	cleanup := func() {
		otel.SetTracerProvider(originalProvider)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	}

	return exporter, cleanup
}

func TestAcquireSpan(t *testing.T) {
	exporter, cleanup := setupTracingTest(t)
	defer cleanup()

	sm := NewSpanManager()

	t.Run("records name, attributes and created event", func(t *testing.T) {
		exporter.Reset()

		ctx, span := sm.StartAcquireSpan(context.Background(), "config", "database")
		require.NotNil(t, span)
		assert.True(t, span.SpanContext().IsValid())
		assert.NotEqual(t, context.Background(), ctx)

		sm.EndAcquireSpan(span, true)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)

		s := spans[0]
		assert.Equal(t, "creational.acquire", s.Name)
		assert.Equal(t, codes.Ok, s.Status.Code)

		attrs := make(map[string]any)
		for _, attr := range s.Attributes {
			attrs[string(attr.Key)] = attr.Value.AsInterface()
		}
		assert.Equal(t, "config", attrs["registry.name"])
		assert.Equal(t, "database", attrs["instance.key"])
		assert.Equal(t, true, attrs["instance.created"])

		require.Len(t, s.Events, 1)
		assert.Equal(t, "instance created", s.Events[0].Name)
	})

	t.Run("reuse has no created event", func(t *testing.T) {
		exporter.Reset()

		_, span := sm.StartAcquireSpan(context.Background(), "config", "database")
		sm.EndAcquireSpan(span, false)

		spans := exporter.GetSpans()
		require.Len(t, spans, 1)
		assert.Empty(t, spans[0].Events)
	})

	t.Run("nil span does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.EndAcquireSpan(nil, true)
		})
	})
}
