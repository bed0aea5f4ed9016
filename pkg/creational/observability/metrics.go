package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records registry metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordAcquire records one acquire call, whether it constructed a new
	// instance, and how long it took.
	RecordAcquire(ctx context.Context, registry string, created bool, duration time.Duration)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	acquireCalls     metric.Int64Counter
	instancesCreated metric.Int64Counter
	acquireLatency   metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("creational")

	acquireCalls, err := meter.Int64Counter("creational.acquire.calls",
		metric.WithDescription("Number of acquire calls"),
	)
	if err != nil {
		return nil, err
	}

	instancesCreated, err := meter.Int64Counter("creational.instances.created",
		metric.WithDescription("Number of instances constructed"),
	)
	if err != nil {
		return nil, err
	}

	acquireLatency, err := meter.Float64Histogram("creational.acquire.latency_ms",
		metric.WithDescription("Acquire latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		acquireCalls:     acquireCalls,
		instancesCreated: instancesCreated,
		acquireLatency:   acquireLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordAcquire records an acquire call.
func (m *otelMetrics) RecordAcquire(ctx context.Context, registry string, created bool, duration time.Duration) {
	name := attribute.String("registry", registry)

	m.acquireCalls.Add(ctx, 1, metric.WithAttributes(name, attribute.Bool("created", created)))
	m.acquireLatency.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(name))

	if created {
		m.instancesCreated.Add(ctx, 1, metric.WithAttributes(name))
	}
}
