// Package registry provides a generic thread-safe registry holding at most
// one instance per key.
//
// It is the construct-or-fetch building block behind both the singleton and
// the multiton packages: the first request for a key runs a factory, every
// later request returns the instance that factory produced.
//
// # Basic Usage
//
//	pools := registry.New[string, *Pool]()
//
//	// First call creates the pool, subsequent calls return the same one
//	pool := pools.GetOrCreate("users_db", func() *Pool {
//	    return NewPool("users_db")
//	})
//
// GetOrCreate is atomic - the factory function is called at most once per key,
// even under concurrent access.
//
// Entries are never replaced or removed. There is no Register or Delete: the
// only way to add an entry is GetOrCreate, so two callers asking for the same
// key always share one instance.
//
// # Instrumentation
//
// Registries are silent by default. Options attach a logger, an OpenTelemetry
// metrics recorder and a span manager:
//
//	r := registry.New[string, *Module](
//	    registry.WithName("config"),
//	    registry.WithLogger(slog.Default()),
//	    registry.WithMetrics(observability.NewMetricsRecorder()),
//	    registry.WithSpans(observability.NewSpanManager()),
//	)
//
// Values implementing Identified have their instance ID logged on creation.
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. Range iterates over a
// snapshot, so the callback may call GetOrCreate without deadlocking.
package registry
