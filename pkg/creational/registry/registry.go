package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/observability"
)

// Identified is implemented by instances that carry a diagnostic identity.
// The registry attaches it to the creation log record.
type Identified interface {
	InstanceID() string
}

// Registry is a thread-safe registry holding at most one instance per key.
// Entries are created lazily by GetOrCreate and are never replaced or removed.
// It uses sync.RWMutex for optimal read-heavy workloads.
type Registry[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	opts    options
}

// New creates a new empty registry.
func New[K comparable, V any](opts ...Option) *Registry[K, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[K, V]{
		entries: make(map[K]V),
		opts:    o,
	}
}

// Name returns the registry name.
func (r *Registry[K, V]) Name() string {
	return r.opts.name
}

// Logger returns the logger set with WithLogger, or nil.
func (r *Registry[K, V]) Logger() *slog.Logger {
	return r.opts.logger
}

// GetOrCreate returns the value for a key, creating it with the factory
// function if it doesn't exist. This operation is atomic - the factory
// is called at most once per key, even under concurrent access.
//
// The factory runs while the registry is write-locked and must not call
// back into the same registry.
func (r *Registry[K, V]) GetOrCreate(key K, factory func() V) V {
	return r.GetOrCreateContext(context.Background(), key, factory)
}

// GetOrCreateContext is GetOrCreate with the call traced under ctx.
func (r *Registry[K, V]) GetOrCreateContext(ctx context.Context, key K, factory func() V) V {
	start := time.Now()
	keyStr := fmt.Sprint(key)
	ctx, span := r.opts.spans.StartAcquireSpan(ctx, r.opts.name, keyStr)

	v, created := r.getOrCreate(key, factory)

	r.opts.spans.EndAcquireSpan(span, created)
	r.opts.metrics.RecordAcquire(ctx, r.opts.name, created, time.Since(start))
	if created {
		var id string
		if ident, ok := any(v).(Identified); ok {
			id = ident.InstanceID()
		}
		observability.LogInstanceCreated(r.opts.logger, r.opts.name, keyStr, id)
	} else {
		observability.LogInstanceReused(r.opts.logger, r.opts.name, keyStr)
	}
	return v
}

func (r *Registry[K, V]) getOrCreate(key K, factory func() V) (V, bool) {
	// Fast path: check if already exists
	r.mu.RLock()
	v, ok := r.entries[key]
	r.mu.RUnlock()
	if ok {
		return v, false
	}

	// Slow path: create with write lock
	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if v, ok := r.entries[key]; ok {
		return v, false
	}

	v = factory()
	r.entries[key] = v
	return v, true
}

// Get returns the value for a key and whether it exists.
// It never creates an entry.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// MustGet returns the value for a key, panicking if not found.
func (r *Registry[K, V]) MustGet(key K) V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	if !ok {
		panic("registry: key not found")
	}
	return v
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Keys returns all keys in the registry.
// The order is not guaranteed.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]K, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	return keys
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Snapshot returns a copy of the key to instance mapping.
// The instances themselves are shared, not copied.
func (r *Registry[K, V]) Snapshot() map[K]V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[K]V, len(r.entries))
	for k, v := range r.entries {
		snapshot[k] = v
	}
	return snapshot
}

// Range iterates over all entries in the registry.
// The function fn is called for each entry. If fn returns false,
// iteration stops.
//
// Range iterates over a snapshot of the registry, so it is safe
// to call GetOrCreate during iteration without affecting the
// current iteration.
func (r *Registry[K, V]) Range(fn func(K, V) bool) {
	for k, v := range r.Snapshot() {
		if !fn(k, v) {
			return
		}
	}
}
