// Package singleton holds a lazily constructed, process-lifetime instance.
//
// A Cell is an explicit value rather than a package-level variable, so
// callers decide its lifetime and tests can start from a fresh Cell:
//
//	cell := singleton.New(func() *Shelter { return &Shelter{} })
//	a := cell.Acquire()
//	b := cell.Acquire() // a == b
package singleton

import (
	"context"
	"log/slog"

	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/registry"
)

// instanceKey is the single key a Cell stores its value under.
type instanceKey struct{}

func (instanceKey) String() string { return "instance" }

// Cell holds at most one T.
type Cell[T any] struct {
	entries *registry.Registry[instanceKey, T]
	factory func() T
}

// New returns an empty Cell. factory runs on the first Acquire only.
func New[T any](factory func() T, opts ...registry.Option) *Cell[T] {
	return &Cell[T]{
		entries: registry.New[instanceKey, T](opts...),
		factory: factory,
	}
}

// Acquire returns the instance, constructing it on the first call.
func (c *Cell[T]) Acquire() T {
	return c.entries.GetOrCreate(instanceKey{}, c.factory)
}

// AcquireContext is Acquire with the call traced under ctx.
func (c *Cell[T]) AcquireContext(ctx context.Context) T {
	return c.entries.GetOrCreateContext(ctx, instanceKey{}, c.factory)
}

// Created reports whether the instance has been constructed.
func (c *Cell[T]) Created() bool {
	return c.entries.Has(instanceKey{})
}

// Logger returns the logger the Cell was configured with, or nil.
func (c *Cell[T]) Logger() *slog.Logger {
	return c.entries.Logger()
}
