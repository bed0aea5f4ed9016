// Package shelter keeps a single cat shelter for the lifetime of a Registry.
//
// Every Acquire on the same Registry returns the same *Shelter, so a cat
// added through one reference is listed through every other:
//
//	r := shelter.NewRegistry()
//	a := r.Acquire()
//	a.AddCat("Mia", "Siamese")
//	b := r.Acquire()
//	b.AddCat("Luna", "Maine Coon")
//	a.ListCats() // [{Mia Siamese} {Luna Maine Coon}]
package shelter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/observability"
	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/registry"
	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/singleton"
)

// Cat is a shelter resident.
type Cat struct {
	Name  string `json:"name" yaml:"name"`
	Breed string `json:"breed" yaml:"breed"`
}

// Shelter holds cats in admission order. It is safe for concurrent use.
type Shelter struct {
	id     string
	logger *slog.Logger

	mu   sync.RWMutex
	cats []Cat
}

func newShelter(logger *slog.Logger) *Shelter {
	return &Shelter{
		id:     uuid.NewString(),
		logger: logger,
	}
}

// InstanceID returns the identifier assigned when the shelter was created.
func (s *Shelter) InstanceID() string {
	return s.id
}

// AddCat appends a cat. No validation is applied.
func (s *Shelter) AddCat(name, breed string) {
	s.mu.Lock()
	s.cats = append(s.cats, Cat{Name: name, Breed: breed})
	total := len(s.cats)
	s.mu.Unlock()

	observability.LogCatAdded(s.logger, s.id, name, breed, total)
}

// ListCats returns every cat in admission order.
// The returned slice is a copy.
func (s *Shelter) ListCats() []Cat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Cat, len(s.cats))
	copy(out, s.cats)
	return out
}

// Len returns the number of cats.
func (s *Shelter) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cats)
}

// Registry provides one shared Shelter.
type Registry struct {
	cell *singleton.Cell[*Shelter]
}

// NewRegistry returns a Registry. The shelter is created on the first Acquire.
// The registry is named "shelter" unless opts set another name.
func NewRegistry(opts ...registry.Option) *Registry {
	r := &Registry{}
	opts = append([]registry.Option{registry.WithName("shelter")}, opts...)
	r.cell = singleton.New(func() *Shelter {
		return newShelter(r.cell.Logger())
	}, opts...)
	return r
}

// Acquire returns the shelter, creating an empty one on the first call.
func (r *Registry) Acquire() *Shelter {
	return r.cell.Acquire()
}

// AcquireContext is Acquire with the call traced under ctx.
func (r *Registry) AcquireContext(ctx context.Context) *Shelter {
	return r.cell.AcquireContext(ctx)
}

// Created reports whether the shelter exists yet.
func (r *Registry) Created() bool {
	return r.cell.Created()
}
