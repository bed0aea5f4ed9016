package multiton

import (
	"context"
	"sort"

	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/registry"
)

// Manager holds exactly one Module per module name.
type Manager struct {
	modules *registry.Registry[string, *Module]
}

// NewManager returns an empty Manager.
// The underlying registry is named "config" unless opts set another name.
func NewManager(opts ...registry.Option) *Manager {
	opts = append([]registry.Option{registry.WithName("config")}, opts...)
	return &Manager{modules: registry.New[string, *Module](opts...)}
}

// Acquire returns the module registered under name, creating one with
// empty settings on the first request. Names match exactly: "Database"
// and "database" are different modules, and "" is a valid name.
func (m *Manager) Acquire(name string) *Module {
	return m.AcquireContext(context.Background(), name)
}

// AcquireContext is Acquire with the call traced under ctx.
func (m *Manager) AcquireContext(ctx context.Context, name string) *Module {
	return m.modules.GetOrCreateContext(ctx, name, func() *Module {
		return newModule(name, m.modules.Logger())
	})
}

// Lookup returns an existing module without creating one.
func (m *Manager) Lookup(name string) (*Module, bool) {
	return m.modules.Get(name)
}

// Snapshot returns the module name to module mapping.
// The map is a copy; the modules are the live shared instances.
func (m *Manager) Snapshot() map[string]*Module {
	return m.modules.Snapshot()
}

// Names returns the registered module names in sorted order.
func (m *Manager) Names() []string {
	names := m.modules.Keys()
	sort.Strings(names)
	return names
}

// Len returns the number of registered modules.
func (m *Manager) Len() int {
	return m.modules.Len()
}
