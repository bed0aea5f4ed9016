package multiton

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/observability"
	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/settings"
)

// Module is the configuration of one named module.
// Every holder of the same module name shares one Module.
type Module struct {
	id       string
	name     string
	settings *settings.Settings
	logger   *slog.Logger
}

func newModule(name string, logger *slog.Logger) *Module {
	return &Module{
		id:       uuid.NewString(),
		name:     name,
		settings: settings.New(),
		logger:   logger,
	}
}

// Name returns the key the module was acquired with.
func (m *Module) Name() string {
	return m.name
}

// InstanceID returns the identifier assigned when the module was created.
func (m *Module) InstanceID() string {
	return m.id
}

// SetConfig stores value under key, overwriting any previous value.
// Neither key nor value is validated.
func (m *Module) SetConfig(key string, value any) {
	m.settings.Set(key, value)
	observability.LogSettingChanged(m.logger, m.name, key, value)
}

// GetConfig returns the value stored under key.
// ok is false only when key was never set; stored zero values are present.
func (m *Module) GetConfig(key string) (value any, ok bool) {
	return m.settings.Lookup(key)
}

// Settings exposes the typed accessors over the module's settings.
func (m *Module) Settings() *settings.Settings {
	return m.settings
}
