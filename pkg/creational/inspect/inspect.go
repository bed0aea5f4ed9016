// Package inspect renders registry contents for diagnostics.
//
// Output is meant for people reading a console, not for machines; the
// layout may change without notice.
package inspect

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/multiton"
	"github.com/AdrianoVictorCode/seminario-ppr-criacional-singleton-multiton/pkg/creational/shelter"
)

// Format selects the dump encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported dump format")

// ParseFormat resolves a format name. Matching is case-insensitive and
// "yml" is accepted as YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ShelterReport describes a shelter.
type ShelterReport struct {
	InstanceID string        `json:"instance_id" yaml:"instance_id"`
	Count      int           `json:"count" yaml:"count"`
	Cats       []shelter.Cat `json:"cats" yaml:"cats"`
}

// ShelterView captures the current state of s.
func ShelterView(s *shelter.Shelter) ShelterReport {
	cats := s.ListCats()
	return ShelterReport{
		InstanceID: s.InstanceID(),
		Count:      len(cats),
		Cats:       cats,
	}
}

// ModuleReport describes one config module.
type ModuleReport struct {
	Name       string         `json:"name" yaml:"name"`
	InstanceID string         `json:"instance_id" yaml:"instance_id"`
	Settings   map[string]any `json:"settings" yaml:"settings"`
}

// ModulesView captures every module in m, sorted by name.
func ModulesView(m *multiton.Manager) []ModuleReport {
	snapshot := m.Snapshot()
	reports := make([]ModuleReport, 0, len(snapshot))
	for _, name := range m.Names() {
		mod, ok := snapshot[name]
		if !ok {
			// registered after the snapshot was taken
			continue
		}
		reports = append(reports, ModuleReport{
			Name:       mod.Name(),
			InstanceID: mod.InstanceID(),
			Settings:   mod.Settings().Raw(),
		})
	}
	return reports
}

// Write encodes v to w in format f.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("flush yaml: %w", err)
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}
