package settings

import (
	"sort"
	"sync"
	"time"
)

// Settings is a mutable map[string]any with typed accessors.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
// It is safe for concurrent use.
type Settings struct {
	mu   sync.RWMutex
	data map[string]any
}

// New creates an empty Settings.
func New() *Settings {
	return &Settings{data: make(map[string]any)}
}

// Set stores value under key, overwriting any previous value.
func (s *Settings) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// SetMany stores every entry of values.
func (s *Settings) SetMany(values map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.data[k] = v
	}
}

// Lookup returns the raw value for key and whether it was ever set.
// A stored zero value ("" or 0 or false) is reported as present.
func (s *Settings) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Has returns true if the key has been set.
func (s *Settings) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Len returns the number of stored keys.
func (s *Settings) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Keys returns the stored keys in sorted order.
func (s *Settings) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Raw returns a copy of the underlying map.
func (s *Settings) Raw() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (s *Settings) String(key, defaultVal string) string {
	v, ok := s.Lookup(key)
	if !ok {
		return defaultVal
	}
	if str, ok := v.(string); ok {
		return str
	}
	return defaultVal
}

// Duration returns the duration value for key, or defaultVal if missing or invalid.
//
// Accepts:
//   - string: parsed with time.ParseDuration
//   - int: interpreted as seconds
//   - int64: interpreted as seconds
//   - float64: interpreted as seconds
//   - time.Duration: used directly
func (s *Settings) Duration(key string, defaultVal time.Duration) time.Duration {
	v, ok := s.Lookup(key)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case string:
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	case float64:
		return time.Duration(val * float64(time.Second))
	case int:
		return time.Duration(val) * time.Second
	case int64:
		return time.Duration(val) * time.Second
	case time.Duration:
		return val
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (s *Settings) Bool(key string, defaultVal bool) bool {
	v, ok := s.Lookup(key)
	if !ok {
		return defaultVal
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultVal
}

// Int returns the integer value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - int: used directly
//   - int64: converted to int
//   - float64: converted to int (only if no fractional part)
func (s *Settings) Int(key string, defaultVal int) int {
	v, ok := s.Lookup(key)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
	}
	return defaultVal
}

// Float returns the float64 value for key, or defaultVal if missing or not convertible.
//
// Accepts:
//   - float64: used directly
//   - int: converted to float64
//   - int64: converted to float64
func (s *Settings) Float(key string, defaultVal float64) float64 {
	v, ok := s.Lookup(key)
	if !ok {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}
	return defaultVal
}
