/*
Package settings provides a mutable, concurrency-safe settings map with
typed accessors.

# Overview

Settings wraps a map[string]any. Values of any type are accepted without
validation. Lookup reports presence explicitly, so a stored 0, "" or false
is distinguishable from a key that was never set:

	s := settings.New()
	s.Set("port", 5432)
	s.Set("debug", false)

	v, ok := s.Lookup("debug")   // false, true
	v, ok = s.Lookup("timeout")  // nil, false

# Typed Accessors

The typed accessors return a default when the key is missing or the value
cannot be converted:

	port := s.Int("port", 3306)                        // 5432
	timeout := s.Duration("timeout", 30*time.Second)  // 30s
	host := s.String("host", "localhost")             // "localhost"

Duration handles multiple input types:
  - string: parsed with time.ParseDuration ("30s", "1h30m")
  - int/float64: interpreted as seconds
  - time.Duration: used directly

Numeric types handle reasonable conversions:
  - int from float64 (only without a fractional part)
  - float64 from int

# Thread Safety

All methods are safe for concurrent use. Raw returns a copy, so callers
may modify the result freely.
*/
package settings
