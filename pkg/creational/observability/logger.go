// Package observability provides the instrumentation used by the instance
// registries: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
)

// LogInstanceCreated logs the first construction of an instance.
// instanceID may be empty when the instance carries no identity.
func LogInstanceCreated(logger *slog.Logger, registry, key, instanceID string) {
	if logger == nil {
		return
	}
	attrs := []any{
		slog.String("registry", registry),
		slog.String("key", key),
	}
	if instanceID != "" {
		attrs = append(attrs, slog.String("instance_id", instanceID))
	}
	logger.Info("instance created", attrs...)
}

// LogInstanceReused logs an acquire that returned an existing instance.
func LogInstanceReused(logger *slog.Logger, registry, key string) {
	if logger == nil {
		return
	}
	logger.Debug("instance reused",
		slog.String("registry", registry),
		slog.String("key", key),
	)
}

// LogSettingChanged logs a setting write on a config module.
func LogSettingChanged(logger *slog.Logger, module, key string, value any) {
	if logger == nil {
		return
	}
	logger.Debug("setting changed",
		slog.String("module", module),
		slog.String("setting", key),
		slog.Any("value", value),
	)
}

// LogCatAdded logs a cat admitted to a shelter.
func LogCatAdded(logger *slog.Logger, shelterID, name, breed string, total int) {
	if logger == nil {
		return
	}
	logger.Debug("cat added",
		slog.String("shelter_id", shelterID),
		slog.String("name", name),
		slog.String("breed", breed),
		slog.Int("total", total),
	)
}
