// Package core implements the violin chart pipeline: label extraction,
// record preparation and rendering of the HTML artifact.
package core

import "log/slog"

// ensureLogger keeps every entry point safe to call without a logger.
func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
