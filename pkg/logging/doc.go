// Package logging provides structured logging utilities for the packaging tool.
//
// It wraps the standard library slog package with project defaults: JSON
// output to stderr, environment-based level configuration (LOG_LEVEL), module
// and version context on every record, and source location tracking for debug
// logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("sockpkg", version)
//
//	    slog.Info("configuring", "flags", len(flags))
//	}
//
// The LOG_LEVEL environment variable controls verbosity:
//
//	LOG_LEVEL=debug sockpkg build
//
// Supported levels (case-insensitive): DEBUG, INFO (default), WARN/WARNING,
// ERROR.
package logging
