// Package logging provides structured logging utilities for node-facts components.
//
// # Overview
//
// This package wraps the standard library slog package with node-facts defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Level taken from a flag with LOG_LEVEL as fallback
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("nodefacts", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Debug("resolver blocked", "resolver", "systemd")
//	    slog.Error("resolver failed", "resolver", "memory", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("nodefacts", "v2.0.0", "debug")
//	logger.Info("resolving facts", "resolvers", 5)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug nodefacts
//	LOG_LEVEL=error nodefacts processors
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "external facts loaded",
//	    "module": "nodefacts",
//	    "version": "v1.0.0",
//	    "count": 3
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "facts.(*Collection).run",
//	        "file": "collection.go",
//	        "line": 45
//	    },
//	    "msg": "resolver finished",
//	    "module": "nodefacts",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("resolver finished",
//	    "resolver", "processor",
//	    "facts", 8,
//	    "duration_ms", 125,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("systemd unavailable")       // Absent platform data
//	slog.Warn("failed to load external facts") // Operator input problems
//	slog.Error("resolver failed")           // Defects
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/snapshotter - Snapshot progress
//   - pkg/facts - Resolver lifecycle and defect logging
//   - pkg/collector - Platform collector logging
//
// All components share consistent logging format and configuration.
package logging
