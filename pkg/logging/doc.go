// Package logging provides structured logging utilities for tempmond components.
//
// # Overview
//
// This package wraps the standard library slog package with tempmond-specific
// defaults and conventions for consistent logging across all components. It
// supports environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
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
//	    logging.SetDefaultStructuredLogger("tempmond", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("poll cycle complete", "probes", 4)
//	    slog.Debug("raw payload", "data", payload)
//	    slog.Error("read failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("probes", "v2.0.0", "debug")
//	logger.Info("bus scan complete", "devices", 3)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("tempmond", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug tempmond run
//	LOG_LEVEL=error tempmond probes
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
//	    "msg": "server started",
//	    "module": "tempmond",
//	    "version": "v1.0.0",
//	    "port": 9184
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "poller.(*Poller).cycle",
//	        "file": "poller.go",
//	        "line": 45
//	    },
//	    "msg": "probe read",
//	    "module": "tempmond",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/monitor - daemon lifecycle logging
//   - pkg/poller - poll cycle logging
//   - pkg/server - HTTP request logging
//   - pkg/w1 - bus discovery and probe read logging
//
// All components share consistent logging format and configuration.
package logging
