// Package cli implements the command-line interface for the tempmond daemon.
//
// # Overview
//
// The tempmond CLI starts the temperature monitoring daemon and provides a
// one-shot probe scan for verifying sensor wiring and configuration. It is
// aimed at operators running DS18B20 family probes on the kernel 1-wire bus,
// typically on a Raspberry Pi or similar board.
//
// # Commands
//
// run - Start the monitoring daemon:
//
//	tempmond run [--devices-dir DIR]
//
// Discovers probes once at startup, applies the configured conversion
// resolution, polls each probe on a fixed interval, and serves Prometheus
// metrics plus a status dashboard over HTTP until interrupted.
//
// probes - Scan the bus and read every probe once:
//
//	tempmond probes [--format yaml|json|table] [--output FILE]
//
// Reads each discovered probe a single time with the daemon's label and
// calibration configuration applied. Failed probes are reported with their
// failure class instead of a temperature.
//
// # Global Flags
//
//	--config, -c   Config file path (default: /etc/tempmond/config.toml)
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// The probes command supports yaml and json for machine consumption and a
// flattened table view for terminals. Table is the default.
//
// # Environment Variables
//
//	TEMPMOND_CONFIG       Config file path (same as --config)
//	TEMPMOND_DEVICES_DIR  1-wire bus directory (same as --devices-dir)
//	LOG_LEVEL             Log verbosity (same as --log-level)
//
// # Exit Codes
//
//	0  Success
//	1  Error (invalid arguments, config failure, daemon failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/monitor - Daemon assembly and lifecycle
//   - pkg/w1 - 1-wire bus discovery and probe reads
//   - pkg/config - TOML configuration
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/tempmon/tempmond/pkg/cli.version=1.0.0'"
package cli
