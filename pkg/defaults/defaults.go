// Copyright (c) 2025, The Tempmon Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// File locations.
const (
	// ConfigPath is the configuration file read when --config is not given.
	ConfigPath = "/etc/tempmond/config.toml"

	// DevicesDir is the sysfs directory the w1 kernel driver populates
	// with one entry per enumerated 1-wire device.
	DevicesDir = "/sys/bus/w1/devices"
)

// Polling defaults for the probe scheduler.
const (
	// ProbeInterval is the delay between poll cycles.
	ProbeInterval = 15 * time.Second

	// ProbeResolution is the conversion resolution in bits.
	// Valid values are 9 through 12; 12 gives 0.0625 degree steps.
	ProbeResolution = 12
)

// MetricsPort is the port the metrics server listens on.
const MetricsPort = 9184

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIProbesTimeout bounds the one-shot probes command. Each probe read
	// blocks for up to ~750ms in the kernel, so large buses need headroom.
	CLIProbesTimeout = 2 * time.Minute
)

// WatchdogIntervalDivisor divides the systemd WatchdogSec timeout to get
// the keepalive period.
const WatchdogIntervalDivisor = 2
