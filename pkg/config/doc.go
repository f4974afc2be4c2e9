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

// Package config loads and validates the tempmond TOML configuration.
//
// The configuration file has three sections, all optional:
//
//	[settings]
//	metrics_port = 9184     # HTTP listen port
//	probe_interval = 15     # seconds between poll cycles
//	probe_resolution = 12   # conversion resolution in bits (9-12)
//
//	[probe_labels]
//	"28-0317459c2dff" = "fermenter"
//	"28-051169f2b2ff" = "ambient"
//
//	[calibration_offsets]
//	"28-0317459c2dff" = -0.3
//
// Probe labels bind human-friendly names to sensor ids for metrics and the
// dashboard; unlabeled probes fall back to their raw id. Calibration offsets
// are added to successful readings in degrees Celsius.
//
// Load requires the file to exist and is used when the operator names a file
// explicitly. LoadOrDefault tolerates a missing file at the well-known
// default path and falls back to defaults, so a bare install runs without
// any configuration.
//
// All values are validated at load time; the process refuses to start on an
// invalid configuration rather than discovering the problem mid-poll.
package config
