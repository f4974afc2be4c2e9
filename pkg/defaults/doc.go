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

// Package defaults provides centralized configuration constants for tempmond.
//
// This package defines file locations, polling parameters, and HTTP server
// timeouts used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/tempmon/tempmond/pkg/defaults"
//
//	cfg.Interval = defaults.ProbeInterval
//
// # Guidelines
//
// When choosing values:
//
//   - Poll interval: 15s default; a 12-bit conversion takes ~750ms per probe,
//     so the interval must comfortably exceed probeCount * 750ms
//   - Server shutdown: 30s for graceful shutdown
//   - Metrics port: 9184, outside the range registered by common exporters
package defaults
