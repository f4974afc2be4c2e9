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

// Package metrics exposes the probe store as Prometheus metrics.
//
// The Exporter is a prometheus.Collector that renders a store snapshot into
// const metrics on every scrape, so the exposition always reflects the last
// committed poll results without the scrape ever waiting on a cycle in
// progress. Three families are exposed:
//
//	tempmond_temperature_celsius{probe}             latest reading per probe
//	tempmond_read_errors_total{probe,error_type}    cumulative failures
//	tempmond_last_read_timestamp_seconds{probe}     staleness signal
//
// The probe label is the configured display name, falling back to the raw
// sensor id for unlabeled probes.
//
// Metrics are registered on a dedicated registry rather than the global
// default, together with the standard Go, process, and build info
// collectors. NewRegistry builds that registry for the server to serve via
// promhttp.
package metrics
