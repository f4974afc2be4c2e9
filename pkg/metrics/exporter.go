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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tempmon/tempmond/pkg/store"
	"github.com/tempmon/tempmond/pkg/w1"
)

// namespace prefixes every metric family this package exposes.
const namespace = "tempmond"

// Exporter renders store contents as Prometheus metrics at scrape time.
// It implements prometheus.Collector.
type Exporter struct {
	store  *store.Store
	labels map[string]string

	temperature *prometheus.Desc
	readErrors  *prometheus.Desc
	lastRead    *prometheus.Desc
}

// NewExporter returns an exporter over the store, labeling series with the
// display names of the given devices. Readings for ids outside the device
// set keep their raw id as the probe label.
func NewExporter(s *store.Store, devices []w1.Device) *Exporter {
	labels := make(map[string]string, len(devices))
	for _, d := range devices {
		labels[d.ID] = d.Label
	}

	return &Exporter{
		store:  s,
		labels: labels,
		temperature: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "temperature_celsius"),
			"Latest temperature reading per probe in degrees Celsius.",
			[]string{"probe"}, nil,
		),
		readErrors: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "read_errors_total"),
			"Cumulative probe read failures by error type.",
			[]string{"probe", "error_type"}, nil,
		),
		lastRead: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "last_read_timestamp_seconds"),
			"Unix time of the probe's most recent successful reading.",
			[]string{"probe"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- e.temperature
	ch <- e.readErrors
	ch <- e.lastRead
}

// Collect implements prometheus.Collector. Each scrape renders a fresh
// snapshot; a probe with no successful reading yet has no temperature
// series, and a probe that never failed has no error series.
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	snap := e.store.Snapshot()

	for id, r := range snap.Readings {
		probe := e.probeLabel(id)
		ch <- prometheus.MustNewConstMetric(
			e.temperature, prometheus.GaugeValue, r.Celsius, probe)
		ch <- prometheus.MustNewConstMetric(
			e.lastRead, prometheus.GaugeValue, float64(r.Time.UnixNano())/1e9, probe)
	}

	for id, kinds := range snap.Errors {
		probe := e.probeLabel(id)
		for kind, count := range kinds {
			ch <- prometheus.MustNewConstMetric(
				e.readErrors, prometheus.CounterValue, float64(count), probe, kind.String())
		}
	}
}

func (e *Exporter) probeLabel(id string) string {
	if label, ok := e.labels[id]; ok && label != "" {
		return label
	}
	return id
}

// NewRegistry returns the daemon's metric registry with the exporter and
// the standard Go, process, and build info collectors registered. A
// dedicated registry keeps the exposition independent of the library
// default and of anything else linked into the process.
func NewRegistry(e *Exporter) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		e,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	return reg
}
