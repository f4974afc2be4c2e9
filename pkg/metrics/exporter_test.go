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
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tempmon/tempmond/pkg/store"
	"github.com/tempmon/tempmond/pkg/w1"
)

func testDevices() []w1.Device {
	return []w1.Device{
		{ID: "28-0000056a1234", Label: "boiler", Path: "/sys/bus/w1/devices/28-0000056a1234"},
		{ID: "28-0000056b5678", Label: "28-0000056b5678", Path: "/sys/bus/w1/devices/28-0000056b5678"},
	}
}

func TestExporterEmpty(t *testing.T) {
	e := NewExporter(store.New(), testDevices())

	if got := testutil.CollectAndCount(e); got != 0 {
		t.Errorf("empty store produced %d metrics, want 0", got)
	}
}

func TestExporterReadings(t *testing.T) {
	s := store.New()
	at := time.Unix(1750000000, 0)
	s.RecordReading("28-0000056a1234", 17.875, at)
	s.RecordReading("28-0000056b5678", 22.812, at)

	e := NewExporter(s, testDevices())

	expected := `
# HELP tempmond_last_read_timestamp_seconds Unix time of the probe's most recent successful reading.
# TYPE tempmond_last_read_timestamp_seconds gauge
tempmond_last_read_timestamp_seconds{probe="28-0000056b5678"} 1.75e+09
tempmond_last_read_timestamp_seconds{probe="boiler"} 1.75e+09
# HELP tempmond_temperature_celsius Latest temperature reading per probe in degrees Celsius.
# TYPE tempmond_temperature_celsius gauge
tempmond_temperature_celsius{probe="28-0000056b5678"} 22.812
tempmond_temperature_celsius{probe="boiler"} 17.875
`

	if err := testutil.CollectAndCompare(e, strings.NewReader(expected),
		"tempmond_temperature_celsius", "tempmond_last_read_timestamp_seconds"); err != nil {
		t.Error(err)
	}
}

func TestExporterErrorTallies(t *testing.T) {
	s := store.New()
	s.RecordError("28-0000056a1234", w1.KindCRC)
	s.RecordError("28-0000056a1234", w1.KindCRC)
	s.RecordError("28-0000056b5678", w1.KindIO)

	e := NewExporter(s, testDevices())

	expected := `
# HELP tempmond_read_errors_total Cumulative probe read failures by error type.
# TYPE tempmond_read_errors_total counter
tempmond_read_errors_total{error_type="crc",probe="boiler"} 2
tempmond_read_errors_total{error_type="io",probe="28-0000056b5678"} 1
`

	if err := testutil.CollectAndCompare(e, strings.NewReader(expected),
		"tempmond_read_errors_total"); err != nil {
		t.Error(err)
	}
}

func TestExporterLabelFallback(t *testing.T) {
	s := store.New()
	// A reading recorded for an id that was never discovered keeps the id.
	s.RecordReading("28-00000dead2beef", -10.562, time.Unix(1750000000, 0))

	e := NewExporter(s, testDevices())

	expected := `
# HELP tempmond_temperature_celsius Latest temperature reading per probe in degrees Celsius.
# TYPE tempmond_temperature_celsius gauge
tempmond_temperature_celsius{probe="28-00000dead2beef"} -10.562
`

	if err := testutil.CollectAndCompare(e, strings.NewReader(expected),
		"tempmond_temperature_celsius"); err != nil {
		t.Error(err)
	}
}

func TestExporterMixedState(t *testing.T) {
	s := store.New()
	at := time.Unix(1750000000, 0)
	s.RecordReading("28-0000056a1234", 41.5, at)
	s.RecordError("28-0000056a1234", w1.KindParse)

	e := NewExporter(s, testDevices())

	// One reading, one timestamp, one error series.
	if got := testutil.CollectAndCount(e); got != 3 {
		t.Errorf("got %d metrics, want 3", got)
	}
}

func TestNewRegistry(t *testing.T) {
	s := store.New()
	s.RecordReading("28-0000056a1234", 17.875, time.Unix(1750000000, 0))

	reg := NewRegistry(NewExporter(s, testDevices()))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := make(map[string]bool, len(families))
	for _, mf := range families {
		found[mf.GetName()] = true
	}

	for _, name := range []string{
		"tempmond_temperature_celsius",
		"go_goroutines",
		"go_build_info",
	} {
		if !found[name] {
			t.Errorf("registry gather missing %s", name)
		}
	}
}
