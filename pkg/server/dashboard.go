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

package server

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tempmon/tempmond/pkg/store"
	"github.com/tempmon/tempmond/pkg/w1"
)

// Temperature bands for the dashboard color coding, in degrees Celsius.
const (
	bandFrostBelow = 22.0
	bandOkBelow    = 38.0
	bandWarmBelow  = 42.0
)

const dashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="15">
<title>{{.Name}}</title>
<style>
body { background: #2e3440; color: #eceff4; font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 42rem; padding: 0 1rem; }
h1 { font-size: 1.4rem; }
h1 small { font-size: .8rem; color: #81a1c1; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: .5rem .75rem; border-bottom: 1px solid #4c566a; }
td.value { font-variant-numeric: tabular-nums; font-weight: bold; }
td.frost { color: #88c0d0; }
td.ok { color: #a3be8c; }
td.warm { color: #ebcb8b; }
td.hot { color: #bf616a; }
td.nodata, td.errors { color: #d8dee9; opacity: .6; }
footer { margin-top: 1.5rem; font-size: .8rem; opacity: .7; }
footer a { color: #81a1c1; }
</style>
</head>
<body>
<h1>{{.Name}} <small>{{.Version}}</small></h1>
<table>
<tr><th>Probe</th><th>Temperature</th><th>Age</th><th>Errors</th></tr>
{{range .Rows}}<tr>
<td>{{.Probe}}</td>
{{if .HasData}}<td class="value {{.Band}}">{{.Celsius}} &deg;C</td>
<td>{{.Age}}</td>
{{else}}<td class="nodata">no data</td>
<td></td>
{{end}}<td class="errors">{{.Errors}}</td>
</tr>
{{end}}</table>
<footer>Generated {{.Now}} &middot; <a href="/metrics">metrics</a> &middot; <a href="/health">health</a></footer>
</body>
</html>
`

// Dashboard serves a human-readable view of the latest probe readings.
type Dashboard struct {
	store   *store.Store
	devices []w1.Device
	name    string
	version string
	tmpl    *template.Template
}

// dashboardRow is one probe line on the rendered page.
type dashboardRow struct {
	Probe   string
	HasData bool
	Celsius string
	Band    string
	Age     string
	Errors  string
}

// dashboardData is the template input.
type dashboardData struct {
	Name    string
	Version string
	Now     string
	Rows    []dashboardRow
}

// NewDashboard returns a dashboard over the store, listing the given
// devices in discovery order.
func NewDashboard(s *store.Store, devices []w1.Device, name, version string) *Dashboard {
	return &Dashboard{
		store:   s,
		devices: devices,
		name:    name,
		version: version,
		tmpl:    template.Must(template.New("dashboard").Parse(dashboardTemplate)),
	}
}

// Handle renders the dashboard page.
func (d *Dashboard) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := dashboardData{
		Name:    d.name,
		Version: d.version,
		Now:     time.Now().Format(time.RFC1123),
		Rows:    d.buildRows(time.Now()),
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, data); err != nil {
		slog.Error("failed to render dashboard", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write dashboard response", "error", err)
	}
}

func (d *Dashboard) buildRows(now time.Time) []dashboardRow {
	snap := d.store.Snapshot()
	// Caser instances are stateful and must not cross requests.
	caser := cases.Title(language.English)

	rows := make([]dashboardRow, 0, len(d.devices))
	for _, dev := range d.devices {
		row := dashboardRow{
			Probe:  dev.Label,
			Errors: formatTallies(caser, snap.Errors[dev.ID]),
		}

		if reading, ok := snap.Readings[dev.ID]; ok {
			row.HasData = true
			row.Celsius = strconv.FormatFloat(reading.Celsius, 'f', 2, 64)
			row.Band = bandFor(reading.Celsius)
			row.Age = now.Sub(reading.Time).Truncate(time.Second).String()
		}

		rows = append(rows, row)
	}

	return rows
}

// bandFor classifies a temperature into its display band.
func bandFor(celsius float64) string {
	switch {
	case celsius < bandFrostBelow:
		return "frost"
	case celsius < bandOkBelow:
		return "ok"
	case celsius < bandWarmBelow:
		return "warm"
	default:
		return "hot"
	}
}

// formatTallies renders error counts as "Crc 2, Io 1", ordered by kind.
func formatTallies(caser cases.Caser, tallies map[w1.ErrorKind]uint64) string {
	if len(tallies) == 0 {
		return ""
	}

	parts := make([]string, 0, len(tallies))
	for _, kind := range w1.Kinds() {
		count, ok := tallies[kind]
		if !ok {
			continue
		}
		label := caser.String(strings.ReplaceAll(kind.String(), "_", " "))
		parts = append(parts, fmt.Sprintf("%s %d", label, count))
	}

	return strings.Join(parts, ", ")
}
