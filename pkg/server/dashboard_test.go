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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tempmon/tempmond/pkg/store"
	"github.com/tempmon/tempmond/pkg/w1"
)

func dashboardDevices() []w1.Device {
	return []w1.Device{
		{ID: "28-0317459c2dff", Label: "boiler"},
		{ID: "28-051169f2b2ff", Label: "28-051169f2b2ff"},
	}
}

func TestDashboardRendersReadings(t *testing.T) {
	s := store.New()
	s.RecordReading("28-0317459c2dff", 41.578, time.Now().Add(-12*time.Second))

	d := NewDashboard(s, dashboardDevices(), "tempmond", "1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	d.Handle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html content type, got %s", ct)
	}

	body := rec.Body.String()

	if !strings.Contains(body, "boiler") {
		t.Error("expected probe label in page")
	}
	if !strings.Contains(body, "41.58") {
		t.Error("expected formatted reading in page")
	}
	if !strings.Contains(body, "tempmond") || !strings.Contains(body, "1.2.3") {
		t.Error("expected name and version in page")
	}
	if !strings.Contains(body, `href="/metrics"`) || !strings.Contains(body, `href="/health"`) {
		t.Error("expected footer links to /metrics and /health")
	}
}

func TestDashboardNoData(t *testing.T) {
	d := NewDashboard(store.New(), dashboardDevices(), "tempmond", "dev")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	d.Handle(rec, req)

	body := rec.Body.String()

	if !strings.Contains(body, "no data") {
		t.Error("expected 'no data' for probes without readings")
	}
	// Device without a configured label shows its raw id.
	if !strings.Contains(body, "28-051169f2b2ff") {
		t.Error("expected raw device id as probe label")
	}
}

func TestDashboardErrorTallies(t *testing.T) {
	s := store.New()
	s.RecordError("28-0317459c2dff", w1.KindCRC)
	s.RecordError("28-0317459c2dff", w1.KindCRC)
	s.RecordError("28-0317459c2dff", w1.KindOutOfRange)

	d := NewDashboard(s, dashboardDevices(), "tempmond", "dev")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	d.Handle(rec, req)

	body := rec.Body.String()

	if !strings.Contains(body, "Crc 2") {
		t.Errorf("expected crc tally in page, got:\n%s", body)
	}
	if !strings.Contains(body, "Out Of Range 1") {
		t.Errorf("expected out of range tally in page, got:\n%s", body)
	}
}

func TestDashboardMethodNotAllowed(t *testing.T) {
	d := NewDashboard(store.New(), dashboardDevices(), "tempmond", "dev")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	d.Handle(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		celsius float64
		want    string
	}{
		{-10.5, "frost"},
		{21.99, "frost"},
		{22.0, "ok"},
		{37.99, "ok"},
		{38.0, "warm"},
		{41.99, "warm"},
		{42.0, "hot"},
		{99.0, "hot"},
	}

	for _, tt := range tests {
		if got := bandFor(tt.celsius); got != tt.want {
			t.Errorf("bandFor(%v) = %q, want %q", tt.celsius, got, tt.want)
		}
	}
}
