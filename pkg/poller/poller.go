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

package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/tempmon/tempmond/pkg/defaults"
	"github.com/tempmon/tempmond/pkg/store"
	"github.com/tempmon/tempmond/pkg/w1"
)

// Poller reads every device once per interval and records the outcomes.
type Poller struct {
	store    *store.Store
	devices  []w1.Device
	interval time.Duration
	offsets  map[string]float64
}

// Option customizes a Poller during construction.
type Option func(*Poller)

// WithInterval sets the delay between poll cycles. Non-positive values
// fall back to the default interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		p.interval = d
	}
}

// WithOffsets sets per-device calibration offsets, keyed by device id and
// added to each successful reading before it is stored.
func WithOffsets(offsets map[string]float64) Option {
	return func(p *Poller) {
		p.offsets = offsets
	}
}

// New returns a Poller over the given devices writing into s.
func New(s *store.Store, devices []w1.Device, opts ...Option) *Poller {
	p := &Poller{
		store:    s,
		devices:  devices,
		interval: defaults.ProbeInterval,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.interval <= 0 {
		p.interval = defaults.ProbeInterval
	}

	return p
}

// Run polls until ctx is done and then returns nil. The first cycle
// starts immediately. Cancellation is only honored between cycles, so a
// cycle in flight always completes and the store never reflects a
// partially abandoned pass.
func (p *Poller) Run(ctx context.Context) error {
	slog.Info("polling started",
		"probes", len(p.devices),
		"interval", p.interval.String())

	p.cycle()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("polling stopped")
			return nil
		case <-ticker.C:
			p.cycle()
		}
	}
}

// cycle reads each device once, in discovery order.
func (p *Poller) cycle() {
	for _, d := range p.devices {
		celsius, err := d.Read()
		if err != nil {
			kind := w1.KindOf(err)
			p.store.RecordError(d.ID, kind)
			slog.Warn("probe read failed",
				"probe", d.Label,
				"device", d.ID,
				"error_type", kind.String(),
				"error", err)
			continue
		}

		celsius += p.offsets[d.ID]
		p.store.RecordReading(d.ID, celsius, time.Now())
		slog.Debug("probe read",
			"probe", d.Label,
			"device", d.ID,
			"celsius", celsius)
	}
}
