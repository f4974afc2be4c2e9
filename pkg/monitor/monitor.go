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

package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/tempmon/tempmond/pkg/config"
	"github.com/tempmon/tempmond/pkg/defaults"
	"github.com/tempmon/tempmond/pkg/logging"
	"github.com/tempmon/tempmond/pkg/metrics"
	"github.com/tempmon/tempmond/pkg/poller"
	"github.com/tempmon/tempmond/pkg/server"
	"github.com/tempmon/tempmond/pkg/store"
	"github.com/tempmon/tempmond/pkg/w1"
)

// Options configures a monitor run.
type Options struct {
	// Config is the validated daemon configuration. Nil means defaults.
	Config *config.Config

	// DevicesDir is the 1-wire sysfs directory to scan. Empty means the
	// standard kernel location.
	DevicesDir string

	// Name and Version identify the daemon in logs and on the dashboard.
	Name    string
	Version string
}

// Run starts the daemon and blocks until ctx is canceled or a
// SIGINT/SIGTERM arrives. Discovery happens once at startup; a bus
// directory that cannot be listed is fatal.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	devicesDir := opts.DevicesDir
	if devicesDir == "" {
		devicesDir = defaults.DevicesDir
	}

	name := opts.Name
	if name == "" {
		name = "tempmond"
	}

	devices, err := w1.Discover(devicesDir, cfg.ProbeLabels)
	if err != nil {
		return fmt.Errorf("discovering probes: %w", err)
	}

	if len(devices) == 0 {
		slog.Warn("no temperature probes found, serving empty metrics", "dir", devicesDir)
	}
	for _, d := range devices {
		slog.Info("probe discovered", "device", d.ID, "probe", d.Label)
	}

	if err := w1.ConfigureResolution(devices, cfg.Settings.ProbeResolution); err != nil {
		return fmt.Errorf("configuring resolution: %w", err)
	}

	st := store.New()
	registry := metrics.NewRegistry(metrics.NewExporter(st, devices))
	dash := server.NewDashboard(st, devices, name, opts.Version)

	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog: logging.NewLogLogger(slog.LevelError, false),
	})

	srvCfg := server.NewConfig()
	srvCfg.Port = cfg.Settings.MetricsPort

	srv := server.New(
		server.WithConfig(srvCfg),
		server.WithName(name),
		server.WithVersion(opts.Version),
		server.WithMetrics(registry),
		server.WithHandler(map[string]http.HandlerFunc{
			"/":        dash.Handle,
			"/metrics": metricsHandler.ServeHTTP,
		}),
	)

	p := poller.New(st, devices,
		poller.WithInterval(cfg.Interval()),
		poller.WithOffsets(cfg.CalibrationOffsets),
	)

	// Graceful shutdown on service manager stop or interrupt
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return p.Run(gctx)
	})

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		return notifyWatchdog(gctx)
	})

	notify(daemon.SdNotifyReady)
	defer notify(daemon.SdNotifyStopping)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("monitor error: %w", err)
	}

	slog.Info("monitor stopped gracefully")
	return nil
}

// notify sends a state notification to systemd. Outside of systemd this
// is a no-op.
func notify(state string) {
	if _, err := daemon.SdNotify(false, state); err != nil {
		slog.Warn("systemd notification failed", "state", state, "error", err)
	}
}

// notifyWatchdog pets the systemd watchdog at half the configured
// interval. Returns immediately when no watchdog is armed.
func notifyWatchdog(ctx context.Context) error {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("reading watchdog configuration: %w", err)
	}
	if interval == 0 {
		return nil
	}

	slog.Info("systemd watchdog armed", "interval", interval.String())

	ticker := time.NewTicker(interval / defaults.WatchdogIntervalDivisor)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			notify(daemon.SdNotifyWatchdog)
		}
	}
}
