/*
Copyright © 2025 The Tempmon Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tempmon/tempmond/pkg/monitor"
)

func runCmd() *cli.Command {
	return &cli.Command{
		Name:                  "run",
		EnableShellCompletion: true,
		Usage:                 "Run the temperature monitoring daemon",
		Description: `Run the monitoring daemon in the foreground.

The daemon discovers every DS18B20 family probe on the 1-wire bus once at
startup, applies the configured conversion resolution, and then polls each
probe on a fixed interval. Readings and per-probe error tallies are served
as Prometheus metrics on the configured HTTP port, alongside a small status
dashboard on the root path.

Configuration is read from --config when given (the file must exist), or
from the well-known location otherwise (missing file falls back to built-in
defaults).

When started by systemd with Type=notify, the daemon reports readiness and
answers watchdog pings.

# Examples

Run with the default configuration:
  tempmond run

Run with an explicit config file and verbose logging:
  tempmond --config /etc/tempmond/config.toml --log-level debug run`,
		Flags: []cli.Flag{devicesDirFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return monitor.Run(ctx, monitor.Options{
				Config:     cfg,
				DevicesDir: cmd.String("devices-dir"),
				Name:       name,
				Version:    version,
			})
		},
	}
}
