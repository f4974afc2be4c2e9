/*
Copyright © 2025 The Tempmon Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/tempmon/tempmond/pkg/defaults"
	"github.com/tempmon/tempmond/pkg/serializer"
	"github.com/tempmon/tempmond/pkg/w1"
)

// probeReading is one row of probes command output.
type probeReading struct {
	ID      string  `json:"id" yaml:"id"`
	Label   string  `json:"label" yaml:"label"`
	Celsius float64 `json:"celsius" yaml:"celsius"`
	Status  string  `json:"status" yaml:"status"`
}

const statusOK = "ok"

func probesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "probes",
		EnableShellCompletion: true,
		Usage:                 "Discover probes and read each one once",
		Description: `Scan the 1-wire bus for DS18B20 family probes and print one temperature
reading from each.

Probe labels and calibration offsets from the configuration are applied the
same way the daemon applies them, which makes this command useful to verify
wiring and configuration before enabling the service. A probe that fails to
read is reported with the failure class (io, crc, parse, out_of_range)
instead of a temperature.

Each probe conversion can take close to a second at the highest resolution,
so a full scan of a large bus is not instant.

# Examples

Read every probe and print a table:
  tempmond probes

Write readings as JSON to a file:
  tempmond probes --format json --output readings.json`,
		Flags: []cli.Flag{devicesDirFlag, outputFlag, formatFlag},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIProbesTimeout)
			defer cancel()

			devices, err := w1.Discover(cmd.String("devices-dir"), cfg.ProbeLabels)
			if err != nil {
				return fmt.Errorf("discovering probes: %w", err)
			}
			if len(devices) == 0 {
				slog.Warn("no temperature probes found", "dir", cmd.String("devices-dir"))
			}

			rows, err := readAllProbes(ctx, devices, cfg.CalibrationOffsets)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, rows)
		},
	}
}

// readAllProbes reads every device in discovery order. Read failures become
// rows carrying the failure class, cancellation aborts the scan.
func readAllProbes(ctx context.Context, devices []w1.Device, offsets map[string]float64) ([]probeReading, error) {
	rows := make([]probeReading, 0, len(devices))

	for _, d := range devices {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("probe scan interrupted: %w", err)
		}

		row := probeReading{
			ID:     d.ID,
			Label:  d.Label,
			Status: statusOK,
		}

		celsius, err := d.Read()
		if err != nil {
			row.Status = w1.KindOf(err).String()
			slog.Warn("probe read failed",
				"probe", d.Label,
				"device", d.ID,
				"error", err)
		} else {
			row.Celsius = celsius + offsets[d.ID]
		}

		rows = append(rows, row)
	}

	return rows, nil
}
