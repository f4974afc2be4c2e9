/*
Copyright © 2025 The Tempmon Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/tempmon/tempmond/pkg/defaults"
	"github.com/tempmon/tempmond/pkg/logging"
	"github.com/tempmon/tempmond/pkg/serializer"
)

const (
	name           = "tempmond"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared across commands. Parent flags are visible to subcommands, so
// config and log-level live on the root command only.
var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file path (default " + defaults.ConfigPath + ")",
		Sources: cli.EnvVars("TEMPMOND_CONFIG"),
	}

	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}

	devicesDirFlag = &cli.StringFlag{
		Name:    "devices-dir",
		Value:   defaults.DevicesDir,
		Usage:   "1-wire bus directory to scan for probes",
		Sources: cli.EnvVars("TEMPMOND_DEVICES_DIR"),
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (defaults to stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatTable),
		Usage:   "Output format (yaml, json, table)",
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Usage:                 "1-wire temperature monitoring daemon",
		Description: fmt.Sprintf(`tempmond - 1-wire temperature monitoring daemon

Version: %s
Commit:  %s
Built:   %s

Polls DS18B20 family probes on the kernel 1-wire bus and exposes their
readings as Prometheus metrics over HTTP.`, version, commit, date),
		Flags:  []cli.Flag{configFlag, logLevelFlag},
		Before: initLogger,
		Commands: []*cli.Command{
			runCmd(),
			probesCmd(),
		},
	}
}

// Execute runs the root command. It is called by main.main() and owns process
// exit on failure.
func Execute() {
	// First SIGINT/SIGTERM cancels the command context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initLogger configures slog after flags are parsed so overrides like
// --log-level take effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}

// commandLister prints the visible subcommand names for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	out := cmd.Writer
	if out == nil {
		out = os.Stdout
	}
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		fmt.Fprintln(out, sub.Name)
	}
}
