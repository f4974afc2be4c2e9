/*
Copyright © 2025 The Tempmon Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tempmon/tempmond/pkg/config"
	"github.com/tempmon/tempmond/pkg/defaults"
	"github.com/tempmon/tempmond/pkg/serializer"
)

// parseOutputFormat reads the format flag and rejects unsupported values.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q, supported formats: %s",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return format, nil
}

// loadConfig resolves the daemon configuration from the config flag. An
// explicitly given file must exist, the well-known location is optional.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(defaults.ConfigPath)
}
