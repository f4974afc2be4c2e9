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

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/tempmon/tempmond/pkg/defaults"
	"github.com/tempmon/tempmond/pkg/w1"
)

// Validation errors, matchable with errors.Is.
var (
	ErrInvalidPort     = errors.New("metrics_port must be between 1 and 65535")
	ErrInvalidInterval = errors.New("probe_interval must be at least 1 second")
	ErrDuplicateLabel  = errors.New("probe labels must be unique")
)

// Settings holds the scalar daemon settings.
type Settings struct {
	// MetricsPort is the HTTP listen port.
	MetricsPort int `toml:"metrics_port" json:"metrics_port" yaml:"metrics_port"`

	// ProbeInterval is the delay between poll cycles, in seconds.
	ProbeInterval int `toml:"probe_interval" json:"probe_interval" yaml:"probe_interval"`

	// ProbeResolution is the conversion resolution in bits, 9 through 12.
	ProbeResolution int `toml:"probe_resolution" json:"probe_resolution" yaml:"probe_resolution"`
}

// Config is the full tempmond configuration.
type Config struct {
	Settings Settings `toml:"settings" json:"settings" yaml:"settings"`

	// ProbeLabels maps sensor ids to display names.
	ProbeLabels map[string]string `toml:"probe_labels" json:"probe_labels" yaml:"probe_labels"`

	// CalibrationOffsets maps sensor ids to a Celsius delta added to every
	// successful reading.
	CalibrationOffsets map[string]float64 `toml:"calibration_offsets" json:"calibration_offsets" yaml:"calibration_offsets"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Settings: Settings{
			MetricsPort:     defaults.MetricsPort,
			ProbeInterval:   int(defaults.ProbeInterval / time.Second),
			ProbeResolution: defaults.ProbeResolution,
		},
		ProbeLabels:        map[string]string{},
		CalibrationOffsets: map[string]float64{},
	}
}

// Load reads and validates the configuration file at path. The file must
// exist; use LoadOrDefault for the optional well-known location.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadOrDefault reads the configuration file at path, falling back to
// defaults when the file does not exist. Parse and validation failures are
// still fatal: a present but broken file should never be silently ignored.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("config file not found, using defaults", "path", path)
		return Default(), nil
	}
	return cfg, err
}

// Validate checks every setting, wrapping the first violation found.
// Resolution shares its sentinel with the bus layer so callers can treat
// config-time and configure-time failures uniformly.
func (c *Config) Validate() error {
	if c.Settings.MetricsPort < 1 || c.Settings.MetricsPort > 65535 {
		return fmt.Errorf("metrics_port %d: %w", c.Settings.MetricsPort, ErrInvalidPort)
	}

	if c.Settings.ProbeInterval < 1 {
		return fmt.Errorf("probe_interval %d: %w", c.Settings.ProbeInterval, ErrInvalidInterval)
	}

	if !w1.ValidResolution(c.Settings.ProbeResolution) {
		return fmt.Errorf("probe_resolution %d: %w", c.Settings.ProbeResolution, w1.ErrInvalidResolution)
	}

	// Two ids sharing a label would collide into one metric series.
	seen := make(map[string]string, len(c.ProbeLabels))
	for id, label := range c.ProbeLabels {
		if prev, ok := seen[label]; ok {
			return fmt.Errorf("label %q bound to both %s and %s: %w", label, prev, id, ErrDuplicateLabel)
		}
		seen[label] = id
	}

	return nil
}

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Settings.ProbeInterval) * time.Second
}
