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

package w1

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
)

// ValidResolution reports whether bits is a conversion resolution the
// DS18B20 family supports.
func ValidResolution(bits int) bool {
	return bits >= 9 && bits <= 12
}

// ConfigureResolution writes the conversion resolution to every device.
// The value is validated before any device is touched; an unsupported value
// returns an error wrapping ErrInvalidResolution with nothing written.
//
// A write failure on an individual device is logged as a warning and the
// device stays usable: probes keep converting at their previous resolution
// (read-only sysfs mounts and missing driver support are common).
func ConfigureResolution(devices []Device, bits int) error {
	if !ValidResolution(bits) {
		return fmt.Errorf("configuring resolution %d: %w", bits, ErrInvalidResolution)
	}

	payload := []byte(strconv.Itoa(bits))
	for _, d := range devices {
		if err := os.WriteFile(d.resolutionPath(), payload, 0o644); err != nil {
			slog.Warn("failed to set probe resolution",
				"probe", d.Label,
				"id", d.ID,
				"error", err,
			)
			continue
		}
		slog.Debug("probe resolution set", "probe", d.Label, "bits", bits)
	}

	return nil
}
