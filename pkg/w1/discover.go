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
	"os"
	"path/filepath"
	"strings"
)

// Discover enumerates temperature probes under the bus directory dir.
// Entries whose names carry the DS18B20 family prefix become Devices, with
// labels bound from the provided id-to-name map and the raw id as fallback.
// The returned slice is ordered lexically by id, so repeated runs over the
// same bus produce the same order.
//
// An empty bus yields an empty slice and no error. An unlistable directory
// yields a *DiscoveryError.
func Discover(dir string, labels map[string]string) ([]Device, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &DiscoveryError{Dir: dir, Err: err}
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, FamilyPrefix) {
			continue
		}

		label := labels[name]
		if label == "" {
			label = name
		}

		devices = append(devices, Device{
			ID:    name,
			Label: label,
			Path:  filepath.Join(dir, name),
		})
	}

	return devices, nil
}
