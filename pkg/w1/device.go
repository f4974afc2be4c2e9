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

import "path/filepath"

// FamilyPrefix is the directory name prefix of DS18B20 family probes,
// the two-digit family code followed by the kernel's separator.
const FamilyPrefix = "28-"

const (
	slaveFile      = "w1_slave"
	resolutionFile = "resolution"
)

// Device is one enumerated temperature probe on the 1-wire bus.
type Device struct {
	// ID is the kernel-assigned device name, e.g. 28-0317459c2dff.
	ID string `json:"id" yaml:"id"`

	// Label is the display name bound via configuration. Equals ID when no
	// mapping exists.
	Label string `json:"label" yaml:"label"`

	// Path is the device directory under the bus root.
	Path string `json:"path" yaml:"path"`
}

// dataPath is the file whose read triggers a conversion.
func (d Device) dataPath() string {
	return filepath.Join(d.Path, slaveFile)
}

// resolutionPath is the file selecting conversion resolution.
func (d Device) resolutionPath() string {
	return filepath.Join(d.Path, resolutionFile)
}
