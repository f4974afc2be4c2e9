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

// Package w1 accesses DS18B20 family temperature probes through the sysfs
// interface of the Linux 1-wire subsystem.
//
// The kernel w1 driver enumerates every device on the bus as a directory
// under /sys/bus/w1/devices, named <family>-<address>. Temperature probes
// carry family code 28. Each probe directory exposes two files this package
// uses:
//
//   - w1_slave: reading it triggers a temperature conversion and returns the
//     raw scratchpad dump plus a millidegree temperature field
//   - resolution: writing 9..12 selects the conversion resolution in bits
//
// A w1_slave payload looks like:
//
//	6d 01 4b 46 7f ff 0c 10 14 : crc=14 YES
//	6d 01 4b 46 7f ff 0c 10 14 t=22812
//
// The first line ends with YES when the scratchpad CRC matched, the second
// carries the temperature in thousandths of a degree Celsius.
//
// # Usage
//
//	devices, err := w1.Discover(defaults.DevicesDir, cfg.ProbeLabels)
//	if err != nil {
//	    return err
//	}
//	if err := w1.ConfigureResolution(devices, 12); err != nil {
//	    return err
//	}
//	for _, d := range devices {
//	    celsius, err := d.Read()
//	    ...
//	}
//
// Read failures carry an ErrorKind classifying the fault (I/O, CRC, parse,
// out of range) so callers can account for them without inspecting error
// strings.
package w1
