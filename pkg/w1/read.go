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
	"os"
	"strconv"
	"strings"
)

// crcValidMarker terminates the first payload line when the scratchpad CRC
// matched. Its absence means the transfer was corrupt.
const crcValidMarker = "YES"

// temperatureField prefixes the millidegree value on the second payload line.
const temperatureField = "t="

// DS18B20 operating range in Celsius. Values outside it are disconnection
// artifacts (the classic one is 127.937 from an all-ones scratchpad).
const (
	minCelsius = -55.0
	maxCelsius = 125.0
)

// Read performs a single blocking temperature conversion and returns the
// result in Celsius. The kernel holds the read for the conversion time, up
// to ~750ms at 12-bit resolution.
//
// Failures return a *ReadError whose Kind classifies the fault. Exactly one
// classified error per failed read; there are no internal retries.
func (d Device) Read() (float64, error) {
	raw, err := os.ReadFile(d.dataPath())
	if err != nil {
		return 0, &ReadError{Kind: KindIO, Err: err}
	}
	return parsePayload(string(raw))
}

// parsePayload extracts the Celsius value from a raw w1_slave payload.
// Validity is checked before structure, matching the order the driver
// produces the lines in: a corrupt transfer fails as CRC even when the
// temperature line is also missing.
func parsePayload(payload string) (float64, error) {
	if !strings.Contains(payload, crcValidMarker) {
		return 0, &ReadError{Kind: KindCRC, Err: ErrCRCCheckFailed}
	}

	idx := strings.LastIndex(payload, temperatureField)
	if idx < 0 {
		return 0, &ReadError{Kind: KindParse, Err: ErrNoTemperature}
	}

	field := strings.TrimSpace(payload[idx+len(temperatureField):])
	milli, err := strconv.Atoi(field)
	if err != nil {
		return 0, &ReadError{
			Kind: KindParse,
			Err:  fmt.Errorf("temperature field %q: %w", field, err),
		}
	}

	celsius := float64(milli) / 1000.0
	if celsius < minCelsius || celsius > maxCelsius {
		return 0, &ReadError{
			Kind: KindOutOfRange,
			Err:  fmt.Errorf("temperature %.3f outside probe operating range", celsius),
		}
	}

	return celsius, nil
}
