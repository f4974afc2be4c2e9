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
	"errors"
	"fmt"
)

// ErrorKind classifies a probe read failure. The kind is the identity under
// which failures are counted, so values are stable across releases.
type ErrorKind int

const (
	// KindIO covers open and read failures on the device file, typically a
	// disconnected probe or a bus fault.
	KindIO ErrorKind = iota
	// KindCRC means the payload was read but its validity marker was absent,
	// so the scratchpad transfer was corrupt.
	KindCRC
	// KindParse means the payload was structurally malformed: no temperature
	// field or a non-numeric value.
	KindParse
	// KindOutOfRange means the payload parsed to a temperature outside the
	// probe's operating range, a known disconnection artifact.
	KindOutOfRange
)

// Kinds lists every error kind, in declaration order.
func Kinds() []ErrorKind {
	return []ErrorKind{KindIO, KindCRC, KindParse, KindOutOfRange}
}

// String returns the stable label used for the kind in metrics and logs.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindCRC:
		return "crc"
	case KindParse:
		return "parse"
	case KindOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// Sentinel parse errors, matchable with errors.Is.
var (
	// ErrCRCCheckFailed indicates the payload lacked the YES validity marker.
	ErrCRCCheckFailed = errors.New("crc check failed")

	// ErrNoTemperature indicates the payload had no t= field.
	ErrNoTemperature = errors.New("no temperature field in payload")

	// ErrInvalidResolution indicates a resolution outside the supported
	// 9 through 12 bit range.
	ErrInvalidResolution = errors.New("resolution must be between 9 and 12 bits")
)

// ReadError is a classified probe read failure.
type ReadError struct {
	Kind ErrorKind
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err. Unclassified errors report
// KindIO, the catch-all for faults outside the parse pipeline.
func KindOf(err error) ErrorKind {
	var re *ReadError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindIO
}

// DiscoveryError is a failure to enumerate the 1-wire bus directory.
// It is fatal at startup: an unlistable bus means no devices to poll.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("listing 1-wire bus directory %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}
