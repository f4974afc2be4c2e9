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

// Package store aggregates poll results for concurrent consumption.
//
// The store keeps the latest successful Reading per probe and monotonically
// growing error tallies per probe and error kind. The poller is the only
// writer; scrape and dashboard handlers read through Snapshot, which returns
// a deep copy so readers never observe a half-applied update and never block
// a cycle in progress.
package store

import (
	"sync"
	"time"

	"github.com/tempmon/tempmond/pkg/w1"
)

// Reading is the most recent successful measurement for one probe.
// A Reading survives subsequent failures; its Time tells consumers how
// stale it is.
type Reading struct {
	Celsius float64
	Time    time.Time
}

// Snapshot is a point-in-time copy of the store contents. Mutating a
// snapshot has no effect on the store.
type Snapshot struct {
	// Readings maps sensor id to its latest successful reading. Probes that
	// have never read successfully are absent.
	Readings map[string]Reading

	// Errors maps sensor id to per-kind failure counts. Tallies appear on
	// first failure and only ever grow.
	Errors map[string]map[w1.ErrorKind]uint64
}

// Store holds the latest reading and cumulative error counts per probe.
// Safe for one writer and any number of concurrent readers.
type Store struct {
	mu       sync.RWMutex
	readings map[string]Reading
	errors   map[string]map[w1.ErrorKind]uint64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		readings: make(map[string]Reading),
		errors:   make(map[string]map[w1.ErrorKind]uint64),
	}
}

// RecordReading replaces the probe's reading with a new value captured at
// the given time.
func (s *Store) RecordReading(id string, celsius float64, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings[id] = Reading{Celsius: celsius, Time: at}
}

// RecordError increments the probe's tally for the given kind, creating it
// on first use. The probe's last reading, if any, is left in place.
func (s *Store) RecordError(id string, kind w1.ErrorKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kinds, ok := s.errors[id]
	if !ok {
		kinds = make(map[w1.ErrorKind]uint64)
		s.errors[id] = kinds
	}
	kinds[kind]++
}

// Snapshot returns a consistent deep copy of the current readings and error
// tallies. Any number of snapshots may be taken concurrently with writes.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Readings: make(map[string]Reading, len(s.readings)),
		Errors:   make(map[string]map[w1.ErrorKind]uint64, len(s.errors)),
	}

	for id, r := range s.readings {
		snap.Readings[id] = r
	}
	for id, kinds := range s.errors {
		copied := make(map[w1.ErrorKind]uint64, len(kinds))
		for kind, count := range kinds {
			copied[kind] = count
		}
		snap.Errors[id] = copied
	}

	return snap
}
