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

package store

import (
	"sync"
	"testing"
	"time"

	"github.com/tempmon/tempmond/pkg/w1"
)

func TestNewStoreIsEmpty(t *testing.T) {
	snap := New().Snapshot()

	if len(snap.Readings) != 0 {
		t.Errorf("expected no readings, got %d", len(snap.Readings))
	}
	if len(snap.Errors) != 0 {
		t.Errorf("expected no error tallies, got %d", len(snap.Errors))
	}
}

func TestRecordReadingReplaces(t *testing.T) {
	s := New()
	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(15 * time.Second)

	s.RecordReading("28-aa", 17.875, first)
	s.RecordReading("28-aa", 18.0, second)

	snap := s.Snapshot()
	if len(snap.Readings) != 1 {
		t.Fatalf("expected a single reading per probe, got %d", len(snap.Readings))
	}

	r := snap.Readings["28-aa"]
	if r.Celsius != 18.0 {
		t.Errorf("expected latest value 18.0, got %v", r.Celsius)
	}
	if !r.Time.Equal(second) {
		t.Errorf("expected latest timestamp %v, got %v", second, r.Time)
	}
}

func TestReadingSurvivesErrors(t *testing.T) {
	s := New()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.RecordReading("28-aa", 21.5, at)
	s.RecordError("28-aa", w1.KindIO)
	s.RecordError("28-aa", w1.KindCRC)

	snap := s.Snapshot()
	r, ok := snap.Readings["28-aa"]
	if !ok {
		t.Fatal("expected stale reading to survive failures")
	}
	if r.Celsius != 21.5 || !r.Time.Equal(at) {
		t.Errorf("stale reading changed: got %+v", r)
	}
}

func TestErrorTallies(t *testing.T) {
	s := New()

	s.RecordError("28-aa", w1.KindCRC)
	s.RecordError("28-aa", w1.KindCRC)
	s.RecordError("28-aa", w1.KindIO)
	s.RecordError("28-bb", w1.KindParse)

	snap := s.Snapshot()

	if got := snap.Errors["28-aa"][w1.KindCRC]; got != 2 {
		t.Errorf("expected crc tally 2, got %d", got)
	}
	if got := snap.Errors["28-aa"][w1.KindIO]; got != 1 {
		t.Errorf("expected io tally 1, got %d", got)
	}
	if got := snap.Errors["28-bb"][w1.KindParse]; got != 1 {
		t.Errorf("expected parse tally 1, got %d", got)
	}

	// Tallies are lazy: kinds that never fired have no entry.
	if _, ok := snap.Errors["28-aa"][w1.KindOutOfRange]; ok {
		t.Error("expected no tally for a kind that never fired")
	}
	if _, ok := snap.Errors["28-cc"]; ok {
		t.Error("expected no tally entry for a probe that never failed")
	}
}

func TestUnknownProbesAbsent(t *testing.T) {
	s := New()
	s.RecordReading("28-aa", 20.0, time.Now())

	snap := s.Snapshot()
	if _, ok := snap.Readings["28-zz"]; ok {
		t.Error("expected no reading for a probe never recorded")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.RecordReading("28-aa", 20.0, at)
	s.RecordError("28-aa", w1.KindIO)

	snap := s.Snapshot()

	// Mutating the snapshot must not leak into the store.
	snap.Readings["28-aa"] = Reading{Celsius: 99.0, Time: at}
	snap.Errors["28-aa"][w1.KindIO] = 42

	fresh := s.Snapshot()
	if fresh.Readings["28-aa"].Celsius != 20.0 {
		t.Errorf("snapshot mutation leaked into store: %v", fresh.Readings["28-aa"])
	}
	if fresh.Errors["28-aa"][w1.KindIO] != 1 {
		t.Errorf("snapshot mutation leaked into error tallies: %d", fresh.Errors["28-aa"][w1.KindIO])
	}

	// Writes after a snapshot must not alter the snapshot.
	earlier := s.Snapshot()
	s.RecordReading("28-aa", 25.0, at.Add(time.Second))
	if earlier.Readings["28-aa"].Celsius != 20.0 {
		t.Errorf("later write altered an existing snapshot: %v", earlier.Readings["28-aa"])
	}
}

// TestConcurrentSnapshots exercises one writer against many readers. Run
// with the race detector; it also checks that a reading's value and
// timestamp are never observed torn.
func TestConcurrentSnapshots(t *testing.T) {
	s := New()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	const (
		readers = 4
		writes  = 1000
	)

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 0; i < writes; i++ {
			// Value i is always paired with timestamp base+i.
			s.RecordReading("28-aa", float64(i), base.Add(time.Duration(i)*time.Second))
			s.RecordError("28-aa", w1.KindIO)
		}
	}()

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				snap := s.Snapshot()
				if reading, ok := snap.Readings["28-aa"]; ok {
					wantTime := base.Add(time.Duration(reading.Celsius) * time.Second)
					if !reading.Time.Equal(wantTime) {
						t.Errorf("torn reading observed: value %v paired with time %v", reading.Celsius, reading.Time)
						return
					}
				}
				select {
				case <-done:
					return
				default:
				}
			}
		}()
	}

	wg.Wait()

	final := s.Snapshot()
	if final.Readings["28-aa"].Celsius != float64(writes-1) {
		t.Errorf("expected final value %d, got %v", writes-1, final.Readings["28-aa"].Celsius)
	}
	if final.Errors["28-aa"][w1.KindIO] != writes {
		t.Errorf("expected %d io errors, got %d", writes, final.Errors["28-aa"][w1.KindIO])
	}
}
