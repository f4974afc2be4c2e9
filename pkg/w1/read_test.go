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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		want     float64
		wantKind ErrorKind
		wantErr  bool
	}{
		{
			name:    "valid reading",
			payload: "28 01 4b 46 7f ff 0c 10 c6 : crc=c6 YES\n28 01 4b 46 7f ff 0c 10 c6 t=17875\n",
			want:    17.875,
		},
		{
			name:    "valid room temperature",
			payload: "6d 01 4b 46 7f ff 0c 10 14 : crc=14 YES\n6d 01 4b 46 7f ff 0c 10 14 t=22812",
			want:    22.812,
		},
		{
			name:    "negative temperature",
			payload: "5e ff 4b 46 7f ff 0c 10 91 : crc=91 YES\n5e ff 4b 46 7f ff 0c 10 91 t=-10562",
			want:    -10.562,
		},
		{
			name:    "zero degrees",
			payload: "00 00 4b 46 7f ff 0c 10 66 : crc=66 YES\n00 00 4b 46 7f ff 0c 10 66 t=0",
			want:    0.0,
		},
		{
			name:    "upper range boundary",
			payload: "d0 07 4b 46 7f ff 0c 10 22 : crc=22 YES\nd0 07 4b 46 7f ff 0c 10 22 t=125000",
			want:    125.0,
		},
		{
			name:    "lower range boundary",
			payload: "90 fc 4b 46 7f ff 0c 10 be : crc=be YES\n90 fc 4b 46 7f ff 0c 10 be t=-55000",
			want:    -55.0,
		},
		{
			name:     "invalidated crc marker",
			payload:  "28 01 4b 46 7f ff 0c 10 c6 : crc=c6 NO\n28 01 4b 46 7f ff 0c 10 c6 t=17875\n",
			wantKind: KindCRC,
			wantErr:  true,
		},
		{
			name:     "empty payload",
			payload:  "",
			wantKind: KindCRC,
			wantErr:  true,
		},
		{
			name:     "missing temperature field",
			payload:  "6d 01 4b 46 7f ff 0c 10 14 : crc=14 YES\n",
			wantKind: KindParse,
			wantErr:  true,
		},
		{
			name:     "non numeric temperature",
			payload:  "6d 01 4b 46 7f ff 0c 10 14 : crc=14 YES\n6d 01 4b 46 7f ff 0c 10 14 t=abc",
			wantKind: KindParse,
			wantErr:  true,
		},
		{
			name:     "disconnection artifact above range",
			payload:  "ff 07 4b 46 7f ff 0c 10 aa : crc=aa YES\nff 07 4b 46 7f ff 0c 10 aa t=127937",
			wantKind: KindOutOfRange,
			wantErr:  true,
		},
		{
			name:     "below operating range",
			payload:  "aa f8 4b 46 7f ff 0c 10 bb : crc=bb YES\naa f8 4b 46 7f ff 0c 10 bb t=-56000",
			wantKind: KindOutOfRange,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePayload(tt.payload)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err), "wrong error kind for %v", err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestParsePayloadSentinels(t *testing.T) {
	_, err := parsePayload("28 01 4b 46 7f ff 0c 10 c6 : crc=c6 NO\n")
	assert.ErrorIs(t, err, ErrCRCCheckFailed)

	_, err = parsePayload("6d 01 4b 46 7f ff 0c 10 14 : crc=14 YES\n")
	assert.ErrorIs(t, err, ErrNoTemperature)
}

func TestDeviceRead(t *testing.T) {
	dir := t.TempDir()
	devPath := filepath.Join(dir, "28-0317459c2dff")
	require.NoError(t, os.Mkdir(devPath, 0o755))

	d := Device{ID: "28-0317459c2dff", Label: "fermenter", Path: devPath}

	t.Run("missing device file is an io failure", func(t *testing.T) {
		_, err := d.Read()
		require.Error(t, err)
		assert.Equal(t, KindIO, KindOf(err))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("valid payload", func(t *testing.T) {
		payload := "28 01 4b 46 7f ff 0c 10 c6 : crc=c6 YES\n28 01 4b 46 7f ff 0c 10 c6 t=17875\n"
		require.NoError(t, os.WriteFile(filepath.Join(devPath, "w1_slave"), []byte(payload), 0o644))

		got, err := d.Read()
		require.NoError(t, err)
		assert.InDelta(t, 17.875, got, 0.0001)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		payload := "28 01 4b 46 7f ff 0c 10 c6 : crc=c6 NO\n28 01 4b 46 7f ff 0c 10 c6 t=17875\n"
		require.NoError(t, os.WriteFile(filepath.Join(devPath, "w1_slave"), []byte(payload), 0o644))

		_, err := d.Read()
		require.Error(t, err)
		assert.Equal(t, KindCRC, KindOf(err))
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"read error io", &ReadError{Kind: KindIO, Err: os.ErrNotExist}, KindIO},
		{"read error crc", &ReadError{Kind: KindCRC, Err: ErrCRCCheckFailed}, KindCRC},
		{"read error parse", &ReadError{Kind: KindParse, Err: ErrNoTemperature}, KindParse},
		{"read error out of range", &ReadError{Kind: KindOutOfRange, Err: errors.New("hot")}, KindOutOfRange},
		{"unclassified error", errors.New("boom"), KindIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindIO, "io"},
		{KindCRC, "crc"},
		{KindParse, "parse"},
		{KindOutOfRange, "out_of_range"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %s, want %s", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindsCoversAllKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 4)
	for _, k := range kinds {
		assert.NotEqual(t, "unknown", k.String())
	}
}
