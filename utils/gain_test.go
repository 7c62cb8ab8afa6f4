// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestPeakGain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		peak     int
		bitDepth int
		want     int
	}{
		{"silence", 0, 16, 0},
		{"just below one unit", 255, 16, 0},
		{"one unit", 256, 16, 1},
		{"speech level", 1000, 16, 3},
		{"positive full scale 16", 32767, 16, 127},
		{"negative full scale 16", -32768, 16, 128},
		{"positive full scale 24", 8388607, 24, 127},
		{"half scale 24", 0x400000, 24, 64},
		{"negative full scale 24", -8388608, 24, 128},
		{"positive full scale 32", 2147483647, 32, 127},
		{"negative full scale 32", -2147483648, 32, 128},
		{"eight bit passthrough", 100, 8, 100},
		{"tiny depth clamps shift", 7, 4, 7},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PeakGain(tt.peak, tt.bitDepth); got != tt.want {
				t.Errorf("PeakGain(%d, %d) = %d, want %d", tt.peak, tt.bitDepth, got, tt.want)
			}
		})
	}
}

func TestPeakGain_SymmetricInMagnitude(t *testing.T) {
	t.Parallel()

	for _, peak := range []int{1, 300, 5000, 32767} {
		if PeakGain(peak, 16) != PeakGain(-peak, 16) {
			t.Errorf("PeakGain(%d) != PeakGain(%d)", peak, -peak)
		}
	}
}
