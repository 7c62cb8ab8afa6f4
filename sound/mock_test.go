package sound

import "testing"

const (
	testRate            = 8000
	testSamplesPerFrame = 160
)

// newTestIndex builds an index shaped like a mono 8000 Hz telephony
// file with one 320 byte frame per gain value. At this rate each frame
// covers 20ms, so a silence run needs more than 5 frames to count.
func newTestIndex(t *testing.T, gains []int) *Index {
	t.Helper()

	n := len(gains)
	offsets := make([]int64, n)
	lens := make([]int, n)
	for i := 0; i < n; i++ {
		offsets[i] = 44 + int64(i)*320
		lens[i] = 320
	}

	x, err := NewIndex(IndexSpec{
		Filetype:        "TEST",
		SampleRate:      testRate,
		Channels:        1,
		SamplesPerFrame: testSamplesPerFrame,
		FileSizeBytes:   44 + int64(n)*320,
		AvgBitrateKbps:  128,
		Offsets:         offsets,
		Lens:            lens,
		Gains:           gains,
		Seekable:        true,
	})
	if err != nil {
		t.Fatalf("NewIndex() error = %v, want nil", err)
	}

	return x
}

// repeatGain returns a gain slice with value repeated count times.
func repeatGain(value, count int) []int {
	gains := make([]int, count)
	for i := range gains {
		gains[i] = value
	}
	return gains
}

// monotonicOffsets returns n strictly increasing 320 byte frame
// offsets starting past a 44 byte header.
func monotonicOffsets(n int) []int64 {
	offsets := make([]int64, n)
	for i := range offsets {
		offsets[i] = 44 + int64(i)*320
	}
	return offsets
}
