// SPDX-License-Identifier: EPL-2.0

package soundtest

import (
	"io"

	"github.com/ik5/soundskim/sound"
)

// Fixture timing used throughout the tests: 8000Hz with 160-sample
// (20ms) frames, which makes the segmenter's minimum silence run
// exactly 5 frames.
const (
	Rate            = 8000
	SamplesPerFrame = 160
)

// MockFactory is a registry backend for tests: it claims configurable
// extensions and scans every input into the same canned index.
type MockFactory struct {
	Exts []string
	Spec sound.IndexSpec
	Err  error // returned by every Scan when set
}

func (f MockFactory) Extensions() []string { return f.Exts }

func (f MockFactory) NewScanner() sound.Scanner {
	return mockScanner{spec: f.Spec, err: f.Err}
}

type mockScanner struct {
	spec sound.IndexSpec
	err  error
}

// Scan ignores the input bytes but still drives the progress contract:
// one report at the start, one at the end, cancellation honored.
func (s mockScanner) Scan(_ io.ReadSeeker, size int64, progress sound.ProgressFunc) (*sound.Index, error) {
	if progress != nil && !progress(0) {
		return nil, sound.ErrCanceled
	}

	if s.err != nil {
		return nil, s.err
	}

	if progress != nil && !progress(1) {
		return nil, sound.ErrCanceled
	}

	spec := s.spec
	spec.FileSizeBytes = size

	return sound.NewIndex(spec)
}

// Spec builds a fixture IndexSpec around a gain pattern: one 320-byte
// frame per gain at consecutive offsets after a 44-byte header, timing
// per Rate and SamplesPerFrame.
func Spec(gains []int) sound.IndexSpec {
	n := len(gains)
	spec := sound.IndexSpec{
		Filetype:        "MOCK",
		SampleRate:      Rate,
		Channels:        1,
		SamplesPerFrame: SamplesPerFrame,
		FileSizeBytes:   int64(44 + 320*n),
		AvgBitrateKbps:  128,
		Offsets:         make([]int64, n),
		Lens:            make([]int, n),
		Gains:           make([]int, n),
		Seekable:        true,
	}

	for i, g := range gains {
		spec.Offsets[i] = int64(44 + 320*i)
		spec.Lens[i] = 320
		spec.Gains[i] = g
	}

	return spec
}

// MustIndex is Spec followed by sound.NewIndex, for tests that need
// the built value. A spec the constructor rejects is a test bug, so it
// panics.
func MustIndex(gains []int) *sound.Index {
	x, err := sound.NewIndex(Spec(gains))
	if err != nil {
		panic(err)
	}

	return x
}
