// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"time"
)

// IndexSpec carries everything a backend learned while scanning one
// file. It is consumed by NewIndex, which copies the slices; the caller
// may reuse them afterwards.
type IndexSpec struct {
	// Filetype is a short container name, e.g. "WAV".
	Filetype string
	// SampleRate of the stream in Hz.
	SampleRate int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SamplesPerFrame per channel. Fixed across a file.
	SamplesPerFrame int
	// FileSizeBytes of the container at scan time.
	FileSizeBytes int64
	// AvgBitrateKbps of the stream, rounded.
	AvgBitrateKbps int

	// Offsets holds each frame's byte offset from the start of the
	// file, strictly increasing. Lens holds the frame's byte length and
	// Gains its approximate loudness in backend-defined non-negative
	// units. All three must carry one entry per frame.
	Offsets []int64
	Lens    []int
	Gains   []int

	// Seekable marks the offsets as usable for header-free seeking.
	Seekable bool
}

// Index is the immutable frame table of one scanned file: per-frame
// byte offsets, byte lengths and gains, plus the stream metadata the
// scan recorded. A constructed Index is always fully populated and safe
// for concurrent readers.
type Index struct {
	filetype        string
	sampleRate      int
	channels        int
	samplesPerFrame int
	fileSizeBytes   int64
	avgBitrateKbps  int

	offsets  []int64
	lens     []int
	gains    []int
	seekable bool
}

// NewIndex validates spec and builds an Index from it. Each frame must
// represent between 1ms and 100ms of audio, the three frame slices must
// be the same length (zero frames is legal) and offsets must be
// non-negative and strictly increasing. Violations return an error
// wrapping ErrMalformed.
func NewIndex(spec IndexSpec) (*Index, error) {
	if spec.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", spec.SampleRate, ErrMalformed)
	}

	if spec.Channels < 1 {
		return nil, fmt.Errorf("channel count %d: %w", spec.Channels, ErrMalformed)
	}

	if spec.SamplesPerFrame <= 0 {
		return nil, fmt.Errorf("samples per frame %d: %w", spec.SamplesPerFrame, ErrMalformed)
	}

	// 1ms <= SamplesPerFrame/SampleRate <= 100ms, integer-exact.
	if 1000*spec.SamplesPerFrame < spec.SampleRate {
		return nil, fmt.Errorf("frame shorter than 1ms: %w", ErrMalformed)
	}

	if 10*spec.SamplesPerFrame > spec.SampleRate {
		return nil, fmt.Errorf("frame longer than 100ms: %w", ErrMalformed)
	}

	if spec.FileSizeBytes < 0 {
		return nil, fmt.Errorf("file size %d: %w", spec.FileSizeBytes, ErrMalformed)
	}

	if spec.AvgBitrateKbps < 0 {
		return nil, fmt.Errorf("bitrate %d: %w", spec.AvgBitrateKbps, ErrMalformed)
	}

	n := len(spec.Offsets)
	if len(spec.Lens) != n || len(spec.Gains) != n {
		return nil, fmt.Errorf("frame table lengths %d/%d/%d: %w",
			n, len(spec.Lens), len(spec.Gains), ErrMalformed)
	}

	for i, off := range spec.Offsets {
		if off < 0 {
			return nil, fmt.Errorf("frame %d offset %d: %w", i, off, ErrMalformed)
		}
		if i > 0 && off <= spec.Offsets[i-1] {
			return nil, fmt.Errorf("frame %d offset %d not increasing: %w", i, off, ErrMalformed)
		}
		if spec.Lens[i] < 0 {
			return nil, fmt.Errorf("frame %d length %d: %w", i, spec.Lens[i], ErrMalformed)
		}
		if spec.Gains[i] < 0 {
			return nil, fmt.Errorf("frame %d gain %d: %w", i, spec.Gains[i], ErrMalformed)
		}
	}

	x := &Index{
		filetype:        spec.Filetype,
		sampleRate:      spec.SampleRate,
		channels:        spec.Channels,
		samplesPerFrame: spec.SamplesPerFrame,
		fileSizeBytes:   spec.FileSizeBytes,
		avgBitrateKbps:  spec.AvgBitrateKbps,
		offsets:         make([]int64, n),
		lens:            make([]int, n),
		gains:           make([]int, n),
		seekable:        spec.Seekable,
	}
	copy(x.offsets, spec.Offsets)
	copy(x.lens, spec.Lens)
	copy(x.gains, spec.Gains)

	return x, nil
}

// NumFrames reports the number of frames in the table. A nil Index has
// no frames.
func (x *Index) NumFrames() int {
	if x == nil {
		return 0
	}
	return len(x.offsets)
}

func (x *Index) Filetype() string     { return x.filetype }
func (x *Index) SampleRate() int      { return x.sampleRate }
func (x *Index) Channels() int        { return x.channels }
func (x *Index) SamplesPerFrame() int { return x.samplesPerFrame }
func (x *Index) FileSizeBytes() int64 { return x.fileSizeBytes }
func (x *Index) AvgBitrateKbps() int  { return x.avgBitrateKbps }

// The per-frame accessors index like slices: i must be in
// [0, NumFrames()).

func (x *Index) FrameOffset(i int) int64 { return x.offsets[i] }
func (x *Index) FrameLen(i int) int      { return x.lens[i] }
func (x *Index) FrameGain(i int) int     { return x.gains[i] }

// Seekable reports whether frame offsets address raw frame data
// directly, so a reader may jump to any frame without replaying the
// container's headers.
func (x *Index) Seekable() bool {
	return x != nil && x.seekable
}

// SeekableFrameOffset reports the byte offset at which frame i can be
// entered without replaying the container's headers. The second return
// is false when the backend recorded no such guarantee.
func (x *Index) SeekableFrameOffset(i int) (int64, bool) {
	if x == nil || !x.seekable {
		return 0, false
	}
	return x.offsets[i], true
}

// Duration reports the total audio time covered by the frame table.
func (x *Index) Duration() time.Duration {
	if x == nil || x.sampleRate <= 0 {
		return 0
	}
	samples := int64(len(x.offsets)) * int64(x.samplesPerFrame)
	return time.Duration(samples * int64(time.Second) / int64(x.sampleRate))
}

// FrameTime reports the start time of frame i within the stream.
func (x *Index) FrameTime(i int) time.Duration {
	if x == nil || x.sampleRate <= 0 {
		return 0
	}
	return time.Duration(int64(i) * int64(x.samplesPerFrame) * int64(time.Second) / int64(x.sampleRate))
}
