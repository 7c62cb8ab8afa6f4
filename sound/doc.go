// SPDX-License-Identifier: EPL-2.0

// Package sound provides the frame-indexed data model for cheap audio
// scanning.
//
// This package contains the core building blocks:
//   - Index, an immutable per-file table of frame offsets, lengths and gains
//   - Registry for resolving filename extensions to scan backends
//   - Gain range queries (MaxGain, AverageGain)
//   - Silence and word segmentation (SilenceRuns, Words)
//   - Frame-based fingerprinting (Fingerprint)
//
// # The Frame Model
//
// A scanned file is described frame by frame. Where the container has
// real frames (MP3 and friends) those are used; where it does not
// (PCM containers like WAV and AIFF) the backend slices the stream
// into fixed virtual frames. Either way every frame covers between
// 1ms and 100ms of audio, so frame indices double as a coarse
// timeline. Per frame the Index records the byte offset, the byte
// length and an approximate loudness ("gain") in backend-defined
// units. The scan never fully decodes the audio.
//
// # Building an Index
//
// Indexes come from a Registry:
//
//	reg := sound.NewRegistry()
//	reg.Register(wav.Factory{})
//
//	idx, err := reg.Build("take1.wav", nil)
//	if err != nil {
//	    // Handle error
//	}
//
// The registry is an explicit value. Construct one at session start,
// pass it by reference; nothing in this package keeps global state.
//
// Backends implement the Factory and Scanner interfaces and must
// return fully populated indexes: there is no partially-built state a
// caller can observe.
//
// # Progress And Cancellation
//
// Scans accept a ProgressFunc. It receives fractions in [0,1] and may
// return false to stop the scan, which then fails with ErrCanceled:
//
//	idx, err := reg.Build(path, func(f float64) bool {
//	    return !userHitCancel()
//	})
//
// ContextProgress adapts a context.Context to the same contract.
//
// # Analyses
//
// The analyses are pure functions over an Index and a frame window
// [start, start+count):
//
//	loudest, ok, err := sound.MaxGain(idx, 0, idx.NumFrames())
//	words, err := sound.Words(idx, 0, idx.NumFrames())
//
// A window that leaves the index fails with ErrInvalidRange. Missing
// analysis input (a nil Index) degrades to a zero value or an empty
// slice instead, because these analyses back advisory features that
// must not interrupt anything.
//
// # Error Handling
//
// Failures are sentinel errors wrapped with context; test with
// errors.Is:
//
//	idx, err := reg.Build(path, nil)
//	switch {
//	case errors.Is(err, fs.ErrNotExist):
//	    // no such file
//	case errors.Is(err, sound.ErrUnsupportedFormat):
//	    // extension claimed by no backend
//	case errors.Is(err, sound.ErrCanceled):
//	    // progress callback stopped the scan
//	case errors.Is(err, sound.ErrMalformed):
//	    // container lied about its structure
//	}
package sound
