// SPDX-License-Identifier: EPL-2.0

// Package aiff provides the cheap-scan backend for AIFF files.
//
// This package uses github.com/go-audio/aiff for header and chunk
// handling. AIFF is Apple's standard audio file format; structurally
// it is WAV's big-endian sibling, so the scan works the same way as
// the WAV backend's.
//
// # Frame Model
//
// AIFF carries no container frames, so the scanner slices the SSND
// sample data into fixed 20ms virtual frames (samplesPerFrame =
// sampleRate/50). The total sample count comes from the COMM chunk;
// the trailing frame keeps its shorter byte length. Each frame's gain
// is its peak sample amplitude scaled to the top 8 bits.
//
// # Supported Input
//
// Integer PCM at 16, 24 or 32 bits, any channel count, any sample
// rate from 50Hz up:
//   - ErrNotAiff: the input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: integer PCM outside 16/24/32
//
// Compressed AIFF-C data is not scanned.
//
// # Usage
//
// Register the factory and build through a registry:
//
//	reg := sound.NewRegistry()
//	reg.Register(aiff.Factory{})
//	idx, err := reg.Build("take1.aiff", nil)
//
// The factory claims both .aiff and .aif.
//
// # AIFF vs. WAV
//
// Differences the backend absorbs:
//   - big-endian samples (WAV is little-endian)
//   - the sample rate is an 80-bit extended float in the COMM chunk
//   - the authoritative sample count lives in COMM, not the data chunk
//
// Either way the resulting Index looks the same: seekable fixed-size
// frames with peak gains on a common scale.
package aiff
