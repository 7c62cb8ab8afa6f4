// SPDX-License-Identifier: EPL-2.0

// Package wav provides the cheap-scan backend for WAV files.
//
// The scanner walks a PCM WAV container once, front to back, and
// builds a sound.Index without decoding the audio into a stream. It
// uses the github.com/go-audio library for robust header and chunk
// handling.
//
// # Frame Model
//
// WAV carries no container frames, so the scanner slices the data
// chunk into fixed 20ms virtual frames (samplesPerFrame =
// sampleRate/50, the same cadence for every file). Offsets are
// arithmetic from the data chunk start; the trailing frame keeps its
// shorter byte length. Each frame's gain is its peak sample amplitude
// scaled to the top 8 bits, so full scale is 128 regardless of bit
// depth.
//
// # Supported Input
//
// Integer PCM at 16, 24 or 32 bits, any channel count, any sample
// rate from 50Hz up. Anything else fails fast:
//   - ErrNotWav: the input is not a valid WAV file
//   - ErrNotPCM: compressed or float WAV
//   - ErrUnsupportedBitDepth: integer PCM outside 16/24/32
//
// # Usage
//
// Register the factory and build through a registry:
//
//	reg := sound.NewRegistry()
//	reg.Register(wav.Factory{})
//	idx, err := reg.Build("take1.wav", nil)
//
// Or scan an open file directly:
//
//	idx, err := wav.Scanner{}.Scan(f, size, nil)
//
// WAV indexes are seekable: SeekableFrameOffset reports a byte offset
// for every frame, since fixed-size PCM frames need no preceding
// headers.
package wav
