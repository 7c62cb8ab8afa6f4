// SPDX-License-Identifier: EPL-2.0

// Package soundskim cheaply scans sound files into frame indexes.
//
// A scan walks a file's container structure once, front to back, and
// records for every frame its byte offset, byte length and approximate
// loudness, plus the stream metadata. That table (a sound.Index) is
// enough to answer most questions an editor or organizer asks about a
// file without ever fully decoding the audio: where the words are,
// how loud a region is, whether two files start with the same bytes.
//
// # Supported Formats
//
// Built-in scan backends:
//   - WAV (integer PCM) via formats/wav
//   - AIFF (integer PCM) via formats/aiff
//
// Formats resolve by filename extension through an explicit registry;
// new backends plug in by implementing sound.Factory.
//
// # Quick Start
//
// The simplest way to scan a file is Open:
//
//	idx, err := soundskim.Open("take1.wav", nil)
//	if err != nil {
//	    // Handle error
//	}
//
//	fmt.Println(idx.Filetype(), idx.SampleRate(), idx.NumFrames())
//
// For control over which backends participate, build the registry
// yourself:
//
//	reg := sound.NewRegistry()
//	reg.Register(wav.Factory{})
//
//	idx, err := reg.Build("take1.wav", nil)
//
// # Analyses
//
// Everything downstream is a pure function over the index:
//
//	// Loudness of a region
//	gain, ok, err := sound.MaxGain(idx, 0, idx.NumFrames())
//
//	// Word boundaries for trimming or captioning
//	words, err := sound.Words(idx, 0, idx.NumFrames())
//
//	// Identity hint for caching and deduplication
//	sum, err := sound.Fingerprint(idx, "take1.wav")
//
// # Progress And Cancellation
//
// Long scans report progress through a callback that can also cancel:
//
//	idx, err := soundskim.Open(path, func(f float64) bool {
//	    fmt.Printf("\r%3.0f%%", f*100)
//	    return true
//	})
//
// sound.ContextProgress adapts a context.Context to the same contract.
//
// # Performance
//
// The scan reads headers plus one pass over the sample data and keeps
// only three small slices per file:
//   - no decoded stream is ever held in memory
//   - analyses run over int slices, allocation-free
//   - scanning is I/O bound; files on fast disks scan at disk speed
//
// See the sound subpackage for the data model and the formats
// subpackages for per-container details.
package soundskim
