package soundskim

import (
	"github.com/ik5/soundskim/formats/aiff"
	"github.com/ik5/soundskim/formats/wav"
	"github.com/ik5/soundskim/sound"
)

// DefaultRegistry returns a fresh registry with every built-in backend
// registered (WAV, AIFF). Construct one per session and pass it by
// reference; registries are explicit values, never globals.
func DefaultRegistry() *sound.Registry {
	reg := sound.NewRegistry()
	reg.Register(wav.Factory{})
	reg.Register(aiff.Factory{})

	return reg
}

// Open scans path with the built-in backends and returns its frame
// index. progress may be nil; see sound.ProgressFunc for the
// cancellation contract.
func Open(path string, progress sound.ProgressFunc) (*sound.Index, error) {
	return DefaultRegistry().Build(path, progress)
}
