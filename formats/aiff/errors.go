package aiff

import "errors"

var (
	// ErrNotAiff indicates the input is not a valid AIFF file
	ErrNotAiff = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth indicates integer PCM outside 16/24/32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
