package wav

import "errors"

var (
	ErrNotWav              = errors.New("not a WAV file")
	ErrNotPCM              = errors.New("only PCM WAV supported")
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
