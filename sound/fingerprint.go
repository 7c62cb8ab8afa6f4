// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// DefaultFingerprintFrames is how many leading frames Fingerprint
// digests.
const DefaultFingerprintFrames = 10

// Fingerprint digests the raw bytes of the file's first frames (at
// most DefaultFingerprintFrames of them) and returns the 32-character
// lowercase hex MD5. See FingerprintFrames.
func Fingerprint(x *Index, path string) (string, error) {
	return FingerprintFrames(x, path, DefaultFingerprintFrames)
}

// FingerprintFrames re-opens path and feeds the raw bytes of the first
// min(maxFrames, NumFrames()) frames, in index order, into an MD5
// digest. Bytes between frames and after the last digested frame do
// not contribute. The file is read strictly forward; offsets are
// strictly increasing, so no backward seek is ever needed. With zero
// frames to digest the result is the MD5 of the empty string, as
// deterministic as every other case.
//
// A file that cannot be opened, or that is now shorter than the
// recorded frames, fails with the wrapped I/O error. A negative
// maxFrames fails with ErrInvalidRange.
//
// MD5 serves as an identity hint for caching and deduplication, not as
// an integrity measure.
func FingerprintFrames(x *Index, path string, maxFrames int) (string, error) {
	if maxFrames < 0 {
		return "", fmt.Errorf("max frames %d: %w", maxFrames, ErrInvalidRange)
	}

	n := min(maxFrames, x.NumFrames())

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	defer f.Close()

	h := md5.New()
	var pos int64

	for i := 0; i < n; i++ {
		if skip := x.offsets[i] - pos; skip > 0 {
			if _, err := io.CopyN(io.Discard, f, skip); err != nil {
				return "", fmt.Errorf("skip to frame %d: %w", i, err)
			}
			pos += skip
		}

		frameLen := int64(x.lens[i])
		if _, err := io.CopyN(h, f, frameLen); err != nil {
			return "", fmt.Errorf("frame %d: %w", i, err)
		}
		pos += frameLen
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
