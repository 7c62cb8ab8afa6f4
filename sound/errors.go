// SPDX-License-Identifier: EPL-2.0

package sound

import "errors"

var (
	// ErrUnsupportedFormat reports that no registered factory claims the
	// filename's extension. It is a normal outcome for arbitrary input
	// directories, not a parse failure.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrCanceled reports that a progress callback asked the scan to stop.
	ErrCanceled = errors.New("scan canceled")

	// ErrMalformed reports an internally inconsistent container or frame
	// table (declared sizes beyond the file, non-increasing offsets, ...).
	ErrMalformed = errors.New("malformed audio input")

	// ErrInvalidRange reports a frame window that lies outside the index.
	ErrInvalidRange = errors.New("frame range out of bounds")

	// ErrNoBeatDetection reports that beat analysis is not implemented.
	ErrNoBeatDetection = errors.New("beat detection not implemented")
)
