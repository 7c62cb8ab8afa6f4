// SPDX-License-Identifier: EPL-2.0

package sound

// Beat would report the beat count for the window [start, start+count).
// No beat analysis is implemented; the call always fails with
// ErrNoBeatDetection so callers discover the gap instead of trusting a
// silent zero.
func Beat(x *Index, start, count int) (int, error) {
	return 0, ErrNoBeatDetection
}
