// SPDX-License-Identifier: EPL-2.0

package sound

import "fmt"

// checkWindow validates the frame window [start, start+count) against
// the index. A nil Index has zero frames.
func checkWindow(x *Index, start, count int) error {
	if start < 0 || count < 0 || start > x.NumFrames()-count {
		return fmt.Errorf("start %d count %d of %d frames: %w",
			start, count, x.NumFrames(), ErrInvalidRange)
	}

	return nil
}

// MaxGain reports the largest frame gain in the window
// [start, start+count). ok is false when the index carries no gain data
// (nil Index); gain is then zero so advisory callers can use it as-is.
// An empty window on a valid start reports (0, true, nil). A window
// outside [0, NumFrames()) fails with ErrInvalidRange.
func MaxGain(x *Index, start, count int) (gain int, ok bool, err error) {
	if err := checkWindow(x, start, count); err != nil {
		return 0, false, err
	}

	if x == nil {
		return 0, false, nil
	}

	if count == 0 {
		return 0, true, nil
	}

	gain = x.gains[start]
	for _, g := range x.gains[start+1 : start+count] {
		if g > gain {
			gain = g
		}
	}

	return gain, true, nil
}

// AverageGain reports the arithmetic mean of the frame gains in the
// window [start, start+count), rounded to nearest. The no-data, empty
// window and range rules match MaxGain.
func AverageGain(x *Index, start, count int) (gain int, ok bool, err error) {
	if err := checkWindow(x, start, count); err != nil {
		return 0, false, err
	}

	if x == nil {
		return 0, false, nil
	}

	if count == 0 {
		return 0, true, nil
	}

	var sum int64
	for _, g := range x.gains[start : start+count] {
		sum += int64(g)
	}

	// Gains are non-negative, so this rounds to nearest.
	return int((sum + int64(count)/2) / int64(count)), true, nil
}
