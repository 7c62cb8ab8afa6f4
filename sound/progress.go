// SPDX-License-Identifier: EPL-2.0

package sound

import "context"

// ProgressFunc receives scan progress as a fraction in [0,1],
// non-decreasing over one scan. Returning false asks the scan to stop;
// the scan then fails with ErrCanceled and no Index is produced.
// Backends check at their own cadence, so cancellation is cooperative
// and mid-frame work is never interrupted. A nil ProgressFunc means
// "never cancel, report nothing".
type ProgressFunc func(fraction float64) bool

// ContextProgress adapts a context to the callback contract: the scan
// keeps going until ctx is done. The fraction is discarded.
func ContextProgress(ctx context.Context) ProgressFunc {
	return func(float64) bool { return ctx.Err() == nil }
}
