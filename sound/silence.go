package sound

import "time"

const (
	// SilenceGainThreshold is the gain below which a frame counts as
	// silent. The comparison is strict: a frame is silent iff its gain
	// is less than the threshold.
	SilenceGainThreshold = 2

	// SilenceDuration is the stretch of silence that separates words.
	// A run of silent frames must last strictly longer than this to be
	// confirmed.
	SilenceDuration = 100 * time.Millisecond
)

// SilenceRun is a maximal run of silent frames. Both bounds are frame
// indices; End is inclusive (the last silent frame of the run).
type SilenceRun struct {
	Start int
	End   int
}

// WordSpan is a loud region between silences, as the half-open frame
// range [Start, End).
type WordSpan struct {
	Start int
	End   int
}

// minSilenceFrames converts SilenceDuration into a frame count using
// the index's own timing. Integer arithmetic throughout:
// (100 * sampleRate / samplesPerFrame) / 1000.
func minSilenceFrames(x *Index) int {
	ms := int(SilenceDuration / time.Millisecond)
	return ms * x.sampleRate / x.samplesPerFrame / 1000
}

// confirmedRuns finds the silence runs in [start, end) that are
// strictly longer than minRun frames, optionally bracketed by the
// zero-width [start,start] and [end,end] sentinels the word walk
// relies on. The result buffer is preallocated from the densest
// possible packing of runs.
func confirmedRuns(x *Index, start, end, minRun int, sentinels bool) []SilenceRun {
	n := (end-start)/(minRun+1) + 2
	if sentinels {
		n += 2
	}
	runs := make([]SilenceRun, 0, n)

	if sentinels {
		runs = append(runs, SilenceRun{Start: start, End: start})
	}

	i := start
	for i < end {
		if x.gains[i] >= SilenceGainThreshold {
			i++
			continue
		}

		j := i
		for j < end && x.gains[j] < SilenceGainThreshold {
			j++
		}

		if j-i > minRun {
			runs = append(runs, SilenceRun{Start: i, End: j - 1})
		}

		i = j
	}

	if sentinels {
		runs = append(runs, SilenceRun{Start: end, End: end})
	}

	return runs
}

// SilenceRuns reports the confirmed silence runs inside the window
// [start, start+count): maximal runs of frames with gain below
// SilenceGainThreshold lasting strictly longer than SilenceDuration
// worth of frames. Runs are ordered and non-overlapping. An empty
// window or a nil Index yields an empty result, never an error; a
// window outside the index fails with ErrInvalidRange. Same index,
// same window, same result.
func SilenceRuns(x *Index, start, count int) ([]SilenceRun, error) {
	if err := checkWindow(x, start, count); err != nil {
		return nil, err
	}

	if x == nil || count == 0 {
		return []SilenceRun{}, nil
	}

	return confirmedRuns(x, start, start+count, minSilenceFrames(x), false), nil
}

// Words reports the loud spans between silences inside the window
// [start, start+count). The confirmed silence runs are bracketed with
// zero-width sentinels at the window edges, and each gap between
// consecutive runs is walked left to right accumulating gain. The
// first time the running sum strictly exceeds
// minSilenceFrames * SilenceGainThreshold * 5 the whole gap is emitted
// as one WordSpan and the walk moves on. A gap whose sum never crosses
// the threshold emits nothing; no gap emits more than one word.
// Windows, empty results and nil indexes behave as in SilenceRuns.
func Words(x *Index, start, count int) ([]WordSpan, error) {
	if err := checkWindow(x, start, count); err != nil {
		return nil, err
	}

	if x == nil || count == 0 {
		return []WordSpan{}, nil
	}

	end := start + count
	minRun := minSilenceFrames(x)
	runs := confirmedRuns(x, start, end, minRun, true)
	threshold := minRun * SilenceGainThreshold * 5

	words := make([]WordSpan, 0, len(runs)-1)

	for k := 0; k+1 < len(runs); k++ {
		gapStart := runs[k].End
		gapEnd := runs[k+1].Start

		sum := 0
		for l := gapStart; l < gapEnd; l++ {
			sum += x.gains[l]
			if sum > threshold {
				words = append(words, WordSpan{Start: gapStart, End: gapEnd})
				break
			}
		}
	}

	return words, nil
}
