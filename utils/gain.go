package utils

// PeakGain maps a frame's peak sample amplitude to the gain scale the
// frame index stores: the top 8 bits of the sample magnitude, so a
// full-scale peak becomes 128 at any bit depth and anything quieter
// than about -36dBFS drops below 2. bitDepth is the source sample size
// in bits (16, 24 or 32).
func PeakGain(peak, bitDepth int) int {
	if peak < 0 {
		peak = -peak
	}

	shift := bitDepth - 8
	if shift < 0 {
		shift = 0
	}

	return peak >> shift
}
