// Package mathutil provides small numeric helpers shared by the curve code.
package mathutil

import "math"

// TwoPi is 2π, the period of the sinusoidal ease-in-out correction term.
const TwoPi = 2 * math.Pi

// Clamp limits v to [lo, hi]. NaN passes through unchanged.
func Clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}

// Lerp returns a + t*(b-a). t is not clamped, so values outside [0, 1]
// extrapolate along the same line.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Unlerp is the inverse of Lerp: the t for which Lerp(a, b, t) == v.
// Returns 0 when a == b.
func Unlerp(a, b, v float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}
