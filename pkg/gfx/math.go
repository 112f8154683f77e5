package gfx

import (
	"github.com/chewxy/math32"
)

// FullTurn is one revolution in degrees.
const FullTurn = 360

// Lerp linearly interpolates from prev to cur by fraction.
func Lerp(prev, cur, fraction float32) float32 {
	return prev + (cur-prev)*fraction
}

// WrapDegrees maps a degree delta into [-180, 180].
// Exact half turns keep their sign so a bounded range such as pitch
// is never interpolated the long way round.
func WrapDegrees(d float32) float32 {
	d = math32.Mod(d, FullTurn)
	if d > FullTurn/2 {
		d -= FullTurn
	} else if d < -FullTurn/2 {
		d += FullTurn
	}
	return d
}

// LerpAngle interpolates from prev to cur in degrees along the shortest arc.
// The result is not normalized.
func LerpAngle(prev, cur, fraction float32) float32 {
	return prev + WrapDegrees(cur-prev)*fraction
}

// NormalizeDegrees maps any finite angle into [0, 360).
// Non-finite input yields 0.
func NormalizeDegrees(a float32) float32 {
	if math32.IsNaN(a) || math32.IsInf(a, 0) {
		return 0
	}
	if a < 0 {
		a += FullTurn
	}
	a = math32.Mod(a, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	// float32 rounding of tiny negatives lands on 360.
	if a >= FullTurn {
		a = 0
	}
	return a
}

// Clamp limits v to [lo, hi]. NaN yields lo.
func Clamp(v, lo, hi float32) float32 {
	switch {
	case math32.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
