package vecmath

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// SignedPow raises |base| to exponent and restores the sign of base.
func SignedPow(base float32, exponent float32) float32 {
	if base < 0 {
		return -math32.Pow(-base, exponent)
	}
	return math32.Pow(base, exponent)
}

// SignedCbrt is the real cube root, defined for negative inputs.
func SignedCbrt(v float32) float32 {
	return math32.Cbrt(v)
}

// Clamp limits v to [lo, hi]. NaN is passed through untouched.
func Clamp[T constraints.Float | constraints.Integer](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b without clamping t.
func Lerp[T constraints.Float](a T, b T, t T) T {
	return a + (b-a)*t
}
