package colour

import (
	"github.com/chewxy/math32"
)

// ApproxEqual reports whether every lane of a and b differs by at most eps.
func ApproxEqual[E Encoding[E]](a, b E, eps float32) bool {
	la, lb := a.Lanes(), b.Lanes()
	for i := range la {
		if !(math32.Abs(la[i]-lb[i]) <= eps) {
			return false
		}
	}
	return true
}

// RelativeEqual compares lanes with a tolerance of eps scaled by the larger
// magnitude, falling back to an absolute eps near zero.
func RelativeEqual[E Encoding[E]](a, b E, eps float32) bool {
	la, lb := a.Lanes(), b.Lanes()
	for i := range la {
		diff := math32.Abs(la[i] - lb[i])
		if diff <= eps {
			continue
		}
		largest := math32.Max(math32.Abs(la[i]), math32.Abs(lb[i]))
		if !(diff <= largest*eps) {
			return false
		}
	}
	return true
}
