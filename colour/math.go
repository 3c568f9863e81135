package colour

import (
	"github.com/kpfaulkner/colour-go/vecmath"
)

// Arithmetic is only offered for working encodings. Three lane encodings keep
// a zero in the unused fourth lane, so it never leaks into results.

func Add[E WorkingEncoding[E]](a, b E) E {
	return a.withVec4(a.vec4().Add(b.vec4()))
}

func Sub[E WorkingEncoding[E]](a, b E) E {
	return a.withVec4(a.vec4().Sub(b.vec4()))
}

func Neg[E WorkingEncoding[E]](c E) E {
	return c.withVec4(c.vec4().Neg())
}

// Scale multiplies every lane, alpha included, by s.
func Scale[E WorkingEncoding[E]](c E, s float32) E {
	return c.withVec4(c.vec4().Scale(s))
}

// DivScalar divides every lane, alpha included, by s.
func DivScalar[E WorkingEncoding[E]](c E, s float32) E {
	return c.withVec4(c.vec4().DivScalar(s))
}

// MulVec multiplies the three colour lanes element-wise by v. Alpha is left
// as it is.
func MulVec[E WorkingEncoding[E]](c E, v vecmath.Vec3) E {
	lanes := c.vec4()
	return c.withVec4(lanes.XYZ().Mul(v).Extend(lanes[3]))
}

// DivVec divides the three colour lanes element-wise by v. Alpha is left as
// it is.
func DivVec[E WorkingEncoding[E]](c E, v vecmath.Vec3) E {
	lanes := c.vec4()
	return c.withVec4(lanes.XYZ().Div(v).Extend(lanes[3]))
}

// Lerp linearly interpolates every lane, from + (to - from) * t. t is not
// clamped.
func Lerp[E WorkingEncoding[E]](from, to E, t float32) E {
	a := from.vec4()
	return from.withVec4(a.Add(to.vec4().Sub(a).Scale(t)))
}

// Saturate clamps every lane to [0, 1].
func Saturate[E SaturatingEncoding[E]](c E) E {
	return c.withVec4(c.vec4().Clamp(0, 1))
}

// PerceptualBlend interpolates in a perceptually uniform encoding, which keeps
// the midpoint of a blend from looking too dark or desaturated.
func PerceptualBlend[E PerceptualEncoding[E]](from, to E, t float32) E {
	return Lerp(from, to, t)
}
