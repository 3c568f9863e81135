package custom

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/vecmath"
)

// DynamicColor is a linear RGB value whose colour space is only known at
// runtime.
type DynamicColor struct {
	Value vecmath.Vec3
	Space CustomColorSpace
}

func NewDynamicColor(r, g, b float32, space CustomColorSpace) DynamicColor {
	return DynamicColor{Value: vecmath.NewVec3(r, g, b), Space: space}
}

// ToColor converts d into the encoding E with a single matrix from the custom
// space to the linear space of E, so wide gamut values are not clipped on the
// way. The result is opaque.
func ToColor[E colour.Encoding[E]](d DynamicColor) E {
	var dst E
	linear := d.Space.matrixTo(dst.Space()).MulVec(d.Value)
	return dst.FromLinear(linear, 1)
}

// LinearSrgb is shorthand for ToColor[colour.LinearSrgb].
func (d DynamicColor) LinearSrgb() colour.LinearSrgb {
	return ToColor[colour.LinearSrgb](d)
}

func (d DynamicColor) String() string {
	return fmt.Sprintf("%v in %v", d.Value, d.Space)
}

// FromCustom converts r, g, b given in space to linear sRGB.
func FromCustom(space CustomColorSpace, r, g, b float32) colour.LinearSrgb {
	return NewDynamicColor(r, g, b, space).LinearSrgb()
}

// ToCustomRGB decodes c and expresses it in space. Alpha is dropped.
func ToCustomRGB[E colour.Encoding[E]](c E, space CustomColorSpace) (r, g, b float32) {
	linear, _ := c.ToLinear()
	v := space.matrixFrom(c.Space()).MulVec(linear)
	return v[0], v[1], v[2]
}

// ToDynamic decodes c into a DynamicColor in space.
func ToDynamic[E colour.Encoding[E]](c E, space CustomColorSpace) DynamicColor {
	r, g, b := ToCustomRGB(c, space)
	return NewDynamicColor(r, g, b, space)
}
