package colour

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/transform"
	"github.com/kpfaulkner/colour-go/vecmath"
)

// EncodedSrgbU8 is the usual 8 bit sRGB triple, as used by hex codes, CSS and
// most image formats.
type EncodedSrgbU8 struct {
	repr U8x3
}

func NewEncodedSrgbU8(r, g, b uint8) EncodedSrgbU8 {
	return EncodedSrgbU8{repr: U8x3{r, g, b}}
}

// SrgbU8 is shorthand for NewEncodedSrgbU8.
func SrgbU8(r, g, b uint8) EncodedSrgbU8 {
	return NewEncodedSrgbU8(r, g, b)
}

func (EncodedSrgbU8) Name() string       { return "EncodedSrgbU8" }
func (EncodedSrgbU8) Layout() Layout     { return LayoutU8x3 }
func (EncodedSrgbU8) Space() LinearSpace { return SpaceSrgb }

func (c EncodedSrgbU8) ToLinear() (vecmath.Vec3, float32) {
	return transform.SrgbEOTF(c.repr.unorm()), 1
}

func (EncodedSrgbU8) FromLinear(linear vecmath.Vec3, _ float32) EncodedSrgbU8 {
	return EncodedSrgbU8{repr: quantise3(transform.SrgbOETF(linear))}
}

func (c EncodedSrgbU8) Lanes() vecmath.Vec4    { return c.repr.lanes() }
func (c EncodedSrgbU8) Raw() U8x3              { return c.repr }
func (c EncodedSrgbU8) Components() RGB[uint8] { return rgbView[uint8](c.repr) }

func (c EncodedSrgbU8) String() string {
	return fmt.Sprintf("%s(%d, %d, %d)", c.Name(), c.repr[0], c.repr[1], c.repr[2])
}

// EncodedSrgbF32 is the gamma encoded sRGB triple as floats in [0, 1].
type EncodedSrgbF32 struct {
	_    noCompare
	repr F32x3
}

func NewEncodedSrgbF32(r, g, b float32) EncodedSrgbF32 {
	return EncodedSrgbF32{repr: F32x3{r, g, b}}
}

// SrgbF32 is shorthand for NewEncodedSrgbF32.
func SrgbF32(r, g, b float32) EncodedSrgbF32 {
	return NewEncodedSrgbF32(r, g, b)
}

func (EncodedSrgbF32) Name() string       { return "EncodedSrgbF32" }
func (EncodedSrgbF32) Layout() Layout     { return LayoutF32x3 }
func (EncodedSrgbF32) Space() LinearSpace { return SpaceSrgb }

func (c EncodedSrgbF32) ToLinear() (vecmath.Vec3, float32) {
	return transform.SrgbEOTF(c.repr), 1
}

func (EncodedSrgbF32) FromLinear(linear vecmath.Vec3, _ float32) EncodedSrgbF32 {
	return EncodedSrgbF32{repr: transform.SrgbOETF(linear)}
}

func (c EncodedSrgbF32) Lanes() vecmath.Vec4      { return c.repr.Extend(0) }
func (c EncodedSrgbF32) Raw() F32x3               { return c.repr }
func (c EncodedSrgbF32) Components() RGB[float32] { return rgbView[float32](c.repr) }

func (c EncodedSrgbF32) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", c.Name(), c.repr[0], c.repr[1], c.repr[2])
}

// EncodedSrgbaU8 is 8 bit sRGB with a separate, linearly stored alpha.
type EncodedSrgbaU8 struct {
	repr U8x4
}

func NewEncodedSrgbaU8(r, g, b, a uint8) EncodedSrgbaU8 {
	return EncodedSrgbaU8{repr: U8x4{r, g, b, a}}
}

// SrgbaU8 is shorthand for NewEncodedSrgbaU8.
func SrgbaU8(r, g, b, a uint8) EncodedSrgbaU8 {
	return NewEncodedSrgbaU8(r, g, b, a)
}

func (EncodedSrgbaU8) Name() string       { return "EncodedSrgbaU8" }
func (EncodedSrgbaU8) Layout() Layout     { return LayoutU8x4 }
func (EncodedSrgbaU8) Space() LinearSpace { return SpaceSrgb }

func (c EncodedSrgbaU8) ToLinear() (vecmath.Vec3, float32) {
	rgb, a := c.repr.unorm()
	return transform.SrgbEOTF(rgb), a
}

func (EncodedSrgbaU8) FromLinear(linear vecmath.Vec3, alpha float32) EncodedSrgbaU8 {
	return EncodedSrgbaU8{repr: quantise4(transform.SrgbOETF(linear), alpha)}
}

func (c EncodedSrgbaU8) Lanes() vecmath.Vec4     { return c.repr.lanes() }
func (c EncodedSrgbaU8) Raw() U8x4               { return c.repr }
func (c EncodedSrgbaU8) Components() RGBA[uint8] { return rgbaView[uint8](c.repr) }

func (c EncodedSrgbaU8) composite(under EncodedSrgbaU8) EncodedSrgbaU8 {
	return compositeViaPremultiplied(c, under)
}

func (c EncodedSrgbaU8) String() string {
	return fmt.Sprintf("%s(%d, %d, %d, %d)", c.Name(), c.repr[0], c.repr[1], c.repr[2], c.repr[3])
}

// EncodedSrgbaF32 is gamma encoded sRGB floats with a separate linear alpha.
type EncodedSrgbaF32 struct {
	_    noCompare
	repr F32x4
}

func NewEncodedSrgbaF32(r, g, b, a float32) EncodedSrgbaF32 {
	return EncodedSrgbaF32{repr: F32x4{r, g, b, a}}
}

// SrgbaF32 is shorthand for NewEncodedSrgbaF32.
func SrgbaF32(r, g, b, a float32) EncodedSrgbaF32 {
	return NewEncodedSrgbaF32(r, g, b, a)
}

func (EncodedSrgbaF32) Name() string       { return "EncodedSrgbaF32" }
func (EncodedSrgbaF32) Layout() Layout     { return LayoutF32x4 }
func (EncodedSrgbaF32) Space() LinearSpace { return SpaceSrgb }

func (c EncodedSrgbaF32) ToLinear() (vecmath.Vec3, float32) {
	return transform.SrgbEOTF(c.repr.XYZ()), c.repr[3]
}

func (EncodedSrgbaF32) FromLinear(linear vecmath.Vec3, alpha float32) EncodedSrgbaF32 {
	return EncodedSrgbaF32{repr: transform.SrgbOETF(linear).Extend(alpha)}
}

func (c EncodedSrgbaF32) Lanes() vecmath.Vec4       { return c.repr }
func (c EncodedSrgbaF32) Raw() F32x4                { return c.repr }
func (c EncodedSrgbaF32) Components() RGBA[float32] { return rgbaView[float32](c.repr) }

func (c EncodedSrgbaF32) composite(under EncodedSrgbaF32) EncodedSrgbaF32 {
	return compositeViaPremultiplied(c, under)
}

func (c EncodedSrgbaF32) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", c.Name(), c.repr[0], c.repr[1], c.repr[2], c.repr[3])
}

// EncodedSrgbaPremultipliedU8 stores 8 bit sRGB whose colour was multiplied
// by alpha in linear light before the transfer function was applied. Alpha is
// stored linearly. Decoding a zero alpha divides by zero.
type EncodedSrgbaPremultipliedU8 struct {
	repr U8x4
}

func NewEncodedSrgbaPremultipliedU8(r, g, b, a uint8) EncodedSrgbaPremultipliedU8 {
	return EncodedSrgbaPremultipliedU8{repr: U8x4{r, g, b, a}}
}

func (EncodedSrgbaPremultipliedU8) Name() string       { return "EncodedSrgbaPremultipliedU8" }
func (EncodedSrgbaPremultipliedU8) Layout() Layout     { return LayoutU8x4 }
func (EncodedSrgbaPremultipliedU8) Space() LinearSpace { return SpaceSrgb }

func (c EncodedSrgbaPremultipliedU8) ToLinear() (vecmath.Vec3, float32) {
	rgb, a := c.repr.unorm()
	return transform.SrgbEOTF(rgb).DivScalar(a), a
}

func (EncodedSrgbaPremultipliedU8) FromLinear(linear vecmath.Vec3, alpha float32) EncodedSrgbaPremultipliedU8 {
	return EncodedSrgbaPremultipliedU8{repr: quantise4(transform.SrgbOETF(linear.Scale(alpha)), alpha)}
}

func (c EncodedSrgbaPremultipliedU8) Lanes() vecmath.Vec4     { return c.repr.lanes() }
func (c EncodedSrgbaPremultipliedU8) Raw() U8x4               { return c.repr }
func (c EncodedSrgbaPremultipliedU8) Components() RGBA[uint8] { return rgbaView[uint8](c.repr) }

func (c EncodedSrgbaPremultipliedU8) composite(under EncodedSrgbaPremultipliedU8) EncodedSrgbaPremultipliedU8 {
	return compositeViaPremultiplied(c, under)
}

func (c EncodedSrgbaPremultipliedU8) String() string {
	return fmt.Sprintf("%s(%d, %d, %d, %d)", c.Name(), c.repr[0], c.repr[1], c.repr[2], c.repr[3])
}

// LinearSrgb holds linear light values with sRGB primaries and D65 white.
// Components are not clamped and may leave [0, 1].
type LinearSrgb struct {
	_    noCompare
	repr F32x3
}

func NewLinearSrgb(r, g, b float32) LinearSrgb {
	return LinearSrgb{repr: F32x3{r, g, b}}
}

func (LinearSrgb) Name() string       { return "LinearSrgb" }
func (LinearSrgb) Layout() Layout     { return LayoutF32x3 }
func (LinearSrgb) Space() LinearSpace { return SpaceSrgb }

func (c LinearSrgb) ToLinear() (vecmath.Vec3, float32) {
	return c.repr, 1
}

func (LinearSrgb) FromLinear(linear vecmath.Vec3, _ float32) LinearSrgb {
	return LinearSrgb{repr: linear}
}

func (c LinearSrgb) Lanes() vecmath.Vec4      { return c.repr.Extend(0) }
func (c LinearSrgb) Raw() F32x3               { return c.repr }
func (c LinearSrgb) Components() RGB[float32] { return rgbView[float32](c.repr) }

func (c LinearSrgb) vec4() vecmath.Vec4 { return c.repr.Extend(0) }
func (LinearSrgb) withVec4(v vecmath.Vec4) LinearSrgb {
	return LinearSrgb{repr: v.XYZ()}
}
func (LinearSrgb) working()    {}
func (LinearSrgb) saturating() {}

func (c LinearSrgb) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", c.Name(), c.repr[0], c.repr[1], c.repr[2])
}

// LinearSrgba is LinearSrgb with a separate (straight) alpha.
type LinearSrgba struct {
	_    noCompare
	repr F32x4
}

func NewLinearSrgba(r, g, b, a float32) LinearSrgba {
	return LinearSrgba{repr: F32x4{r, g, b, a}}
}

func (LinearSrgba) Name() string       { return "LinearSrgba" }
func (LinearSrgba) Layout() Layout     { return LayoutF32x4 }
func (LinearSrgba) Space() LinearSpace { return SpaceSrgb }

func (c LinearSrgba) ToLinear() (vecmath.Vec3, float32) {
	return c.repr.XYZ(), c.repr[3]
}

func (LinearSrgba) FromLinear(linear vecmath.Vec3, alpha float32) LinearSrgba {
	return LinearSrgba{repr: linear.Extend(alpha)}
}

func (c LinearSrgba) Lanes() vecmath.Vec4       { return c.repr }
func (c LinearSrgba) Raw() F32x4                { return c.repr }
func (c LinearSrgba) Components() RGBA[float32] { return rgbaView[float32](c.repr) }

func (c LinearSrgba) vec4() vecmath.Vec4 { return c.repr }
func (LinearSrgba) withVec4(v vecmath.Vec4) LinearSrgba {
	return LinearSrgba{repr: v}
}
func (LinearSrgba) working()    {}
func (LinearSrgba) saturating() {}

func (c LinearSrgba) composite(under LinearSrgba) LinearSrgba {
	return compositeViaPremultiplied(c, under)
}

func (c LinearSrgba) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", c.Name(), c.repr[0], c.repr[1], c.repr[2], c.repr[3])
}

// LinearSrgbaPremultiplied stores linear sRGB already multiplied by alpha.
// Decoding a zero alpha divides by zero.
type LinearSrgbaPremultiplied struct {
	_    noCompare
	repr F32x4
}

func NewLinearSrgbaPremultiplied(r, g, b, a float32) LinearSrgbaPremultiplied {
	return LinearSrgbaPremultiplied{repr: F32x4{r, g, b, a}}
}

func (LinearSrgbaPremultiplied) Name() string       { return "LinearSrgbaPremultiplied" }
func (LinearSrgbaPremultiplied) Layout() Layout     { return LayoutF32x4 }
func (LinearSrgbaPremultiplied) Space() LinearSpace { return SpaceSrgb }

func (c LinearSrgbaPremultiplied) ToLinear() (vecmath.Vec3, float32) {
	a := c.repr[3]
	return c.repr.XYZ().DivScalar(a), a
}

func (LinearSrgbaPremultiplied) FromLinear(linear vecmath.Vec3, alpha float32) LinearSrgbaPremultiplied {
	return LinearSrgbaPremultiplied{repr: linear.Scale(alpha).Extend(alpha)}
}

func (c LinearSrgbaPremultiplied) Lanes() vecmath.Vec4       { return c.repr }
func (c LinearSrgbaPremultiplied) Raw() F32x4                { return c.repr }
func (c LinearSrgbaPremultiplied) Components() RGBA[float32] { return rgbaView[float32](c.repr) }

// composite is the Porter-Duff over operator on premultiplied values.
func (c LinearSrgbaPremultiplied) composite(under LinearSrgbaPremultiplied) LinearSrgbaPremultiplied {
	return LinearSrgbaPremultiplied{repr: c.repr.Add(under.repr.Scale(1 - c.repr[3]))}
}

func (c LinearSrgbaPremultiplied) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", c.Name(), c.repr[0], c.repr[1], c.repr[2], c.repr[3])
}
