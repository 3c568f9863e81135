package colour

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/transform"
	"github.com/kpfaulkner/colour-go/vecmath"
)

// linearRGB is the shared storage of the linear float triples below.
type linearRGB struct {
	_    noCompare
	repr F32x3
}

func (c linearRGB) ToLinear() (vecmath.Vec3, float32) { return c.repr, 1 }
func (c linearRGB) Lanes() vecmath.Vec4               { return c.repr.Extend(0) }
func (c linearRGB) Raw() F32x3                        { return c.repr }
func (c linearRGB) Components() RGB[float32]          { return rgbView[float32](c.repr) }
func (c linearRGB) vec4() vecmath.Vec4                { return c.repr.Extend(0) }
func (linearRGB) working()                            {}

// encodedRGB8 is the shared storage of the 8 bit encoded triples below.
type encodedRGB8 struct {
	repr U8x3
}

func (c encodedRGB8) Lanes() vecmath.Vec4    { return c.repr.lanes() }
func (c encodedRGB8) Raw() U8x3              { return c.repr }
func (c encodedRGB8) Components() RGB[uint8] { return rgbView[uint8](c.repr) }

func formatF32x3(name string, v F32x3) string {
	return fmt.Sprintf("%s(%g, %g, %g)", name, v[0], v[1], v[2])
}

func formatU8x3(name string, v U8x3) string {
	return fmt.Sprintf("%s(%d, %d, %d)", name, v[0], v[1], v[2])
}

// LinearAdobeRgb is linear Adobe RGB (1998), D65.
type LinearAdobeRgb struct{ linearRGB }

func NewLinearAdobeRgb(r, g, b float32) LinearAdobeRgb {
	return LinearAdobeRgb{linearRGB{repr: F32x3{r, g, b}}}
}

func (LinearAdobeRgb) Name() string       { return "LinearAdobeRgb" }
func (LinearAdobeRgb) Layout() Layout     { return LayoutF32x3 }
func (LinearAdobeRgb) Space() LinearSpace { return SpaceAdobeRgb }
func (LinearAdobeRgb) saturating()        {}

func (LinearAdobeRgb) FromLinear(linear vecmath.Vec3, _ float32) LinearAdobeRgb {
	return LinearAdobeRgb{linearRGB{repr: linear}}
}

func (LinearAdobeRgb) withVec4(v vecmath.Vec4) LinearAdobeRgb {
	return LinearAdobeRgb{linearRGB{repr: v.XYZ()}}
}

func (c LinearAdobeRgb) String() string { return formatF32x3(c.Name(), c.repr) }

// EncodedAdobeRgbU8 is 8 bit Adobe RGB (1998) with its 563/256 gamma.
type EncodedAdobeRgbU8 struct{ encodedRGB8 }

func NewEncodedAdobeRgbU8(r, g, b uint8) EncodedAdobeRgbU8 {
	return EncodedAdobeRgbU8{encodedRGB8{repr: U8x3{r, g, b}}}
}

func (EncodedAdobeRgbU8) Name() string       { return "EncodedAdobeRgbU8" }
func (EncodedAdobeRgbU8) Layout() Layout     { return LayoutU8x3 }
func (EncodedAdobeRgbU8) Space() LinearSpace { return SpaceAdobeRgb }

func (c EncodedAdobeRgbU8) ToLinear() (vecmath.Vec3, float32) {
	return transform.AdobeRgbEOTF(c.repr.unorm()), 1
}

func (EncodedAdobeRgbU8) FromLinear(linear vecmath.Vec3, _ float32) EncodedAdobeRgbU8 {
	return EncodedAdobeRgbU8{encodedRGB8{repr: quantise3(transform.AdobeRgbOETF(linear))}}
}

func (c EncodedAdobeRgbU8) String() string { return formatU8x3(c.Name(), c.repr) }

// LinearProPhotoRgb is linear ProPhoto (ROMM) RGB. Its white point is D50.
type LinearProPhotoRgb struct{ linearRGB }

func NewLinearProPhotoRgb(r, g, b float32) LinearProPhotoRgb {
	return LinearProPhotoRgb{linearRGB{repr: F32x3{r, g, b}}}
}

func (LinearProPhotoRgb) Name() string       { return "LinearProPhotoRgb" }
func (LinearProPhotoRgb) Layout() Layout     { return LayoutF32x3 }
func (LinearProPhotoRgb) Space() LinearSpace { return SpaceProPhotoRgb }
func (LinearProPhotoRgb) saturating()        {}

func (LinearProPhotoRgb) FromLinear(linear vecmath.Vec3, _ float32) LinearProPhotoRgb {
	return LinearProPhotoRgb{linearRGB{repr: linear}}
}

func (LinearProPhotoRgb) withVec4(v vecmath.Vec4) LinearProPhotoRgb {
	return LinearProPhotoRgb{linearRGB{repr: v.XYZ()}}
}

func (c LinearProPhotoRgb) String() string { return formatF32x3(c.Name(), c.repr) }

// EncodedProPhotoRgbU8 is 8 bit ROMM RGB: gamma 1.8 with a linear toe.
type EncodedProPhotoRgbU8 struct{ encodedRGB8 }

func NewEncodedProPhotoRgbU8(r, g, b uint8) EncodedProPhotoRgbU8 {
	return EncodedProPhotoRgbU8{encodedRGB8{repr: U8x3{r, g, b}}}
}

func (EncodedProPhotoRgbU8) Name() string       { return "EncodedProPhotoRgbU8" }
func (EncodedProPhotoRgbU8) Layout() Layout     { return LayoutU8x3 }
func (EncodedProPhotoRgbU8) Space() LinearSpace { return SpaceProPhotoRgb }

func (c EncodedProPhotoRgbU8) ToLinear() (vecmath.Vec3, float32) {
	return transform.ProPhotoEOTF(c.repr.unorm()), 1
}

func (EncodedProPhotoRgbU8) FromLinear(linear vecmath.Vec3, _ float32) EncodedProPhotoRgbU8 {
	return EncodedProPhotoRgbU8{encodedRGB8{repr: quantise3(transform.ProPhotoOETF(linear))}}
}

func (c EncodedProPhotoRgbU8) String() string { return formatU8x3(c.Name(), c.repr) }

// LinearDisplayP3 is linear light with P3 primaries and D65 white.
type LinearDisplayP3 struct{ linearRGB }

func NewLinearDisplayP3(r, g, b float32) LinearDisplayP3 {
	return LinearDisplayP3{linearRGB{repr: F32x3{r, g, b}}}
}

func (LinearDisplayP3) Name() string       { return "LinearDisplayP3" }
func (LinearDisplayP3) Layout() Layout     { return LayoutF32x3 }
func (LinearDisplayP3) Space() LinearSpace { return SpaceDisplayP3 }
func (LinearDisplayP3) saturating()        {}

func (LinearDisplayP3) FromLinear(linear vecmath.Vec3, _ float32) LinearDisplayP3 {
	return LinearDisplayP3{linearRGB{repr: linear}}
}

func (LinearDisplayP3) withVec4(v vecmath.Vec4) LinearDisplayP3 {
	return LinearDisplayP3{linearRGB{repr: v.XYZ()}}
}

func (c LinearDisplayP3) String() string { return formatF32x3(c.Name(), c.repr) }

// EncodedDisplayP3U8 is Display P3 as shipped by Apple displays and CSS
// color(display-p3): P3 primaries with the sRGB transfer function.
type EncodedDisplayP3U8 struct{ encodedRGB8 }

func NewEncodedDisplayP3U8(r, g, b uint8) EncodedDisplayP3U8 {
	return EncodedDisplayP3U8{encodedRGB8{repr: U8x3{r, g, b}}}
}

func (EncodedDisplayP3U8) Name() string       { return "EncodedDisplayP3U8" }
func (EncodedDisplayP3U8) Layout() Layout     { return LayoutU8x3 }
func (EncodedDisplayP3U8) Space() LinearSpace { return SpaceDisplayP3 }

func (c EncodedDisplayP3U8) ToLinear() (vecmath.Vec3, float32) {
	return transform.SrgbEOTF(c.repr.unorm()), 1
}

func (EncodedDisplayP3U8) FromLinear(linear vecmath.Vec3, _ float32) EncodedDisplayP3U8 {
	return EncodedDisplayP3U8{encodedRGB8{repr: quantise3(transform.SrgbOETF(linear))}}
}

func (c EncodedDisplayP3U8) String() string { return formatU8x3(c.Name(), c.repr) }

// EncodedDisplayP3F32 is the float form of EncodedDisplayP3U8.
type EncodedDisplayP3F32 struct {
	_    noCompare
	repr F32x3
}

func NewEncodedDisplayP3F32(r, g, b float32) EncodedDisplayP3F32 {
	return EncodedDisplayP3F32{repr: F32x3{r, g, b}}
}

func (EncodedDisplayP3F32) Name() string       { return "EncodedDisplayP3F32" }
func (EncodedDisplayP3F32) Layout() Layout     { return LayoutF32x3 }
func (EncodedDisplayP3F32) Space() LinearSpace { return SpaceDisplayP3 }

func (c EncodedDisplayP3F32) ToLinear() (vecmath.Vec3, float32) {
	return transform.SrgbEOTF(c.repr), 1
}

func (EncodedDisplayP3F32) FromLinear(linear vecmath.Vec3, _ float32) EncodedDisplayP3F32 {
	return EncodedDisplayP3F32{repr: transform.SrgbOETF(linear)}
}

func (c EncodedDisplayP3F32) Lanes() vecmath.Vec4      { return c.repr.Extend(0) }
func (c EncodedDisplayP3F32) Raw() F32x3               { return c.repr }
func (c EncodedDisplayP3F32) Components() RGB[float32] { return rgbView[float32](c.repr) }
func (c EncodedDisplayP3F32) String() string           { return formatF32x3(c.Name(), c.repr) }

// LinearAcesCg is the ACEScg working space: AP1 primaries, ACES white.
// Scene referred, so values above 1 are normal and Saturate does not apply.
type LinearAcesCg struct{ linearRGB }

func NewLinearAcesCg(r, g, b float32) LinearAcesCg {
	return LinearAcesCg{linearRGB{repr: F32x3{r, g, b}}}
}

func (LinearAcesCg) Name() string       { return "LinearAcesCg" }
func (LinearAcesCg) Layout() Layout     { return LayoutF32x3 }
func (LinearAcesCg) Space() LinearSpace { return SpaceAcesCg }

func (LinearAcesCg) FromLinear(linear vecmath.Vec3, _ float32) LinearAcesCg {
	return LinearAcesCg{linearRGB{repr: linear}}
}

func (LinearAcesCg) withVec4(v vecmath.Vec4) LinearAcesCg {
	return LinearAcesCg{linearRGB{repr: v.XYZ()}}
}

func (c LinearAcesCg) String() string { return formatF32x3(c.Name(), c.repr) }

// LinearAces2065 is ACES2065-1, the AP0 interchange space.
type LinearAces2065 struct{ linearRGB }

func NewLinearAces2065(r, g, b float32) LinearAces2065 {
	return LinearAces2065{linearRGB{repr: F32x3{r, g, b}}}
}

func (LinearAces2065) Name() string       { return "LinearAces2065" }
func (LinearAces2065) Layout() Layout     { return LayoutF32x3 }
func (LinearAces2065) Space() LinearSpace { return SpaceAces2065 }

func (LinearAces2065) FromLinear(linear vecmath.Vec3, _ float32) LinearAces2065 {
	return LinearAces2065{linearRGB{repr: linear}}
}

func (LinearAces2065) withVec4(v vecmath.Vec4) LinearAces2065 {
	return LinearAces2065{linearRGB{repr: v.XYZ()}}
}

func (c LinearAces2065) String() string { return formatF32x3(c.Name(), c.repr) }

// LinearBt2020 is linear light with BT.2020 primaries and D65 white.
type LinearBt2020 struct{ linearRGB }

func NewLinearBt2020(r, g, b float32) LinearBt2020 {
	return LinearBt2020{linearRGB{repr: F32x3{r, g, b}}}
}

func (LinearBt2020) Name() string       { return "LinearBt2020" }
func (LinearBt2020) Layout() Layout     { return LayoutF32x3 }
func (LinearBt2020) Space() LinearSpace { return SpaceBt2020 }
func (LinearBt2020) saturating()        {}

func (LinearBt2020) FromLinear(linear vecmath.Vec3, _ float32) LinearBt2020 {
	return LinearBt2020{linearRGB{repr: linear}}
}

func (LinearBt2020) withVec4(v vecmath.Vec4) LinearBt2020 {
	return LinearBt2020{linearRGB{repr: v.XYZ()}}
}

func (c LinearBt2020) String() string { return formatF32x3(c.Name(), c.repr) }

// EncodedBt2020F32 is BT.2020 with the BT.2020 (BT.709 form) transfer
// function, as float values.
type EncodedBt2020F32 struct {
	_    noCompare
	repr F32x3
}

func NewEncodedBt2020F32(r, g, b float32) EncodedBt2020F32 {
	return EncodedBt2020F32{repr: F32x3{r, g, b}}
}

func (EncodedBt2020F32) Name() string       { return "EncodedBt2020F32" }
func (EncodedBt2020F32) Layout() Layout     { return LayoutF32x3 }
func (EncodedBt2020F32) Space() LinearSpace { return SpaceBt2020 }

func (c EncodedBt2020F32) ToLinear() (vecmath.Vec3, float32) {
	return transform.Bt2020EOTF(c.repr), 1
}

func (EncodedBt2020F32) FromLinear(linear vecmath.Vec3, _ float32) EncodedBt2020F32 {
	return EncodedBt2020F32{repr: transform.Bt2020OETF(linear)}
}

func (c EncodedBt2020F32) Lanes() vecmath.Vec4      { return c.repr.Extend(0) }
func (c EncodedBt2020F32) Raw() F32x3               { return c.repr }
func (c EncodedBt2020F32) Components() RGB[float32] { return rgbView[float32](c.repr) }
func (c EncodedBt2020F32) String() string           { return formatF32x3(c.Name(), c.repr) }

// CieXYZ holds tristimulus values relative to D65.
type CieXYZ struct {
	_    noCompare
	repr F32x3
}

func NewCieXYZ(x, y, z float32) CieXYZ {
	return CieXYZ{repr: F32x3{x, y, z}}
}

func (CieXYZ) Name() string       { return "CieXYZ" }
func (CieXYZ) Layout() Layout     { return LayoutF32x3 }
func (CieXYZ) Space() LinearSpace { return SpaceCieXYZ }

func (c CieXYZ) ToLinear() (vecmath.Vec3, float32) { return c.repr, 1 }

func (CieXYZ) FromLinear(linear vecmath.Vec3, _ float32) CieXYZ {
	return CieXYZ{repr: linear}
}

func (c CieXYZ) Lanes() vecmath.Vec4      { return c.repr.Extend(0) }
func (c CieXYZ) Raw() F32x3               { return c.repr }
func (c CieXYZ) Components() XYZ[float32] { return XYZ[float32]{X: c.repr[0], Y: c.repr[1], Z: c.repr[2]} }
func (c CieXYZ) vec4() vecmath.Vec4       { return c.repr.Extend(0) }
func (CieXYZ) working()                   {}

func (CieXYZ) withVec4(v vecmath.Vec4) CieXYZ {
	return CieXYZ{repr: v.XYZ()}
}

func (c CieXYZ) String() string { return formatF32x3(c.Name(), c.repr) }
