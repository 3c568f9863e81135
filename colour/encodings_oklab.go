package colour

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/transform"
	"github.com/kpfaulkner/colour-go/vecmath"
)

// Oklab is Björn Ottosson's perceptual colour space. L is lightness, a and b
// are the green/red and blue/yellow opponent axes. It decodes to CIE XYZ (D65).
type Oklab struct {
	_    noCompare
	repr F32x3
}

func NewOklab(l, a, b float32) Oklab {
	return Oklab{repr: F32x3{l, a, b}}
}

func (Oklab) Name() string       { return "Oklab" }
func (Oklab) Layout() Layout     { return LayoutF32x3 }
func (Oklab) Space() LinearSpace { return SpaceCieXYZ }

func (c Oklab) ToLinear() (vecmath.Vec3, float32) {
	return transform.OklabToXYZ(c.repr, SpaceCieXYZ.WhitePoint), 1
}

func (Oklab) FromLinear(linear vecmath.Vec3, _ float32) Oklab {
	return Oklab{repr: transform.XYZToOklab(linear, SpaceCieXYZ.WhitePoint)}
}

func (c Oklab) Lanes() vecmath.Vec4      { return c.repr.Extend(0) }
func (c Oklab) Raw() F32x3               { return c.repr }
func (c Oklab) Components() Lab[float32] { return Lab[float32]{L: c.repr[0], A: c.repr[1], B: c.repr[2]} }

func (c Oklab) vec4() vecmath.Vec4 { return c.repr.Extend(0) }
func (Oklab) withVec4(v vecmath.Vec4) Oklab {
	return Oklab{repr: v.XYZ()}
}
func (Oklab) working()    {}
func (Oklab) perceptual() {}

// PerceptualBlend interpolates from c towards to, t in [0, 1].
func (c Oklab) PerceptualBlend(to Oklab, t float32) Oklab {
	return PerceptualBlend(c, to, t)
}

func (c Oklab) String() string {
	return fmt.Sprintf("%s(%g, %g, %g)", c.Name(), c.repr[0], c.repr[1], c.repr[2])
}
