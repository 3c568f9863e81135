package colour

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/transform"
	"github.com/kpfaulkner/colour-go/vecmath"
)

// LinearSpace is a linear RGB (or XYZ) space identified by its primaries and
// white point. Every encoding decodes into exactly one LinearSpace.
type LinearSpace struct {
	Name       string
	Primaries  transform.Primaries
	WhitePoint transform.WhitePoint
}

var (
	SpaceSrgb = LinearSpace{
		Name:       "sRGB",
		Primaries:  transform.PrimariesBT709,
		WhitePoint: transform.WhitePointD65,
	}
	SpaceAdobeRgb = LinearSpace{
		Name:       "Adobe RGB",
		Primaries:  transform.PrimariesAdobeRGB,
		WhitePoint: transform.WhitePointD65,
	}
	SpaceProPhotoRgb = LinearSpace{
		Name:       "ProPhoto RGB",
		Primaries:  transform.PrimariesProPhoto,
		WhitePoint: transform.WhitePointD50,
	}
	SpaceDisplayP3 = LinearSpace{
		Name:       "Display P3",
		Primaries:  transform.PrimariesP3,
		WhitePoint: transform.WhitePointD65,
	}
	SpaceAcesCg = LinearSpace{
		Name:       "ACEScg",
		Primaries:  transform.PrimariesAP1,
		WhitePoint: transform.WhitePointACES,
	}
	SpaceAces2065 = LinearSpace{
		Name:       "ACES2065-1",
		Primaries:  transform.PrimariesAP0,
		WhitePoint: transform.WhitePointACES,
	}
	SpaceBt2020 = LinearSpace{
		Name:       "BT.2020",
		Primaries:  transform.PrimariesBT2020,
		WhitePoint: transform.WhitePointD65,
	}
	SpaceCieXYZ = LinearSpace{
		Name:       "CIE XYZ",
		Primaries:  transform.PrimariesCIEXYZ,
		WhitePoint: transform.WhitePointD65,
	}

	spaces = []LinearSpace{
		SpaceSrgb,
		SpaceAdobeRgb,
		SpaceProPhotoRgb,
		SpaceDisplayP3,
		SpaceAcesCg,
		SpaceAces2065,
		SpaceBt2020,
		SpaceCieXYZ,
	}
)

// Spaces lists the registered linear spaces.
func Spaces() []LinearSpace {
	out := make([]LinearSpace, len(spaces))
	copy(out, spaces)
	return out
}

// SpaceByName finds a registered linear space by its Name.
func SpaceByName(name string) (LinearSpace, bool) {
	for _, s := range spaces {
		if s.Name == name {
			return s, true
		}
	}
	return LinearSpace{}, false
}

// Matches compares chromaticities only; the name is ignored.
func (s LinearSpace) Matches(other LinearSpace) bool {
	return s.Primaries.Matches(other.Primaries) && s.WhitePoint.Matches(other.WhitePoint)
}

// ToXYZ returns the matrix taking linear values in s to XYZ relative to the
// white point of s.
func (s LinearSpace) ToXYZ() (vecmath.Mat3, error) {
	return transform.PrimariesToXYZ(s.Primaries, s.WhitePoint)
}

// MatrixTo returns the matrix taking linear values in s to linear values in
// dst, adapting white points if they differ.
func (s LinearSpace) MatrixTo(dst LinearSpace) (vecmath.Mat3, error) {
	m, err := transform.ConversionMatrix(dst.Primaries, dst.WhitePoint, s.Primaries, s.WhitePoint)
	if err != nil {
		return vecmath.Mat3{}, fmt.Errorf("%s to %s: %w", s.Name, dst.Name, err)
	}
	return m, nil
}

func (s LinearSpace) String() string {
	return fmt.Sprintf("%s (%v, %v)", s.Name, s.Primaries, s.WhitePoint)
}
