package transform

import "fmt"

// Primaries holds the chromaticities of the red, green and blue corners of an
// RGB gamut. Name is set for the standard sets and empty for custom ones.
type Primaries struct {
	Name  string
	Red   CIEXY
	Green CIEXY
	Blue  CIEXY
}

func NewPrimaries(red CIEXY, green CIEXY, blue CIEXY) Primaries {
	return Primaries{Red: red, Green: green, Blue: blue}
}

var (
	PrimariesBT709 = Primaries{
		Name:  "BT.709",
		Red:   CIEXY{0.64, 0.33},
		Green: CIEXY{0.30, 0.60},
		Blue:  CIEXY{0.15, 0.06},
	}
	PrimariesAdobeRGB = Primaries{
		Name:  "Adobe RGB (1998)",
		Red:   CIEXY{0.64, 0.33},
		Green: CIEXY{0.21, 0.71},
		Blue:  CIEXY{0.15, 0.06},
	}
	PrimariesProPhoto = Primaries{
		Name:  "ProPhoto (ROMM)",
		Red:   CIEXY{0.7347, 0.2653},
		Green: CIEXY{0.1596, 0.8404},
		Blue:  CIEXY{0.0366, 0.0001},
	}
	PrimariesP3 = Primaries{
		Name:  "P3",
		Red:   CIEXY{0.680, 0.320},
		Green: CIEXY{0.265, 0.690},
		Blue:  CIEXY{0.150, 0.060},
	}
	PrimariesAP1 = Primaries{
		Name:  "ACES AP1",
		Red:   CIEXY{0.713, 0.293},
		Green: CIEXY{0.165, 0.830},
		Blue:  CIEXY{0.128, 0.044},
	}
	PrimariesAP0 = Primaries{
		Name:  "ACES AP0",
		Red:   CIEXY{0.7347, 0.2653},
		Green: CIEXY{0.0000, 1.0000},
		Blue:  CIEXY{0.0001, -0.0770},
	}
	PrimariesBT2020 = Primaries{
		Name:  "BT.2020",
		Red:   CIEXY{0.708, 0.292},
		Green: CIEXY{0.170, 0.797},
		Blue:  CIEXY{0.131, 0.046},
	}

	// PrimariesCIEXYZ marks the XYZ space itself. Its "primaries" are the XYZ
	// axes, so the primaries to XYZ matrix is the identity.
	PrimariesCIEXYZ = Primaries{
		Name:  "CIE XYZ",
		Red:   CIEXY{1, 0},
		Green: CIEXY{0, 1},
		Blue:  CIEXY{0, 0},
	}

	standardPrimaries = []Primaries{
		PrimariesBT709,
		PrimariesAdobeRGB,
		PrimariesProPhoto,
		PrimariesP3,
		PrimariesAP1,
		PrimariesAP0,
		PrimariesBT2020,
	}
)

func (p Primaries) Matches(other Primaries) bool {
	return p.Red.Matches(other.Red) && p.Green.Matches(other.Green) && p.Blue.Matches(other.Blue)
}

// IsXYZ reports whether p is the identity primaries set of CIE XYZ.
func (p Primaries) IsXYZ() bool {
	return p.Matches(PrimariesCIEXYZ)
}

func (p Primaries) Validate() error {
	if p.IsXYZ() {
		return nil
	}
	for _, c := range []CIEXY{p.Red, p.Green, p.Blue} {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Area is the signed area of the gamut triangle in the xy plane. It is zero
// when the primaries are collinear.
func (p Primaries) Area() float32 {
	return 0.5 * ((p.Green.X-p.Red.X)*(p.Blue.Y-p.Red.Y) - (p.Blue.X-p.Red.X)*(p.Green.Y-p.Red.Y))
}

// MatchPrimaries returns the standard primaries set matching the given
// chromaticities, or an unnamed custom set when none match.
func MatchPrimaries(red CIEXY, green CIEXY, blue CIEXY) Primaries {
	p := NewPrimaries(red, green, blue)
	for _, std := range standardPrimaries {
		if std.Matches(p) {
			return std
		}
	}
	return p
}

func (p Primaries) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("custom[r%v g%v b%v]", p.Red, p.Green, p.Blue)
}
