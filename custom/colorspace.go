package custom

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/transform"
	"github.com/kpfaulkner/colour-go/vecmath"
)

var ErrDegeneratePrimaries = errors.New("primaries do not span a colour space")

// minGamutArea rejects primaries that are collinear or nearly so.
const minGamutArea = 1e-6

// CustomColorSpace is a linear RGB space described at runtime by the xy
// chromaticities of its primaries and white point. The zero value is the
// default space, BT.709 primaries with a D65 white.
type CustomColorSpace struct {
	primaries  transform.Primaries
	whitePoint transform.WhitePoint
	valid      bool
}

// FromPrimariesAndWhitePoint builds a colour space from three primaries and a
// white point. Chromaticities within 1e-4 of a standard set are replaced with
// that named set.
func FromPrimariesAndWhitePoint(red, green, blue transform.CIEXY, whiteX, whiteY float32) (CustomColorSpace, error) {
	primaries := transform.MatchPrimaries(red, green, blue)
	if err := primaries.Validate(); err != nil {
		return CustomColorSpace{}, fmt.Errorf("custom colour space: %w", err)
	}
	wp := transform.MatchWhitePoint(whiteX, whiteY)
	if err := wp.Validate(); err != nil {
		return CustomColorSpace{}, fmt.Errorf("custom colour space white point: %w", err)
	}

	if math32.Abs(primaries.Area()) < minGamutArea {
		return CustomColorSpace{}, fmt.Errorf("custom colour space %v: %w", primaries, ErrDegeneratePrimaries)
	}
	if _, err := transform.PrimariesToXYZ(primaries, wp); err != nil {
		if errors.Is(err, vecmath.ErrSingularMatrix) {
			return CustomColorSpace{}, fmt.Errorf("custom colour space %v: %w", primaries, ErrDegeneratePrimaries)
		}
		return CustomColorSpace{}, fmt.Errorf("custom colour space: %w", err)
	}

	log.Debugf("custom colour space: primaries %v, white point %v", primaries, wp)
	return CustomColorSpace{primaries: primaries, whitePoint: wp, valid: true}, nil
}

// FromPrimariesD65 builds a colour space with the given primaries and a D65
// white point.
func FromPrimariesD65(red, green, blue transform.CIEXY) (CustomColorSpace, error) {
	wp := transform.WhitePointD65
	return FromPrimariesAndWhitePoint(red, green, blue, wp.X, wp.Y)
}

// FromPrimariesD50 builds a colour space with the given primaries and a D50
// white point.
func FromPrimariesD50(red, green, blue transform.CIEXY) (CustomColorSpace, error) {
	wp := transform.WhitePointD50
	return FromPrimariesAndWhitePoint(red, green, blue, wp.X, wp.Y)
}

// Default returns BT.709 primaries with a D65 white, i.e. linear sRGB.
func Default() CustomColorSpace {
	return CustomColorSpace{
		primaries:  transform.PrimariesBT709,
		whitePoint: transform.WhitePointD65,
		valid:      true,
	}
}

// FromLinearSpace wraps one of the registered linear spaces.
func FromLinearSpace(space colour.LinearSpace) CustomColorSpace {
	return CustomColorSpace{primaries: space.Primaries, whitePoint: space.WhitePoint, valid: true}
}

func (s CustomColorSpace) resolved() CustomColorSpace {
	if !s.valid {
		return Default()
	}
	return s
}

func (s CustomColorSpace) Primaries() transform.Primaries {
	return s.resolved().primaries
}

func (s CustomColorSpace) WhitePoint() transform.WhitePoint {
	return s.resolved().whitePoint
}

// LinearSpace describes s in the form the colour package converts between.
func (s CustomColorSpace) LinearSpace() colour.LinearSpace {
	r := s.resolved()
	return colour.LinearSpace{Name: r.String(), Primaries: r.primaries, WhitePoint: r.whitePoint}
}

// Standard returns the registered linear space s matches, if any.
func (s CustomColorSpace) Standard() (colour.LinearSpace, bool) {
	ls := s.LinearSpace()
	for _, std := range colour.Spaces() {
		if std.Matches(ls) {
			return std, true
		}
	}
	return colour.LinearSpace{}, false
}

func (s CustomColorSpace) Equal(other CustomColorSpace) bool {
	return s.LinearSpace().Matches(other.LinearSpace())
}

// matrixTo builds the conversion to dst. The matrices are rebuilt on every
// call.
func (s CustomColorSpace) matrixTo(dst colour.LinearSpace) vecmath.Mat3 {
	m, err := s.LinearSpace().MatrixTo(dst)
	if err != nil {
		log.Panicf("custom colour space: %v", err)
	}
	return m
}

func (s CustomColorSpace) matrixFrom(src colour.LinearSpace) vecmath.Mat3 {
	m, err := src.MatrixTo(s.LinearSpace())
	if err != nil {
		log.Panicf("custom colour space: %v", err)
	}
	return m
}

func (s CustomColorSpace) xyzSpace() colour.LinearSpace {
	return colour.LinearSpace{Name: "CIE XYZ", Primaries: transform.PrimariesCIEXYZ, WhitePoint: s.WhitePoint()}
}

// ToXYZ converts linear values in s to XYZ relative to the white point of s.
func (s CustomColorSpace) ToXYZ(v vecmath.Vec3) vecmath.Vec3 {
	return s.matrixTo(s.xyzSpace()).MulVec(v)
}

// FromXYZ converts XYZ relative to the white point of s into s.
func (s CustomColorSpace) FromXYZ(v vecmath.Vec3) vecmath.Vec3 {
	return s.matrixFrom(s.xyzSpace()).MulVec(v)
}

// ToLinearSrgb converts linear values in s to linear sRGB. Colours outside
// the sRGB gamut come out with components outside [0, 1].
func (s CustomColorSpace) ToLinearSrgb(v vecmath.Vec3) vecmath.Vec3 {
	return s.matrixTo(colour.SpaceSrgb).MulVec(v)
}

func (s CustomColorSpace) FromLinearSrgb(v vecmath.Vec3) vecmath.Vec3 {
	return s.matrixFrom(colour.SpaceSrgb).MulVec(v)
}

func (s CustomColorSpace) String() string {
	r := s.resolved()
	return fmt.Sprintf("%v / %v", r.primaries, r.whitePoint)
}
