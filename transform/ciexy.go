package transform

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/kpfaulkner/colour-go/vecmath"
)

var ErrInvalidChromaticity = errors.New("invalid chromaticity")

// matchTolerance is how close two chromaticities must be to count as the same
// point. Values read from assets are rarely bit exact.
const matchTolerance = 1e-4

// CIEXY is a CIE 1931 xy chromaticity coordinate.
type CIEXY struct {
	X float32
	Y float32
}

func NewCIEXY(x float32, y float32) CIEXY {
	return CIEXY{X: x, Y: y}
}

func (c CIEXY) Matches(other CIEXY) bool {
	return math32.Abs(c.X-other.X) <= matchTolerance && math32.Abs(c.Y-other.Y) <= matchTolerance
}

// Validate rejects chromaticities that cannot be lifted to XYZ. Negative
// coordinates are legal; the ACES AP0 blue primary has y < 0.
func (c CIEXY) Validate() error {
	if math32.IsNaN(c.X) || math32.IsNaN(c.Y) || math32.IsInf(c.X, 0) || math32.IsInf(c.Y, 0) {
		return fmt.Errorf("%w: non-finite (%v, %v)", ErrInvalidChromaticity, c.X, c.Y)
	}
	if c.Y == 0 {
		return fmt.Errorf("%w: y is zero (%v, %v)", ErrInvalidChromaticity, c.X, c.Y)
	}
	return nil
}

// XYZ lifts the chromaticity to XYZ with Y = 1.
func (c CIEXY) XYZ() (vecmath.Vec3, error) {
	if err := c.Validate(); err != nil {
		return vecmath.Vec3{}, err
	}
	invY := 1.0 / c.Y
	return vecmath.Vec3{c.X * invY, 1.0, (1.0 - c.X - c.Y) * invY}, nil
}

func (c CIEXY) xyz64() [3]float64 {
	x, y := float64(c.X), float64(c.Y)
	return [3]float64{x / y, 1.0, (1.0 - x - y) / y}
}

func (c CIEXY) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}
