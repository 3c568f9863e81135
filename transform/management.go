package transform

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/vecmath"
)

var (
	bradford = vecmath.Mat3F64{
		0.8951, 0.2664, -0.1614,
		-0.7502, 1.7135, 0.0367,
		0.0389, -0.0685, 1.0296,
	}

	bradfordInverse = mustInverse(bradford)
)

func mustInverse(m vecmath.Mat3F64) vecmath.Mat3F64 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// ConversionMatrix builds the linear map taking RGB values in the current
// (primaries, white point) space to the target space. When the white points
// differ a Bradford adaptation is folded into the same matrix.
func ConversionMatrix(targetPrim Primaries, targetWP WhitePoint, currentPrim Primaries, currentWP WhitePoint) (vecmath.Mat3, error) {
	m, err := conversionMatrix64(targetPrim, targetWP, currentPrim, currentWP)
	if err != nil {
		return vecmath.Mat3{}, err
	}
	return m.F32(), nil
}

func conversionMatrix64(targetPrim Primaries, targetWP WhitePoint, currentPrim Primaries, currentWP WhitePoint) (vecmath.Mat3F64, error) {
	if targetPrim.Matches(currentPrim) && targetWP.Matches(currentWP) {
		return vecmath.IdentityF64(), nil
	}

	forward, err := primariesToXYZ(currentPrim, currentWP)
	if err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("current space: %w", err)
	}

	t, err := primariesToXYZ(targetPrim, targetWP)
	if err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("target space: %w", err)
	}
	reverse, err := t.Inverse()
	if err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("target space %v: %w", targetPrim, err)
	}

	if !targetWP.Matches(currentWP) {
		whitePointConv, err := adaptWhitePoint(targetWP, currentWP)
		if err != nil {
			return vecmath.Mat3F64{}, err
		}
		forward = whitePointConv.Mul(forward)
	}
	return reverse.Mul(forward), nil
}

// PrimariesToXYZ builds the matrix taking linear RGB in (primaries, wp) to XYZ
// relative to the same white point.
func PrimariesToXYZ(primaries Primaries, wp WhitePoint) (vecmath.Mat3, error) {
	m, err := primariesToXYZ(primaries, wp)
	if err != nil {
		return vecmath.Mat3{}, err
	}
	return m.F32(), nil
}

func primariesToXYZ(primaries Primaries, wp WhitePoint) (vecmath.Mat3F64, error) {
	if err := wp.Validate(); err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("white point %v: %w", wp, err)
	}
	if primaries.IsXYZ() {
		return vecmath.IdentityF64(), nil
	}
	if err := primaries.Validate(); err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("primaries %v: %w", primaries, err)
	}

	r := primaries.Red.xyz64()
	g := primaries.Green.xyz64()
	b := primaries.Blue.xyz64()
	primariesMatrix := vecmath.Mat3F64{
		r[0], g[0], b[0],
		r[1], g[1], b[1],
		r[2], g[2], b[2],
	}
	inversePrimaries, err := primariesMatrix.Inverse()
	if err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("primaries %v: %w", primaries, err)
	}
	s := inversePrimaries.MulVec(wp.xyz64())
	scale := vecmath.Mat3F64{
		s[0], 0, 0,
		0, s[1], 0,
		0, 0, s[2],
	}
	return primariesMatrix.Mul(scale), nil
}

// AdaptWhitePoint returns the Bradford chromatic adaptation matrix taking XYZ
// relative to currentWP to XYZ relative to targetWP.
func AdaptWhitePoint(targetWP WhitePoint, currentWP WhitePoint) (vecmath.Mat3, error) {
	m, err := adaptWhitePoint(targetWP, currentWP)
	if err != nil {
		return vecmath.Mat3{}, err
	}
	return m.F32(), nil
}

func adaptWhitePoint(targetWP WhitePoint, currentWP WhitePoint) (vecmath.Mat3F64, error) {
	if err := targetWP.Validate(); err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("target white point: %w", err)
	}
	if err := currentWP.Validate(); err != nil {
		return vecmath.Mat3F64{}, fmt.Errorf("current white point: %w", err)
	}
	wTarget := bradford.MulVec(targetWP.xyz64())
	wCurrent := bradford.MulVec(currentWP.xyz64())
	for _, v := range wCurrent {
		if v == 0 {
			return vecmath.Mat3F64{}, fmt.Errorf("current white point %v: %w", currentWP, ErrInvalidChromaticity)
		}
	}
	ratio := vecmath.Mat3F64{
		wTarget[0] / wCurrent[0], 0, 0,
		0, wTarget[1] / wCurrent[1], 0,
		0, 0, wTarget[2] / wCurrent[2],
	}
	return bradfordInverse.Mul(ratio).Mul(bradford), nil
}
