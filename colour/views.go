package colour

import "fmt"

// Lane is the element type of a raw representation.
type Lane interface {
	~uint8 | ~float32
}

// RGB is a named view of a three lane RGB representation. Views are copies;
// changing one does not change the colour it came from.
type RGB[T Lane] struct {
	R T
	G T
	B T
}

type RGBA[T Lane] struct {
	R T
	G T
	B T
	A T
}

type Lab[T Lane] struct {
	L T
	A T
	B T
}

type XYZ[T Lane] struct {
	X T
	Y T
	Z T
}

// The views share element count, lane type and order with their raw
// representation, which is what makes these conversions lossless.

func rgbView[T Lane](r [3]T) RGB[T] {
	return RGB[T]{R: r[0], G: r[1], B: r[2]}
}

func rgbaView[T Lane](r [4]T) RGBA[T] {
	return RGBA[T]{R: r[0], G: r[1], B: r[2], A: r[3]}
}

func (v RGB[T]) String() string {
	return fmt.Sprintf("R: %v, G: %v, B: %v", v.R, v.G, v.B)
}

func (v RGBA[T]) String() string {
	return fmt.Sprintf("R: %v, G: %v, B: %v, A: %v", v.R, v.G, v.B, v.A)
}

func (v Lab[T]) String() string {
	return fmt.Sprintf("L: %v, a: %v, b: %v", v.L, v.A, v.B)
}

func (v XYZ[T]) String() string {
	return fmt.Sprintf("X: %v, Y: %v, Z: %v", v.X, v.Y, v.Z)
}
