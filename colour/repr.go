package colour

import (
	"fmt"

	"github.com/kpfaulkner/colour-go/vecmath"
)

// U8x3 and U8x4 hold 8 bit unsigned normalised lanes, 0 maps to 0.0 and 255
// to 1.0. F32x3 and F32x4 are unconstrained float lanes.
type (
	U8x3  [3]uint8
	U8x4  [4]uint8
	F32x3 = vecmath.Vec3
	F32x4 = vecmath.Vec4
)

type LaneKind uint8

const (
	LaneU8 LaneKind = iota
	LaneF32
)

func (k LaneKind) String() string {
	switch k {
	case LaneU8:
		return "u8"
	case LaneF32:
		return "f32"
	}
	return fmt.Sprintf("LaneKind(%d)", uint8(k))
}

// Layout describes a raw representation: how many lanes and of which kind.
type Layout struct {
	Lanes int
	Kind  LaneKind
}

var (
	LayoutU8x3  = Layout{Lanes: 3, Kind: LaneU8}
	LayoutU8x4  = Layout{Lanes: 4, Kind: LaneU8}
	LayoutF32x3 = Layout{Lanes: 3, Kind: LaneF32}
	LayoutF32x4 = Layout{Lanes: 4, Kind: LaneF32}
)

func (l Layout) HasAlpha() bool {
	return l.Lanes == 4
}

func (l Layout) String() string {
	return fmt.Sprintf("%sx%d", l.Kind, l.Lanes)
}

func u8ToF32(x uint8) float32 {
	return float32(x) / 255.0
}

// f32ToU8 clamps to [0, 1] before rounding, so it never wraps. NaN maps to 0.
func f32ToU8(x float32) uint8 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255.0 + 0.5)
}

func (r U8x3) unorm() vecmath.Vec3 {
	return vecmath.Vec3{u8ToF32(r[0]), u8ToF32(r[1]), u8ToF32(r[2])}
}

func (r U8x4) unorm() (vecmath.Vec3, float32) {
	return vecmath.Vec3{u8ToF32(r[0]), u8ToF32(r[1]), u8ToF32(r[2])}, u8ToF32(r[3])
}

func (r U8x3) lanes() vecmath.Vec4 {
	return vecmath.Vec4{float32(r[0]), float32(r[1]), float32(r[2]), 0}
}

func (r U8x4) lanes() vecmath.Vec4 {
	return vecmath.Vec4{float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3])}
}

func quantise3(v vecmath.Vec3) U8x3 {
	return U8x3{f32ToU8(v[0]), f32ToU8(v[1]), f32ToU8(v[2])}
}

func quantise4(v vecmath.Vec3, alpha float32) U8x4 {
	return U8x4{f32ToU8(v[0]), f32ToU8(v[1]), f32ToU8(v[2]), f32ToU8(alpha)}
}
