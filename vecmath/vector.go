package vecmath

import (
	"fmt"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Vec3 is a three lane float32 vector. It shares its memory layout with f32.Vec3
// so the two convert freely.
type Vec3 f32.Vec3

// Vec4 is a four lane float32 vector, laid out like f32.Vec4.
type Vec4 f32.Vec4

func NewVec3(x float32, y float32, z float32) Vec3 {
	return Vec3{x, y, z}
}

func NewVec4(x float32, y float32, z float32, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func Splat3(v float32) Vec3 {
	return Vec3{v, v, v}
}

func Splat4(v float32) Vec4 {
	return Vec4{v, v, v, v}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Mul multiplies element-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// Div divides element-wise. Division by zero follows IEEE-754.
func (v Vec3) Div(o Vec3) Vec3 {
	return Vec3{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) DivScalar(s float32) Vec3 {
	return Vec3{v[0] / s, v[1] / s, v[2] / s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Powf raises each lane to e. Negative lanes produce NaN, same as math32.Pow.
func (v Vec3) Powf(e float32) Vec3 {
	return Vec3{math32.Pow(v[0], e), math32.Pow(v[1], e), math32.Pow(v[2], e)}
}

// Map applies fn to every lane.
func (v Vec3) Map(fn func(float32) float32) Vec3 {
	return Vec3{fn(v[0]), fn(v[1]), fn(v[2])}
}

func (v Vec3) Clamp(lo float32, hi float32) Vec3 {
	return Vec3{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi), Clamp(v[2], lo, hi)}
}

func (v Vec3) Min(o Vec3) Vec3 {
	return Vec3{min(v[0], o[0]), min(v[1], o[1]), min(v[2], o[2])}
}

func (v Vec3) Max(o Vec3) Vec3 {
	return Vec3{max(v[0], o[0]), max(v[1], o[1]), max(v[2], o[2])}
}

// CmpLE returns a lane mask that is true where v <= o.
func (v Vec3) CmpLE(o Vec3) [3]bool {
	return [3]bool{v[0] <= o[0], v[1] <= o[1], v[2] <= o[2]}
}

// Select3 picks lanes from ifTrue where mask is set and from ifFalse elsewhere.
func Select3(mask [3]bool, ifTrue Vec3, ifFalse Vec3) Vec3 {
	var res Vec3
	for i := range res {
		res[i] = ifFalse[i]
		if mask[i] {
			res[i] = ifTrue[i]
		}
	}
	return res
}

func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{v[0], v[1], v[2], w}
}

func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

func (v Vec4) X() float32 { return v[0] }
func (v Vec4) Y() float32 { return v[1] }
func (v Vec4) Z() float32 { return v[2] }
func (v Vec4) W() float32 { return v[3] }

// XYZ truncates to the first three lanes.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (v Vec4) DivScalar(s float32) Vec4 {
	return Vec4{v[0] / s, v[1] / s, v[2] / s, v[3] / s}
}

func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], -v[3]}
}

func (v Vec4) Clamp(lo float32, hi float32) Vec4 {
	return Vec4{Clamp(v[0], lo, hi), Clamp(v[1], lo, hi), Clamp(v[2], lo, hi), Clamp(v[3], lo, hi)}
}

func (v Vec4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v[0], v[1], v[2], v[3])
}
