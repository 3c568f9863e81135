package vecmath

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
)

var ErrSingularMatrix = errors.New("matrix is singular")

// Mat3 is a 3x3 matrix in row major order, laid out like f32.Mat3.
type Mat3 f32.Mat3

func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal3 builds a matrix with d on the diagonal and zero elsewhere.
func Diagonal3(d Vec3) Mat3 {
	return Mat3{
		d[0], 0, 0,
		0, d[1], 0,
		0, 0, d[2],
	}
}

// FromColumns builds a matrix whose columns are a, b and c.
func FromColumns(a Vec3, b Vec3, c Vec3) Mat3 {
	return Mat3{
		a[0], b[0], c[0],
		a[1], b[1], c[1],
		a[2], b[2], c[2],
	}
}

func (m Mat3) At(row int, col int) float32 {
	return m[row*3+col]
}

func (m Mat3) Row(row int) Vec3 {
	return Vec3{m[row*3], m[row*3+1], m[row*3+2]}
}

// MulVec computes m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Mul computes m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var res Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			res[r*3+c] = m[r*3]*o[c] + m[r*3+1]*o[3+c] + m[r*3+2]*o[6+c]
		}
	}
	return res
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3) Determinant() float32 {
	return float32(m.toF64().determinant())
}

// Inverse returns the inverse of m. The cofactors are accumulated in float64 so
// that round trips through a matrix and its inverse stay within float32 noise.
func (m Mat3) Inverse() (Mat3, error) {
	inv, err := m.toF64().inverse()
	if err != nil {
		return Mat3{}, err
	}
	return inv.toF32(), nil
}

// MustInverse is Inverse for matrices known to be invertible, such as the
// built in colour space tables.
func (m Mat3) MustInverse() Mat3 {
	inv, err := m.Inverse()
	if err != nil {
		panic(fmt.Sprintf("vecmath: %v: %v", err, m))
	}
	return inv
}

// ApproxEqual reports whether every element of m and o differ by at most eps.
func (m Mat3) ApproxEqual(o Mat3, eps float32) bool {
	for i := range m {
		d := m[i] - o[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

func (m Mat3) String() string {
	return fmt.Sprintf("[%v %v %v]", m.Row(0), m.Row(1), m.Row(2))
}

// Mat3F64 is the float64 working form used while building conversion matrices.
type Mat3F64 [9]float64

func (m Mat3) toF64() Mat3F64 {
	var res Mat3F64
	for i, v := range m {
		res[i] = float64(v)
	}
	return res
}

// F64 widens m to float64.
func (m Mat3) F64() Mat3F64 {
	return m.toF64()
}

func (m Mat3F64) toF32() Mat3 {
	var res Mat3
	for i, v := range m {
		res[i] = float32(v)
	}
	return res
}

// F32 narrows m to a float32 Mat3.
func (m Mat3F64) F32() Mat3 {
	return m.toF32()
}

func (m Mat3F64) determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

func (m Mat3F64) inverse() (Mat3F64, error) {
	a := +(m[4]*m[8] - m[5]*m[7])
	b := -(m[3]*m[8] - m[5]*m[6])
	c := +(m[3]*m[7] - m[4]*m[6])
	d := -(m[1]*m[8] - m[2]*m[7])
	e := +(m[0]*m[8] - m[2]*m[6])
	f := -(m[0]*m[7] - m[1]*m[6])
	g := +(m[1]*m[5] - m[2]*m[4])
	h := -(m[0]*m[5] - m[2]*m[3])
	i := +(m[0]*m[4] - m[1]*m[3])

	det := m[0]*a + m[1]*b + m[2]*c
	if det == 0 || det != det {
		return Mat3F64{}, ErrSingularMatrix
	}
	return Mat3F64{
		a / det, d / det, g / det,
		b / det, e / det, h / det,
		c / det, f / det, i / det,
	}, nil
}

// Inverse returns the inverse of m.
func (m Mat3F64) Inverse() (Mat3F64, error) {
	return m.inverse()
}

// Mul computes m * o.
func (m Mat3F64) Mul(o Mat3F64) Mat3F64 {
	var res Mat3F64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			res[r*3+c] = m[r*3]*o[c] + m[r*3+1]*o[3+c] + m[r*3+2]*o[6+c]
		}
	}
	return res
}

// MulVec computes m * v.
func (m Mat3F64) MulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

func IdentityF64() Mat3F64 {
	return Mat3F64{1, 0, 0, 0, 1, 0, 0, 0, 1}
}
