package colour

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpfaulkner/colour-go/testcommon"
	"github.com/kpfaulkner/colour-go/vecmath"
)

func TestMixedSourcesArithmetic(t *testing.T) {
	a := Convert[LinearSrgb](SrgbU8(102, 54, 220))
	b := Convert[LinearSrgb](SrgbF32(0.5, 0.8, 0.1))

	res := Convert[EncodedSrgbU8](Add(Scale(a, 0.5), b))
	assert.Equal(t, SrgbU8(144, 207, 163), res)
}

func TestWorkingArithmetic(t *testing.T) {
	a := NewLinearSrgba(0.2, 0.4, 0.6, 0.8)
	b := NewLinearSrgba(0.1, 0.1, 0.1, 0.1)

	for _, tc := range []struct {
		name     string
		got      LinearSrgba
		expected vecmath.Vec4
	}{
		{name: "add", got: Add(a, b), expected: vecmath.NewVec4(0.3, 0.5, 0.7, 0.9)},
		{name: "sub", got: Sub(a, b), expected: vecmath.NewVec4(0.1, 0.3, 0.5, 0.7)},
		{name: "neg", got: Neg(a), expected: vecmath.NewVec4(-0.2, -0.4, -0.6, -0.8)},
		{name: "scale", got: Scale(a, 2), expected: vecmath.NewVec4(0.4, 0.8, 1.2, 1.6)},
		{name: "div scalar", got: DivScalar(a, 2), expected: vecmath.NewVec4(0.1, 0.2, 0.3, 0.4)},
		{name: "mul vec", got: MulVec(a, vecmath.NewVec3(2, 0, 1)), expected: vecmath.NewVec4(0.4, 0, 0.6, 0.8)},
		{name: "div vec", got: DivVec(a, vecmath.NewVec3(2, 4, 6)), expected: vecmath.NewVec4(0.1, 0.1, 0.1, 0.8)},
		{name: "lerp", got: Lerp(a, b, 0.5), expected: vecmath.NewVec4(0.15, 0.25, 0.35, 0.45)},
		{name: "saturate", got: Saturate(Scale(a, 2)), expected: vecmath.NewVec4(0.4, 0.8, 1, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			testcommon.AssertVec4InDelta(t, tc.expected, tc.got.Lanes(), 1e-6)
		})
	}
}

func TestThreeLaneArithmeticKeepsUnusedLaneZero(t *testing.T) {
	a := NewLinearSrgb(0.2, 0.4, 0.6)
	res := DivScalar(Add(Scale(a, 3), NewLinearSrgb(1, 1, 1)), 2)
	assert.Equal(t, float32(0), res.Lanes()[3])
	testcommon.AssertVec3InDelta(t, vecmath.NewVec3(0.8, 1.1, 1.4), res.Raw(), 1e-6)

	wide := Add(NewLinearAcesCg(1, 2, 3), NewLinearAcesCg(1, 1, 1))
	assert.Equal(t, vecmath.NewVec3(2, 3, 4), wide.Raw())

	xyz := Lerp(NewCieXYZ(0, 0, 0), NewCieXYZ(1, 1, 1), 0.25)
	assert.Equal(t, vecmath.Splat3(0.25), xyz.Raw())
}

func TestLerpEndpoints(t *testing.T) {
	a := NewLinearSrgb(0.1, 0.9, 0.3)
	b := NewLinearSrgb(0.7, 0.2, 0.5)
	assert.Equal(t, a.Raw(), Lerp(a, b, 0).Raw())
	testcommon.AssertVec3InDelta(t, b.Raw(), Lerp(a, b, 1).Raw(), 1e-6)
}

func TestLinearLerpMidpoint(t *testing.T) {
	red := Convert[LinearSrgb](SrgbU8(255, 0, 0))
	blue := Convert[LinearSrgb](SrgbU8(0, 0, 255))
	assert.Equal(t, SrgbU8(188, 0, 188), Convert[EncodedSrgbU8](Lerp(red, blue, 0.5)))
}

func TestPerceptualBlendRedToBlue(t *testing.T) {
	red := Convert[Oklab](SrgbU8(255, 0, 0))
	blue := Convert[Oklab](SrgbU8(0, 0, 255))

	for _, tc := range []struct {
		name     string
		t        float32
		expected EncodedSrgbU8
	}{
		{name: "start", t: 0, expected: SrgbU8(255, 0, 0)},
		{name: "quarter", t: 0.25, expected: SrgbU8(198, 73, 109)},
		{name: "middle", t: 0.5, expected: SrgbU8(140, 83, 162)},
		{name: "three quarters", t: 0.75, expected: SrgbU8(81, 71, 210)},
		{name: "end", t: 1, expected: SrgbU8(0, 0, 255)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := Convert[EncodedSrgbU8](red.PerceptualBlend(blue, tc.t))
			testcommon.AssertVec4InDelta(t, tc.expected.Lanes(), res.Lanes(), 1)
		})
	}

	assert.Equal(t, red.PerceptualBlend(blue, 0.3).Raw(), PerceptualBlend(red, blue, 0.3).Raw())
}

func TestPerceptualBlendStaysBetweenEndpoints(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		from := NewOklab(rng.Float32(), rng.Float32()-0.5, rng.Float32()-0.5)
		to := NewOklab(rng.Float32(), rng.Float32()-0.5, rng.Float32()-0.5)
		f := rng.Float32()

		res := PerceptualBlend(from, to, f).Raw()
		for lane := 0; lane < 3; lane++ {
			lo := min(from.Raw()[lane], to.Raw()[lane])
			hi := max(from.Raw()[lane], to.Raw()[lane])
			assert.GreaterOrEqual(t, res[lane], lo-1e-6)
			assert.LessOrEqual(t, res[lane], hi+1e-6)
		}
	}
}

func TestOklabLightnessOrdering(t *testing.T) {
	black := Convert[Oklab](SrgbU8(0, 0, 0))
	grey := Convert[Oklab](SrgbU8(128, 128, 128))
	white := Convert[Oklab](SrgbU8(255, 255, 255))

	assert.InDelta(t, 0, black.Components().L, 1e-6)
	assert.InDelta(t, 1, white.Components().L, 1e-3)
	assert.Less(t, black.Components().L, grey.Components().L)
	assert.Less(t, grey.Components().L, white.Components().L)
	assert.InDelta(t, 0, grey.Components().A, 1e-3)
	assert.InDelta(t, 0, grey.Components().B, 1e-3)
}

func TestAdditionProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		c1 := NewLinearSrgba(rng.Float32()*4-2, rng.Float32()*4-2, rng.Float32()*4-2, rng.Float32())
		c2 := NewLinearSrgba(rng.Float32()*4-2, rng.Float32()*4-2, rng.Float32()*4-2, rng.Float32())

		assert.Equal(t, Add(c1, c2).Raw(), Add(c2, c1).Raw())
		testcommon.AssertVec4InDelta(t, c1.Raw(), Add(Sub(c1, c2), c2).Raw(), 1e-5)

		l1 := Convert[Oklab](Convert[LinearSrgb](c1))
		l2 := Convert[Oklab](Convert[LinearSrgb](c2))
		assert.Equal(t, Add(l1, l2).Raw(), Add(l2, l1).Raw())
		testcommon.AssertVec3InDelta(t, l1.Raw(), Add(Sub(l1, l2), l2).Raw(), 1e-5)
	}
}
