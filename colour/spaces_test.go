package colour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/colour-go/testcommon"
	"github.com/kpfaulkner/colour-go/vecmath"
)

func TestSpaceMatricesRoundTrip(t *testing.T) {
	for _, a := range Spaces() {
		for _, b := range Spaces() {
			t.Run(a.Name+" to "+b.Name, func(t *testing.T) {
				there, err := a.MatrixTo(b)
				require.NoError(t, err)
				back, err := b.MatrixTo(a)
				require.NoError(t, err)
				testcommon.AssertMat3InDelta(t, vecmath.Identity3(), back.Mul(there), 1e-4)
			})
		}
	}
}

func TestSpaceByName(t *testing.T) {
	s, ok := SpaceByName("ACEScg")
	assert.True(t, ok)
	assert.True(t, s.Matches(SpaceAcesCg))
	assert.False(t, s.Matches(SpaceAces2065))

	_, ok = SpaceByName("nope")
	assert.False(t, ok)
}

func TestSpacesIsACopy(t *testing.T) {
	list := Spaces()
	list[0].Name = "changed"
	assert.Equal(t, "sRGB", Spaces()[0].Name)
	assert.Len(t, list, 8)
}

func TestSpaceToXYZ(t *testing.T) {
	m, err := SpaceSrgb.ToXYZ()
	require.NoError(t, err)
	assert.InDelta(t, 0.2126, m.At(1, 0), 1e-4)
	assert.InDelta(t, 0.7152, m.At(1, 1), 1e-4)
	assert.InDelta(t, 0.0722, m.At(1, 2), 1e-4)

	id, err := SpaceCieXYZ.ToXYZ()
	require.NoError(t, err)
	assert.Equal(t, vecmath.Identity3(), id)
}

// Capabilities are checked by the compiler: these assignments fail to build if
// an encoding loses a capability it is expected to have.
var (
	_ WorkingEncoding[LinearSrgb]            = LinearSrgb{}
	_ WorkingEncoding[LinearSrgba]           = LinearSrgba{}
	_ WorkingEncoding[CieXYZ]                = CieXYZ{}
	_ WorkingEncoding[LinearAces2065]        = LinearAces2065{}
	_ SaturatingEncoding[LinearDisplayP3]    = LinearDisplayP3{}
	_ SaturatingEncoding[LinearBt2020]       = LinearBt2020{}
	_ PerceptualEncoding[Oklab]              = Oklab{}
	_ AlphaOver[LinearSrgbaPremultiplied]    = LinearSrgbaPremultiplied{}
	_ AlphaOver[EncodedSrgbaPremultipliedU8] = EncodedSrgbaPremultipliedU8{}
	_ AlphaOver[EncodedSrgbaF32]             = EncodedSrgbaF32{}
)
