package colour

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/colour-go/vecmath"
)

func TestEncodingNames(t *testing.T) {
	names := EncodingNames()
	assert.Len(t, names, 21)
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "Oklab")
	assert.Contains(t, names, "EncodedSrgbaPremultipliedU8")

	layout, ok := EncodingLayout("EncodedSrgbaU8")
	require.True(t, ok)
	assert.Equal(t, LayoutU8x4, layout)

	_, ok = EncodingLayout("Hsv")
	assert.False(t, ok)
}

func TestConvertLanes(t *testing.T) {

	for _, tc := range []struct {
		name        string
		src         string
		dst         string
		lanes       vecmath.Vec4
		expected    vecmath.Vec4
		expectErr   bool
		expectedErr error
	}{
		{
			name:     "u8 red to linear",
			src:      "EncodedSrgbU8",
			dst:      "LinearSrgb",
			lanes:    vecmath.Vec4{255, 0, 0, 0},
			expected: vecmath.Vec4{1, 0, 0, 0},
		},
		{
			name:     "linear to u8 with alpha",
			src:      "LinearSrgba",
			dst:      "EncodedSrgbaU8",
			lanes:    vecmath.Vec4{0, 0, 1, 0.5},
			expected: vecmath.Vec4{0, 0, 255, 128},
		},
		{
			name:     "identity rounds and clamps u8 lanes",
			src:      "EncodedSrgbU8",
			dst:      "EncodedSrgbU8",
			lanes:    vecmath.Vec4{300, -5, 127.6, 9},
			expected: vecmath.Vec4{255, 0, 128, 0},
		},
		{
			name:     "identity keeps float lanes",
			src:      "LinearSrgb",
			dst:      "LinearSrgb",
			lanes:    vecmath.Vec4{-0.5, 2, 0.25, 7},
			expected: vecmath.Vec4{-0.5, 2, 0.25, 0},
		},
		{
			name:        "unknown source",
			src:         "Hsv",
			dst:         "LinearSrgb",
			expectErr:   true,
			expectedErr: ErrUnknownEncoding,
		},
		{
			name:        "unknown destination",
			src:         "LinearSrgb",
			dst:         "Hsl",
			expectErr:   true,
			expectedErr: ErrUnknownEncoding,
		},
		{
			name:        "undeclared pair",
			src:         "EncodedAdobeRgbU8",
			dst:         "Oklab",
			expectErr:   true,
			expectedErr: ErrNoConversion,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConvertLanes(tc.src, tc.dst, tc.lanes)
			if err != nil && tc.expectErr {
				// got what we wanted..
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			if err != nil && !tc.expectErr {
				t.Errorf("expected no error but got %v", err)
				return
			}

			if err == nil && tc.expectErr {
				t.Errorf("expected error but got none")
				return
			}

			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestConvertLanesMatchesConvert(t *testing.T) {
	c := SrgbU8(144, 207, 163)
	got, err := ConvertLanes(c.Name(), Oklab{}.Name(), c.Lanes())
	require.NoError(t, err)
	assert.Equal(t, Convert[Oklab](c).Lanes(), got)

	p3 := NewLinearDisplayP3(0.2, 0.9, 0.1)
	got, err = ConvertLanes(p3.Name(), LinearBt2020{}.Name(), p3.Lanes())
	require.NoError(t, err)
	assert.Equal(t, Convert[LinearBt2020](p3).Lanes(), got)
}

func TestEveryRelationConvertsLanes(t *testing.T) {
	for _, r := range Relations() {
		t.Run(r.String(), func(t *testing.T) {
			layout, ok := EncodingLayout(r.Source)
			require.True(t, ok)

			lanes := vecmath.Vec4{0.6, 0.3, 0.2, 1}
			if layout.Kind == LaneU8 {
				lanes = vecmath.Vec4{200, 100, 50, 255}
			}
			got, err := ConvertLanes(r.Source, r.Destination, lanes)
			require.NoError(t, err)
			assert.True(t, got.XYZ().IsFinite(), "got %v", got)
		})
	}
}

func TestLanesConverter(t *testing.T) {
	convert, err := LanesConverter("EncodedSrgbaU8", "LinearSrgbaPremultiplied")
	require.NoError(t, err)
	assert.Equal(t, Convert[LinearSrgbaPremultiplied](SrgbaU8(10, 20, 30, 40)).Lanes(), convert(vecmath.Vec4{10, 20, 30, 40}))

	_, err = LanesConverter("CieXYZ", "EncodedSrgbU8")
	assert.ErrorIs(t, err, ErrNoConversion)
}
