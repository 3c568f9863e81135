package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/custom"
	"github.com/kpfaulkner/colour-go/options"
	"github.com/kpfaulkner/colour-go/testcommon"
	"github.com/kpfaulkner/colour-go/vecmath"
)

func TestParseValue(t *testing.T) {

	for _, tc := range []struct {
		name      string
		value     string
		layout    colour.Layout
		expected  vecmath.Vec4
		expectErr bool
	}{
		{
			name:     "hex without alpha",
			value:    "#336699",
			layout:   colour.LayoutU8x3,
			expected: vecmath.Vec4{0x33, 0x66, 0x99, 0},
		},
		{
			name:     "hex with alpha",
			value:    "#33669980",
			layout:   colour.LayoutU8x4,
			expected: vecmath.Vec4{0x33, 0x66, 0x99, 0x80},
		},
		{
			name:     "named colour",
			value:    "CornflowerBlue",
			layout:   colour.LayoutU8x4,
			expected: vecmath.Vec4{100, 149, 237, 255},
		},
		{
			name:     "u8 lanes",
			value:    "1, 2, 3",
			layout:   colour.LayoutU8x3,
			expected: vecmath.Vec4{1, 2, 3, 0},
		},
		{
			name:     "float lanes",
			value:    "0.5,-0.25,1.5,1",
			layout:   colour.LayoutF32x4,
			expected: vecmath.Vec4{0.5, -0.25, 1.5, 1},
		},
		{
			name:      "names are not float lanes",
			value:     "red",
			layout:    colour.LayoutF32x3,
			expectErr: true,
		},
		{
			name:      "too few lanes",
			value:     "0.5,0.5",
			layout:    colour.LayoutF32x3,
			expectErr: true,
		},
		{
			name:      "bad hex",
			value:     "#12345",
			layout:    colour.LayoutU8x3,
			expectErr: true,
		},
		{
			name:      "not a number",
			value:     "0.5,abc,1",
			layout:    colour.LayoutF32x3,
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lanes, err := parseValue(tc.value, tc.layout)
			if err != nil && tc.expectErr {
				// got what we wanted..
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

			assert.Equal(t, tc.expected, lanes)
		})
	}
}

func TestFormatLanes(t *testing.T) {
	assert.Equal(t, "EncodedSrgbU8(51, 102, 153) #336699",
		formatLanes("EncodedSrgbU8", colour.LayoutU8x3, vecmath.Vec4{51, 102, 153, 0}))
	assert.Equal(t, "EncodedSrgbaU8(51, 102, 153, 128) #33669980",
		formatLanes("EncodedSrgbaU8", colour.LayoutU8x4, vecmath.Vec4{51, 102, 153, 128}))
	assert.Equal(t, "LinearSrgb(0.5, -0.25, 2)",
		formatLanes("LinearSrgb", colour.LayoutF32x3, vecmath.Vec4{0.5, -0.25, 2, 0}))
}

func TestParseCustom(t *testing.T) {
	lin, err := parseCustom("1,1,1", custom.FromLinearSpace(colour.SpaceDisplayP3))
	require.NoError(t, err)
	testcommon.AssertVec3InDelta(t, vecmath.Vec3{1, 1, 1}, lin.Raw(), 1e-4)

	_, err = parseCustom("1,1", custom.Default())
	assert.ErrorIs(t, err, errLaneCount)
}

func TestLoadOptionsFlagsOverrideFile(t *testing.T) {
	opts, err := loadOptions("../../options/testdata/options.yaml", &options.ColourOptions{Target: "Oklab"})
	require.NoError(t, err)
	assert.Equal(t, "EncodedSrgbaU8", opts.Source)
	assert.Equal(t, "Oklab", opts.Target)
	assert.Equal(t, "debug", opts.LogLevel)

	opts, err = loadOptions("", &options.ColourOptions{Source: "LinearSrgb"})
	require.NoError(t, err)
	assert.Equal(t, "LinearSrgb", opts.Source)
	assert.Equal(t, "Oklab", opts.Target)
}
