package colour

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		name      string
		input     string
		expected  EncodedSrgbaU8
		expectErr bool
	}{
		{name: "rrggbb", input: "#ff8000", expected: SrgbaU8(255, 128, 0, 255)},
		{name: "rrggbbaa", input: "#11223344", expected: SrgbaU8(0x11, 0x22, 0x33, 0x44)},
		{name: "short", input: "#abc", expected: SrgbaU8(0xaa, 0xbb, 0xcc, 255)},
		{name: "no hash", input: "6495ed", expected: SrgbaU8(0x64, 0x95, 0xed, 255)},
		{name: "upper case", input: "#FFFFFF", expected: SrgbaU8(255, 255, 255, 255)},
		{name: "bad length", input: "#12345", expectErr: true},
		{name: "bad digit", input: "#gg0000", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res, err := ParseHex(tc.input)
			if err != nil && tc.expectErr {
				// got what we wanted..
				assert.True(t, errors.Is(err, ErrInvalidHex))
				return
			}
			if err == nil && tc.expectErr {
				t.Errorf("expected error but got none")
			}

			if err != nil && !tc.expectErr {
				t.Errorf("expected no error but got %v", err)
			}
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestHexFormatting(t *testing.T) {
	assert.Equal(t, "#ff800040", SrgbaU8(255, 128, 0, 64).Hex())
	assert.Equal(t, "#0a0b0c", SrgbU8(10, 11, 12).Hex())

	c, err := ParseHex(SrgbaU8(9, 8, 7, 6).Hex())
	assert.NoError(t, err)
	assert.Equal(t, SrgbaU8(9, 8, 7, 6), c)
}

func TestNamed(t *testing.T) {
	c, ok := Named("CornflowerBlue")
	assert.True(t, ok)
	assert.Equal(t, SrgbaU8(0x64, 0x95, 0xed, 0xff), c)

	_, ok = Named("not a colour")
	assert.False(t, ok)
}

func TestStdColorInterop(t *testing.T) {
	var _ color.Color = EncodedSrgbaU8{}
	var _ color.Color = EncodedSrgbU8{}

	c := SrgbaU8(200, 100, 50, 128)
	r, g, b, a := c.RGBA()
	er, eg, eb, ea := color.NRGBA{R: 200, G: 100, B: 50, A: 128}.RGBA()
	assert.Equal(t, []uint32{er, eg, eb, ea}, []uint32{r, g, b, a})

	assert.Equal(t, c, FromStdColor(color.NRGBA{R: 200, G: 100, B: 50, A: 128}))
	assert.Equal(t, SrgbaU8(255, 0, 0, 255), FromStdColor(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, SrgbaU8(0, 0, 0, 0), FromStdColor(color.Transparent))

	opaque := SrgbU8(1, 2, 3)
	_, _, _, oa := opaque.RGBA()
	assert.Equal(t, uint32(0xffff), oa)
	assert.Equal(t, SrgbaU8(1, 2, 3, 255), FromStdColor(opaque))
}
