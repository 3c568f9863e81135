package colour

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ErrInvalidHex = errors.New("invalid hex colour")

// RGBA implements color.Color. The stored values are gamma encoded with
// straight alpha, the same as color.NRGBA.
func (c EncodedSrgbaU8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.repr[0], G: c.repr[1], B: c.repr[2], A: c.repr[3]}.RGBA()
}

// RGBA implements color.Color as an opaque colour.
func (c EncodedSrgbU8) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.repr[0], G: c.repr[1], B: c.repr[2], A: 0xff}.RGBA()
}

// FromStdColor converts any color.Color into EncodedSrgbaU8, assuming, like
// the image package does, that it holds gamma encoded sRGB.
func FromStdColor(c color.Color) EncodedSrgbaU8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewEncodedSrgbaU8(n.R, n.G, n.B, n.A)
}

// Named looks up an SVG 1.1 colour keyword such as "cornflowerblue".
func Named(name string) (EncodedSrgbaU8, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return EncodedSrgbaU8{}, false
	}
	return NewEncodedSrgbaU8(c.R, c.G, c.B, c.A), true
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#' is
// optional. Missing alpha means opaque.
func ParseHex(s string) (EncodedSrgbaU8, error) {
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return EncodedSrgbaU8{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return EncodedSrgbaU8{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}
	return NewEncodedSrgbaU8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex formats c as "#rrggbbaa".
func (c EncodedSrgbaU8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.repr[0], c.repr[1], c.repr[2], c.repr[3])
}

// Hex formats c as "#rrggbb".
func (c EncodedSrgbU8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.repr[0], c.repr[1], c.repr[2])
}
