package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kpfaulkner/colour-go/colour"
	"github.com/kpfaulkner/colour-go/custom"
	"github.com/kpfaulkner/colour-go/vecmath"
)

var errLaneCount = errors.New("wrong number of lanes")

// parseValue reads a colour given as hex, as a colour name or as comma
// separated lanes. Hex and names are only accepted for 8 bit sources.
func parseValue(s string, layout colour.Layout) (vecmath.Vec4, error) {
	s = strings.TrimSpace(s)
	if layout.Kind == colour.LaneU8 {
		if c, ok := colour.Named(s); ok {
			return u8Lanes(c, layout), nil
		}
		if strings.HasPrefix(s, "#") {
			c, err := colour.ParseHex(s)
			if err != nil {
				return vecmath.Vec4{}, err
			}
			return u8Lanes(c, layout), nil
		}
	}
	return parseLanes(s, layout.Lanes)
}

// u8Lanes drops the alpha of a parsed colour when the source has none.
func u8Lanes(c colour.EncodedSrgbaU8, layout colour.Layout) vecmath.Vec4 {
	lanes := c.Lanes()
	if !layout.HasAlpha() {
		lanes[3] = 0
	}
	return lanes
}

func parseLanes(s string, count int) (vecmath.Vec4, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) != count {
		return vecmath.Vec4{}, fmt.Errorf("%q: expected %d values, got %d: %w", s, count, len(fields), errLaneCount)
	}

	var lanes vecmath.Vec4
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return vecmath.Vec4{}, fmt.Errorf("lane %d: %w", i, err)
		}
		lanes[i] = float32(v)
	}
	return lanes, nil
}

// parseCustom reads three linear lanes in space and moves them to linear sRGB.
func parseCustom(s string, space custom.CustomColorSpace) (colour.LinearSrgb, error) {
	lanes, err := parseLanes(s, 3)
	if err != nil {
		return colour.LinearSrgb{}, err
	}
	return custom.FromCustom(space, lanes[0], lanes[1], lanes[2]), nil
}

func formatLanes(name string, layout colour.Layout, lanes vecmath.Vec4) string {
	parts := make([]string, layout.Lanes)
	for i := range parts {
		if layout.Kind == colour.LaneU8 {
			parts[i] = strconv.Itoa(int(lanes[i]))
		} else {
			parts[i] = strconv.FormatFloat(float64(lanes[i]), 'g', 6, 32)
		}
	}
	out := fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))

	switch name {
	case colour.EncodedSrgbU8{}.Name(), colour.EncodedSrgbaU8{}.Name():
		c := colour.NewEncodedSrgbaU8(uint8(lanes[0]), uint8(lanes[1]), uint8(lanes[2]), uint8(lanes[3]))
		hex := c.Hex()
		if !layout.HasAlpha() {
			hex = hex[:7]
		}
		out += " " + hex
	}
	return out
}
