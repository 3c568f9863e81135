package transform

import (
	"fmt"
	"strings"
)

// WhitePoint is a named reference white.
type WhitePoint struct {
	Name string
	CIEXY
}

func NewWhitePoint(x float32, y float32) WhitePoint {
	return WhitePoint{CIEXY: NewCIEXY(x, y)}
}

var (
	WhitePointD65  = WhitePoint{Name: "D65", CIEXY: CIEXY{0.3127, 0.3290}}
	WhitePointD50  = WhitePoint{Name: "D50", CIEXY: CIEXY{0.3457, 0.3585}}
	WhitePointACES = WhitePoint{Name: "ACES", CIEXY: CIEXY{0.32168, 0.33767}}
	WhitePointE    = WhitePoint{Name: "E", CIEXY: CIEXY{1.0 / 3.0, 1.0 / 3.0}}
	WhitePointDCI  = WhitePoint{Name: "DCI", CIEXY: CIEXY{0.314, 0.351}}

	standardWhitePoints = []WhitePoint{
		WhitePointD65,
		WhitePointD50,
		WhitePointACES,
		WhitePointE,
		WhitePointDCI,
	}
)

func (wp WhitePoint) Matches(other WhitePoint) bool {
	return wp.CIEXY.Matches(other.CIEXY)
}

// MatchWhitePoint returns the standard white point at (x, y), or an unnamed one.
func MatchWhitePoint(x float32, y float32) WhitePoint {
	wp := NewWhitePoint(x, y)
	for _, std := range standardWhitePoints {
		if std.Matches(wp) {
			return std
		}
	}
	return wp
}

// WhitePointByName finds a standard white point by name, ignoring case.
func WhitePointByName(name string) (WhitePoint, bool) {
	for _, std := range standardWhitePoints {
		if strings.EqualFold(std.Name, name) {
			return std, true
		}
	}
	return WhitePoint{}, false
}

func (wp WhitePoint) String() string {
	if wp.Name != "" {
		return wp.Name
	}
	return fmt.Sprintf("custom%v", wp.CIEXY)
}
