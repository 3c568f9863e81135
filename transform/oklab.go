package transform

import (
	"github.com/chewxy/math32"
	"github.com/kpfaulkner/colour-go/vecmath"
)

// Oklab is defined on D65 XYZ. Inputs relative to another white are adapted
// first.
var (
	oklabM1 = vecmath.Mat3F64{
		0.8189330101, 0.3618667424, -0.1288597137,
		0.0329845436, 0.9293118715, 0.0361456387,
		0.0482003018, 0.2643662691, 0.6338517070,
	}
	oklabM2 = vecmath.Mat3F64{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	}

	xyzToLMS   = oklabM1.F32()
	lmsToXYZ   = mustInverse(oklabM1).F32()
	lmsToOklab = oklabM2.F32()
	oklabToLMS = mustInverse(oklabM2).F32()
)

// XYZToOklab converts XYZ relative to wp into Oklab.
func XYZToOklab(xyz vecmath.Vec3, wp WhitePoint) vecmath.Vec3 {
	xyz = toD65(xyz, wp)
	lms := xyzToLMS.MulVec(xyz)
	return lmsToOklab.MulVec(lms.Map(vecmath.SignedCbrt))
}

// OklabToXYZ converts Oklab into XYZ relative to wp.
func OklabToXYZ(lab vecmath.Vec3, wp WhitePoint) vecmath.Vec3 {
	lms := oklabToLMS.MulVec(lab)
	lms = lms.Mul(lms).Mul(lms)
	return fromD65(lmsToXYZ.MulVec(lms), wp)
}

func toD65(xyz vecmath.Vec3, wp WhitePoint) vecmath.Vec3 {
	if wp.Matches(WhitePointD65) {
		return xyz
	}
	m, err := AdaptWhitePoint(WhitePointD65, wp)
	if err != nil {
		return vecmath.Splat3(math32.NaN())
	}
	return m.MulVec(xyz)
}

func fromD65(xyz vecmath.Vec3, wp WhitePoint) vecmath.Vec3 {
	if wp.Matches(WhitePointD65) {
		return xyz
	}
	m, err := AdaptWhitePoint(wp, WhitePointD65)
	if err != nil {
		return vecmath.Splat3(math32.NaN())
	}
	return m.MulVec(xyz)
}
