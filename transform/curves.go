package transform

import (
	"github.com/kpfaulkner/colour-go/vecmath"
)

// The transfer curves below are written over the full float32 range. Values
// outside [0, 1] are extended rather than clipped: the gamma curves mirror
// around zero and the piecewise curves keep their linear toe for negatives.

// SrgbEOTF decodes sRGB encoded values to linear light.
func SrgbEOTF(v vecmath.Vec3) vecmath.Vec3 {
	return v.Map(srgbToLinear)
}

// SrgbOETF encodes linear light with the sRGB curve.
func SrgbOETF(v vecmath.Vec3) vecmath.Vec3 {
	return v.Map(linearToSrgb)
}

func srgbToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return vecmath.SignedPow((s+0.055)/1.055, 2.4)
}

func linearToSrgb(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*vecmath.SignedPow(l, 1.0/2.4) - 0.055
}

const adobeGamma = 563.0 / 256.0

// AdobeRgbEOTF decodes Adobe RGB (1998) values, a pure 563/256 power curve.
func AdobeRgbEOTF(v vecmath.Vec3) vecmath.Vec3 {
	return v.Map(func(c float32) float32 { return vecmath.SignedPow(c, adobeGamma) })
}

func AdobeRgbOETF(v vecmath.Vec3) vecmath.Vec3 {
	return v.Map(func(c float32) float32 { return vecmath.SignedPow(c, 1.0/adobeGamma) })
}

const (
	proPhotoGamma = 1.8
	// linear threshold Et = 1/512 and its encoded image 16/512
	proPhotoLinearThreshold  = 1.0 / 512.0
	proPhotoEncodedThreshold = 16.0 / 512.0
)

// ProPhotoEOTF decodes ROMM RGB values.
func ProPhotoEOTF(v vecmath.Vec3) vecmath.Vec3 {
	lower := v.DivScalar(16.0)
	higher := v.Map(func(c float32) float32 { return vecmath.SignedPow(c, proPhotoGamma) })
	return vecmath.Select3(v.CmpLE(vecmath.Splat3(proPhotoEncodedThreshold)), lower, higher)
}

// ProPhotoOETF encodes linear light as ROMM RGB.
func ProPhotoOETF(v vecmath.Vec3) vecmath.Vec3 {
	lower := v.Scale(16.0)
	higher := v.Map(func(c float32) float32 { return vecmath.SignedPow(c, 1.0/proPhotoGamma) })
	return vecmath.Select3(v.CmpLE(vecmath.Splat3(proPhotoLinearThreshold)), lower, higher)
}

const (
	bt2020Alpha = 1.09929682680944
	bt2020Beta  = 0.018053968510807
)

// Bt2020OETF is the BT.2020 (BT.709 form) camera curve.
func Bt2020OETF(v vecmath.Vec3) vecmath.Vec3 {
	return v.Map(func(l float32) float32 {
		if l < bt2020Beta {
			return 4.5 * l
		}
		return bt2020Alpha*vecmath.SignedPow(l, 0.45) - (bt2020Alpha - 1)
	})
}

func Bt2020EOTF(v vecmath.Vec3) vecmath.Vec3 {
	return v.Map(func(e float32) float32 {
		if e < 4.5*bt2020Beta {
			return e / 4.5
		}
		return vecmath.SignedPow((e+(bt2020Alpha-1))/bt2020Alpha, 1.0/0.45)
	})
}
