package colour

import (
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/vecmath"
)

// This file is the complete list of encodings and of the conversions Convert
// accepts. Adding an encoding means registering it and adding its pairs here.

func init() {
	registerEncodings()

	declareToSrgbFamily[EncodedSrgbU8]()
	declareToSrgbFamily[EncodedSrgbF32]()
	declareToSrgbFamily[EncodedSrgbaU8]()
	declareToSrgbFamily[EncodedSrgbaF32]()
	declareToSrgbFamily[EncodedSrgbaPremultipliedU8]()
	declareToSrgbFamily[LinearSrgb]()
	declareToSrgbFamily[LinearSrgba]()
	declareToSrgbFamily[LinearSrgbaPremultiplied]()

	// Oklab to sRGB does no gamut mapping; out of gamut results are only
	// clamped per channel when quantised to 8 bits.
	declareToSrgbFamily[Oklab]()
	declare[EncodedSrgbU8, Oklab]()
	declare[EncodedSrgbF32, Oklab]()
	declare[EncodedSrgbaU8, Oklab]()
	declare[EncodedSrgbaF32, Oklab]()
	declare[EncodedSrgbaPremultipliedU8, Oklab]()
	declare[LinearSrgb, Oklab]()
	declare[LinearSrgba, Oklab]()
	declare[LinearSrgbaPremultiplied, Oklab]()
	declarePair[CieXYZ, Oklab]()

	declarePair[LinearSrgb, LinearAdobeRgb]()
	declarePair[LinearSrgb, LinearProPhotoRgb]()
	declarePair[LinearSrgb, LinearDisplayP3]()
	declarePair[LinearSrgb, LinearAcesCg]()
	declarePair[LinearSrgb, LinearAces2065]()
	declarePair[LinearSrgb, LinearBt2020]()
	declarePair[LinearSrgb, CieXYZ]()

	declarePair[EncodedAdobeRgbU8, LinearAdobeRgb]()
	declarePair[EncodedProPhotoRgbU8, LinearProPhotoRgb]()
	declarePair[EncodedDisplayP3U8, LinearDisplayP3]()
	declarePair[EncodedDisplayP3F32, LinearDisplayP3]()
	declarePair[EncodedDisplayP3U8, EncodedDisplayP3F32]()
	declarePair[EncodedBt2020F32, LinearBt2020]()

	declarePair[LinearAcesCg, LinearAces2065]()
	declarePair[LinearDisplayP3, LinearBt2020]()

	log.Debugf("colour: %d encodings, %d conversions declared", len(encodings), len(relations))
}

func registerEncodings() {
	register(func(v vecmath.Vec4) EncodedSrgbU8 { return EncodedSrgbU8{repr: u8x3FromLanes(v)} })
	register(func(v vecmath.Vec4) EncodedSrgbF32 { return EncodedSrgbF32{repr: v.XYZ()} })
	register(func(v vecmath.Vec4) EncodedSrgbaU8 { return EncodedSrgbaU8{repr: u8x4FromLanes(v)} })
	register(func(v vecmath.Vec4) EncodedSrgbaF32 { return EncodedSrgbaF32{repr: v} })
	register(func(v vecmath.Vec4) EncodedSrgbaPremultipliedU8 {
		return EncodedSrgbaPremultipliedU8{repr: u8x4FromLanes(v)}
	})
	register(LinearSrgb{}.withVec4)
	register(LinearSrgba{}.withVec4)
	register(func(v vecmath.Vec4) LinearSrgbaPremultiplied { return LinearSrgbaPremultiplied{repr: v} })
	register(Oklab{}.withVec4)

	register(LinearAdobeRgb{}.withVec4)
	register(func(v vecmath.Vec4) EncodedAdobeRgbU8 { return EncodedAdobeRgbU8{encodedRGB8{repr: u8x3FromLanes(v)}} })
	register(LinearProPhotoRgb{}.withVec4)
	register(func(v vecmath.Vec4) EncodedProPhotoRgbU8 {
		return EncodedProPhotoRgbU8{encodedRGB8{repr: u8x3FromLanes(v)}}
	})
	register(LinearDisplayP3{}.withVec4)
	register(func(v vecmath.Vec4) EncodedDisplayP3U8 { return EncodedDisplayP3U8{encodedRGB8{repr: u8x3FromLanes(v)}} })
	register(func(v vecmath.Vec4) EncodedDisplayP3F32 { return EncodedDisplayP3F32{repr: v.XYZ()} })
	register(LinearAcesCg{}.withVec4)
	register(LinearAces2065{}.withVec4)
	register(LinearBt2020{}.withVec4)
	register(func(v vecmath.Vec4) EncodedBt2020F32 { return EncodedBt2020F32{repr: v.XYZ()} })
	register(CieXYZ{}.withVec4)
}

// declareToSrgbFamily declares S -> every encoding of the sRGB family.
func declareToSrgbFamily[S Encoding[S]]() {
	declare[S, EncodedSrgbU8]()
	declare[S, EncodedSrgbF32]()
	declare[S, EncodedSrgbaU8]()
	declare[S, EncodedSrgbaF32]()
	declare[S, EncodedSrgbaPremultipliedU8]()
	declare[S, LinearSrgb]()
	declare[S, LinearSrgba]()
	declare[S, LinearSrgbaPremultiplied]()
}
