// Package colour models colours as values tagged with their encoding, one Go
// type per encoding. Conversions go through the linear space of each encoding.
package colour

import (
	"github.com/kpfaulkner/colour-go/vecmath"
)

// Encoding is implemented by every colour type. A colour type is both the
// value (it wraps one raw representation) and the encoding tag: the zero value
// of E is used to reach the encoding's metadata and its FromLinear transform.
type Encoding[E any] interface {
	// Name identifies the encoding in relation lookups, logs and String output.
	Name() string
	Layout() Layout
	// Space is the linear colour space ToLinear produces and FromLinear consumes.
	Space() LinearSpace
	// ToLinear decodes the raw value to linear values in Space and a separate,
	// not premultiplied, alpha. Encodings without alpha return 1.
	ToLinear() (vecmath.Vec3, float32)
	// FromLinear encodes linear values in Space and a separate alpha. Encodings
	// without alpha ignore it.
	FromLinear(linear vecmath.Vec3, alpha float32) E
	// Lanes returns the raw lanes widened to float32. Unused lanes are zero.
	Lanes() vecmath.Vec4
}

// floatLanes is implemented by encodings whose raw representation is float32,
// giving the generic helpers direct access to the lanes.
type floatLanes[E any] interface {
	vec4() vecmath.Vec4
	withVec4(v vecmath.Vec4) E
}

// WorkingEncoding marks encodings where arithmetic on the stored values is
// meaningful: linear light or a perceptual space with float lanes. Gamma
// encoded and 8 bit encodings deliberately do not satisfy it.
type WorkingEncoding[E any] interface {
	Encoding[E]
	floatLanes[E]
	working()
}

// SaturatingEncoding is a working encoding whose lanes have a natural [0, 1]
// range that Saturate can clamp to.
type SaturatingEncoding[E any] interface {
	WorkingEncoding[E]
	saturating()
}

// PerceptualEncoding marks working encodings designed to be perceptually
// uniform, where interpolation tends to look even.
type PerceptualEncoding[E any] interface {
	WorkingEncoding[E]
	perceptual()
}

// AlphaOver is implemented by encodings that support "over" compositing.
type AlphaOver[E any] interface {
	Encoding[E]
	composite(under E) E
}

// noCompare makes float backed colour types incomparable, so == and map keys
// are compile errors. Use ApproxEqual instead.
type noCompare [0]func()
