package colour

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/vecmath"
)

var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrNoConversion    = errors.New("no conversion declared")
)

// encodingEntry lets encodings be addressed by name when the types are only
// known at runtime, e.g. from command line flags.
type encodingEntry struct {
	layout Layout
	// build is a func(vecmath.Vec4) E.
	build any
	// normalise rebuilds the colour from lanes and returns its lanes, so u8
	// encodings round and clamp their input.
	normalise func(vecmath.Vec4) vecmath.Vec4
}

var encodings = map[string]encodingEntry{}

// register makes E reachable by name. build constructs a colour from lanes in
// the form Lanes returns them.
func register[E Encoding[E]](build func(vecmath.Vec4) E) {
	var e E
	encodings[e.Name()] = encodingEntry{
		layout: e.Layout(),
		build:  build,
		normalise: func(v vecmath.Vec4) vecmath.Vec4 {
			return build(v).Lanes()
		},
	}
}

func fromLanes[E Encoding[E]](v vecmath.Vec4) E {
	var e E
	entry, ok := encodings[e.Name()]
	if !ok {
		log.Panicf("colour: encoding %s is not registered", e.Name())
	}
	return entry.build.(func(vecmath.Vec4) E)(v)
}

// laneU8 rounds a lane in [0, 255] to a byte, clamping out of range values.
func laneU8(x float32) uint8 {
	return f32ToU8(x / 255.0)
}

func u8x3FromLanes(v vecmath.Vec4) U8x3 {
	return U8x3{laneU8(v[0]), laneU8(v[1]), laneU8(v[2])}
}

func u8x4FromLanes(v vecmath.Vec4) U8x4 {
	return U8x4{laneU8(v[0]), laneU8(v[1]), laneU8(v[2]), laneU8(v[3])}
}

// EncodingNames lists every encoding reachable by name, sorted.
func EncodingNames() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EncodingLayout returns the raw layout of the named encoding.
func EncodingLayout(name string) (Layout, bool) {
	entry, ok := encodings[name]
	return entry.layout, ok
}

// LanesConverter returns the conversion from src to dst on raw lanes, for
// converting many values without repeating the lookup.
func LanesConverter(src string, dst string) (func(vecmath.Vec4) vecmath.Vec4, error) {
	entry, ok := encodings[src]
	if !ok {
		return nil, fmt.Errorf("%q: %w", src, ErrUnknownEncoding)
	}
	if _, ok := encodings[dst]; !ok {
		return nil, fmt.Errorf("%q: %w", dst, ErrUnknownEncoding)
	}
	if src == dst {
		return entry.normalise, nil
	}

	r, ok := relations[relationKey{src: src, dst: dst}]
	if !ok {
		return nil, fmt.Errorf("%s -> %s: %w", src, dst, ErrNoConversion)
	}
	return r.lanes, nil
}

// ConvertLanes is Convert for encodings named at runtime. lanes are in the form
// Lanes returns them: 0..255 for u8 encodings, unused lanes ignored.
func ConvertLanes(src string, dst string, lanes vecmath.Vec4) (vecmath.Vec4, error) {
	convert, err := LanesConverter(src, dst)
	if err != nil {
		return vecmath.Vec4{}, err
	}
	return convert(lanes), nil
}
