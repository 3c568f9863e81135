package colour

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/colour-go/vecmath"
)

type relationKey struct {
	src string
	dst string
}

// relation is one declared src -> dst conversion with its linear space matrix
// computed up front.
type relation struct {
	src       string
	dst       string
	sameSpace bool
	matrix    vecmath.Mat3
	// mapSource, when set, is a func(S) S applied before decoding.
	mapSource any
	// lanes runs the same conversion on raw lanes, for ConvertLanes.
	lanes func(vecmath.Vec4) vecmath.Vec4
}

// relations is filled during package initialisation and only read afterwards.
var relations = map[relationKey]relation{}

type relationOption[S any] func(*relation)

// withSourceMap installs a hook that rewrites the source colour before it is
// decoded, e.g. to bring it into the destination gamut.
func withSourceMap[S any](fn func(S) S) relationOption[S] {
	return func(r *relation) {
		r.mapSource = fn
	}
}

// declare registers S -> D. Declaring a pair twice replaces the first entry,
// declaring S -> S is a no-op since identity conversion is always available.
func declare[S Encoding[S], D Encoding[D]](opts ...relationOption[S]) {
	var src S
	var dst D
	if src.Name() == dst.Name() {
		return
	}

	m, err := src.Space().MatrixTo(dst.Space())
	if err != nil {
		log.Panicf("colour: cannot build conversion %s -> %s: %v", src.Name(), dst.Name(), err)
	}
	r := relation{
		src:       src.Name(),
		dst:       dst.Name(),
		sameSpace: src.Space().Matches(dst.Space()),
		matrix:    m,
	}
	r.lanes = func(v vecmath.Vec4) vecmath.Vec4 {
		return Convert[D](fromLanes[S](v)).Lanes()
	}
	for _, opt := range opts {
		opt(&r)
	}
	relations[relationKey{src: r.src, dst: r.dst}] = r
}

// declarePair declares A -> B and B -> A.
func declarePair[A Encoding[A], B Encoding[B]]() {
	declare[A, B]()
	declare[B, A]()
}

// Convert converts c into the encoding D. Converting to the same encoding
// returns c unchanged. Otherwise the colour is decoded to its linear space,
// moved to the linear space of D by a matrix (skipped when the spaces are the
// same) and encoded as D.
//
// Only declared pairs convert; see Relations. Converting across an
// undeclared pair is a programming error and panics.
func Convert[D Encoding[D], S Encoding[S]](c S) D {
	if same, ok := any(c).(D); ok {
		return same
	}

	var dst D
	r, ok := relations[relationKey{src: c.Name(), dst: dst.Name()}]
	if !ok {
		log.Panicf("colour: no conversion declared from %s to %s", c.Name(), dst.Name())
	}
	if r.mapSource != nil {
		c = r.mapSource.(func(S) S)(c)
	}

	linear, alpha := c.ToLinear()
	if !r.sameSpace {
		linear = r.matrix.MulVec(linear)
	}
	return dst.FromLinear(linear, alpha)
}

// CanConvert reports whether Convert[D] accepts values of S.
func CanConvert[S Encoding[S], D Encoding[D]]() bool {
	var src S
	var dst D
	if src.Name() == dst.Name() {
		return true
	}
	_, ok := relations[relationKey{src: src.Name(), dst: dst.Name()}]
	return ok
}

// Relation describes one declared conversion.
type Relation struct {
	Source      string
	Destination string
	// SameSpace is set when no matrix is applied between the linear spaces.
	SameSpace bool
}

func (r Relation) String() string {
	return fmt.Sprintf("%s -> %s", r.Source, r.Destination)
}

// Relations lists every declared conversion, sorted by source then
// destination name.
func Relations() []Relation {
	out := make([]Relation, 0, len(relations))
	for _, r := range relations {
		out = append(out, Relation{Source: r.src, Destination: r.dst, SameSpace: r.sameSpace})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Destination < out[j].Destination
	})
	return out
}
