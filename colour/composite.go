package colour

// Composite places over on top of under using the "over" operator and
// returns the result in the same encoding.
func Composite[E AlphaOver[E]](over, under E) E {
	return over.composite(under)
}

// compositeViaPremultiplied composites encodings that are not themselves
// premultiplied linear light by converting both operands there and back.
func compositeViaPremultiplied[E Encoding[E]](over, under E) E {
	o := Convert[LinearSrgbaPremultiplied](over)
	u := Convert[LinearSrgbaPremultiplied](under)
	return Convert[E](o.composite(u))
}
