package lexy

// PointerTo returns a Codec for *E, with nil pointers ordered first. A nil
// pointer encodes as Null{}; a non-nil pointer encodes as exactly what
// elem would encode for its referent, with no extra framing, since Null's
// tag never collides with any value elem can itself produce.
//
// elem must be a Codec returned by this package (directly, or built up from
// ones that are, via PointerTo/SliceOf/MapOf/Negate); it panics otherwise,
// since only those Codecs expose the Value conversion PointerTo needs to
// make the referent one child of the surrounding structure instead of an
// independently escaped span.
func PointerTo[E any](elem Codec[E]) Codec[*E] {
	adapter, ok := elem.(valueAdapter[E])
	if !ok {
		panic("lexy: PointerTo requires a Codec constructed by this package")
	}
	return valueCodec[*E]{
		to: func(v *E) Value {
			if v == nil {
				return Null{}
			}
			return adapter.toValue(*v)
		},
		from: func(val Value) (*E, error) {
			if _, ok := val.(Null); ok {
				return nil, nil
			}
			e, err := adapter.fromValue(val)
			if err != nil {
				return nil, err
			}
			return &e, nil
		},
	}
}
