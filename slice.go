package lexy

// SliceOf returns a Codec for []E, with nil slices ordered first and
// non-nil slices ordered lexicographically by element. A nil slice encodes
// as Null{}; a non-nil slice, including an empty one, encodes as a List of
// its elements' own Values, so ordering and prefix-freedom across elements
// fall directly out of the core list encoding rather than needing a
// separate escape/terminate layer per element.
//
// elem must be a Codec returned by this package; see PointerTo.
func SliceOf[E any](elem Codec[E]) Codec[[]E] {
	adapter, ok := elem.(valueAdapter[E])
	if !ok {
		panic("lexy: SliceOf requires a Codec constructed by this package")
	}
	return valueCodec[[]E]{
		to: func(v []E) Value {
			if v == nil {
				return Null{}
			}
			items := make(List, len(v))
			for i, e := range v {
				items[i] = adapter.toValue(e)
			}
			return items
		},
		from: func(val Value) ([]E, error) {
			if _, ok := val.(Null); ok {
				return nil, nil
			}
			items, ok := val.(List)
			if !ok {
				return nil, ErrWrongType
			}
			out := make([]E, len(items))
			for i, item := range items {
				e, err := adapter.fromValue(item)
				if err != nil {
					return nil, err
				}
				out[i] = e
			}
			return out, nil
		},
	}
}
