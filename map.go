package lexy

// MapOf returns a Codec for map[K]V, with nil maps ordered first. A nil map
// encodes as Null{}; a non-nil map, including an empty one, encodes as a
// List of two-element [key, value] Lists, one per entry.
//
// Go's map iteration order is randomized, so the relative order of two
// non-empty maps with the same entries is not reproducible across calls;
// only the nil-vs-non-nil and empty-vs-non-empty distinctions are stable.
// This matches the same limitation the teacher's own MapOf documents.
//
// keyCodec and valCodec must each be a Codec returned by this package;
// see PointerTo.
func MapOf[K comparable, V any](keyCodec Codec[K], valCodec Codec[V]) Codec[map[K]V] {
	keyAdapter, ok := any(keyCodec).(valueAdapter[K])
	if !ok {
		panic("lexy: MapOf requires a key Codec constructed by this package")
	}
	valAdapter, ok := any(valCodec).(valueAdapter[V])
	if !ok {
		panic("lexy: MapOf requires a value Codec constructed by this package")
	}
	return valueCodec[map[K]V]{
		to: func(m map[K]V) Value {
			if m == nil {
				return Null{}
			}
			items := make(List, 0, len(m))
			for k, v := range m {
				items = append(items, List{keyAdapter.toValue(k), valAdapter.toValue(v)})
			}
			return items
		},
		from: func(val Value) (map[K]V, error) {
			if _, ok := val.(Null); ok {
				return nil, nil
			}
			items, ok := val.(List)
			if !ok {
				return nil, ErrWrongType
			}
			m := make(map[K]V, len(items))
			for _, item := range items {
				pair, ok := item.(List)
				if !ok || len(pair) != 2 {
					return nil, ErrWrongType
				}
				k, err := keyAdapter.fromValue(pair[0])
				if err != nil {
					return nil, err
				}
				v, err := valAdapter.fromValue(pair[1])
				if err != nil {
					return nil, err
				}
				m[k] = v
			}
			return m, nil
		},
	}
}
