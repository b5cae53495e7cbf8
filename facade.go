package lexy

import (
	"math"
	"math/big"
)

// Codec defines a lexicographically ordered binary encoding for values of
// type T, built on the dynamic Value/Encode/Decode core. Every encoding
// this package produces is self-delimiting (strings and byte strings carry
// their own terminator, lists carry their own end sentinel, numbers and
// scalars are tag-framed), so Codecs compose directly: appending one
// Codec's output after another's, or embedding one inside a list, never
// needs an extra escape/terminate layer the way a raw-bytes composition
// would.
type Codec[T any] interface {
	// Append encodes value and appends the encoded bytes to buf, returning
	// the updated buffer.
	Append(buf []byte, value T) ([]byte, error)

	// Get decodes a value of type T from the start of buf, returning the
	// value and the remainder of buf following the encoded value.
	Get(buf []byte) (T, []byte, error)
}

// valueAdapter is satisfied by every Codec this package constructs
// directly from the Value core (as opposed to PointerTo/SliceOf/MapOf/
// Negate, which wrap an existing Codec). PointerTo, SliceOf, and MapOf use
// it to recover the underlying Value conversion instead of working with
// already-encoded bytes, so a pointer's referent, or a slice's elements,
// become children of one list rather than independently terminated spans.
type valueAdapter[T any] interface {
	toValue(T) Value
	fromValue(Value) (T, error)
}

type valueCodec[T any] struct {
	to   func(T) Value
	from func(Value) (T, error)
}

func (c valueCodec[T]) toValue(v T) Value           { return c.to(v) }
func (c valueCodec[T]) fromValue(v Value) (T, error) { return c.from(v) }

func (c valueCodec[T]) Append(buf []byte, value T) ([]byte, error) {
	buf, _, err := Encode(buf, c.to(value), false)
	return buf, err
}

func (c valueCodec[T]) Get(buf []byte) (T, []byte, error) {
	var zero T
	v, n, err := Decode(buf, 0)
	if err != nil {
		return zero, nil, err
	}
	value, err := c.from(v)
	if err != nil {
		return zero, nil, err
	}
	return value, buf[n:], nil
}

// numberToInt64 converts n to an int64, failing if n has a fractional part
// or its magnitude does not fit.
func numberToInt64(n *Number) (int64, error) {
	if n.Denom.Cmp(bigOne) != 0 {
		return 0, ErrWrongType
	}
	signed := new(big.Int).Set(n.Num)
	if n.Sign < 0 {
		signed.Neg(signed)
	}
	if !signed.IsInt64() {
		return 0, ErrWrongType
	}
	return signed.Int64(), nil
}

// numberToUint64 converts n to a uint64, failing if n is negative, has a
// fractional part, or its magnitude does not fit.
func numberToUint64(n *Number) (uint64, error) {
	if n.Sign < 0 || n.Denom.Cmp(bigOne) != 0 {
		return 0, ErrWrongType
	}
	if !n.Num.IsUint64() {
		return 0, ErrWrongType
	}
	return n.Num.Uint64(), nil
}

// numberToFloat64 converts n to the nearest float64, matching the lossy
// rounding big.Rat.Float64 uses for values with no exact binary
// representation.
func numberToFloat64(n *Number) float64 {
	r := new(big.Rat).SetFrac(n.Num, n.Denom)
	f, _ := r.Float64()
	if n.Sign < 0 {
		f = -f
	}
	return f
}

// Int returns a Codec for any integer type with an underlying int/int8/
// int16/int32/int64 kind.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64]() Codec[T] {
	return valueCodec[T]{
		to: func(v T) Value { return NewInt(int64(v)) },
		from: func(val Value) (T, error) {
			n, ok := val.(*Number)
			if !ok {
				return 0, ErrWrongType
			}
			i, err := numberToInt64(n)
			if err != nil {
				return 0, err
			}
			return T(i), nil
		},
	}
}

// Uint returns a Codec for any unsigned integer type with an underlying
// uint/uint8/uint16/uint32/uint64 kind.
func Uint[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64]() Codec[T] {
	return valueCodec[T]{
		to: func(v T) Value { return NewBigInt(new(big.Int).SetUint64(uint64(v))) },
		from: func(val Value) (T, error) {
			n, ok := val.(*Number)
			if !ok {
				return 0, ErrWrongType
			}
			u, err := numberToUint64(n)
			if err != nil {
				return 0, err
			}
			return T(u), nil
		},
	}
}

// BigInt returns a Codec for *big.Int, with nil ordered first.
func BigInt() Codec[*big.Int] {
	return valueCodec[*big.Int]{
		to: func(v *big.Int) Value {
			if v == nil {
				return Null{}
			}
			return NewBigInt(v)
		},
		from: func(val Value) (*big.Int, error) {
			if _, ok := val.(Null); ok {
				return nil, nil
			}
			n, ok := val.(*Number)
			if !ok || n.Denom.Cmp(bigOne) != 0 {
				return nil, ErrWrongType
			}
			signed := new(big.Int).Set(n.Num)
			if n.Sign < 0 {
				signed.Neg(signed)
			}
			return signed, nil
		},
	}
}

// Float64 returns a Codec for any type with an underlying float64 kind.
// NaN and +/-Inf round-trip through NaN{} and Special, matching NewFloat.
func Float64[T ~float64]() Codec[T] {
	return valueCodec[T]{
		to: func(v T) Value { return NewFloat(float64(v)) },
		from: func(val Value) (T, error) {
			switch v := val.(type) {
			case *Number:
				return T(numberToFloat64(v)), nil
			case NaN:
				return T(math.NaN()), nil
			case Special:
				if v == NegInf {
					return T(math.Inf(-1)), nil
				}
				return T(math.Inf(1)), nil
			}
			return 0, ErrWrongType
		},
	}
}

// BoolOf returns a Codec for any type with an underlying bool kind. Named
// BoolOf rather than Bool because the core value domain already exports a
// type named Bool.
func BoolOf[T ~bool]() Codec[T] {
	return valueCodec[T]{
		to: func(v T) Value { return Bool(v) },
		from: func(val Value) (T, error) {
			b, ok := val.(Bool)
			if !ok {
				return false, ErrWrongType
			}
			return T(b), nil
		},
	}
}

// String returns a Codec for any type with an underlying string kind.
func String[T ~string]() Codec[T] {
	return valueCodec[T]{
		to: func(v T) Value { return Str(v) },
		from: func(val Value) (T, error) {
			s, ok := val.(Str)
			if !ok {
				return "", ErrWrongType
			}
			return T(s), nil
		},
	}
}

// BytesOf returns a Codec for any type with an underlying []byte kind, with
// nil slices ordered first. Named BytesOf rather than Bytes because the
// core value domain already exports a type named Bytes.
func BytesOf[T ~[]byte]() Codec[T] {
	return valueCodec[T]{
		to: func(v T) Value {
			if v == nil {
				return Null{}
			}
			return Bytes(v)
		},
		from: func(val Value) (T, error) {
			if _, ok := val.(Null); ok {
				return nil, nil
			}
			b, ok := val.(Bytes)
			if !ok {
				return nil, ErrWrongType
			}
			return T(b), nil
		},
	}
}
