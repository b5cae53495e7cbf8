// Package lexy implements a lexicographically ordered binary encoding for a
// small, dynamically typed value domain: null, booleans, arbitrary-precision
// rationals (including the doubles and arbitrary-precision integers that
// normalize into them), UTF-8 strings, byte strings, and heterogeneous lists.
//
// The defining property of the encoding is that the unsigned lexicographic
// order of the encoded bytes equals the semantic order of the values they
// encode. This makes it suitable for use as an opaque key format in ordered
// key-value stores, where range scans over encoded keys must agree with
// range scans over the values those keys represent.
package lexy

import (
	"math"
	"math/big"
)

// Value is any value this package knows how to encode. The concrete types
// implementing Value are Null, Bool, *Number, Special, NaN, Str, Bytes, and
// List.
// A nil Go interface value is never a valid Value; use Null{} instead.
type Value interface {
	isValue()
}

// Null is the value that sorts before every other value.
type Null struct{}

func (Null) isValue() {}

// Bool is a boolean value. False sorts before true.
type Bool bool

func (Bool) isValue() {}

// Special represents the two non-finite real values this encoding preserves:
// positive and negative infinity. NaN has no ordering and is represented
// separately by NaN{}.
type Special int8

const (
	// NegInf sorts below every finite number.
	NegInf Special = -1
	// PosInf sorts above every finite number.
	PosInf Special = 1
)

func (Special) isValue() {}

// NaN is the value produced by decoding a not-a-number double. It carries no
// payload: every encoded NaN is indistinguishable from every other. NaN
// sorts after Null and the booleans and below every number, including
// NegInf, matching the tag ordering in the data model.
type NaN struct{}

func (NaN) isValue() {}

// Number is an exact rational value: Sign * (Num / Denom), normalized so
// that Num and Denom share no common factor greater than 1, Denom is always
// strictly positive, and Sign is one of -1, 0, or +1. Sign == 0 implies
// Num.Sign() == 0 and Denom is 1.
//
// Every finite float64 and every *big.Int converts losslessly into this
// representation; this is also the representation a *big.Rat normalizes
// into when dumped.
type Number struct {
	Sign  int
	Num   *big.Int
	Denom *big.Int
}

func (*Number) isValue() {}

// Str is a UTF-8 string value.
type Str string

func (Str) isValue() {}

// Bytes is an arbitrary byte string value, with no encoding constraints on
// its contents.
type Bytes []byte

func (Bytes) isValue() {}

// List is an ordered, heterogeneous sequence of values.
type List []Value

func (List) isValue() {}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// NewBool returns a Bool value.
func NewBool(b bool) Value { return Bool(b) }

// NewInt returns the Number for an int64.
func NewInt(i int64) Value { return NewBigInt(big.NewInt(i)) }

// NewBigInt returns the Number for an arbitrary-precision integer.
func NewBigInt(i *big.Int) Value {
	n := &Number{Sign: i.Sign(), Denom: new(big.Int).Set(bigOne)}
	n.Num = new(big.Int).Abs(i)
	return n
}

// NewRat returns the Number for an exact rational, normalized to lowest
// terms with a positive denominator.
func NewRat(r *big.Rat) Value {
	n := &Number{
		Sign:  r.Sign(),
		Num:   new(big.Int).Abs(r.Num()),
		Denom: new(big.Int).Abs(r.Denom()),
	}
	if n.Sign == 0 {
		n.Denom.Set(bigOne)
	}
	return n
}

// NewFloat converts a float64 into a Value, losslessly. NaN converts to
// NaN{}; +/-Inf convert to Special; every other value, including -0.0,
// converts to an exact *Number (a float64's bit pattern always denotes an
// exact dyadic rational).
func NewFloat(f float64) Value {
	switch {
	case math.IsNaN(f):
		return NaN{}
	case math.IsInf(f, 1):
		return PosInf
	case math.IsInf(f, -1):
		return NegInf
	}
	r := new(big.Rat).SetFloat64(f)
	n := NewRat(r).(*Number)
	if f == 0 && math.Signbit(f) {
		n.Sign = -1
	}
	return n
}
