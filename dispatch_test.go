package lexy

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDumpsWorkedExamples pins down every byte string the distilled spec's
// worked-example table requires verbatim.
func TestDumpsWorkedExamples(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want []byte
	}{
		{"null", Null{}, []byte{0x01}},
		{"false", Bool(false), []byte{0x02}},
		{"true", Bool(true), []byte{0x03}},
		{"zero", NewInt(0), []byte{0x40}},
		{"one", NewInt(1), []byte{0x41}},
		{"negative one", NewInt(-1), []byte{0xBE}},
		{"string a", Str("a"), []byte{0x79, 0x62, 0x00}},
		{"empty bytes", Bytes(nil), []byte{0x7A, 0x00}},
		{"empty list", List{}, []byte{0x7B, 0x00}},
		{"mixed-sign list", List{NewInt(1), NewInt(-1)}, []byte{0x7B, 0x41, 0xBE, 0x80}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Dumps(c.v)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	buf, err := Dumps(v)
	require.NoError(t, err)
	got, err := Loads(buf)
	require.NoError(t, err)
	return got
}

func TestLoadsRoundTripScalars(t *testing.T) {
	assert.Equal(t, Null{}, roundTrip(t, Null{}))
	assert.Equal(t, Bool(true), roundTrip(t, Bool(true)))
	assert.Equal(t, Bool(false), roundTrip(t, Bool(false)))
	assert.Equal(t, NaN{}, roundTrip(t, NaN{}))
	assert.Equal(t, NegInf, roundTrip(t, NegInf))
	assert.Equal(t, PosInf, roundTrip(t, PosInf))
}

func TestLoadsRoundTripString(t *testing.T) {
	got := roundTrip(t, Str("hello"))
	assert.Equal(t, Str("hello"), got)
}

func TestLoadsRoundTripBytes(t *testing.T) {
	got := roundTrip(t, Bytes{1, 2, 3, 0, 255})
	assert.Equal(t, Bytes{1, 2, 3, 0, 255}, got)
}

func TestLoadsRoundTripNestedLists(t *testing.T) {
	v := List{
		NewInt(1),
		List{Str("a"), Bytes{0, 1}, NewInt(-5)},
		Bool(true),
		List{},
		NaN{},
	}
	got := roundTrip(t, v)
	list, ok := got.(List)
	require.True(t, ok)
	require.Len(t, list, 5)
	assert.Equal(t, Bool(true), list[2])
	assert.Equal(t, NaN{}, list[4])
	inner, ok := list[1].(List)
	require.True(t, ok)
	require.Len(t, inner, 3)
	assert.Equal(t, Str("a"), inner[0])
	assert.Equal(t, Bytes{0, 1}, inner[1])
	innerNum, ok := inner[2].(*Number)
	require.True(t, ok)
	assert.Equal(t, -1, innerNum.Sign)
	assert.Equal(t, 0, innerNum.Num.Cmp(big.NewInt(5)))
}

func TestDumpsUnsupportedVariant(t *testing.T) {
	_, err := Dumps(nil)
	assert.ErrorIs(t, err, ErrUnsupportedVariant)

	_, err = Dumps(&Number{Num: big.NewInt(1), Denom: big.NewInt(0)})
	assert.ErrorIs(t, err, ErrUnsupportedVariant)
}

func TestLoadsInvalidTag(t *testing.T) {
	_, err := Loads([]byte{0x08})
	assert.ErrorIs(t, err, ErrInvalidTag)
	var tagErr *InvalidTagError
	assert.ErrorAs(t, err, &tagErr)
	assert.Equal(t, byte(0x08), tagErr.Tag)
}

func TestLoadsTruncatedList(t *testing.T) {
	buf := []byte{0x7B, 0x41} // open tag, one child, no end sentinel
	_, err := Loads(buf)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

func TestLoadsEmptyInput(t *testing.T) {
	_, err := Loads(nil)
	assert.ErrorIs(t, err, ErrTruncatedInput)
}

// TestListOrderingAcrossMixedSignPrefixes checks the prefix-freedom and
// list-nesting-order invariants for representative mixed-sign sequences.
func TestListOrderingAcrossMixedSignPrefixes(t *testing.T) {
	shorter, err := Dumps(List{NewInt(-5), NewInt(-3)})
	require.NoError(t, err)
	longer, err := Dumps(List{NewInt(-5), NewInt(-3), NewInt(-1)})
	require.NoError(t, err)
	assert.True(t, bytes.Compare(shorter, longer) < 0)

	a, err := Dumps(List{NewInt(-5), Str("a")})
	require.NoError(t, err)
	b, err := Dumps(List{NewInt(-5), Str("a"), Str("extra")})
	require.NoError(t, err)
	assert.True(t, bytes.Compare(a, b) < 0)
}

func TestLoadsIgnoresTrailingBytes(t *testing.T) {
	buf, err := Dumps(NewInt(7))
	require.NoError(t, err)
	buf = append(buf, 0x99, 0x99)
	v, err := Loads(buf)
	require.NoError(t, err)
	n, ok := v.(*Number)
	require.True(t, ok)
	assert.Equal(t, 0, n.Num.Cmp(big.NewInt(7)))
}
