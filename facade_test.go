package lexy

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userID int32

func TestIntRoundTripAndOrdering(t *testing.T) {
	c := Int[int32]()
	values := []int32{math.MinInt32, -100, -1, 0, 1, 100, math.MaxInt32}
	var encoded [][]byte
	for _, v := range values {
		buf, err := c.Append(nil, v)
		require.NoError(t, err)
		encoded = append(encoded, buf)
		got, rest, err := c.Get(buf)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, v, got)
	}
	for i := 1; i < len(encoded); i++ {
		assert.Truef(t, lessBytes(encoded[i-1], encoded[i]), "encoding %d should sort before %d", values[i-1], values[i])
	}
}

func TestIntNamedTypeRoundTrip(t *testing.T) {
	c := Int[userID]()
	buf, err := c.Append(nil, userID(42))
	require.NoError(t, err)
	got, _, err := c.Get(buf)
	require.NoError(t, err)
	assert.Equal(t, userID(42), got)
}

func TestUintRoundTrip(t *testing.T) {
	c := Uint[uint64]()
	for _, v := range []uint64{0, 1, math.MaxUint32, math.MaxUint64} {
		buf, err := c.Append(nil, v)
		require.NoError(t, err)
		got, rest, err := c.Get(buf)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, v, got)
	}
}

func TestIntRejectsFractional(t *testing.T) {
	c := Int[int32]()
	half := NewRat(big.NewRat(1, 2))
	buf, err := Dumps(half)
	require.NoError(t, err)
	_, _, err = c.Get(buf)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestBigIntRoundTripIncludingNil(t *testing.T) {
	c := BigInt()
	buf, err := c.Append(nil, nil)
	require.NoError(t, err)
	got, _, err := c.Get(buf)
	require.NoError(t, err)
	assert.Nil(t, got)

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	buf, err = c.Append(nil, huge)
	require.NoError(t, err)
	got, _, err = c.Get(buf)
	require.NoError(t, err)
	assert.Equal(t, 0, huge.Cmp(got))
}

func TestFloat64RoundTripAndSpecials(t *testing.T) {
	c := Float64[float64]()
	for _, v := range []float64{-1.5, -0.0, 0.0, 1.5, 3.14159} {
		buf, err := c.Append(nil, v)
		require.NoError(t, err)
		got, _, err := c.Get(buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	buf, err := c.Append(nil, math.Inf(1))
	require.NoError(t, err)
	got, _, err := c.Get(buf)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))

	buf, err = c.Append(nil, math.NaN())
	require.NoError(t, err)
	got, _, err = c.Get(buf)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
}

func TestBoolOfRoundTrip(t *testing.T) {
	c := BoolOf[bool]()
	f, _, err := c.Get(mustAppend(t, c, false))
	require.NoError(t, err)
	assert.False(t, f)
	tr, _, err := c.Get(mustAppend(t, c, true))
	require.NoError(t, err)
	assert.True(t, tr)
}

func TestStringRoundTripFacade(t *testing.T) {
	c := String[string]()
	buf, err := c.Append(nil, "hello")
	require.NoError(t, err)
	got, rest, err := c.Get(buf)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "hello", got)
}

func TestBytesFacadeNilVsEmpty(t *testing.T) {
	c := BytesOf[[]byte]()
	nilBuf, err := c.Append(nil, nil)
	require.NoError(t, err)
	emptyBuf, err := c.Append(nil, []byte{})
	require.NoError(t, err)
	assert.True(t, lessBytes(nilBuf, emptyBuf))

	got, _, err := c.Get(nilBuf)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func mustAppend[T any](t *testing.T, c Codec[T], v T) []byte {
	t.Helper()
	buf, err := c.Append(nil, v)
	require.NoError(t, err)
	return buf
}

func lessBytes(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
