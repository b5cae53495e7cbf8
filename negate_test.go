package lexy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNegateReversesOrdering(t *testing.T) {
	asc := Int[int]()
	desc := Negate(asc)

	small, err := desc.Append(nil, 1)
	require.NoError(t, err)
	big, err := desc.Append(nil, 100)
	require.NoError(t, err)
	assert.True(t, lessBytes(big, small))
}

func TestNegateRoundTrip(t *testing.T) {
	desc := Negate(String[string]())
	buf, err := desc.Append(nil, "hello")
	require.NoError(t, err)
	got, rest, err := desc.Get(buf)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "hello", got)
}

func TestNegateOfSliceReversesSequenceOrder(t *testing.T) {
	c := Negate(SliceOf(Int[int]()))
	a, err := c.Append(nil, []int{1, 2})
	require.NoError(t, err)
	b, err := c.Append(nil, []int{1, 2, 3})
	require.NoError(t, err)
	// Ascending, [1,2] < [1,2,3]; negated, the longer sequence sorts first.
	assert.True(t, lessBytes(b, a))

	got, _, err := c.Get(a)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}
