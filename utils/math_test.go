package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddWithOverflow(t *testing.T) {
	sum, overflow := AddWithOverflow(2, 3)
	assert.Equal(t, int32(5), sum)
	assert.False(t, overflow)

	sum, overflow = AddWithOverflow(-7, 3)
	assert.Equal(t, int32(-4), sum)
	assert.False(t, overflow)

	sum, overflow = AddWithOverflow(math.MaxInt32, 0)
	assert.Equal(t, int32(math.MaxInt32), sum)
	assert.False(t, overflow)
}

func TestAddWithOverflow_Overflow(t *testing.T) {
	sum, overflow := AddWithOverflow(math.MaxInt32, 1)
	assert.True(t, overflow)
	assert.Equal(t, int32(0), sum)

	_, overflow = AddWithOverflow(math.MinInt32, -1)
	assert.True(t, overflow)
}

func TestAssert(t *testing.T) {
	assert.NotPanics(t, func() { Assert(true) })
	assert.PanicsWithValue(t, "failed assertion", func() { Assert(false) })
	assert.PanicsWithValue(t, "bad", func() { Assert(false, "bad") })
}
