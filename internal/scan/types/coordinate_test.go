package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinateComputesWidthAndColumnEnd(t *testing.T) {
	c := NewCoordinate(1, 4, 24, 4, 24)
	assert.EqualValues(t, 4, c.ColumnStart)
	assert.EqualValues(t, 20, c.ColumnWidth)
	assert.EqualValues(t, 24, c.ColumnEnd())
	assert.EqualValues(t, 20, c.ByteLength())
}

func TestNewCoordinateSaturatesNegativeValues(t *testing.T) {
	c := NewCoordinate(-1, -5, -5, -1, -1)
	assert.EqualValues(t, 0, c.Line)
	assert.EqualValues(t, 0, c.ColumnStart)
	assert.EqualValues(t, 0, c.ColumnWidth)
	assert.EqualValues(t, 0, c.ByteStart)
}

func TestNewCoordinateSaturatesOverflow(t *testing.T) {
	c := NewCoordinate(math.MaxInt64, math.MaxInt64, math.MaxInt64, math.MaxInt64, math.MaxInt64)
	assert.EqualValues(t, math.MaxUint32, c.Line)
	assert.EqualValues(t, math.MaxUint16, c.ColumnStart)
	assert.EqualValues(t, math.MaxUint32, c.ByteStart)
	assert.EqualValues(t, math.MaxUint32, c.ByteEnd)
}

func TestCoordinateContainsAndOverlaps(t *testing.T) {
	outer := NewCoordinate(1, 0, 20, 0, 20)
	inner := NewCoordinate(1, 5, 10, 5, 10)
	other := NewCoordinate(2, 5, 10, 5, 10)

	assert.True(t, outer.Contains(inner))
	assert.False(t, outer.Contains(other), "different lines never contain one another")

	a := NewCoordinate(1, 0, 10, 0, 10)
	b := NewCoordinate(1, 5, 15, 5, 15)
	assert.True(t, a.Overlaps(b))

	c := NewCoordinate(1, 10, 20, 10, 20)
	d := NewCoordinate(1, 20, 30, 20, 30)
	assert.False(t, c.Overlaps(d), "adjacent ranges that only touch at the boundary don't overlap")
}
