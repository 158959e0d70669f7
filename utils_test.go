package tetrabsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {

	set := NeighborSet{}
	set.Add(1)
	set.Add(2)

	other := NeighborSet{}
	other.Add(2)
	other.Add(3)

	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(3))

	set.Combine(other)
	assert.Len(t, set, 3)
	assert.True(t, set.Contains(3))

}

func TestDegreeConversion(t *testing.T) {
	assert.InDelta(t, math.Pi/2, ToRadians(90), 1e-12)
	assert.InDelta(t, 180, ToDegrees(math.Pi), 1e-12)
}

func TestClosestPointOnLine(t *testing.T) {

	start, end := NewVector(0, 0), NewVector(10, 0)

	assert.Equal(t, NewVector(4, 0), ClosestPointOnLine(start, end, NewVector(4, 3)))
	assert.Equal(t, start, ClosestPointOnLine(start, end, NewVector(-5, 1)))
	assert.Equal(t, end, ClosestPointOnLine(start, end, NewVector(15, -2)))

}
