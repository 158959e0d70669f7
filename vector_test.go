package tetrabsp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorMath(t *testing.T) {

	a := NewVector(3, 4)
	b := NewVector(-1, 2)

	assert.Equal(t, NewVector(2, 6), a.Add(b))
	assert.Equal(t, NewVector(4, 2), a.Sub(b))
	assert.Equal(t, 5.0, a.Magnitude())
	assert.Equal(t, 25.0, a.MagnitudeSquared())
	assert.Equal(t, 10.0, a.Cross(b))
	assert.Equal(t, -10.0, b.Cross(a))
	assert.Equal(t, 5.0, a.Dot(b))
	assert.InDelta(t, 1, a.Unit().Magnitude(), 1e-12)
	assert.True(t, NewVector(0, 0).Unit().IsZero())
	assert.Equal(t, NewVector(1, 3), a.Lerp(b, 0.5))

}

func TestVectorRotate(t *testing.T) {

	v := VecX.Rotate(math.Pi / 2)
	assert.True(t, v.Equals(VecY), "got %v", v)

	assert.Equal(t, Angle90, VecY.Angle())
	assert.Equal(t, Angle180, VecX.Invert().Angle())
	assert.True(t, NewVectorFromAngle(Angle90).Equals(VecY))

}

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector, 0, 100)
		vecs = append(vecs, Vector{0, 0})
		_ = vecs
	}

}

func BenchmarkMathInternalVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	// Main point of benchmarking
	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Scale(vecs[i].Cross(vecs[i+1]))
		}
	}

}

func BenchmarkPointToAngle(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64()*2 - 1, Y: rand.Float64()*2 - 1})
	}

	b.ReportAllocs()
	b.StartTimer()

	var sum Angle

	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			sum += PointToAngle(vecs[i], vecs[i+1])
		}
	}

	_ = sum

}
