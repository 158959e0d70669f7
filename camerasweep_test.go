package tetrabsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCameraSweep(t *testing.T) {

	sweep := NewCameraSweep(0, 90, 1)
	assert.InDelta(t, 0, sweep.Degrees(), 1e-9)

	sweep.Update(0.5)
	assert.InDelta(t, 45, sweep.Degrees(), 0.01)

	assert.Equal(t, Angle90, sweep.Update(0.5))

	// Heads back the other way.
	sweep.Update(0.5)
	assert.InDelta(t, 45, sweep.Degrees(), 0.01)

	sweep.Update(0.5)
	assert.InDelta(t, 0, sweep.Degrees(), 0.01)
	assert.Equal(t, AngleFromDegrees(sweep.Degrees()), sweep.Angle())

}

func TestCameraSweepWalk(t *testing.T) {

	level, err := buildTwoRooms(nil)
	if err != nil {
		t.Fatal(err)
	}

	viewer, err := NewViewer(level)
	assert.NoError(t, err)

	sweep := NewCameraSweep(-30, 30, 0.25)

	for i := 0; i < 20; i++ {
		assert.NoError(t, viewer.Render(Vector{5, 5}, sweep.Update(1.0/60), nil))
		assert.Equal(t, PartitionID(0), viewer.Order()[0])
		assert.False(t, viewer.DebugInfo.Degraded)
	}

}
