package tetrabsp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkerStates(t *testing.T) {

	level, err := buildCorridor(3)
	require.NoError(t, err)

	walker := NewWalker(level, DefaultConfig())
	assert.Equal(t, NoPartition, walker.CameraPartition())

	fc, err := NewFrameContext(NewVector(5, 5), Angle0, Angle90, 0, 0, 0)
	require.NoError(t, err)

	walker.Reset(fc)
	assert.Equal(t, WalkIdle, walker.State())
	assert.False(t, walker.Step(nil), "stepping before seeding does nothing")

	require.NoError(t, walker.Seed())
	assert.Equal(t, WalkDraining, walker.State())
	assert.Equal(t, PartitionID(0), walker.CameraPartition())
	assert.True(t, walker.Visited(0))
	assert.False(t, walker.Visited(1))

	steps := 0
	for walker.Step(nil) {
		steps++
	}

	assert.Equal(t, WalkDone, walker.State())
	assert.NotZero(t, steps)
	assert.Equal(t, []PartitionID{0, 1, 2}, walker.Order())
	assert.True(t, walker.Visited(2))
	assert.False(t, walker.Visited(-1))
	assert.False(t, walker.Visited(3))
	assert.Zero(t, walker.Lines.Len())

	// Resetting forgets the last walk, even for the same frame number.
	walker.Reset(fc)
	assert.False(t, walker.Visited(0))
	assert.Empty(t, walker.Order())

}

func TestWalkerStateString(t *testing.T) {
	assert.Equal(t, "idle", WalkIdle.String())
	assert.Equal(t, "draining", WalkDraining.String())
	assert.Equal(t, "WalkState(9)", WalkState(9).String())
}

func TestWalkerNoCameraPartition(t *testing.T) {

	level, err := buildTwoRooms(nil)
	require.NoError(t, err)

	walker := NewWalker(level, DefaultConfig())

	fc, err := NewFrameContext(NewVector(-5, -5), Angle0, Angle90, 0, 0, 1)
	require.NoError(t, err)

	walker.Reset(fc)
	err = walker.Seed()
	assert.True(t, errors.Is(err, ErrNoCameraPartition))
	assert.Equal(t, WalkDone, walker.State())
	assert.False(t, walker.Step(nil))
	assert.Empty(t, walker.Order())

}

func TestWalkerIndependentViews(t *testing.T) {

	level, err := buildCorridor(3)
	require.NoError(t, err)

	east := NewWalker(level, DefaultConfig())
	west := NewWalker(level, DefaultConfig())

	fcEast, err := NewFrameContext(NewVector(15, 5), Angle0, Angle90, 0, 0, 1)
	require.NoError(t, err)
	fcWest, err := NewFrameContext(NewVector(15, 5), Angle180, Angle90, 0, 0, 1)
	require.NoError(t, err)

	east.Reset(fcEast)
	west.Reset(fcWest)
	require.NoError(t, east.Seed())
	require.NoError(t, west.Seed())

	// Interleave the two walks; they share only the level.
	for {
		a := east.Step(nil)
		b := west.Step(nil)
		if !a && !b {
			break
		}
	}

	assert.Equal(t, []PartitionID{1, 2}, east.Order())
	assert.Equal(t, []PartitionID{1, 0}, west.Order())

}

func TestWalkerMalformedSegment(t *testing.T) {

	level, err := buildTwoRooms(nil)
	require.NoError(t, err)

	a := level.Partition(0)
	for s := range a.Segments {
		if a.Segments[s].Back == 1 {
			a.Segments[s].Back = 0
		}
	}

	viewer, err := NewViewer(level)
	require.NoError(t, err)
	require.NoError(t, viewer.Render(NewVector(5, 5), Angle0, nil))

	assert.Equal(t, []PartitionID{0}, viewer.Order())
	assert.True(t, viewer.DebugInfo.Degraded)
	assert.False(t, viewer.DebugInfo.Truncated)
	assert.True(t, errors.Is(viewer.DebugInfo.Problem, ErrMalformedSegment))

}

func walkOnce(t *testing.T, walker *Walker, pos Vector, angle Angle, frame uint32) []PartitionID {
	fc, err := NewFrameContext(pos, angle, Angle90, 0, 0, frame)
	require.NoError(t, err)
	walker.Reset(fc)
	require.NoError(t, walker.Seed())
	walker.Run(nil)
	return append([]PartitionID(nil), walker.Order()...)
}

func TestWalkerReusedFrameNumber(t *testing.T) {

	level, err := buildCorridor(3)
	require.NoError(t, err)

	walker := NewWalker(level, DefaultConfig())
	pos := NewVector(15, 5)

	first := walkOnce(t, walker, pos, Angle0, 1)
	assert.Equal(t, []PartitionID{1, 2}, first)

	assert.Equal(t, []PartitionID{1, 0}, walkOnce(t, walker, pos, Angle180, 2))

	// Frame numbers are only labels; coming back to an old one still walks everything.
	assert.Equal(t, first, walkOnce(t, walker, pos, Angle0, 1))
	assert.Equal(t, first, walkOnce(t, walker, pos, Angle0, 1))

}

func TestWalkerStampWraps(t *testing.T) {

	level, err := buildCorridor(3)
	require.NoError(t, err)

	walker := NewWalker(level, DefaultConfig())
	pos := NewVector(15, 5)

	first := walkOnce(t, walker, pos, Angle0, 1)

	// Marks that the stamp after wrapping around would match.
	walker.stamp = math.MaxUint32
	for i := range walker.visited {
		walker.visited[i] = 1
		walker.rendered[i] = 1
	}

	assert.Equal(t, first, walkOnce(t, walker, pos, Angle0, 2))
	assert.Equal(t, uint32(1), walker.stamp)

}

func TestWalkerStopsWhenViewIsSolid(t *testing.T) {

	level, err := buildCorridor(3)
	require.NoError(t, err)

	for _, cull := range []bool{true, false} {

		cfg := DefaultConfig()
		cfg.CullCovered = cull

		walker := NewWalker(level, cfg)

		fc, err := NewFrameContext(NewVector(5, 5), Angle0, Angle90, 0, 0, 1)
		require.NoError(t, err)
		walker.Reset(fc)
		require.NoError(t, walker.Seed())

		live := walker.Lines.Len()
		require.NotZero(t, live)

		walker.Clipper.MarkSolid(fc.ClipLeft, fc.ClipRight)
		walker.Run(nil)

		assert.Equal(t, WalkDone, walker.State())
		assert.Zero(t, walker.Lines.Len())

		if cull {
			assert.Empty(t, walker.Order())
			assert.Equal(t, live, walker.DebugInfo.CulledDrawSegs)
		} else {
			assert.Equal(t, []PartitionID{0}, walker.Order())
			assert.Zero(t, walker.DebugInfo.CulledDrawSegs)
		}

	}

}

func TestWalkerTruncated(t *testing.T) {

	level, err := buildCorridor(4)
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.MaxDrawSegs = 2

	viewer, err := NewViewer(level, WithConfig(cfg))
	require.NoError(t, err)

	// Running out of room degrades the frame instead of failing it.
	require.NoError(t, viewer.Render(NewVector(5, 5), Angle0, nil))

	info := viewer.DebugInfo
	assert.True(t, info.Truncated)
	assert.True(t, info.Degraded)
	assert.True(t, errors.Is(info.Problem, ErrLineSetFull))
	assert.LessOrEqual(t, info.PeakDrawSegs, 2)

	order := viewer.Order()
	require.NotEmpty(t, order)
	assert.Equal(t, PartitionID(0), order[0])
	assert.Less(t, len(order), 4)

}

func BenchmarkWalker(b *testing.B) {

	level, err := buildRing()
	if err != nil {
		b.Fatal(err)
	}

	walker := NewWalker(level, DefaultConfig())

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fc, _ := NewFrameContext(NewVector(2, 15), Angle0, Angle90, 0, 0, uint32(i+1))
		walker.Reset(fc)
		walker.Seed()
		walker.Run(nil)
	}

}
