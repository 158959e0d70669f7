package tetrabsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(part PartitionID, x1, y1, x2, y2 float64) *Segment {
	return &Segment{V1: NewVector(x1, y1), V2: NewVector(x2, y2), Partition: part, Back: NoPartition}
}

func TestSegmentRelation(t *testing.T) {

	camera := NewVector(0, 0)

	tests := []struct {
		name string
		a, b *Segment
		want Relation
	}{
		{"a in front", seg(0, 5, 2, 5, -2), seg(1, 10, 3, 10, -3), RelationABlocksB},
		{"b in front", seg(0, 10, 3, 10, -3), seg(1, 5, 2, 5, -2), RelationBBlocksA},
		{"angled, a in front", seg(0, 4, 4, 6, -1), seg(1, 9, 5, 12, -6), RelationABlocksB},
		// The nearer segment's line doesn't separate; the farther one's does.
		{"a's line straddles b", seg(0, 3, 1, 6, -1), seg(1, 4, 6, 8, -5), RelationABlocksB},
		{"collinear", seg(0, 5, 2, 5, 0), seg(1, 5, 0, 5, -2), RelationNone},
		{"crossing", seg(0, 4, 3, 8, -3), seg(1, 8, 3, 4, -3), RelationNone},
		// Only b's line can tell, and a lies on the camera's side of it.
		{"camera on a's line", seg(0, 0, 5, 0, 10), seg(1, 5, 5, 5, 10), RelationABlocksB},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, SegmentRelation(test.a, test.b, camera, 1e-6))
			assert.Equal(t, test.want.Invert(), SegmentRelation(test.b, test.a, camera, 1e-6), "swapped")
		})
	}

}

func TestBlocks(t *testing.T) {

	fc, err := NewFrameContext(NewVector(0, 0), Angle0, Angle90, 0, 0, 1)
	require.NoError(t, err)

	drawSeg := func(s *Segment) *DrawSeg {
		left, right, ok := fc.ClipSegment(s)
		require.True(t, ok)
		return &DrawSeg{Seg: s, Partition: s.Partition, Left: left, Right: right, Scope: left - right}
	}

	near := drawSeg(seg(0, 5, 2, 5, -2))
	far := drawSeg(seg(1, 10, 3, 10, -3))
	sameRoom := drawSeg(seg(0, 10, 3, 10, -3))
	aside := drawSeg(seg(1, 10, 9, 10, 5))

	assert.Equal(t, RelationABlocksB, Blocks(near, far, fc.Position, fc.Epsilon))
	assert.Equal(t, RelationBBlocksA, Blocks(far, near, fc.Position, fc.Epsilon))

	// Segments of one (convex) partition never hide each other.
	assert.Equal(t, RelationNone, Blocks(near, sameRoom, fc.Position, fc.Epsilon))

	// No shared view directions, no relation.
	assert.False(t, near.Overlaps(aside))
	assert.Equal(t, RelationNone, Blocks(near, aside, fc.Position, fc.Epsilon))

}

func TestDrawSegOverlaps(t *testing.T) {

	span := func(rightDeg, leftDeg float64) *DrawSeg {
		ds := &DrawSeg{Right: deg(rightDeg), Left: deg(leftDeg)}
		ds.Scope = ds.Left - ds.Right
		return ds
	}

	assert.True(t, span(10, 30).Overlaps(span(20, 40)))
	assert.True(t, span(20, 40).Overlaps(span(10, 30)))
	assert.True(t, span(10, 40).Overlaps(span(20, 30)))
	assert.True(t, span(350, 10).Overlaps(span(5, 20)))

	// Touching at a single Angle isn't overlapping.
	assert.False(t, span(10, 20).Overlaps(span(20, 30)))
	assert.False(t, span(10, 20).Overlaps(span(30, 40)))
	assert.False(t, span(350, 10).Overlaps(span(20, 30)))

}

func TestRelationString(t *testing.T) {
	assert.Equal(t, "A blocks B", RelationABlocksB.String())
	assert.Equal(t, "none", RelationNone.String())
	assert.Equal(t, RelationNone, RelationNone.Invert())
}
