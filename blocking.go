package tetrabsp

// Relation is the outcome of testing two draw-segments against each other.
type Relation int

const (
	RelationNone     Relation = iota // Neither hides the other
	RelationABlocksB                 // A is nearer where they overlap, so it has to be resolved first
	RelationBBlocksA                 // B is nearer where they overlap
)

func (r Relation) String() string {
	switch r {
	case RelationABlocksB:
		return "A blocks B"
	case RelationBBlocksA:
		return "B blocks A"
	}
	return "none"
}

// Invert returns the Relation as seen with A and B swapped.
func (r Relation) Invert() Relation {
	switch r {
	case RelationABlocksB:
		return RelationBBlocksA
	case RelationBBlocksA:
		return RelationABlocksB
	}
	return RelationNone
}

// Blocks decides which of the two draw-segments must be resolved first as seen from the camera.
// Segments of the same partition never occlude each other (partitions are convex), and neither do
// segments whose view spans don't overlap.
func Blocks(a, b *DrawSeg, camera Vector, epsilon float64) Relation {
	if a.Partition == b.Partition || !a.Overlaps(b) {
		return RelationNone
	}
	return SegmentRelation(a.Seg, b.Seg, camera, epsilon)
}

// SegmentRelation decides which of the two segments is nearer to the camera, assuming their view spans overlap.
// Each segment's infinite line is tried in turn as a separator between the other segment and the camera.
// If neither line separates them (collinear segments), or the two lines disagree (crossing segments, which a
// valid BSP never produces), the result is RelationNone, which can only ever cost a redundant draw.
// Swapping a and b always returns the inverted Relation.
func SegmentRelation(a, b *Segment, camera Vector, epsilon float64) Relation {

	byA := lineVerdict(a, b, camera, epsilon)
	byB := -lineVerdict(b, a, camera, epsilon)

	verdict := byA
	if verdict == 0 {
		verdict = byB
	} else if byB != 0 && byB != byA {
		verdict = 0
	}

	switch verdict {
	case 1:
		return RelationABlocksB
	case -1:
		return RelationBBlocksA
	}
	return RelationNone

}

// lineVerdict uses line's infinite line to order the two segments: 1 if line is nearer, -1 if other is, or 0
// if line's line can't tell (other straddles or lies on it, or the camera lies on it).
func lineVerdict(line, other *Segment, camera Vector, epsilon float64) int {

	cameraSide := line.PointOnSide(camera, epsilon)
	if cameraSide == SideOn {
		return 0
	}

	s1 := line.PointOnSide(other.V1, epsilon)
	s2 := line.PointOnSide(other.V2, epsilon)

	side := s1
	if side == SideOn {
		side = s2
	} else if s2 != SideOn && s2 != s1 {
		return 0
	}

	if side == SideOn {
		return 0
	}

	// Other lies between the camera and the line
	if side == cameraSide {
		return -1
	}
	return 1

}
