package tetrabsp

type drawSegState uint8

const (
	drawSegDead drawSegState = iota
	drawSegFree
	drawSegBlocked
)

// DrawSeg is a per-frame candidate for rendering: a Segment that's at least partly visible, along with its
// clipped view span and the draw-segments it must wait for or that wait for it.
// DrawSegs live in a LineSet's arena and are addressed by index; they never outlive the frame.
type DrawSeg struct {
	Seg       *Segment
	Partition PartitionID // The Partition the Segment bounds
	Left      Angle       // Left (counter-clockwise) end of the clipped view span
	Right     Angle       // Right (clockwise) end of the clipped view span
	Scope     Angle       // Width of the clipped view span (Left - Right)
	Distance  float64     // Distance from the camera to the Segment's midpoint

	blockedBy int
	blocks    []int32
	state     drawSegState
	slot      int // Index in the LineSet's blocked list while blocked
}

// BlockedBy returns how many still-undrawn draw-segments occlude this one.
func (ds *DrawSeg) BlockedBy() int {
	return ds.blockedBy
}

// Blocks returns how many draw-segments this one occludes.
func (ds *DrawSeg) Blocks() int {
	return len(ds.blocks)
}

// Overlaps returns if the two draw-segments' view spans share more than a single Angle.
func (ds *DrawSeg) Overlaps(other *DrawSeg) bool {
	return other.Right-ds.Right < ds.Scope || ds.Right-other.Right < other.Scope
}
