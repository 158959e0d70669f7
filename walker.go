package tetrabsp

import (
	"errors"
	"fmt"
)

// WalkState is the stage a Walker is at within a frame.
type WalkState int

const (
	WalkIdle     WalkState = iota // Reset, not seeded yet
	WalkSeeding                   // Feeding the camera's partition into the LineSet
	WalkDraining                  // Removing draw-segments nearest first and expanding through portals
	WalkDone                      // The frame's visitation order is final
)

func (s WalkState) String() string {
	switch s {
	case WalkIdle:
		return "idle"
	case WalkSeeding:
		return "seeding"
	case WalkDraining:
		return "draining"
	case WalkDone:
		return "done"
	}
	return fmt.Sprintf("WalkState(%d)", int(s))
}

// Walker walks a PartitionTree outwards from the camera, one frame at a time, handing partitions to a
// Renderer nearest first. A Walker holds all the per-frame state for one view (its LineSet, Clipper and
// visited stamps); views that are walked independently, like split-screen players or a mirror, each need
// their own Walker. Walkers may share the PartitionTree.
type Walker struct {
	tree   PartitionTree
	config Config

	Lines   *LineSet
	Clipper *Clipper

	frame    FrameContext
	stamp    uint32
	visited  []uint32
	rendered []uint32
	order    []PartitionID
	state    WalkState
	camera   PartitionID

	DebugInfo DebugInfo
}

// NewWalker creates a new Walker for the PartitionTree given.
func NewWalker(tree PartitionTree, config Config) *Walker {

	clipper := NewClipper(config.MaxSolidRanges)

	return &Walker{
		tree:    tree,
		config:  config,
		Clipper: clipper,
		Lines:   NewLineSet(config.MaxDrawSegs, clipper),
		camera:  NoPartition,
	}

}

// State returns the Walker's current WalkState.
func (w *Walker) State() WalkState {
	return w.state
}

// Order returns the partitions handed to the Renderer so far this frame, in order.
func (w *Walker) Order() []PartitionID {
	return w.order
}

// CameraPartition returns the partition the camera was found in, or NoPartition.
func (w *Walker) CameraPartition() PartitionID {
	return w.camera
}

// Frame returns the FrameContext the Walker is walking.
func (w *Walker) Frame() FrameContext {
	return w.frame
}

// Visited returns if the partition's segments were fed into the LineSet this frame.
func (w *Walker) Visited(id PartitionID) bool {
	return id >= 0 && int(id) < len(w.visited) && w.visited[id] == w.stamp
}

// Reset clears all per-frame state and prepares to walk the frame described by the FrameContext.
func (w *Walker) Reset(fc FrameContext) {

	w.frame = fc
	w.Lines.Reset()
	w.Clipper.Clear()
	w.order = w.order[:0]
	w.state = WalkIdle
	w.camera = NoPartition
	w.DebugInfo = DebugInfo{}

	if n := w.tree.PartitionCount(); len(w.visited) != n {
		w.visited = make([]uint32, n)
		w.rendered = make([]uint32, n)
	}

	// Every Reset gets a fresh stamp, whatever fc.Frame says; only wrapping around wipes the old ones.
	w.stamp++
	if w.stamp == 0 {
		clear(w.visited)
		clear(w.rendered)
		w.stamp = 1
	}

}

// Seed finds the partition the camera is in and feeds its segments into the LineSet. It returns
// ErrNoCameraPartition if there's no such partition, in which case the frame is done and empty.
func (w *Walker) Seed() error {

	w.state = WalkSeeding

	pos := w.frame.Position

	id, ok := w.tree.PartitionContaining(pos)
	if !ok || id < 0 || int(id) >= len(w.visited) {
		w.state = WalkDone
		return fmt.Errorf("%w: position (%.2f, %.2f)", ErrNoCameraPartition, pos.X, pos.Y)
	}

	w.camera = id
	w.visit(id)

	// A camera standing right on a portal sees it edge-on, so it would never be removed and expanded.
	// Feed the partition on the other side directly instead.
	segs := w.tree.BoundarySegments(id)
	for i := range segs {
		seg := &segs[i]
		if w.isSolid(seg) {
			continue
		}
		if ClosestPointOnLine(seg.V1, seg.V2, pos).Distance(pos) <= w.frame.Epsilon {
			w.expand(seg)
		}
	}

	w.state = WalkDraining

	return nil

}

// Step removes the nearest free draw-segment and processes it: its partition is rendered, then either its
// span is marked solid or the partition behind it is expanded. Step returns false once the frame is done.
func (w *Walker) Step(r Renderer) bool {

	if w.state != WalkDraining {
		return false
	}

	// Once every direction in view is solid, whatever is left would only be culled.
	if w.config.CullCovered && w.Lines.Len() > 0 && w.viewCovered() {
		w.DebugInfo.CulledDrawSegs += w.Lines.Len()
		w.finish()
		w.Lines.Reset()
		return false
	}

	ds, ok := w.Lines.RemoveNearestFree()

	if !ok {

		if w.Lines.Len() == 0 {
			w.finish()
			return false
		}

		w.degrade(fmt.Errorf("%w: %d draw-segments left", ErrBlockingCycle, w.Lines.Len()))
		w.Lines.ReleaseNearestBlocked()
		return true

	}

	if w.config.CullCovered && w.Clipper.IsFullyCovered(ds.Left, ds.Right) {
		w.DebugInfo.CulledDrawSegs++
		return true
	}

	w.render(ds.Partition, r)

	if w.isSolid(ds.Seg) {
		if !w.Clipper.MarkSolid(ds.Left, ds.Right) {
			w.degrade(fmt.Errorf("solid range limit of %d reached", w.config.MaxSolidRanges))
		}
		return true
	}

	w.expand(ds.Seg)

	return true

}

// Run drains the LineSet until the frame is done.
func (w *Walker) Run(r Renderer) {
	for w.Step(r) {
	}
}

func (w *Walker) finish() {
	w.state = WalkDone
	w.DebugInfo.PeakDrawSegs = w.Lines.Peak()
	w.DebugInfo.SolidRanges = w.Clipper.Len()
}

func (w *Walker) viewCovered() bool {
	return w.Clipper.IsFull() || w.Clipper.IsFullyCovered(w.frame.ClipLeft, w.frame.ClipRight)
}

// isSolid returns if nothing can be seen through the segment.
func (w *Walker) isSolid(seg *Segment) bool {

	if _, ok := w.tree.NeighborAcross(seg); !ok {
		return true
	}

	if seg.Wall != nil {
		if seg.Wall.IsSolid() {
			return true
		}
		if seg.Wall.IsClosed() && w.config.ClosedWalls == ClosedWallsOcclude {
			return true
		}
	}

	return false

}

// expand feeds the partition behind the segment into the LineSet, if it hasn't been already.
func (w *Walker) expand(seg *Segment) {

	back, ok := w.tree.NeighborAcross(seg)
	if !ok {
		return
	}

	if back == seg.Partition || back < 0 || int(back) >= len(w.visited) {
		w.degrade(fmt.Errorf("%w: segment %d of partition %d leads to partition %d", ErrMalformedSegment, seg.Index, seg.Partition, back))
		return
	}

	if w.visited[back] == w.stamp || w.DebugInfo.Truncated {
		return
	}

	w.visit(back)

}

func (w *Walker) visit(id PartitionID) {

	w.visited[id] = w.stamp
	w.DebugInfo.VisitedPartitions++

	segs := w.tree.BoundarySegments(id)

	for i := range segs {

		seg := &segs[i]

		if seg.V1.Equals(seg.V2) {
			w.degrade(fmt.Errorf("%w: segment %d of partition %d has zero length", ErrMalformedSegment, i, id))
			continue
		}

		if seg.Partition != id {
			w.degrade(fmt.Errorf("%w: segment %d of partition %d claims partition %d", ErrMalformedSegment, i, id, seg.Partition))
			continue
		}

		ds, err := w.Lines.TryAdd(seg, &w.frame)

		if errors.Is(err, ErrLineSetFull) {
			w.DebugInfo.Truncated = true
			w.degrade(fmt.Errorf("%w (%d)", err, w.Lines.Cap()))
			return
		}

		if ds != nil {
			w.DebugInfo.AddedDrawSegs++
		} else {
			w.DebugInfo.RejectedDrawSegs++
		}

	}

}

func (w *Walker) render(id PartitionID, r Renderer) {

	if w.rendered[id] == w.stamp {
		return
	}

	w.rendered[id] = w.stamp
	w.order = append(w.order, id)
	w.DebugInfo.RenderedPartitions++

	if r != nil {
		r.RenderPartition(id)
	}

}

func (w *Walker) degrade(err error) {
	w.DebugInfo.Degraded = true
	w.DebugInfo.ProblemCount++
	if w.DebugInfo.Problem == nil {
		w.DebugInfo.Problem = err
	}
}
