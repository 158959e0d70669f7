package tetrabsp

import (
	"fmt"
	"time"
)

// FrameContext carries everything about the current view that the walk needs, so nothing about the camera
// is kept in globals. Each view (a split-screen player, a mirror) walks with its own FrameContext.
type FrameContext struct {
	Position    Vector
	ViewAngle   Angle  // Direction the camera faces
	FieldOfView Angle  // Horizontal field of view
	ClipLeft    Angle  // Absolute Angle of the left edge of the view frustum
	ClipRight   Angle  // Absolute Angle of the right edge of the view frustum
	Frame       uint32 // Frame number, for logging and debugging
	Epsilon     float64
}

// NewFrameContext creates a FrameContext. clipLeft and clipRight are the frustum's extents to either side of the
// view direction; if either is 0, half the field of view is used for it. The total frustum width must be
// greater than 0 and less than 180 degrees.
func NewFrameContext(position Vector, viewAngle, fieldOfView, clipLeft, clipRight Angle, frame uint32) (FrameContext, error) {

	if clipLeft == 0 {
		clipLeft = fieldOfView / 2
	}
	if clipRight == 0 {
		clipRight = fieldOfView / 2
	}

	width := uint64(clipLeft) + uint64(clipRight)

	if width == 0 || width >= uint64(Angle180) {
		return FrameContext{}, fmt.Errorf("%w: view frustum must be wider than 0 and narrower than 180 degrees, got %.2f",
			ErrInvalidConfig, float64(width)/angleTurn*360)
	}

	return FrameContext{
		Position:    position,
		ViewAngle:   viewAngle,
		FieldOfView: fieldOfView,
		ClipLeft:    viewAngle + clipLeft,
		ClipRight:   viewAngle - clipRight,
		Frame:       frame,
		Epsilon:     0.0001,
	}, nil

}

// FrustumWidth returns the Angle between the frustum's right and left edges.
func (fc *FrameContext) FrustumWidth() Angle {
	return fc.ClipLeft - fc.ClipRight
}

// ClipSegment returns the view span of the Segment, clipped to the frustum. ok is false if the Segment faces
// away from the camera, is seen edge-on, or lies entirely outside the frustum.
func (fc *FrameContext) ClipSegment(seg *Segment) (left, right Angle, ok bool) {

	left = PointToAngle(fc.Position, seg.V1)
	right = PointToAngle(fc.Position, seg.V2)

	span := left - right

	// Back side, or edge-on
	if span == 0 || span >= Angle180 {
		return 0, 0, false
	}

	width := fc.FrustumWidth()

	if t := left - fc.ClipRight; t > width {
		if t-width >= span {
			return 0, 0, false
		}
		left = fc.ClipLeft
	}

	if t := fc.ClipLeft - right; t > width {
		if t-width >= span {
			return 0, 0, false
		}
		right = fc.ClipRight
	}

	if left == right {
		return 0, 0, false
	}

	return left, right, true

}

// Renderer receives the partitions found visible, nearest first. RenderPartition is called at most once per
// partition per frame.
type Renderer interface {
	RenderPartition(id PartitionID)
}

// RendererFunc adapts a function into a Renderer.
type RendererFunc func(id PartitionID)

// RenderPartition implements Renderer.
func (f RendererFunc) RenderPartition(id PartitionID) {
	f(id)
}

// DebugInfo holds statistics about the last walked frame. They're reset when a new frame begins.
type DebugInfo struct {
	FrameTime          time.Duration // CPU time spent in BeginFrame and RunToCompletion
	VisitedPartitions  int           // Partitions whose segments were fed into the LineSet
	RenderedPartitions int           // Partitions handed to the Renderer
	AddedDrawSegs      int           // Segments that became draw-segments
	RejectedDrawSegs   int           // Segments turned away (facing away, outside the frustum, or already hidden)
	CulledDrawSegs     int           // Draw-segments dropped because they were hidden by the time they came up
	PeakDrawSegs       int           // Most draw-segments alive at once
	SolidRanges        int           // Solid ranges in the Clipper at the end of the frame
	Truncated          bool          // If expansion stopped early because the LineSet was full
	Degraded           bool          // If anything had to be skipped or forced this frame
	ProblemCount       int           // Number of problems that degraded the frame
	Problem            error         // The first problem that degraded the frame
}
