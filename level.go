package tetrabsp

import (
	"errors"
	"fmt"
)

// PartitionID identifies a Partition within a PartitionTree. IDs are dense, running from 0 to PartitionCount()-1.
type PartitionID int32

// NoPartition is the PartitionID used where there isn't one (i.e. behind a one-sided wall).
const NoPartition PartitionID = -1

// PartitionTree is the read-only view of a precomputed binary space partition that the visibility walk consumes.
// Implementations must not change while a frame is being walked; they're shared between Viewers without locking.
type PartitionTree interface {
	// PartitionContaining returns the convex partition the point lies in.
	PartitionContaining(point Vector) (PartitionID, bool)
	// BoundarySegments returns the ordered boundary segments of the partition. The slice must not be modified.
	BoundarySegments(id PartitionID) []Segment
	// NeighborAcross returns the partition on the far side of the segment, if there's one.
	NeighborAcross(seg *Segment) (PartitionID, bool)
	// PartitionCount returns the number of partitions in the tree.
	PartitionCount() int
}

// Side is the result of classifying a point against a Segment's line.
type Side int

const (
	SideOn    Side = iota // The point lies on the line (within an epsilon)
	SideFront             // The point lies to the right of V1 -> V2, facing into the Segment's partition
	SideBack              // The point lies to the left of V1 -> V2
)

// WallFlags describe the wall a Segment is a part of.
type WallFlags uint8

const (
	// WallTwoSided marks a wall with partitions on both sides that can be seen through (a window, a step).
	WallTwoSided WallFlags = 1 << iota
	// WallSolid marks a wall that blocks all visibility behind it, even if it has partitions on both sides.
	WallSolid
	// WallClosed marks a two-sided wall that is currently shut (a closed door); see ClosedWallPolicy.
	WallClosed
)

// Wall is a real line of the level (as opposed to a split that only exists to make partitions convex).
// Several Segments may share a Wall.
type Wall struct {
	Name       string
	Flags      WallFlags
	Properties *Properties
}

// NewWall creates a new Wall with the name and flags given.
func NewWall(name string, flags WallFlags) *Wall {
	return &Wall{
		Name:       name,
		Flags:      flags,
		Properties: NewProperties(),
	}
}

// IsSolid returns if the Wall blocks everything behind it.
func (wall *Wall) IsSolid() bool {
	return wall.Flags&WallSolid > 0
}

// IsClosed returns if the Wall is a two-sided wall that is currently shut.
func (wall *Wall) IsClosed() bool {
	return wall.Flags&WallClosed > 0
}

// Segment is one boundary edge of a Partition. Segments run clockwise around their partition, so the inside
// of the partition is on the right of V1 -> V2 (the Segment's front side).
type Segment struct {
	V1, V2    Vector
	Partition PartitionID // The Partition this Segment bounds
	Back      PartitionID // The Partition on the other side, or NoPartition for a one-sided wall
	Wall      *Wall       // The Wall this Segment is part of; nil for a partition-only split
	Index     int         // Position within the owning Partition's Segments
}

// Length returns the length of the Segment.
func (seg *Segment) Length() float64 {
	return seg.V2.Sub(seg.V1).Magnitude()
}

// Midpoint returns the point halfway between the Segment's ends.
func (seg *Segment) Midpoint() Vector {
	return seg.V1.Lerp(seg.V2, 0.5)
}

// PerpDistance returns the signed distance from the Segment's line to the point; it's negative on the front side.
func (seg *Segment) PerpDistance(point Vector) float64 {
	delta := seg.V2.Sub(seg.V1)
	length := delta.Magnitude()
	if length == 0 {
		return 0
	}
	return delta.Cross(point.Sub(seg.V1)) / length
}

// PointOnSide classifies the point against the Segment's infinite line. Points closer to the line than epsilon
// return SideOn.
func (seg *Segment) PointOnSide(point Vector, epsilon float64) Side {
	perp := seg.PerpDistance(point)
	if perp > epsilon {
		return SideBack
	} else if perp < -epsilon {
		return SideFront
	}
	return SideOn
}

// IsPortal returns if the Segment can be looked through into another partition.
func (seg *Segment) IsPortal() bool {
	return seg.Back != NoPartition && (seg.Wall == nil || !seg.Wall.IsSolid())
}

// NeighborSet represents a set of Partitions that are neighbors for any given Partition.
type NeighborSet = Set[PartitionID]

// Partition represents a convex leaf of the level's binary space partition.
type Partition struct {
	ID         PartitionID
	Name       string
	Segments   []Segment
	Neighbors  NeighborSet // Partitions reachable across one of the Segments
	Properties *Properties
}

// NewPartition creates a new, empty Partition.
func NewPartition(id PartitionID, name string) *Partition {
	return &Partition{
		ID:         id,
		Name:       name,
		Neighbors:  NeighborSet{},
		Properties: NewProperties(),
	}
}

// Contains returns if the point lies within the Partition (or on its boundary).
func (part *Partition) Contains(point Vector, epsilon float64) bool {

	if len(part.Segments) < 3 {
		return false
	}

	for i := range part.Segments {
		if part.Segments[i].PointOnSide(point, epsilon) == SideBack {
			return false
		}
	}

	return true

}

// Center returns the average of the Partition's vertices.
func (part *Partition) Center() Vector {
	center := Vector{}
	if len(part.Segments) == 0 {
		return center
	}
	for _, seg := range part.Segments {
		center = center.Add(seg.V1)
	}
	return center.Divide(float64(len(part.Segments)))
}

// NodeChild refers to either another Node or, with PartitionChildMask set, to a Partition.
type NodeChild uint32

// PartitionChildMask is set on a NodeChild that refers to a Partition rather than a Node.
const PartitionChildMask NodeChild = 0x80000000

// PartitionChild returns a NodeChild referring to the given Partition.
func PartitionChild(id PartitionID) NodeChild {
	return NodeChild(id) | PartitionChildMask
}

// Node is a splitting line of the level's binary space partition. Points to the right of the line (looking
// along Delta) descend into Front, points to the left into Back.
type Node struct {
	Origin Vector
	Delta  Vector
	Front  NodeChild
	Back   NodeChild
}

// Level is an in-memory PartitionTree. Nodes are optional; the root Node is the last one, like in Doom's NODES lump.
// Without Nodes, PartitionContaining checks each convex Partition in turn.
type Level struct {
	Partitions []*Partition
	Nodes      []Node
	// Points closer than Epsilon to a partition boundary count as inside it.
	Epsilon float64
}

// NewLevel creates a new, empty Level.
func NewLevel() *Level {
	return &Level{
		Partitions: []*Partition{},
		Epsilon:    0.0001,
	}
}

// Partition returns the Partition with the given ID, or nil if there's no such Partition.
func (level *Level) Partition(id PartitionID) *Partition {
	if id < 0 || int(id) >= len(level.Partitions) {
		return nil
	}
	return level.Partitions[id]
}

// FindPartition returns the first Partition with the given name, or nil if there isn't one.
func (level *Level) FindPartition(name string) *Partition {
	for _, part := range level.Partitions {
		if part.Name == name {
			return part
		}
	}
	return nil
}

// PartitionCount implements PartitionTree.
func (level *Level) PartitionCount() int {
	return len(level.Partitions)
}

// BoundarySegments implements PartitionTree.
func (level *Level) BoundarySegments(id PartitionID) []Segment {
	if part := level.Partition(id); part != nil {
		return part.Segments
	}
	return nil
}

// NeighborAcross implements PartitionTree.
func (level *Level) NeighborAcross(seg *Segment) (PartitionID, bool) {
	if seg.Back == NoPartition || level.Partition(seg.Back) == nil {
		return NoPartition, false
	}
	return seg.Back, true
}

// PartitionContaining implements PartitionTree.
func (level *Level) PartitionContaining(point Vector) (PartitionID, bool) {

	if len(level.Nodes) == 0 {
		for _, part := range level.Partitions {
			if part.Contains(point, level.Epsilon) {
				return part.ID, true
			}
		}
		return NoPartition, false
	}

	child := NodeChild(len(level.Nodes) - 1)

	// A well-formed tree is never deeper than its node count; anything more means a loop.
	for steps := 0; steps <= len(level.Nodes); steps++ {

		if child&PartitionChildMask > 0 {
			id := PartitionID(child &^ PartitionChildMask)
			if level.Partition(id) == nil {
				return NoPartition, false
			}
			return id, true
		}

		if int(child) >= len(level.Nodes) {
			return NoPartition, false
		}

		node := level.Nodes[child]
		if node.Delta.Cross(point.Sub(node.Origin)) <= 0 {
			child = node.Front
		} else {
			child = node.Back
		}

	}

	return NoPartition, false

}

// NeighborsWithinRange returns the Partitions reachable from the given one by crossing at most searchRange
// segments. For example, given the following level:
//
// # A - B - C - D - E - F
//
// If you were to check NeighborsWithinRange(E, 2), it would return F, D, and C (and E itself, as D and F
// neighbor it).
func (level *Level) NeighborsWithinRange(id PartitionID, searchRange int) NeighborSet {

	out := NeighborSet{}

	part := level.Partition(id)

	if part == nil || searchRange <= 0 {
		return out
	}

	out.Combine(part.Neighbors)

	for next := range part.Neighbors {
		out.Combine(level.NeighborsWithinRange(next, searchRange-1))
	}

	return out

}

// SetSharedWall puts the Wall on every Segment between the two Partitions, on both sides, and returns the
// number of Segments changed.
func (level *Level) SetSharedWall(a, b PartitionID, wall *Wall) int {

	count := 0

	for _, pair := range [2][2]PartitionID{{a, b}, {b, a}} {
		part := level.Partition(pair[0])
		if part == nil {
			continue
		}
		for s := range part.Segments {
			if part.Segments[s].Back == pair[1] {
				part.Segments[s].Wall = wall
				count++
			}
		}
	}

	return count

}

// Validate checks the Level for data the visibility walk would have to skip: degenerate segments,
// segments leading back into their own partition or out of range, and neighbors that don't lead back.
// All problems found are joined into the returned error.
func (level *Level) Validate() error {

	var errs []error

	for i, part := range level.Partitions {

		if part.ID != PartitionID(i) {
			errs = append(errs, fmt.Errorf("partition %d (%q) has ID %d", i, part.Name, part.ID))
		}

		for s := range part.Segments {

			seg := &part.Segments[s]

			if seg.Length() == 0 {
				errs = append(errs, fmt.Errorf("%w: partition %q segment %d has zero length", ErrMalformedSegment, part.Name, s))
			}

			if seg.Back == NoPartition {
				continue
			}

			if seg.Back == part.ID {
				errs = append(errs, fmt.Errorf("%w: partition %q segment %d neighbors its own partition", ErrMalformedSegment, part.Name, s))
				continue
			}

			other := level.Partition(seg.Back)
			if other == nil {
				errs = append(errs, fmt.Errorf("%w: partition %q segment %d neighbors missing partition %d", ErrMalformedSegment, part.Name, s, seg.Back))
				continue
			}

			reciprocal := false
			for o := range other.Segments {
				if other.Segments[o].Back == part.ID {
					reciprocal = true
					break
				}
			}

			if !reciprocal {
				errs = append(errs, fmt.Errorf("%w: partition %q segment %d leads to %q, which doesn't lead back", ErrMalformedSegment, part.Name, s, other.Name))
			}

		}

	}

	return errors.Join(errs...)

}
