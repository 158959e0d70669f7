package tetrabsp

import (
	"errors"
	"fmt"
	"math"
)

// builderGrid is the precision vertex positions are snapped to when matching shared edges.
const builderGrid = 1e-4

type vertexKey [2]int64

func keyOf(v Vector) vertexKey {
	return vertexKey{int64(math.Round(v.X / builderGrid)), int64(math.Round(v.Y / builderGrid))}
}

type edgeKey struct {
	a, b vertexKey
}

// undirected returns the key with its ends in a fixed order, so both directions of an edge map to the same key.
func (k edgeKey) undirected() edgeKey {
	if k.b[0] < k.a[0] || (k.b[0] == k.a[0] && k.b[1] < k.a[1]) {
		return edgeKey{k.b, k.a}
	}
	return k
}

type builderPartition struct {
	name   string
	points []Vector
}

// LevelBuilder assembles a Level out of convex polygons. Edges that two polygons share exactly become
// portals between them; all other edges become one-sided, solid walls. SetEdge can put a Wall on any
// edge (a window, a door, or a solid divider between two partitions).
type LevelBuilder struct {
	partitions []builderPartition
	edgeWalls  map[edgeKey]*Wall
}

// NewLevelBuilder creates a new, empty LevelBuilder.
func NewLevelBuilder() *LevelBuilder {
	return &LevelBuilder{
		edgeWalls: map[edgeKey]*Wall{},
	}
}

// AddPartition adds a convex polygon as a new Partition and returns the ID it will have in the built Level.
// The points may be given in either winding order.
func (builder *LevelBuilder) AddPartition(name string, points ...Vector) PartitionID {

	pts := append([]Vector(nil), points...)

	// Segments run clockwise, so flip counter-clockwise polygons (positive area).
	if signedArea(pts) > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	builder.partitions = append(builder.partitions, builderPartition{name: name, points: pts})
	return PartitionID(len(builder.partitions) - 1)

}

// SetEdge assigns a Wall to the edge between the two points, in both directions.
func (builder *LevelBuilder) SetEdge(a, b Vector, wall *Wall) {
	builder.edgeWalls[edgeKey{keyOf(a), keyOf(b)}.undirected()] = wall
}

// Build creates the Level. It returns an error if a polygon has fewer than three points or isn't convex.
func (builder *LevelBuilder) Build() (*Level, error) {

	level := NewLevel()

	type segRef struct {
		part  PartitionID
		index int
	}

	directed := map[edgeKey]segRef{}

	var errs []error

	for i, bp := range builder.partitions {

		part := NewPartition(PartitionID(i), bp.name)
		level.Partitions = append(level.Partitions, part)

		if len(bp.points) < 3 {
			errs = append(errs, fmt.Errorf("partition %q has %d points; at least 3 are needed", bp.name, len(bp.points)))
			continue
		}

		if !isConvex(bp.points) {
			errs = append(errs, fmt.Errorf("partition %q isn't convex", bp.name))
			continue
		}

		for p := range bp.points {
			v1 := bp.points[p]
			v2 := bp.points[(p+1)%len(bp.points)]
			part.Segments = append(part.Segments, Segment{
				V1:        v1,
				V2:        v2,
				Partition: part.ID,
				Back:      NoPartition,
				Index:     p,
			})
			directed[edgeKey{keyOf(v1), keyOf(v2)}] = segRef{part.ID, p}
		}

	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for _, part := range level.Partitions {

		for s := range part.Segments {

			seg := &part.Segments[s]
			key := edgeKey{keyOf(seg.V1), keyOf(seg.V2)}

			if other, exists := directed[edgeKey{key.b, key.a}]; exists && other.part != part.ID {
				seg.Back = other.part
				part.Neighbors.Add(other.part)
			}

			if wall, exists := builder.edgeWalls[key.undirected()]; exists {
				seg.Wall = wall
			} else if seg.Back == NoPartition {
				seg.Wall = NewWall(fmt.Sprintf("%s:%d", part.Name, s), WallSolid)
			}

		}

	}

	return level, nil

}

// signedArea returns the polygon's signed area; it's positive for counter-clockwise winding.
func signedArea(points []Vector) float64 {
	area := 0.0
	for i := range points {
		area += points[i].Cross(points[(i+1)%len(points)])
	}
	return area / 2
}

// isConvex returns if the clockwise polygon never turns left. Collinear runs are allowed.
func isConvex(points []Vector) bool {
	n := len(points)
	for i := range points {
		a, b, c := points[i], points[(i+1)%n], points[(i+2)%n]
		if b.Sub(a).Cross(c.Sub(b)) > builderGrid {
			return false
		}
	}
	return signedArea(points) < 0
}
