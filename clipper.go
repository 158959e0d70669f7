package tetrabsp

import "sort"

// angleRange is an inclusive, non-wrapping range of Angles (lo <= hi).
type angleRange struct {
	lo, hi Angle
}

// SolidRange is a solid angular interval, reported from the right (clockwise) end to the left end.
type SolidRange struct {
	Right, Left Angle
}

// Clipper is the angular occlusion buffer for a single view. It tracks which horizontal view
// directions are already blocked by nearer solid walls, as a sorted set of disjoint Angle ranges.
// Ranges that overlap or touch are merged when marked, so a contiguous solid arc is always
// stored as a single range (or two, if it straddles the zero Angle).
type Clipper struct {
	ranges    []angleRange
	maxRanges int
}

// NewClipper creates a new Clipper that can store up to maxRanges disjoint solid ranges.
// A maxRanges value of 0 or less means there's no limit.
func NewClipper(maxRanges int) *Clipper {
	return &Clipper{
		ranges:    make([]angleRange, 0, 32),
		maxRanges: maxRanges,
	}
}

// Clear empties the Clipper; this should be called once per frame before the walk begins.
func (c *Clipper) Clear() {
	c.ranges = c.ranges[:0]
}

// MarkSolid unions the interval sweeping counter-clockwise from right to left into the solid set.
// If storing the interval would need more ranges than the Clipper is allowed, the
// interval (or the part of it that didn't fit) is dropped and MarkSolid returns false.
// Dropping a mark never hides anything that is visible; it only costs overdraw.
func (c *Clipper) MarkSolid(left, right Angle) bool {
	if right <= left {
		return c.insert(right, left)
	}
	// The interval wraps around the zero Angle.
	ok := c.insert(right, AngleMax)
	return c.insert(0, left) && ok
}

// IsFullyCovered returns true if the entire interval sweeping counter-clockwise from right to left
// is already solid. Partial coverage returns false.
func (c *Clipper) IsFullyCovered(left, right Angle) bool {
	if right <= left {
		return c.covers(right, left)
	}
	return c.covers(right, AngleMax) && c.covers(0, left)
}

// IsFull returns if the whole circle of view directions is solid.
func (c *Clipper) IsFull() bool {
	return len(c.ranges) == 1 && c.ranges[0].lo == 0 && c.ranges[0].hi == AngleMax
}

// Len returns the number of disjoint ranges currently stored.
func (c *Clipper) Len() int {
	return len(c.ranges)
}

// Ranges returns a copy of the solid ranges. A range straddling the zero Angle is returned as one
// SolidRange, with Right greater than Left.
func (c *Clipper) Ranges() []SolidRange {

	out := make([]SolidRange, 0, len(c.ranges))

	for _, r := range c.ranges {
		out = append(out, SolidRange{Right: r.lo, Left: r.hi})
	}

	// Stitch the two halves of a wrapping range back together
	if n := len(out); n > 1 && out[0].Right == 0 && out[n-1].Left == AngleMax {
		out[0].Right = out[n-1].Right
		out = out[:n-1]
	}

	return out

}

func (c *Clipper) covers(lo, hi Angle) bool {
	// Last range starting at or before lo
	i := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].lo > lo }) - 1
	return i >= 0 && c.ranges[i].hi >= hi
}

func (c *Clipper) insert(lo, hi Angle) bool {

	// First range that ends at or after lo - 1, meaning it touches or overlaps the new range
	i := sort.Search(len(c.ranges), func(i int) bool {
		return lo == 0 || c.ranges[i].hi >= lo-1
	})

	j := i
	for j < len(c.ranges) && (hi == AngleMax || c.ranges[j].lo <= hi+1) {
		j++
	}

	if j == i {

		if c.maxRanges > 0 && len(c.ranges) >= c.maxRanges {
			return false
		}

		c.ranges = append(c.ranges, angleRange{})
		copy(c.ranges[i+1:], c.ranges[i:])
		c.ranges[i] = angleRange{lo: lo, hi: hi}
		return true

	}

	merged := angleRange{lo: lo, hi: hi}
	if c.ranges[i].lo < merged.lo {
		merged.lo = c.ranges[i].lo
	}
	if c.ranges[j-1].hi > merged.hi {
		merged.hi = c.ranges[j-1].hi
	}

	c.ranges[i] = merged
	c.ranges = append(c.ranges[:i+1], c.ranges[j:]...)

	return true

}
