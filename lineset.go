package tetrabsp

import (
	"slices"
	"sort"
)

// LineSet is the per-frame graph of draw-segments. Draw-segments that nothing undrawn occludes are "free" and
// kept ordered by distance; the rest are "blocked" until every draw-segment in front of them has been removed.
// Draw-segments are stored in a fixed-size arena and refer to each other by index, so a frame allocates nothing
// once the arena's blocks lists have grown to their working size.
type LineSet struct {
	segs    []DrawSeg
	unused  []int32 // Arena slots not in use, as a stack
	free    []int32 // Sorted by descending distance; the nearest is last
	blocked []int32 // Unordered
	scratch []int32

	clipper *Clipper
	peak    int
}

// NewLineSet creates a new LineSet that can hold up to capacity draw-segments at once. Segments fully hidden in
// the Clipper given are rejected when added; clipper may be nil.
func NewLineSet(capacity int, clipper *Clipper) *LineSet {

	ls := &LineSet{
		segs:    make([]DrawSeg, capacity),
		unused:  make([]int32, 0, capacity),
		free:    make([]int32, 0, capacity),
		blocked: make([]int32, 0, capacity),
		clipper: clipper,
	}

	ls.Reset()

	return ls

}

// Reset empties the LineSet; call it once per frame.
func (ls *LineSet) Reset() {

	ls.free = ls.free[:0]
	ls.blocked = ls.blocked[:0]
	ls.unused = ls.unused[:0]

	for i := len(ls.segs) - 1; i >= 0; i-- {
		ls.segs[i].state = drawSegDead
		ls.unused = append(ls.unused, int32(i))
	}

	ls.peak = 0

}

// Len returns the number of live draw-segments.
func (ls *LineSet) Len() int {
	return len(ls.free) + len(ls.blocked)
}

// FreeLen returns the number of draw-segments that aren't blocked.
func (ls *LineSet) FreeLen() int {
	return len(ls.free)
}

// BlockedLen returns the number of draw-segments waiting on nearer ones.
func (ls *LineSet) BlockedLen() int {
	return len(ls.blocked)
}

// Cap returns the most draw-segments the LineSet can hold at once.
func (ls *LineSet) Cap() int {
	return len(ls.segs)
}

// Peak returns the most draw-segments that were alive at once since the last Reset.
func (ls *LineSet) Peak() int {
	return ls.peak
}

// TryAdd makes the Segment a draw-segment if any of it can be seen: it has to face the camera, fall at least
// partly within the frustum, and not be entirely behind solid walls already marked in the Clipper.
// The new draw-segment is tested against every live one to find which of them it hides or is hidden by.
// A rejected Segment returns nil with no error; ErrLineSetFull is returned if there's no room left.
// The returned DrawSeg is only valid until the next call that changes the LineSet.
func (ls *LineSet) TryAdd(seg *Segment, fc *FrameContext) (*DrawSeg, error) {

	left, right, ok := fc.ClipSegment(seg)
	if !ok {
		return nil, nil
	}

	if ls.clipper != nil && ls.clipper.IsFullyCovered(left, right) {
		return nil, nil
	}

	if len(ls.unused) == 0 {
		return nil, ErrLineSetFull
	}

	id := ls.unused[len(ls.unused)-1]
	ls.unused = ls.unused[:len(ls.unused)-1]

	ds := &ls.segs[id]
	*ds = DrawSeg{
		Seg:       seg,
		Partition: seg.Partition,
		Left:      left,
		Right:     right,
		Scope:     left - right,
		Distance:  fc.Position.Distance(seg.Midpoint()),
		blocks:    ds.blocks[:0],
	}

	ls.scratch = ls.scratch[:0]

	link := func(other int32) {
		o := &ls.segs[other]
		switch Blocks(ds, o, fc.Position, fc.Epsilon) {
		case RelationABlocksB:
			ds.blocks = append(ds.blocks, other)
			o.blockedBy++
			if o.state == drawSegFree {
				ls.scratch = append(ls.scratch, other)
			}
		case RelationBBlocksA:
			o.blocks = append(o.blocks, id)
			ds.blockedBy++
		}
	}

	for _, other := range ls.free {
		link(other)
	}
	for _, other := range ls.blocked {
		link(other)
	}

	// Free draw-segments the new one hides have to wait for it now
	for _, other := range ls.scratch {
		if i := slices.Index(ls.free, other); i >= 0 {
			ls.free = slices.Delete(ls.free, i, i+1)
		}
		ls.pushBlocked(other)
	}

	if ds.blockedBy == 0 {
		ls.pushFree(id)
	} else {
		ls.pushBlocked(id)
	}

	if n := ls.Len(); n > ls.peak {
		ls.peak = n
	}

	return ds, nil

}

// RemoveNearestFree takes the nearest free draw-segment out of the LineSet and returns a copy of it. Every
// draw-segment it was hiding has one blocker less, and those left with none become free.
// ok is false if no draw-segment is free.
func (ls *LineSet) RemoveNearestFree() (DrawSeg, bool) {

	if len(ls.free) == 0 {
		return DrawSeg{}, false
	}

	id := ls.free[len(ls.free)-1]
	ls.free = ls.free[:len(ls.free)-1]

	ds := &ls.segs[id]

	for _, other := range ds.blocks {
		o := &ls.segs[other]
		o.blockedBy--
		if o.blockedBy == 0 && o.state == drawSegBlocked {
			ls.removeBlocked(other)
			ls.pushFree(other)
		}
	}

	out := *ds
	out.blocks = nil
	out.state = drawSegDead

	ds.state = drawSegDead
	ls.unused = append(ls.unused, id)

	return out, true

}

// ReleaseNearestBlocked forces the nearest blocked draw-segment to become free, dropping everything that
// blocks it. It's only needed when the blocked draw-segments all wait on each other, which a valid BSP
// never causes. It returns false if nothing is blocked.
func (ls *LineSet) ReleaseNearestBlocked() bool {

	if len(ls.blocked) == 0 {
		return false
	}

	nearest := ls.blocked[0]
	for _, id := range ls.blocked[1:] {
		if ls.segs[id].Distance < ls.segs[nearest].Distance {
			nearest = id
		}
	}

	detach := func(id int32) {
		o := &ls.segs[id]
		if i := slices.Index(o.blocks, nearest); i >= 0 {
			o.blocks = slices.Delete(o.blocks, i, i+1)
		}
	}

	for _, id := range ls.free {
		detach(id)
	}
	for _, id := range ls.blocked {
		detach(id)
	}

	ls.segs[nearest].blockedBy = 0
	ls.removeBlocked(nearest)
	ls.pushFree(nearest)

	return true

}

func (ls *LineSet) pushFree(id int32) {
	ds := &ls.segs[id]
	ds.state = drawSegFree
	// free is sorted by descending distance; equal distances go nearer the end, so they're removed first.
	i := sort.Search(len(ls.free), func(i int) bool {
		return ls.segs[ls.free[i]].Distance < ds.Distance
	})
	ls.free = slices.Insert(ls.free, i, id)
}

func (ls *LineSet) pushBlocked(id int32) {
	ds := &ls.segs[id]
	ds.state = drawSegBlocked
	ds.slot = len(ls.blocked)
	ls.blocked = append(ls.blocked, id)
}

func (ls *LineSet) removeBlocked(id int32) {
	slot := ls.segs[id].slot
	last := ls.blocked[len(ls.blocked)-1]
	ls.blocked[slot] = last
	ls.segs[last].slot = slot
	ls.blocked = ls.blocked[:len(ls.blocked)-1]
}
