// Package tetrabsp is a visibility core for real-time rendering of indoor levels split up by a binary space
// partition (BSP). Every frame, it walks outwards from the partition the camera stands in, collecting the
// segments that bound each partition as draw-segments, ordering them so that nearer segments always come before
// the ones they hide, and tracking which view directions are already blocked by solid walls. Partitions are
// handed to a Renderer front to back, and partitions hidden entirely behind solid walls are never reached.
//
// The walk only ever uses 2D angle and line-side tests, so it's cheap enough to run every frame; it prunes at the
// granularity of whole segments and partitions, leaving exact hidden-surface removal to the rasterizer's depth test.
package tetrabsp
