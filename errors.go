package tetrabsp

import "errors"

var (
	// ErrNoCameraPartition is returned when the partition containing the camera can't be located.
	// The frame is skipped; nothing is handed to the renderer.
	ErrNoCameraPartition = errors.New("tetrabsp: camera is not inside any partition")

	// ErrLineSetFull is returned when a LineSet has no room for another draw-segment this frame.
	ErrLineSetFull = errors.New("tetrabsp: draw-segment limit reached")

	// ErrBlockingCycle is reported when the remaining draw-segments all block each other, which only
	// happens with overlapping or intersecting partition geometry.
	ErrBlockingCycle = errors.New("tetrabsp: blocking cycle between draw-segments")

	// ErrMalformedSegment is reported for segments that are skipped because they can't be walked,
	// like zero-length segments or segments whose neighbor is their own partition.
	ErrMalformedSegment = errors.New("tetrabsp: malformed segment")

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("tetrabsp: invalid config")

	// ErrFrameNotStarted is returned by Viewer.RunToCompletion if BeginFrame didn't succeed first.
	ErrFrameNotStarted = errors.New("tetrabsp: frame not started")
)
