package tetrabsp

import (
	"log/slog"
	"time"
)

// ViewerOption configures a Viewer during creation.
//
// Example:
//
//	cfg := tetrabsp.DefaultConfig()
//	cfg.ClosedWalls = tetrabsp.ClosedWallsOcclude
//	viewer, err := tetrabsp.NewViewer(level, tetrabsp.WithConfig(cfg))
type ViewerOption func(*viewerOptions)

type viewerOptions struct {
	config   Config
	renderer Renderer
}

// WithConfig sets the Config the Viewer walks with. It's validated by NewViewer.
func WithConfig(config Config) ViewerOption {
	return func(o *viewerOptions) {
		o.config = config
	}
}

// WithRenderer sets the Renderer used when RunToCompletion is passed nil.
func WithRenderer(r Renderer) ViewerOption {
	return func(o *viewerOptions) {
		o.renderer = r
	}
}

// Viewer drives the visibility walk for one camera view, frame after frame. Call BeginFrame with the camera's
// position and angles, then RunToCompletion to have every visible partition handed to a Renderer, nearest first.
// A Viewer must not be used from two goroutines at once; give each view (split-screen player, mirror) its own.
type Viewer struct {
	tree     PartitionTree
	config   Config
	renderer Renderer
	walker   *Walker

	frame     uint32
	started   bool
	frameTime time.Time

	DebugInfo DebugInfo // Statistics for the last frame that ran to completion
}

// NewViewer creates a new Viewer walking the given PartitionTree. An error wrapping ErrInvalidConfig is
// returned if the Config set with WithConfig isn't valid.
func NewViewer(tree PartitionTree, opts ...ViewerOption) (*Viewer, error) {

	options := viewerOptions{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&options)
	}

	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	return &Viewer{
		tree:     tree,
		config:   options.config,
		renderer: options.renderer,
		walker:   NewWalker(tree, options.config),
	}, nil

}

// Config returns the Viewer's Config.
func (v *Viewer) Config() Config {
	return v.config
}

// Walker returns the Viewer's Walker, to inspect the current frame's LineSet or Clipper.
func (v *Viewer) Walker() *Walker {
	return v.walker
}

// Clipper returns the angular occlusion buffer of the current frame.
func (v *Viewer) Clipper() *Clipper {
	return v.walker.Clipper
}

// Frame returns the FrameContext of the current (or last) frame.
func (v *Viewer) Frame() FrameContext {
	return v.walker.Frame()
}

// Order returns the partitions rendered in the current (or last) frame, in order.
func (v *Viewer) Order() []PartitionID {
	return v.walker.Order()
}

// BeginFrame resets all per-frame state and seeds the walk from the partition containing the camera.
// A zero fieldOfView uses the Config's; clipLeft and clipRight are the frustum's extents to the left and right
// of the view direction, with 0 meaning half the field of view.
// If the camera isn't inside any partition, ErrNoCameraPartition is returned and the frame renders nothing;
// the next BeginFrame starts over cleanly.
func (v *Viewer) BeginFrame(position Vector, viewAngle, fieldOfView, clipLeft, clipRight Angle) error {

	v.frameTime = time.Now()
	v.started = false

	if fieldOfView == 0 {
		fieldOfView = AngleFromDegrees(v.config.FieldOfView)
	}

	v.frame++

	fc, err := NewFrameContext(position, viewAngle, fieldOfView, clipLeft, clipRight, v.frame)
	if err != nil {
		return err
	}
	fc.Epsilon = v.config.SideEpsilon

	v.walker.Reset(fc)

	if err := v.walker.Seed(); err != nil {
		Logger().Error("tetrabsp: frame skipped", "frame", v.frame, "err", err)
		v.DebugInfo = v.walker.DebugInfo
		return err
	}

	v.started = true

	return nil

}

// RunToCompletion walks the frame started by BeginFrame, calling r.RenderPartition once per visible partition in
// front-to-back order. If r is nil, the Renderer set with WithRenderer is used (if any).
// Problems in the level data or running out of room degrade the frame (see DebugInfo) rather than fail it.
func (v *Viewer) RunToCompletion(r Renderer) error {

	if !v.started {
		return ErrFrameNotStarted
	}

	v.started = false

	if r == nil {
		r = v.renderer
	}

	v.walker.Run(r)

	v.DebugInfo = v.walker.DebugInfo
	v.DebugInfo.FrameTime = time.Since(v.frameTime)

	log := Logger()

	if v.DebugInfo.Degraded {
		log.Warn("tetrabsp: frame degraded",
			"frame", v.frame,
			"problems", v.DebugInfo.ProblemCount,
			"first", v.DebugInfo.Problem,
			"truncated", v.DebugInfo.Truncated,
		)
	}

	log.Debug("tetrabsp: frame walked",
		"frame", v.frame,
		slog.Group("partitions",
			"visited", v.DebugInfo.VisitedPartitions,
			"rendered", v.DebugInfo.RenderedPartitions,
		),
		slog.Group("drawsegs",
			"added", v.DebugInfo.AddedDrawSegs,
			"rejected", v.DebugInfo.RejectedDrawSegs,
			"culled", v.DebugInfo.CulledDrawSegs,
			"peak", v.DebugInfo.PeakDrawSegs,
		),
		"solid_ranges", v.DebugInfo.SolidRanges,
		"time", v.DebugInfo.FrameTime,
	)

	return nil

}

// Render is a shortcut for BeginFrame with the Config's field of view and a symmetrical frustum, followed by
// RunToCompletion.
func (v *Viewer) Render(position Vector, viewAngle Angle, r Renderer) error {
	if err := v.BeginFrame(position, viewAngle, 0, 0, 0); err != nil {
		return err
	}
	return v.RunToCompletion(r)
}
