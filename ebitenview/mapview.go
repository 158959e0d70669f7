// Package ebitenview draws a tetrabsp Level and the last visibility walk over it from above, using Ebitengine.
// It's meant for debugging levels and for watching the walk at work; see the examples directory.
package ebitenview

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/tetrabsp"
	"github.com/solarlune/tetrabsp/colors"
	"golang.org/x/image/font/basicfont"
)

// Palette holds the colors a MapView draws with.
type Palette struct {
	Background colors.Color
	Floor      colors.Color // Partitions that weren't rendered in the last frame
	SolidWall  colors.Color
	Portal     colors.Color
	ClosedWall colors.Color
	Camera     colors.Color
	Frustum    colors.Color
	SolidRange colors.Color
	Text       colors.Color
}

// DefaultPalette returns the Palette a new MapView uses.
func DefaultPalette() Palette {
	return Palette{
		Background: colors.DarkestGray(),
		Floor:      colors.DarkGray(),
		SolidWall:  colors.White(),
		Portal:     colors.Gray(),
		ClosedWall: colors.Orange(),
		Camera:     colors.Yellow(),
		Frustum:    colors.Yellow().WithAlpha(0.5),
		SolidRange: colors.PaleRed(),
		Text:       colors.White(),
	}
}

// MapView draws a Level top-down. Partitions rendered in the Viewer's last frame are tinted by render order
// (the first red, later ones further around the hue wheel), so the front-to-back order can be seen at a glance.
type MapView struct {
	Level  *tetrabsp.Level
	Viewer *tetrabsp.Viewer

	Center tetrabsp.Vector // The world position drawn at the middle of the screen
	Zoom   float64         // Pixels per world unit

	Palette         Palette
	FrustumLength   float64 // Length of the drawn frustum edges, in world units
	DrawSolidRanges bool    // If the Clipper's solid ranges are drawn as arcs around the camera
	DrawDebugText   bool    // If the Viewer's DebugInfo is drawn in the top-left corner

	whiteImage *ebiten.Image
	screenSize image.Point
	vertices   []ebiten.Vertex
	indices    []uint16
	rank       []int
}

// NewMapView creates a new MapView for the Level and the Viewer walking it.
func NewMapView(level *tetrabsp.Level, viewer *tetrabsp.Viewer) *MapView {
	return &MapView{
		Level:           level,
		Viewer:          viewer,
		Zoom:            8,
		Palette:         DefaultPalette(),
		FrustumLength:   16,
		DrawSolidRanges: true,
		DrawDebugText:   true,
	}
}

// WorldToScreen returns where the world position lands on the screen given.
func (view *MapView) WorldToScreen(screen *ebiten.Image, point tetrabsp.Vector) (float32, float32) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	x := float64(w)/2 + (point.X-view.Center.X)*view.Zoom
	y := float64(h)/2 - (point.Y-view.Center.Y)*view.Zoom
	return float32(x), float32(y)
}

// ScreenToWorld returns the world position under the given pixel (i.e. the cursor) of the screen last drawn to.
func (view *MapView) ScreenToWorld(x, y int) tetrabsp.Vector {
	w, h := view.screenSize.X, view.screenSize.Y
	return tetrabsp.Vector{
		X: view.Center.X + (float64(x)-float64(w)/2)/view.Zoom,
		Y: view.Center.Y - (float64(y)-float64(h)/2)/view.Zoom,
	}
}

// Draw draws the Level, the camera and the Viewer's last frame onto the screen.
func (view *MapView) Draw(screen *ebiten.Image) {

	view.screenSize = screen.Bounds().Size()

	screen.Fill(view.Palette.Background)

	if view.Level == nil {
		return
	}

	view.rankPartitions()

	for _, part := range view.Level.Partitions {
		view.drawPartition(screen, part)
	}

	for _, part := range view.Level.Partitions {
		for i := range part.Segments {
			view.drawSegment(screen, &part.Segments[i])
		}
	}

	if view.Viewer == nil {
		return
	}

	if view.DrawSolidRanges {
		view.drawSolidRanges(screen)
	}

	view.drawCamera(screen)

	if view.DrawDebugText {
		view.drawDebugText(screen)
	}

}

func (view *MapView) rankPartitions() {

	if n := len(view.Level.Partitions); len(view.rank) != n {
		view.rank = make([]int, n)
	}

	for i := range view.rank {
		view.rank[i] = -1
	}

	if view.Viewer == nil {
		return
	}

	for i, id := range view.Viewer.Order() {
		if int(id) < len(view.rank) {
			view.rank[id] = i
		}
	}

}

func (view *MapView) partitionColor(id tetrabsp.PartitionID) colors.Color {

	rank := view.rank[id]
	if rank < 0 {
		return view.Palette.Floor
	}

	count := len(view.Viewer.Order())
	return colors.NewColorFromHSV(float64(rank)/float64(count)*0.75, 0.7, 0.8).WithAlpha(0.6)

}

func (view *MapView) drawPartition(screen *ebiten.Image, part *tetrabsp.Partition) {

	if len(part.Segments) < 3 {
		return
	}

	if view.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		view.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r, g, b, a := view.partitionColor(part.ID).RGBA64()

	view.vertices = view.vertices[:0]
	view.indices = view.indices[:0]

	for i, seg := range part.Segments {

		x, y := view.WorldToScreen(screen, seg.V1)

		view.vertices = append(view.vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r * a),
			ColorG: float32(g * a),
			ColorB: float32(b * a),
			ColorA: float32(a),
		})

		// Partitions are convex, so a fan covers them.
		if i >= 2 {
			view.indices = append(view.indices, 0, uint16(i-1), uint16(i))
		}

	}

	screen.DrawTriangles(view.vertices, view.indices, view.whiteImage, nil)

}

func (view *MapView) drawSegment(screen *ebiten.Image, seg *tetrabsp.Segment) {

	var clr colors.Color
	width := float32(1)

	switch {
	case !seg.IsPortal():
		clr = view.Palette.SolidWall
		width = 2
	case seg.Wall != nil && seg.Wall.IsClosed():
		clr = view.Palette.ClosedWall
		width = 2
	default:
		clr = view.Palette.Portal
	}

	x0, y0 := view.WorldToScreen(screen, seg.V1)
	x1, y1 := view.WorldToScreen(screen, seg.V2)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)

}

func (view *MapView) drawCamera(screen *ebiten.Image) {

	frame := view.Viewer.Frame()

	cx, cy := view.WorldToScreen(screen, frame.Position)

	for _, edge := range [2]tetrabsp.Angle{frame.ClipLeft, frame.ClipRight} {
		end := frame.Position.Add(tetrabsp.NewVectorFromAngle(edge).Scale(view.FrustumLength))
		ex, ey := view.WorldToScreen(screen, end)
		vector.StrokeLine(screen, cx, cy, ex, ey, 1, view.Palette.Frustum, true)
	}

	facing := frame.Position.Add(tetrabsp.NewVectorFromAngle(frame.ViewAngle).Scale(12 / view.Zoom))
	fx, fy := view.WorldToScreen(screen, facing)
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, view.Palette.Camera, true)
	vector.DrawFilledCircle(screen, cx, cy, 4, view.Palette.Camera, true)

}

// drawSolidRanges draws each solid range as an arc around the camera, in steps of at most 5 degrees.
func (view *MapView) drawSolidRanges(screen *ebiten.Image) {

	frame := view.Viewer.Frame()
	radius := 24 / view.Zoom
	step := tetrabsp.AngleFromDegrees(5)

	for _, sr := range view.Viewer.Clipper().Ranges() {

		span := sr.Left - sr.Right
		prev := frame.Position.Add(tetrabsp.NewVectorFromAngle(sr.Right).Scale(radius))

		for offset := tetrabsp.Angle(0); ; {

			next := offset + step
			if next < offset || next > span {
				next = span
			}

			point := frame.Position.Add(tetrabsp.NewVectorFromAngle(sr.Right + next).Scale(radius))
			x0, y0 := view.WorldToScreen(screen, prev)
			x1, y1 := view.WorldToScreen(screen, point)
			vector.StrokeLine(screen, x0, y0, x1, y1, 3, view.Palette.SolidRange, false)

			prev = point
			offset = next

			if offset == span {
				break
			}

		}

	}

}

func (view *MapView) drawDebugText(screen *ebiten.Image) {

	info := view.Viewer.DebugInfo

	m := info.FrameTime.Round(time.Microsecond).Microseconds()
	ft := fmt.Sprintf("%.3fms", float32(m)/1000)

	camera := "<none>"
	if id := view.Viewer.Walker().CameraPartition(); id != tetrabsp.NoPartition {
		if part := view.Level.Partition(id); part != nil {
			camera = part.Name
		}
	}

	debugText := fmt.Sprintf(
		"TPS: %.1f\nWalk time: %s\nCamera partition: %s\nRendered partitions: %d/%d (visited %d)\nDraw-segments: %d added, %d rejected, %d culled, %d peak\nSolid ranges: %d\nDegraded: %t (%d problems)",
		ebiten.ActualTPS(),
		ft,
		camera,
		info.RenderedPartitions,
		view.Level.PartitionCount(),
		info.VisitedPartitions,
		info.AddedDrawSegs,
		info.RejectedDrawSegs,
		info.CulledDrawSegs,
		info.PeakDrawSegs,
		info.SolidRanges,
		info.Degraded,
		info.ProblemCount,
	)

	if info.Problem != nil {
		debugText += "\n" + info.Problem.Error()
	}

	DrawText(screen, debugText, 4, 4, view.Palette.Text)

}

// DrawText draws the text with a one-pixel black outline, the top-left corner at the given position.
func DrawText(screen *ebiten.Image, txt string, x, y int, clr colors.Color) {

	// basicfont's baseline sits 13 pixels below the top of the line.
	y += 13

	for oy := -1; oy < 2; oy++ {
		for ox := -1; ox < 2; ox++ {
			text.Draw(screen, txt, basicfont.Face7x13, x+ox, y+oy, color.Black)
		}
	}

	text.Draw(screen, txt, basicfont.Face7x13, x, y, clr)

}
