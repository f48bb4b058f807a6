//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mazeforge/internal/core"
	"mazeforge/internal/render"
	"mazeforge/internal/segment"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type solutionProvider interface {
	Solution() []core.Point
}

type endpointProvider interface {
	Endpoints() (core.Point, core.Point, bool)
	Exit() (core.Point, bool)
}

type segmentProvider interface {
	Segments() []segment.WallSegment
}

// Overlay draws optional debugging visuals on top of the maze.
type Overlay struct {
	src          core.Source
	scale        int
	showSolution bool
	showMarkers  bool
	showSegments bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance. Markers start visible.
func NewOverlay(src core.Source, scale int) *Overlay {
	o := &Overlay{src: src, scale: max(scale, 1), showMarkers: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the layer toggles on keys 1 to 3.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSolution = !o.showSolution
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMarkers = !o.showMarkers
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSegments = !o.showSegments
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showSegments {
		if provider, ok := o.src.(segmentProvider); ok {
			o.drawSegments(screen, provider.Segments())
		}
	}
	if o.showSolution {
		if provider, ok := o.src.(solutionProvider); ok {
			o.drawTrail(screen, provider.Solution())
		}
	}
	if o.showMarkers {
		if provider, ok := o.src.(endpointProvider); ok {
			o.drawMarkers(screen, provider)
		}
	}
}

func (o *Overlay) drawSegments(screen *ebiten.Image, segs []segment.WallSegment) {
	palette := [segment.TextureCount]color.RGBA{
		segment.TextureSingle: {R: 240, G: 90, B: 90, A: 200},
		segment.TextureDouble: {R: 240, G: 200, B: 80, A: 200},
		segment.TextureTriple: {R: 90, G: 200, B: 120, A: 200},
		segment.TextureFive:   {R: 90, G: 150, B: 240, A: 200},
	}
	for _, s := range segs {
		if s.TextureIndex < 0 || s.TextureIndex >= segment.TextureCount {
			continue
		}
		r := render.Bounds(s, o.scale)
		col := palette[s.TextureIndex]
		x0, y0 := float64(r.Min.X), float64(r.Min.Y)
		x1, y1 := float64(r.Max.X), float64(r.Max.Y)
		o.drawLine(screen, x0, y0, x1, y0, 1, col)
		o.drawLine(screen, x0, y1-1, x1, y1-1, 1, col)
		o.drawLine(screen, x0, y0, x0, y1, 1, col)
		o.drawLine(screen, x1-1, y0, x1-1, y1, 1, col)
	}
}

func (o *Overlay) drawTrail(screen *ebiten.Image, path []core.Point) {
	col := color.RGBA{R: 230, G: 200, B: 90, A: 220}
	thickness := math.Max(float64(o.scale)*0.4, 1)
	for _, run := range trailRuns(path) {
		fx, fy := o.center(run.from)
		tx, ty := o.center(run.to)
		if run.from == run.to {
			o.drawPoint(screen, fx, fy, thickness, col)
			continue
		}
		// Extend by half the thickness so corners meet.
		dx, dy := sign(tx-fx)*thickness/2, sign(ty-fy)*thickness/2
		o.drawLine(screen, fx-dx, fy-dy, tx+dx, ty+dy, thickness, col)
	}
}

func (o *Overlay) drawMarkers(screen *ebiten.Image, provider endpointProvider) {
	size := float64(o.scale)
	if start, end, ok := provider.Endpoints(); ok {
		sx, sy := o.center(start)
		ex, ey := o.center(end)
		o.drawPoint(screen, sx, sy, size, color.RGBA{R: 90, G: 200, B: 120, A: 255})
		o.drawPoint(screen, ex, ey, size, color.RGBA{R: 220, G: 90, B: 80, A: 255})
	}
	if door, ok := provider.Exit(); ok {
		dx, dy := o.center(door)
		o.drawPoint(screen, dx, dy, size, color.RGBA{R: 150, G: 60, B: 50, A: 255})
	}
}

func (o *Overlay) center(p core.Point) (float64, float64) {
	s := float64(o.scale)
	return (float64(p.X) + 0.5) * s, (float64(p.Y) + 0.5) * s
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
