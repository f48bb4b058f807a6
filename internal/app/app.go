//go:build ebiten

package app

import (
	"fmt"
	"time"

	"mazeforge/internal/render"
	"mazeforge/internal/segment"
	"mazeforge/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type segmentSource interface {
	Segments() []segment.WallSegment
}

// HUDWidth is the width of the parameter panel in screen pixels.
const HUDWidth = 260

// Game adapts a maze source to the ebiten.Game interface.
type Game struct {
	driver   *Driver
	floor    *render.GridPainter
	pool     *render.TexturePool
	segments *render.SegmentPainter
	hud      *ui.HUD
	overlay  *ui.Overlay

	scale int
	sizeW int
	sizeH int
}

// New constructs a Game around a driver whose source has already generated
// its first maze.
func New(driver *Driver, scale int) *Game {
	src := driver.Source()
	size := src.Size()
	scale = max(scale, 1)
	return &Game{
		driver:   driver,
		floor:    render.NewGridPainter(size.W, size.H),
		pool:     render.NewTexturePool(16, 4, driver.Seed()),
		segments: render.NewSegmentPainter(),
		hud:      ui.NewHUD(src, HUDWidth),
		overlay:  ui.NewOverlay(src, scale),
		scale:    scale,
		sizeW:    size.W,
		sizeH:    size.H,
	}
}

// Update handles per-frame input and auto regeneration.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		_ = g.driver.Regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = g.driver.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.driver.ToggleAuto()
	}
	_, _ = g.driver.Tick(time.Now())

	g.overlay.Update()
	g.hud.Update(g.sizeW * g.scale)

	// HUD controls can resize the grid.
	if size := g.driver.Source().Size(); size.W != g.sizeW || size.H != g.sizeH {
		g.sizeW, g.sizeH = size.W, size.H
		g.floor = render.NewGridPainter(size.W, size.H)
		ebiten.SetWindowSize(size.W*g.scale+HUDWidth, size.H*g.scale)
	}
	return nil
}

// Draw renders the floor, the textured walls, overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	src := g.driver.Source()
	g.floor.Blit(screen, src.Cells(), render.DefaultPalette, g.scale)
	if provider, ok := src.(segmentSource); ok {
		g.segments.Draw(screen, provider.Segments(), g.pool, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sizeW*g.scale, g.scale)

	status := fmt.Sprintf("seed %d  auto %v", g.driver.Seed(), g.driver.Auto())
	if err := g.driver.Err(); err != nil {
		status += "  " + err.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 4, 2)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sizeW*g.scale + HUDWidth, g.sizeH * g.scale
}
