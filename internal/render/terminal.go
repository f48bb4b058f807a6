package render

import (
	"mazeforge/internal/core"
	"mazeforge/internal/segment"

	"github.com/gdamore/tcell/v2"
)

// CellSink receives terminal cells. tcell.Screen satisfies it.
type CellSink interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Glyph is one terminal cell look.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Terminal draws a maze as one character per grid cell.
type Terminal struct {
	// OffsetX and OffsetY shift the maze on screen, leaving room for a
	// status line.
	OffsetX, OffsetY int

	Floor Glyph
	// Walls lists the variants per texture index. Every bucket needs at
	// least one entry.
	Walls [segment.TextureCount][]Glyph

	Trail Glyph
	Start Glyph
	End   Glyph
	Door  Glyph
}

// NewTerminal returns the default palette: darker bricks for short runs,
// lighter shading for long runs.
func NewTerminal() *Terminal {
	bg := tcell.NewRGBColor(18, 16, 22)
	brick := func(r rune, cr, cg, cb int32) Glyph {
		return Glyph{Rune: r, Style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(cr, cg, cb)).Background(bg)}
	}
	t := &Terminal{
		Floor: Glyph{Rune: ' ', Style: tcell.StyleDefault.Background(bg)},
		Trail: Glyph{Rune: '·', Style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 200, 90)).Background(bg)},
		Start: Glyph{Rune: 'S', Style: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(90, 200, 120))},
		End:   Glyph{Rune: 'E', Style: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(220, 90, 80))},
		Door:  Glyph{Rune: '▯', Style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(220, 90, 80)).Background(bg)},
	}
	t.Walls[segment.TextureSingle] = []Glyph{brick('█', 120, 62, 48), brick('▓', 120, 62, 48)}
	t.Walls[segment.TextureDouble] = []Glyph{brick('█', 136, 72, 54), brick('▓', 136, 72, 54)}
	t.Walls[segment.TextureTriple] = []Glyph{brick('█', 150, 82, 60), brick('▓', 150, 82, 60)}
	t.Walls[segment.TextureFive] = []Glyph{brick('█', 164, 94, 68), brick('▓', 164, 94, 68), brick('▒', 164, 94, 68)}
	return t
}

// Draw paints every path cell as floor, then each wall segment with the glyph
// of its variant. Walls excluded from segments stay floor so callers can put
// feature glyphs on top.
func (t *Terminal) Draw(sink CellSink, g *core.Grid, segments []segment.WallSegment) {
	if g == nil {
		return
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			t.put(sink, x, y, t.Floor)
		}
	}
	for _, s := range segments {
		if s.TextureIndex < 0 || s.TextureIndex >= segment.TextureCount {
			continue
		}
		variants := t.Walls[s.TextureIndex]
		if len(variants) == 0 {
			continue
		}
		glyph := variants[segment.VariantFor(s, len(variants))]
		for x := s.StartX; x < s.StartX+s.Length; x++ {
			t.put(sink, x, s.StartY, glyph)
		}
	}
}

// DrawTrail marks the cells of a solution path.
func (t *Terminal) DrawTrail(sink CellSink, path []core.Point) {
	for _, p := range path {
		t.put(sink, p.X, p.Y, t.Trail)
	}
}

// DrawMarker puts a single glyph at p.
func (t *Terminal) DrawMarker(sink CellSink, p core.Point, glyph Glyph) {
	t.put(sink, p.X, p.Y, glyph)
}

// DrawText writes s starting at screen column x of row y, ignoring the maze
// offset.
func DrawText(sink CellSink, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		sink.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) put(sink CellSink, x, y int, glyph Glyph) {
	sink.SetContent(x+t.OffsetX, y+t.OffsetY, glyph.Rune, nil, glyph.Style)
}
