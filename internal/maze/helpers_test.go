package maze

import (
	"testing"

	"mazeforge/internal/core"
)

// scriptedRand always picks the first candidate and returns a fixed float.
type scriptedRand struct {
	f      float64
	floats int
}

func (r *scriptedRand) IntN(int) int { return 0 }

func (r *scriptedRand) Float64() float64 {
	r.floats++
	return r.f
}

func testGeometry() Geometry {
	geo, _ := Preset("classic")
	return geo
}

// blankGrid returns an all-wall grid sized for the requested interior.
func blankGrid(t testing.TB, w, h int, geo Geometry) (*core.Grid, lattice) {
	t.Helper()
	gw, gh, err := GridSize(w, h, geo)
	if err != nil {
		t.Fatalf("GridSize(%d, %d): %v", w, h, err)
	}
	return core.NewGrid(gw, gh), newLattice(gw, gh, geo)
}

func carveBlock(g *core.Grid, l lattice, i, j int) {
	l.block(i, j).fill(g, core.Path)
}

// link carves the connector between two lattice-adjacent slots.
func link(g *core.Grid, l lattice, i0, j0, i1, j1 int) {
	ax, ay := l.origin(i0, j0)
	bx, by := l.origin(i1, j1)
	connector(l.geo, core.Point{X: ax, Y: ay}, core.Point{X: bx, Y: by}).fill(g, core.Path)
}

func corner(l lattice, i, j int) core.Point {
	b := l.block(i, j)
	return core.Point{X: b.X + b.W - 1, Y: b.Y + b.H - 1}
}

func origin(l lattice, i, j int) core.Point {
	x, y := l.origin(i, j)
	return core.Point{X: x, Y: y}
}
