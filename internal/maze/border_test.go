package maze

import (
	"testing"

	"mazeforge/internal/core"
)

func TestApplyBorderOverwritesRing(t *testing.T) {
	g := core.NewGrid(10, 8)
	g.Fill(core.Path)
	ApplyBorder(g, 2)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			ring := x < 2 || y < 2 || x >= g.W-2 || y >= g.H-2
			want := core.Path
			if ring {
				want = core.Wall
			}
			if got := g.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestApplyBorderZeroThickness(t *testing.T) {
	g := core.NewGrid(4, 4)
	g.Fill(core.Path)
	ApplyBorder(g, 0)
	if g.Count(core.Wall) != 0 {
		t.Fatal("zero thickness should leave the grid alone")
	}
}
