package core

import "testing"

func TestNewGridStartsAsWall(t *testing.T) {
	g := NewGrid(4, 3)
	if g.W != 4 || g.H != 3 || len(g.Cells()) != 12 {
		t.Fatalf("grid = %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
	if g.Count(Wall) != 12 {
		t.Fatal("new grid should be all wall")
	}
	if z := NewGrid(0, -1); z.W != 1 || z.H != 1 {
		t.Fatalf("degenerate size not clamped: %dx%d", z.W, z.H)
	}
}

func TestGridOutOfBoundsReadsWall(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill(Path)
	for _, p := range []Point{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.At(p.X, p.Y) != Wall || g.IsPath(p.X, p.Y) {
			t.Fatalf("out of bounds %v should read as wall", p)
		}
	}
	v := g.Version()
	g.Set(5, 5, Wall)
	if g.Version() != v {
		t.Fatal("ignored write bumped version")
	}
}

func TestFillRectClipsAndRectIs(t *testing.T) {
	g := NewGrid(5, 5)
	g.FillRect(3, 3, 4, 4, Path)
	if g.Count(Path) != 4 {
		t.Fatalf("clipped fill wrote %d cells, want 4", g.Count(Path))
	}
	if !g.RectIs(3, 3, 2, 2, Path) {
		t.Fatal("filled corner should be path")
	}
	if g.RectIs(3, 3, 3, 2, Path) {
		t.Fatal("rectangle leaving the grid must report false")
	}
	if g.RectIs(0, 0, 0, 1, Wall) {
		t.Fatal("empty rectangle must report false")
	}
	if g.RectIs(2, 2, 2, 2, Path) {
		t.Fatal("mixed rectangle reported uniform")
	}
}

func TestGridVersionTracksMutations(t *testing.T) {
	g := NewGrid(3, 3)
	v0 := g.Version()
	g.Set(1, 1, Path)
	g.FillRect(0, 0, 1, 1, Path)
	g.Fill(Wall)
	g.MarkDirty()
	if g.Version() != v0+4 {
		t.Fatalf("version = %d, want %d", g.Version(), v0+4)
	}

	c := g.Clone()
	c.Set(0, 0, Path)
	if g.At(0, 0) != Wall {
		t.Fatal("clone shares storage with original")
	}
}
