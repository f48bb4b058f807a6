package segment

import (
	"testing"

	"mazeforge/internal/core"
)

func TestAnalyzerReturnsCachedSlice(t *testing.T) {
	g := core.NewGrid(6, 4)
	a := NewAnalyzer(nil)

	first := a.Segments(g)
	second := a.Segments(g)
	if len(first) == 0 || &first[0] != &second[0] {
		t.Fatal("expected the same backing slice for an unchanged grid")
	}
	if a.Scans() != 1 {
		t.Fatalf("scans = %d, want 1", a.Scans())
	}
}

func TestAnalyzerRescansOnChange(t *testing.T) {
	g := core.NewGrid(6, 4)
	a := NewAnalyzer(nil)
	a.Segments(g)

	g.Set(0, 0, core.Path)
	if s := a.Segments(g); s[0].StartX != 1 {
		t.Fatalf("stale segments after Set: %+v", s[0])
	}

	g.Cells()[1] = uint8(core.Path)
	g.MarkDirty()
	if s := a.Segments(g); s[0].StartX != 2 {
		t.Fatalf("stale segments after MarkDirty: %+v", s[0])
	}

	other := g.Clone()
	a.Segments(other)
	if a.Scans() != 4 {
		t.Fatalf("scans = %d, want 4 after switching grids", a.Scans())
	}

	a.SetRenderable(func(x, y int) bool { return y != 0 })
	if s := a.Segments(other); s[0].StartY != 1 {
		t.Fatalf("predicate change ignored: %+v", s[0])
	}

	a.Invalidate()
	a.Segments(other)
	if a.Scans() != 6 {
		t.Fatalf("scans = %d, want 6", a.Scans())
	}
}

func TestAnalyzerNilGrid(t *testing.T) {
	a := NewAnalyzer(nil)
	if a.Segments(nil) != nil {
		t.Fatal("nil grid should yield nil")
	}
}
