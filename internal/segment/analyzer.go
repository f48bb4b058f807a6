package segment

import "mazeforge/internal/core"

// Analyzer caches the segments of the last analysed grid. The cache is keyed
// by the grid pointer and its version counter, so mutations made through the
// Grid API (or flagged with MarkDirty) trigger a rescan.
//
// An Analyzer is not safe for concurrent use; drive it from the render loop.
type Analyzer struct {
	renderable RenderableFunc

	grid     *core.Grid
	version  uint64
	segments []WallSegment
	valid    bool
	scans    int
}

// NewAnalyzer returns an analyzer using the provided renderable predicate.
func NewAnalyzer(renderable RenderableFunc) *Analyzer {
	return &Analyzer{renderable: renderable}
}

// SetRenderable swaps the predicate and drops the cache.
func (a *Analyzer) SetRenderable(renderable RenderableFunc) {
	a.renderable = renderable
	a.Invalidate()
}

// Invalidate forces the next Segments call to rescan.
func (a *Analyzer) Invalidate() {
	a.valid = false
	a.segments = nil
}

// Segments returns the wall segments of g, reusing the cached slice while g
// is the same grid at the same version.
func (a *Analyzer) Segments(g *core.Grid) []WallSegment {
	if a.valid && a.grid == g && (g == nil || a.version == g.Version()) {
		return a.segments
	}
	a.grid = g
	if g != nil {
		a.version = g.Version()
	}
	a.segments = Analyze(g, a.renderable)
	a.valid = true
	a.scans++
	return a.segments
}

// Scans reports how many full rescans the analyzer has performed.
func (a *Analyzer) Scans() int { return a.scans }
