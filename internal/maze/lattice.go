package maze

import "mazeforge/internal/core"

// rect is a cell rectangle on the grid.
type rect struct {
	X, Y, W, H int
}

func (r rect) is(g *core.Grid, c core.Cell) bool { return g.RectIs(r.X, r.Y, r.W, r.H, c) }

func (r rect) fill(g *core.Grid, c core.Cell) { g.FillRect(r.X, r.Y, r.W, r.H, c) }

// Joint is the wall gap between two lattice-adjacent block slots.
type Joint struct {
	X, Y, W, H int
	// Horizontal joints separate a block from its right-hand neighbour;
	// vertical joints separate it from the block below.
	Horizontal bool
}

func (j Joint) rect() rect { return rect{X: j.X, Y: j.Y, W: j.W, H: j.H} }

// lattice maps block slot indices to grid coordinates for one grid size.
type lattice struct {
	geo        Geometry
	w, h       int
	cols, rows int
}

func newLattice(w, h int, geo Geometry) lattice {
	l := lattice{geo: geo, w: w, h: h}
	innerW := w - 2*geo.BorderThickness
	innerH := h - 2*geo.BorderThickness
	if innerW >= geo.PathWidth {
		l.cols = (innerW-geo.PathWidth)/geo.StrideX() + 1
	}
	if innerH >= geo.PathHeight {
		l.rows = (innerH-geo.PathHeight)/geo.StrideY() + 1
	}
	return l
}

func (l lattice) empty() bool { return l.cols == 0 || l.rows == 0 }

func (l lattice) origin(i, j int) (int, int) {
	b := l.geo.BorderThickness
	return b + i*l.geo.StrideX(), b + j*l.geo.StrideY()
}

func (l lattice) block(i, j int) rect {
	x, y := l.origin(i, j)
	return rect{X: x, Y: y, W: l.geo.PathWidth, H: l.geo.PathHeight}
}

// fits reports whether a block footprint anchored at (x, y) lies inside the
// grid minus the border margin.
func (l lattice) fits(x, y int) bool {
	b := l.geo.BorderThickness
	return x >= b && y >= b &&
		x+l.geo.PathWidth <= l.w-b &&
		y+l.geo.PathHeight <= l.h-b
}

// joints lists every joint in row-major slot order; for each slot the
// horizontal joint precedes the vertical one.
func (l lattice) joints() []Joint {
	geo := l.geo
	out := make([]Joint, 0, 2*l.cols*l.rows)
	for j := 0; j < l.rows; j++ {
		for i := 0; i < l.cols; i++ {
			x, y := l.origin(i, j)
			if i+1 < l.cols {
				out = append(out, Joint{X: x + geo.PathWidth, Y: y, W: geo.WallWidth, H: geo.PathHeight, Horizontal: true})
			}
			if j+1 < l.rows {
				out = append(out, Joint{X: x, Y: y + geo.PathHeight, W: geo.PathWidth, H: geo.WallHeight})
			}
		}
	}
	return out
}

// neighbours returns the four regions orthogonally adjacent to a joint. The
// first two are the blocks the joint separates.
func (l lattice) neighbours(jt Joint) [4]rect {
	geo := l.geo
	if jt.Horizontal {
		return [4]rect{
			{X: jt.X - geo.PathWidth, Y: jt.Y, W: geo.PathWidth, H: geo.PathHeight},
			{X: jt.X + jt.W, Y: jt.Y, W: geo.PathWidth, H: geo.PathHeight},
			{X: jt.X, Y: jt.Y - geo.WallHeight, W: jt.W, H: geo.WallHeight},
			{X: jt.X, Y: jt.Y + jt.H, W: jt.W, H: geo.WallHeight},
		}
	}
	return [4]rect{
		{X: jt.X, Y: jt.Y - geo.PathHeight, W: geo.PathWidth, H: geo.PathHeight},
		{X: jt.X, Y: jt.Y + jt.H, W: geo.PathWidth, H: geo.PathHeight},
		{X: jt.X - geo.WallWidth, Y: jt.Y, W: geo.WallWidth, H: jt.H},
		{X: jt.X + jt.W, Y: jt.Y, W: geo.WallWidth, H: jt.H},
	}
}

// carvedNeighbours counts the joint neighbours that are entirely Path.
func (l lattice) carvedNeighbours(g *core.Grid, jt Joint) int {
	n := 0
	for _, r := range l.neighbours(jt) {
		if r.is(g, core.Path) {
			n++
		}
	}
	return n
}

// Joints lists the wall joints of a grid of the given size.
func Joints(w, h int, geo Geometry) []Joint {
	return newLattice(w, h, geo).joints()
}

// CarvedNeighbours counts how many of the joint's four lattice neighbours are
// fully carved.
func CarvedNeighbours(g *core.Grid, geo Geometry, jt Joint) int {
	return newLattice(g.W, g.H, geo).carvedNeighbours(g, jt)
}
