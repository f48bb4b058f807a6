package core

// Cell is the value stored in a maze grid.
type Cell uint8

const (
	// Wall marks a solid cell.
	Wall Cell = 0
	// Path marks a walkable cell.
	Path Cell = 1
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Grid stores a 2D maze in row-major order.
//
// Mutations made through the Grid methods bump a version counter so derived
// data (wall segments, painted images) can tell when it is stale. Code that
// writes through Cells directly must call MarkDirty afterwards.
type Grid struct {
	W, H    int
	data    []uint8
	version uint64
}

// NewGrid allocates an all-wall grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the cell at (x, y). Coordinates outside the grid read as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return Cell(g.data[y*g.W+x])
}

// IsPath reports whether (x, y) is an in-bounds Path cell.
func (g *Grid) IsPath(x, y int) bool { return g.At(x, y) == Path }

// Set writes c at (x, y). Out of bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.W+x] = uint8(c)
	g.version++
}

// FillRect writes c into the w*h rectangle anchored at (x, y), clipped to
// the grid.
func (g *Grid) FillRect(x, y, w, h int, c Cell) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, g.W), min(y+h, g.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for yy := y0; yy < y1; yy++ {
		row := g.data[yy*g.W : (yy+1)*g.W]
		for xx := x0; xx < x1; xx++ {
			row[xx] = uint8(c)
		}
	}
	g.version++
}

// RectIs reports whether the w*h rectangle at (x, y) is fully inside the grid
// and every cell in it equals c. Empty rectangles report false.
func (g *Grid) RectIs(x, y, w, h int, c Cell) bool {
	if w <= 0 || h <= 0 || x < 0 || y < 0 || x+w > g.W || y+h > g.H {
		return false
	}
	for yy := y; yy < y+h; yy++ {
		row := g.data[yy*g.W : (yy+1)*g.W]
		for xx := x; xx < x+w; xx++ {
			if Cell(row[xx]) != c {
				return false
			}
		}
	}
	return true
}

// Fill sets every cell to c.
func (g *Grid) Fill(c Cell) {
	for i := range g.data {
		g.data[i] = uint8(c)
	}
	g.version++
}

// Count returns how many cells equal c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.data {
		if Cell(v) == c {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid. The copy starts at version 0.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: append([]uint8(nil), g.data...)}
}

// Version reports the mutation counter.
func (g *Grid) Version() uint64 { return g.version }

// MarkDirty records a mutation made through Cells.
func (g *Grid) MarkDirty() { g.version++ }
