package maze

import (
	"fmt"

	"mazeforge/internal/core"
	pcore "mazeforge/pkg/core"
)

type step struct{ dx, dy int }

// CarvePaths runs an iterative recursive backtracker over the block lattice,
// starting from the block at (border, border). Every carved block is joined
// to the start through carved connectors. It returns the number of blocks
// carved.
func CarvePaths(g *core.Grid, geo Geometry, rng pcore.Rand) (int, error) {
	l := newLattice(g.W, g.H, geo)
	sx, sy := l.origin(0, 0)
	if l.empty() || !l.fits(sx, sy) {
		return 0, fmt.Errorf("%w: %dx%d grid, border %d, block %dx%d",
			ErrInsufficientSize, g.W, g.H, geo.BorderThickness, geo.PathWidth, geo.PathHeight)
	}

	dirs := [4]step{{0, -geo.StrideY()}, {0, geo.StrideY()}, {-geo.StrideX(), 0}, {geo.StrideX(), 0}}

	stack := []core.Point{{X: sx, Y: sy}}
	rect{X: sx, Y: sy, W: geo.PathWidth, H: geo.PathHeight}.fill(g, core.Path)
	carved := 1

	candidates := make([]step, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			nx, ny := curr.X+d.dx, curr.Y+d.dy
			if !l.fits(nx, ny) {
				continue
			}
			if g.RectIs(nx, ny, geo.PathWidth, geo.PathHeight, core.Wall) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.IntN(len(candidates))]
		next := core.Point{X: curr.X + d.dx, Y: curr.Y + d.dy}
		connector(geo, curr, next).fill(g, core.Path)
		rect{X: next.X, Y: next.Y, W: geo.PathWidth, H: geo.PathHeight}.fill(g, core.Path)
		carved++
		stack = append(stack, next)
	}
	return carved, nil
}

// connector returns the wall gap between two lattice-adjacent block origins.
func connector(geo Geometry, a, b core.Point) rect {
	switch {
	case b.X > a.X:
		return rect{X: a.X + geo.PathWidth, Y: a.Y, W: geo.WallWidth, H: geo.PathHeight}
	case b.X < a.X:
		return rect{X: b.X + geo.PathWidth, Y: b.Y, W: geo.WallWidth, H: geo.PathHeight}
	case b.Y > a.Y:
		return rect{X: a.X, Y: a.Y + geo.PathHeight, W: geo.PathWidth, H: geo.WallHeight}
	default:
		return rect{X: b.X, Y: b.Y + geo.PathHeight, W: geo.PathWidth, H: geo.WallHeight}
	}
}
