package maze

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"mazeforge/internal/core"
)

var orthogonal = [4]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Reachable runs a 4-connected BFS over Path cells from start and returns
// the visited mask indexed by g.Index. A Wall or out of bounds start reaches
// nothing.
func Reachable(g *core.Grid, start core.Point) []bool {
	visited := make([]bool, g.W*g.H)
	if !g.IsPath(start.X, start.Y) {
		return visited
	}
	queue := []int{g.Index(start.X, start.Y)}
	visited[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		x, y := idx%g.W, idx/g.W
		for _, d := range orthogonal {
			nx, ny := x+d.X, y+d.Y
			if !g.IsPath(nx, ny) {
				continue
			}
			n := g.Index(nx, ny)
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// Connected reports whether end is reachable from start.
func Connected(g *core.Grid, start, end core.Point) bool {
	if !g.InBounds(end.X, end.Y) {
		return false
	}
	return Reachable(g, start)[g.Index(end.X, end.Y)]
}

// RepairOnce opens a single wall joint with at least two carved neighbours.
// Joints whose two flanking blocks sit on opposite sides of the reached
// region are preferred; otherwise the first eligible joint in scan order is
// used. The grid is not re-validated. It reports the joint and whether one
// was opened.
func RepairOnce(g *core.Grid, geo Geometry, reached []bool) (Joint, bool) {
	l := newLattice(g.W, g.H, geo)

	inside := mapset.New[core.Point]()
	if len(reached) == g.W*g.H {
		for j := 0; j < l.rows; j++ {
			for i := 0; i < l.cols; i++ {
				x, y := l.origin(i, j)
				if reached[g.Index(x, y)] {
					inside.Put(core.Point{X: x, Y: y})
				}
			}
		}
	}

	var fallback Joint
	found := false
	for _, jt := range l.joints() {
		r := jt.rect()
		if !r.is(g, core.Wall) || l.carvedNeighbours(g, jt) < 2 {
			continue
		}
		n := l.neighbours(jt)
		a, b := n[0], n[1]
		if a.is(g, core.Path) && b.is(g, core.Path) {
			ina := inside.Has(core.Point{X: a.X, Y: a.Y})
			inb := inside.Has(core.Point{X: b.X, Y: b.Y})
			if ina != inb {
				r.fill(g, core.Path)
				return jt, true
			}
		}
		if !found {
			fallback, found = jt, true
		}
	}
	if !found {
		return Joint{}, false
	}
	fallback.rect().fill(g, core.Path)
	return fallback, true
}

// EnsureConnected validates start/end reachability and runs repair passes
// until they connect or maxAttempts repairs have been spent. It returns the
// number of repairs performed. Each pass opens a joint bridging the reached
// region when one exists rather than the first eligible joint, so a
// disconnected pair needs fewer repairs; RepairOnce falls back to the first
// eligible joint in scan order.
func EnsureConnected(g *core.Grid, geo Geometry, start, end core.Point, maxAttempts int) (int, error) {
	if !g.InBounds(end.X, end.Y) {
		return 0, fmt.Errorf("%w: end %v outside %dx%d grid", ErrGenerationFailed, end, g.W, g.H)
	}
	endIdx := g.Index(end.X, end.Y)
	for attempts := 0; ; attempts++ {
		reached := Reachable(g, start)
		if reached[endIdx] {
			return attempts, nil
		}
		if attempts >= maxAttempts {
			return attempts, fmt.Errorf("%w: still disconnected after %d repairs", ErrGenerationFailed, attempts)
		}
		if _, ok := RepairOnce(g, geo, reached); !ok {
			return attempts, fmt.Errorf("%w: no repairable joint left after %d repairs", ErrGenerationFailed, attempts)
		}
	}
}
