package maze

import (
	"mazeforge/internal/core"
	pcore "mazeforge/pkg/core"
)

// InjectLoops opens wall joints between already carved blocks to add cycles.
// A joint is eligible when it is entirely Wall and at least two of its four
// lattice neighbours are fully carved; each eligible joint opens
// independently with probability chance. It returns the number of joints
// opened.
func InjectLoops(g *core.Grid, geo Geometry, chance float64, rng pcore.Rand) int {
	l := newLattice(g.W, g.H, geo)
	opened := 0
	for _, jt := range l.joints() {
		r := jt.rect()
		if !r.is(g, core.Wall) {
			continue
		}
		if l.carvedNeighbours(g, jt) < 2 {
			continue
		}
		if rng.Float64() < chance {
			r.fill(g, core.Path)
			opened++
		}
	}
	return opened
}
