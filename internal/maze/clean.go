package maze

import (
	"mazeforge/internal/core"
	pcore "mazeforge/pkg/core"
)

// CleanWalls knocks out interior wall cells that have three or more
// orthogonal Path neighbours, each with probability chance. The scan is
// row-major and in place. It returns the number of cells converted.
func CleanWalls(g *core.Grid, chance float64, rng pcore.Rand) int {
	converted := 0
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if g.At(x, y) != core.Wall {
				continue
			}
			open := 0
			for _, d := range orthogonal {
				if g.IsPath(x+d.X, y+d.Y) {
					open++
				}
			}
			if open >= 3 && rng.Float64() < chance {
				g.Set(x, y, core.Path)
				converted++
			}
		}
	}
	return converted
}
