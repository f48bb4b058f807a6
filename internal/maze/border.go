package maze

import "mazeforge/internal/core"

// ApplyBorder overwrites the outer thickness rows and columns with Wall.
func ApplyBorder(g *core.Grid, thickness int) {
	if thickness <= 0 {
		return
	}
	g.FillRect(0, 0, g.W, thickness, core.Wall)
	g.FillRect(0, g.H-thickness, g.W, thickness, core.Wall)
	g.FillRect(0, 0, thickness, g.H, core.Wall)
	g.FillRect(g.W-thickness, 0, thickness, g.H, core.Wall)
}
