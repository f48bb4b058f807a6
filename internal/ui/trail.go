package ui

import "mazeforge/internal/core"

// trailRun is a straight stretch of a solution path, endpoints inclusive.
type trailRun struct {
	from, to core.Point
}

// trailRuns merges consecutive collinear steps so the overlay draws one line
// per corridor instead of one per cell.
func trailRuns(path []core.Point) []trailRun {
	if len(path) == 0 {
		return nil
	}
	if len(path) == 1 {
		return []trailRun{{from: path[0], to: path[0]}}
	}
	var runs []trailRun
	start := path[0]
	dir := core.Point{X: path[1].X - path[0].X, Y: path[1].Y - path[0].Y}
	for i := 1; i < len(path); i++ {
		step := core.Point{X: path[i].X - path[i-1].X, Y: path[i].Y - path[i-1].Y}
		if step != dir {
			runs = append(runs, trailRun{from: start, to: path[i-1]})
			start = path[i-1]
			dir = step
		}
	}
	return append(runs, trailRun{from: start, to: path[len(path)-1]})
}
