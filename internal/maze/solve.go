package maze

import "mazeforge/internal/core"

// Solve returns a shortest 4-connected path from start to end, both
// inclusive, or nil when end is unreachable.
func Solve(g *core.Grid, start, end core.Point) []core.Point {
	if !g.IsPath(start.X, start.Y) || !g.IsPath(end.X, end.Y) {
		return nil
	}
	from := make([]int, g.W*g.H)
	for i := range from {
		from[i] = -1
	}
	startIdx, endIdx := g.Index(start.X, start.Y), g.Index(end.X, end.Y)
	from[startIdx] = startIdx

	queue := []int{startIdx}
	for qi := 0; qi < len(queue) && from[endIdx] < 0; qi++ {
		idx := queue[qi]
		x, y := idx%g.W, idx/g.W
		for _, d := range orthogonal {
			nx, ny := x+d.X, y+d.Y
			if !g.IsPath(nx, ny) {
				continue
			}
			n := g.Index(nx, ny)
			if from[n] < 0 {
				from[n] = idx
				queue = append(queue, n)
			}
		}
	}
	if from[endIdx] < 0 {
		return nil
	}

	var path []core.Point
	for idx := endIdx; ; idx = from[idx] {
		path = append(path, core.Point{X: idx % g.W, Y: idx / g.W})
		if idx == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
