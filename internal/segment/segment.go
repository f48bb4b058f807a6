// Package segment groups renderable wall cells into horizontal runs that a
// renderer can draw in batches.
package segment

import "mazeforge/internal/core"

// WallSegment is a horizontal run of renderable wall cells in one row.
type WallSegment struct {
	StartX       int
	StartY       int
	Length       int
	TextureIndex int
}

// Texture indices per segment length bucket.
const (
	TextureSingle = 0 // length 1
	TextureDouble = 1 // length 2
	TextureTriple = 2 // length 3
	TextureFive   = 3 // length 5

	TextureCount = 4
)

// BucketLength returns the cell length drawn for a texture index.
func BucketLength(textureIndex int) int {
	switch textureIndex {
	case TextureSingle:
		return 1
	case TextureDouble:
		return 2
	case TextureTriple:
		return 3
	case TextureFive:
		return 5
	}
	return 0
}

// RenderableFunc reports whether the wall cell at (x, y) should be drawn.
// It is used to hide walls occupied by features such as an exit door.
type RenderableFunc func(x, y int) bool

// Decompose splits a run of length cells starting at (startX, y) into
// bucketed segments, greedily from the left: 5 while at least five remain,
// a remainder of four becomes 2+2, then 3, 2, or 1.
func Decompose(startX, y, length int) []WallSegment {
	return appendRun(nil, startX, y, length)
}

func appendRun(dst []WallSegment, x, y, remaining int) []WallSegment {
	for remaining > 0 {
		switch {
		case remaining >= 5:
			dst = append(dst, WallSegment{StartX: x, StartY: y, Length: 5, TextureIndex: TextureFive})
			x += 5
			remaining -= 5
		case remaining == 4:
			dst = append(dst,
				WallSegment{StartX: x, StartY: y, Length: 2, TextureIndex: TextureDouble},
				WallSegment{StartX: x + 2, StartY: y, Length: 2, TextureIndex: TextureDouble},
			)
			x += 4
			remaining -= 4
		case remaining == 3:
			dst = append(dst, WallSegment{StartX: x, StartY: y, Length: 3, TextureIndex: TextureTriple})
			x += 3
			remaining -= 3
		case remaining == 2:
			dst = append(dst, WallSegment{StartX: x, StartY: y, Length: 2, TextureIndex: TextureDouble})
			x += 2
			remaining -= 2
		default:
			dst = append(dst, WallSegment{StartX: x, StartY: y, Length: 1, TextureIndex: TextureSingle})
			x++
			remaining--
		}
	}
	return dst
}

// Analyze scans g row by row and decomposes every maximal run of renderable
// wall cells. A nil renderable treats every wall as renderable. A nil or
// empty grid yields no segments.
func Analyze(g *core.Grid, renderable RenderableFunc) []WallSegment {
	if g == nil || g.W <= 0 || g.H <= 0 {
		return nil
	}
	cells := g.Cells()
	if len(cells) < g.W*g.H {
		return nil
	}
	var out []WallSegment
	for y := 0; y < g.H; y++ {
		row := cells[y*g.W : (y+1)*g.W]
		runStart := -1
		for x := 0; x <= g.W; x++ {
			wall := x < g.W && core.Cell(row[x]) == core.Wall && (renderable == nil || renderable(x, y))
			if wall {
				if runStart < 0 {
					runStart = x
				}
				continue
			}
			if runStart >= 0 {
				out = appendRun(out, runStart, y, x-runStart)
				runStart = -1
			}
		}
	}
	return out
}
