package render

import (
	"image"
	"image/color"

	"mazeforge/internal/segment"
	pcore "mazeforge/pkg/core"
)

// slotCells is the widest bucket; every variant slot in the atlas reserves
// this many cells so rectangles can be computed without a lookup table.
const slotCells = 5

// Atlas is a procedurally generated wall texture sheet. Row i holds the
// variants for texture index i; variant v of a bucket of length n occupies
// n*CellPx pixels starting at v*slotCells*CellPx.
type Atlas struct {
	CellPx   int
	Variants int
	Image    *image.RGBA
}

// NewAtlas paints a brick atlas with variants slices per texture index. The
// same seed always produces the same pixels.
func NewAtlas(cellPx, variants int, seed int64) *Atlas {
	if cellPx < 2 {
		cellPx = 2
	}
	if variants < 1 {
		variants = 1
	}
	w := variants * slotCells * cellPx
	h := segment.TextureCount * cellPx
	a := &Atlas{CellPx: cellPx, Variants: variants, Image: image.NewRGBA(image.Rect(0, 0, w, h))}
	for idx := 0; idx < segment.TextureCount; idx++ {
		for v := 0; v < variants; v++ {
			rng := pcore.NewRNG(seed + int64(idx*variants+v))
			a.paintBricks(a.Rect(idx, v), rng)
		}
	}
	return a
}

// Rect returns the atlas rectangle for a texture index and variant. Unknown
// indices yield an empty rectangle.
func (a *Atlas) Rect(textureIndex, variant int) image.Rectangle {
	n := segment.BucketLength(textureIndex)
	if n == 0 || variant < 0 || variant >= a.Variants {
		return image.Rectangle{}
	}
	x := variant * slotCells * a.CellPx
	y := textureIndex * a.CellPx
	return image.Rect(x, y, x+n*a.CellPx, y+a.CellPx)
}

var (
	brickBase = color.RGBA{R: 120, G: 62, B: 48, A: 255}
	mortar    = color.RGBA{R: 58, G: 52, B: 50, A: 255}
)

// paintBricks fills r with two courses of running-bond brick. The vertical
// joints of the lower course are offset by half a brick and every brick gets
// its own shade.
func (a *Atlas) paintBricks(r image.Rectangle, rng *pcore.RNG) {
	course := max(r.Dy()/2, 1)
	brick := max(a.CellPx, 2)
	shift := rng.IntN(brick)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y - r.Min.Y) / course
		offset := shift
		if row%2 == 1 {
			offset += brick / 2
		}
		shade := 0.0
		lastBrick := -1
		for x := r.Min.X; x < r.Max.X; x++ {
			local := x - r.Min.X + offset
			id := local / brick
			if id != lastBrick {
				shade = 0.8 + 0.35*rng.Float64()
				lastBrick = id
			}
			if (y-r.Min.Y)%course == 0 || local%brick == 0 {
				a.Image.SetRGBA(x, y, mortar)
				continue
			}
			a.Image.SetRGBA(x, y, shadeRGBA(brickBase, shade))
		}
	}
}

func shadeRGBA(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{R: scaleComponent(c.R, f), G: scaleComponent(c.G, f), B: scaleComponent(c.B, f), A: c.A}
}

func scaleComponent(v uint8, f float64) uint8 {
	return uint8(min(max(float64(v)*f, 0), 255))
}

// Bounds returns the screen rectangle a segment covers when one cell is
// scale pixels wide.
func Bounds(s segment.WallSegment, scale int) image.Rectangle {
	return image.Rect(s.StartX*scale, s.StartY*scale, (s.StartX+s.Length)*scale, (s.StartY+1)*scale)
}
