//go:build ebiten

package render

import (
	"image/color"

	"mazeforge/internal/segment"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads maze cells into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws cells with the palette, scaled up by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// TexturePool owns the GPU copy of a wall atlas. Each variant slice is cut
// once up front so drawing never allocates.
type TexturePool struct {
	atlas  *Atlas
	image  *ebiten.Image
	slices [segment.TextureCount][]*ebiten.Image
}

// NewTexturePool uploads a freshly painted atlas.
func NewTexturePool(cellPx, variants int, seed int64) *TexturePool {
	atlas := NewAtlas(cellPx, variants, seed)
	p := &TexturePool{atlas: atlas, image: ebiten.NewImageFromImage(atlas.Image)}
	for idx := range p.slices {
		p.slices[idx] = make([]*ebiten.Image, atlas.Variants)
		for v := range p.slices[idx] {
			p.slices[idx][v] = p.image.SubImage(atlas.Rect(idx, v)).(*ebiten.Image)
		}
	}
	return p
}

// Variants reports how many looks each bucket has.
func (p *TexturePool) Variants() int { return p.atlas.Variants }

// CellPx reports the texel size of one grid cell.
func (p *TexturePool) CellPx() int { return p.atlas.CellPx }

// Slice returns the image for a segment, or nil for an unknown bucket.
func (p *TexturePool) Slice(s segment.WallSegment) *ebiten.Image {
	if s.TextureIndex < 0 || s.TextureIndex >= segment.TextureCount {
		return nil
	}
	return p.slices[s.TextureIndex][segment.VariantFor(s, p.atlas.Variants)]
}

// SegmentPainter draws wall segments as textured strips.
type SegmentPainter struct {
	op ebiten.DrawImageOptions
}

// NewSegmentPainter returns a painter ready to draw.
func NewSegmentPainter() *SegmentPainter { return &SegmentPainter{} }

// Draw blits every segment from pool onto dst. One cell maps to scale screen
// pixels.
func (sp *SegmentPainter) Draw(dst *ebiten.Image, segments []segment.WallSegment, pool *TexturePool, scale int) {
	if pool == nil || scale <= 0 {
		return
	}
	k := float64(scale) / float64(pool.CellPx())
	for _, s := range segments {
		img := pool.Slice(s)
		if img == nil {
			continue
		}
		sp.op.GeoM.Reset()
		sp.op.GeoM.Scale(k, k)
		sp.op.GeoM.Translate(float64(s.StartX*scale), float64(s.StartY*scale))
		dst.DrawImage(img, &sp.op)
	}
}
