package render

import (
	"bytes"
	"testing"

	"mazeforge/internal/segment"
)

func TestAtlasRectMatchesBucketLength(t *testing.T) {
	a := NewAtlas(8, 3, 1)
	for idx := 0; idx < segment.TextureCount; idx++ {
		for v := 0; v < 3; v++ {
			r := a.Rect(idx, v)
			if r.Dx() != segment.BucketLength(idx)*8 || r.Dy() != 8 {
				t.Fatalf("rect(%d,%d) = %v", idx, v, r)
			}
			if !r.In(a.Image.Bounds()) {
				t.Fatalf("rect(%d,%d) = %v outside atlas %v", idx, v, r, a.Image.Bounds())
			}
		}
	}
	if !a.Rect(segment.TextureCount, 0).Empty() || !a.Rect(0, 3).Empty() {
		t.Fatal("out of range lookups should be empty")
	}
}

func TestAtlasDeterministic(t *testing.T) {
	a, b := NewAtlas(6, 2, 42), NewAtlas(6, 2, 42)
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Fatal("same seed painted different atlases")
	}
	c := NewAtlas(6, 2, 43)
	if bytes.Equal(a.Image.Pix, c.Image.Pix) {
		t.Fatal("different seeds painted identical atlases")
	}
}

func TestAtlasVariantsDiffer(t *testing.T) {
	a := NewAtlas(8, 2, 5)
	r0, r1 := a.Rect(segment.TextureFive, 0), a.Rect(segment.TextureFive, 1)
	same := true
	for y := 0; y < r0.Dy() && same; y++ {
		for x := 0; x < r0.Dx(); x++ {
			if a.Image.RGBAAt(r0.Min.X+x, r0.Min.Y+y) != a.Image.RGBAAt(r1.Min.X+x, r1.Min.Y+y) {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("variants of one bucket look identical")
	}
}
