package segment

import (
	"slices"
	"testing"

	"mazeforge/internal/core"
)

func lengths(segs []WallSegment) []int {
	out := make([]int, len(segs))
	for i, s := range segs {
		out[i] = s.Length
	}
	return out
}

func TestDecomposeGreedyBuckets(t *testing.T) {
	cases := map[int][]int{
		1:  {1},
		2:  {2},
		3:  {3},
		4:  {2, 2},
		5:  {5},
		6:  {5, 1},
		9:  {5, 2, 2},
		13: {5, 5, 3},
	}
	for n, want := range cases {
		if got := lengths(Decompose(0, 0, n)); !slices.Equal(got, want) {
			t.Fatalf("Decompose(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestDecomposeCoversRunExactly(t *testing.T) {
	for n := 1; n <= 64; n++ {
		x := 7
		for _, s := range Decompose(7, 3, n) {
			if s.StartX != x || s.StartY != 3 {
				t.Fatalf("run %d: segment %+v does not continue at x=%d", n, s, x)
			}
			if BucketLength(s.TextureIndex) != s.Length {
				t.Fatalf("run %d: texture %d used for length %d", n, s.TextureIndex, s.Length)
			}
			x += s.Length
		}
		if x != 7+n {
			t.Fatalf("run %d covered %d cells", n, x-7)
		}
	}
	if Decompose(0, 0, 0) != nil {
		t.Fatal("empty run should yield nothing")
	}
}

func TestAnalyzeRows(t *testing.T) {
	// ###.#
	// .....
	// ####.
	g := core.NewGrid(5, 3)
	g.Set(3, 0, core.Path)
	g.FillRect(0, 1, 5, 1, core.Path)
	g.Set(4, 2, core.Path)

	want := []WallSegment{
		{StartX: 0, StartY: 0, Length: 3, TextureIndex: TextureTriple},
		{StartX: 4, StartY: 0, Length: 1, TextureIndex: TextureSingle},
		{StartX: 0, StartY: 2, Length: 2, TextureIndex: TextureDouble},
		{StartX: 2, StartY: 2, Length: 2, TextureIndex: TextureDouble},
	}
	if got := Analyze(g, nil); !slices.Equal(got, want) {
		t.Fatalf("Analyze = %+v, want %+v", got, want)
	}
}

func TestAnalyzeRespectsRenderable(t *testing.T) {
	g := core.NewGrid(5, 1)
	hidden := func(x, y int) bool { return x != 2 }

	got := Analyze(g, hidden)
	want := []WallSegment{
		{StartX: 0, StartY: 0, Length: 2, TextureIndex: TextureDouble},
		{StartX: 3, StartY: 0, Length: 2, TextureIndex: TextureDouble},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Analyze = %+v, want %+v", got, want)
	}
}

func TestAnalyzeCountsEveryRenderableWall(t *testing.T) {
	g := core.NewGrid(17, 9)
	for i := range g.Cells() {
		if i%3 == 0 || i%7 == 0 {
			g.Cells()[i] = uint8(core.Path)
		}
	}
	total := 0
	for _, s := range Analyze(g, nil) {
		total += s.Length
		for x := s.StartX; x < s.StartX+s.Length; x++ {
			if g.At(x, s.StartY) != core.Wall {
				t.Fatalf("segment %+v covers path cell (%d,%d)", s, x, s.StartY)
			}
		}
	}
	if total != g.Count(core.Wall) {
		t.Fatalf("segments cover %d cells, grid has %d walls", total, g.Count(core.Wall))
	}
}

func TestAnalyzeNilGrid(t *testing.T) {
	if Analyze(nil, nil) != nil {
		t.Fatal("nil grid should yield no segments")
	}
	g := core.NewGrid(3, 3)
	g.Fill(core.Path)
	if len(Analyze(g, nil)) != 0 {
		t.Fatal("all-path grid should yield no segments")
	}
}
