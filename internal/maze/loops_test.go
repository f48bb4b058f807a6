package maze

import (
	"testing"

	"mazeforge/internal/core"
)

func TestInjectLoopsOpensJointBetweenTwoCarvedBlocks(t *testing.T) {
	geo := testGeometry()
	g, l := blankGrid(t, 20, 20, geo)
	carveBlock(g, l, 0, 0)
	carveBlock(g, l, 1, 0)

	joints := l.joints()
	between := joints[0]
	if !between.Horizontal {
		t.Fatalf("first joint should be the horizontal one right of slot (0,0), got %+v", between)
	}
	if got := l.carvedNeighbours(g, between); got != 2 {
		t.Fatalf("carved neighbours = %d, want 2", got)
	}

	rng := &scriptedRand{f: 0}
	opened := InjectLoops(g, geo, 0.19, rng)
	if opened != 1 {
		t.Fatalf("opened %d joints, want 1", opened)
	}
	if !between.rect().is(g, core.Path) {
		t.Fatal("joint between two carved blocks should open when the draw succeeds")
	}
	if rng.floats != 1 {
		t.Fatalf("probability drawn %d times, want only for the eligible joint", rng.floats)
	}
}

func TestInjectLoopsNeverOpensJointWithFewerThanTwoCarvedNeighbours(t *testing.T) {
	geo := testGeometry()
	g, l := blankGrid(t, 20, 20, geo)
	carveBlock(g, l, 0, 0)

	before := append([]uint8(nil), g.Cells()...)
	opened := InjectLoops(g, geo, 1, &scriptedRand{f: 0})
	if opened != 0 {
		t.Fatalf("opened %d joints next to a single carved block", opened)
	}
	for i, c := range g.Cells() {
		if c != before[i] {
			t.Fatalf("cell %d changed although no joint was eligible", i)
		}
	}
}

func TestInjectLoopsRespectsFailedDraw(t *testing.T) {
	geo := testGeometry()
	g, l := blankGrid(t, 20, 20, geo)
	carveBlock(g, l, 0, 0)
	carveBlock(g, l, 0, 1)

	if opened := InjectLoops(g, geo, 0.19, &scriptedRand{f: 0.5}); opened != 0 {
		t.Fatalf("opened %d joints with a failing draw", opened)
	}
	if opened := InjectLoops(g, geo, 0.19, &scriptedRand{f: 0.1}); opened != 1 {
		t.Fatalf("opened %d joints with a passing draw, want 1", opened)
	}
}

func TestInjectLoopsSkipsJointsThatAreAlreadyOpen(t *testing.T) {
	geo := testGeometry()
	g, l := blankGrid(t, 20, 20, geo)
	carveBlock(g, l, 0, 0)
	carveBlock(g, l, 1, 0)
	link(g, l, 0, 0, 1, 0)

	rng := &scriptedRand{f: 0}
	if opened := InjectLoops(g, geo, 1, rng); opened != 0 {
		t.Fatalf("opened %d joints, want 0", opened)
	}
	if rng.floats != 0 {
		t.Fatalf("drew %d probabilities for an open joint", rng.floats)
	}
}

func TestJointNeighboursCountPerpendicularGaps(t *testing.T) {
	geo, _ := Preset("lattice")
	g, l := blankGrid(t, 7, 7, geo)
	carveBlock(g, l, 1, 1)
	carveBlock(g, l, 1, 2)

	var vertical Joint
	found := false
	bx, by := l.origin(1, 1)
	for _, jt := range l.joints() {
		if !jt.Horizontal && jt.X == bx && jt.Y == by+geo.PathHeight {
			vertical, found = jt, true
		}
	}
	if !found {
		t.Fatal("vertical joint below slot (1,1) not enumerated")
	}
	if got := CarvedNeighbours(g, geo, vertical); got != 2 {
		t.Fatalf("carved neighbours = %d, want 2", got)
	}

	// Open the gap to the left of the joint as well.
	g.Set(vertical.X-1, vertical.Y, core.Path)
	if got := CarvedNeighbours(g, geo, vertical); got != 3 {
		t.Fatalf("carved neighbours = %d, want 3", got)
	}
}
