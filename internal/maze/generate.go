package maze

import (
	"fmt"

	"mazeforge/internal/core"
	pcore "mazeforge/pkg/core"
)

// Stats records what each pipeline stage did.
type Stats struct {
	Blocks       int `json:"blocks"`
	LoopsOpened  int `json:"loopsOpened"`
	Repairs      int `json:"repairs"`
	CellsCleaned int `json:"cellsCleaned"`
}

// Result is a finished maze. The grid is handed over to the caller and must
// be treated as read-only by consumers until the next generation.
type Result struct {
	Grid     *core.Grid
	Geometry Geometry
	Start    core.Point
	End      core.Point
	Stats    Stats
}

// Generate runs the full pipeline once: size adjustment, path carving, loop
// injection, connectivity validation with repair, wall cleanup, and finally
// the border ring. It is synchronous and allocates a fresh grid per call.
func Generate(cfg Config, rng pcore.Rand) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = pcore.NewRNG(cfg.Seed)
	}
	geo := cfg.Geometry

	w, h, err := GridSize(cfg.Width, cfg.Height, geo)
	if err != nil {
		return nil, err
	}
	l := newLattice(w, h, geo)
	if l.empty() {
		return nil, fmt.Errorf("%w: %dx%d grid, border %d, block %dx%d",
			ErrInsufficientSize, w, h, geo.BorderThickness, geo.PathWidth, geo.PathHeight)
	}

	g := core.NewGrid(w, h)
	res := &Result{Grid: g, Geometry: geo}
	res.Start, res.End = endpoints(l)

	if res.Stats.Blocks, err = CarvePaths(g, geo, rng); err != nil {
		return nil, err
	}
	cfg.logf("maze: carved %d blocks on %dx%d grid", res.Stats.Blocks, w, h)

	res.Stats.LoopsOpened = InjectLoops(g, geo, cfg.Params.LoopChance, rng)
	cfg.logf("maze: opened %d loop joints", res.Stats.LoopsOpened)

	res.Stats.Repairs, err = EnsureConnected(g, geo, res.Start, res.End, cfg.Params.RepairAttempts)
	if err != nil {
		return nil, err
	}
	if res.Stats.Repairs > 0 {
		cfg.logf("maze: connectivity restored after %d repairs", res.Stats.Repairs)
	}

	res.Stats.CellsCleaned = CleanWalls(g, cfg.Params.CleanChance, rng)
	cfg.logf("maze: cleaned %d wall spurs", res.Stats.CellsCleaned)

	ApplyBorder(g, geo.BorderThickness)

	if !Connected(g, res.Start, res.End) {
		return nil, fmt.Errorf("%w: start %v and end %v disconnected after border pass", ErrGenerationFailed, res.Start, res.End)
	}
	return res, nil
}

// endpoints returns the top-left cell of the first block slot and the
// bottom-right cell of the last one.
func endpoints(l lattice) (core.Point, core.Point) {
	first := l.block(0, 0)
	last := l.block(l.cols-1, l.rows-1)
	return core.Point{X: first.X, Y: first.Y},
		core.Point{X: last.X + last.W - 1, Y: last.Y + last.H - 1}
}
