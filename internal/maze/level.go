package maze

import (
	"fmt"
	"strconv"

	"mazeforge/internal/core"
	"mazeforge/internal/segment"
	pcore "mazeforge/pkg/core"
)

// Level owns the current maze for a viewer: it regenerates on Reset, keeps
// the exit door feature and hands out cached wall segments.
type Level struct {
	name string
	cfg  Config
	seed int64

	result   *Result
	solution []core.Point
	exit     *core.Point
	analyzer *segment.Analyzer
}

// NewLevel returns a level that has not generated anything yet.
func NewLevel(name string, cfg Config) *Level {
	l := &Level{name: name, cfg: cfg, seed: cfg.Seed}
	l.analyzer = segment.NewAnalyzer(l.renderable)
	return l
}

// ConfigForPreset builds a config from the named geometry plus flag-style
// overrides.
func ConfigForPreset(name string, overrides map[string]string) (Config, error) {
	geo, ok := Preset(name)
	if !ok {
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfiguration, name)
	}
	c := DefaultConfig()
	c.Geometry = geo
	for key, value := range overrides {
		ApplyOverride(&c, key, value)
	}
	return c, c.Validate()
}

// Name returns the preset the level was built from.
func (l *Level) Name() string { return l.name }

// Config returns the active configuration.
func (l *Level) Config() Config { return l.cfg }

// Seed returns the seed of the current maze, or the configured seed before
// the first Reset.
func (l *Level) Seed() int64 { return l.seed }

// Size reports the grid dimensions, or the dimensions the next Reset will
// produce when nothing has been generated yet.
func (l *Level) Size() core.Size {
	if l.result != nil {
		return core.Size{W: l.result.Grid.W, H: l.result.Grid.H}
	}
	w, h, err := GridSize(l.cfg.Width, l.cfg.Height, l.cfg.Geometry)
	if err != nil {
		return core.Size{}
	}
	return core.Size{W: w, H: h}
}

// Reset generates a new maze from seed. Every seed, zero included, is used
// as given; Seed reports the configured one until the first Reset. On
// failure the previous maze stays in place.
func (l *Level) Reset(seed int64) error {
	res, err := Generate(l.cfg, pcore.NewRNG(seed))
	if err != nil {
		return err
	}
	l.seed = seed
	l.result = res
	l.solution = nil
	l.exit = nil
	if door := (core.Point{X: res.End.X + 1, Y: res.End.Y}); res.Grid.InBounds(door.X, door.Y) && res.Grid.At(door.X, door.Y) == core.Wall {
		l.exit = &door
	}
	l.analyzer.Invalidate()
	return nil
}

// Result returns the current maze or nil before the first successful Reset.
func (l *Level) Result() *Result { return l.result }

// Grid returns the current grid or nil.
func (l *Level) Grid() *core.Grid {
	if l.result == nil {
		return nil
	}
	return l.result.Grid
}

// Cells exposes the current grid cells.
func (l *Level) Cells() []uint8 {
	if g := l.Grid(); g != nil {
		return g.Cells()
	}
	return nil
}

// Solution returns the shortest start-to-end path of the current maze.
func (l *Level) Solution() []core.Point {
	if l.result == nil {
		return nil
	}
	if l.solution == nil {
		l.solution = Solve(l.result.Grid, l.result.Start, l.result.End)
	}
	return l.solution
}

// Endpoints returns the start and end cells of the current maze.
func (l *Level) Endpoints() (core.Point, core.Point, bool) {
	if l.result == nil {
		return core.Point{}, core.Point{}, false
	}
	return l.result.Start, l.result.End, true
}

// Exit returns the wall cell occupied by the exit door, if any.
func (l *Level) Exit() (core.Point, bool) {
	if l.exit == nil {
		return core.Point{}, false
	}
	return *l.exit, true
}

// SetExit moves the exit door to a wall cell. It reports false when the cell
// is not an in-bounds wall.
func (l *Level) SetExit(p core.Point) bool {
	g := l.Grid()
	if g == nil || !g.InBounds(p.X, p.Y) || g.At(p.X, p.Y) != core.Wall {
		return false
	}
	l.exit = &p
	l.analyzer.Invalidate()
	return true
}

// ClearExit removes the exit door.
func (l *Level) ClearExit() {
	l.exit = nil
	l.analyzer.Invalidate()
}

func (l *Level) renderable(x, y int) bool {
	return l.exit == nil || l.exit.X != x || l.exit.Y != y
}

// Segments returns the renderable wall segments of the current maze.
func (l *Level) Segments() []segment.WallSegment {
	return l.analyzer.Segments(l.Grid())
}

// Parameters reports the current tunables and the stats of the last run.
func (l *Level) Parameters() core.ParameterSnapshot {
	size := l.Size()
	geo := l.cfg.Geometry
	groups := []core.ParameterGroup{
		{
			Name: "Maze",
			Params: []core.Parameter{
				core.StringParam("preset", "Preset", l.name),
				core.IntParam("w", "Width", int64(l.cfg.Width)),
				core.IntParam("h", "Height", int64(l.cfg.Height)),
				core.IntParam("grid_w", "Grid width", int64(size.W)),
				core.IntParam("grid_h", "Grid height", int64(size.H)),
				core.IntParam("seed", "Seed", l.seed),
			},
		},
		{
			Name: "Geometry",
			Params: []core.Parameter{
				core.StringParam("block", "Path block", strconv.Itoa(geo.PathWidth)+"x"+strconv.Itoa(geo.PathHeight)),
				core.StringParam("gap", "Wall gap", strconv.Itoa(geo.WallWidth)+"x"+strconv.Itoa(geo.WallHeight)),
				core.IntParam("border", "Border", int64(geo.BorderThickness)),
			},
		},
		{
			Name: "Pipeline",
			Params: []core.Parameter{
				core.FloatParam("loop_chance", "Loop chance", l.cfg.Params.LoopChance),
				core.FloatParam("clean_chance", "Clean chance", l.cfg.Params.CleanChance),
				core.IntParam("repair_attempts", "Repair attempts", int64(l.cfg.Params.RepairAttempts)),
			},
		},
	}
	if l.result != nil {
		st := l.result.Stats
		groups = append(groups, core.ParameterGroup{
			Name: "Last Run",
			Params: []core.Parameter{
				core.IntParam("blocks", "Blocks carved", int64(st.Blocks)),
				core.IntParam("loops", "Loops opened", int64(st.LoopsOpened)),
				core.IntParam("repairs", "Repairs", int64(st.Repairs)),
				core.IntParam("cleaned", "Walls cleaned", int64(st.CellsCleaned)),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables.
func (l *Level) ParameterControls() []core.ParameterControl {
	geo := l.cfg.Geometry
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: float64(geo.StrideX()), Min: 1, Max: 1024, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: float64(geo.StrideY()), Min: 1, Max: 1024, HasMin: true, HasMax: true},
		{Key: "loop_chance", Label: "Loop chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "clean_chance", Label: "Clean chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "repair_attempts", Label: "Repair attempts", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 64, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable and regenerates with the
// current seed. The change is rolled back if regeneration fails.
func (l *Level) SetIntParameter(key string, value int) bool {
	return l.apply(key, strconv.Itoa(value))
}

// SetFloatParameter updates a probability tunable and regenerates with the
// current seed.
func (l *Level) SetFloatParameter(key string, value float64) bool {
	return l.apply(key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (l *Level) apply(key, value string) bool {
	prev := l.cfg
	if !ApplyOverride(&l.cfg, key, value) {
		return false
	}
	if err := l.Reset(l.seed); err != nil {
		l.cfg = prev
		return false
	}
	return true
}

func init() {
	for _, name := range PresetNames() {
		core.Register(name, func(cfg map[string]string) (core.Source, error) {
			c, err := ConfigForPreset(name, cfg)
			if err != nil {
				return nil, err
			}
			return NewLevel(name, c), nil
		})
	}
}
