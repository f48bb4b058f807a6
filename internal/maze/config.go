package maze

import (
	"fmt"
	"log"
	"sort"
	"strconv"
)

// Geometry fixes the block lattice a maze is carved on.
type Geometry struct {
	PathWidth       int
	PathHeight      int
	WallWidth       int
	WallHeight      int
	BorderThickness int
}

// StrideX is the lattice spacing along x.
func (g Geometry) StrideX() int { return g.PathWidth + g.WallWidth }

// StrideY is the lattice spacing along y.
func (g Geometry) StrideY() int { return g.PathHeight + g.WallHeight }

// Validate reports ErrInvalidConfiguration for non-positive block sizes or a
// negative border.
func (g Geometry) Validate() error {
	if g.PathWidth <= 0 || g.PathHeight <= 0 {
		return fmt.Errorf("%w: path block %dx%d", ErrInvalidConfiguration, g.PathWidth, g.PathHeight)
	}
	if g.WallWidth <= 0 || g.WallHeight <= 0 {
		return fmt.Errorf("%w: wall gap %dx%d", ErrInvalidConfiguration, g.WallWidth, g.WallHeight)
	}
	if g.BorderThickness < 0 {
		return fmt.Errorf("%w: border thickness %d", ErrInvalidConfiguration, g.BorderThickness)
	}
	return nil
}

var presets = map[string]Geometry{
	"classic": {PathWidth: 2, PathHeight: 3, WallWidth: 1, WallHeight: 1, BorderThickness: 12},
	"compact": {PathWidth: 2, PathHeight: 3, WallWidth: 1, WallHeight: 1, BorderThickness: 1},
	"lattice": {PathWidth: 1, PathHeight: 1, WallWidth: 1, WallHeight: 1, BorderThickness: 1},
}

// DefaultPreset names the geometry used by DefaultConfig.
const DefaultPreset = "classic"

// Preset returns the named geometry.
func Preset(name string) (Geometry, bool) {
	g, ok := presets[name]
	return g, ok
}

// PresetNames lists the built-in geometries in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Params holds the probabilities and limits of the post-carve passes.
type Params struct {
	LoopChance     float64
	CleanChance    float64
	RepairAttempts int
}

// Config controls maze dimensions and pipeline tunables. Width and Height are
// the requested playable interior; the border ring is added around it.
type Config struct {
	Width  int
	Height int

	Seed int64

	Geometry Geometry
	Params   Params

	// Logger receives per-stage diagnostics. Nil keeps generation quiet.
	Logger *log.Logger
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	geo, _ := Preset(DefaultPreset)
	return Config{
		Width:    48,
		Height:   48,
		Seed:     1337,
		Geometry: geo,
		Params: Params{
			LoopChance:     0.19,
			CleanChance:    0.70,
			RepairAttempts: 8,
		},
	}
}

// Validate checks the configuration before any grid is allocated.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: requested size %dx%d", ErrInvalidConfiguration, c.Width, c.Height)
	}
	if err := c.Geometry.Validate(); err != nil {
		return err
	}
	if c.Params.LoopChance < 0 || c.Params.LoopChance > 1 {
		return fmt.Errorf("%w: loop chance %v outside [0,1]", ErrInvalidConfiguration, c.Params.LoopChance)
	}
	if c.Params.CleanChance < 0 || c.Params.CleanChance > 1 {
		return fmt.Errorf("%w: clean chance %v outside [0,1]", ErrInvalidConfiguration, c.Params.CleanChance)
	}
	if c.Params.RepairAttempts < 0 {
		return fmt.Errorf("%w: repair attempts %d", ErrInvalidConfiguration, c.Params.RepairAttempts)
	}
	return nil
}

func (c Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok {
		if geo, found := Preset(v); found {
			c.Geometry = geo
		}
	}
	for key, v := range cfg {
		ApplyOverride(&c, key, v)
	}
	return c
}

// ApplyOverride sets a single tunable by key. It reports whether the key was
// recognised and the value accepted.
func ApplyOverride(c *Config, key, value string) bool {
	switch key {
	case "w", "width":
		return setPositiveInt(&c.Width, value)
	case "h", "height":
		return setPositiveInt(&c.Height, value)
	case "seed":
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return false
		}
		c.Seed = parsed
		return true
	case "loop_chance":
		return setChance(&c.Params.LoopChance, value)
	case "clean_chance":
		return setChance(&c.Params.CleanChance, value)
	case "repair_attempts":
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return false
		}
		c.Params.RepairAttempts = parsed
		return true
	case "path_w":
		return setPositiveInt(&c.Geometry.PathWidth, value)
	case "path_h":
		return setPositiveInt(&c.Geometry.PathHeight, value)
	case "wall_w":
		return setPositiveInt(&c.Geometry.WallWidth, value)
	case "wall_h":
		return setPositiveInt(&c.Geometry.WallHeight, value)
	case "border":
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return false
		}
		c.Geometry.BorderThickness = parsed
		return true
	}
	return false
}

func setPositiveInt(dst *int, value string) bool {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return false
	}
	*dst = parsed
	return true
}

func setChance(dst *float64, value string) bool {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 || parsed > 1 {
		return false
	}
	*dst = parsed
	return true
}
