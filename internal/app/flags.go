package app

import (
	"flag"
	"strconv"
	"time"

	"mazeforge/internal/maze"
)

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Preset string
	Scale  int
	TPS    int
	Seed   int64
	W      int
	H      int
	// Auto regenerates with the next seed at this interval; zero disables it.
	Auto time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := maze.DefaultConfig()
	return &Config{Preset: maze.DefaultPreset, Scale: 6, TPS: 60, Seed: def.Seed, W: def.Width, H: def.Height}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "maze geometry preset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for maze generation")
	fs.IntVar(&c.W, "w", c.W, "requested maze width in cells")
	fs.IntVar(&c.H, "h", c.H, "requested maze height in cells")
	fs.DurationVar(&c.Auto, "auto", c.Auto, "regenerate on this interval (0 disables)")
}

// Overrides converts the size and seed flags into factory overrides.
func (c *Config) Overrides() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.W),
		"h":    strconv.Itoa(c.H),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
