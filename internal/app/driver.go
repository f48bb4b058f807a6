package app

import (
	"log"
	"time"

	"mazeforge/internal/core"
)

// Driver owns regeneration for a viewer: manual resets, reseeding and the
// optional auto-regenerate cadence. Failed generations keep the previous
// maze and are reported through Err.
type Driver struct {
	src     core.Source
	seed    int64
	auto    bool
	cadence *core.Cadence
	logger  *log.Logger
	err     error
	count   int
}

// NewDriver wraps src. A positive every enables auto regeneration.
func NewDriver(src core.Source, seed int64, every time.Duration, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{src: src, seed: seed, auto: every > 0, cadence: core.NewCadence(every), logger: logger}
}

// Source returns the wrapped source.
func (d *Driver) Source() core.Source { return d.src }

// Seed returns the seed of the last successful generation.
func (d *Driver) Seed() int64 { return d.seed }

// Generations counts successful generations.
func (d *Driver) Generations() int { return d.count }

// Err returns the error of the last attempt, or nil.
func (d *Driver) Err() error { return d.err }

// Regenerate rebuilds the maze with the current seed.
func (d *Driver) Regenerate() error { return d.Reseed(d.seed) }

// Reseed rebuilds the maze with seed and records the seed the source
// reports afterwards.
func (d *Driver) Reseed(seed int64) error {
	d.err = d.src.Reset(seed)
	if d.err != nil {
		d.logger.Printf("maze %s: seed %d: %v", d.src.Name(), seed, d.err)
		return d.err
	}
	d.seed = d.src.Seed()
	d.count++
	return nil
}

// Auto reports whether auto regeneration is on.
func (d *Driver) Auto() bool { return d.auto }

// ToggleAuto flips auto regeneration and restarts the countdown.
func (d *Driver) ToggleAuto() bool {
	d.auto = !d.auto
	d.cadence.SetInterval(d.cadence.Interval())
	return d.auto
}

// Tick advances the auto cadence. When it fires the maze is rebuilt with
// the next seed; the returned flag reports whether a generation was tried.
func (d *Driver) Tick(now time.Time) (bool, error) {
	if !d.auto || !d.cadence.Due(now) {
		return false, nil
	}
	return true, d.Reseed(d.seed + 1)
}
