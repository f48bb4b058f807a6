package app

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"mazeforge/internal/core"
	"mazeforge/internal/maze"
)

type failingSource struct {
	core.Source
	fail bool
}

func (f *failingSource) Reset(seed int64) error {
	if f.fail {
		return maze.ErrGenerationFailed
	}
	return f.Source.Reset(seed)
}

func newLevel(t *testing.T) *maze.Level {
	t.Helper()
	cfg, err := maze.ConfigForPreset("compact", map[string]string{"w": "12", "h": "12"})
	if err != nil {
		t.Fatalf("ConfigForPreset: %v", err)
	}
	return maze.NewLevel("compact", cfg)
}

func TestDriverReseedAndRegenerate(t *testing.T) {
	d := NewDriver(newLevel(t), 3, 0, log.New(&bytes.Buffer{}, "", 0))
	if err := d.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if err := d.Reseed(8); err != nil {
		t.Fatalf("Reseed: %v", err)
	}
	if d.Seed() != 8 || d.Generations() != 2 {
		t.Fatalf("seed = %d, generations = %d", d.Seed(), d.Generations())
	}
}

func TestDriverAutoTick(t *testing.T) {
	d := NewDriver(newLevel(t), 3, time.Second, nil)
	if !d.Auto() {
		t.Fatal("positive interval should enable auto")
	}
	base := time.Unix(100, 0)
	if fired, _ := d.Tick(base); fired {
		t.Fatal("first tick should only arm")
	}
	fired, err := d.Tick(base.Add(time.Second))
	if !fired || err != nil {
		t.Fatalf("Tick = %v, %v", fired, err)
	}
	if d.Seed() != 4 {
		t.Fatalf("auto regeneration used seed %d, want 4", d.Seed())
	}

	d.ToggleAuto()
	if fired, _ := d.Tick(base.Add(10 * time.Second)); fired {
		t.Fatal("tick fired with auto off")
	}
}

func TestDriverKeepsSeedOnFailure(t *testing.T) {
	var buf bytes.Buffer
	src := &failingSource{Source: newLevel(t)}
	d := NewDriver(src, 3, 0, log.New(&buf, "", 0))
	if err := d.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}

	src.fail = true
	if err := d.Reseed(50); !errors.Is(err, maze.ErrGenerationFailed) {
		t.Fatalf("err = %v", err)
	}
	if d.Seed() != 3 || d.Err() == nil {
		t.Fatalf("seed = %d, err = %v", d.Seed(), d.Err())
	}
	if !strings.Contains(buf.String(), "seed 50") {
		t.Fatalf("failure not logged: %q", buf.String())
	}
}

func TestDriverSeedTracksSource(t *testing.T) {
	level := newLevel(t)
	if level.Seed() == 0 {
		t.Fatal("test needs a non-zero configured seed")
	}
	d := NewDriver(level, 0, time.Second, log.New(io.Discard, "", 0))
	if err := d.Reseed(0); err != nil {
		t.Fatalf("Reseed: %v", err)
	}
	if d.Seed() != 0 || level.Seed() != 0 {
		t.Fatalf("driver seed %d, level seed %d, want 0", d.Seed(), level.Seed())
	}

	base := time.Unix(100, 0)
	d.Tick(base)
	if fired, err := d.Tick(base.Add(time.Second)); !fired || err != nil {
		t.Fatalf("Tick = %v, %v", fired, err)
	}
	if d.Seed() != 1 || level.Seed() != d.Seed() {
		t.Fatalf("driver seed %d, level seed %d, want 1", d.Seed(), level.Seed())
	}
}
