package app

import (
	"flag"
	"testing"
	"time"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-preset", "lattice", "-scale", "4", "-seed", "99", "-w", "31", "-h", "21", "-auto", "2s"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Preset != "lattice" || cfg.Scale != 4 || cfg.Seed != 99 || cfg.W != 31 || cfg.H != 21 || cfg.Auto != 2*time.Second {
		t.Fatalf("config = %+v", cfg)
	}

	ov := cfg.Overrides()
	if ov["w"] != "31" || ov["h"] != "21" || ov["seed"] != "99" {
		t.Fatalf("overrides = %v", ov)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Preset != "classic" || cfg.TPS != 60 || cfg.Auto != 0 {
		t.Fatalf("defaults = %+v", cfg)
	}
}
