//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mazeforge/internal/app"
	"mazeforge/internal/core"
	_ "mazeforge/internal/maze"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sources()[cfg.Preset]
	if !ok {
		log.Fatalf("unknown preset %q (have %v)", cfg.Preset, core.SourceNames())
	}

	src, err := factory(cfg.Overrides())
	if err != nil {
		log.Fatal(err)
	}
	driver := app.NewDriver(src, cfg.Seed, cfg.Auto, log.Default())
	if err := driver.Regenerate(); err != nil {
		log.Fatal(err)
	}

	game := app.New(driver, cfg.Scale)
	size := src.Size()

	ebiten.SetWindowTitle("maze: " + src.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
