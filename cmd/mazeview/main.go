package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"mazeforge/internal/app"
	"mazeforge/internal/audio"
	"mazeforge/internal/maze"
	"mazeforge/internal/render"

	"github.com/gdamore/tcell/v2"
)

type viewer struct {
	screen tcell.Screen
	level  *maze.Level
	driver *app.Driver
	term   *render.Terminal
	cues   *audio.Cues

	showTrail bool
	showDoor  bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	mute := flag.Bool("mute", false, "disable cue tones")
	logPath := flag.String("log", "", "write diagnostics to this file instead of discarding them")
	flag.Parse()

	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = log.New(f, "mazeview ", log.LstdFlags)
	}

	mcfg, err := maze.ConfigForPreset(cfg.Preset, cfg.Overrides())
	if err != nil {
		log.Fatal(err)
	}
	mcfg.Logger = logger
	level := maze.NewLevel(cfg.Preset, mcfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	v := &viewer{
		screen:   screen,
		level:    level,
		driver:   app.NewDriver(level, cfg.Seed, cfg.Auto, logger),
		term:     render.NewTerminal(),
		cues:     audio.NewCues(),
		showDoor: true,
	}
	v.term.OffsetY = 1
	if !*mute {
		if err := v.cues.Initialize(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
	}
	defer v.cues.Close()

	if err := v.driver.Regenerate(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	v.run(cfg.TPS)
}

func (v *viewer) run(tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(tps, 1)))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	v.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return
			}
			v.draw()
		case now := <-ticker.C:
			if fired, err := v.driver.Tick(now); fired {
				v.cue(err)
				v.draw()
			}
		}
	}
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			v.cue(v.driver.Regenerate())
		case 's':
			v.cue(v.driver.Reseed(time.Now().UnixNano()))
		case 'n':
			v.cue(v.driver.Reseed(v.driver.Seed() + 1))
		case 'a':
			v.driver.ToggleAuto()
		case '1':
			v.showTrail = !v.showTrail
		case '2':
			v.showDoor = !v.showDoor
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) cue(err error) {
	if err != nil {
		v.cues.Failed()
		return
	}
	v.cues.Generated()
}

func (v *viewer) draw() {
	v.screen.Clear()
	v.term.Draw(v.screen, v.level.Grid(), v.level.Segments())
	if v.showTrail {
		v.term.DrawTrail(v.screen, v.level.Solution())
	}
	if start, end, ok := v.level.Endpoints(); ok {
		v.term.DrawMarker(v.screen, start, v.term.Start)
		v.term.DrawMarker(v.screen, end, v.term.End)
	}
	if door, ok := v.level.Exit(); ok && v.showDoor {
		v.term.DrawMarker(v.screen, door, v.term.Door)
	}

	st := v.level.Result().Stats
	status := fmt.Sprintf("%s seed %d  loops %d  cleaned %d  auto %v  [r]eset [s]eed [n]ext [a]uto [1]trail [2]door [q]uit",
		v.level.Name(), v.driver.Seed(), st.LoopsOpened, st.CellsCleaned, v.driver.Auto())
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if err := v.driver.Err(); err != nil {
		status = "error: " + err.Error()
		style = style.Foreground(tcell.ColorRed)
	}
	render.DrawText(v.screen, 0, 0, status, style)
	v.screen.Show()
}
