package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"slices"
	"strings"

	"mazeforge/internal/maze"
	"mazeforge/internal/segment"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	preset := flag.String("preset", maze.DefaultPreset, "maze geometry preset")
	runs := flag.Int("runs", 200, "number of mazes to generate")
	base := flag.Int64("seed", 1, "first seed; runs use consecutive seeds")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel generations")
	verbose := flag.Bool("v", false, "log every pipeline stage")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	kv := map[string]string{}
	for _, item := range overrides {
		parts := strings.SplitN(item, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set %q, want key=value", item)
		}
		kv[parts[0]] = parts[1]
	}
	cfg, err := maze.ConfigForPreset(*preset, kv)
	if err != nil {
		log.Fatal(err)
	}
	for key, value := range kv {
		if !maze.ApplyOverride(&cfg, key, value) {
			log.Fatalf("override %s=%s rejected", key, value)
		}
	}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "", 0)
	}

	w, h, err := maze.GridSize(cfg.Width, cfg.Height, cfg.Geometry)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Preset %s: requested %dx%d, grid %dx%d, loop %.2f, clean %.2f, repairs %d\n",
		*preset, cfg.Width, cfg.Height, w, h, cfg.Params.LoopChance, cfg.Params.CleanChance, cfg.Params.RepairAttempts)

	rep := maze.Survey(cfg, maze.SeedRange(*base, *runs), *workers)
	ok := rep.Runs - len(rep.Failures)
	fmt.Printf("Runs: %d ok, %d failed\n", ok, len(rep.Failures))
	if ok > 0 {
		fmt.Printf("Loops opened: %.2f avg\n", float64(rep.LoopsTotal)/float64(ok))
		fmt.Printf("Repairs: %.2f avg, %d max\n", float64(rep.RepairsTotal)/float64(ok), rep.RepairsMax)
		fmt.Printf("Walls cleaned: %.2f avg\n", float64(rep.CleanedTotal)/float64(ok))
		fmt.Printf("Solution length: min %d, mean %.1f, max %d\n", rep.SolutionMin, rep.SolutionMean, rep.SolutionMax)
		fmt.Printf("Wall segments: %.1f avg per maze\n", float64(rep.SegmentsTotal)/float64(ok))
		printLengths(rep)
	}
	for _, f := range rep.Failures {
		fmt.Printf("  seed %d: %v\n", f.Seed, f.Err)
	}
	if len(rep.Failures) > 0 {
		if errors.Is(rep.Failures[0].Err, maze.ErrInsufficientSize) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func printLengths(rep maze.SurveyReport) {
	lengths := make([]int, 0, len(rep.Lengths))
	for length := range rep.Lengths {
		lengths = append(lengths, length)
	}
	slices.Sort(lengths)
	for _, length := range lengths {
		share := float64(rep.Lengths[length]) / float64(rep.SegmentsTotal) * 100
		fmt.Printf("  len %d (texture %d): %d segments, %.1f%%\n", length, textureFor(length), rep.Lengths[length], share)
	}
}

func textureFor(length int) int {
	for idx := 0; idx < segment.TextureCount; idx++ {
		if segment.BucketLength(idx) == length {
			return idx
		}
	}
	return -1
}
