package maze

import (
	"sort"
	"sync"

	"mazeforge/internal/segment"
	pcore "mazeforge/pkg/core"
)

// RunRecord captures telemetry from one generation in a survey.
type RunRecord struct {
	Seed     int64
	Err      error
	Stats    Stats
	Solution int
	Segments int
	// Lengths counts segments per length bucket.
	Lengths map[int]int
}

// SurveyReport aggregates a batch of generations.
type SurveyReport struct {
	Runs     int
	Failures []RunRecord

	LoopsTotal   int
	RepairsTotal int
	RepairsMax   int
	CleanedTotal int

	SolutionMin  int
	SolutionMax  int
	SolutionMean float64

	SegmentsTotal int
	Lengths       map[int]int
}

// SeedRange returns n consecutive seeds starting at base.
func SeedRange(base int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}
	return seeds
}

// SurveyRun generates a single maze for seed and measures it.
func SurveyRun(cfg Config, seed int64) RunRecord {
	rec := RunRecord{Seed: seed}
	res, err := Generate(cfg, pcore.NewRNG(seed))
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.Stats = res.Stats
	rec.Solution = len(Solve(res.Grid, res.Start, res.End))
	segs := segment.Analyze(res.Grid, nil)
	rec.Segments = len(segs)
	rec.Lengths = make(map[int]int, segment.TextureCount)
	for _, s := range segs {
		rec.Lengths[s.Length]++
	}
	return rec
}

// Survey generates one maze per seed on up to workers goroutines and
// aggregates the results. Each generation owns its grid and RNG.
func Survey(cfg Config, seeds []int64, workers int) SurveyReport {
	if workers <= 0 {
		workers = 1
	}
	records := make([]RunRecord, len(seeds))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, seed int64) {
			defer wg.Done()
			defer func() { <-sem }()
			records[i] = SurveyRun(cfg, seed)
		}(i, seed)
	}
	wg.Wait()

	return summarize(records)
}

func summarize(records []RunRecord) SurveyReport {
	rep := SurveyReport{Runs: len(records), Lengths: map[int]int{}}
	solved := 0
	solutionSum := 0
	for _, rec := range records {
		if rec.Err != nil {
			rep.Failures = append(rep.Failures, rec)
			continue
		}
		rep.LoopsTotal += rec.Stats.LoopsOpened
		rep.RepairsTotal += rec.Stats.Repairs
		rep.RepairsMax = max(rep.RepairsMax, rec.Stats.Repairs)
		rep.CleanedTotal += rec.Stats.CellsCleaned
		rep.SegmentsTotal += rec.Segments
		for length, n := range rec.Lengths {
			rep.Lengths[length] += n
		}
		if solved == 0 || rec.Solution < rep.SolutionMin {
			rep.SolutionMin = rec.Solution
		}
		rep.SolutionMax = max(rep.SolutionMax, rec.Solution)
		solutionSum += rec.Solution
		solved++
	}
	if solved > 0 {
		rep.SolutionMean = float64(solutionSum) / float64(solved)
	}
	sort.Slice(rep.Failures, func(i, j int) bool { return rep.Failures[i].Seed < rep.Failures[j].Seed })
	return rep
}
