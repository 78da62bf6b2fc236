package octopus

import (
	"io"
	"runtime"
	"sort"
	"sync"
)

// SeedResult is the outcome of a full run from one seeded grid.
type SeedResult struct {
	Seed     int64
	Total    int
	Reported bool
	SyncStep int
	Synced   bool
}

// SweepSummary aggregates the results of a Sweep.
type SweepSummary struct {
	Runs       int
	Synced     int
	MinSync    int
	MaxSync    int
	MedianSync int
	MeanTotal  float64
}

// Sweep runs one simulation per seed on a pool of workers and returns the
// results ordered by seed. Every run uses base with its Seed replaced.
func Sweep(base Config, seeds []int64, workers int) []SeedResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int64)
	results := make(chan SeedResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(base, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	all := make([]SeedResult, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}

func runSeed(base Config, seed int64) SeedResult {
	cfg := base
	cfg.Seed = seed
	o := New(cfg)
	// io.Discard never fails.
	rep, _ := Run(o, io.Discard, nil)
	return SeedResult{
		Seed:     seed,
		Total:    rep.Total,
		Reported: rep.Reported,
		SyncStep: rep.SyncStep,
		Synced:   rep.Synced,
	}
}

// Summarize computes aggregate statistics over sweep results. Sync figures
// only consider runs that synchronised; the mean total only considers runs
// that reached the report step.
func Summarize(results []SeedResult) SweepSummary {
	s := SweepSummary{Runs: len(results)}
	var syncSteps []int
	totalSum, totalRuns := 0, 0
	for _, r := range results {
		if r.Reported {
			totalSum += r.Total
			totalRuns++
		}
		if r.Synced {
			syncSteps = append(syncSteps, r.SyncStep)
		}
	}
	if totalRuns > 0 {
		s.MeanTotal = float64(totalSum) / float64(totalRuns)
	}
	s.Synced = len(syncSteps)
	if len(syncSteps) == 0 {
		return s
	}
	sort.Ints(syncSteps)
	s.MinSync = syncSteps[0]
	s.MaxSync = syncSteps[len(syncSteps)-1]
	s.MedianSync = syncSteps[len(syncSteps)/2]
	return s
}
