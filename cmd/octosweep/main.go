package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"octoflash/internal/logging"
	"octoflash/internal/sims/octopus"

	"go.uber.org/zap"
)

func main() {
	runs := flag.Int("runs", 256, "number of random grids to simulate")
	firstSeed := flag.Int64("seed", 1, "first seed; runs use consecutive seeds")
	maxSteps := flag.Int("max-steps", octopus.DefaultMaxSteps, "step cap per run")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulations")
	verbose := flag.Bool("v", false, "log each run to stderr")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *firstSeed == 0 {
		logger.Warn("seed 0 replays the built-in grid")
	}

	cfg := octopus.DefaultConfig()
	cfg.MaxSteps = *maxSteps

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	fmt.Printf("Sweeping %d grids (%d workers, %d step cap)\n", len(seeds), *workers, cfg.MaxSteps)
	start := time.Now()
	results := octopus.Sweep(cfg, seeds, *workers)
	elapsed := time.Since(start)

	for _, res := range results {
		logger.Debug("run",
			zap.Int64("seed", res.Seed),
			zap.Int("total", res.Total),
			zap.Bool("synced", res.Synced),
			zap.Int("syncStep", res.SyncStep),
		)
	}

	s := octopus.Summarize(results)
	fmt.Printf("\nSummary (elapsed %s):\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  runs=%d synced=%d unsynced=%d\n", s.Runs, s.Synced, s.Runs-s.Synced)
	fmt.Printf("  mean flashes after %d steps=%.2f\n", cfg.ReportAt, s.MeanTotal)
	if s.Synced > 0 {
		fmt.Printf("  sync step min=%d median=%d max=%d\n", s.MinSync, s.MedianSync, s.MaxSync)
	}
}
