package main

import (
	"flag"
	"log"
	"os"

	"octoflash/internal/logging"
	"octoflash/internal/sims/octopus"

	"go.uber.org/zap"
)

func main() {
	verbose := flag.Bool("v", false, "log every step to stderr")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	sim := octopus.New(octopus.DefaultConfig())

	var onStep func(octopus.StepStats)
	if *verbose {
		onStep = func(s octopus.StepStats) {
			logger.Debug("step",
				zap.Int("step", s.Step),
				zap.Int("flashes", s.Flashes),
				zap.Int("total", s.Total),
			)
		}
	}

	report, err := octopus.Run(sim, os.Stdout, onStep)
	if err != nil {
		logger.Fatal("write result", zap.Error(err))
	}
	if !report.Synced {
		logger.Debug("no synchronized step", zap.Int("steps", report.Steps))
	}
}
