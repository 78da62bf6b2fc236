package octopus

import (
	"fmt"
	"io"
)

// StepStats describes a single completed step.
type StepStats struct {
	Step    int
	Flashes int
	Total   int
}

// Report summarises a Run.
type Report struct {
	// Total is the cumulative flash count after ReportAt steps. Only valid
	// when Reported is set.
	Total    int
	Reported bool

	// SyncStep is the first 1-based step after which every cell held the
	// same value. Only valid when Synced is set.
	SyncStep int
	Synced   bool

	Steps int
}

// Run steps o from its current state until it synchronises or the configured
// step cap is reached. The flash total is written to w once ReportAt steps
// have run and the synchronising step is written when found, one integer per
// line, in that order within a step. If the grid never synchronises nothing
// is written for it. onStep may be nil.
func Run(o *Octopus, w io.Writer, onStep func(StepStats)) (Report, error) {
	var r Report
	maxSteps := o.cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	reportAt := o.cfg.ReportAt
	if reportAt <= 0 {
		reportAt = DefaultReportAt
	}

	for i := 0; i < maxSteps; i++ {
		o.Step()
		r.Steps = o.steps
		if onStep != nil {
			onStep(StepStats{Step: o.steps, Flashes: o.lastFlashes, Total: o.total})
		}

		if i == reportAt-1 {
			r.Total = o.total
			r.Reported = true
			if _, err := fmt.Fprintln(w, o.total); err != nil {
				return r, fmt.Errorf("octopus: write flash total: %w", err)
			}
		}
		if o.Synchronized() {
			r.SyncStep = i + 1
			r.Synced = true
			if _, err := fmt.Fprintln(w, i+1); err != nil {
				return r, fmt.Errorf("octopus: write sync step: %w", err)
			}
			break
		}
	}
	return r, nil
}
