package octopus

import "octoflash/internal/core"

const (
	// FlashThreshold is the highest energy level a cell can hold at rest.
	FlashThreshold = 9

	// DefaultMaxSteps caps the synchronisation search.
	DefaultMaxSteps = 1000
	// DefaultReportAt is the step after which the flash total is reported.
	DefaultReportAt = 100
)

// Octopus simulates a grid of flashing octopuses. Each step raises every
// energy level by one; cells above FlashThreshold flash, reset to zero and
// raise their Moore neighbours, which may flash in turn. A cell flashes at
// most once per step.
type Octopus struct {
	cfg     Config
	initial *core.ByteGrid
	grid    *core.ByteGrid

	flashed []bool
	ready   []int

	steps       int
	lastFlashes int
	total       int
}

// New returns a simulation over the built-in energy map.
func New(cfg Config) *Octopus {
	o := NewFromGrid(MustParse(puzzleInput))
	o.cfg = cfg
	o.Reset(0)
	return o
}

// NewFromGrid returns a simulation starting from a copy of g.
func NewFromGrid(g *core.ByteGrid) *Octopus {
	return &Octopus{
		cfg:     DefaultConfig(),
		initial: g.Clone(),
		grid:    g.Clone(),
		flashed: make([]bool, len(g.Cells())),
		ready:   make([]int, 0, len(g.Cells())),
	}
}

// Name returns the simulation identifier.
func (o *Octopus) Name() string { return "octopus" }

// Size reports the grid dimensions.
func (o *Octopus) Size() core.Size { return core.Size{W: o.grid.W, H: o.grid.H} }

// Cells exposes the current energy levels.
func (o *Octopus) Cells() []uint8 { return o.grid.Cells() }

// Grid exposes the energy grid.
func (o *Octopus) Grid() *core.ByteGrid { return o.grid }

// Config returns the active configuration.
func (o *Octopus) Config() Config { return o.cfg }

// Flashed reports which cells flashed during the most recent step.
func (o *Octopus) Flashed() []bool { return o.flashed }

// Steps returns the number of completed steps.
func (o *Octopus) Steps() int { return o.steps }

// LastFlashes returns the number of flashes in the most recent step.
func (o *Octopus) LastFlashes() int { return o.lastFlashes }

// TotalFlashes returns the number of flashes since the last Reset.
func (o *Octopus) TotalFlashes() int { return o.total }

// Synchronized reports whether every cell holds the same energy level.
func (o *Octopus) Synchronized() bool { return o.grid.Uniform() }

// Reset restores the starting grid and clears all counters. A zero seed falls
// back to the configured seed; if that is zero too the built-in grid is
// restored, otherwise the grid is filled with random digits.
func (o *Octopus) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = o.cfg.Seed
	}
	if effective == 0 {
		copy(o.grid.Cells(), o.initial.Cells())
	} else {
		o.grid.Clear()
		core.NewRNG(effective).FillDigits(o.grid.Cells(), FlashThreshold+1)
	}
	for i := range o.flashed {
		o.flashed[i] = false
	}
	o.steps = 0
	o.lastFlashes = 0
	o.total = 0
}

// Step advances the simulation by one step.
func (o *Octopus) Step() {
	cells := o.grid.Cells()
	for i := range cells {
		cells[i]++
		o.flashed[i] = false
	}

	flashes := 0
	for {
		o.ready = o.ready[:0]
		for i, v := range cells {
			if v > FlashThreshold {
				o.ready = append(o.ready, i)
			}
		}
		if len(o.ready) == 0 {
			break
		}
		for _, idx := range o.ready {
			cells[idx] = 0
			o.flashed[idx] = true
			x, y := o.grid.Coords(idx)
			o.grid.ForEachNeighbor(x, y, func(n int) {
				if !o.flashed[n] {
					cells[n]++
				}
			})
		}
		flashes += len(o.ready)
	}

	o.steps++
	o.lastFlashes = flashes
	o.total += flashes
}

func init() {
	core.Register("octopus", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
