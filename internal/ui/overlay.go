//go:build ebiten

package ui

import (
	"image/color"

	"octoflash/internal/core"
	"octoflash/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type flashProvider interface {
	Flashed() []bool
}

// Overlay highlights the cells that flashed during the most recent step.
type Overlay struct {
	sim     core.Sim
	scale   int
	show    bool
	painter *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:     sim,
		scale:   scale,
		show:    true,
		painter: render.NewGridPainter(size.W, size.H),
	}
}

// Update toggles the highlight with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(flashProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.painter.BlitMask(screen, provider.Flashed(), color.RGBA{R: 255, G: 255, B: 255, A: 90}, scale)
}
