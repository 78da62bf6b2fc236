package octopus

import "image/color"

var energyPalette = buildEnergyPalette()

// Palette maps energy levels to colours. Level 0 (just flashed) is bright;
// levels 1-9 ramp from deep blue towards teal. Transient levels above 9 clamp
// to the last entry.
func (o *Octopus) Palette() []color.RGBA {
	return energyPalette
}

func buildEnergyPalette() []color.RGBA {
	palette := make([]color.RGBA, FlashThreshold+1)
	palette[0] = color.RGBA{R: 255, G: 250, B: 210, A: 255}
	low := color.RGBA{R: 10, G: 20, B: 60, A: 255}
	high := color.RGBA{R: 60, G: 170, B: 180, A: 255}
	for level := 1; level <= FlashThreshold; level++ {
		t := float64(level-1) / float64(FlashThreshold-1)
		palette[level] = lerp(low, high, t)
	}
	return palette
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	inv := 1 - t
	return color.RGBA{
		R: uint8(float64(a.R)*inv + float64(b.R)*t + 0.5),
		G: uint8(float64(a.G)*inv + float64(b.G)*t + 0.5),
		B: uint8(float64(a.B)*inv + float64(b.B)*t + 0.5),
		A: uint8(float64(a.A)*inv + float64(b.A)*t + 0.5),
	}
}
