package ui

import (
	"fmt"
	"strings"

	"octoflash/internal/core"
)

const (
	panelPadding   = 10
	headerBaseline = 12
	lineSpacing    = 16
	groupSpacing   = 8
)

// hudLine is one row of HUD text positioned relative to the panel.
type hudLine struct {
	text   string
	y      int
	header bool
}

// layoutLines flattens a snapshot into positioned text rows below the title.
func layoutLines(title string, snap core.ParameterSnapshot) []hudLine {
	y := panelPadding + headerBaseline
	lines := []hudLine{{text: title, y: y, header: true}}
	for _, g := range snap.Groups {
		y += lineSpacing + groupSpacing
		lines = append(lines, hudLine{text: g.Name, y: y, header: true})
		for _, p := range g.Params {
			y += lineSpacing
			lines = append(lines, hudLine{text: fmt.Sprintf("%s: %s", p.Label, p.Value), y: y})
		}
	}
	return lines
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Status"
}
