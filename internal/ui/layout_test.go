package ui

import (
	"testing"

	"octoflash/internal/core"
)

func TestLayoutLinesOrdersGroups(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{{Key: "w", Label: "Width", Value: "10"}}},
		{Name: "Progress", Params: []core.Parameter{
			{Key: "step", Label: "Step", Value: "3"},
			{Key: "total", Label: "Total flashes", Value: "42"},
		}},
	}}

	lines := layoutLines("Octopus Status", snap)
	want := []string{"Octopus Status", "Grid", "Width: 10", "Progress", "Step: 3", "Total flashes: 42"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l.text != want[i] {
			t.Fatalf("line %d = %q, want %q", i, l.text, want[i])
		}
		if i > 0 && l.y <= lines[i-1].y {
			t.Fatalf("line %d not below line %d", i, i-1)
		}
	}
	if !lines[1].header || lines[2].header {
		t.Fatal("group names should be headers, parameters should not")
	}
}

type namedSim struct{ name string }

func (s namedSim) Name() string  { return s.name }
func (namedSim) Size() core.Size { return core.Size{} }
func (namedSim) Reset(int64)     {}
func (namedSim) Step()           {}
func (namedSim) Cells() []uint8  { return nil }

func TestBuildTitle(t *testing.T) {
	if got := buildTitle(namedSim{name: "octopus"}); got != "Octopus Status" {
		t.Fatalf("title = %q", got)
	}
	if got := buildTitle(namedSim{}); got != "Status" {
		t.Fatalf("empty name title = %q", got)
	}
	if got := buildTitle(nil); got != "Status" {
		t.Fatalf("nil sim title = %q", got)
	}
}
