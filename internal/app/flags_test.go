package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"-scale", "12", "-steps-per-sec", "30", "-seed", "5"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Scale != 12 || cfg.StepRate != 30 || cfg.Seed != 5 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Sim != "octopus" || cfg.HUDWidth != 220 {
		t.Fatalf("defaults should survive unrelated flags: %+v", cfg)
	}
}
