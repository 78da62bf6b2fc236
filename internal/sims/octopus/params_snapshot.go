package octopus

import (
	"strconv"

	"octoflash/internal/core"
)

// Parameters describes the configuration and live counters for the HUD.
func (o *Octopus) Parameters() core.ParameterSnapshot {
	size := o.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				int64Param("seed", "Seed", o.cfg.Seed),
				intParam("threshold", "Flash threshold", FlashThreshold),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("max_steps", "Max steps", o.cfg.MaxSteps),
				intParam("report_at", "Report at", o.cfg.ReportAt),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("step", "Step", o.steps),
				intParam("flashes", "Flashes", o.lastFlashes),
				intParam("total", "Total flashes", o.total),
				boolParam("synced", "Synchronized", o.Synchronized()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
