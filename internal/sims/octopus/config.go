package octopus

import "strconv"

// Config controls the octopus simulation and its run loop.
type Config struct {
	// Seed selects the starting grid. Zero uses the built-in energy map; any
	// other value fills a grid of the same size with random digits.
	Seed int64

	MaxSteps int
	ReportAt int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		MaxSteps: DefaultMaxSteps,
		ReportAt: DefaultReportAt,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxSteps = parsed
		}
	}
	if v, ok := cfg["report_at"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.ReportAt = parsed
		}
	}
	return c
}
