package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/heatmap/internal/intensity"
)

// Config holds process-level settings for the heatmap CLI.
type Config struct {
	LogUseCases bool
	NoColor     bool
	Realistic   bool
	Policy      string
	Seed        *uint64
}

// DefaultConfig returns a Config with logging off, uniform mock data and a
// random seed.
func DefaultConfig() Config {
	return Config{
		Policy: intensity.Realistic.Name,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("HEATMAP_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HEATMAP_NO_COLOR"); v != "" {
		cfg.NoColor, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HEATMAP_REALISTIC"); v != "" {
		cfg.Realistic, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("HEATMAP_POLICY"); v != "" {
		if _, err := intensity.PolicyByName(v); err == nil {
			cfg.Policy = v
		}
	}
	if v := os.Getenv("HEATMAP_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = &n
		}
	}

	return cfg
}

// ClassificationPolicy resolves Policy, defaulting to the realistic profile.
func (c Config) ClassificationPolicy() intensity.Policy {
	p, err := intensity.PolicyByName(c.Policy)
	if err != nil {
		return intensity.Realistic
	}
	return p
}
