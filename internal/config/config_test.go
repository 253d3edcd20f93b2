package config

import (
	"testing"

	"github.com/alexanderramin/heatmap/internal/intensity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.LogUseCases)
	assert.False(t, cfg.Realistic)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, intensity.Realistic, cfg.ClassificationPolicy())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HEATMAP_LOG_USE_CASES", "true")
	t.Setenv("HEATMAP_NO_COLOR", "1")
	t.Setenv("HEATMAP_REALISTIC", "true")
	t.Setenv("HEATMAP_POLICY", "uniform")
	t.Setenv("HEATMAP_SEED", "42")

	cfg := LoadConfig()

	assert.True(t, cfg.LogUseCases)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Realistic)
	assert.Equal(t, intensity.Uniform, cfg.ClassificationPolicy())
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("HEATMAP_POLICY", "log-scale")
	t.Setenv("HEATMAP_SEED", "-5")
	t.Setenv("HEATMAP_REALISTIC", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, "realistic", cfg.Policy)
	assert.Nil(t, cfg.Seed)
	assert.False(t, cfg.Realistic)
}
