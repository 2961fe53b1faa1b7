package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, int64(DefaultMaxTokens), cfg.MaxTokens)
	assert.Equal(t, DefaultPacingDelayMS, cfg.PacingDelayMS)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MODEL", "groq/llama-3.3-70b-versatile")
	t.Setenv("TEMPERATURE", "0.2")
	t.Setenv("MAX_TOKENS", "1024")
	t.Setenv("PACING_DELAY_MS", "0")

	cfg := Load()

	assert.Equal(t, "groq/llama-3.3-70b-versatile", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, int64(1024), cfg.MaxTokens)
	assert.Equal(t, 0, cfg.PacingDelayMS)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("TEMPERATURE", "not-a-number")
	t.Setenv("MAX_TOKENS", "lots")

	cfg := Load()

	assert.Equal(t, DefaultTemperature, cfg.Temperature)
	assert.Equal(t, int64(DefaultMaxTokens), cfg.MaxTokens)
}

func TestHasGroqKey(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.HasGroqKey())

	cfg.GroqAPIKey = "gsk_test"
	assert.True(t, cfg.HasGroqKey())
}
