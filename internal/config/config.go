package config

import (
	"os"
	"strconv"
)

// Defaults for the completion parameters. These mirror what the hosted UI
// always sent: one user message, temperature 0.7, 2048 max tokens.
const (
	DefaultModel       = "groq/llama-3.1-8b-instant"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 2048

	// Pause between the four sequential completion calls, for UI pacing only.
	DefaultPacingDelayMS = 500
)

// Config holds the application configuration.
// Note: This is a stateless configuration - no database or user secrets.
type Config struct {
	// Environment
	Environment string
	Port        string

	// LLM API Keys
	GroqAPIKey   string // Groq API key (required for generation)
	GeminiAPIKey string // Google Gemini API key (optional second provider)

	// Completion parameters
	Model         string  // Default model, litellm-style "provider/model" string
	Temperature   float64 // Sampling temperature
	MaxTokens     int64   // Max completion tokens per call
	PacingDelayMS int     // Delay between sequential calls, milliseconds

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		GroqAPIKey:        getEnv("GROQ_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		Model:             getEnv("MODEL", DefaultModel),
		Temperature:       getEnvFloat("TEMPERATURE", DefaultTemperature),
		MaxTokens:         getEnvInt("MAX_TOKENS", DefaultMaxTokens),
		PacingDelayMS:     int(getEnvInt("PACING_DELAY_MS", DefaultPacingDelayMS)),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

// HasGroqKey reports whether the required generation secret is present.
// Its absence is a warning state, not a startup failure: the server still
// runs, but generation requests are rejected with a user-visible message.
func (c *Config) HasGroqKey() bool {
	return c.GroqAPIKey != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}
