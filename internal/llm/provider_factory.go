package llm

import (
	"context"
	"fmt"
	"strings"
)

// Model strings use a "provider/model" prefix, the same convention the
// hosted routers use (e.g. "groq/llama-3.1-8b-instant").
const groqModelPrefix = "groq/"

// ProviderFactory creates providers based on the model string.
// API keys are injected here so nothing reads ambient environment state at
// call time.
type ProviderFactory struct {
	groqAPIKey   string
	geminiAPIKey string
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(groqAPIKey, geminiAPIKey string) *ProviderFactory {
	return &ProviderFactory{
		groqAPIKey:   groqAPIKey,
		geminiAPIKey: geminiAPIKey,
	}
}

// GetProvider returns the provider for the given model string along with the
// resolved model name (provider prefix stripped).
func (f *ProviderFactory) GetProvider(ctx context.Context, model string) (Provider, string, error) {
	modelLower := strings.ToLower(model)

	switch {
	case strings.HasPrefix(modelLower, groqModelPrefix):
		if f.groqAPIKey == "" {
			return nil, "", fmt.Errorf("groq API key not configured")
		}
		return NewGroqProvider(f.groqAPIKey), model[len(groqModelPrefix):], nil

	case strings.HasPrefix(modelLower, "gemini-"):
		if f.geminiAPIKey == "" {
			return nil, "", fmt.Errorf("gemini API key not configured")
		}
		provider, err := NewGeminiProvider(ctx, f.geminiAPIKey)
		if err != nil {
			return nil, "", err
		}
		return provider, model, nil

	default:
		// Bare model names default to Groq, matching the hosted deployment
		if f.groqAPIKey == "" {
			return nil, "", fmt.Errorf("groq API key not configured (default provider)")
		}
		return NewGroqProvider(f.groqAPIKey), model, nil
	}
}
