package llm

import (
	"context"

	"github.com/fourxdev/fourxdev-api/internal/models"
)

// Provider defines the interface for LLM completion providers.
// Implementations take a fully built plain-text instruction and return the
// model's first completion choice verbatim.
type Provider interface {
	// Complete issues one completion call and returns the generated text.
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)

	// Name returns the provider name (e.g., "groq", "gemini")
	Name() string
}

// CompletionRequest contains all parameters for one completion call.
type CompletionRequest struct {
	Model       string
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// CompletionResponse contains the result of one completion call.
type CompletionResponse struct {
	Text  string
	Usage models.TokenUsage
}
