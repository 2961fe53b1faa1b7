package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fourxdev/fourxdev-api/internal/models"
	"github.com/getsentry/sentry-go"
	"google.golang.org/genai"
)

const (
	providerNameGemini = "gemini"
	geminiUserRole     = "user"
)

// GeminiProvider implements the Provider interface using Google's Gemini API
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return providerNameGemini
}

// Complete issues a single plain-text generation call against Gemini.
func (p *GeminiProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	startTime := time.Now()
	log.Printf("GEMINI COMPLETION REQUEST STARTED (model: %s)", request.Model)

	transaction := sentry.StartTransaction(ctx, "gemini.complete")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameGemini)

	contents := []*genai.Content{
		{
			Role:  geminiUserRole,
			Parts: []*genai.Part{{Text: request.Prompt}},
		},
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(request.Temperature)),
		MaxOutputTokens: int32(request.MaxTokens),
	}

	span := transaction.StartChild("gemini.api_call")
	result, err := p.client.Models.GenerateContent(ctx, request.Model, contents, config)
	apiDuration := time.Since(startTime)
	span.Finish()

	if err != nil {
		log.Printf("GEMINI REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	if len(result.Candidates) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("no candidates in Gemini response")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("no parts in Gemini response")
	}

	text := candidate.Content.Parts[0].Text
	if text == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("gemini response did not include any output text")
	}

	var usage models.TokenUsage
	if result.UsageMetadata != nil {
		usage = models.TokenUsage{
			InputTokens:  int64(result.UsageMetadata.PromptTokenCount),
			OutputTokens: int64(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int64(result.UsageMetadata.TotalTokenCount),
		}
	}

	log.Printf("GEMINI COMPLETION FINISHED in %v: output=%d chars, tokens=%d",
		apiDuration, len(text), usage.TotalTokens)

	transaction.SetTag("success", "true")
	return &CompletionResponse{
		Text:  text,
		Usage: usage,
	}, nil
}
