package llm

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fourxdev/fourxdev-api/internal/models"
	"github.com/getsentry/sentry-go"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	providerNameGroq = "groq"

	// Groq exposes an OpenAI-compatible chat completions endpoint.
	groqBaseURL = "https://api.groq.com/openai/v1"
)

// GroqProvider implements the Provider interface against Groq's
// OpenAI-compatible chat completions API.
type GroqProvider struct {
	client *openai.Client
}

// NewGroqProvider creates a new Groq provider
func NewGroqProvider(apiKey string) *GroqProvider {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqProvider{
		client: &client,
	}
}

// Name returns the provider name
func (p *GroqProvider) Name() string {
	return providerNameGroq
}

// Complete issues a single chat completion call and returns the text of the
// first choice. One outbound network call, no retries.
func (p *GroqProvider) Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error) {
	startTime := time.Now()
	log.Printf("GROQ COMPLETION REQUEST STARTED (model: %s)", request.Model)

	transaction := sentry.StartTransaction(ctx, "groq.complete")
	defer transaction.Finish()

	transaction.SetTag("model", request.Model)
	transaction.SetTag("provider", providerNameGroq)

	params := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(request.Prompt),
		},
		Model:       openai.ChatModel(request.Model),
		Temperature: openai.Float(request.Temperature),
		MaxTokens:   openai.Int(request.MaxTokens),
	}

	span := transaction.StartChild("groq.api_call")
	resp, err := p.client.Chat.Completions.New(ctx, params)
	apiDuration := time.Since(startTime)
	span.Finish()

	if err != nil {
		log.Printf("GROQ REQUEST FAILED after %v: %v", apiDuration, err)
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("groq request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("groq response contained no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		transaction.SetTag("success", "false")
		return nil, fmt.Errorf("groq response did not include any output text")
	}

	log.Printf("GROQ COMPLETION FINISHED in %v: output=%d chars, tokens=%d",
		apiDuration, len(text), resp.Usage.TotalTokens)

	transaction.SetTag("success", "true")
	return &CompletionResponse{
		Text: text,
		Usage: models.TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}
