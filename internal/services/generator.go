package services

import (
	"context"
	"time"

	"github.com/fourxdev/fourxdev-api/internal/config"
	"github.com/fourxdev/fourxdev-api/internal/llm"
	"github.com/fourxdev/fourxdev-api/internal/logger"
	"github.com/fourxdev/fourxdev-api/internal/metrics"
	"github.com/fourxdev/fourxdev-api/internal/models"
	"github.com/fourxdev/fourxdev-api/internal/observability"
	"github.com/fourxdev/fourxdev-api/internal/prompt"
)

// ProviderResolver resolves a model string to a completion provider. Satisfied
// by llm.ProviderFactory; tests substitute their own.
type ProviderResolver interface {
	GetProvider(ctx context.Context, model string) (llm.Provider, string, error)
}

// GenerationService runs the four-variant completion batch. Calls are issued
// sequentially, one per variation, and every variation always yields a result
// slot: a failed call fills its slot with the error instead of aborting the
// remaining calls.
type GenerationService struct {
	cfg       *config.Config
	providers ProviderResolver
	builder   *prompt.Builder

	sentryMetrics *metrics.SentryMetrics
	cwMetrics     *metrics.Client
}

// NewGenerationService creates a new generation service
func NewGenerationService(cfg *config.Config, providers ProviderResolver, cwMetrics *metrics.Client) *GenerationService {
	return &GenerationService{
		cfg:           cfg,
		providers:     providers,
		builder:       prompt.NewBuilder(),
		sentryMetrics: metrics.NewSentryMetrics(),
		cwMetrics:     cwMetrics,
	}
}

// Generate runs one batch for the given base prompt. The model string may
// carry a provider prefix ("groq/..."); empty means the configured default.
// The returned batch always holds exactly four slots in variation order.
func (s *GenerationService) Generate(ctx context.Context, basePrompt, model string) *models.GenerationBatch {
	if model == "" {
		model = s.cfg.Model
	}

	batchStart := time.Now()
	variations := prompt.Variations()

	batch := &models.GenerationBatch{
		Model:   model,
		Results: make([]models.PanelResult, len(variations)),
	}

	trace := observability.GetClient().StartTrace(ctx, "generation.batch", map[string]interface{}{
		"model":        model,
		"prompt_chars": len(basePrompt),
		"variations":   len(variations),
	})
	defer trace.Finish()

	provider, resolvedModel, err := s.providers.GetProvider(ctx, model)
	if err != nil {
		// No provider means no slot can succeed; fill all four with the
		// same error so the grid still renders completely.
		logger.Error("Provider resolution failed", err, logger.Fields{"model": model})
		for i, v := range variations {
			batch.Results[i] = models.PanelResult{
				Index:     i,
				Label:     v.Label,
				Variation: v.Instruction,
				Error:     errDisplay(err),
				Err:       err,
			}
		}
		batch.DurationMS = time.Since(batchStart).Milliseconds()
		return batch
	}

	for i, v := range variations {
		batch.Results[i] = s.runSlot(ctx, provider, resolvedModel, basePrompt, i, v, trace)
		batch.Usage.Add(batch.Results[i].Usage)

		// UI pacing pause, skipped after the last call
		if i < len(variations)-1 && s.cfg.PacingDelayMS > 0 {
			select {
			case <-time.After(time.Duration(s.cfg.PacingDelayMS) * time.Millisecond):
			case <-ctx.Done():
			}
		}
	}

	batch.DurationMS = time.Since(batchStart).Milliseconds()

	failed := batch.FailedCount()
	s.sentryMetrics.RecordGenerationDuration(ctx, time.Since(batchStart), failed)
	if s.cwMetrics != nil {
		s.cwMetrics.RecordGenerationDuration(time.Since(batchStart), failed)
	}

	logger.Info("Generation batch completed", logger.Fields{
		"model":        model,
		"duration_ms":  batch.DurationMS,
		"total_tokens": batch.Usage.TotalTokens,
		"failed_slots": failed,
	})

	return batch
}

// runSlot issues one variant's completion call and returns its filled slot.
func (s *GenerationService) runSlot(
	ctx context.Context,
	provider llm.Provider,
	resolvedModel, basePrompt string,
	index int,
	variation prompt.Variation,
	trace *observability.Trace,
) models.PanelResult {
	result := models.PanelResult{
		Index:     index,
		Label:     variation.Label,
		Variation: variation.Instruction,
	}

	instruction := s.builder.Build(basePrompt, variation.Instruction)

	start := time.Now()
	resp, err := provider.Complete(ctx, &llm.CompletionRequest{
		Model:       resolvedModel,
		Prompt:      instruction,
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	duration := time.Since(start)
	result.DurationMS = duration.Milliseconds()

	if err != nil {
		result.Err = err
		result.Error = errDisplay(err)
		logger.Error("Completion call failed", err, logger.Fields{
			"slot":     index,
			"label":    variation.Label,
			"model":    resolvedModel,
			"provider": provider.Name(),
		})
		trace.LogCompletion(resolvedModel, instruction, "", models.TokenUsage{}, start, err)
		return result
	}

	result.Code = resp.Text
	result.Usage = resp.Usage

	logger.LogCompletionRequest(resolvedModel, duration, int(resp.Usage.TotalTokens), logger.Fields{
		"slot":  index,
		"label": variation.Label,
	})

	s.sentryMetrics.RecordTokenUsage(ctx, resolvedModel,
		int(resp.Usage.TotalTokens), int(resp.Usage.InputTokens), int(resp.Usage.OutputTokens))
	if s.cwMetrics != nil {
		s.cwMetrics.RecordTokenUsage(resolvedModel,
			int(resp.Usage.TotalTokens), int(resp.Usage.InputTokens), int(resp.Usage.OutputTokens))
	}

	trace.LogCompletion(resolvedModel, instruction, resp.Text, resp.Usage, start, nil)

	return result
}

// errDisplay renders a call error in the in-band form the panels show.
func errDisplay(err error) string {
	return "Error generating code: " + err.Error()
}
