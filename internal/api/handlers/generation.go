package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/fourxdev/fourxdev-api/internal/config"
	"github.com/fourxdev/fourxdev-api/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	missingKeyMessage  = "GROQ_API_KEY not set. Please configure your API key to generate code."
	emptyPromptMessage = "Please enter a prompt first!"
)

// GenerationService is the orchestration seam the handler calls. Satisfied by
// services.GenerationService; tests substitute their own.
type GenerationService interface {
	Generate(ctx context.Context, basePrompt, model string) *models.GenerationBatch
}

type GenerationHandler struct {
	genService GenerationService
	cfg        *config.Config
}

func NewGenerationHandler(cfg *config.Config, genService GenerationService) *GenerationHandler {
	return &GenerationHandler{
		genService: genService,
		cfg:        cfg,
	}
}

type GenerateRequest struct {
	Prompt string `json:"prompt"`
	Model  string `json:"model"` // Optional override, e.g. "groq/llama-3.3-70b-versatile"
}

// Generate runs the four-variant batch for one prompt.
//
// Guards run before any provider call: a missing API key blocks the request
// entirely (503), and a blank prompt is rejected (400).
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.cfg.HasGroqKey() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":      missingKeyMessage,
			"request_id": c.GetString("request_id"),
		})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      emptyPromptMessage,
			"request_id": c.GetString("request_id"),
		})
		return
	}

	batch := h.genService.Generate(c.Request.Context(), req.Prompt, req.Model)

	c.JSON(http.StatusOK, gin.H{
		"request_id":  c.GetString("request_id"),
		"model":       batch.Model,
		"results":     batch.Results,
		"usage":       batch.Usage,
		"duration_ms": batch.DurationMS,
	})
}
