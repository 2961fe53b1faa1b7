package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fourxdev/fourxdev-api/internal/config"
	"github.com/fourxdev/fourxdev-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerationService records calls and returns a canned batch.
type fakeGenerationService struct {
	calls   int
	prompts []string
	batch   *models.GenerationBatch
}

func (s *fakeGenerationService) Generate(_ context.Context, basePrompt, model string) *models.GenerationBatch {
	s.calls++
	s.prompts = append(s.prompts, basePrompt)
	if s.batch != nil {
		return s.batch
	}
	return &models.GenerationBatch{
		Model: config.DefaultModel,
		Results: []models.PanelResult{
			{Index: 0, Label: "Standard Version", Code: "<html>a</html>"},
			{Index: 1, Label: "Visual Focus", Code: "<html>b</html>"},
			{Index: 2, Label: "Minimalist Version", Code: "<html>c</html>"},
			{Index: 3, Label: "Creative Approach", Code: "<html>d</html>"},
		},
	}
}

func setupRouter(cfg *config.Config, service GenerationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewGenerationHandler(cfg, service)
	router.POST("/api/v1/generations", handler.Generate)
	return router
}

func postGeneration(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGenerateReturnsFourResults(t *testing.T) {
	service := &fakeGenerationService{}
	cfg := &config.Config{GroqAPIKey: "test-key", Model: config.DefaultModel}
	router := setupRouter(cfg, service)

	recorder := postGeneration(t, router, map[string]interface{}{"prompt": "a to-do list app"})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, service.calls)

	var resp struct {
		Model   string               `json:"model"`
		Results []models.PanelResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, config.DefaultModel, resp.Model)
	assert.Len(t, resp.Results, 4)
}

func TestGenerateMissingKeyBlocksWithoutCallingService(t *testing.T) {
	service := &fakeGenerationService{}
	cfg := &config.Config{GroqAPIKey: "", Model: config.DefaultModel}
	router := setupRouter(cfg, service)

	recorder := postGeneration(t, router, map[string]interface{}{"prompt": "a chess board"})

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, 0, service.calls, "no provider call when the key is missing")
	assert.Contains(t, recorder.Body.String(), "GROQ_API_KEY not set")
}

func TestGenerateEmptyPromptRejectedWithoutCallingService(t *testing.T) {
	service := &fakeGenerationService{}
	cfg := &config.Config{GroqAPIKey: "test-key", Model: config.DefaultModel}
	router := setupRouter(cfg, service)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		recorder := postGeneration(t, router, map[string]interface{}{"prompt": prompt})
		assert.Equal(t, http.StatusBadRequest, recorder.Code, "prompt %q", prompt)
	}
	assert.Equal(t, 0, service.calls, "no provider call for blank prompts")
}

func TestGenerateInvalidJSONRejected(t *testing.T) {
	service := &fakeGenerationService{}
	cfg := &config.Config{GroqAPIKey: "test-key", Model: config.DefaultModel}
	router := setupRouter(cfg, service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, service.calls)
}

func TestGeneratePartialFailureStillReturns200(t *testing.T) {
	service := &fakeGenerationService{
		batch: &models.GenerationBatch{
			Model: config.DefaultModel,
			Results: []models.PanelResult{
				{Index: 0, Label: "Standard Version", Code: "<html>a</html>"},
				{Index: 1, Label: "Visual Focus", Error: "Error generating code: rate limit exceeded"},
				{Index: 2, Label: "Minimalist Version", Code: "<html>c</html>"},
				{Index: 3, Label: "Creative Approach", Code: "<html>d</html>"},
			},
		},
	}
	cfg := &config.Config{GroqAPIKey: "test-key", Model: config.DefaultModel}
	router := setupRouter(cfg, service)

	recorder := postGeneration(t, router, map[string]interface{}{"prompt": "a snake game"})

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Results []models.PanelResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 4)
	assert.Contains(t, resp.Results[1].Error, "Error generating code: ")
	assert.Empty(t, resp.Results[0].Error)
}

func TestHealthCheckReportsKeyStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, tc := range []struct {
		name       string
		key        string
		wantStatus string
	}{
		{name: "key configured", key: "test-key", wantStatus: "configured"},
		{name: "key missing", key: "", wantStatus: "missing"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{GroqAPIKey: tc.key, Model: config.DefaultModel}
			router := gin.New()
			router.GET("/health", NewHealthHandler(cfg).Check)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tc.wantStatus)
		})
	}
}
