package handlers

import (
	"net/http"

	"github.com/fourxdev/fourxdev-api/internal/config"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and whether generation is possible.
type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Check returns the health status of the API
func (h *HealthHandler) Check(c *gin.Context) {
	groqStatus := "configured"
	if !h.cfg.HasGroqKey() {
		groqStatus = "missing"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"model":  h.cfg.Model,
		"groq_api_key": gin.H{
			"status": groqStatus,
		},
	})
}
