package handlers

import (
	"net/http"

	"github.com/fourxdev/fourxdev-api/internal/config"
	"github.com/fourxdev/fourxdev-api/pkg/embedded"
	"github.com/gin-gonic/gin"
)

type WebHandler struct {
	cfg *config.Config
}

func NewWebHandler(cfg *config.Config) *WebHandler {
	return &WebHandler{cfg: cfg}
}

// Home serves the generation page. The page is a single embedded asset; the
// grid is filled client-side from the JSON API, and the key-missing banner is
// driven by /health.
func (h *WebHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", embedded.IndexHTML)
}
