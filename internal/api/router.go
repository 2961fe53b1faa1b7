package api

import (
	"github.com/fourxdev/fourxdev-api/internal/api/handlers"
	apimiddleware "github.com/fourxdev/fourxdev-api/internal/api/middleware"
	"github.com/fourxdev/fourxdev-api/internal/config"
	"github.com/fourxdev/fourxdev-api/internal/llm"
	"github.com/fourxdev/fourxdev-api/internal/metrics"
	"github.com/fourxdev/fourxdev-api/internal/services"
	webhandlers "github.com/fourxdev/fourxdev-api/internal/web/handlers"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, cwMetrics *metrics.Client) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking())

	// CORS middleware
	router.Use(apimiddleware.CORS())

	// Web page
	webHandler := webhandlers.NewWebHandler(cfg)
	router.GET("/", webHandler.Home)

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.Check)

	// Generation API
	providerFactory := llm.NewProviderFactory(cfg.GroqAPIKey, cfg.GeminiAPIKey)
	genService := services.NewGenerationService(cfg, providerFactory, cwMetrics)

	v1 := router.Group("/api/v1")
	{
		generationHandler := handlers.NewGenerationHandler(cfg, genService)
		v1.POST("/generations", generationHandler.Generate)
	}

	return router
}
