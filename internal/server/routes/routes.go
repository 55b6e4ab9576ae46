package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/formmailer/internal/api/dto/common"
	"github.com/osa911/formmailer/internal/api/middleware"
	"github.com/osa911/formmailer/internal/config"
	"github.com/osa911/formmailer/internal/logging"
)

// Setup configures all routes
func Setup(router *gin.Engine, h *Handlers, m *Middleware, logger *logging.Logger) {
	SetupHealthRoutes(router, h.Health)
	SetupSubmissionRoutes(router, h.Submission, m)

	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse(common.ErrCodeNotFound, "Route not found", nil))
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, common.NewErrorResponse(common.ErrCodeMethodNotAllowed, "Method not allowed", nil))
	})

	logger.Debug("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger, cfg.LogRequests))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(middleware.CORSConfig{
		Production:     cfg.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins,
	}))
	router.Use(middleware.PreserveRequestBody(middleware.DefaultMaxBodySize))
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	}))
}
