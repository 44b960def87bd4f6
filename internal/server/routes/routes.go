package routes

import (
	"github.com/dantee-nv/contact-relay/internal/api/middleware"
	"github.com/dantee-nv/contact-relay/internal/config"
	"github.com/dantee-nv/contact-relay/internal/logging"

	"github.com/gin-gonic/gin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers) {
	logger := logging.GetLogger()

	// Health check endpoint - outside the versioned API group
	SetupHealthRoutes(router, h.Health)

	v1 := router.Group("/api/v1")

	// Contact routes (public)
	SetupContactRoutes(v1, h.Contact)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.Environment, cfg.AllowedOrigins))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))
}
