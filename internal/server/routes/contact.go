package routes

import (
	"github.com/dantee-nv/contact-relay/internal/api/handlers"
	"github.com/dantee-nv/contact-relay/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupContactRoutes configures contact form routes
func SetupContactRoutes(router *gin.RouterGroup, contact *handlers.ContactHandler) {
	public := router.Group("/contact")
	{
		// Public endpoint with tight rate limiting (no auth required).
		// RPS=1 with Burst=5 allows a short burst, then one per second.
		public.POST("/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			contact.Submit,
		)
	}
}
