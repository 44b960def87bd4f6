package server

import (
	"io"

	"github.com/dantee-nv/contact-relay/internal/api/handlers"
	"github.com/dantee-nv/contact-relay/internal/config"
	"github.com/dantee-nv/contact-relay/internal/mailer"
	"github.com/dantee-nv/contact-relay/internal/server/routes"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
}

// NewServer creates a new server instance wired to the given mail sender
func NewServer(cfg *config.Config, sender mailer.Sender) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	routes.SetupGlobalMiddleware(router, cfg)

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(cfg, sender),
		Health:  handlers.NewHealthHandler(),
	}
	routes.Setup(router, h)

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Router exposes the engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.cfg.Port)
}
