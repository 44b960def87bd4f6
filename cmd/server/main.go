package main

import (
	"context"
	"os"

	"github.com/dantee-nv/contact-relay/internal/config"
	"github.com/dantee-nv/contact-relay/internal/logging"
	"github.com/dantee-nv/contact-relay/internal/mailer"
	"github.com/dantee-nv/contact-relay/internal/server"
)

func main() {
	// Set development environment variables
	if os.Getenv("ENV") != "production" {
		os.Setenv("ENV", "development")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger configuration
	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetLogger()
	defer logger.Close()

	logger.Info("Starting contact relay in %s mode", cfg.Environment)

	if !cfg.Configured() {
		// The server still starts: every submission will answer with a
		// generic failure until the operator fixes the deployment.
		logger.Warn("SES_FROM_EMAIL or CONTACT_TO_EMAIL is not set; submissions will fail")
	}

	sender, err := mailer.NewSES(context.Background())
	if err != nil {
		logger.Error("Failed to initialize SES client: %v", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg, sender)

	logger.Info("Listening on port %s", cfg.Port)
	if err := srv.Start(); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}
