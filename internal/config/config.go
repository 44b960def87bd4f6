package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// CORS Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Contact Relay Configuration
	FromEmail  string `env:"SES_FROM_EMAIL"`
	ToEmail    string `env:"CONTACT_TO_EMAIL"`
	SubjectTag string `env:"CONTACT_SUBJECT_TAG" envDefault:"dantenavarro.com"`

	// AWS Configuration (region resolution is left to the SDK default chain)
	AWSRegion string `env:"AWS_REGION"`
}

// Configured reports whether the mandatory email addresses are present.
// Their absence is an operator error surfaced per request, not at boot,
// so a misdeployed relay still answers with well-formed responses.
func (c *Config) Configured() bool {
	return c.FromEmail != "" && c.ToEmail != ""
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try multiple locations for .env file
	envLocations := []string{
		"internal/config/env/.env.production",
		"internal/config/env/.env.development",
		".env",
	}

	// If ENV is set, try to load that specific file first
	envName := os.Getenv("ENV")
	if envName != "" {
		envLocations = append([]string{fmt.Sprintf("internal/config/env/.env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}
