package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Report assets and branding
	LogoPath     string
	ReportAuthor string
	ReportFooter string

	// CORS
	AllowedOrigins []string

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogoPath:       getEnv("LOGO_PATH", "./static/gramiq_logo.png"),
		ReportAuthor:   getEnv("REPORT_AUTHOR", "GramIQ"),
		ReportFooter:   getEnv("REPORT_FOOTER", "Proudly maintained accounting with GramIQ"),
		AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
	}

	// Validate required configuration
	if cfg.LogoPath == "" {
		return nil, fmt.Errorf("LOGO_PATH is required")
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
