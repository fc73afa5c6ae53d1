package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds CLI configuration.
type Config struct {
	ServiceURL string
	UserFile   string // path of the persisted identity record; empty = default
	LogLevel   zerolog.Level
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		ServiceURL: getEnvOrDefault("DENOISE_SERVICE_URL", "http://localhost:8000"),
		UserFile:   os.Getenv("DENOISE_USER_FILE"),
		LogLevel:   getLogLevel(),
	}
}

// Init initializes logging for the configured level.
func (c *Config) Init() {
	InitLogger()
	SetLogLevel(c.LogLevel)

	log.Debug().
		Str("service_url", c.ServiceURL).
		Str("log_level", c.LogLevel.String()).
		Msg("configuration loaded")
}

// getEnvOrDefault returns environment variable value or default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getLogLevel parses log level from environment or returns default.
func getLogLevel() zerolog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
