package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DENOISE_SERVICE_URL", "")
	t.Setenv("DENOISE_USER_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.ServiceURL != "http://localhost:8000" {
		t.Errorf("ServiceURL = %s", cfg.ServiceURL)
	}
	if cfg.UserFile != "" {
		t.Errorf("UserFile = %s, want empty (default store location)", cfg.UserFile)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DENOISE_SERVICE_URL", "https://denoise.internal:9000")
	t.Setenv("DENOISE_USER_FILE", "/tmp/denoise_user.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.ServiceURL != "https://denoise.internal:9000" {
		t.Errorf("ServiceURL = %s", cfg.ServiceURL)
	}
	if cfg.UserFile != "/tmp/denoise_user.json" {
		t.Errorf("UserFile = %s", cfg.UserFile)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
}

func TestGetLogLevel_UnknownFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "noisy")
	if got := getLogLevel(); got != zerolog.InfoLevel {
		t.Errorf("LogLevel = %s, want info for unknown value", got)
	}
}
