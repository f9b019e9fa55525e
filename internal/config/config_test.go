package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		t.Error("DatabaseURL is empty")
	}
	if cfg.RecurringInterval != time.Hour {
		t.Errorf("RecurringInterval = %v, want 1h", cfg.RecurringInterval)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://test:test@db:5432/test")
	t.Setenv("RECURRING_INTERVAL", "15m")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://test:test@db:5432/test" {
		t.Errorf("DatabaseURL = %s", cfg.DatabaseURL)
	}
	if cfg.RecurringInterval != 15*time.Minute {
		t.Errorf("RecurringInterval = %v, want 15m", cfg.RecurringInterval)
	}
}

func TestGetDurationEnvMalformed(t *testing.T) {
	t.Setenv("RECURRING_INTERVAL", "soon")

	cfg := Load()
	if cfg.RecurringInterval != time.Hour {
		t.Errorf("RecurringInterval = %v, want fallback 1h", cfg.RecurringInterval)
	}
}
