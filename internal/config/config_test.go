package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != "8080" {
		t.Errorf("unexpected port: %s", cfg.HTTP.Port)
	}
	if cfg.Calendar.Timezone != "UTC" {
		t.Errorf("unexpected timezone: %s", cfg.Calendar.Timezone)
	}
	if !cfg.Scheduler.Enabled {
		t.Error("scheduler should default to enabled")
	}
	if cfg.Scheduler.CronSpec != "0 5 * * *" {
		t.Errorf("unexpected cron spec: %s", cfg.Scheduler.CronSpec)
	}
	if cfg.JWT.SessionTTL != 24*time.Hour {
		t.Errorf("unexpected session ttl: %s", cfg.JWT.SessionTTL)
	}
	if cfg.Database.URL == "" {
		t.Error("database url should be derived from parts when unset")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("TIMEZONE", "Europe/Berlin")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("SCHEDULER_CRON", "30 4 * * *")
	t.Setenv("DATABASE_URL", "postgres://override:pw@db:5432/app")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != "9999" {
		t.Errorf("unexpected port: %s", cfg.HTTP.Port)
	}
	if cfg.Calendar.Timezone != "Europe/Berlin" {
		t.Errorf("unexpected timezone: %s", cfg.Calendar.Timezone)
	}
	if cfg.Scheduler.Enabled {
		t.Error("scheduler override ignored")
	}
	if cfg.Scheduler.CronSpec != "30 4 * * *" {
		t.Errorf("unexpected cron spec: %s", cfg.Scheduler.CronSpec)
	}
	if cfg.Database.URL != "postgres://override:pw@db:5432/app" {
		t.Errorf("unexpected database url: %s", cfg.Database.URL)
	}
	if cfg.Context.RequestTimeout != 30*time.Second {
		t.Errorf("bare integer timeout should parse as seconds, got %s", cfg.Context.RequestTimeout)
	}
}
