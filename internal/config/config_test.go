package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/randomtoy/bingo-go/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTPAddr != ":8080" || c.LogLevel != slog.LevelInfo || c.Seed != 0 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.ShutdownTimeout != 10*time.Second || c.EventBuffer != 32 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BINGO_SEED", "1234")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	c, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.HTTPAddr != ":9090" || c.LogLevel != slog.LevelDebug || c.Seed != 1234 || c.ShutdownTimeout != 3*time.Second {
		t.Errorf("overrides not applied: %+v", c)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":        "loud",
		"BINGO_SEED":       "-1",
		"SHUTDOWN_TIMEOUT": "0s",
		"EVENT_BUFFER":     "0",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			if _, err := config.Load(); err == nil {
				t.Errorf("%s=%s: expected error", key, val)
			}
		})
	}
}
