package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
	t.Setenv("AUTH_JWT_SECRET", "this-is-a-very-long-jwt-secret-for-testing-32+")
	t.Setenv("WEATHER_API_KEY", "test-weather-key")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

auth:
  jwt_secret: "this-is-a-very-long-jwt-secret-for-testing-32+"
  token_ttl: "12h"

weather:
  api_key: "yaml-weather-key"

log:
  level: "debug"
  format: "text"
`

func TestLoad_EnvOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope", "config.yaml"))

	_, err := Load()
	if err == nil {
		t.Fatal("explicit missing CONFIG_PATH should fail")
	}
}

func TestLoad_Defaults(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 5000 {
		t.Errorf("default port: got %d, want 5000", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("default token ttl: got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("default log format: got %q", cfg.Log.Format)
	}
	if !cfg.Database.MigrateOnStart {
		t.Error("migrations should default to on")
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	validEnv(t)
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("yaml port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 12*time.Hour {
		t.Errorf("yaml token ttl: got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("yaml log level: got %q", cfg.Log.Level)
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	validEnv(t)
	t.Setenv("AUTH_JWT_SECRET", "short")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("short jwt secret should fail validation")
	}
}

func TestValidate_BadRateLimit(t *testing.T) {
	validEnv(t)
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("zero rate limit should fail validation")
	}
}

func TestValidate_RateLimitDisabled(t *testing.T) {
	validEnv(t)
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Chdir(t.TempDir())

	if _, err := Load(); err != nil {
		t.Fatalf("disabled rate limiter should skip limit validation: %v", err)
	}
}
