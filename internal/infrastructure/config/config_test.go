package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func processWith(t *testing.T, env map[string]string) *Config {
	t.Helper()
	var cfg Config
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.MapLookuper(env),
	}); err != nil {
		t.Fatalf("process config: %v", err)
	}
	return &cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := processWith(t, map[string]string{})

	if cfg.Port != "4000" {
		t.Errorf("expected default port 4000, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %q", cfg.Env)
	}
	if cfg.TokenTTL != 8*time.Hour {
		t.Errorf("expected default token TTL 8h, got %v", cfg.TokenTTL)
	}
	if cfg.CORSOrigin != "*" {
		t.Errorf("expected default CORS origin *, got %q", cfg.CORSOrigin)
	}
	if cfg.Mongo.Database != "ser_api" {
		t.Errorf("expected default database ser_api, got %q", cfg.Mongo.Database)
	}
	if cfg.Redis.CacheTTL != 60*time.Second {
		t.Errorf("expected default cache TTL 60s, got %v", cfg.Redis.CacheTTL)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("JWT secret must have no default, got %q", cfg.JWTSecret)
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := processWith(t, map[string]string{
		"PORT":      "9090",
		"TOKEN_TTL": "30m",
		"CACHE_TTL": "5m",
		"MONGO_DB":  "ser_api_test",
	})

	if cfg.Port != "9090" {
		t.Errorf("port override not applied: %q", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("token TTL override not applied: %v", cfg.TokenTTL)
	}
	if cfg.Redis.CacheTTL != 5*time.Minute {
		t.Errorf("cache TTL override not applied: %v", cfg.Redis.CacheTTL)
	}
	if cfg.Mongo.Database != "ser_api_test" {
		t.Errorf("database override not applied: %q", cfg.Mongo.Database)
	}
}
