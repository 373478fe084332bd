package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if config.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", config.Server.Port)
	}
	if config.Database.Driver != "sqlite" {
		t.Errorf("Expected default driver sqlite, got %s", config.Database.Driver)
	}
	if config.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("Expected access TTL 15m, got %v", config.Auth.AccessTokenTTL)
	}
	if !config.RateLimit.Enabled {
		t.Error("Expected rate limiting enabled by default")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_NAME", "taskhub_test")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if config.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", config.Server.Port)
	}
	if config.Database.Driver != "postgres" {
		t.Errorf("Expected driver postgres, got %s", config.Database.Driver)
	}
	if config.Auth.AccessTokenTTL != 30*time.Minute {
		t.Errorf("Expected access TTL 30m, got %v", config.Auth.AccessTokenTTL)
	}
	if config.RateLimit.Enabled {
		t.Error("Expected rate limiting disabled")
	}
}

func TestLoadConfigProductionGuards(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PASSWORD", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for missing database password in production")
	}

	t.Setenv("DB_PASSWORD", "secret")
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for default JWT secret in production")
	}

	t.Setenv("JWT_SECRET", "real-secret")
	if _, err := LoadConfig(); err != nil {
		t.Errorf("Expected production config to load, got %v", err)
	}
}

func TestAddressHelpers(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if config.GetServerAddr() != "localhost:8080" {
		t.Errorf("Unexpected server addr %s", config.GetServerAddr())
	}
	if config.GetRedisAddr() != "localhost:6379" {
		t.Errorf("Unexpected redis addr %s", config.GetRedisAddr())
	}
	if config.IsProduction() {
		t.Error("Expected development environment")
	}
}
