package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if cfg.EndpointAddrGRPC != ":50051" {
		t.Errorf("unexpected grpc addr %q", cfg.EndpointAddrGRPC)
	}
	if cfg.InitialTokenValidityDuration != 720*time.Hour {
		t.Errorf("unexpected initial validity %v", cfg.InitialTokenValidityDuration)
	}
	if cfg.RefreshTokenValidityDuration != 2160*time.Hour {
		t.Errorf("unexpected refresh validity %v", cfg.RefreshTokenValidityDuration)
	}
	if cfg.SecretKey != "" || cfg.EncryptKey != "" || cfg.HashKey != "" {
		t.Error("key material must not have defaults")
	}
}

func TestValidate_MissingSecrets(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no dsn", func(c *Config) { c.DatabaseDSN = "" }},
		{"no secret key", func(c *Config) { c.SecretKey = "" }},
		{"no encrypt key", func(c *Config) { c.EncryptKey = "" }},
		{"no hash key", func(c *Config) { c.HashKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()
			cfg.SecretKey = "s"
			cfg.EncryptKey = "e"
			cfg.HashKey = "h"
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidate_Complete(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "s"
	cfg.EncryptKey = "e"
	cfg.HashKey = "h"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseEnv_Overlay(t *testing.T) {
	t.Setenv("DATABASE_DSN", "postgres://env/db")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("INITIAL_TOKEN_VALIDITY_DURATION", "48h")
	t.Setenv("REDIS_DB", "3")

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		t.Fatalf("parseEnv error: %v", err)
	}

	if cfg.DatabaseDSN != "postgres://env/db" {
		t.Errorf("dsn not overlaid: %q", cfg.DatabaseDSN)
	}
	if cfg.SecretKey != "env-secret" {
		t.Errorf("secret key not overlaid: %q", cfg.SecretKey)
	}
	if cfg.InitialTokenValidityDuration != 48*time.Hour {
		t.Errorf("duration not overlaid: %v", cfg.InitialTokenValidityDuration)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("redis db not overlaid: %d", cfg.RedisDB)
	}

	// unset vars keep defaults
	if cfg.EndpointAddrGRPC != ":50051" {
		t.Errorf("default lost: %q", cfg.EndpointAddrGRPC)
	}
}

func TestParseJson_File(t *testing.T) {
	content := `{
		"endpoint_addr_grpc": ":6000",
		"database_dsn": "postgres://json/db",
		"secret_key": "json-secret",
		"encrypt_key": "json-encrypt",
		"hash_key": "json-hash",
		"initial_token_validity_duration": "720h",
		"refresh_token_validity_duration": "2160h",
		"redis_addr": "redis:6379",
		"user_cache_ttl": "10m"
	}`

	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	origArgs := os.Args
	os.Args = []string{"server", "-c", f.Name()}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	if cfg.EndpointAddrGRPC != ":6000" {
		t.Errorf("grpc addr: %q", cfg.EndpointAddrGRPC)
	}
	if cfg.SecretKey != "json-secret" || cfg.HashKey != "json-hash" {
		t.Errorf("keys not loaded: %+v", cfg)
	}
	if cfg.InitialTokenValidityDuration != 720*time.Hour {
		t.Errorf("initial validity: %v", cfg.InitialTokenValidityDuration)
	}
	if cfg.UserCacheTTL != 10*time.Minute {
		t.Errorf("cache ttl: %v", cfg.UserCacheTTL)
	}
}

func TestParseFlags_Overlay(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"server", "-a", ":7000", "-s", "flag-secret", "-i", "24"}
	defer func() { os.Args = origArgs }()

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	if cfg.EndpointAddrGRPC != ":7000" {
		t.Errorf("grpc addr: %q", cfg.EndpointAddrGRPC)
	}
	if cfg.SecretKey != "flag-secret" {
		t.Errorf("secret key: %q", cfg.SecretKey)
	}
	if cfg.InitialTokenValidityDuration != 24*time.Hour {
		t.Errorf("initial validity: %v", cfg.InitialTokenValidityDuration)
	}
}
