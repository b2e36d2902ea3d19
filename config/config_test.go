package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
name: carhub
environment: production
server:
  port: 9090
auth:
  token:
    secret: 0123456789abcdef0123456789abcdef
    ttl: 30m
`)

	var cfg Config
	if err := Load("carhub", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Auth.Token.TTL != 30*time.Minute {
		t.Errorf("ttl = %v, want 30m", cfg.Auth.Token.TTL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
name: carhub
server:
  port: 9090
auth:
  token:
    secret: 0123456789abcdef0123456789abcdef
`)
	t.Setenv("SERVER_PORT", "7070")

	var cfg Config
	if err := Load("carhub", &cfg, WithConfigFile(path)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Seed: SeedConfig{Enabled: true}}
	cfg.ApplyDefaults()

	if cfg.Name != "carhub" {
		t.Errorf("name = %q", cfg.Name)
	}
	if cfg.Environment != "development" || !cfg.Debug {
		t.Errorf("environment = %q, debug = %v", cfg.Environment, cfg.Debug)
	}
	if cfg.Seed.Username != "testuser" || cfg.Seed.Password != "testpass" {
		t.Errorf("seed = %+v", cfg.Seed)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Observability.ServiceName != "carhub" {
		t.Errorf("observability service name = %q", cfg.Observability.ServiceName)
	}
}

func TestValidate_RejectsMissingSecret(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure for missing token secret")
	}
}

func TestValidate_RejectsBadEnvironment(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.Auth.Token.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Environment = "outer-space"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation failure for unknown environment")
	}
}

func TestEnvKeyVariants(t *testing.T) {
	variants := envKeyVariants("AUTH_TOKEN_SECRET")
	want := map[string]bool{
		"auth_token_secret": false,
		"auth.token.secret": false,
		"auth.token_secret": false,
	}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, found := range want {
		if !found {
			t.Errorf("variant %q missing from %v", k, variants)
		}
	}
}
