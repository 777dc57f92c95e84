package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"zonetree/internal/gateway"
)

func clearTokenEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CLOUDFLARE_API_TOKEN", "")
	t.Setenv("ZONETREE_API_TOKEN", "")
	t.Setenv("ZONETREE_CONFIG_PATH", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearTokenEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Endpoint != gateway.DefaultEndpoint {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.DataDir == "" || cfg.DataDir[0] == '~' {
		t.Fatalf("data dir not expanded: %q", cfg.DataDir)
	}
}

func TestLoad_CloudflareTokenWins(t *testing.T) {
	clearTokenEnv(t)
	t.Setenv("ZONETREE_API_TOKEN", "from-zonetree")
	t.Setenv("CLOUDFLARE_API_TOKEN", "from-cloudflare")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Token != "from-cloudflare" {
		t.Fatalf("token = %q, want the CLOUDFLARE_API_TOKEN value", cfg.Token)
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	clearTokenEnv(t)
	dir := t.TempDir()
	body := "api_token: file-token\napi_endpoint: https://cf.test/v4\n"
	if err := os.WriteFile(filepath.Join(dir, ".zonetree.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("ZONETREE_CONFIG_PATH", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Token != "file-token" {
		t.Fatalf("token = %q", cfg.Token)
	}
	if cfg.Endpoint != "https://cf.test/v4" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
}

func TestRequireToken(t *testing.T) {
	var authErr *AuthError
	err := Config{}.RequireToken()
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %T, want *AuthError", err)
	}
	if err := (Config{Token: "x"}).RequireToken(); err != nil {
		t.Fatalf("unexpected error with token set: %v", err)
	}
}
