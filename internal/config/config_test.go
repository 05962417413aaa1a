package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `port: "8080"
logLevel: info
databaseURL: postgres://localhost/gutenshelf
storageDriver: file
dataDir: /tmp/gutenshelf
redisAddr: localhost:6379
ownerName: Mary
ai:
  provider: ollama
  model: llama3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.StorageDriver != "file" || cfg.AI.Model != "llama3" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db-host/prod")
	t.Setenv("GUTENSHELF_AI_API_KEY", "secret")

	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabaseURL != "postgres://db-host/prod" {
		t.Fatalf("databaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.AI.APIKey != "secret" {
		t.Fatalf("apiKey = %q", cfg.AI.APIKey)
	}
}

func TestLoadRejectsMissingPort(t *testing.T) {
	yaml := `databaseURL: postgres://localhost/g
storageDriver: file
dataDir: /tmp/g
ai:
  provider: ollama
  model: llama3
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected error for missing port")
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	yaml := `port: "8080"
databaseURL: postgres://localhost/g
storageDriver: file
dataDir: /tmp/g
ai:
  provider: watson
  model: m
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected error for unknown ai provider")
	}
}

func TestLoadRequiresMinioSettings(t *testing.T) {
	yaml := `port: "8080"
databaseURL: postgres://localhost/g
storageDriver: minio
ai:
  provider: ollama
  model: llama3
`
	if _, err := Load(writeConfig(t, yaml)); err == nil {
		t.Fatalf("expected error for missing minio settings")
	}
}
