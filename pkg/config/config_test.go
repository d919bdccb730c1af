package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrInitConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrInitConfig(true)
	if err != nil {
		t.Fatalf("LoadOrInitConfig: %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("model = %q, want default", cfg.Model)
	}
	if !cfg.SkipPrompt {
		t.Error("skip-prompt flag not carried into config")
	}
	if cfg.SessionID == "" {
		t.Error("session ID not generated")
	}
	if !cfg.EnableBackups {
		t.Error("backups should default to enabled")
	}
}

func TestLoadOrInitConfigReadsLocalFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(dir, ".gemini-cli")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `{"model": "ollama:qwen2.5-coder:7b", "temperature": 0.7, "max_tokens": 2048, "enable_backups": false}`
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrInitConfig(false)
	if err != nil {
		t.Fatalf("LoadOrInitConfig: %v", err)
	}
	if cfg.Model != "ollama:qwen2.5-coder:7b" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("temperature = %v", cfg.Temperature)
	}
	if cfg.EnableBackups {
		t.Error("enable_backups=false not honored")
	}
}

func TestLoadOrInitConfigCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(dir, ".gemini-cli")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOrInitConfig(false); err == nil {
		t.Fatal("corrupt config file should be an error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadOrInitConfig(false)
	if err != nil {
		t.Fatal(err)
	}
	cfg.Model = "custom-model"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadOrInitConfig(false)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Model != "custom-model" {
		t.Errorf("model = %q after round trip", loaded.Model)
	}
}
