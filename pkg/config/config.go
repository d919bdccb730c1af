package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chilluba/gemini-cli/pkg/utils"
)

const (
	// DefaultModel is used when no model is configured or passed on the CLI.
	DefaultModel = "gemini-2.0-flash"

	// DefaultTemperature keeps suggestion output stable across runs.
	DefaultTemperature = 0.2

	// DefaultMaxTokens bounds the size of a single oracle response.
	DefaultMaxTokens = 8192
)

// Config holds the per-invocation settings for edit and analysis runs.
// It is threaded explicitly through the call tree; commands construct it once
// and never re-instantiate it mid-flow.
type Config struct {
	Model             string  `json:"model"`
	BaseURL           string  `json:"base_url,omitempty"` // OpenAI-compatible endpoint override
	Temperature       float64 `json:"temperature"`
	MaxTokens         int     `json:"max_tokens"`
	EnableBackups     bool    `json:"enable_backups"`
	WorkingDir        string  `json:"-"` // resolved at load time, not persisted
	SessionID         string  `json:"-"` // unique per invocation
	SkipPrompt        bool    `json:"-"` // non-interactive mode, use defaults at the HITL gate
	DryRun            bool    `json:"-"` // preview only, never write
	RetryAttemptCount int     `json:"-"` // internal retry bookkeeping
}

func getHomeConfigPath() (string, string) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	configDir := filepath.Join(home, ".gemini-cli")
	return configDir, filepath.Join(configDir, "config.json")
}

func getCurrentConfigPath() (string, string) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", ""
	}
	configDir := filepath.Join(cwd, ".gemini-cli")
	return configDir, filepath.Join(configDir, "config.json")
}

// DefaultConfig returns a config populated with defaults and a fresh session ID.
func DefaultConfig() *Config {
	cwd, _ := os.Getwd()
	return &Config{
		Model:         DefaultModel,
		Temperature:   DefaultTemperature,
		MaxTokens:     DefaultMaxTokens,
		EnableBackups: true,
		WorkingDir:    cwd,
		SessionID:     utils.GenerateSessionID(),
	}
}

// LoadOrInitConfig loads the config from the working directory, falling back
// to the home directory, and finally to defaults. A missing config file is
// not an error; a corrupt one is.
func LoadOrInitConfig(skipPrompt bool) (*Config, error) {
	cfg := DefaultConfig()
	cfg.SkipPrompt = skipPrompt

	_, localPath := getCurrentConfigPath()
	_, homePath := getHomeConfigPath()

	for _, path := range []string{localPath, homePath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		break
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	return cfg, nil
}

// Save writes the config to the working-directory config path, creating the
// directory when needed.
func (c *Config) Save() error {
	configDir, configPath := getCurrentConfigPath()
	if configPath == "" {
		return fmt.Errorf("could not determine config path")
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", configDir, err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file '%s': %w", configPath, err)
	}
	return nil
}
