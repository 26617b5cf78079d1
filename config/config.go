package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// OpenAIConfig holds the credentials and endpoint for the OpenAI client.
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`  // OpenAI API key
	BaseURL string `yaml:"base_url,omitempty"` // Custom base URL (default: official API)
}

// ChatConfig holds chat completion defaults.
type ChatConfig struct {
	Model string `yaml:"model,omitempty"` // Default model name
}

// TranscriptionConfig holds default options for audio transcription.
// Empty fields resolve to the bridge's built-in defaults.
type TranscriptionConfig struct {
	Model       string   `yaml:"model,omitempty"`
	Language    string   `yaml:"language,omitempty"`
	Prompt      string   `yaml:"prompt,omitempty"`
	Format      string   `yaml:"response_format,omitempty"`
	Temperature *float64 `yaml:"temperature,omitempty"`
}

// SpeechConfig holds default options for speech synthesis.
type SpeechConfig struct {
	Model  string   `yaml:"model,omitempty"`
	Voice  string   `yaml:"voice,omitempty"`
	Format string   `yaml:"response_format,omitempty"`
	Speed  *float64 `yaml:"speed,omitempty"`
}

// Config is the bridge configuration, loaded from YAML with environment
// variable overrides for the OpenAI credentials.
type Config struct {
	OpenAI        OpenAIConfig        `yaml:"openai,omitempty"`
	Chat          ChatConfig          `yaml:"chat,omitempty"`
	Transcription TranscriptionConfig `yaml:"transcription,omitempty"`
	Speech        SpeechConfig        `yaml:"speech,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Chat: ChatConfig{
			Model: "gpt-4o-mini",
		},
		Transcription: TranscriptionConfig{
			Model:  "whisper-1",
			Format: "text",
		},
		Speech: SpeechConfig{
			Model:  "tts-1",
			Voice:  "alloy",
			Format: "mp3",
		},
	}
}

// GetConfigPath returns the default config file path.
// Can be overridden via ALCHEMIND_CONFIG_PATH environment variable.
func GetConfigPath() string {
	if envPath := os.Getenv("ALCHEMIND_CONFIG_PATH"); envPath != "" {
		return expandPath(envPath)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.alchemind/config.yaml"
	}
	return filepath.Join(homeDir, ".alchemind", "config.yaml")
}

// Load reads the configuration at path, overlays it onto the built-in
// defaults, and applies environment variable overrides. A missing file is
// not an error: defaults plus environment are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(expandPath(path))
	switch {
	case os.IsNotExist(err):
		// Fall through to env overrides
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	expandedPath := expandPath(path)

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides on top of the
// file configuration.
func applyEnvOverrides(cfg *Config) {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.OpenAI.APIKey = apiKey
	}
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		cfg.OpenAI.BaseURL = baseURL
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Chat.Model = model
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
