// Package config loads quill settings from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the persisted settings surface. YAML keys come from the
// settings file; matching environment variables override them.
type Config struct {
	OpenAIAPIKey       string `yaml:"openAiApiKey" env:"OPENAI_API_KEY"`
	AnthropicAPIKey    string `yaml:"anthropicApiKey" env:"ANTHROPIC_API_KEY"`
	VeniceAPIKey       string `yaml:"veniceApiKey" env:"VENICE_API_KEY"`
	OllamaHost         string `yaml:"ollamaHost" env:"OLLAMA_HOST"`
	SummarizationModel string `yaml:"summarizationModel" env:"QUILL_SUMMARIZATION_MODEL"`
	CreativeModel      string `yaml:"creativeModel" env:"QUILL_CREATIVE_MODEL"`
	WritingStyleFile   string `yaml:"writingStyleFile" env:"QUILL_WRITING_STYLE_FILE"`
	Vault              string `yaml:"vault" env:"QUILL_VAULT"`
	LogLevel           string `yaml:"logLevel" env:"QUILL_LOG_LEVEL"`
}

// ConfigError reports a setting required by an invoked operation that is
// absent. It is surfaced as an informational notice, not a crash.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing setting %q; set it in the config file or environment", e.Setting)
}

// DefaultPath returns the default settings file location under the user
// config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "quill", "config.yaml")
}

// Load reads the YAML settings file at path, then applies environment
// overrides. A missing file is not an error; the environment alone may
// carry a complete configuration.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to environment
	default:
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Vault == "" {
		cfg.Vault = "."
	}
	return cfg, nil
}
