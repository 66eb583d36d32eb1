package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"study_plan_synthesizer/generator"
)

const (
	ProviderHTTP     = "http"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderMock     = "mock"

	DefaultAPIKeyEnv = "LLM_API_KEY"
)

// Config holds the run configuration. The credential itself is never part of
// it, only the name of the environment variable that supplies it.
type Config struct {
	LLM    LLMConfig    `json:"llm" yaml:"llm"`
	Output OutputConfig `json:"output" yaml:"output"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// LLMConfig selects and tunes the completion provider.
type LLMConfig struct {
	Provider       string `json:"provider,omitempty" yaml:"provider"`
	Model          string `json:"model,omitempty" yaml:"model"`
	Endpoint       string `json:"endpoint,omitempty" yaml:"endpoint"`
	APIKeyEnv      string `json:"api_key_env,omitempty" yaml:"api_key_env"`
	MaxTokens      int    `json:"max_tokens,omitempty" yaml:"max_tokens"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds"`
}

type OutputConfig struct {
	Format string `json:"format,omitempty" yaml:"format"`
	// Style is a glamour style name or path, used by the pretty format.
	Style string `json:"style,omitempty" yaml:"style"`
}

type LogConfig struct {
	Mode string `json:"mode,omitempty" yaml:"mode"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a JSON or YAML (.yaml/.yml) config from disk. An empty
// path yields Default().
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderHTTP
	}
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	if c.LLM.Endpoint == "" && c.LLM.Provider == ProviderHTTP {
		c.LLM.Endpoint = generator.DefaultEndpoint
	}
	if c.LLM.APIKeyEnv == "" {
		c.LLM.APIKeyEnv = DefaultAPIKeyEnv
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = generator.DefaultMaxTokens
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = int(generator.DefaultTimeout / time.Second)
	}
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "dev"
	}
}

func (c Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderHTTP, ProviderMock:
	case ProviderOpenAI:
		if c.LLM.Model == "" {
			return errors.New("llm provider openai requires model")
		}
	case ProviderDeepSeek:
		// DeepSeek exposes an OpenAI-compatible API at its own base URL.
		if c.LLM.Model == "" || c.LLM.Endpoint == "" {
			return errors.New("llm provider deepseek requires model and endpoint (OpenAI-compatible base URL)")
		}
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if c.LLM.MaxTokens < 0 {
		return errors.New("llm max_tokens must not be negative")
	}
	if c.LLM.TimeoutSeconds < 0 {
		return errors.New("llm timeout_seconds must not be negative")
	}
	return nil
}

// Timeout is the per-request bound for the completion call.
func (l LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// APIKey reads the credential from the configured environment variable. An
// unset variable yields "", which produces an unauthenticated request.
func (l LLMConfig) APIKey() string {
	return strings.TrimSpace(os.Getenv(l.APIKeyEnv))
}
