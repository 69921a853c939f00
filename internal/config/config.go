package config

import (
	"time"

	"github.com/docsmith/go-docgen-api/internal/utils"
)

// Credential prefixes identifying which provider a configured key belongs to
const (
	HuggingFaceKeyPrefix = "hf_"
	OpenAIKeyPrefix      = "sk-"
)

// Built-in defaults
const (
	DefaultHuggingFaceModel   = "google/flan-t5-large"
	DefaultOpenAIModel        = "gpt-3.5-turbo"
	DefaultHuggingFaceBaseURL = "https://router.huggingface.co/hf-inference"
	DefaultOpenAIBaseURL      = "https://api.openai.com/v1"
	DefaultProviderTimeout    = 60 * time.Second
)

// DefaultFallbackModels is the built-in ordered list of public models tried
// when the configured Hugging Face model is not found
func DefaultFallbackModels() []string {
	return []string{
		"gpt2",
		"bigscience/bloom-560m",
		"facebook/opt-350m",
	}
}

// ProviderConfig holds provider-facing configuration
type ProviderConfig struct {
	HuggingFaceAPIKey  string   `validate:"omitempty,startswith=hf_"`
	OpenAIAPIKey       string   `validate:"omitempty,startswith=sk-"`
	HuggingFaceModel   string   `validate:"required,min=1"`
	OpenAIModel        string   `validate:"required,min=1"`
	FallbackModels     []string `validate:"required,min=1,dive,min=1"`
	HuggingFaceBaseURL string   `validate:"required,url"`
	OpenAIBaseURL      string   `validate:"required,url"`
	OpenAIEnabled      bool
	Timeout            time.Duration `validate:"required,min=1s"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int `validate:"required,min=1,max=65535"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Config is the complete application configuration, resolved once at startup
// and read-only afterwards
type Config struct {
	Provider ProviderConfig
	Server   ServerConfig
}

// Load resolves the configuration from the environment
func Load() *Config {
	return &Config{
		Provider: ProviderConfig{
			HuggingFaceAPIKey:  utils.GetEnvString("HUGGINGFACE_API_KEY", ""),
			OpenAIAPIKey:       utils.GetEnvString("OPENAI_API_KEY", ""),
			HuggingFaceModel:   utils.GetEnvString("HUGGINGFACE_MODEL", DefaultHuggingFaceModel),
			OpenAIModel:        DefaultOpenAIModel,
			FallbackModels:     utils.GetEnvList("HUGGINGFACE_FALLBACK_MODELS", DefaultFallbackModels()),
			HuggingFaceBaseURL: utils.GetEnvString("HUGGINGFACE_BASE_URL", DefaultHuggingFaceBaseURL),
			OpenAIBaseURL:      utils.GetEnvString("OPENAI_BASE_URL", DefaultOpenAIBaseURL),
			OpenAIEnabled:      utils.GetEnvBool("OPENAI_ENABLED", true),
			Timeout:            utils.GetEnvDuration("PROVIDER_TIMEOUT", DefaultProviderTimeout),
		},
		Server: ServerConfig{
			Host:         utils.GetEnvString("SERVER_HOST", "0.0.0.0"),
			Port:         utils.GetEnvPort("SERVER_PORT", 8080),
			ReadTimeout:  utils.GetEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: utils.GetEnvDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
			IdleTimeout:  utils.GetEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
	}
}

// HasHuggingFaceKey reports whether a credential with the Hugging Face prefix
// is configured
func (c *ProviderConfig) HasHuggingFaceKey() bool {
	return hasPrefix(c.HuggingFaceAPIKey, HuggingFaceKeyPrefix)
}

// HasOpenAIKey reports whether a credential with the OpenAI prefix is configured
func (c *ProviderConfig) HasOpenAIKey() bool {
	return hasPrefix(c.OpenAIAPIKey, OpenAIKeyPrefix)
}

func hasPrefix(value, prefix string) bool {
	return value != "" && len(value) >= len(prefix) && value[:len(prefix)] == prefix
}
