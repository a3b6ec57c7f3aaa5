package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	AppEnv   string `koanf:"app_env"`
	LogLevel string `koanf:"log_level"`
	Port     string `koanf:"port"`

	PostgresURL string `koanf:"postgres_url"`

	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
	SessionTTL    time.Duration `koanf:"session_ttl"`

	LLMProvider       string        `koanf:"llm_provider"`
	LLMModel          string        `koanf:"llm_model"`
	EmbeddingProvider string        `koanf:"embedding_provider"`
	EmbeddingModel    string        `koanf:"embedding_model"`
	GeminiAPIKey      string        `koanf:"gemini_api_key"`
	OpenAIAPIKey      string        `koanf:"openai_api_key"`
	LLMTimeout        time.Duration `koanf:"llm_timeout"`

	MaxCandidates         int  `koanf:"max_candidates"`
	PromptMaxChars        int  `koanf:"prompt_max_chars"`
	StringAwareExtraction bool `koanf:"string_aware_extraction"`
	LockSchedule          bool `koanf:"lock_schedule"`
}

// Load reads an optional .env file, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load(envFiles...)

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	if c.AppEnv == "" {
		c.AppEnv = "production"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 24 * time.Hour
	}
	c.LLMProvider = strings.ToLower(c.LLMProvider)
	if c.LLMProvider == "" {
		c.LLMProvider = "gemini"
	}
	c.EmbeddingProvider = strings.ToLower(c.EmbeddingProvider)
	if c.EmbeddingProvider == "" {
		c.EmbeddingProvider = c.LLMProvider
	}
	if c.LLMModel == "" {
		c.LLMModel = defaultLLMModel(c.LLMProvider)
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = defaultEmbeddingModel(c.EmbeddingProvider)
	}
	if c.LLMTimeout <= 0 {
		c.LLMTimeout = 60 * time.Second
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = 30
	}
	if c.PromptMaxChars <= 0 {
		c.PromptMaxChars = 20000
	}
}

// Validate checks provider names and that each provider has its key.
// The "hash" embedding provider needs no key.
func (c Config) Validate() error {
	if c.LLMProvider == "hash" {
		return fmt.Errorf("the hash provider only serves embeddings")
	}
	for _, p := range []string{c.LLMProvider, c.EmbeddingProvider} {
		switch p {
		case "hash":
		case "gemini":
			if c.GeminiAPIKey == "" {
				return fmt.Errorf("GEMINI_API_KEY is required when using the gemini provider")
			}
		case "openai":
			if c.OpenAIAPIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY is required when using the openai provider")
			}
		default:
			return fmt.Errorf("unsupported provider %q, use gemini or openai", p)
		}
	}
	return nil
}

// APIKey returns the key configured for provider.
func (c Config) APIKey(provider string) string {
	if provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

func defaultLLMModel(provider string) string {
	if provider == "openai" {
		return "gpt-4o-mini"
	}
	return "gemini-1.5-flash"
}

func defaultEmbeddingModel(provider string) string {
	switch provider {
	case "openai":
		return "text-embedding-3-small"
	case "hash":
		return "fnv-1536"
	}
	return "text-embedding-004"
}
