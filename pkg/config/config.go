package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported model providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds application configuration
type Config struct {
	Server ServerConfig
	AI     AIConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            string        `envconfig:"PORT" default:"8080"`
	Debug           bool          `envconfig:"DEBUG" default:"false"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MaxBodySize     string        `envconfig:"MAX_BODY_SIZE" default:"2M"`
}

// AIConfig holds the model collaborator configuration.
// Only the key of the selected provider is required.
type AIConfig struct {
	Provider     string        `envconfig:"AI_PROVIDER" default:"gemini"`
	Model        string        `envconfig:"AI_MODEL"`
	BaseURL      string        `envconfig:"AI_BASE_URL"`
	Timeout      time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`
	GeminiAPIKey string        `envconfig:"GEMINI_API_KEY"`
	OpenAIAPIKey string        `envconfig:"OPENAI_API_KEY"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var keyName string
	switch c.AI.Provider {
	case ProviderGemini:
		keyName = "GEMINI_API_KEY"
	case ProviderOpenAI:
		keyName = "OPENAI_API_KEY"
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q", c.AI.Provider)
	}
	if strings.TrimSpace(c.AI.APIKey()) == "" {
		return fmt.Errorf("%s is required", keyName)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive")
	}
	return nil
}

// APIKey returns the credential of the selected provider
func (c *AIConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
