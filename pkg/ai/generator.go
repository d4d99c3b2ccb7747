package ai

import (
	"context"
	"fmt"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// Generator sends a prompt to a generative-language model that was asked to answer in JSON
// and returns the model's raw reply text
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// GenerateJSON calls f(ctx, prompt)
func (f GeneratorFunc) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// NewGenerator builds the client of the configured provider. It is called once at startup.
func NewGenerator(ctx context.Context, cfg *config.AIConfig) (Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("ai config is required")
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.Provider)
	}
}
