package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// DefaultGeminiModel is used when AI_MODEL is not set
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient calls the Gemini API with a JSON response MIME type
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client using values from the provided config
func NewGeminiClient(ctx context.Context, cfg *config.AIConfig) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateJSON sends the prompt as a single user turn and returns the text of the first candidate.
// A response without candidates (e.g. a blocked prompt) is an error.
func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini API: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini API: no candidates in response")
	}

	// an empty text is still a reply; the caller decides whether it parses
	return resp.Text(), nil
}

// Model returns the model name requests are sent to
func (g *GeminiClient) Model() string {
	return g.model
}
