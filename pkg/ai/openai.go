package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const (
	// DefaultOpenAIModel is used when AI_MODEL is not set
	DefaultOpenAIModel = "gpt-4.1-mini"

	temperature = 0.3
)

// OpenAIClient calls any OpenAI-compatible Chat Completions endpoint (OpenAI, Groq, ...)
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client using values from the provided config.
// AI_BASE_URL points it at another compatible endpoint, e.g. https://api.groq.com/openai/v1/.
func NewOpenAIClient(cfg *config.AIConfig) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		// one attempt per request
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// GenerateJSON sends the prompt as a user message with a json_object response format
func (o *OpenAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion choices are missing")
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the model name requests are sent to
func (o *OpenAIClient) Model() string {
	return o.model
}
