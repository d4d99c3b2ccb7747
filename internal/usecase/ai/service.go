package ai

import (
	"context"
	"time"

	"go.uber.org/zap"

	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
)

// DefaultTimeout bounds a single model call when no timeout is configured
const DefaultTimeout = 60 * time.Second

// Service defines transcript analysis
type Service interface {
	// Analyze makes exactly one model call and always returns a usable record
	Analyze(ctx context.Context, transcript string) Outcome
}

type aiService struct {
	generator pkgai.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

// NewAIService constructs a new analysis service around a configured model client
func NewAIService(generator pkgai.Generator, timeout time.Duration, logger *zap.Logger) Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &aiService{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Analyze builds the prompt, calls the model once and normalizes the reply
func (s *aiService) Analyze(ctx context.Context, transcript string) Outcome {
	startTime := time.Now()
	prompt := BuildPrompt(transcript)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, callErr := s.generator.GenerateJSON(callCtx, prompt)
	outcome := Normalize(raw, callErr)

	switch outcome.Kind {
	case OutcomeCallFailed:
		s.logger.Error("❌ Model call failed",
			zap.Int("transcript_length", len(transcript)),
			zap.Duration("elapsed", time.Since(startTime)),
			zap.Error(outcome.Err),
		)
	case OutcomeUnparsable:
		s.logger.Error("❌ Failed to parse model JSON response",
			zap.Error(outcome.Err),
			zap.String("raw_response", raw),
		)
	default:
		s.logger.Info("✅ Transcript analyzed",
			zap.Int("transcript_length", len(transcript)),
			zap.Int("action_items", len(outcome.Result.ActionItems)),
			zap.Int("key_points", len(outcome.Result.KeyPoints)),
			zap.Duration("elapsed", time.Since(startTime)),
		)
	}

	return outcome
}
