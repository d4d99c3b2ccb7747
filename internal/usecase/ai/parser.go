package ai

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

// OutcomeKind tells which branch the normalizer took
type OutcomeKind int

const (
	// OutcomeParsed means the model replied with a record matching the schema
	OutcomeParsed OutcomeKind = iota
	// OutcomeUnparsable means the model replied but the text is not a usable JSON record
	OutcomeUnparsable
	// OutcomeCallFailed means the model could not be reached or refused the request
	OutcomeCallFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeParsed:
		return "parsed"
	case OutcomeUnparsable:
		return "unparsable"
	case OutcomeCallFailed:
		return "call_failed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the typed result of one analysis attempt.
// Result is always a valid record; Err explains the degraded branches.
type Outcome struct {
	Kind   OutcomeKind
	Result entities.AnalysisResult
	Err    error
}

// modelReply is the shape the model is asked to produce. A raw_response key sent by the model is ignored.
type modelReply struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
	KeyPoints   []string `json:"key_points"`
}

// Normalize turns the raw model reply, or the error of the call that should have produced it,
// into an Outcome
func Normalize(raw string, callErr error) Outcome {
	if callErr != nil {
		return Outcome{
			Kind:   OutcomeCallFailed,
			Result: entities.NewErrorResult(),
			Err:    callErr,
		}
	}

	result, err := ParseAnalysisJSON(raw)
	if err != nil {
		return Outcome{
			Kind:   OutcomeUnparsable,
			Result: entities.NewParsingErrorResult(raw),
			Err:    err,
		}
	}

	return Outcome{Kind: OutcomeParsed, Result: result}
}

// ParseAnalysisJSON decodes a model reply into an AnalysisResult.
// Missing fields become empty values, unknown fields are dropped and wrongly typed fields are an error.
func ParseAnalysisJSON(raw string) (entities.AnalysisResult, error) {
	content := extractJSON(raw)
	if content == "" {
		return entities.AnalysisResult{}, fmt.Errorf("empty response")
	}

	// Decode leaves the struct untouched for a literal null
	if content == "null" {
		return entities.AnalysisResult{}, fmt.Errorf("failed to parse JSON response: null is not an object")
	}

	var reply modelReply
	dec := json.NewDecoder(strings.NewReader(content))
	if err := dec.Decode(&reply); err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return entities.AnalysisResult{}, fmt.Errorf("failed to parse JSON response: trailing data after object")
	}

	result := entities.AnalysisResult{
		Title:       reply.Title,
		Summary:     reply.Summary,
		ActionItems: reply.ActionItems,
		KeyPoints:   reply.KeyPoints,
	}
	if result.ActionItems == nil {
		result.ActionItems = make([]string, 0)
	}
	if result.KeyPoints == nil {
		result.KeyPoints = make([]string, 0)
	}

	return result, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}

	return strings.TrimSpace(content)
}
