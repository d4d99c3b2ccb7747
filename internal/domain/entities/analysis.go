package entities

// AnalysisResult represents the structured record extracted from a transcript
type AnalysisResult struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
	KeyPoints   []string `json:"key_points"`
	// RawResponse carries the unparsed model reply, set only when it could not be decoded
	RawResponse string `json:"raw_response,omitempty"`
}

// Fallback titles and summaries returned when the model output is unusable
const (
	ErrorTitle          = "Error"
	ErrorSummary        = "An error occurred during processing."
	ParsingErrorTitle   = "Parsing Error"
	ParsingErrorSummary = "Unable to parse response as JSON."
)

// NewErrorResult builds the record returned when the model call itself failed
func NewErrorResult() AnalysisResult {
	return AnalysisResult{
		Title:       ErrorTitle,
		Summary:     ErrorSummary,
		ActionItems: []string{},
		KeyPoints:   []string{},
	}
}

// NewParsingErrorResult builds the record returned when the model reply is not valid JSON
func NewParsingErrorResult(raw string) AnalysisResult {
	return AnalysisResult{
		Title:       ParsingErrorTitle,
		Summary:     ParsingErrorSummary,
		ActionItems: []string{},
		KeyPoints:   []string{},
		RawResponse: raw,
	}
}
