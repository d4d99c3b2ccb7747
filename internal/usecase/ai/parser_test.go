package ai

import (
	"encoding/json"
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-analyzer/internal/domain/entities"
)

func TestNormalize_ValidJSONIsReturnedUnchanged(t *testing.T) {
	raw := `{"title":"A","summary":"B","action_items":[],"key_points":[]}`

	outcome := Normalize(raw, nil)

	require.Equal(t, OutcomeParsed, outcome.Kind)
	assert.NoError(t, outcome.Err)
	assert.Equal(t, entities.AnalysisResult{
		Title:       "A",
		Summary:     "B",
		ActionItems: []string{},
		KeyPoints:   []string{},
	}, outcome.Result)

	encoded, err := json.Marshal(outcome.Result)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(encoded))
}

func TestNormalize_NotJSON(t *testing.T) {
	outcome := Normalize("not json", nil)

	require.Equal(t, OutcomeUnparsable, outcome.Kind)
	assert.Error(t, outcome.Err)
	assert.Equal(t, entities.ParsingErrorTitle, outcome.Result.Title)
	assert.Equal(t, entities.ParsingErrorSummary, outcome.Result.Summary)
	assert.Equal(t, "not json", outcome.Result.RawResponse)
	assert.Equal(t, []string{}, outcome.Result.ActionItems)
	assert.Equal(t, []string{}, outcome.Result.KeyPoints)
}

func TestNormalize_CallFailed(t *testing.T) {
	callErr := stdErrors.New("dial tcp: connection refused")

	outcome := Normalize("", callErr)

	require.Equal(t, OutcomeCallFailed, outcome.Kind)
	assert.ErrorIs(t, outcome.Err, callErr)
	assert.Equal(t, entities.NewErrorResult(), outcome.Result)

	encoded, err := json.Marshal(outcome.Result)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "raw_response")
}

func TestNormalize_CallErrorWinsOverText(t *testing.T) {
	outcome := Normalize(`{"title":"A"}`, stdErrors.New("timeout"))
	assert.Equal(t, OutcomeCallFailed, outcome.Kind)
	assert.Equal(t, entities.ErrorTitle, outcome.Result.Title)
}

func TestParseAnalysisJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    entities.AnalysisResult
		wantErr bool
	}{
		{
			name: "full record",
			raw:  `{"title":"Sprint review","summary":"Went well.","action_items":["Fix CI"],"key_points":["Velocity up"]}`,
			want: entities.AnalysisResult{Title: "Sprint review", Summary: "Went well.", ActionItems: []string{"Fix CI"}, KeyPoints: []string{"Velocity up"}},
		},
		{
			name: "missing fields become empty",
			raw:  `{"title":"Only title"}`,
			want: entities.AnalysisResult{Title: "Only title", ActionItems: []string{}, KeyPoints: []string{}},
		},
		{
			name: "null lists become empty",
			raw:  `{"title":"T","summary":"S","action_items":null,"key_points":null}`,
			want: entities.AnalysisResult{Title: "T", Summary: "S", ActionItems: []string{}, KeyPoints: []string{}},
		},
		{
			name: "unknown fields and raw_response are dropped",
			raw:  `{"title":"T","summary":"S","action_items":[],"key_points":[],"sentiment":0.4,"raw_response":"x"}`,
			want: entities.AnalysisResult{Title: "T", Summary: "S", ActionItems: []string{}, KeyPoints: []string{}},
		},
		{
			name: "markdown fenced",
			raw:  "```json\n{\"title\":\"T\",\"summary\":\"S\",\"action_items\":[\"a\"],\"key_points\":[]}\n```",
			want: entities.AnalysisResult{Title: "T", Summary: "S", ActionItems: []string{"a"}, KeyPoints: []string{}},
		},
		{
			name: "plain fence",
			raw:  "```\n{\"title\":\"T\"}\n```",
			want: entities.AnalysisResult{Title: "T", ActionItems: []string{}, KeyPoints: []string{}},
		},
		{name: "empty", raw: "   ", wantErr: true},
		{name: "truncated", raw: `{"title":"T","summary":`, wantErr: true},
		{name: "array", raw: `["a","b"]`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "wrong type", raw: `{"title":42}`, wantErr: true},
		{name: "object action items", raw: `{"action_items":[{"task":"x"}]}`, wantErr: true},
		{name: "trailing garbage", raw: `{"title":"T"} and more`, wantErr: true},
		{name: "trailing bracket", raw: `{"title":"T"}]`, wantErr: true},
		{name: "trailing brace", raw: `{"title":"T"}}`, wantErr: true},
		{name: "second object", raw: `{"title":"T"} {"title":"U"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAnalysisJSON(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_FencedReplyKeepsRawOnFailure(t *testing.T) {
	raw := "```json\n{broken\n```"
	outcome := Normalize(raw, nil)

	assert.Equal(t, OutcomeUnparsable, outcome.Kind)
	assert.Equal(t, raw, outcome.Result.RawResponse)
}

func TestNormalize_TrailingDataIsUnparsable(t *testing.T) {
	for _, raw := range []string{`{"title":"T"}]`, `{"title":"T"}}`} {
		outcome := Normalize(raw, nil)

		assert.Equal(t, OutcomeUnparsable, outcome.Kind, raw)
		assert.Equal(t, entities.NewParsingErrorResult(raw), outcome.Result)
	}
}

func TestNormalize_EmptyReplyIsUnparsable(t *testing.T) {
	outcome := Normalize("", nil)

	assert.Equal(t, OutcomeUnparsable, outcome.Kind)
	assert.Equal(t, entities.ParsingErrorTitle, outcome.Result.Title)
	assert.Error(t, outcome.Err)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "parsed", OutcomeParsed.String())
	assert.Equal(t, "unparsable", OutcomeUnparsable.String())
	assert.Equal(t, "call_failed", OutcomeCallFailed.String())
	assert.Equal(t, "OutcomeKind(7)", OutcomeKind(7).String())
}
