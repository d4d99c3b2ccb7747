package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_EmbedsTranscriptVerbatim(t *testing.T) {
	transcripts := []string{
		"",
		"hello",
		"Alice: ship it by Friday.\nBob: I'll write the tests.",
		"100% sure about %s and %d, {\"json\": true}",
		"```json\n{}\n```",
		"Anh Quang: chúng ta cần hoàn thành báo cáo",
	}

	for _, transcript := range transcripts {
		prompt := BuildPrompt(transcript)

		assert.True(t, strings.HasSuffix(prompt, "Content:\n"+transcript), "transcript must follow the delimiter verbatim")
		for _, field := range []string{"title", "summary", "action_items", "key_points"} {
			assert.Contains(t, prompt, field)
		}
		assert.Contains(t, prompt, "150 words")
	}
}

func TestBuildPrompt_IsDeterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt("same"), BuildPrompt("same"))
}
