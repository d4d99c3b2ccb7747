package ai

import "fmt"

// MaxAnswerWords is the soft length cap given to the model. It is not enforced on the reply.
const MaxAnswerWords = 150

// promptTemplate lists the four fields of entities.AnalysisResult; the transcript follows "Content:".
const promptTemplate = `Extract key information from the transcript below.

Return a JSON object with these fields:
- title: A brief descriptive title
- summary: Short overview of the main discussion
- action_items: List of tasks or next steps mentioned
- key_points: List of important takeaways
Keep the whole answer under %d words.

Content:
%s`

// BuildPrompt embeds the transcript verbatim into the extraction prompt
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, MaxAnswerWords, transcript)
}
