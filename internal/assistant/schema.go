package assistant

import "github.com/procureiq/procureiq/internal/llm"

// suggestionsSchema builds the response schema for improvement suggestions.
// Each competency key becomes an optional string property so the model can
// skip areas that need no attention.
func suggestionsSchema(skillKeys []string) *llm.Schema {
	props := make(map[string]any, len(skillKeys))
	for _, key := range skillKeys {
		props[key] = map[string]any{
			"type":        "string",
			"description": "Specific, actionable improvement suggestion for this competency",
		}
	}
	return &llm.Schema{
		Name:        "improvement-suggestions",
		Description: "Per-competency improvement suggestions keyed by skill key",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"additionalProperties": false,
		},
	}
}
