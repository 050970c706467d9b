package tutor

import "github.com/mchawi/sukulu/internal/llm"

// explainSchema is the structured output contract for question reviews.
var explainSchema = &llm.Schema{
	Name:        "question-review",
	Description: "A short review of one multiple-choice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One-sentence statement of why the correct answer is right",
			},
			"steps": map[string]any{
				"type":        "array",
				"description": "Short reasoning steps a student can follow",
				"items":       map[string]any{"type": "string"},
			},
			"pitfall": map[string]any{
				"type":        "string",
				"description": "The most tempting wrong option and why it fails",
			},
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One encouraging closing line",
			},
		},
		"required":             []any{"summary", "steps"},
		"additionalProperties": false,
	},
}
