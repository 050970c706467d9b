package banks

// entrySchema is the JSON Schema every fact-bank entry must satisfy.
// correctIndex bounds are checked separately since JSON Schema cannot
// relate it to the options length.
var entrySchema = map[string]any{
	"type":     "object",
	"required": []any{"question", "options", "correctIndex"},
	"properties": map[string]any{
		"question": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"options": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"correctIndex": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"explanation": map[string]any{
			"type": "string",
		},
	},
	"additionalProperties": false,
}
