package question

import "github.com/fairpersona/skillcert/internal/llm"

// TestQuestionsSchema defines the JSON schema for model-generated
// question batches.
var TestQuestionsSchema = &llm.Schema{
	Name:        "test-questions",
	Description: "A batch of skill assessment questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"mcq", "short_text", "scenario"},
							"description": "Question format",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the candidate",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options for mcq. Empty array otherwise.",
						},
						"correct_answer": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option. -1 for non-mcq.",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty tier; determines the point value",
						},
					},
					"required":             []any{"type", "question", "options", "correct_answer", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
