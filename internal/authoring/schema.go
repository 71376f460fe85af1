package authoring

import "github.com/abhisek/examiz/internal/llm"

// QuestionBatchSchema defines the JSON schema for LLM question generation
// responses.
var QuestionBatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of multiple choice exam questions with options and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question prompt, self-contained, in plain text",
						},
						"question_type": map[string]any{
							"type":        "string",
							"enum":        []any{"MCQ", "SUBJECTIVE", "TRUE_FALSE"},
							"description": "The answer format of the question",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"EASY", "MEDIUM", "HARD"},
							"description": "Assigned difficulty, at or above the requested floor",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"text": map[string]any{
										"type": "string",
									},
									"correct": map[string]any{
										"type": "boolean",
									},
								},
								"required":             []any{"text", "correct"},
								"additionalProperties": false,
							},
							"description": "Exactly 4 options with exactly one marked correct",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Detailed explanation of why the correct option is correct",
						},
					},
					"required":             []any{"question_text", "question_type", "difficulty", "options", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
