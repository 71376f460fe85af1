package authoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/examiz/internal/llm"
)

// Narrative is the qualitative half of a diagnostic analysis.
type Narrative struct {
	// DiagnosticSummary is a short paragraph describing the attempt.
	DiagnosticSummary string

	// StudyNotes is markdown study guidance focused on the weak areas.
	StudyNotes string

	// StrengthWeaknessPairs lists observed behaviors with a strategy each.
	StrengthWeaknessPairs []StrengthWeakness

	// MistakeCategorization labels each sampled incorrect question.
	MistakeCategorization []MistakeCategory
}

// StrengthWeakness is one observed behavior and the strategy to address
// or exploit it.
type StrengthWeakness struct {
	Point    string
	Strategy string
}

// MistakeCategory labels one incorrect answer with a mistake type.
type MistakeCategory struct {
	QuestionID int
	Type       string
	Reason     string
}

// NarrativeSchema defines the JSON schema for diagnostic synthesis
// responses.
var NarrativeSchema = &llm.Schema{
	Name:        "diagnostic-narrative",
	Description: "Qualitative diagnosis of one test attempt based on behavioral metrics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"diagnostic_summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence summary of how the aspirant performed and why",
			},
			"study_notes": map[string]any{
				"type":        "string",
				"description": "Markdown study guidance targeting the weak topics",
			},
			"strength_weakness_pairs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"point": map[string]any{
							"type":        "string",
							"description": "One observed strength or weakness",
						},
						"strategy": map[string]any{
							"type":        "string",
							"description": "A concrete strategy to address or exploit it",
						},
					},
					"required":             []any{"point", "strategy"},
					"additionalProperties": false,
				},
			},
			"mistake_categorization": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_id": map[string]any{
							"type": "integer",
						},
						"type": map[string]any{
							"type":        "string",
							"description": "Mistake category, e.g. CONCEPTUAL_GAP, SILLY_MISTAKE, TIME_PRESSURE",
						},
						"reason": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"question_id", "type", "reason"},
					"additionalProperties": false,
				},
			},
		},
		"required": []any{
			"diagnostic_summary",
			"study_notes",
			"strength_weakness_pairs",
			"mistake_categorization",
		},
		"additionalProperties": false,
	},
}

const synthesisSystemPrompt = `You are an experienced UPSC mentor reviewing a mock test attempt.

You receive the attempt's behavioral metrics, the weak topics, and sample incorrect questions. Respond with:
- A frank 2-3 sentence diagnostic summary of the attempt.
- Markdown study notes that target the weak topics specifically, not generic advice.
- Strength/weakness pairs, each with one concrete strategy.
- A mistake category for every sampled incorrect question (CONCEPTUAL_GAP, SILLY_MISTAKE, TIME_PRESSURE, or a more fitting label).
Ground every statement in the data provided. Do not invent topics or questions.`

// Synthesizer produces diagnostic narratives from attempt context
// documents.
type Synthesizer struct {
	provider llm.Provider
	config   Config
}

// NewSynthesizer creates a Synthesizer with the given provider and config.
func NewSynthesizer(provider llm.Provider, cfg Config) *Synthesizer {
	return &Synthesizer{provider: provider, config: cfg}
}

// narrativeOutput is the raw LLM response before conversion.
type narrativeOutput struct {
	DiagnosticSummary     string `json:"diagnostic_summary"`
	StudyNotes            string `json:"study_notes"`
	StrengthWeaknessPairs []struct {
		Point    string `json:"point"`
		Strategy string `json:"strategy"`
	} `json:"strength_weakness_pairs"`
	MistakeCategorization []struct {
		QuestionID int    `json:"question_id"`
		Type       string `json:"type"`
		Reason     string `json:"reason"`
	} `json:"mistake_categorization"`
}

// Synthesize sends the context document to the LLM and returns the parsed
// narrative. Callers are expected to degrade gracefully on error; numeric
// metrics never depend on this call.
func (s *Synthesizer) Synthesize(ctx context.Context, contextDoc string) (*Narrative, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeDiagnostics)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: synthesisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: contextDoc},
		},
		Schema:      NarrativeSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("diagnostic synthesis failed: %w", err)
	}

	var raw narrativeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse synthesis response: %w", err)
	}

	n := &Narrative{
		DiagnosticSummary: raw.DiagnosticSummary,
		StudyNotes:        raw.StudyNotes,
	}
	for _, p := range raw.StrengthWeaknessPairs {
		n.StrengthWeaknessPairs = append(n.StrengthWeaknessPairs, StrengthWeakness{
			Point:    p.Point,
			Strategy: p.Strategy,
		})
	}
	for _, m := range raw.MistakeCategorization {
		n.MistakeCategorization = append(n.MistakeCategorization, MistakeCategory{
			QuestionID: m.QuestionID,
			Type:       m.Type,
			Reason:     m.Reason,
		})
	}
	return n, nil
}
