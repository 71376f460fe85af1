// Package authoring turns LLM output into question drafts: prompts,
// structured output schemas, draft validation, and the static fallback
// pool used when the provider is unavailable.
package authoring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	QuestionText string         `json:"question_text"`
	QuestionType string         `json:"question_type"`
	Difficulty   string         `json:"difficulty"`
	Options      []optionOutput `json:"options"`
	Explanation  string         `json:"explanation"`
}

type optionOutput struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Generate produces a batch of drafts for the given request. The returned
// drafts are unvalidated; callers run ValidateDraft before persisting.
func (g *LLMGenerator) Generate(ctx context.Context, req GenerateRequest) ([]Draft, error) {
	if llm.PurposeFrom(ctx) == llm.PurposeUnknown {
		ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req, g.config)},
		},
		Schema:      QuestionBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	drafts := make([]Draft, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		d := Draft{
			Text:        q.QuestionText,
			Type:        exam.QuestionType(q.QuestionType),
			Difficulty:  exam.Difficulty(q.Difficulty),
			Explanation: q.Explanation,
		}
		for _, opt := range q.Options {
			d.Options = append(d.Options, DraftOption{Text: opt.Text, Correct: opt.Correct})
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}
