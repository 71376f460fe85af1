package authoring

import (
	"context"

	"github.com/abhisek/examiz/internal/exam"
)

// Draft is a generated question before persistence. It carries no
// identifiers; the store assigns those on upsert.
type Draft struct {
	// Text is the question prompt.
	Text string

	// Type is the answer format, e.g. MCQ or TRUE_FALSE.
	Type exam.QuestionType

	// Difficulty is the generator's assigned difficulty. Always at or
	// above the requested floor.
	Difficulty exam.Difficulty

	// Options holds exactly 4 choices for MCQ drafts, one correct.
	Options []DraftOption

	// Explanation is the worked explanation shown after grading.
	Explanation string
}

// DraftOption is one answer choice of a draft.
type DraftOption struct {
	Text    string
	Correct bool
}

// GenerateRequest holds all context needed to generate a question batch.
type GenerateRequest struct {
	// Subject and Topic are display names, e.g. "History" and
	// "Mughal Empire". Topic may be empty for subject-wide generation.
	Subject string
	Topic   string

	// DifficultyFloor is the minimum difficulty; generated questions may
	// be at the floor or above it.
	DifficultyFloor exam.Difficulty

	// Count is the number of questions requested.
	Count int

	// Context is optional study material to ground the questions in.
	// Long material is truncated before prompting.
	Context string

	// AvoidTexts lists question texts already in the bank for this scope,
	// included in the prompt so the generator steers away from repeats.
	AvoidTexts []string
}

// Generator produces question drafts. The LLM-backed implementation and
// the static fallback pool both satisfy it.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]Draft, error)
}
