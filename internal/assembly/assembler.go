// Package assembly builds tests: standard assembly on top of the sourcing
// pipeline, and remedial assembly targeting the weak topics of a completed
// attempt.
package assembly

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/sourcing"
	"github.com/abhisek/examiz/internal/store"
)

// Sourcer supplies questions for assembly. Satisfied by
// *sourcing.Pipeline.
type Sourcer interface {
	Source(ctx context.Context, req sourcing.Request) ([]exam.Question, error)
}

// Config tunes assembly behavior.
type Config struct {
	// DefaultDuration is minutes allotted per assembled test.
	DefaultDuration int
	// MarksPerQuestion is the positive mark per question.
	MarksPerQuestion int
	// RemedialSize is the question count of a remedial test.
	RemedialSize int
	// RemedialDuration is minutes allotted to a remedial test.
	RemedialDuration int
}

// DefaultConfig returns the recommended assembly settings.
func DefaultConfig() Config {
	return Config{
		DefaultDuration:  60,
		MarksPerQuestion: 1,
		RemedialSize:     10,
		RemedialDuration: 15,
	}
}

// Request describes one standard assembly.
type Request struct {
	UserID     string
	SubjectID  int
	TopicID    int // 0 means subject-wide
	Difficulty exam.Difficulty
	Count      int
	Type       exam.TestType // empty defaults to MOCK
	// Context is optional study material forwarded to real-time
	// generation.
	Context string
}

// Assembler builds and persists tests.
type Assembler struct {
	sourcer   Sourcer
	tests     store.TestRepo
	attempts  store.AttemptRepo
	answers   store.AnswerRepo
	questions store.QuestionRepo

	config Config
	log    *zap.Logger
}

// New wires an Assembler.
func New(
	sourcer Sourcer,
	tests store.TestRepo,
	attempts store.AttemptRepo,
	answers store.AnswerRepo,
	questions store.QuestionRepo,
	cfg Config,
	log *zap.Logger,
) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		sourcer:   sourcer,
		tests:     tests,
		attempts:  attempts,
		answers:   answers,
		questions: questions,
		config:    cfg,
		log:       log,
	}
}

// Assemble sources questions and persists an immutable test snapshot.
// The persisted test may hold fewer questions than requested when the
// bank runs short; an empty result is a rule violation.
func (a *Assembler) Assemble(ctx context.Context, req Request) (exam.Test, error) {
	return a.assemble(ctx, req, a.config.DefaultDuration)
}

func (a *Assembler) assemble(ctx context.Context, req Request, durationMinutes int) (exam.Test, error) {
	questions, err := a.sourcer.Source(ctx, sourcing.Request{
		UserID:     req.UserID,
		SubjectID:  req.SubjectID,
		TopicID:    req.TopicID,
		Difficulty: req.Difficulty,
		Count:      req.Count,
		Context:    req.Context,
	})
	if err != nil {
		return exam.Test{}, err
	}
	if len(questions) == 0 {
		return exam.Test{}, &exam.RuleViolationError{Reason: "no questions available for the requested scope"}
	}

	testType := req.Type
	if testType == "" {
		testType = exam.TestMock
	}

	ids := make([]int, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	t := exam.Test{
		SubjectID:        req.SubjectID,
		TopicID:          req.TopicID,
		TargetDifficulty: req.Difficulty,
		Type:             testType,
		TotalQuestions:   len(ids),
		TotalMarks:       len(ids) * a.config.MarksPerQuestion,
		DurationMinutes:  durationMinutes,
		QuestionIDs:      ids,
		CreatedBy:        req.UserID,
	}
	stored, err := a.tests.Create(ctx, t)
	if err != nil {
		return exam.Test{}, err
	}

	a.log.Info("test assembled",
		zap.String("test_id", stored.PublicID),
		zap.String("user_id", req.UserID),
		zap.Int("questions", len(ids)),
		zap.Int("requested", req.Count))
	return stored, nil
}

// AssembleRemedial builds a short follow-up test from the weak topics of
// a completed attempt. Weak topics are the distinct topics of wrongly
// answered questions; with no tagged weak topics the remedial test falls
// back to the whole subject.
func (a *Assembler) AssembleRemedial(ctx context.Context, attemptID int, userID string) (exam.Test, error) {
	attempt, err := a.attempts.ByID(ctx, attemptID)
	if err != nil {
		return exam.Test{}, err
	}
	if attempt.UserID != userID {
		return exam.Test{}, &exam.RuleViolationError{Reason: "attempt belongs to a different user"}
	}
	if attempt.Status != exam.AttemptCompleted {
		return exam.Test{}, &exam.RuleViolationError{Reason: "attempt is not completed"}
	}

	test, err := a.tests.ByID(ctx, attempt.TestID)
	if err != nil {
		return exam.Test{}, err
	}
	records, err := a.answers.ListByAttempt(ctx, attemptID)
	if err != nil {
		return exam.Test{}, err
	}

	var wrongIDs []int
	for _, rec := range records {
		if rec.Answered() && !rec.Correct {
			wrongIDs = append(wrongIDs, rec.QuestionID)
		}
	}
	if len(wrongIDs) == 0 {
		return exam.Test{}, &exam.RuleViolationError{Reason: "no incorrect answers to remediate"}
	}

	wrongQuestions, err := a.questions.ByIDs(ctx, wrongIDs)
	if err != nil {
		return exam.Test{}, err
	}
	weakTopics := distinctTopics(wrongQuestions)

	if len(weakTopics) == 0 {
		// Wrong answers exist but none carry a topic tag; remediate at
		// subject level.
		return a.assemble(ctx, Request{
			UserID:     userID,
			SubjectID:  test.SubjectID,
			Difficulty: test.TargetDifficulty,
			Count:      a.config.RemedialSize,
			Type:       exam.TestAIGenerated,
		}, a.config.RemedialDuration)
	}

	levels := test.TargetDifficulty.Escalation()
	quota := a.config.RemedialSize / len(weakTopics)
	if quota < 1 {
		quota = 1
	}

	var picked []exam.Question
	seen := make(map[string]bool)
	for _, topicID := range weakTopics {
		need := quota
		for _, source := range []exam.Source{exam.SourcePYQ, exam.SourceAI} {
			if need <= 0 {
				break
			}
			found, err := a.questions.FindUnseen(ctx, userID, test.SubjectID, topicID, levels, source, need)
			if err != nil {
				return exam.Test{}, err
			}
			for _, q := range found {
				if need <= 0 || seen[q.Fingerprint] {
					continue
				}
				seen[q.Fingerprint] = true
				picked = append(picked, q)
				need--
			}
		}
	}

	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > a.config.RemedialSize {
		picked = picked[:a.config.RemedialSize]
	}
	if len(picked) == 0 {
		return exam.Test{}, &exam.RuleViolationError{Reason: "no unseen questions left in the weak topics"}
	}

	ids := make([]int, len(picked))
	for i, q := range picked {
		ids[i] = q.ID
	}
	stored, err := a.tests.Create(ctx, exam.Test{
		SubjectID:        test.SubjectID,
		TargetDifficulty: test.TargetDifficulty,
		Type:             exam.TestAIGenerated,
		TotalQuestions:   len(ids),
		TotalMarks:       len(ids) * a.config.MarksPerQuestion,
		DurationMinutes:  a.config.RemedialDuration,
		QuestionIDs:      ids,
		CreatedBy:        userID,
	})
	if err != nil {
		return exam.Test{}, err
	}

	a.log.Info("remedial test assembled",
		zap.String("test_id", stored.PublicID),
		zap.String("user_id", userID),
		zap.Int("weak_topics", len(weakTopics)),
		zap.Int("questions", len(ids)))
	return stored, nil
}

// distinctTopics returns the unique topic ids of the given questions in
// first-seen order, skipping untagged questions.
func distinctTopics(questions []exam.Question) []int {
	seen := make(map[int]bool)
	var out []int
	for _, q := range questions {
		if q.TopicID == 0 || seen[q.TopicID] {
			continue
		}
		seen[q.TopicID] = true
		out = append(out, q.TopicID)
	}
	return out
}
