// Package scoring grades test attempts: attempt lifecycle, answer
// correctness, behavioral classification of each answer, and best-effort
// metrics recording.
package scoring

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/store"
)

// AnswerInput is the client-reported telemetry for one question.
type AnswerInput struct {
	QuestionID            int
	SelectedOptionID      int // 0 means unanswered
	FirstSelectedOptionID int
	TimeSpentSeconds      int
	SelectionChangeCount  int
	HoverCount            int
	EliminatedOptionIDs   []int
}

// QuestionResult is the graded outcome of one snapshot question.
type QuestionResult struct {
	QuestionID       int
	Text             string
	SelectedOptionID int
	CorrectOptionID  int
	Correct          bool
	Answered         bool
	Explanation      string
	Classification   exam.Classification
}

// Result is the outcome of a submitted attempt.
type Result struct {
	Attempt   exam.Attempt
	Questions []QuestionResult
}

// MetricsRecorder computes and persists behavioral metrics after a
// submission. Failures are logged by the engine and never surfaced.
type MetricsRecorder interface {
	Record(ctx context.Context, attempt exam.Attempt, questions []exam.Question, records []exam.AnswerRecord) error
}

// Engine drives the attempt lifecycle.
type Engine struct {
	tests     store.TestRepo
	attempts  store.AttemptRepo
	answers   store.AnswerRepo
	questions store.QuestionRepo

	classifiers []Classifier
	recorder    MetricsRecorder
	log         *zap.Logger

	now func() time.Time
}

// NewEngine wires an Engine with classification windows. recorder may be
// nil to skip metrics.
func NewEngine(
	tests store.TestRepo,
	attempts store.AttemptRepo,
	answers store.AnswerRepo,
	questions store.QuestionRepo,
	recorder MetricsRecorder,
	thresholds Thresholds,
	log *zap.Logger,
) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		tests:       tests,
		attempts:    attempts,
		answers:     answers,
		questions:   questions,
		classifiers: Classifiers(thresholds),
		recorder:    recorder,
		log:         log,
		now:         time.Now,
	}
}

// StartAttempt opens an attempt on the test, or resumes the user's
// existing in-progress attempt on it. The boolean reports whether a new
// attempt was created.
func (e *Engine) StartAttempt(ctx context.Context, testID int, userID string) (exam.Attempt, bool, error) {
	test, err := e.tests.ByID(ctx, testID)
	if err != nil {
		return exam.Attempt{}, false, err
	}
	return e.attempts.Start(ctx, test.ID, userID, test.TotalMarks)
}

// Submit grades the attempt and completes it. One answer record is stored
// per snapshot question; questions without a selection count as
// unanswered and stay unclassified.
func (e *Engine) Submit(ctx context.Context, attemptID int, userID string, inputs []AnswerInput) (*Result, error) {
	attempt, err := e.attempts.ByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, &exam.RuleViolationError{Reason: "attempt belongs to a different user"}
	}
	if attempt.Status != exam.AttemptInProgress {
		return nil, &exam.RuleViolationError{Reason: "attempt is not in progress"}
	}

	test, err := e.tests.ByID(ctx, attempt.TestID)
	if err != nil {
		return nil, err
	}
	questions, err := e.questions.ByIDs(ctx, test.QuestionIDs)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[int]AnswerInput, len(inputs))
	for _, in := range inputs {
		byQuestion[in.QuestionID] = in
	}

	var (
		records []exam.AnswerRecord
		results []QuestionResult
		correct int
	)
	for _, q := range questions {
		rec, res := e.grade(q, byQuestion[q.ID])
		records = append(records, rec)
		results = append(results, res)
		if rec.Correct {
			correct++
		}
	}

	score := correct
	if score > test.TotalMarks {
		score = test.TotalMarks
	}
	if score < 0 {
		score = 0
	}

	if err := e.answers.SaveBatch(ctx, attempt.ID, userID, records); err != nil {
		return nil, err
	}
	completed, err := e.attempts.Complete(ctx, attempt.ID, score, e.now())
	if err != nil {
		return nil, err
	}

	if e.recorder != nil {
		if err := e.recorder.Record(ctx, completed, questions, records); err != nil {
			e.log.Warn("metrics recording failed",
				zap.String("attempt_id", completed.PublicID),
				zap.Error(err))
		}
	}

	e.log.Info("attempt submitted",
		zap.String("attempt_id", completed.PublicID),
		zap.String("user_id", userID),
		zap.Int("score", completed.Score),
		zap.Int("total", completed.TotalMarks))
	return &Result{Attempt: completed, Questions: results}, nil
}

// grade resolves one question against its reported telemetry.
func (e *Engine) grade(q exam.Question, in AnswerInput) (exam.AnswerRecord, QuestionResult) {
	rec := exam.AnswerRecord{
		QuestionID:            q.ID,
		SelectedOptionID:      in.SelectedOptionID,
		FirstSelectedOptionID: in.FirstSelectedOptionID,
		TimeSpentSeconds:      in.TimeSpentSeconds,
		SelectionChangeCount:  in.SelectionChangeCount,
		HoverCount:            in.HoverCount,
		EliminatedOptionIDs:   in.EliminatedOptionIDs,
		Classification:        exam.Unknown,
	}

	res := QuestionResult{
		QuestionID:       q.ID,
		Text:             q.Text,
		SelectedOptionID: in.SelectedOptionID,
		Explanation:      q.Explanation,
		Classification:   exam.Unknown,
	}
	if opt := q.CorrectOption(); opt != nil {
		res.CorrectOptionID = opt.ID
	}

	if in.SelectedOptionID == 0 {
		return rec, res
	}

	res.Answered = true
	if opt := q.OptionByID(in.SelectedOptionID); opt != nil && opt.Correct {
		rec.Correct = true
		res.Correct = true
	}

	cls := RunClassifiers(e.classifiers, &ClassifyInput{
		TimeSpentSeconds:     in.TimeSpentSeconds,
		SelectionChangeCount: in.SelectionChangeCount,
		HoverCount:           in.HoverCount,
		Difficulty:           q.Difficulty,
	})
	rec.Classification = cls
	res.Classification = cls
	return rec, res
}

// AttemptResult rebuilds the per-question detail of a completed attempt.
func (e *Engine) AttemptResult(ctx context.Context, attemptID int, userID string) (*Result, error) {
	attempt, err := e.attempts.ByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, &exam.RuleViolationError{Reason: "attempt belongs to a different user"}
	}
	if attempt.Status != exam.AttemptCompleted {
		return nil, &exam.RuleViolationError{Reason: "attempt is not completed"}
	}

	test, err := e.tests.ByID(ctx, attempt.TestID)
	if err != nil {
		return nil, err
	}
	questions, err := e.questions.ByIDs(ctx, test.QuestionIDs)
	if err != nil {
		return nil, err
	}
	records, err := e.answers.ListByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[int]exam.AnswerRecord, len(records))
	for _, rec := range records {
		byQuestion[rec.QuestionID] = rec
	}

	var results []QuestionResult
	for _, q := range questions {
		rec := byQuestion[q.ID]
		res := QuestionResult{
			QuestionID:       q.ID,
			Text:             q.Text,
			SelectedOptionID: rec.SelectedOptionID,
			Correct:          rec.Correct,
			Answered:         rec.Answered(),
			Explanation:      q.Explanation,
			Classification:   rec.Classification,
		}
		if opt := q.CorrectOption(); opt != nil {
			res.CorrectOptionID = opt.ID
		}
		results = append(results, res)
	}
	return &Result{Attempt: attempt, Questions: results}, nil
}

// ListAttempts returns the user's attempts, newest first.
func (e *Engine) ListAttempts(ctx context.Context, userID string, limit int) ([]exam.Attempt, error) {
	return e.attempts.ListByUser(ctx, userID, limit)
}
