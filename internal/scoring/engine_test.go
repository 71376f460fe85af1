package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/examiz/internal/exam"
)

type memTests struct {
	tests map[int]exam.Test
}

func (m *memTests) Create(ctx context.Context, t exam.Test) (exam.Test, error) {
	t.ID = len(m.tests) + 1
	m.tests[t.ID] = t
	return t, nil
}

func (m *memTests) ByID(ctx context.Context, id int) (exam.Test, error) {
	t, ok := m.tests[id]
	if !ok {
		return exam.Test{}, &exam.NotFoundError{Resource: "test"}
	}
	return t, nil
}

func (m *memTests) ByPublicID(ctx context.Context, publicID string) (exam.Test, error) {
	for _, t := range m.tests {
		if t.PublicID == publicID {
			return t, nil
		}
	}
	return exam.Test{}, &exam.NotFoundError{Resource: "test"}
}

func (m *memTests) ListByCreator(ctx context.Context, userID string, limit int) ([]exam.Test, error) {
	return nil, nil
}

type memAttempts struct {
	attempts map[int]exam.Attempt
	nextID   int
}

func (m *memAttempts) Start(ctx context.Context, testID int, userID string, totalMarks int) (exam.Attempt, bool, error) {
	for _, a := range m.attempts {
		if a.TestID == testID && a.UserID == userID && a.Status == exam.AttemptInProgress {
			return a, false, nil
		}
	}
	m.nextID++
	a := exam.Attempt{
		ID:         m.nextID,
		TestID:     testID,
		UserID:     userID,
		Status:     exam.AttemptInProgress,
		TotalMarks: totalMarks,
		StartedAt:  time.Now(),
	}
	m.attempts[a.ID] = a
	return a, true, nil
}

func (m *memAttempts) ByID(ctx context.Context, id int) (exam.Attempt, error) {
	a, ok := m.attempts[id]
	if !ok {
		return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt"}
	}
	return a, nil
}

func (m *memAttempts) ByPublicID(ctx context.Context, publicID string) (exam.Attempt, error) {
	return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt"}
}

func (m *memAttempts) Complete(ctx context.Context, id int, score int, completedAt time.Time) (exam.Attempt, error) {
	a, ok := m.attempts[id]
	if !ok || a.Status != exam.AttemptInProgress {
		return exam.Attempt{}, &exam.RuleViolationError{Reason: "attempt is not in progress"}
	}
	a.Status = exam.AttemptCompleted
	a.Score = score
	a.CompletedAt = completedAt
	m.attempts[id] = a
	return a, nil
}

func (m *memAttempts) Abandon(ctx context.Context, id int) error { return nil }

func (m *memAttempts) ListByUser(ctx context.Context, userID string, limit int) ([]exam.Attempt, error) {
	var out []exam.Attempt
	for _, a := range m.attempts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memAnswers struct {
	byAttempt map[int][]exam.AnswerRecord
}

func (m *memAnswers) SaveBatch(ctx context.Context, attemptID int, userID string, records []exam.AnswerRecord) error {
	m.byAttempt[attemptID] = append([]exam.AnswerRecord(nil), records...)
	return nil
}

func (m *memAnswers) ListByAttempt(ctx context.Context, attemptID int) ([]exam.AnswerRecord, error) {
	return m.byAttempt[attemptID], nil
}

func (m *memAnswers) CountByUserQuestion(ctx context.Context, userID string, questionID int) (int, error) {
	return 0, nil
}

type memQuestions struct {
	questions map[int]exam.Question
}

func (m *memQuestions) UpsertByFingerprint(ctx context.Context, q exam.Question) (exam.Question, bool, error) {
	return q, false, nil
}

func (m *memQuestions) FindUnseen(ctx context.Context, userID string, subjectID, topicID int, levels []exam.Difficulty, source exam.Source, limit int) ([]exam.Question, error) {
	return nil, nil
}

func (m *memQuestions) CountAvailable(ctx context.Context, subjectID, topicID int, levels []exam.Difficulty) (int, error) {
	return 0, nil
}

func (m *memQuestions) ByIDs(ctx context.Context, ids []int) ([]exam.Question, error) {
	var out []exam.Question
	for _, id := range ids {
		if q, ok := m.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestions) Deactivate(ctx context.Context, id int) error { return nil }

type recordingRecorder struct {
	calls   int
	err     error
	attempt exam.Attempt
	records []exam.AnswerRecord
}

func (r *recordingRecorder) Record(ctx context.Context, attempt exam.Attempt, questions []exam.Question, records []exam.AnswerRecord) error {
	r.calls++
	r.attempt = attempt
	r.records = records
	return r.err
}

// mcq builds a four-option question whose second option is correct.
func mcq(id int, difficulty exam.Difficulty) exam.Question {
	q := exam.Question{
		ID:         id,
		Type:       exam.TypeMCQ,
		Text:       "question",
		Difficulty: difficulty,
		Source:     exam.SourcePYQ,
		Active:     true,
	}
	for i := 1; i <= 4; i++ {
		q.Options = append(q.Options, exam.Option{
			ID:      id*10 + i,
			Text:    "option",
			Correct: i == 2,
			Order:   i,
		})
	}
	return q
}

type engineFixture struct {
	engine   *Engine
	tests    *memTests
	attempts *memAttempts
	answers  *memAnswers
	recorder *recordingRecorder
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	questions := &memQuestions{questions: map[int]exam.Question{
		1: mcq(1, exam.Easy),
		2: mcq(2, exam.Medium),
		3: mcq(3, exam.Hard),
	}}
	tests := &memTests{tests: map[int]exam.Test{
		1: {
			ID:             1,
			PublicID:       "test-1",
			Type:           exam.TestMock,
			TotalQuestions: 3,
			TotalMarks:     3,
			QuestionIDs:    []int{1, 2, 3},
			CreatedBy:      "user-1",
		},
	}}
	attempts := &memAttempts{attempts: map[int]exam.Attempt{}}
	answers := &memAnswers{byAttempt: map[int][]exam.AnswerRecord{}}
	recorder := &recordingRecorder{}

	return &engineFixture{
		engine:   NewEngine(tests, attempts, answers, questions, recorder, DefaultThresholds(), nil),
		tests:    tests,
		attempts: attempts,
		answers:  answers,
		recorder: recorder,
	}
}

func TestStartAttemptCreatesThenResumes(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	first, created, err := f.engine.StartAttempt(ctx, 1, "user-1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if !created {
		t.Error("first StartAttempt should create an attempt")
	}
	if first.TotalMarks != 3 {
		t.Errorf("TotalMarks = %d, want 3", first.TotalMarks)
	}

	second, created, err := f.engine.StartAttempt(ctx, 1, "user-1")
	if err != nil {
		t.Fatalf("StartAttempt again: %v", err)
	}
	if created {
		t.Error("second StartAttempt should resume, not create")
	}
	if second.ID != first.ID {
		t.Errorf("resumed attempt ID = %d, want %d", second.ID, first.ID)
	}
}

func TestStartAttemptUnknownTest(t *testing.T) {
	f := newEngineFixture(t)

	_, _, err := f.engine.StartAttempt(context.Background(), 99, "user-1")
	if !exam.IsNotFound(err) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestSubmitGradesAndCompletes(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	attempt, _, err := f.engine.StartAttempt(ctx, 1, "user-1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	result, err := f.engine.Submit(ctx, attempt.ID, "user-1", []AnswerInput{
		{QuestionID: 1, SelectedOptionID: 12, TimeSpentSeconds: 20},              // correct, settled
		{QuestionID: 2, SelectedOptionID: 23, TimeSpentSeconds: 2, HoverCount: 4}, // wrong, instant
		// question 3 left unanswered
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if result.Attempt.Status != exam.AttemptCompleted {
		t.Errorf("Status = %q, want %q", result.Attempt.Status, exam.AttemptCompleted)
	}
	if result.Attempt.Score != 1 {
		t.Errorf("Score = %d, want 1", result.Attempt.Score)
	}
	if result.Attempt.CompletedAt.IsZero() {
		t.Error("CompletedAt not set")
	}
	if len(result.Questions) != 3 {
		t.Fatalf("got %d question results, want 3", len(result.Questions))
	}

	byQuestion := map[int]QuestionResult{}
	for _, r := range result.Questions {
		byQuestion[r.QuestionID] = r
	}
	if r := byQuestion[1]; !r.Correct || r.Classification != exam.Sure {
		t.Errorf("question 1: correct=%v classification=%q, want correct SURE", r.Correct, r.Classification)
	}
	if r := byQuestion[2]; r.Correct || r.Classification != exam.BlindGuess {
		t.Errorf("question 2: correct=%v classification=%q, want wrong BLIND_GUESS", r.Correct, r.Classification)
	}
	if r := byQuestion[3]; r.Answered || r.Classification != exam.Unknown {
		t.Errorf("question 3: answered=%v classification=%q, want unanswered UNKNOWN", r.Answered, r.Classification)
	}

	records, _ := f.answers.ListByAttempt(ctx, attempt.ID)
	if len(records) != 3 {
		t.Errorf("stored %d answer records, want one per snapshot question", len(records))
	}
}

func TestSubmitRejectsForeignAttempt(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	attempt, _, err := f.engine.StartAttempt(ctx, 1, "user-1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	_, err = f.engine.Submit(ctx, attempt.ID, "intruder", nil)
	if !exam.IsRuleViolation(err) {
		t.Errorf("err = %v, want rule violation", err)
	}
	if got, _ := f.attempts.ByID(ctx, attempt.ID); got.Status != exam.AttemptInProgress {
		t.Errorf("attempt status changed to %q", got.Status)
	}
}

func TestSubmitRequiresInProgress(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	attempt, _, err := f.engine.StartAttempt(ctx, 1, "user-1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	if _, err := f.engine.Submit(ctx, attempt.ID, "user-1", nil); err != nil {
		t.Fatalf("first Submit: %v", err)
	}

	_, err = f.engine.Submit(ctx, attempt.ID, "user-1", nil)
	if !exam.IsRuleViolation(err) {
		t.Errorf("second Submit err = %v, want rule violation", err)
	}
}

func TestSubmitMetricsFailureNotSurfaced(t *testing.T) {
	f := newEngineFixture(t)
	f.recorder.err = errors.New("metrics store down")
	ctx := context.Background()

	attempt, _, err := f.engine.StartAttempt(ctx, 1, "user-1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}

	result, err := f.engine.Submit(ctx, attempt.ID, "user-1", []AnswerInput{
		{QuestionID: 1, SelectedOptionID: 12, TimeSpentSeconds: 20},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Attempt.Status != exam.AttemptCompleted {
		t.Errorf("Status = %q, want %q", result.Attempt.Status, exam.AttemptCompleted)
	}
	if f.recorder.calls != 1 {
		t.Errorf("recorder calls = %d, want 1", f.recorder.calls)
	}
}

func TestAttemptResultRebuildsDetail(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	attempt, _, err := f.engine.StartAttempt(ctx, 1, "user-1")
	if err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	submitted, err := f.engine.Submit(ctx, attempt.ID, "user-1", []AnswerInput{
		{QuestionID: 1, SelectedOptionID: 12, TimeSpentSeconds: 20},
		{QuestionID: 2, SelectedOptionID: 23, TimeSpentSeconds: 30, SelectionChangeCount: 2},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	rebuilt, err := f.engine.AttemptResult(ctx, attempt.ID, "user-1")
	if err != nil {
		t.Fatalf("AttemptResult: %v", err)
	}
	if len(rebuilt.Questions) != len(submitted.Questions) {
		t.Fatalf("rebuilt %d questions, want %d", len(rebuilt.Questions), len(submitted.Questions))
	}
	for i, want := range submitted.Questions {
		got := rebuilt.Questions[i]
		if got.QuestionID != want.QuestionID || got.Correct != want.Correct ||
			got.SelectedOptionID != want.SelectedOptionID || got.Classification != want.Classification {
			t.Errorf("question %d: got %+v, want %+v", want.QuestionID, got, want)
		}
	}

	if _, err := f.engine.AttemptResult(ctx, attempt.ID, "intruder"); !exam.IsRuleViolation(err) {
		t.Errorf("foreign AttemptResult err = %v, want rule violation", err)
	}
}
