package assembly

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/sourcing"
)

// stubSourcer returns canned questions.
type stubSourcer struct {
	questions []exam.Question
	err       error
	calls     []sourcing.Request
}

func (s *stubSourcer) Source(_ context.Context, req sourcing.Request) ([]exam.Question, error) {
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	n := len(s.questions)
	if req.Count > 0 && n > req.Count {
		n = req.Count
	}
	return s.questions[:n], nil
}

// memTests is an in-memory TestRepo.
type memTests struct {
	nextID int
	tests  map[int]exam.Test
}

func newMemTests() *memTests { return &memTests{tests: make(map[int]exam.Test)} }

func (m *memTests) Create(_ context.Context, t exam.Test) (exam.Test, error) {
	m.nextID++
	t.ID = m.nextID
	t.PublicID = fmt.Sprintf("test-%d", m.nextID)
	t.CreatedAt = time.Now()
	m.tests[t.ID] = t
	return t, nil
}

func (m *memTests) ByID(_ context.Context, id int) (exam.Test, error) {
	t, ok := m.tests[id]
	if !ok {
		return exam.Test{}, &exam.NotFoundError{Resource: "test", ID: fmt.Sprint(id)}
	}
	return t, nil
}

func (m *memTests) ByPublicID(_ context.Context, publicID string) (exam.Test, error) {
	for _, t := range m.tests {
		if t.PublicID == publicID {
			return t, nil
		}
	}
	return exam.Test{}, &exam.NotFoundError{Resource: "test", ID: publicID}
}

func (m *memTests) ListByCreator(_ context.Context, userID string, _ int) ([]exam.Test, error) {
	var out []exam.Test
	for _, t := range m.tests {
		if t.CreatedBy == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// memAttempts is an in-memory AttemptRepo serving fixed attempts.
type memAttempts struct {
	attempts map[int]exam.Attempt
}

func (m *memAttempts) Start(_ context.Context, testID int, userID string, totalMarks int) (exam.Attempt, bool, error) {
	return exam.Attempt{}, false, fmt.Errorf("not used")
}

func (m *memAttempts) ByID(_ context.Context, id int) (exam.Attempt, error) {
	a, ok := m.attempts[id]
	if !ok {
		return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt", ID: fmt.Sprint(id)}
	}
	return a, nil
}

func (m *memAttempts) ByPublicID(_ context.Context, publicID string) (exam.Attempt, error) {
	return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt", ID: publicID}
}

func (m *memAttempts) Complete(_ context.Context, id int, score int, completedAt time.Time) (exam.Attempt, error) {
	return exam.Attempt{}, fmt.Errorf("not used")
}

func (m *memAttempts) Abandon(context.Context, int) error { return fmt.Errorf("not used") }

func (m *memAttempts) ListByUser(context.Context, string, int) ([]exam.Attempt, error) {
	return nil, nil
}

// memAnswers serves canned answer records per attempt.
type memAnswers struct {
	byAttempt map[int][]exam.AnswerRecord
}

func (m *memAnswers) SaveBatch(context.Context, int, string, []exam.AnswerRecord) error {
	return fmt.Errorf("not used")
}

func (m *memAnswers) ListByAttempt(_ context.Context, attemptID int) ([]exam.AnswerRecord, error) {
	return m.byAttempt[attemptID], nil
}

func (m *memAnswers) CountByUserQuestion(context.Context, string, int) (int, error) {
	return 0, nil
}

// memQuestions is a minimal in-memory QuestionRepo.
type memQuestions struct {
	questions []exam.Question
}

func (m *memQuestions) UpsertByFingerprint(_ context.Context, q exam.Question) (exam.Question, bool, error) {
	return q, true, nil
}

func (m *memQuestions) FindUnseen(_ context.Context, _ string, subjectID, topicID int, levels []exam.Difficulty, source exam.Source, limit int) ([]exam.Question, error) {
	var out []exam.Question
	for _, q := range m.questions {
		if len(out) >= limit {
			break
		}
		if q.SubjectID != subjectID || q.Source != source || !q.Active {
			continue
		}
		if topicID != 0 && q.TopicID != topicID {
			continue
		}
		match := false
		for _, l := range levels {
			if q.Difficulty == l {
				match = true
			}
		}
		if match {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestions) CountAvailable(context.Context, int, int, []exam.Difficulty) (int, error) {
	return len(m.questions), nil
}

func (m *memQuestions) ByIDs(_ context.Context, ids []int) ([]exam.Question, error) {
	byID := make(map[int]exam.Question)
	for _, q := range m.questions {
		byID[q.ID] = q
	}
	var out []exam.Question
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestions) Deactivate(context.Context, int) error { return nil }

func question(id, subjectID, topicID int, diff exam.Difficulty, source exam.Source) exam.Question {
	return exam.Question{
		ID:          id,
		Text:        fmt.Sprintf("Question %d?", id),
		Type:        exam.TypeMCQ,
		Difficulty:  diff,
		Source:      source,
		Active:      true,
		Fingerprint: fmt.Sprintf("fp-%d", id),
		SubjectID:   subjectID,
		TopicID:     topicID,
	}
}

func TestAssemblePersistsSnapshot(t *testing.T) {
	sourcer := &stubSourcer{questions: []exam.Question{
		question(1, 1, 1, exam.Medium, exam.SourcePYQ),
		question(2, 1, 1, exam.Medium, exam.SourcePYQ),
		question(3, 1, 1, exam.Hard, exam.SourceAI),
	}}
	tests := newMemTests()
	a := New(sourcer, tests, &memAttempts{}, &memAnswers{}, &memQuestions{}, DefaultConfig(), nil)

	got, err := a.Assemble(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 3,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if got.Type != exam.TestMock {
		t.Errorf("type = %s, want MOCK default", got.Type)
	}
	if got.TotalQuestions != 3 || got.TotalMarks != 3 {
		t.Errorf("questions/marks = %d/%d, want 3/3", got.TotalQuestions, got.TotalMarks)
	}
	if got.DurationMinutes != 60 {
		t.Errorf("duration = %d, want 60", got.DurationMinutes)
	}
	if len(got.QuestionIDs) != 3 {
		t.Errorf("snapshot has %d ids, want 3", len(got.QuestionIDs))
	}
	if got.PublicID == "" {
		t.Error("persisted test must carry a public id")
	}
}

func TestAssembleShortBankStillPersists(t *testing.T) {
	sourcer := &stubSourcer{questions: []exam.Question{
		question(1, 1, 0, exam.Easy, exam.SourcePYQ),
	}}
	a := New(sourcer, newMemTests(), &memAttempts{}, &memAnswers{}, &memQuestions{}, DefaultConfig(), nil)

	got, err := a.Assemble(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, Difficulty: exam.Easy, Count: 10,
	})
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if got.TotalQuestions != 1 {
		t.Errorf("total questions = %d, want the 1 available", got.TotalQuestions)
	}
}

func TestAssembleEmptyIsRuleViolation(t *testing.T) {
	a := New(&stubSourcer{}, newMemTests(), &memAttempts{}, &memAnswers{}, &memQuestions{}, DefaultConfig(), nil)

	_, err := a.Assemble(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, Difficulty: exam.Easy, Count: 5,
	})
	if !exam.IsRuleViolation(err) {
		t.Errorf("error = %v, want rule violation", err)
	}
}

func remedialFixture() (*memTests, *memAttempts, *memAnswers, *memQuestions) {
	tests := newMemTests()
	tests.tests[1] = exam.Test{
		ID: 1, PublicID: "test-1", SubjectID: 1,
		TargetDifficulty: exam.Medium, Type: exam.TestMock,
		TotalQuestions: 4, TotalMarks: 4, QuestionIDs: []int{1, 2, 3, 4},
		CreatedBy: "user-1",
	}
	tests.nextID = 1

	attempts := &memAttempts{attempts: map[int]exam.Attempt{
		10: {ID: 10, PublicID: "att-10", TestID: 1, UserID: "user-1",
			Status: exam.AttemptCompleted, Score: 2, TotalMarks: 4},
	}}

	answers := &memAnswers{byAttempt: map[int][]exam.AnswerRecord{
		10: {
			{QuestionID: 1, SelectedOptionID: 1, Correct: true},
			{QuestionID: 2, SelectedOptionID: 5, Correct: false},
			{QuestionID: 3, SelectedOptionID: 9, Correct: false},
			{QuestionID: 4, SelectedOptionID: 13, Correct: true},
		},
	}}

	bank := &memQuestions{questions: []exam.Question{
		// Original test questions: wrong answers on topics 7 and 8.
		question(1, 1, 7, exam.Medium, exam.SourcePYQ),
		question(2, 1, 7, exam.Medium, exam.SourcePYQ),
		question(3, 1, 8, exam.Medium, exam.SourcePYQ),
		question(4, 1, 8, exam.Medium, exam.SourcePYQ),
		// Unseen remedial candidates.
		question(21, 1, 7, exam.Medium, exam.SourcePYQ),
		question(22, 1, 7, exam.Hard, exam.SourceAI),
		question(23, 1, 8, exam.Medium, exam.SourcePYQ),
		question(24, 1, 8, exam.Medium, exam.SourceAI),
		// Different topic, must not appear.
		question(30, 1, 9, exam.Medium, exam.SourcePYQ),
	}}
	return tests, attempts, answers, bank
}

func TestAssembleRemedialTargetsWeakTopics(t *testing.T) {
	tests, attempts, answers, bank := remedialFixture()
	a := New(&stubSourcer{}, tests, attempts, answers, bank, DefaultConfig(), nil)

	got, err := a.AssembleRemedial(context.Background(), 10, "user-1")
	if err != nil {
		t.Fatalf("assemble remedial: %v", err)
	}

	if got.Type != exam.TestAIGenerated {
		t.Errorf("type = %s, want AI_GENERATED", got.Type)
	}
	if got.DurationMinutes != 15 {
		t.Errorf("duration = %d, want 15", got.DurationMinutes)
	}
	if len(got.QuestionIDs) == 0 || len(got.QuestionIDs) > 10 {
		t.Fatalf("remedial size = %d, want 1..10", len(got.QuestionIDs))
	}
	weak := map[int]bool{7: true, 8: true}
	picked, _ := bank.ByIDs(context.Background(), got.QuestionIDs)
	for _, q := range picked {
		if !weak[q.TopicID] {
			t.Errorf("question %d from topic %d, want weak topics only", q.ID, q.TopicID)
		}
	}
}

func TestAssembleRemedialOwnershipAndStatus(t *testing.T) {
	tests, attempts, answers, bank := remedialFixture()
	a := New(&stubSourcer{}, tests, attempts, answers, bank, DefaultConfig(), nil)

	if _, err := a.AssembleRemedial(context.Background(), 10, "intruder"); !exam.IsRuleViolation(err) {
		t.Errorf("foreign attempt error = %v, want rule violation", err)
	}

	attempts.attempts[11] = exam.Attempt{
		ID: 11, TestID: 1, UserID: "user-1", Status: exam.AttemptInProgress,
	}
	if _, err := a.AssembleRemedial(context.Background(), 11, "user-1"); !exam.IsRuleViolation(err) {
		t.Errorf("in-progress attempt error = %v, want rule violation", err)
	}
}

func TestAssembleRemedialPerfectScore(t *testing.T) {
	tests, attempts, _, bank := remedialFixture()
	answers := &memAnswers{byAttempt: map[int][]exam.AnswerRecord{
		10: {
			{QuestionID: 1, SelectedOptionID: 1, Correct: true},
			{QuestionID: 2, SelectedOptionID: 5, Correct: true},
		},
	}}
	a := New(&stubSourcer{}, tests, attempts, answers, bank, DefaultConfig(), nil)

	if _, err := a.AssembleRemedial(context.Background(), 10, "user-1"); !exam.IsRuleViolation(err) {
		t.Errorf("perfect score error = %v, want rule violation", err)
	}
}

func TestAssembleRemedialUntaggedFallsBackToSubject(t *testing.T) {
	tests, attempts, answers, _ := remedialFixture()
	// Wrong answers exist but their questions carry no topic tag.
	bank := &memQuestions{questions: []exam.Question{
		question(2, 1, 0, exam.Medium, exam.SourcePYQ),
		question(3, 1, 0, exam.Medium, exam.SourcePYQ),
	}}
	sourcer := &stubSourcer{questions: []exam.Question{
		question(41, 1, 0, exam.Medium, exam.SourcePYQ),
	}}
	a := New(sourcer, tests, attempts, answers, bank, DefaultConfig(), nil)

	got, err := a.AssembleRemedial(context.Background(), 10, "user-1")
	if err != nil {
		t.Fatalf("assemble remedial: %v", err)
	}
	if len(sourcer.calls) != 1 {
		t.Fatalf("sourcer called %d times, want 1 subject-level call", len(sourcer.calls))
	}
	if sourcer.calls[0].TopicID != 0 {
		t.Errorf("fallback sourced topic %d, want subject-wide", sourcer.calls[0].TopicID)
	}
	if sourcer.calls[0].Count != 10 {
		t.Errorf("fallback count = %d, want 10", sourcer.calls[0].Count)
	}
	if got.Type != exam.TestAIGenerated {
		t.Errorf("type = %s, want AI_GENERATED", got.Type)
	}
	if got.DurationMinutes != 15 {
		t.Errorf("duration = %d, want remedial 15", got.DurationMinutes)
	}
}
