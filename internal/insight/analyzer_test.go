package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/behavior"
	"github.com/abhisek/examiz/internal/exam"
)

type fakeAttempts struct {
	attempts map[int]exam.Attempt
}

func (f *fakeAttempts) Start(ctx context.Context, testID int, userID string, totalMarks int) (exam.Attempt, bool, error) {
	return exam.Attempt{}, false, nil
}

func (f *fakeAttempts) ByID(ctx context.Context, id int) (exam.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt"}
	}
	return a, nil
}

func (f *fakeAttempts) ByPublicID(ctx context.Context, publicID string) (exam.Attempt, error) {
	return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt"}
}

func (f *fakeAttempts) Complete(ctx context.Context, id int, score int, completedAt time.Time) (exam.Attempt, error) {
	return exam.Attempt{}, nil
}

func (f *fakeAttempts) Abandon(ctx context.Context, id int) error { return nil }

func (f *fakeAttempts) ListByUser(ctx context.Context, userID string, limit int) ([]exam.Attempt, error) {
	return nil, nil
}

type fakeTests struct {
	tests map[int]exam.Test
}

func (f *fakeTests) Create(ctx context.Context, t exam.Test) (exam.Test, error) { return t, nil }

func (f *fakeTests) ByID(ctx context.Context, id int) (exam.Test, error) {
	t, ok := f.tests[id]
	if !ok {
		return exam.Test{}, &exam.NotFoundError{Resource: "test"}
	}
	return t, nil
}

func (f *fakeTests) ByPublicID(ctx context.Context, publicID string) (exam.Test, error) {
	return exam.Test{}, &exam.NotFoundError{Resource: "test"}
}

func (f *fakeTests) ListByCreator(ctx context.Context, userID string, limit int) ([]exam.Test, error) {
	return nil, nil
}

type fakeQuestions struct {
	questions map[int]exam.Question
}

func (f *fakeQuestions) UpsertByFingerprint(ctx context.Context, q exam.Question) (exam.Question, bool, error) {
	return q, false, nil
}

func (f *fakeQuestions) FindUnseen(ctx context.Context, userID string, subjectID, topicID int, levels []exam.Difficulty, source exam.Source, limit int) ([]exam.Question, error) {
	return nil, nil
}

func (f *fakeQuestions) CountAvailable(ctx context.Context, subjectID, topicID int, levels []exam.Difficulty) (int, error) {
	return 0, nil
}

func (f *fakeQuestions) ByIDs(ctx context.Context, ids []int) ([]exam.Question, error) {
	var out []exam.Question
	for _, id := range ids {
		if q, ok := f.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) Deactivate(ctx context.Context, id int) error { return nil }

type fakeAnswers struct {
	records []exam.AnswerRecord
}

func (f *fakeAnswers) SaveBatch(ctx context.Context, attemptID int, userID string, records []exam.AnswerRecord) error {
	return nil
}

func (f *fakeAnswers) ListByAttempt(ctx context.Context, attemptID int) ([]exam.AnswerRecord, error) {
	return f.records, nil
}

func (f *fakeAnswers) CountByUserQuestion(ctx context.Context, userID string, questionID int) (int, error) {
	return 0, nil
}

type fakeMetrics struct {
	stored map[int]exam.Metrics
}

func (f *fakeMetrics) Upsert(ctx context.Context, attemptID int, userID string, m exam.Metrics) error {
	f.stored[attemptID] = m
	return nil
}

func (f *fakeMetrics) ByAttempt(ctx context.Context, attemptID int) (exam.Metrics, error) {
	m, ok := f.stored[attemptID]
	if !ok {
		return exam.Metrics{}, &exam.NotFoundError{Resource: "metrics"}
	}
	return m, nil
}

func (f *fakeMetrics) ListByUser(ctx context.Context, userID string, limit int) ([]exam.Metrics, error) {
	return nil, nil
}

type fakeTopics struct {
	topics map[int]exam.Topic
}

func (f *fakeTopics) Ensure(ctx context.Context, subjectID int, name string) (exam.Topic, error) {
	return exam.Topic{}, nil
}

func (f *fakeTopics) ByID(ctx context.Context, id int) (exam.Topic, error) {
	t, ok := f.topics[id]
	if !ok {
		return exam.Topic{}, &exam.NotFoundError{Resource: "topic"}
	}
	return t, nil
}

func (f *fakeTopics) ListBySubject(ctx context.Context, subjectID int) ([]exam.Topic, error) {
	return nil, nil
}

type stubSynth struct {
	narrative *authoring.Narrative
	err       error
	lastDoc   string
	calls     int
}

func (s *stubSynth) Synthesize(ctx context.Context, contextDoc string) (*authoring.Narrative, error) {
	s.calls++
	s.lastDoc = contextDoc
	if s.err != nil {
		return nil, s.err
	}
	return s.narrative, nil
}

// mcq builds a four-option question whose second option is correct.
func mcq(id, topicID int, difficulty exam.Difficulty) exam.Question {
	q := exam.Question{ID: id, Text: "question", Difficulty: difficulty, TopicID: topicID, SubjectID: 1}
	for i := 1; i <= 4; i++ {
		q.Options = append(q.Options, exam.Option{ID: id*10 + i, Correct: i == 2, Order: i})
	}
	return q
}

type fixture struct {
	analyzer *Analyzer
	metrics  *fakeMetrics
	synth    *stubSynth
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	synth := &stubSynth{narrative: &authoring.Narrative{
		DiagnosticSummary: "summary",
		StudyNotes:        "# notes",
		MistakeCategorization: []authoring.MistakeCategory{
			{QuestionID: 2, Type: "CONCEPTUAL", Reason: "confused rulers"},
			{QuestionID: 3, Type: "CONCEPTUAL", Reason: "species mixup"},
		},
	}}
	metrics := &fakeMetrics{stored: map[int]exam.Metrics{
		10: {Accuracy: 50, AttemptRatio: 100, FatigueIndex: exam.FatigueConsistent},
	}}

	analyzer := NewAnalyzer(
		&fakeAttempts{attempts: map[int]exam.Attempt{
			10: {ID: 10, PublicID: "att-10", TestID: 1, UserID: "user-1", Status: exam.AttemptCompleted, Score: 2, TotalMarks: 4},
		}},
		&fakeTests{tests: map[int]exam.Test{
			1: {ID: 1, SubjectID: 1, QuestionIDs: []int{1, 2, 3, 4}},
		}},
		&fakeQuestions{questions: map[int]exam.Question{
			1: mcq(1, 7, exam.Easy),
			2: mcq(2, 7, exam.Medium),
			3: mcq(3, 8, exam.Hard),
			4: mcq(4, 0, exam.Medium),
		}},
		&fakeAnswers{records: []exam.AnswerRecord{
			{QuestionID: 1, SelectedOptionID: 12, TimeSpentSeconds: 10, Correct: true},
			{QuestionID: 2, SelectedOptionID: 21, TimeSpentSeconds: 20},
			{QuestionID: 3, SelectedOptionID: 31, TimeSpentSeconds: 30},
			{QuestionID: 4, SelectedOptionID: 42, TimeSpentSeconds: 5, Correct: true},
		}},
		metrics,
		&fakeTopics{topics: map[int]exam.Topic{
			7: {ID: 7, SubjectID: 1, Name: "Mughal Empire"},
			8: {ID: 8, SubjectID: 1, Name: "Fauna"},
		}},
		synth,
		behavior.NewCalculator(behavior.DefaultConfig()),
		DefaultConfig(),
		nil,
	)
	return &fixture{analyzer: analyzer, metrics: metrics, synth: synth}
}

func TestAnalyzeBuildsTopicBreakdown(t *testing.T) {
	f := newFixture(t)

	analysis, err := f.analyzer.Analyze(context.Background(), 10, "user-1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(analysis.Topics) != 3 {
		t.Fatalf("got %d topic rows, want 3", len(analysis.Topics))
	}
	// Sorted weakest first.
	byName := map[string]TopicPerformance{}
	for _, tp := range analysis.Topics {
		byName[tp.TopicName] = tp
	}
	if tp := byName["Fauna"]; tp.Accuracy != 0 || tp.Status != StatusWeak {
		t.Errorf("Fauna = %+v, want 0%% WEAK", tp)
	}
	if tp := byName["Mughal Empire"]; tp.Accuracy != 50 || tp.Status != StatusNeedPractice {
		t.Errorf("Mughal Empire = %+v, want 50%% NEED_PRACTICE", tp)
	}
	if tp := byName["General"]; tp.Accuracy != 100 || tp.Status != StatusMastered {
		t.Errorf("General = %+v, want 100%% MASTERED", tp)
	}
	if analysis.Topics[0].TopicName != "Fauna" {
		t.Errorf("weakest topic first, got %q", analysis.Topics[0].TopicName)
	}
	if tp := byName["Mughal Empire"]; tp.AvgTimeSeconds != 15 {
		t.Errorf("Mughal Empire avg time = %v, want 15", tp.AvgTimeSeconds)
	}
}

func TestAnalyzeNarrativeAndTally(t *testing.T) {
	f := newFixture(t)

	analysis, err := f.analyzer.Analyze(context.Background(), 10, "user-1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.Narrative.DiagnosticSummary != "summary" {
		t.Errorf("DiagnosticSummary = %q", analysis.Narrative.DiagnosticSummary)
	}
	if analysis.MistakeTally["CONCEPTUAL"] != 2 {
		t.Errorf("MistakeTally = %v, want CONCEPTUAL:2", analysis.MistakeTally)
	}
}

func TestAnalyzeContextDocument(t *testing.T) {
	f := newFixture(t)

	if _, err := f.analyzer.Analyze(context.Background(), 10, "user-1"); err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	doc := f.synth.lastDoc
	for _, want := range []string{
		"accuracy: 50.00%",
		"fatigue_index: CONSISTENT",
		"WEAK TOPICS:",
		"Fauna (0.00%)",
		"SAMPLE INCORRECT QUESTIONS:",
		"[MEDIUM]",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("context document missing %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "Mughal Empire (") {
		t.Errorf("50%% topic listed as weak:\n%s", doc)
	}
}

func TestAnalyzeSynthesisFailureDegrades(t *testing.T) {
	f := newFixture(t)
	f.synth.err = errors.New("provider down")

	analysis, err := f.analyzer.Analyze(context.Background(), 10, "user-1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Narrative.DiagnosticSummary != PlaceholderSummary {
		t.Errorf("DiagnosticSummary = %q, want placeholder", analysis.Narrative.DiagnosticSummary)
	}
	if analysis.Metrics.Accuracy != 50 {
		t.Errorf("metrics lost on degraded narrative: %+v", analysis.Metrics)
	}
}

func TestAnalyzeRecomputesMissingMetrics(t *testing.T) {
	f := newFixture(t)
	delete(f.metrics.stored, 10)

	analysis, err := f.analyzer.Analyze(context.Background(), 10, "user-1")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.Metrics.Accuracy != 50 {
		t.Errorf("recomputed Accuracy = %v, want 50", analysis.Metrics.Accuracy)
	}
	if analysis.Metrics.AttemptRatio != 100 {
		t.Errorf("recomputed AttemptRatio = %v, want 100", analysis.Metrics.AttemptRatio)
	}
}

func TestAnalyzeGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.analyzer.Analyze(ctx, 10, "intruder"); !exam.IsRuleViolation(err) {
		t.Errorf("foreign user err = %v, want rule violation", err)
	}
	if _, err := f.analyzer.Analyze(ctx, 99, "user-1"); !exam.IsNotFound(err) {
		t.Errorf("missing attempt err = %v, want not found", err)
	}
}
