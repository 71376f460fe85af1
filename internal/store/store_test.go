package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/examiz/internal/exam"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedQuestion(t *testing.T, s *Store, subjectID, topicID int, text string, diff exam.Difficulty, source exam.Source) exam.Question {
	t.Helper()
	q := exam.Question{
		Text:        text,
		Type:        exam.TypeMCQ,
		Difficulty:  diff,
		Source:      source,
		Verified:    true,
		Active:      true,
		Fingerprint: exam.Fingerprint("History", "Mughal Empire", text),
		SubjectID:   subjectID,
		TopicID:     topicID,
		Options: []exam.Option{
			{Text: "A", Correct: false, Order: 1},
			{Text: "B", Correct: true, Order: 2},
			{Text: "C", Correct: false, Order: 3},
			{Text: "D", Correct: false, Order: 4},
		},
	}
	stored, inserted, err := s.Questions().UpsertByFingerprint(context.Background(), q)
	if err != nil {
		t.Fatalf("seed question: %v", err)
	}
	if !inserted {
		t.Fatalf("seed question %q: expected insert", text)
	}
	return stored
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSubjectEnsureIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Subjects().Ensure(ctx, "History")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	second, err := s.Subjects().Ensure(ctx, "History")
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("ensure created a duplicate: ids %d and %d", first.ID, second.ID)
	}

	all, err := s.Subjects().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d subjects, want 1", len(all))
	}
}

func TestTopicScopedToSubject(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	history, _ := s.Subjects().Ensure(ctx, "History")
	polity, _ := s.Subjects().Ensure(ctx, "Polity")

	t1, err := s.Topics().Ensure(ctx, history.ID, "Sources")
	if err != nil {
		t.Fatalf("ensure topic: %v", err)
	}
	t2, err := s.Topics().Ensure(ctx, polity.ID, "Sources")
	if err != nil {
		t.Fatalf("ensure same name under other subject: %v", err)
	}
	if t1.ID == t2.ID {
		t.Error("topics with the same name under different subjects must be distinct")
	}

	topics, err := s.Topics().ListBySubject(ctx, history.ID)
	if err != nil {
		t.Fatalf("list topics: %v", err)
	}
	if len(topics) != 1 {
		t.Errorf("got %d topics under History, want 1", len(topics))
	}
}

func TestQuestionUpsertDedupesByFingerprint(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Ensure(ctx, "History")
	topic, _ := s.Topics().Ensure(ctx, subj.ID, "Mughal Empire")

	first := seedQuestion(t, s, subj.ID, topic.ID, "Who built the Taj Mahal?", exam.Medium, exam.SourcePYQ)

	dup := exam.Question{
		Text:        "Who  built the TAJ MAHAL?",
		Type:        exam.TypeMCQ,
		Difficulty:  exam.Medium,
		Source:      exam.SourceAI,
		Active:      true,
		Fingerprint: exam.Fingerprint("History", "Mughal Empire", "Who  built the TAJ MAHAL?"),
		SubjectID:   subj.ID,
		TopicID:     topic.ID,
	}
	stored, inserted, err := s.Questions().UpsertByFingerprint(ctx, dup)
	if err != nil {
		t.Fatalf("upsert duplicate: %v", err)
	}
	if inserted {
		t.Error("duplicate fingerprint must not insert")
	}
	if stored.ID != first.ID {
		t.Errorf("duplicate resolved to question %d, want %d", stored.ID, first.ID)
	}
	if len(stored.Options) != 4 {
		t.Errorf("existing question returned %d options, want 4", len(stored.Options))
	}
}

func TestFindUnseenExcludesAnswered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Ensure(ctx, "History")
	topic, _ := s.Topics().Ensure(ctx, subj.ID, "Mughal Empire")

	q1 := seedQuestion(t, s, subj.ID, topic.ID, "Question one?", exam.Medium, exam.SourcePYQ)
	q2 := seedQuestion(t, s, subj.ID, topic.ID, "Question two?", exam.Medium, exam.SourcePYQ)
	seedQuestion(t, s, subj.ID, topic.ID, "Hard question?", exam.Hard, exam.SourcePYQ)

	test, err := s.Tests().Create(ctx, exam.Test{
		SubjectID:        subj.ID,
		TopicID:          topic.ID,
		TargetDifficulty: exam.Medium,
		Type:             exam.TestMock,
		TotalQuestions:   2,
		TotalMarks:       4,
		DurationMinutes:  10,
		QuestionIDs:      []int{q1.ID, q2.ID},
		CreatedBy:        "user-1",
	})
	if err != nil {
		t.Fatalf("create test: %v", err)
	}
	att, _, err := s.Attempts().Start(ctx, test.ID, "user-1", 4)
	if err != nil {
		t.Fatalf("start attempt: %v", err)
	}
	err = s.Answers().SaveBatch(ctx, att.ID, "user-1", []exam.AnswerRecord{
		{QuestionID: q1.ID, SelectedOptionID: q1.Options[1].ID, Correct: true, Classification: exam.Sure},
	})
	if err != nil {
		t.Fatalf("save answers: %v", err)
	}

	// user-1 has seen q1, escalation of MEDIUM covers MEDIUM and HARD.
	levels := exam.Medium.Escalation()
	unseen, err := s.Questions().FindUnseen(ctx, "user-1", subj.ID, topic.ID, levels, exam.SourcePYQ, 10)
	if err != nil {
		t.Fatalf("find unseen: %v", err)
	}
	if len(unseen) != 2 {
		t.Fatalf("got %d unseen questions, want 2", len(unseen))
	}
	for _, q := range unseen {
		if q.ID == q1.ID {
			t.Error("answered question must not be returned as unseen")
		}
	}

	// A different user sees everything.
	unseen, err = s.Questions().FindUnseen(ctx, "user-2", subj.ID, topic.ID, levels, exam.SourcePYQ, 10)
	if err != nil {
		t.Fatalf("find unseen for other user: %v", err)
	}
	if len(unseen) != 3 {
		t.Errorf("got %d unseen questions for fresh user, want 3", len(unseen))
	}
}

func TestCountAvailableIgnoresInactive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Ensure(ctx, "History")
	topic, _ := s.Topics().Ensure(ctx, subj.ID, "Mughal Empire")

	q := seedQuestion(t, s, subj.ID, topic.ID, "Soon retired?", exam.Easy, exam.SourceAI)
	seedQuestion(t, s, subj.ID, topic.ID, "Stays active?", exam.Easy, exam.SourceAI)
	// Every sourcing tier counts toward availability.
	seedQuestion(t, s, subj.ID, topic.ID, "Asked in 2019?", exam.Easy, exam.SourcePYQ)

	if err := s.Questions().Deactivate(ctx, q.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	n, err := s.Questions().CountAvailable(ctx, subj.ID, topic.ID, []exam.Difficulty{exam.Easy})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("got %d available questions, want 2", n)
	}
}

func TestQuestionsByIDsPreservesOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Ensure(ctx, "History")
	topic, _ := s.Topics().Ensure(ctx, subj.ID, "Mughal Empire")

	q1 := seedQuestion(t, s, subj.ID, topic.ID, "First?", exam.Easy, exam.SourcePYQ)
	q2 := seedQuestion(t, s, subj.ID, topic.ID, "Second?", exam.Easy, exam.SourcePYQ)
	q3 := seedQuestion(t, s, subj.ID, topic.ID, "Third?", exam.Easy, exam.SourcePYQ)

	got, err := s.Questions().ByIDs(ctx, []int{q3.ID, q1.ID, q2.ID})
	if err != nil {
		t.Fatalf("by ids: %v", err)
	}
	want := []int{q3.ID, q1.ID, q2.ID}
	if len(got) != len(want) {
		t.Fatalf("got %d questions, want %d", len(got), len(want))
	}
	for i, q := range got {
		if q.ID != want[i] {
			t.Errorf("position %d: got question %d, want %d", i, q.ID, want[i])
		}
	}
}

func TestAttemptStartResumesInProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Ensure(ctx, "History")
	q := seedQuestion(t, s, subj.ID, 0, "Only question?", exam.Easy, exam.SourcePYQ)
	test, err := s.Tests().Create(ctx, exam.Test{
		SubjectID:        subj.ID,
		TargetDifficulty: exam.Easy,
		Type:             exam.TestPractice,
		TotalQuestions:   1,
		TotalMarks:       2,
		DurationMinutes:  5,
		QuestionIDs:      []int{q.ID},
		CreatedBy:        "user-1",
	})
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	first, created, err := s.Attempts().Start(ctx, test.ID, "user-1", 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if !created {
		t.Error("first start must create an attempt")
	}

	second, created, err := s.Attempts().Start(ctx, test.ID, "user-1", 2)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if created {
		t.Error("second start must resume, not create")
	}
	if second.ID != first.ID {
		t.Errorf("resumed attempt %d, want %d", second.ID, first.ID)
	}

	// After completion a new attempt may be opened.
	if _, err := s.Attempts().Complete(ctx, first.ID, 2, time.Now()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	third, created, err := s.Attempts().Start(ctx, test.ID, "user-1", 2)
	if err != nil {
		t.Fatalf("start after completion: %v", err)
	}
	if !created {
		t.Error("start after completion must create a fresh attempt")
	}
	if third.ID == first.ID {
		t.Error("fresh attempt reused the completed attempt id")
	}
}

func TestAttemptCompleteRequiresInProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Ensure(ctx, "History")
	q := seedQuestion(t, s, subj.ID, 0, "Only question?", exam.Easy, exam.SourcePYQ)
	test, _ := s.Tests().Create(ctx, exam.Test{
		SubjectID:        subj.ID,
		TargetDifficulty: exam.Easy,
		Type:             exam.TestPractice,
		TotalQuestions:   1,
		TotalMarks:       2,
		DurationMinutes:  5,
		QuestionIDs:      []int{q.ID},
		CreatedBy:        "user-1",
	})
	att, _, _ := s.Attempts().Start(ctx, test.ID, "user-1", 2)

	done, err := s.Attempts().Complete(ctx, att.ID, 2, time.Now())
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != exam.AttemptCompleted {
		t.Errorf("status = %s, want %s", done.Status, exam.AttemptCompleted)
	}
	if done.CompletedAt.IsZero() {
		t.Error("completed attempt must carry a completion time")
	}

	if _, err := s.Attempts().Complete(ctx, att.ID, 2, time.Now()); !exam.IsRuleViolation(err) {
		t.Errorf("double complete error = %v, want rule violation", err)
	}
}

func TestMetricsUpsertOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	subj, _ := s.Subjects().Ensure(ctx, "History")
	q := seedQuestion(t, s, subj.ID, 0, "Only question?", exam.Easy, exam.SourcePYQ)
	test, _ := s.Tests().Create(ctx, exam.Test{
		SubjectID:        subj.ID,
		TargetDifficulty: exam.Easy,
		Type:             exam.TestPractice,
		TotalQuestions:   1,
		TotalMarks:       2,
		DurationMinutes:  5,
		QuestionIDs:      []int{q.ID},
		CreatedBy:        "user-1",
	})
	att, _, _ := s.Attempts().Start(ctx, test.ID, "user-1", 2)

	first := exam.Metrics{
		Accuracy:           50,
		CognitiveBreakdown: map[string]float64{"q1_accuracy": 50},
		FatigueIndex:       exam.FatigueConsistent,
	}
	if err := s.Metrics().Upsert(ctx, att.ID, "user-1", first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	second := first
	second.Accuracy = 75
	second.FatigueIndex = exam.FatigueSlowingDown
	second.AccuracyDrop = 12
	if err := s.Metrics().Upsert(ctx, att.ID, "user-1", second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.Metrics().ByAttempt(ctx, att.ID)
	if err != nil {
		t.Fatalf("by attempt: %v", err)
	}
	if got.Accuracy != 75 {
		t.Errorf("accuracy = %v, want 75", got.Accuracy)
	}
	if got.FatigueIndex != exam.FatigueSlowingDown {
		t.Errorf("fatigue index = %q, want %q", got.FatigueIndex, exam.FatigueSlowingDown)
	}
	if got.AccuracyDrop != 12 {
		t.Errorf("accuracy drop = %d, want 12", got.AccuracyDrop)
	}
}

func TestEventAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.Events().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.0-flash",
		Purpose:      "question-gen",
		InputTokens:  900,
		OutputTokens: 400,
		LatencyMs:    1200,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.Events().RecentLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Provider != "gemini" || !events[0].Success {
		t.Errorf("unexpected event: %+v", events[0])
	}
}
