package sourcing

import (
	"context"
	"fmt"
	"testing"

	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/exam"
)

func buildPipeline(bank *fakeBank, gen *stubGenerator, fallback *stubGenerator, trig Triggerer) *Pipeline {
	answers := &fakeAnswers{bank: bank}
	if fallback == nil {
		return NewPipeline(bank, answers, fakeTaxonomy{}, fakeTopics{}, gen, nil, trig, nil)
	}
	return NewPipeline(bank, answers, fakeTaxonomy{}, fakeTopics{}, gen, fallback, trig, nil)
}

func TestSourceServesBankFirst(t *testing.T) {
	bank := newFakeBank()
	for i := 0; i < 5; i++ {
		bank.add(bankQuestion(1, 1, fmt.Sprintf("PYQ %d?", i), exam.Medium, exam.SourcePYQ))
	}
	gen := &stubGenerator{}

	p := buildPipeline(bank, gen, nil, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 5,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("got %d questions, want 5", len(got))
	}
	if gen.callCount() != 0 {
		t.Errorf("generator called %d times with a full bank, want 0", gen.callCount())
	}
	for _, q := range got {
		if q.Source != exam.SourcePYQ {
			t.Errorf("question %d sourced from %s, want PYQ", q.ID, q.Source)
		}
	}
}

func TestSourceWaterfallsToAIBank(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "The only PYQ?", exam.Medium, exam.SourcePYQ))
	bank.add(bankQuestion(1, 1, "AI bank one?", exam.Medium, exam.SourceAI))
	bank.add(bankQuestion(1, 1, "AI bank two?", exam.Hard, exam.SourceAI))
	gen := &stubGenerator{}

	p := buildPipeline(bank, gen, nil, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 3,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
	if gen.callCount() != 0 {
		t.Errorf("generator called with sufficient bank inventory")
	}
}

func TestSourceEscalatesDifficulty(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "Easy one?", exam.Easy, exam.SourcePYQ))
	bank.add(bankQuestion(1, 1, "Hard one?", exam.Hard, exam.SourcePYQ))
	gen := &stubGenerator{}

	p := buildPipeline(bank, gen, nil, nil)

	// HARD must never escalate down to EASY.
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Hard, Count: 2,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	for _, q := range got {
		if q.Difficulty == exam.Easy {
			t.Error("HARD request returned an EASY question")
		}
	}

	// EASY escalates across all levels.
	got, err = p.Source(context.Background(), Request{
		UserID: "user-2", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Easy, Count: 2,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("EASY escalation found %d questions, want 2", len(got))
	}
}

func TestSourceGeneratesShortfall(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "The only PYQ?", exam.Medium, exam.SourcePYQ))
	gen := &stubGenerator{drafts: []authoring.Draft{
		mcqDraft("Fresh question one?", exam.Medium),
		mcqDraft("Fresh question two?", exam.Hard),
	}}

	p := buildPipeline(bank, gen, nil, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 3,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
	if gen.callCount() != 1 {
		t.Fatalf("generator called %d times, want 1", gen.callCount())
	}

	// Generated questions enter the bank unverified with source AI.
	fresh := 0
	for _, q := range got {
		if q.Source == exam.SourceAI {
			fresh++
			if q.Verified {
				t.Error("generated question must start unverified")
			}
			if q.ID == 0 {
				t.Error("generated question must be persisted before being served")
			}
		}
	}
	if fresh != 2 {
		t.Errorf("got %d generated questions, want 2", fresh)
	}
}

func TestSourceTellsGeneratorWhatItAlreadyPicked(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "Who founded the Maurya dynasty?", exam.Medium, exam.SourcePYQ))
	bank.add(bankQuestion(1, 1, "Who succeeded Bindusara?", exam.Medium, exam.SourceAI))
	gen := &stubGenerator{drafts: []authoring.Draft{
		mcqDraft("Fresh question?", exam.Medium),
	}}

	p := buildPipeline(bank, gen, nil, nil)
	_, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 3,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if gen.callCount() != 1 {
		t.Fatalf("generator called %d times, want 1", gen.callCount())
	}

	avoid := gen.lastCall().AvoidTexts
	if len(avoid) != 2 {
		t.Fatalf("generator received %d avoid texts, want 2", len(avoid))
	}
	got := make(map[string]bool, len(avoid))
	for _, text := range avoid {
		got[text] = true
	}
	for _, want := range []string{"Who founded the Maurya dynasty?", "Who succeeded Bindusara?"} {
		if !got[want] {
			t.Errorf("avoid texts missing %q", want)
		}
	}
}

func TestSourcePersistsDraftQuestionType(t *testing.T) {
	bank := newFakeBank()
	tf := mcqDraft("The Rigveda is the oldest Veda?", exam.Easy)
	tf.Type = exam.TypeTrueFalse
	tf.Options = []authoring.DraftOption{
		{Text: "True", Correct: true},
		{Text: "False"},
	}
	gen := &stubGenerator{drafts: []authoring.Draft{tf}}

	p := buildPipeline(bank, gen, nil, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, Difficulty: exam.Easy, Count: 1,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d questions, want 1", len(got))
	}
	if got[0].Type != exam.TypeTrueFalse {
		t.Errorf("persisted type = %s, want TRUE_FALSE", got[0].Type)
	}
}

func TestSourceNeverReturnsDuplicateFingerprints(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "Who built the Taj Mahal?", exam.Medium, exam.SourcePYQ))
	// Generator returns a draft that normalizes to the same fingerprint.
	gen := &stubGenerator{drafts: []authoring.Draft{
		mcqDraft("Who  built the TAJ MAHAL?", exam.Medium),
		mcqDraft("A genuinely new question?", exam.Medium),
	}}

	p := buildPipeline(bank, gen, nil, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 5,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.Fingerprint] {
			t.Fatalf("duplicate fingerprint in result: %s", q.Fingerprint)
		}
		seen[q.Fingerprint] = true
	}
	if len(got) != 2 {
		t.Errorf("got %d questions, want 2 distinct", len(got))
	}
}

func TestSourceExcludesSeenQuestions(t *testing.T) {
	bank := newFakeBank()
	q1 := bank.add(bankQuestion(1, 1, "Seen before?", exam.Medium, exam.SourcePYQ))
	bank.add(bankQuestion(1, 1, "Never seen?", exam.Medium, exam.SourcePYQ))
	bank.markAnswered("user-1", q1.ID)
	gen := &stubGenerator{}

	p := buildPipeline(bank, gen, nil, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 5,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	for _, q := range got {
		if q.ID == q1.ID {
			t.Error("previously answered question was served again")
		}
	}
	if len(got) != 1 {
		t.Errorf("got %d questions, want 1", len(got))
	}
}

func TestSourceFallsBackWhenGeneratorFails(t *testing.T) {
	bank := newFakeBank()
	gen := &stubGenerator{err: errGeneratorDown}
	fallback := &stubGenerator{drafts: []authoring.Draft{
		mcqDraft("Fallback question?", exam.Medium),
	}}

	p := buildPipeline(bank, gen, fallback, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1,
		Difficulty: exam.Medium, Count: 2,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if fallback.callCount() != 1 {
		t.Fatalf("fallback called %d times, want 1", fallback.callCount())
	}
	if len(got) != 1 {
		t.Errorf("got %d questions from fallback, want 1", len(got))
	}
}

func TestSourceShortResultIsSuccess(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "The only question?", exam.Medium, exam.SourcePYQ))
	gen := &stubGenerator{err: errGeneratorDown}

	p := buildPipeline(bank, gen, nil, nil)
	got, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 10,
	})
	if err != nil {
		t.Fatalf("short result must not be an error, got %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d questions, want the 1 available", len(got))
	}
}

func TestSourceTriggersReplenisher(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "A question?", exam.Medium, exam.SourcePYQ))
	trig := &recordingTrigger{}

	p := buildPipeline(bank, &stubGenerator{}, nil, trig)
	_, err := p.Source(context.Background(), Request{
		UserID: "user-1", SubjectID: 1, TopicID: 1,
		Difficulty: exam.Medium, Count: 1,
	})
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	if len(trig.jobs) != 1 {
		t.Fatalf("got %d replenisher triggers, want 1", len(trig.jobs))
	}
	job := trig.jobs[0]
	if job.SubjectID != 1 || job.TopicID != 1 || job.Difficulty != exam.Medium {
		t.Errorf("unexpected trigger job: %+v", job)
	}
}

func TestSourceRejectsBadRequests(t *testing.T) {
	p := buildPipeline(newFakeBank(), &stubGenerator{}, nil, nil)

	if _, err := p.Source(context.Background(), Request{UserID: "u", SubjectID: 1, Difficulty: exam.Medium, Count: 0}); !exam.IsRuleViolation(err) {
		t.Errorf("zero count error = %v, want rule violation", err)
	}
	if _, err := p.Source(context.Background(), Request{UserID: "u", SubjectID: 1, Difficulty: "IMPOSSIBLE", Count: 5}); !exam.IsRuleViolation(err) {
		t.Errorf("bad difficulty error = %v, want rule violation", err)
	}
}
