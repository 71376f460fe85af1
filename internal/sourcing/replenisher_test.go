package sourcing

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/exam"
)

func TestRefillSkipsFullInventory(t *testing.T) {
	bank := newFakeBank()
	for i := 0; i < 5; i++ {
		bank.add(bankQuestion(1, 1, fmt.Sprintf("AI stock %d?", i), exam.Medium, exam.SourceAI))
	}
	gen := &stubGenerator{}

	r := &Replenisher{
		questions: bank,
		subjects:  fakeTaxonomy{},
		topics:    fakeTopics{},
		generator: gen,
		config:    ReplenisherConfig{Threshold: 3, BatchCap: 20},
		log:       zap.NewNop(),
	}

	err := r.refill(context.Background(), RefillJob{SubjectID: 1, TopicID: 1, Difficulty: exam.Medium})
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	if gen.callCount() != 0 {
		t.Errorf("generator called with full inventory")
	}
}

func TestRefillCountsEveryTier(t *testing.T) {
	// A scope fully stocked with PYQ questions needs no generation even
	// when the AI bank for it is empty.
	bank := newFakeBank()
	for i := 0; i < 5; i++ {
		bank.add(bankQuestion(1, 1, fmt.Sprintf("PYQ stock %d?", i), exam.Medium, exam.SourcePYQ))
	}
	gen := &stubGenerator{}

	r := &Replenisher{
		questions: bank,
		subjects:  fakeTaxonomy{},
		topics:    fakeTopics{},
		generator: gen,
		config:    ReplenisherConfig{Threshold: 3, BatchCap: 20},
		log:       zap.NewNop(),
	}

	err := r.refill(context.Background(), RefillJob{SubjectID: 1, TopicID: 1, Difficulty: exam.Medium})
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	if gen.callCount() != 0 {
		t.Errorf("generator called %d times with a fully stocked scope, want 0", gen.callCount())
	}
}

func TestRefillGeneratesDeficit(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "Existing stock?", exam.Medium, exam.SourceAI))
	gen := &stubGenerator{drafts: []authoring.Draft{
		mcqDraft("Refill one?", exam.Medium),
		mcqDraft("Refill two?", exam.Medium),
	}}

	r := &Replenisher{
		questions: bank,
		subjects:  fakeTaxonomy{},
		topics:    fakeTopics{},
		generator: gen,
		config:    ReplenisherConfig{Threshold: 3, BatchCap: 20},
		log:       zap.NewNop(),
	}

	err := r.refill(context.Background(), RefillJob{SubjectID: 1, TopicID: 1, Difficulty: exam.Medium})
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	if gen.callCount() != 1 {
		t.Fatalf("generator called %d times, want 1", gen.callCount())
	}
	if got := gen.calls[0].Count; got != 2 {
		t.Errorf("requested %d drafts, want deficit 2", got)
	}

	n, _ := bank.CountAvailable(context.Background(), 1, 1, exam.Medium.Escalation())
	if n != 3 {
		t.Errorf("inventory after refill = %d, want 3", n)
	}
}

func TestRefillTellsGeneratorAboutExistingStock(t *testing.T) {
	bank := newFakeBank()
	bank.add(bankQuestion(1, 1, "Existing stock?", exam.Medium, exam.SourceAI))
	gen := &stubGenerator{drafts: []authoring.Draft{
		mcqDraft("Refill one?", exam.Medium),
	}}

	r := &Replenisher{
		questions: bank,
		subjects:  fakeTaxonomy{},
		topics:    fakeTopics{},
		generator: gen,
		config:    ReplenisherConfig{Threshold: 3, BatchCap: 20},
		log:       zap.NewNop(),
	}

	if err := r.refill(context.Background(), RefillJob{SubjectID: 1, TopicID: 1, Difficulty: exam.Medium}); err != nil {
		t.Fatalf("refill: %v", err)
	}
	avoid := gen.lastCall().AvoidTexts
	if len(avoid) != 1 || avoid[0] != "Existing stock?" {
		t.Errorf("avoid texts = %v, want the existing bank question", avoid)
	}
}

func TestRefillCapsAtBatchCap(t *testing.T) {
	bank := newFakeBank()
	gen := &stubGenerator{}

	r := &Replenisher{
		questions: bank,
		subjects:  fakeTaxonomy{},
		topics:    fakeTopics{},
		generator: gen,
		config:    ReplenisherConfig{Threshold: 30, BatchCap: 20},
		log:       zap.NewNop(),
	}

	if err := r.refill(context.Background(), RefillJob{SubjectID: 1, Difficulty: exam.Easy}); err != nil {
		t.Fatalf("refill: %v", err)
	}
	if got := gen.calls[0].Count; got != 20 {
		t.Errorf("requested %d drafts, want batch cap 20", got)
	}
}

func TestTriggerDropsWhenQueueFull(t *testing.T) {
	// A replenisher that never started its worker: the queue fills and
	// further triggers must not block.
	r := &Replenisher{
		config: ReplenisherConfig{QueueSize: 1},
		jobs:   make(chan RefillJob, 1),
		log:    zap.NewNop(),
	}

	r.Trigger(RefillJob{SubjectID: 1})
	r.Trigger(RefillJob{SubjectID: 2}) // must not block
	if len(r.jobs) != 1 {
		t.Errorf("queue length = %d, want 1", len(r.jobs))
	}
}

func TestReplenisherWorkerDrainsJobs(t *testing.T) {
	bank := newFakeBank()
	gen := &stubGenerator{drafts: []authoring.Draft{
		mcqDraft("Worker refill?", exam.Easy),
	}}

	r := NewReplenisher(bank, fakeTaxonomy{}, fakeTopics{}, gen,
		ReplenisherConfig{Threshold: 1, BatchCap: 5, QueueSize: 4}, nil)
	r.Trigger(RefillJob{SubjectID: 1, Difficulty: exam.Easy})
	r.Close() // waits for the worker to drain

	if gen.callCount() != 1 {
		t.Errorf("generator called %d times, want 1", gen.callCount())
	}
	n, _ := bank.CountAvailable(context.Background(), 1, 0, exam.Easy.Escalation())
	if n != 1 {
		t.Errorf("inventory after worker refill = %d, want 1", n)
	}
}
