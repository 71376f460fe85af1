package sourcing

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/exam"
)

// fakeBank is an in-memory QuestionRepo.
type fakeBank struct {
	mu        sync.Mutex
	nextID    int
	questions []exam.Question
	answered  map[string]map[int]bool // userID -> questionID
}

func newFakeBank() *fakeBank {
	return &fakeBank{answered: make(map[string]map[int]bool)}
}

func (b *fakeBank) add(q exam.Question) exam.Question {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	q.ID = b.nextID
	b.questions = append(b.questions, q)
	return q
}

func (b *fakeBank) markAnswered(userID string, questionID int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.answered[userID] == nil {
		b.answered[userID] = make(map[int]bool)
	}
	b.answered[userID][questionID] = true
}

func (b *fakeBank) UpsertByFingerprint(_ context.Context, q exam.Question) (exam.Question, bool, error) {
	b.mu.Lock()
	for _, existing := range b.questions {
		if existing.Fingerprint == q.Fingerprint {
			b.mu.Unlock()
			return existing, false, nil
		}
	}
	b.mu.Unlock()
	return b.add(q), true, nil
}

func (b *fakeBank) FindUnseen(_ context.Context, userID string, subjectID, topicID int, levels []exam.Difficulty, source exam.Source, limit int) ([]exam.Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []exam.Question
	for _, q := range b.questions {
		if len(out) >= limit {
			break
		}
		if !b.inScope(q, subjectID, topicID, levels) || q.Source != source || b.answered[userID][q.ID] {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (b *fakeBank) CountAvailable(_ context.Context, subjectID, topicID int, levels []exam.Difficulty) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, q := range b.questions {
		if b.inScope(q, subjectID, topicID, levels) {
			n++
		}
	}
	return n, nil
}

func (b *fakeBank) inScope(q exam.Question, subjectID, topicID int, levels []exam.Difficulty) bool {
	if !q.Active || q.SubjectID != subjectID {
		return false
	}
	if topicID != 0 && q.TopicID != topicID {
		return false
	}
	for _, l := range levels {
		if q.Difficulty == l {
			return true
		}
	}
	return len(levels) == 0
}

func (b *fakeBank) ByIDs(_ context.Context, ids []int) ([]exam.Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	byID := make(map[int]exam.Question)
	for _, q := range b.questions {
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

func (b *fakeBank) Deactivate(_ context.Context, id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.questions {
		if b.questions[i].ID == id {
			b.questions[i].Active = false
			return nil
		}
	}
	return &exam.NotFoundError{Resource: "question", ID: "?"}
}

// fakeAnswers implements the seen-question checks of AnswerRepo against
// the bank's answered map.
type fakeAnswers struct {
	bank *fakeBank
}

func (a *fakeAnswers) SaveBatch(_ context.Context, _ int, userID string, records []exam.AnswerRecord) error {
	for _, rec := range records {
		a.bank.markAnswered(userID, rec.QuestionID)
	}
	return nil
}

func (a *fakeAnswers) ListByAttempt(context.Context, int) ([]exam.AnswerRecord, error) {
	return nil, nil
}

func (a *fakeAnswers) CountByUserQuestion(_ context.Context, userID string, questionID int) (int, error) {
	a.bank.mu.Lock()
	defer a.bank.mu.Unlock()
	if a.bank.answered[userID][questionID] {
		return 1, nil
	}
	return 0, nil
}

// fakeTaxonomy serves fixed subject and topic names.
type fakeTaxonomy struct{}

func (fakeTaxonomy) Ensure(_ context.Context, name string) (exam.Subject, error) {
	return exam.Subject{ID: 1, Name: name}, nil
}

func (fakeTaxonomy) ByID(_ context.Context, id int) (exam.Subject, error) {
	return exam.Subject{ID: id, Name: "History"}, nil
}

func (fakeTaxonomy) ByName(_ context.Context, name string) (exam.Subject, error) {
	return exam.Subject{ID: 1, Name: name}, nil
}

func (fakeTaxonomy) List(context.Context) ([]exam.Subject, error) {
	return []exam.Subject{{ID: 1, Name: "History"}}, nil
}

type fakeTopics struct{}

func (fakeTopics) Ensure(_ context.Context, subjectID int, name string) (exam.Topic, error) {
	return exam.Topic{ID: 1, SubjectID: subjectID, Name: name}, nil
}

func (fakeTopics) ByID(_ context.Context, id int) (exam.Topic, error) {
	return exam.Topic{ID: id, SubjectID: 1, Name: "Mughal Empire"}, nil
}

func (fakeTopics) ListBySubject(_ context.Context, subjectID int) ([]exam.Topic, error) {
	return []exam.Topic{{ID: 1, SubjectID: subjectID, Name: "Mughal Empire"}}, nil
}

// stubGenerator returns canned drafts or a fixed error.
type stubGenerator struct {
	mu     sync.Mutex
	drafts []authoring.Draft
	err    error
	calls  []authoring.GenerateRequest
}

func (g *stubGenerator) Generate(_ context.Context, req authoring.GenerateRequest) ([]authoring.Draft, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	n := len(g.drafts)
	if req.Count > 0 && n > req.Count {
		n = req.Count
	}
	return g.drafts[:n], nil
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *stubGenerator) lastCall() authoring.GenerateRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[len(g.calls)-1]
}

// recordingTrigger captures replenisher triggers.
type recordingTrigger struct {
	mu   sync.Mutex
	jobs []RefillJob
}

func (r *recordingTrigger) Trigger(job RefillJob) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, job)
}

var errGeneratorDown = errors.New("generator down")

func mcqDraft(text string, diff exam.Difficulty) authoring.Draft {
	return authoring.Draft{
		Text:       text,
		Type:       exam.TypeMCQ,
		Difficulty: diff,
		Options: []authoring.DraftOption{
			{Text: "A", Correct: true},
			{Text: "B"},
			{Text: "C"},
			{Text: "D"},
		},
		Explanation: "Because A.",
	}
}

func bankQuestion(subjectID, topicID int, text string, diff exam.Difficulty, source exam.Source) exam.Question {
	return exam.Question{
		Text:        text,
		Type:        exam.TypeMCQ,
		Difficulty:  diff,
		Source:      source,
		Verified:    source == exam.SourcePYQ,
		Active:      true,
		Fingerprint: exam.Fingerprint("History", "Mughal Empire", text),
		SubjectID:   subjectID,
		TopicID:     topicID,
		Options: []exam.Option{
			{ID: 1, Text: "A", Correct: true, Order: 1},
			{ID: 2, Text: "B", Order: 2},
			{ID: 3, Text: "C", Order: 3},
			{ID: 4, Text: "D", Order: 4},
		},
	}
}
