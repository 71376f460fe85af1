// Package sourcing selects questions for test assembly. A three tier
// waterfall draws from previous year questions, then the AI bank, then
// real-time generation, always excluding questions the user has already
// answered. A background replenisher keeps the AI bank stocked.
package sourcing

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/llm"
	"github.com/abhisek/examiz/internal/store"
)

// Request describes one sourcing run.
type Request struct {
	UserID     string
	SubjectID  int
	TopicID    int // 0 means subject-wide
	Difficulty exam.Difficulty
	Count      int
	// Context is optional study material passed through to real-time
	// generation. The prompt builder truncates it.
	Context string
}

// Triggerer schedules background inventory refills. Satisfied by
// *Replenisher; nil disables triggering.
type Triggerer interface {
	Trigger(job RefillJob)
}

// Pipeline runs the three tier sourcing waterfall.
type Pipeline struct {
	questions store.QuestionRepo
	answers   store.AnswerRepo
	subjects  store.SubjectRepo
	topics    store.TopicRepo

	generator authoring.Generator
	fallback  authoring.Generator

	replenisher Triggerer
	log         *zap.Logger
}

// NewPipeline wires a Pipeline. fallback may be nil to disable the static
// pool; replenisher may be nil to disable background refills.
func NewPipeline(
	questions store.QuestionRepo,
	answers store.AnswerRepo,
	subjects store.SubjectRepo,
	topics store.TopicRepo,
	generator authoring.Generator,
	fallback authoring.Generator,
	replenisher Triggerer,
	log *zap.Logger,
) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		questions:   questions,
		answers:     answers,
		subjects:    subjects,
		topics:      topics,
		generator:   generator,
		fallback:    fallback,
		replenisher: replenisher,
		log:         log,
	}
}

// Source returns up to req.Count unseen questions for the user. The result
// never contains duplicate fingerprints and is uniformly shuffled. Fewer
// questions than requested is a degraded success, never an error.
func (p *Pipeline) Source(ctx context.Context, req Request) ([]exam.Question, error) {
	if req.Count <= 0 {
		return nil, &exam.RuleViolationError{Reason: "question count must be positive"}
	}
	if !req.Difficulty.Valid() {
		return nil, &exam.RuleViolationError{Reason: fmt.Sprintf("unknown difficulty %q", req.Difficulty)}
	}

	levels := req.Difficulty.Escalation()
	seen := make(map[string]bool)
	var picked []exam.Question

	// Tier 1: previous year questions.
	// Tier 2: the AI-generated bank.
	for _, source := range []exam.Source{exam.SourcePYQ, exam.SourceAI} {
		if len(picked) >= req.Count {
			break
		}
		found, err := p.questions.FindUnseen(ctx, req.UserID, req.SubjectID, req.TopicID, levels, source, req.Count-len(picked))
		if err != nil {
			return nil, fmt.Errorf("source tier %s: %w", source, err)
		}
		for _, q := range found {
			if len(picked) >= req.Count || seen[q.Fingerprint] {
				continue
			}
			seen[q.Fingerprint] = true
			picked = append(picked, q)
		}
	}

	// Tier 3: real-time generation for the shortfall.
	if shortfall := req.Count - len(picked); shortfall > 0 {
		generated, err := p.generate(ctx, req, shortfall, seen, questionTexts(picked))
		if err != nil {
			p.log.Warn("real-time generation failed, serving partial result",
				zap.String("user_id", req.UserID),
				zap.Int("shortfall", shortfall),
				zap.Error(err))
		}
		picked = append(picked, generated...)
	}

	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	if p.replenisher != nil {
		p.replenisher.Trigger(RefillJob{
			SubjectID:  req.SubjectID,
			TopicID:    req.TopicID,
			Difficulty: req.Difficulty,
		})
	}

	return picked, nil
}

// generate fills the shortfall from the LLM generator, falling back to the
// static pool when the provider is unavailable or returns unusable output.
// Persisted drafts enter the bank as unverified AI questions.
func (p *Pipeline) generate(ctx context.Context, req Request, shortfall int, seen map[string]bool, avoid []string) ([]exam.Question, error) {
	genReq, err := p.buildGenerateRequest(ctx, req, shortfall)
	if err != nil {
		return nil, err
	}
	genReq.AvoidTexts = avoid

	drafts, err := p.generator.Generate(ctx, genReq)
	if err != nil {
		if p.fallback == nil {
			return nil, err
		}
		p.log.Info("generator unavailable, using fallback pool",
			zap.Bool("breaker_open", llm.IsBreakerOpen(err)),
			zap.Error(err))
		drafts, err = p.fallback.Generate(ctx, genReq)
		if err != nil {
			return nil, err
		}
	}

	valid, errs := authoring.FilterValid(drafts)
	for _, verr := range errs {
		p.log.Warn("discarding invalid draft", zap.Error(verr))
	}

	var out []exam.Question
	for _, d := range valid {
		if len(out) >= shortfall {
			break
		}
		q, err := p.persistDraft(ctx, req, genReq, d)
		if err != nil {
			p.log.Warn("persist draft failed", zap.Error(err))
			continue
		}
		if seen[q.Fingerprint] {
			continue
		}
		// A draft deduped against the bank may resolve to a question the
		// user has already answered. Skip those.
		answered, err := p.answers.CountByUserQuestion(ctx, req.UserID, q.ID)
		if err != nil {
			return out, err
		}
		if answered > 0 {
			continue
		}
		seen[q.Fingerprint] = true
		out = append(out, q)
	}
	return out, nil
}

func (p *Pipeline) buildGenerateRequest(ctx context.Context, req Request, count int) (authoring.GenerateRequest, error) {
	subj, err := p.subjects.ByID(ctx, req.SubjectID)
	if err != nil {
		return authoring.GenerateRequest{}, err
	}
	genReq := authoring.GenerateRequest{
		Subject:         subj.Name,
		DifficultyFloor: req.Difficulty,
		Count:           count,
		Context:         req.Context,
	}
	if req.TopicID != 0 {
		top, err := p.topics.ByID(ctx, req.TopicID)
		if err != nil {
			return authoring.GenerateRequest{}, err
		}
		genReq.Topic = top.Name
	}
	return genReq, nil
}

func (p *Pipeline) persistDraft(ctx context.Context, req Request, genReq authoring.GenerateRequest, d authoring.Draft) (exam.Question, error) {
	q := draftToQuestion(genReq.Subject, genReq.Topic, req.SubjectID, req.TopicID, d)
	stored, _, err := p.questions.UpsertByFingerprint(ctx, q)
	return stored, err
}

// questionTexts extracts the texts of already-picked questions so the
// generator prompt can steer clear of near-duplicates.
func questionTexts(qs []exam.Question) []string {
	if len(qs) == 0 {
		return nil
	}
	texts := make([]string, len(qs))
	for i, q := range qs {
		texts[i] = q.Text
	}
	return texts
}

// draftToQuestion converts a validated draft into an unverified AI bank
// question ready for upsert.
func draftToQuestion(subject, topic string, subjectID, topicID int, d authoring.Draft) exam.Question {
	q := exam.Question{
		Text:        d.Text,
		Type:        d.Type,
		Difficulty:  d.Difficulty,
		Explanation: d.Explanation,
		Source:      exam.SourceAI,
		Verified:    false,
		Active:      true,
		Fingerprint: exam.Fingerprint(subject, topic, d.Text),
		SubjectID:   subjectID,
		TopicID:     topicID,
	}
	for i, opt := range d.Options {
		q.Options = append(q.Options, exam.Option{
			Text:    opt.Text,
			Correct: opt.Correct,
			Order:   i + 1,
		})
	}
	return q
}
