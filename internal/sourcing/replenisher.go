package sourcing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/llm"
	"github.com/abhisek/examiz/internal/store"
)

// RefillJob identifies one inventory scope to check and refill.
type RefillJob struct {
	SubjectID  int
	TopicID    int // 0 means subject-wide
	Difficulty exam.Difficulty
}

// ReplenisherConfig tunes the background refill worker.
type ReplenisherConfig struct {
	// Threshold is the question count below which a scope is refilled.
	Threshold int
	// BatchCap is the maximum questions generated per refill run.
	BatchCap int
	// QueueSize is the job channel buffer. Jobs beyond it are dropped.
	QueueSize int
}

// DefaultReplenisherConfig returns the recommended settings.
func DefaultReplenisherConfig() ReplenisherConfig {
	return ReplenisherConfig{
		Threshold: 30,
		BatchCap:  20,
		QueueSize: 32,
	}
}

// Replenisher tops up the AI question bank in the background. Jobs are
// processed one at a time by a single worker goroutine; every failure is
// logged and swallowed so replenishment never disturbs a caller.
type Replenisher struct {
	questions store.QuestionRepo
	subjects  store.SubjectRepo
	topics    store.TopicRepo
	generator authoring.Generator

	config ReplenisherConfig
	log    *zap.Logger

	jobs chan RefillJob
	done chan struct{}
}

// NewReplenisher creates and starts a Replenisher.
func NewReplenisher(
	questions store.QuestionRepo,
	subjects store.SubjectRepo,
	topics store.TopicRepo,
	generator authoring.Generator,
	cfg ReplenisherConfig,
	log *zap.Logger,
) *Replenisher {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Replenisher{
		questions: questions,
		subjects:  subjects,
		topics:    topics,
		generator: generator,
		config:    cfg,
		log:       log,
		jobs:      make(chan RefillJob, cfg.QueueSize),
		done:      make(chan struct{}),
	}
	go r.processLoop()
	return r
}

// Trigger schedules a refill check. Non-blocking: when the queue is full
// the job is dropped, the next sourcing run will re-trigger it.
func (r *Replenisher) Trigger(job RefillJob) {
	select {
	case r.jobs <- job:
	default:
		r.log.Debug("refill queue full, dropping job",
			zap.Int("subject_id", job.SubjectID),
			zap.Int("topic_id", job.TopicID))
	}
}

// Close stops the worker after draining queued jobs.
func (r *Replenisher) Close() {
	close(r.jobs)
	<-r.done
}

func (r *Replenisher) processLoop() {
	defer close(r.done)
	for job := range r.jobs {
		if err := r.refill(context.Background(), job); err != nil {
			r.log.Warn("inventory refill failed",
				zap.Int("subject_id", job.SubjectID),
				zap.Int("topic_id", job.TopicID),
				zap.Error(err))
		}
	}
}

// refill generates questions for the job's scope when the active
// inventory across the escalation set is below the threshold.
func (r *Replenisher) refill(ctx context.Context, job RefillJob) error {
	levels := job.Difficulty.Escalation()

	have, err := r.questions.CountAvailable(ctx, job.SubjectID, job.TopicID, levels)
	if err != nil {
		return fmt.Errorf("count inventory: %w", err)
	}
	if have >= r.config.Threshold {
		return nil
	}

	deficit := r.config.Threshold - have
	if deficit > r.config.BatchCap {
		deficit = r.config.BatchCap
	}

	subj, err := r.subjects.ByID(ctx, job.SubjectID)
	if err != nil {
		return err
	}
	genReq := authoring.GenerateRequest{
		Subject:         subj.Name,
		DifficultyFloor: job.Difficulty,
		Count:           deficit,
	}
	if job.TopicID != 0 {
		top, err := r.topics.ByID(ctx, job.TopicID)
		if err != nil {
			return err
		}
		genReq.Topic = top.Name
	}

	// Tell the generator what the bank already holds so the refill batch
	// is not a rephrasing of the existing inventory.
	existing, err := r.questions.FindUnseen(ctx, "", job.SubjectID, job.TopicID, levels, exam.SourceAI, r.config.Threshold)
	if err != nil {
		return fmt.Errorf("list existing inventory: %w", err)
	}
	genReq.AvoidTexts = questionTexts(existing)

	ctx = llm.WithPurpose(ctx, llm.PurposeInventoryRefill)
	drafts, err := r.generator.Generate(ctx, genReq)
	if err != nil {
		return fmt.Errorf("generate refill batch: %w", err)
	}

	valid, errs := authoring.FilterValid(drafts)
	for _, verr := range errs {
		r.log.Warn("discarding invalid refill draft", zap.Error(verr))
	}

	inserted := 0
	for _, d := range valid {
		q := draftToQuestion(genReq.Subject, genReq.Topic, job.SubjectID, job.TopicID, d)
		_, fresh, err := r.questions.UpsertByFingerprint(ctx, q)
		if err != nil {
			r.log.Warn("persist refill draft failed", zap.Error(err))
			continue
		}
		if fresh {
			inserted++
		}
	}

	r.log.Info("inventory refilled",
		zap.Int("subject_id", job.SubjectID),
		zap.Int("topic_id", job.TopicID),
		zap.Int("had", have),
		zap.Int("inserted", inserted))
	return nil
}
