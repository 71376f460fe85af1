package behavior

import (
	"context"

	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/store"
)

// Recorder computes and persists a completed attempt's metrics. It plugs
// into the scoring engine's post-submission hook.
type Recorder struct {
	calc    *Calculator
	metrics store.MetricsRepo
}

// NewRecorder wires a Recorder.
func NewRecorder(calc *Calculator, metrics store.MetricsRepo) *Recorder {
	return &Recorder{calc: calc, metrics: metrics}
}

// Record derives the metrics and stores them, replacing any prior record
// for the attempt.
func (r *Recorder) Record(ctx context.Context, attempt exam.Attempt, questions []exam.Question, records []exam.AnswerRecord) error {
	m := r.calc.Calculate(questions, records)
	return r.metrics.Upsert(ctx, attempt.ID, attempt.UserID, m)
}
