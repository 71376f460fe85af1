// Package insight produces the post-attempt analysis: the behavioral
// metrics, a per-topic performance breakdown, and an AI-authored
// diagnostic narrative. The narrative is strictly best-effort.
package insight

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/examiz/internal/authoring"
	"github.com/abhisek/examiz/internal/behavior"
	"github.com/abhisek/examiz/internal/exam"
	"github.com/abhisek/examiz/internal/store"
)

// Topic mastery statuses, keyed off per-topic accuracy.
const (
	StatusMastered     = "MASTERED"
	StatusNeedPractice = "NEED_PRACTICE"
	StatusWeak         = "WEAK"
)

// PlaceholderSummary is returned when narrative synthesis fails. The
// numeric metrics are always present regardless.
const PlaceholderSummary = "Detailed diagnostic narrative is unavailable right now. Review the metric breakdown below."

// Config carries the synthesis bounds.
type Config struct {
	// SampleLimit caps the incorrect questions quoted in the context
	// document.
	SampleLimit int
	// WeakTopicCutoff is the accuracy percentage below which a topic is
	// reported weak.
	WeakTopicCutoff float64
}

// DefaultConfig returns the standard bounds.
func DefaultConfig() Config {
	return Config{SampleLimit: 3, WeakTopicCutoff: 50}
}

// TopicPerformance is the per-topic slice of an attempt.
type TopicPerformance struct {
	TopicID        int
	TopicName      string
	Correct        int
	Total          int
	Accuracy       float64
	AvgTimeSeconds float64
	Status         string
}

// Analysis is the full diagnostic result of one completed attempt.
type Analysis struct {
	Attempt      exam.Attempt
	Metrics      exam.Metrics
	Topics       []TopicPerformance
	Narrative    authoring.Narrative
	MistakeTally map[string]int
}

// NarrativeSynthesizer produces the AI-authored narrative from a context
// document.
type NarrativeSynthesizer interface {
	Synthesize(ctx context.Context, contextDoc string) (*authoring.Narrative, error)
}

// Analyzer assembles analyses from stored attempt state.
type Analyzer struct {
	attempts  store.AttemptRepo
	tests     store.TestRepo
	questions store.QuestionRepo
	answers   store.AnswerRepo
	metrics   store.MetricsRepo
	topics    store.TopicRepo

	synth NarrativeSynthesizer
	calc  *behavior.Calculator

	config Config
	log    *zap.Logger
}

// NewAnalyzer wires an Analyzer. synth may be nil to skip narratives.
func NewAnalyzer(
	attempts store.AttemptRepo,
	tests store.TestRepo,
	questions store.QuestionRepo,
	answers store.AnswerRepo,
	metrics store.MetricsRepo,
	topics store.TopicRepo,
	synth NarrativeSynthesizer,
	calc *behavior.Calculator,
	config Config,
	log *zap.Logger,
) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{
		attempts:  attempts,
		tests:     tests,
		questions: questions,
		answers:   answers,
		metrics:   metrics,
		topics:    topics,
		synth:     synth,
		calc:      calc,
		config:    config,
		log:       log,
	}
}

// Analyze builds the diagnostic analysis of a completed attempt.
func (a *Analyzer) Analyze(ctx context.Context, attemptID int, userID string) (*Analysis, error) {
	attempt, err := a.attempts.ByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, &exam.RuleViolationError{Reason: "attempt belongs to a different user"}
	}
	if attempt.Status != exam.AttemptCompleted {
		return nil, &exam.RuleViolationError{Reason: "attempt is not completed"}
	}

	test, err := a.tests.ByID(ctx, attempt.TestID)
	if err != nil {
		return nil, err
	}
	questions, err := a.questions.ByIDs(ctx, test.QuestionIDs)
	if err != nil {
		return nil, err
	}
	records, err := a.answers.ListByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, err
	}

	metrics, err := a.metrics.ByAttempt(ctx, attempt.ID)
	if exam.IsNotFound(err) {
		// The post-submission recording is best-effort; recompute here
		// rather than failing the analysis.
		metrics = a.calc.Calculate(questions, records)
		err = nil
	}
	if err != nil {
		return nil, err
	}

	topics := a.topicPerformance(ctx, questions, records)

	analysis := &Analysis{
		Attempt:      attempt,
		Metrics:      metrics,
		Topics:       topics,
		Narrative:    authoring.Narrative{DiagnosticSummary: PlaceholderSummary},
		MistakeTally: map[string]int{},
	}

	if a.synth != nil {
		doc := a.buildContext(metrics, topics, questions, records)
		narrative, err := a.synth.Synthesize(ctx, doc)
		if err != nil {
			a.log.Warn("diagnostic synthesis failed",
				zap.String("attempt_id", attempt.PublicID),
				zap.Error(err))
		} else {
			analysis.Narrative = *narrative
			for _, mc := range narrative.MistakeCategorization {
				analysis.MistakeTally[mc.Type]++
			}
		}
	}
	return analysis, nil
}

// topicPerformance groups the answered snapshot by topic. Untagged
// questions fold into a single "General" bucket.
func (a *Analyzer) topicPerformance(ctx context.Context, questions []exam.Question, records []exam.AnswerRecord) []TopicPerformance {
	byQuestion := make(map[int]exam.AnswerRecord, len(records))
	for _, r := range records {
		byQuestion[r.QuestionID] = r
	}

	perTopic := map[int]*TopicPerformance{}
	var order []int
	for _, q := range questions {
		tp := perTopic[q.TopicID]
		if tp == nil {
			tp = &TopicPerformance{TopicID: q.TopicID, TopicName: a.topicName(ctx, q.TopicID)}
			perTopic[q.TopicID] = tp
			order = append(order, q.TopicID)
		}
		tp.Total++

		rec := byQuestion[q.ID]
		tp.AvgTimeSeconds += float64(rec.TimeSpentSeconds)
		if rec.Correct {
			tp.Correct++
		}
	}

	out := make([]TopicPerformance, 0, len(order))
	for _, id := range order {
		tp := perTopic[id]
		if tp.Total > 0 {
			tp.AvgTimeSeconds = round2(tp.AvgTimeSeconds / float64(tp.Total))
			tp.Accuracy = round2(float64(tp.Correct) / float64(tp.Total) * 100)
		}
		tp.Status = a.status(tp.Accuracy)
		out = append(out, *tp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Accuracy < out[j].Accuracy })
	return out
}

func (a *Analyzer) topicName(ctx context.Context, topicID int) string {
	if topicID == 0 {
		return "General"
	}
	topic, err := a.topics.ByID(ctx, topicID)
	if err != nil {
		return fmt.Sprintf("Topic %d", topicID)
	}
	return topic.Name
}

func (a *Analyzer) status(accuracy float64) string {
	switch {
	case accuracy >= 80:
		return StatusMastered
	case accuracy >= a.config.WeakTopicCutoff:
		return StatusNeedPractice
	default:
		return StatusWeak
	}
}

// buildContext renders the bounded document handed to the narrative
// synthesizer: the metric lines verbatim, the weak topics, and a few
// sample mistakes.
func (a *Analyzer) buildContext(m exam.Metrics, topics []TopicPerformance, questions []exam.Question, records []exam.AnswerRecord) string {
	var b strings.Builder

	b.WriteString("PERFORMANCE METRICS:\n")
	fmt.Fprintf(&b, "accuracy: %.2f%%\n", m.Accuracy)
	fmt.Fprintf(&b, "attempt_ratio: %.2f%%\n", m.AttemptRatio)
	fmt.Fprintf(&b, "negative_marks: %.2f\n", m.NegativeMarks)
	fmt.Fprintf(&b, "first_instinct_accuracy: %.2f%%\n", m.FirstInstinctAccuracy)
	fmt.Fprintf(&b, "elimination_efficiency: %.2f%%\n", m.EliminationEfficiency)
	fmt.Fprintf(&b, "impulsive_errors: %d\n", m.ImpulsiveErrorCount)
	fmt.Fprintf(&b, "overthinking_errors: %d\n", m.OverthinkingErrorCount)
	fmt.Fprintf(&b, "guess_probability: %.2f%%\n", m.GuessProbability)
	fmt.Fprintf(&b, "fatigue_index: %s\n", m.FatigueIndex)
	fmt.Fprintf(&b, "accuracy_drop: %d\n", m.AccuracyDrop)
	fmt.Fprintf(&b, "risk_appetite: %.2f%%\n", m.RiskAppetite)
	fmt.Fprintf(&b, "confidence_index: %.2f\n", m.ConfidenceIndex)
	fmt.Fprintf(&b, "consistency_index: %.2f\n", m.ConsistencyIndex)

	var weak []string
	for _, tp := range topics {
		if tp.Accuracy < a.config.WeakTopicCutoff {
			weak = append(weak, fmt.Sprintf("%s (%.2f%%)", tp.TopicName, tp.Accuracy))
		}
	}
	if len(weak) > 0 {
		b.WriteString("\nWEAK TOPICS:\n")
		for _, w := range weak {
			b.WriteString("- " + w + "\n")
		}
	}

	byQuestion := make(map[int]exam.AnswerRecord, len(records))
	for _, r := range records {
		byQuestion[r.QuestionID] = r
	}
	var samples int
	for _, q := range questions {
		if samples >= a.config.SampleLimit {
			break
		}
		rec, ok := byQuestion[q.ID]
		if !ok || !rec.Answered() || rec.Correct {
			continue
		}
		if samples == 0 {
			b.WriteString("\nSAMPLE INCORRECT QUESTIONS:\n")
		}
		samples++
		fmt.Fprintf(&b, "%d. [%s] %s\n", samples, q.Difficulty, q.Text)
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
