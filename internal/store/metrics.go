package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/metricsrecord"
	"github.com/abhisek/examiz/internal/exam"
)

// MetricsRepo persists behavioral metrics, one record per attempt.
type MetricsRepo interface {
	// Upsert stores the metrics of an attempt, replacing any previous
	// record. Recomputation after a resubmit must not leave duplicates.
	Upsert(ctx context.Context, attemptID int, userID string, m exam.Metrics) error

	// ByAttempt returns the stored metrics of an attempt.
	ByAttempt(ctx context.Context, attemptID int) (exam.Metrics, error)

	// ListByUser returns the user's metrics records, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]exam.Metrics, error)
}

type metricsRepo struct {
	client *ent.Client
}

func (r *metricsRepo) Upsert(ctx context.Context, attemptID int, userID string, m exam.Metrics) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.MetricsRecord.Delete().
		Where(metricsrecord.AttemptID(attemptID)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("clear metrics of attempt %d: %w", attemptID, err)
	}

	err = tx.MetricsRecord.Create().
		SetAttemptID(attemptID).
		SetUserID(userID).
		SetAccuracy(m.Accuracy).
		SetAttemptRatio(m.AttemptRatio).
		SetNegativeMarks(m.NegativeMarks).
		SetFirstInstinctAccuracy(m.FirstInstinctAccuracy).
		SetEliminationEfficiency(m.EliminationEfficiency).
		SetImpulsiveErrorCount(m.ImpulsiveErrorCount).
		SetOverthinkingErrorCount(m.OverthinkingErrorCount).
		SetGuessProbability(m.GuessProbability).
		SetCognitiveBreakdown(m.CognitiveBreakdown).
		SetFatigueCurve(map[string]any{
			"fatigue_index": m.FatigueIndex,
			"accuracy_drop": m.AccuracyDrop,
		}).
		SetRiskAppetite(m.RiskAppetite).
		SetConfidenceIndex(m.ConfidenceIndex).
		SetConsistencyIndex(m.ConsistencyIndex).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save metrics of attempt %d: %w", attemptID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit metrics: %w", err)
	}
	return nil
}

func (r *metricsRepo) ByAttempt(ctx context.Context, attemptID int) (exam.Metrics, error) {
	row, err := r.client.MetricsRecord.Query().
		Where(metricsrecord.AttemptID(attemptID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return exam.Metrics{}, &exam.NotFoundError{Resource: "metrics", ID: fmt.Sprint(attemptID)}
	}
	if err != nil {
		return exam.Metrics{}, fmt.Errorf("query metrics of attempt %d: %w", attemptID, err)
	}
	return toMetrics(row), nil
}

func (r *metricsRepo) ListByUser(ctx context.Context, userID string, limit int) ([]exam.Metrics, error) {
	rows, err := r.client.MetricsRecord.Query().
		Where(metricsrecord.UserID(userID)).
		Order(ent.Desc(metricsrecord.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list metrics of %s: %w", userID, err)
	}
	out := make([]exam.Metrics, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMetrics(row))
	}
	return out, nil
}

func toMetrics(row *ent.MetricsRecord) exam.Metrics {
	m := exam.Metrics{
		Accuracy:               row.Accuracy,
		AttemptRatio:           row.AttemptRatio,
		NegativeMarks:          row.NegativeMarks,
		FirstInstinctAccuracy:  row.FirstInstinctAccuracy,
		EliminationEfficiency:  row.EliminationEfficiency,
		ImpulsiveErrorCount:    row.ImpulsiveErrorCount,
		OverthinkingErrorCount: row.OverthinkingErrorCount,
		GuessProbability:       row.GuessProbability,
		CognitiveBreakdown:     row.CognitiveBreakdown,
		RiskAppetite:           row.RiskAppetite,
		ConfidenceIndex:        row.ConfidenceIndex,
		ConsistencyIndex:       row.ConsistencyIndex,
	}
	if v, ok := row.FatigueCurve["fatigue_index"].(string); ok {
		m.FatigueIndex = v
	}
	switch v := row.FatigueCurve["accuracy_drop"].(type) {
	case float64:
		m.AccuracyDrop = int(v)
	case int:
		m.AccuracyDrop = v
	}
	return m
}
