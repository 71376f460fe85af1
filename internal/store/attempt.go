package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/internal/exam"
)

// AttemptRepo manages test attempts.
type AttemptRepo interface {
	// Start creates an IN_PROGRESS attempt for the (test, user) pair, or
	// returns the existing in-progress attempt if one is already open.
	// The boolean reports whether a new attempt was created.
	Start(ctx context.Context, testID int, userID string, totalMarks int) (exam.Attempt, bool, error)

	// ByID returns the attempt with the given internal id.
	ByID(ctx context.Context, id int) (exam.Attempt, error)

	// ByPublicID returns the attempt with the given public id.
	ByPublicID(ctx context.Context, publicID string) (exam.Attempt, error)

	// Complete marks the attempt completed with the final score.
	Complete(ctx context.Context, id int, score int, completedAt time.Time) (exam.Attempt, error)

	// Abandon marks the attempt abandoned.
	Abandon(ctx context.Context, id int) error

	// ListByUser returns the user's attempts, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]exam.Attempt, error)
}

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Start(ctx context.Context, testID int, userID string, totalMarks int) (exam.Attempt, bool, error) {
	row, err := r.client.Attempt.Create().
		SetTestID(testID).
		SetUserID(userID).
		SetTotalMarks(totalMarks).
		Save(ctx)
	if err == nil {
		return toAttempt(row), true, nil
	}
	if !ent.IsConstraintError(err) {
		return exam.Attempt{}, false, fmt.Errorf("create attempt: %w", err)
	}

	// The partial unique index fired: an in-progress attempt already
	// exists for this pair. Resume it.
	row, qerr := r.client.Attempt.Query().
		Where(
			attempt.TestID(testID),
			attempt.UserID(userID),
			attempt.StatusEQ(attempt.StatusInProgress),
		).
		Only(ctx)
	if qerr != nil {
		return exam.Attempt{}, false, fmt.Errorf("re-query in-progress attempt: %w", qerr)
	}
	return toAttempt(row), false, nil
}

func (r *attemptRepo) ByID(ctx context.Context, id int) (exam.Attempt, error) {
	row, err := r.client.Attempt.Get(ctx, id)
	if ent.IsNotFound(err) {
		return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return exam.Attempt{}, fmt.Errorf("get attempt %d: %w", id, err)
	}
	return toAttempt(row), nil
}

func (r *attemptRepo) ByPublicID(ctx context.Context, publicID string) (exam.Attempt, error) {
	row, err := r.client.Attempt.Query().
		Where(attempt.PublicID(publicID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return exam.Attempt{}, &exam.NotFoundError{Resource: "attempt", ID: publicID}
	}
	if err != nil {
		return exam.Attempt{}, fmt.Errorf("query attempt %s: %w", publicID, err)
	}
	return toAttempt(row), nil
}

func (r *attemptRepo) Complete(ctx context.Context, id int, score int, completedAt time.Time) (exam.Attempt, error) {
	n, err := r.client.Attempt.Update().
		Where(attempt.ID(id), attempt.StatusEQ(attempt.StatusInProgress)).
		SetStatus(attempt.StatusCompleted).
		SetScore(score).
		SetCompletedAt(completedAt).
		Save(ctx)
	if err != nil {
		return exam.Attempt{}, fmt.Errorf("complete attempt %d: %w", id, err)
	}
	if n == 0 {
		return exam.Attempt{}, &exam.RuleViolationError{Reason: "attempt is not in progress"}
	}
	return r.ByID(ctx, id)
}

func (r *attemptRepo) Abandon(ctx context.Context, id int) error {
	n, err := r.client.Attempt.Update().
		Where(attempt.ID(id), attempt.StatusEQ(attempt.StatusInProgress)).
		SetStatus(attempt.StatusAbandoned).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("abandon attempt %d: %w", id, err)
	}
	if n == 0 {
		return &exam.RuleViolationError{Reason: "attempt is not in progress"}
	}
	return nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]exam.Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		Order(ent.Desc(attempt.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts of %s: %w", userID, err)
	}
	out := make([]exam.Attempt, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAttempt(row))
	}
	return out, nil
}

func toAttempt(row *ent.Attempt) exam.Attempt {
	a := exam.Attempt{
		ID:         row.ID,
		PublicID:   row.PublicID,
		TestID:     row.TestID,
		UserID:     row.UserID,
		Status:     exam.AttemptStatus(row.Status),
		Score:      row.Score,
		TotalMarks: row.TotalMarks,
		StartedAt:  row.StartedAt,
	}
	if row.CompletedAt != nil {
		a.CompletedAt = *row.CompletedAt
	}
	return a
}
