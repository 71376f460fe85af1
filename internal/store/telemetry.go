package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/internal/exam"
)

// AnswerRepo persists per-question answer telemetry. Saved records double
// as the per-user seen-question markers used by question sourcing.
type AnswerRepo interface {
	// SaveBatch writes all records of one attempt submission atomically.
	SaveBatch(ctx context.Context, attemptID int, userID string, records []exam.AnswerRecord) error

	// ListByAttempt returns the records of an attempt in question order
	// of insertion.
	ListByAttempt(ctx context.Context, attemptID int) ([]exam.AnswerRecord, error)

	// CountByUserQuestion reports how many times the user has answered
	// the question across all attempts.
	CountByUserQuestion(ctx context.Context, userID string, questionID int) (int, error)
}

type answerRepo struct {
	client *ent.Client
}

func (r *answerRepo) SaveBatch(ctx context.Context, attemptID int, userID string, records []exam.AnswerRecord) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for _, rec := range records {
		create := tx.AnswerRecord.Create().
			SetAttemptID(attemptID).
			SetQuestionID(rec.QuestionID).
			SetUserID(userID).
			SetTimeSpentSeconds(rec.TimeSpentSeconds).
			SetSelectionChangeCount(rec.SelectionChangeCount).
			SetHoverCount(rec.HoverCount).
			SetEliminatedOptionIds(rec.EliminatedOptionIDs).
			SetCorrect(rec.Correct).
			SetClassification(answerrecord.Classification(rec.Classification))
		if rec.SelectedOptionID != 0 {
			create.SetSelectedOptionID(rec.SelectedOptionID)
		}
		if rec.FirstSelectedOptionID != 0 {
			create.SetFirstSelectedOptionID(rec.FirstSelectedOptionID)
		}
		if err := create.Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("save answer for question %d: %w", rec.QuestionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit answers: %w", err)
	}
	return nil
}

func (r *answerRepo) ListByAttempt(ctx context.Context, attemptID int) ([]exam.AnswerRecord, error) {
	rows, err := r.client.AnswerRecord.Query().
		Where(answerrecord.AttemptID(attemptID)).
		Order(ent.Asc(answerrecord.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answers of attempt %d: %w", attemptID, err)
	}
	out := make([]exam.AnswerRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, exam.AnswerRecord{
			QuestionID:            row.QuestionID,
			SelectedOptionID:      row.SelectedOptionID,
			FirstSelectedOptionID: row.FirstSelectedOptionID,
			TimeSpentSeconds:      row.TimeSpentSeconds,
			SelectionChangeCount:  row.SelectionChangeCount,
			HoverCount:            row.HoverCount,
			EliminatedOptionIDs:   row.EliminatedOptionIds,
			Correct:               row.Correct,
			Classification:        exam.Classification(row.Classification),
		})
	}
	return out, nil
}

func (r *answerRepo) CountByUserQuestion(ctx context.Context, userID string, questionID int) (int, error) {
	n, err := r.client.AnswerRecord.Query().
		Where(
			answerrecord.UserID(userID),
			answerrecord.QuestionID(questionID),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count answers: %w", err)
	}
	return n, nil
}
