package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/question"
	"github.com/abhisek/examiz/internal/exam"
)

// QuestionRepo manages the question bank.
type QuestionRepo interface {
	// UpsertByFingerprint inserts the question unless one with the same
	// fingerprint already exists. It returns the stored question and
	// whether an insert happened.
	UpsertByFingerprint(ctx context.Context, q exam.Question) (exam.Question, bool, error)

	// FindUnseen returns up to limit active questions of the given source
	// matching the scope that the user has never answered. A topicID of 0
	// means any topic. Levels filters by difficulty.
	FindUnseen(ctx context.Context, userID string, subjectID, topicID int, levels []exam.Difficulty, source exam.Source, limit int) ([]exam.Question, error)

	// CountAvailable counts active questions in scope across every
	// sourcing tier, regardless of who has seen them. Used by the
	// inventory watchdog.
	CountAvailable(ctx context.Context, subjectID, topicID int, levels []exam.Difficulty) (int, error)

	// ByIDs returns questions in the order of ids. Missing ids are skipped.
	ByIDs(ctx context.Context, ids []int) ([]exam.Question, error)

	// Deactivate soft-deletes a question.
	Deactivate(ctx context.Context, id int) error
}

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) UpsertByFingerprint(ctx context.Context, q exam.Question) (exam.Question, bool, error) {
	stored, err := r.create(ctx, q)
	if err == nil {
		return stored, true, nil
	}
	if !ent.IsConstraintError(err) {
		return exam.Question{}, false, err
	}

	// Fingerprint collision; return the existing question.
	row, qerr := r.client.Question.Query().
		Where(question.Fingerprint(q.Fingerprint)).
		WithOptions().
		Only(ctx)
	if qerr != nil {
		return exam.Question{}, false, fmt.Errorf("re-query question by fingerprint: %w", qerr)
	}
	return toQuestion(row), false, nil
}

func (r *questionRepo) create(ctx context.Context, q exam.Question) (exam.Question, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return exam.Question{}, fmt.Errorf("begin tx: %w", err)
	}

	create := tx.Question.Create().
		SetText(q.Text).
		SetQuestionType(question.QuestionType(q.Type)).
		SetDifficulty(question.Difficulty(q.Difficulty)).
		SetExplanation(q.Explanation).
		SetSource(question.Source(q.Source)).
		SetVerified(q.Verified).
		SetActive(q.Active).
		SetFingerprint(q.Fingerprint).
		SetSubjectID(q.SubjectID)
	if q.TopicID != 0 {
		create.SetTopicID(q.TopicID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return exam.Question{}, err
	}

	stored := toQuestion(row)
	for _, opt := range q.Options {
		saved, err := tx.QuestionOption.Create().
			SetQuestionID(row.ID).
			SetText(opt.Text).
			SetCorrect(opt.Correct).
			SetOrd(opt.Order).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return exam.Question{}, fmt.Errorf("create option: %w", err)
		}
		stored.Options = append(stored.Options, exam.Option{
			ID:      saved.ID,
			Text:    saved.Text,
			Correct: saved.Correct,
			Order:   saved.Ord,
		})
	}

	if err := tx.Commit(); err != nil {
		return exam.Question{}, fmt.Errorf("commit question: %w", err)
	}
	return stored, nil
}

func (r *questionRepo) FindUnseen(ctx context.Context, userID string, subjectID, topicID int, levels []exam.Difficulty, source exam.Source, limit int) ([]exam.Question, error) {
	q := r.client.Question.Query().
		Where(scopePredicates(subjectID, topicID, levels)...).
		Where(question.SourceEQ(question.Source(source))).
		Where(question.Not(question.HasAnswersWith(answerrecord.UserID(userID)))).
		WithOptions().
		Limit(limit)

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unseen questions: %w", err)
	}
	out := make([]exam.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toQuestion(row))
	}
	return out, nil
}

func (r *questionRepo) CountAvailable(ctx context.Context, subjectID, topicID int, levels []exam.Difficulty) (int, error) {
	n, err := r.client.Question.Query().
		Where(scopePredicates(subjectID, topicID, levels)...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (r *questionRepo) ByIDs(ctx context.Context, ids []int) ([]exam.Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.IDIn(ids...)).
		WithOptions().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions by ids: %w", err)
	}

	byID := make(map[int]exam.Question, len(rows))
	for _, row := range rows {
		byID[row.ID] = toQuestion(row)
	}
	out := make([]exam.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *questionRepo) Deactivate(ctx context.Context, id int) error {
	err := r.client.Question.UpdateOneID(id).
		SetActive(false).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return &exam.NotFoundError{Resource: "question", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return fmt.Errorf("deactivate question %d: %w", id, err)
	}
	return nil
}

func scopePredicates(subjectID, topicID int, levels []exam.Difficulty) []predicate.Question {
	preds := []predicate.Question{
		question.SubjectID(subjectID),
		question.Active(true),
	}
	if topicID != 0 {
		preds = append(preds, question.TopicID(topicID))
	}
	if len(levels) > 0 {
		diffs := make([]question.Difficulty, len(levels))
		for i, l := range levels {
			diffs[i] = question.Difficulty(l)
		}
		preds = append(preds, question.DifficultyIn(diffs...))
	}
	return preds
}

func toQuestion(row *ent.Question) exam.Question {
	q := exam.Question{
		ID:          row.ID,
		Text:        row.Text,
		Type:        exam.QuestionType(row.QuestionType),
		Difficulty:  exam.Difficulty(row.Difficulty),
		Explanation: row.Explanation,
		Source:      exam.Source(row.Source),
		Verified:    row.Verified,
		Active:      row.Active,
		Fingerprint: row.Fingerprint,
		SubjectID:   row.SubjectID,
		TopicID:     row.TopicID,
	}
	opts := row.Edges.Options
	sort.Slice(opts, func(i, j int) bool { return opts[i].Ord < opts[j].Ord })
	for _, o := range opts {
		q.Options = append(q.Options, exam.Option{
			ID:      o.ID,
			Text:    o.Text,
			Correct: o.Correct,
			Order:   o.Ord,
		})
	}
	return q
}
