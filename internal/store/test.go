package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examiz/ent"
	enttest "github.com/abhisek/examiz/ent/test"
	"github.com/abhisek/examiz/internal/exam"
)

// TestRepo manages assembled tests.
type TestRepo interface {
	// Create persists an assembled test and returns it with identifiers set.
	Create(ctx context.Context, t exam.Test) (exam.Test, error)

	// ByID returns the test with the given internal id.
	ByID(ctx context.Context, id int) (exam.Test, error)

	// ByPublicID returns the test with the given public id.
	ByPublicID(ctx context.Context, publicID string) (exam.Test, error)

	// ListByCreator returns tests created by the user, newest first.
	ListByCreator(ctx context.Context, userID string, limit int) ([]exam.Test, error)
}

type testRepo struct {
	client *ent.Client
}

func (r *testRepo) Create(ctx context.Context, t exam.Test) (exam.Test, error) {
	create := r.client.Test.Create().
		SetTargetDifficulty(enttest.TargetDifficulty(t.TargetDifficulty)).
		SetTestType(enttest.TestType(t.Type)).
		SetTotalQuestions(t.TotalQuestions).
		SetTotalMarks(t.TotalMarks).
		SetDurationMinutes(t.DurationMinutes).
		SetQuestionIds(t.QuestionIDs).
		SetCreatedBy(t.CreatedBy).
		SetSubjectID(t.SubjectID)
	if t.TopicID != 0 {
		create.SetTopicID(t.TopicID)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return exam.Test{}, fmt.Errorf("create test: %w", err)
	}
	return toTest(row), nil
}

func (r *testRepo) ByID(ctx context.Context, id int) (exam.Test, error) {
	row, err := r.client.Test.Get(ctx, id)
	if ent.IsNotFound(err) {
		return exam.Test{}, &exam.NotFoundError{Resource: "test", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return exam.Test{}, fmt.Errorf("get test %d: %w", id, err)
	}
	return toTest(row), nil
}

func (r *testRepo) ByPublicID(ctx context.Context, publicID string) (exam.Test, error) {
	row, err := r.client.Test.Query().
		Where(enttest.PublicID(publicID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return exam.Test{}, &exam.NotFoundError{Resource: "test", ID: publicID}
	}
	if err != nil {
		return exam.Test{}, fmt.Errorf("query test %s: %w", publicID, err)
	}
	return toTest(row), nil
}

func (r *testRepo) ListByCreator(ctx context.Context, userID string, limit int) ([]exam.Test, error) {
	rows, err := r.client.Test.Query().
		Where(enttest.CreatedBy(userID)).
		Order(ent.Desc(enttest.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tests of %s: %w", userID, err)
	}
	out := make([]exam.Test, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTest(row))
	}
	return out, nil
}

func toTest(row *ent.Test) exam.Test {
	return exam.Test{
		ID:               row.ID,
		PublicID:         row.PublicID,
		SubjectID:        row.SubjectID,
		TopicID:          row.TopicID,
		TargetDifficulty: exam.Difficulty(row.TargetDifficulty),
		Type:             exam.TestType(row.TestType),
		TotalQuestions:   row.TotalQuestions,
		TotalMarks:       row.TotalMarks,
		DurationMinutes:  row.DurationMinutes,
		QuestionIDs:      row.QuestionIds,
		CreatedBy:        row.CreatedBy,
		CreatedAt:        row.CreatedAt,
	}
}
