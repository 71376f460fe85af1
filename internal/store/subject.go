package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/subject"
	"github.com/abhisek/examiz/internal/exam"
)

// SubjectRepo manages the subject taxonomy.
type SubjectRepo interface {
	// Ensure returns the subject with the given name, creating it if needed.
	Ensure(ctx context.Context, name string) (exam.Subject, error)

	// ByID returns the subject with the given id.
	ByID(ctx context.Context, id int) (exam.Subject, error)

	// ByName returns the subject with the given name.
	ByName(ctx context.Context, name string) (exam.Subject, error)

	// List returns all subjects ordered by name.
	List(ctx context.Context) ([]exam.Subject, error)
}

type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) Ensure(ctx context.Context, name string) (exam.Subject, error) {
	row, err := r.client.Subject.Query().
		Where(subject.Name(name)).
		Only(ctx)
	if err == nil {
		return toSubject(row), nil
	}
	if !ent.IsNotFound(err) {
		return exam.Subject{}, fmt.Errorf("query subject %q: %w", name, err)
	}

	row, err = r.client.Subject.Create().
		SetName(name).
		Save(ctx)
	if err == nil {
		return toSubject(row), nil
	}
	if !ent.IsConstraintError(err) {
		return exam.Subject{}, fmt.Errorf("create subject %q: %w", name, err)
	}

	// Lost a race with a concurrent insert; the row exists now.
	row, err = r.client.Subject.Query().
		Where(subject.Name(name)).
		Only(ctx)
	if err != nil {
		return exam.Subject{}, fmt.Errorf("re-query subject %q: %w", name, err)
	}
	return toSubject(row), nil
}

func (r *subjectRepo) ByID(ctx context.Context, id int) (exam.Subject, error) {
	row, err := r.client.Subject.Get(ctx, id)
	if ent.IsNotFound(err) {
		return exam.Subject{}, &exam.NotFoundError{Resource: "subject", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return exam.Subject{}, fmt.Errorf("get subject %d: %w", id, err)
	}
	return toSubject(row), nil
}

func (r *subjectRepo) ByName(ctx context.Context, name string) (exam.Subject, error) {
	row, err := r.client.Subject.Query().
		Where(subject.Name(name)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return exam.Subject{}, &exam.NotFoundError{Resource: "subject", ID: name}
	}
	if err != nil {
		return exam.Subject{}, fmt.Errorf("query subject %q: %w", name, err)
	}
	return toSubject(row), nil
}

func (r *subjectRepo) List(ctx context.Context) ([]exam.Subject, error) {
	rows, err := r.client.Subject.Query().
		Order(ent.Asc(subject.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	out := make([]exam.Subject, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSubject(row))
	}
	return out, nil
}

func toSubject(row *ent.Subject) exam.Subject {
	return exam.Subject{ID: row.ID, Name: row.Name}
}
