package store

import (
	"context"
	"fmt"

	"github.com/abhisek/examiz/ent"
	"github.com/abhisek/examiz/ent/topic"
	"github.com/abhisek/examiz/internal/exam"
)

// TopicRepo manages topics within subjects.
type TopicRepo interface {
	// Ensure returns the topic with the given name under the subject,
	// creating it if needed.
	Ensure(ctx context.Context, subjectID int, name string) (exam.Topic, error)

	// ByID returns the topic with the given id.
	ByID(ctx context.Context, id int) (exam.Topic, error)

	// ListBySubject returns all topics of a subject ordered by name.
	ListBySubject(ctx context.Context, subjectID int) ([]exam.Topic, error)
}

type topicRepo struct {
	client *ent.Client
}

func (r *topicRepo) Ensure(ctx context.Context, subjectID int, name string) (exam.Topic, error) {
	row, err := r.client.Topic.Query().
		Where(topic.SubjectID(subjectID), topic.Name(name)).
		Only(ctx)
	if err == nil {
		return toTopic(row), nil
	}
	if !ent.IsNotFound(err) {
		return exam.Topic{}, fmt.Errorf("query topic %q: %w", name, err)
	}

	row, err = r.client.Topic.Create().
		SetSubjectID(subjectID).
		SetName(name).
		Save(ctx)
	if err == nil {
		return toTopic(row), nil
	}
	if !ent.IsConstraintError(err) {
		return exam.Topic{}, fmt.Errorf("create topic %q: %w", name, err)
	}

	row, err = r.client.Topic.Query().
		Where(topic.SubjectID(subjectID), topic.Name(name)).
		Only(ctx)
	if err != nil {
		return exam.Topic{}, fmt.Errorf("re-query topic %q: %w", name, err)
	}
	return toTopic(row), nil
}

func (r *topicRepo) ByID(ctx context.Context, id int) (exam.Topic, error) {
	row, err := r.client.Topic.Get(ctx, id)
	if ent.IsNotFound(err) {
		return exam.Topic{}, &exam.NotFoundError{Resource: "topic", ID: fmt.Sprint(id)}
	}
	if err != nil {
		return exam.Topic{}, fmt.Errorf("get topic %d: %w", id, err)
	}
	return toTopic(row), nil
}

func (r *topicRepo) ListBySubject(ctx context.Context, subjectID int) ([]exam.Topic, error) {
	rows, err := r.client.Topic.Query().
		Where(topic.SubjectID(subjectID)).
		Order(ent.Asc(topic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics of subject %d: %w", subjectID, err)
	}
	out := make([]exam.Topic, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTopic(row))
	}
	return out, nil
}

func toTopic(row *ent.Topic) exam.Topic {
	return exam.Topic{ID: row.ID, SubjectID: row.SubjectID, Name: row.Name}
}
