// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/subject"
	"github.com/abhisek/examiz/ent/test"
	"github.com/abhisek/examiz/ent/topic"
)

// TestCreate is the builder for creating a Test entity.
type TestCreate struct {
	config
	mutation *TestMutation
	hooks    []Hook
}

// SetPublicID sets the "public_id" field.
func (_c *TestCreate) SetPublicID(v string) *TestCreate {
	_c.mutation.SetPublicID(v)
	return _c
}

// SetNillablePublicID sets the "public_id" field if the given value is not nil.
func (_c *TestCreate) SetNillablePublicID(v *string) *TestCreate {
	if v != nil {
		_c.SetPublicID(*v)
	}
	return _c
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (_c *TestCreate) SetTargetDifficulty(v test.TargetDifficulty) *TestCreate {
	_c.mutation.SetTargetDifficulty(v)
	return _c
}

// SetTestType sets the "test_type" field.
func (_c *TestCreate) SetTestType(v test.TestType) *TestCreate {
	_c.mutation.SetTestType(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *TestCreate) SetTotalQuestions(v int) *TestCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetTotalMarks sets the "total_marks" field.
func (_c *TestCreate) SetTotalMarks(v int) *TestCreate {
	_c.mutation.SetTotalMarks(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *TestCreate) SetDurationMinutes(v int) *TestCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetQuestionIds sets the "question_ids" field.
func (_c *TestCreate) SetQuestionIds(v []int) *TestCreate {
	_c.mutation.SetQuestionIds(v)
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *TestCreate) SetCreatedBy(v string) *TestCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *TestCreate) SetSubjectID(v int) *TestCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *TestCreate) SetTopicID(v int) *TestCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_c *TestCreate) SetNillableTopicID(v *int) *TestCreate {
	if v != nil {
		_c.SetTopicID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestCreate) SetCreatedAt(v time.Time) *TestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestCreate) SetNillableCreatedAt(v *time.Time) *TestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_c *TestCreate) SetSubject(v *Subject) *TestCreate {
	return _c.SetSubjectID(v.ID)
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *TestCreate) SetTopic(v *Topic) *TestCreate {
	return _c.SetTopicID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_c *TestCreate) AddAttemptIDs(ids ...int) *TestCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_c *TestCreate) AddAttempts(v ...*Attempt) *TestCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// Mutation returns the TestMutation object of the builder.
func (_c *TestCreate) Mutation() *TestMutation {
	return _c.mutation
}

// Save creates the Test in the database.
func (_c *TestCreate) Save(ctx context.Context) (*Test, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestCreate) SaveX(ctx context.Context) *Test {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestCreate) defaults() {
	if _, ok := _c.mutation.PublicID(); !ok {
		v := test.DefaultPublicID()
		_c.mutation.SetPublicID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := test.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestCreate) check() error {
	if _, ok := _c.mutation.PublicID(); !ok {
		return &ValidationError{Name: "public_id", err: errors.New(`ent: missing required field "Test.public_id"`)}
	}
	if _, ok := _c.mutation.TargetDifficulty(); !ok {
		return &ValidationError{Name: "target_difficulty", err: errors.New(`ent: missing required field "Test.target_difficulty"`)}
	}
	if v, ok := _c.mutation.TargetDifficulty(); ok {
		if err := test.TargetDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "target_difficulty", err: fmt.Errorf(`ent: validator failed for field "Test.target_difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestType(); !ok {
		return &ValidationError{Name: "test_type", err: errors.New(`ent: missing required field "Test.test_type"`)}
	}
	if v, ok := _c.mutation.TestType(); ok {
		if err := test.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "Test.test_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Test.total_questions"`)}
	}
	if _, ok := _c.mutation.TotalMarks(); !ok {
		return &ValidationError{Name: "total_marks", err: errors.New(`ent: missing required field "Test.total_marks"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Test.duration_minutes"`)}
	}
	if _, ok := _c.mutation.QuestionIds(); !ok {
		return &ValidationError{Name: "question_ids", err: errors.New(`ent: missing required field "Test.question_ids"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Test.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := test.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Test.created_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "Test.subject_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Test.created_at"`)}
	}
	if len(_c.mutation.SubjectIDs()) == 0 {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required edge "Test.subject"`)}
	}
	return nil
}

func (_c *TestCreate) sqlSave(ctx context.Context) (*Test, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TestCreate) createSpec() (*Test, *sqlgraph.CreateSpec) {
	var (
		_node = &Test{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(test.Table, sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PublicID(); ok {
		_spec.SetField(test.FieldPublicID, field.TypeString, value)
		_node.PublicID = value
	}
	if value, ok := _c.mutation.TargetDifficulty(); ok {
		_spec.SetField(test.FieldTargetDifficulty, field.TypeEnum, value)
		_node.TargetDifficulty = value
	}
	if value, ok := _c.mutation.TestType(); ok {
		_spec.SetField(test.FieldTestType, field.TypeEnum, value)
		_node.TestType = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(test.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.TotalMarks(); ok {
		_spec.SetField(test.FieldTotalMarks, field.TypeInt, value)
		_node.TotalMarks = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(test.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.QuestionIds(); ok {
		_spec.SetField(test.FieldQuestionIds, field.TypeJSON, value)
		_node.QuestionIds = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(test.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(test.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SubjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   test.SubjectTable,
			Columns: []string{test.SubjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   test.TopicTable,
			Columns: []string{test.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TopicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   test.AttemptsTable,
			Columns: []string{test.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TestCreateBulk is the builder for creating many Test entities in bulk.
type TestCreateBulk struct {
	config
	err      error
	builders []*TestCreate
}

// Save creates the Test entities in the database.
func (_c *TestCreateBulk) Save(ctx context.Context) ([]*Test, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Test, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TestCreateBulk) SaveX(ctx context.Context) []*Test {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
