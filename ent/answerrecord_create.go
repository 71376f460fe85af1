// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/question"
)

// AnswerRecordCreate is the builder for creating a AnswerRecord entity.
type AnswerRecordCreate struct {
	config
	mutation *AnswerRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AnswerRecordCreate) SetUserID(v string) *AnswerRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSelectedOptionID sets the "selected_option_id" field.
func (_c *AnswerRecordCreate) SetSelectedOptionID(v int) *AnswerRecordCreate {
	_c.mutation.SetSelectedOptionID(v)
	return _c
}

// SetNillableSelectedOptionID sets the "selected_option_id" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableSelectedOptionID(v *int) *AnswerRecordCreate {
	if v != nil {
		_c.SetSelectedOptionID(*v)
	}
	return _c
}

// SetFirstSelectedOptionID sets the "first_selected_option_id" field.
func (_c *AnswerRecordCreate) SetFirstSelectedOptionID(v int) *AnswerRecordCreate {
	_c.mutation.SetFirstSelectedOptionID(v)
	return _c
}

// SetNillableFirstSelectedOptionID sets the "first_selected_option_id" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableFirstSelectedOptionID(v *int) *AnswerRecordCreate {
	if v != nil {
		_c.SetFirstSelectedOptionID(*v)
	}
	return _c
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_c *AnswerRecordCreate) SetTimeSpentSeconds(v int) *AnswerRecordCreate {
	_c.mutation.SetTimeSpentSeconds(v)
	return _c
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableTimeSpentSeconds(v *int) *AnswerRecordCreate {
	if v != nil {
		_c.SetTimeSpentSeconds(*v)
	}
	return _c
}

// SetSelectionChangeCount sets the "selection_change_count" field.
func (_c *AnswerRecordCreate) SetSelectionChangeCount(v int) *AnswerRecordCreate {
	_c.mutation.SetSelectionChangeCount(v)
	return _c
}

// SetNillableSelectionChangeCount sets the "selection_change_count" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableSelectionChangeCount(v *int) *AnswerRecordCreate {
	if v != nil {
		_c.SetSelectionChangeCount(*v)
	}
	return _c
}

// SetHoverCount sets the "hover_count" field.
func (_c *AnswerRecordCreate) SetHoverCount(v int) *AnswerRecordCreate {
	_c.mutation.SetHoverCount(v)
	return _c
}

// SetNillableHoverCount sets the "hover_count" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableHoverCount(v *int) *AnswerRecordCreate {
	if v != nil {
		_c.SetHoverCount(*v)
	}
	return _c
}

// SetEliminatedOptionIds sets the "eliminated_option_ids" field.
func (_c *AnswerRecordCreate) SetEliminatedOptionIds(v []int) *AnswerRecordCreate {
	_c.mutation.SetEliminatedOptionIds(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerRecordCreate) SetCorrect(v bool) *AnswerRecordCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableCorrect(v *bool) *AnswerRecordCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *AnswerRecordCreate) SetClassification(v answerrecord.Classification) *AnswerRecordCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableClassification(v *answerrecord.Classification) *AnswerRecordCreate {
	if v != nil {
		_c.SetClassification(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *AnswerRecordCreate) SetAnsweredAt(v time.Time) *AnswerRecordCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *AnswerRecordCreate) SetNillableAnsweredAt(v *time.Time) *AnswerRecordCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AnswerRecordCreate) SetAttemptID(v int) *AnswerRecordCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *AnswerRecordCreate) SetQuestionID(v int) *AnswerRecordCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_c *AnswerRecordCreate) SetAttempt(v *Attempt) *AnswerRecordCreate {
	return _c.SetAttemptID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *AnswerRecordCreate) SetQuestion(v *Question) *AnswerRecordCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_c *AnswerRecordCreate) Mutation() *AnswerRecordMutation {
	return _c.mutation
}

// Save creates the AnswerRecord in the database.
func (_c *AnswerRecordCreate) Save(ctx context.Context) (*AnswerRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerRecordCreate) SaveX(ctx context.Context) *AnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerRecordCreate) defaults() {
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		v := answerrecord.DefaultTimeSpentSeconds
		_c.mutation.SetTimeSpentSeconds(v)
	}
	if _, ok := _c.mutation.SelectionChangeCount(); !ok {
		v := answerrecord.DefaultSelectionChangeCount
		_c.mutation.SetSelectionChangeCount(v)
	}
	if _, ok := _c.mutation.HoverCount(); !ok {
		v := answerrecord.DefaultHoverCount
		_c.mutation.SetHoverCount(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := answerrecord.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Classification(); !ok {
		v := answerrecord.DefaultClassification
		_c.mutation.SetClassification(v)
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		v := answerrecord.DefaultAnsweredAt()
		_c.mutation.SetAnsweredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnswerRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := answerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeSpentSeconds(); !ok {
		return &ValidationError{Name: "time_spent_seconds", err: errors.New(`ent: missing required field "AnswerRecord.time_spent_seconds"`)}
	}
	if _, ok := _c.mutation.SelectionChangeCount(); !ok {
		return &ValidationError{Name: "selection_change_count", err: errors.New(`ent: missing required field "AnswerRecord.selection_change_count"`)}
	}
	if _, ok := _c.mutation.HoverCount(); !ok {
		return &ValidationError{Name: "hover_count", err: errors.New(`ent: missing required field "AnswerRecord.hover_count"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerRecord.correct"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "AnswerRecord.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := answerrecord.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "AnswerRecord.answered_at"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AnswerRecord.attempt_id"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AnswerRecord.question_id"`)}
	}
	if len(_c.mutation.AttemptIDs()) == 0 {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required edge "AnswerRecord.attempt"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "AnswerRecord.question"`)}
	}
	return nil
}

func (_c *AnswerRecordCreate) sqlSave(ctx context.Context) (*AnswerRecord, error) {
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

func (_c *AnswerRecordCreate) createSpec() (*AnswerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerrecord.Table, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SelectedOptionID(); ok {
		_spec.SetField(answerrecord.FieldSelectedOptionID, field.TypeInt, value)
		_node.SelectedOptionID = value
	}
	if value, ok := _c.mutation.FirstSelectedOptionID(); ok {
		_spec.SetField(answerrecord.FieldFirstSelectedOptionID, field.TypeInt, value)
		_node.FirstSelectedOptionID = value
	}
	if value, ok := _c.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentSeconds, field.TypeInt, value)
		_node.TimeSpentSeconds = value
	}
	if value, ok := _c.mutation.SelectionChangeCount(); ok {
		_spec.SetField(answerrecord.FieldSelectionChangeCount, field.TypeInt, value)
		_node.SelectionChangeCount = value
	}
	if value, ok := _c.mutation.HoverCount(); ok {
		_spec.SetField(answerrecord.FieldHoverCount, field.TypeInt, value)
		_node.HoverCount = value
	}
	if value, ok := _c.mutation.EliminatedOptionIds(); ok {
		_spec.SetField(answerrecord.FieldEliminatedOptionIds, field.TypeJSON, value)
		_node.EliminatedOptionIds = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerrecord.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(answerrecord.FieldClassification, field.TypeEnum, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(answerrecord.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	if nodes := _c.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerrecord.AttemptTable,
			Columns: []string{answerrecord.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AttemptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   answerrecord.QuestionTable,
			Columns: []string{answerrecord.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.QuestionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnswerRecordCreateBulk is the builder for creating many AnswerRecord entities in bulk.
type AnswerRecordCreateBulk struct {
	config
	err      error
	builders []*AnswerRecordCreate
}

// Save creates the AnswerRecord entities in the database.
func (_c *AnswerRecordCreateBulk) Save(ctx context.Context) ([]*AnswerRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerRecordMutation)
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
func (_c *AnswerRecordCreateBulk) SaveX(ctx context.Context) []*AnswerRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
