// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/question"
	"github.com/abhisek/examiz/ent/questionoption"
)

// QuestionOptionUpdate is the builder for updating QuestionOption entities.
type QuestionOptionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionOptionMutation
}

// Where appends a list predicates to the QuestionOptionUpdate builder.
func (_u *QuestionOptionUpdate) Where(ps ...predicate.QuestionOption) *QuestionOptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionOptionUpdate) SetText(v string) *QuestionOptionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableText(v *string) *QuestionOptionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionOptionUpdate) SetCorrect(v bool) *QuestionOptionUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableCorrect(v *bool) *QuestionOptionUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetOrd sets the "ord" field.
func (_u *QuestionOptionUpdate) SetOrd(v int) *QuestionOptionUpdate {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableOrd(v *int) *QuestionOptionUpdate {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *QuestionOptionUpdate) AddOrd(v int) *QuestionOptionUpdate {
	_u.mutation.AddOrd(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionOptionUpdate) SetQuestionID(v int) *QuestionOptionUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdate) SetNillableQuestionID(v *int) *QuestionOptionUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *QuestionOptionUpdate) SetQuestion(v *Question) *QuestionOptionUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_u *QuestionOptionUpdate) Mutation() *QuestionOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *QuestionOptionUpdate) ClearQuestion() *QuestionOptionUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionOptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionOptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := questionoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.text": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionOption.question"`)
	}
	return nil
}

func (_u *QuestionOptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoption.Table, questionoption.Columns, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(questionoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionoption.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ord(); ok {
		_spec.SetField(questionoption.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(questionoption.FieldOrd, field.TypeInt, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionOptionUpdateOne is the builder for updating a single QuestionOption entity.
type QuestionOptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionOptionMutation
}

// SetText sets the "text" field.
func (_u *QuestionOptionUpdateOne) SetText(v string) *QuestionOptionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableText(v *string) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionOptionUpdateOne) SetCorrect(v bool) *QuestionOptionUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableCorrect(v *bool) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetOrd sets the "ord" field.
func (_u *QuestionOptionUpdateOne) SetOrd(v int) *QuestionOptionUpdateOne {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableOrd(v *int) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *QuestionOptionUpdateOne) AddOrd(v int) *QuestionOptionUpdateOne {
	_u.mutation.AddOrd(v)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *QuestionOptionUpdateOne) SetQuestionID(v int) *QuestionOptionUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *QuestionOptionUpdateOne) SetNillableQuestionID(v *int) *QuestionOptionUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *QuestionOptionUpdateOne) SetQuestion(v *Question) *QuestionOptionUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionOptionMutation object of the builder.
func (_u *QuestionOptionUpdateOne) Mutation() *QuestionOptionMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *QuestionOptionUpdateOne) ClearQuestion() *QuestionOptionUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the QuestionOptionUpdate builder.
func (_u *QuestionOptionUpdateOne) Where(ps ...predicate.QuestionOption) *QuestionOptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionOptionUpdateOne) Select(field string, fields ...string) *QuestionOptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionOption entity.
func (_u *QuestionOptionUpdateOne) Save(ctx context.Context) (*QuestionOption, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionOptionUpdateOne) SaveX(ctx context.Context) *QuestionOption {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionOptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionOptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionOptionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := questionoption.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "QuestionOption.text": %w`, err)}
		}
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionOption.question"`)
	}
	return nil
}

func (_u *QuestionOptionUpdateOne) sqlSave(ctx context.Context) (_node *QuestionOption, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionoption.Table, questionoption.Columns, sqlgraph.NewFieldSpec(questionoption.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionOption.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionoption.FieldID)
		for _, f := range fields {
			if !questionoption.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionoption.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(questionoption.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionoption.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ord(); ok {
		_spec.SetField(questionoption.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(questionoption.FieldOrd, field.TypeInt, value)
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionoption.QuestionTable,
			Columns: []string{questionoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionOption{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionoption.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
