// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/question"
)

// AnswerRecordUpdate is the builder for updating AnswerRecord entities.
type AnswerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdate) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnswerRecordUpdate) SetUserID(v string) *AnswerRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableUserID(v *string) *AnswerRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSelectedOptionID sets the "selected_option_id" field.
func (_u *AnswerRecordUpdate) SetSelectedOptionID(v int) *AnswerRecordUpdate {
	_u.mutation.ResetSelectedOptionID()
	_u.mutation.SetSelectedOptionID(v)
	return _u
}

// SetNillableSelectedOptionID sets the "selected_option_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableSelectedOptionID(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetSelectedOptionID(*v)
	}
	return _u
}

// AddSelectedOptionID adds value to the "selected_option_id" field.
func (_u *AnswerRecordUpdate) AddSelectedOptionID(v int) *AnswerRecordUpdate {
	_u.mutation.AddSelectedOptionID(v)
	return _u
}

// ClearSelectedOptionID clears the value of the "selected_option_id" field.
func (_u *AnswerRecordUpdate) ClearSelectedOptionID() *AnswerRecordUpdate {
	_u.mutation.ClearSelectedOptionID()
	return _u
}

// SetFirstSelectedOptionID sets the "first_selected_option_id" field.
func (_u *AnswerRecordUpdate) SetFirstSelectedOptionID(v int) *AnswerRecordUpdate {
	_u.mutation.ResetFirstSelectedOptionID()
	_u.mutation.SetFirstSelectedOptionID(v)
	return _u
}

// SetNillableFirstSelectedOptionID sets the "first_selected_option_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableFirstSelectedOptionID(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetFirstSelectedOptionID(*v)
	}
	return _u
}

// AddFirstSelectedOptionID adds value to the "first_selected_option_id" field.
func (_u *AnswerRecordUpdate) AddFirstSelectedOptionID(v int) *AnswerRecordUpdate {
	_u.mutation.AddFirstSelectedOptionID(v)
	return _u
}

// ClearFirstSelectedOptionID clears the value of the "first_selected_option_id" field.
func (_u *AnswerRecordUpdate) ClearFirstSelectedOptionID() *AnswerRecordUpdate {
	_u.mutation.ClearFirstSelectedOptionID()
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *AnswerRecordUpdate) SetTimeSpentSeconds(v int) *AnswerRecordUpdate {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableTimeSpentSeconds(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *AnswerRecordUpdate) AddTimeSpentSeconds(v int) *AnswerRecordUpdate {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetSelectionChangeCount sets the "selection_change_count" field.
func (_u *AnswerRecordUpdate) SetSelectionChangeCount(v int) *AnswerRecordUpdate {
	_u.mutation.ResetSelectionChangeCount()
	_u.mutation.SetSelectionChangeCount(v)
	return _u
}

// SetNillableSelectionChangeCount sets the "selection_change_count" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableSelectionChangeCount(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetSelectionChangeCount(*v)
	}
	return _u
}

// AddSelectionChangeCount adds value to the "selection_change_count" field.
func (_u *AnswerRecordUpdate) AddSelectionChangeCount(v int) *AnswerRecordUpdate {
	_u.mutation.AddSelectionChangeCount(v)
	return _u
}

// SetHoverCount sets the "hover_count" field.
func (_u *AnswerRecordUpdate) SetHoverCount(v int) *AnswerRecordUpdate {
	_u.mutation.ResetHoverCount()
	_u.mutation.SetHoverCount(v)
	return _u
}

// SetNillableHoverCount sets the "hover_count" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableHoverCount(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetHoverCount(*v)
	}
	return _u
}

// AddHoverCount adds value to the "hover_count" field.
func (_u *AnswerRecordUpdate) AddHoverCount(v int) *AnswerRecordUpdate {
	_u.mutation.AddHoverCount(v)
	return _u
}

// SetEliminatedOptionIds sets the "eliminated_option_ids" field.
func (_u *AnswerRecordUpdate) SetEliminatedOptionIds(v []int) *AnswerRecordUpdate {
	_u.mutation.SetEliminatedOptionIds(v)
	return _u
}

// AppendEliminatedOptionIds appends value to the "eliminated_option_ids" field.
func (_u *AnswerRecordUpdate) AppendEliminatedOptionIds(v []int) *AnswerRecordUpdate {
	_u.mutation.AppendEliminatedOptionIds(v)
	return _u
}

// ClearEliminatedOptionIds clears the value of the "eliminated_option_ids" field.
func (_u *AnswerRecordUpdate) ClearEliminatedOptionIds() *AnswerRecordUpdate {
	_u.mutation.ClearEliminatedOptionIds()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerRecordUpdate) SetCorrect(v bool) *AnswerRecordUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableCorrect(v *bool) *AnswerRecordUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AnswerRecordUpdate) SetClassification(v answerrecord.Classification) *AnswerRecordUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableClassification(v *answerrecord.Classification) *AnswerRecordUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AnswerRecordUpdate) SetAttemptID(v int) *AnswerRecordUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableAttemptID(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerRecordUpdate) SetQuestionID(v int) *AnswerRecordUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerRecordUpdate) SetNillableQuestionID(v *int) *AnswerRecordUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *AnswerRecordUpdate) SetAttempt(v *Attempt) *AnswerRecordUpdate {
	return _u.SetAttemptID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerRecordUpdate) SetQuestion(v *Question) *AnswerRecordUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdate) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *AnswerRecordUpdate) ClearAttempt() *AnswerRecordUpdate {
	_u.mutation.ClearAttempt()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerRecordUpdate) ClearQuestion() *AnswerRecordUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := answerrecord.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.classification": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerRecord.attempt"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerRecord.question"`)
	}
	return nil
}

func (_u *AnswerRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOptionID(); ok {
		_spec.SetField(answerrecord.FieldSelectedOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedOptionID(); ok {
		_spec.AddField(answerrecord.FieldSelectedOptionID, field.TypeInt, value)
	}
	if _u.mutation.SelectedOptionIDCleared() {
		_spec.ClearField(answerrecord.FieldSelectedOptionID, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstSelectedOptionID(); ok {
		_spec.SetField(answerrecord.FieldFirstSelectedOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstSelectedOptionID(); ok {
		_spec.AddField(answerrecord.FieldFirstSelectedOptionID, field.TypeInt, value)
	}
	if _u.mutation.FirstSelectedOptionIDCleared() {
		_spec.ClearField(answerrecord.FieldFirstSelectedOptionID, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(answerrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectionChangeCount(); ok {
		_spec.SetField(answerrecord.FieldSelectionChangeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectionChangeCount(); ok {
		_spec.AddField(answerrecord.FieldSelectionChangeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HoverCount(); ok {
		_spec.SetField(answerrecord.FieldHoverCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHoverCount(); ok {
		_spec.AddField(answerrecord.FieldHoverCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EliminatedOptionIds(); ok {
		_spec.SetField(answerrecord.FieldEliminatedOptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEliminatedOptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerrecord.FieldEliminatedOptionIds, value)
		})
	}
	if _u.mutation.EliminatedOptionIdsCleared() {
		_spec.ClearField(answerrecord.FieldEliminatedOptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerrecord.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(answerrecord.FieldClassification, field.TypeEnum, value)
	}
	if _u.mutation.AttemptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerRecordUpdateOne is the builder for updating a single AnswerRecord entity.
type AnswerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnswerRecordUpdateOne) SetUserID(v string) *AnswerRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableUserID(v *string) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSelectedOptionID sets the "selected_option_id" field.
func (_u *AnswerRecordUpdateOne) SetSelectedOptionID(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetSelectedOptionID()
	_u.mutation.SetSelectedOptionID(v)
	return _u
}

// SetNillableSelectedOptionID sets the "selected_option_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableSelectedOptionID(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetSelectedOptionID(*v)
	}
	return _u
}

// AddSelectedOptionID adds value to the "selected_option_id" field.
func (_u *AnswerRecordUpdateOne) AddSelectedOptionID(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddSelectedOptionID(v)
	return _u
}

// ClearSelectedOptionID clears the value of the "selected_option_id" field.
func (_u *AnswerRecordUpdateOne) ClearSelectedOptionID() *AnswerRecordUpdateOne {
	_u.mutation.ClearSelectedOptionID()
	return _u
}

// SetFirstSelectedOptionID sets the "first_selected_option_id" field.
func (_u *AnswerRecordUpdateOne) SetFirstSelectedOptionID(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetFirstSelectedOptionID()
	_u.mutation.SetFirstSelectedOptionID(v)
	return _u
}

// SetNillableFirstSelectedOptionID sets the "first_selected_option_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableFirstSelectedOptionID(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetFirstSelectedOptionID(*v)
	}
	return _u
}

// AddFirstSelectedOptionID adds value to the "first_selected_option_id" field.
func (_u *AnswerRecordUpdateOne) AddFirstSelectedOptionID(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddFirstSelectedOptionID(v)
	return _u
}

// ClearFirstSelectedOptionID clears the value of the "first_selected_option_id" field.
func (_u *AnswerRecordUpdateOne) ClearFirstSelectedOptionID() *AnswerRecordUpdateOne {
	_u.mutation.ClearFirstSelectedOptionID()
	return _u
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (_u *AnswerRecordUpdateOne) SetTimeSpentSeconds(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetTimeSpentSeconds()
	_u.mutation.SetTimeSpentSeconds(v)
	return _u
}

// SetNillableTimeSpentSeconds sets the "time_spent_seconds" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableTimeSpentSeconds(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetTimeSpentSeconds(*v)
	}
	return _u
}

// AddTimeSpentSeconds adds value to the "time_spent_seconds" field.
func (_u *AnswerRecordUpdateOne) AddTimeSpentSeconds(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddTimeSpentSeconds(v)
	return _u
}

// SetSelectionChangeCount sets the "selection_change_count" field.
func (_u *AnswerRecordUpdateOne) SetSelectionChangeCount(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetSelectionChangeCount()
	_u.mutation.SetSelectionChangeCount(v)
	return _u
}

// SetNillableSelectionChangeCount sets the "selection_change_count" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableSelectionChangeCount(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetSelectionChangeCount(*v)
	}
	return _u
}

// AddSelectionChangeCount adds value to the "selection_change_count" field.
func (_u *AnswerRecordUpdateOne) AddSelectionChangeCount(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddSelectionChangeCount(v)
	return _u
}

// SetHoverCount sets the "hover_count" field.
func (_u *AnswerRecordUpdateOne) SetHoverCount(v int) *AnswerRecordUpdateOne {
	_u.mutation.ResetHoverCount()
	_u.mutation.SetHoverCount(v)
	return _u
}

// SetNillableHoverCount sets the "hover_count" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableHoverCount(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetHoverCount(*v)
	}
	return _u
}

// AddHoverCount adds value to the "hover_count" field.
func (_u *AnswerRecordUpdateOne) AddHoverCount(v int) *AnswerRecordUpdateOne {
	_u.mutation.AddHoverCount(v)
	return _u
}

// SetEliminatedOptionIds sets the "eliminated_option_ids" field.
func (_u *AnswerRecordUpdateOne) SetEliminatedOptionIds(v []int) *AnswerRecordUpdateOne {
	_u.mutation.SetEliminatedOptionIds(v)
	return _u
}

// AppendEliminatedOptionIds appends value to the "eliminated_option_ids" field.
func (_u *AnswerRecordUpdateOne) AppendEliminatedOptionIds(v []int) *AnswerRecordUpdateOne {
	_u.mutation.AppendEliminatedOptionIds(v)
	return _u
}

// ClearEliminatedOptionIds clears the value of the "eliminated_option_ids" field.
func (_u *AnswerRecordUpdateOne) ClearEliminatedOptionIds() *AnswerRecordUpdateOne {
	_u.mutation.ClearEliminatedOptionIds()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerRecordUpdateOne) SetCorrect(v bool) *AnswerRecordUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableCorrect(v *bool) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetClassification sets the "classification" field.
func (_u *AnswerRecordUpdateOne) SetClassification(v answerrecord.Classification) *AnswerRecordUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableClassification(v *answerrecord.Classification) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AnswerRecordUpdateOne) SetAttemptID(v int) *AnswerRecordUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableAttemptID(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerRecordUpdateOne) SetQuestionID(v int) *AnswerRecordUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerRecordUpdateOne) SetNillableQuestionID(v *int) *AnswerRecordUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *AnswerRecordUpdateOne) SetAttempt(v *Attempt) *AnswerRecordUpdateOne {
	return _u.SetAttemptID(v.ID)
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *AnswerRecordUpdateOne) SetQuestion(v *Question) *AnswerRecordUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (_u *AnswerRecordUpdateOne) Mutation() *AnswerRecordMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *AnswerRecordUpdateOne) ClearAttempt() *AnswerRecordUpdateOne {
	_u.mutation.ClearAttempt()
	return _u
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *AnswerRecordUpdateOne) ClearQuestion() *AnswerRecordUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (_u *AnswerRecordUpdateOne) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerRecordUpdateOne) Select(field string, fields ...string) *AnswerRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerRecord entity.
func (_u *AnswerRecordUpdateOne) Save(ctx context.Context) (*AnswerRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) SaveX(ctx context.Context) *AnswerRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := answerrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := answerrecord.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "AnswerRecord.classification": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerRecord.attempt"`)
	}
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AnswerRecord.question"`)
	}
	return nil
}

func (_u *AnswerRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnswerRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerrecord.FieldID)
		for _, f := range fields {
			if !answerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerrecord.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOptionID(); ok {
		_spec.SetField(answerrecord.FieldSelectedOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectedOptionID(); ok {
		_spec.AddField(answerrecord.FieldSelectedOptionID, field.TypeInt, value)
	}
	if _u.mutation.SelectedOptionIDCleared() {
		_spec.ClearField(answerrecord.FieldSelectedOptionID, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstSelectedOptionID(); ok {
		_spec.SetField(answerrecord.FieldFirstSelectedOptionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstSelectedOptionID(); ok {
		_spec.AddField(answerrecord.FieldFirstSelectedOptionID, field.TypeInt, value)
	}
	if _u.mutation.FirstSelectedOptionIDCleared() {
		_spec.ClearField(answerrecord.FieldFirstSelectedOptionID, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeSpentSeconds(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSeconds(); ok {
		_spec.AddField(answerrecord.FieldTimeSpentSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelectionChangeCount(); ok {
		_spec.SetField(answerrecord.FieldSelectionChangeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSelectionChangeCount(); ok {
		_spec.AddField(answerrecord.FieldSelectionChangeCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HoverCount(); ok {
		_spec.SetField(answerrecord.FieldHoverCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHoverCount(); ok {
		_spec.AddField(answerrecord.FieldHoverCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EliminatedOptionIds(); ok {
		_spec.SetField(answerrecord.FieldEliminatedOptionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEliminatedOptionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, answerrecord.FieldEliminatedOptionIds, value)
		})
	}
	if _u.mutation.EliminatedOptionIdsCleared() {
		_spec.ClearField(answerrecord.FieldEliminatedOptionIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerrecord.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(answerrecord.FieldClassification, field.TypeEnum, value)
	}
	if _u.mutation.AttemptCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnswerRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
