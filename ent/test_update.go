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
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/subject"
	"github.com/abhisek/examiz/ent/test"
	"github.com/abhisek/examiz/ent/topic"
)

// TestUpdate is the builder for updating Test entities.
type TestUpdate struct {
	config
	hooks    []Hook
	mutation *TestMutation
}

// Where appends a list predicates to the TestUpdate builder.
func (_u *TestUpdate) Where(ps ...predicate.Test) *TestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (_u *TestUpdate) SetTargetDifficulty(v test.TargetDifficulty) *TestUpdate {
	_u.mutation.SetTargetDifficulty(v)
	return _u
}

// SetNillableTargetDifficulty sets the "target_difficulty" field if the given value is not nil.
func (_u *TestUpdate) SetNillableTargetDifficulty(v *test.TargetDifficulty) *TestUpdate {
	if v != nil {
		_u.SetTargetDifficulty(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *TestUpdate) SetTestType(v test.TestType) *TestUpdate {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *TestUpdate) SetNillableTestType(v *test.TestType) *TestUpdate {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TestUpdate) SetTotalQuestions(v int) *TestUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TestUpdate) SetNillableTotalQuestions(v *int) *TestUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TestUpdate) AddTotalQuestions(v int) *TestUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *TestUpdate) SetTotalMarks(v int) *TestUpdate {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *TestUpdate) SetNillableTotalMarks(v *int) *TestUpdate {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *TestUpdate) AddTotalMarks(v int) *TestUpdate {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *TestUpdate) SetDurationMinutes(v int) *TestUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *TestUpdate) SetNillableDurationMinutes(v *int) *TestUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *TestUpdate) AddDurationMinutes(v int) *TestUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *TestUpdate) SetQuestionIds(v []int) *TestUpdate {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *TestUpdate) AppendQuestionIds(v []int) *TestUpdate {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TestUpdate) SetCreatedBy(v string) *TestUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TestUpdate) SetNillableCreatedBy(v *string) *TestUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *TestUpdate) SetSubjectID(v int) *TestUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *TestUpdate) SetNillableSubjectID(v *int) *TestUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TestUpdate) SetTopicID(v int) *TestUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TestUpdate) SetNillableTopicID(v *int) *TestUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *TestUpdate) ClearTopicID() *TestUpdate {
	_u.mutation.ClearTopicID()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *TestUpdate) SetSubject(v *Subject) *TestUpdate {
	return _u.SetSubjectID(v.ID)
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *TestUpdate) SetTopic(v *Topic) *TestUpdate {
	return _u.SetTopicID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *TestUpdate) AddAttemptIDs(ids ...int) *TestUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *TestUpdate) AddAttempts(v ...*Attempt) *TestUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the TestMutation object of the builder.
func (_u *TestUpdate) Mutation() *TestMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *TestUpdate) ClearSubject() *TestUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *TestUpdate) ClearTopic() *TestUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *TestUpdate) ClearAttempts() *TestUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *TestUpdate) RemoveAttemptIDs(ids ...int) *TestUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *TestUpdate) RemoveAttempts(v ...*Attempt) *TestUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestUpdate) check() error {
	if v, ok := _u.mutation.TargetDifficulty(); ok {
		if err := test.TargetDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "target_difficulty", err: fmt.Errorf(`ent: validator failed for field "Test.target_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestType(); ok {
		if err := test.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "Test.test_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := test.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Test.created_by": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Test.subject"`)
	}
	return nil
}

func (_u *TestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(test.Table, test.Columns, sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TargetDifficulty(); ok {
		_spec.SetField(test.FieldTargetDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(test.FieldTestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(test.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(test.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(test.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(test.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(test.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(test.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(test.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, test.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(test.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{test.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestUpdateOne is the builder for updating a single Test entity.
type TestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestMutation
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (_u *TestUpdateOne) SetTargetDifficulty(v test.TargetDifficulty) *TestUpdateOne {
	_u.mutation.SetTargetDifficulty(v)
	return _u
}

// SetNillableTargetDifficulty sets the "target_difficulty" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableTargetDifficulty(v *test.TargetDifficulty) *TestUpdateOne {
	if v != nil {
		_u.SetTargetDifficulty(*v)
	}
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *TestUpdateOne) SetTestType(v test.TestType) *TestUpdateOne {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableTestType(v *test.TestType) *TestUpdateOne {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TestUpdateOne) SetTotalQuestions(v int) *TestUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableTotalQuestions(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TestUpdateOne) AddTotalQuestions(v int) *TestUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *TestUpdateOne) SetTotalMarks(v int) *TestUpdateOne {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableTotalMarks(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *TestUpdateOne) AddTotalMarks(v int) *TestUpdateOne {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *TestUpdateOne) SetDurationMinutes(v int) *TestUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableDurationMinutes(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *TestUpdateOne) AddDurationMinutes(v int) *TestUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *TestUpdateOne) SetQuestionIds(v []int) *TestUpdateOne {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *TestUpdateOne) AppendQuestionIds(v []int) *TestUpdateOne {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *TestUpdateOne) SetCreatedBy(v string) *TestUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableCreatedBy(v *string) *TestUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *TestUpdateOne) SetSubjectID(v int) *TestUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableSubjectID(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TestUpdateOne) SetTopicID(v int) *TestUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TestUpdateOne) SetNillableTopicID(v *int) *TestUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// ClearTopicID clears the value of the "topic_id" field.
func (_u *TestUpdateOne) ClearTopicID() *TestUpdateOne {
	_u.mutation.ClearTopicID()
	return _u
}

// SetSubject sets the "subject" edge to the Subject entity.
func (_u *TestUpdateOne) SetSubject(v *Subject) *TestUpdateOne {
	return _u.SetSubjectID(v.ID)
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_u *TestUpdateOne) SetTopic(v *Topic) *TestUpdateOne {
	return _u.SetTopicID(v.ID)
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by IDs.
func (_u *TestUpdateOne) AddAttemptIDs(ids ...int) *TestUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the Attempt entity.
func (_u *TestUpdateOne) AddAttempts(v ...*Attempt) *TestUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// Mutation returns the TestMutation object of the builder.
func (_u *TestUpdateOne) Mutation() *TestMutation {
	return _u.mutation
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (_u *TestUpdateOne) ClearSubject() *TestUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (_u *TestUpdateOne) ClearTopic() *TestUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// ClearAttempts clears all "attempts" edges to the Attempt entity.
func (_u *TestUpdateOne) ClearAttempts() *TestUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to Attempt entities by IDs.
func (_u *TestUpdateOne) RemoveAttemptIDs(ids ...int) *TestUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to Attempt entities.
func (_u *TestUpdateOne) RemoveAttempts(v ...*Attempt) *TestUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// Where appends a list predicates to the TestUpdate builder.
func (_u *TestUpdateOne) Where(ps ...predicate.Test) *TestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestUpdateOne) Select(field string, fields ...string) *TestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Test entity.
func (_u *TestUpdateOne) Save(ctx context.Context) (*Test, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestUpdateOne) SaveX(ctx context.Context) *Test {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestUpdateOne) check() error {
	if v, ok := _u.mutation.TargetDifficulty(); ok {
		if err := test.TargetDifficultyValidator(v); err != nil {
			return &ValidationError{Name: "target_difficulty", err: fmt.Errorf(`ent: validator failed for field "Test.target_difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TestType(); ok {
		if err := test.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "Test.test_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := test.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "Test.created_by": %w`, err)}
		}
	}
	if _u.mutation.SubjectCleared() && len(_u.mutation.SubjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Test.subject"`)
	}
	return nil
}

func (_u *TestUpdateOne) sqlSave(ctx context.Context) (_node *Test, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(test.Table, test.Columns, sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Test.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, test.FieldID)
		for _, f := range fields {
			if !test.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != test.FieldID {
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
	if value, ok := _u.mutation.TargetDifficulty(); ok {
		_spec.SetField(test.FieldTargetDifficulty, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(test.FieldTestType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(test.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(test.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(test.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(test.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(test.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(test.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(test.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, test.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(test.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TopicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Test{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{test.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
