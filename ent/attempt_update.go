// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/metricsrecord"
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/test"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptUpdate) SetUserID(v string) *AttemptUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUserID(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptUpdate) SetStatus(v attempt.Status) *AttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableStatus(v *attempt.Status) *AttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdate) SetScore(v int) *AttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdate) AddScore(v int) *AttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *AttemptUpdate) SetTotalMarks(v int) *AttemptUpdate {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTotalMarks(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *AttemptUpdate) AddTotalMarks(v int) *AttemptUpdate {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdate) SetCompletedAt(v time.Time) *AttemptUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableCompletedAt(v *time.Time) *AttemptUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdate) ClearCompletedAt() *AttemptUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *AttemptUpdate) SetTestID(v int) *AttemptUpdate {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTestID(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *AttemptUpdate) SetTest(v *Test) *AttemptUpdate {
	return _u.SetTestID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the AnswerRecord entity by IDs.
func (_u *AttemptUpdate) AddAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the AnswerRecord entity.
func (_u *AttemptUpdate) AddAnswers(v ...*AnswerRecord) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// SetMetricsID sets the "metrics" edge to the MetricsRecord entity by ID.
func (_u *AttemptUpdate) SetMetricsID(id int) *AttemptUpdate {
	_u.mutation.SetMetricsID(id)
	return _u
}

// SetNillableMetricsID sets the "metrics" edge to the MetricsRecord entity by ID if the given value is not nil.
func (_u *AttemptUpdate) SetNillableMetricsID(id *int) *AttemptUpdate {
	if id != nil {
		_u = _u.SetMetricsID(*id)
	}
	return _u
}

// SetMetrics sets the "metrics" edge to the MetricsRecord entity.
func (_u *AttemptUpdate) SetMetrics(v *MetricsRecord) *AttemptUpdate {
	return _u.SetMetricsID(v.ID)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *AttemptUpdate) ClearTest() *AttemptUpdate {
	_u.mutation.ClearTest()
	return _u
}

// ClearAnswers clears all "answers" edges to the AnswerRecord entity.
func (_u *AttemptUpdate) ClearAnswers() *AttemptUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to AnswerRecord entities by IDs.
func (_u *AttemptUpdate) RemoveAnswerIDs(ids ...int) *AttemptUpdate {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to AnswerRecord entities.
func (_u *AttemptUpdate) RemoveAnswers(v ...*AnswerRecord) *AttemptUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearMetrics clears the "metrics" edge to the MetricsRecord entity.
func (_u *AttemptUpdate) ClearMetrics() *AttemptUpdate {
	_u.mutation.ClearMetrics()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := attempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Attempt.status": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.test"`)
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(attempt.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(attempt.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TestTable,
			Columns: []string{attempt.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TestTable,
			Columns: []string{attempt.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   attempt.MetricsTable,
			Columns: []string{attempt.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metricsrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   attempt.MetricsTable,
			Columns: []string{attempt.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metricsrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetUserID sets the "user_id" field.
func (_u *AttemptUpdateOne) SetUserID(v string) *AttemptUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUserID(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AttemptUpdateOne) SetStatus(v attempt.Status) *AttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableStatus(v *attempt.Status) *AttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdateOne) SetScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdateOne) AddScore(v int) *AttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalMarks sets the "total_marks" field.
func (_u *AttemptUpdateOne) SetTotalMarks(v int) *AttemptUpdateOne {
	_u.mutation.ResetTotalMarks()
	_u.mutation.SetTotalMarks(v)
	return _u
}

// SetNillableTotalMarks sets the "total_marks" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTotalMarks(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTotalMarks(*v)
	}
	return _u
}

// AddTotalMarks adds value to the "total_marks" field.
func (_u *AttemptUpdateOne) AddTotalMarks(v int) *AttemptUpdateOne {
	_u.mutation.AddTotalMarks(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AttemptUpdateOne) SetCompletedAt(v time.Time) *AttemptUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableCompletedAt(v *time.Time) *AttemptUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AttemptUpdateOne) ClearCompletedAt() *AttemptUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTestID sets the "test_id" field.
func (_u *AttemptUpdateOne) SetTestID(v int) *AttemptUpdateOne {
	_u.mutation.SetTestID(v)
	return _u
}

// SetNillableTestID sets the "test_id" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTestID(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTestID(*v)
	}
	return _u
}

// SetTest sets the "test" edge to the Test entity.
func (_u *AttemptUpdateOne) SetTest(v *Test) *AttemptUpdateOne {
	return _u.SetTestID(v.ID)
}

// AddAnswerIDs adds the "answers" edge to the AnswerRecord entity by IDs.
func (_u *AttemptUpdateOne) AddAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.AddAnswerIDs(ids...)
	return _u
}

// AddAnswers adds the "answers" edges to the AnswerRecord entity.
func (_u *AttemptUpdateOne) AddAnswers(v ...*AnswerRecord) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnswerIDs(ids...)
}

// SetMetricsID sets the "metrics" edge to the MetricsRecord entity by ID.
func (_u *AttemptUpdateOne) SetMetricsID(id int) *AttemptUpdateOne {
	_u.mutation.SetMetricsID(id)
	return _u
}

// SetNillableMetricsID sets the "metrics" edge to the MetricsRecord entity by ID if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableMetricsID(id *int) *AttemptUpdateOne {
	if id != nil {
		_u = _u.SetMetricsID(*id)
	}
	return _u
}

// SetMetrics sets the "metrics" edge to the MetricsRecord entity.
func (_u *AttemptUpdateOne) SetMetrics(v *MetricsRecord) *AttemptUpdateOne {
	return _u.SetMetricsID(v.ID)
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// ClearTest clears the "test" edge to the Test entity.
func (_u *AttemptUpdateOne) ClearTest() *AttemptUpdateOne {
	_u.mutation.ClearTest()
	return _u
}

// ClearAnswers clears all "answers" edges to the AnswerRecord entity.
func (_u *AttemptUpdateOne) ClearAnswers() *AttemptUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// RemoveAnswerIDs removes the "answers" edge to AnswerRecord entities by IDs.
func (_u *AttemptUpdateOne) RemoveAnswerIDs(ids ...int) *AttemptUpdateOne {
	_u.mutation.RemoveAnswerIDs(ids...)
	return _u
}

// RemoveAnswers removes "answers" edges to AnswerRecord entities.
func (_u *AttemptUpdateOne) RemoveAnswers(v ...*AnswerRecord) *AttemptUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnswerIDs(ids...)
}

// ClearMetrics clears the "metrics" edge to the MetricsRecord entity.
func (_u *AttemptUpdateOne) ClearMetrics() *AttemptUpdateOne {
	_u.mutation.ClearMetrics()
	return _u
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := attempt.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Attempt.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := attempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Attempt.status": %w`, err)}
		}
	}
	if _u.mutation.TestCleared() && len(_u.mutation.TestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attempt.test"`)
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
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
		_spec.SetField(attempt.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(attempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalMarks(); ok {
		_spec.SetField(attempt.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMarks(); ok {
		_spec.AddField(attempt.FieldTotalMarks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(attempt.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(attempt.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.TestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TestTable,
			Columns: []string{attempt.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attempt.TestTable,
			Columns: []string{attempt.TestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(test.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnswersIDs(); len(nodes) > 0 && !_u.mutation.AnswersCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnswersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attempt.AnswersTable,
			Columns: []string{attempt.AnswersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   attempt.MetricsTable,
			Columns: []string{attempt.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metricsrecord.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   attempt.MetricsTable,
			Columns: []string{attempt.MetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(metricsrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
