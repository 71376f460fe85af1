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
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/metricsrecord"
	"github.com/abhisek/examiz/ent/predicate"
)

// MetricsRecordUpdate is the builder for updating MetricsRecord entities.
type MetricsRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MetricsRecordMutation
}

// Where appends a list predicates to the MetricsRecordUpdate builder.
func (_u *MetricsRecordUpdate) Where(ps ...predicate.MetricsRecord) *MetricsRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MetricsRecordUpdate) SetUserID(v string) *MetricsRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableUserID(v *string) *MetricsRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MetricsRecordUpdate) SetAccuracy(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableAccuracy(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MetricsRecordUpdate) AddAccuracy(v float64) *MetricsRecordUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetAttemptRatio sets the "attempt_ratio" field.
func (_u *MetricsRecordUpdate) SetAttemptRatio(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetAttemptRatio()
	_u.mutation.SetAttemptRatio(v)
	return _u
}

// SetNillableAttemptRatio sets the "attempt_ratio" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableAttemptRatio(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetAttemptRatio(*v)
	}
	return _u
}

// AddAttemptRatio adds value to the "attempt_ratio" field.
func (_u *MetricsRecordUpdate) AddAttemptRatio(v float64) *MetricsRecordUpdate {
	_u.mutation.AddAttemptRatio(v)
	return _u
}

// SetNegativeMarks sets the "negative_marks" field.
func (_u *MetricsRecordUpdate) SetNegativeMarks(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetNegativeMarks()
	_u.mutation.SetNegativeMarks(v)
	return _u
}

// SetNillableNegativeMarks sets the "negative_marks" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableNegativeMarks(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetNegativeMarks(*v)
	}
	return _u
}

// AddNegativeMarks adds value to the "negative_marks" field.
func (_u *MetricsRecordUpdate) AddNegativeMarks(v float64) *MetricsRecordUpdate {
	_u.mutation.AddNegativeMarks(v)
	return _u
}

// SetFirstInstinctAccuracy sets the "first_instinct_accuracy" field.
func (_u *MetricsRecordUpdate) SetFirstInstinctAccuracy(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetFirstInstinctAccuracy()
	_u.mutation.SetFirstInstinctAccuracy(v)
	return _u
}

// SetNillableFirstInstinctAccuracy sets the "first_instinct_accuracy" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableFirstInstinctAccuracy(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetFirstInstinctAccuracy(*v)
	}
	return _u
}

// AddFirstInstinctAccuracy adds value to the "first_instinct_accuracy" field.
func (_u *MetricsRecordUpdate) AddFirstInstinctAccuracy(v float64) *MetricsRecordUpdate {
	_u.mutation.AddFirstInstinctAccuracy(v)
	return _u
}

// SetEliminationEfficiency sets the "elimination_efficiency" field.
func (_u *MetricsRecordUpdate) SetEliminationEfficiency(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetEliminationEfficiency()
	_u.mutation.SetEliminationEfficiency(v)
	return _u
}

// SetNillableEliminationEfficiency sets the "elimination_efficiency" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableEliminationEfficiency(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetEliminationEfficiency(*v)
	}
	return _u
}

// AddEliminationEfficiency adds value to the "elimination_efficiency" field.
func (_u *MetricsRecordUpdate) AddEliminationEfficiency(v float64) *MetricsRecordUpdate {
	_u.mutation.AddEliminationEfficiency(v)
	return _u
}

// SetImpulsiveErrorCount sets the "impulsive_error_count" field.
func (_u *MetricsRecordUpdate) SetImpulsiveErrorCount(v int) *MetricsRecordUpdate {
	_u.mutation.ResetImpulsiveErrorCount()
	_u.mutation.SetImpulsiveErrorCount(v)
	return _u
}

// SetNillableImpulsiveErrorCount sets the "impulsive_error_count" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableImpulsiveErrorCount(v *int) *MetricsRecordUpdate {
	if v != nil {
		_u.SetImpulsiveErrorCount(*v)
	}
	return _u
}

// AddImpulsiveErrorCount adds value to the "impulsive_error_count" field.
func (_u *MetricsRecordUpdate) AddImpulsiveErrorCount(v int) *MetricsRecordUpdate {
	_u.mutation.AddImpulsiveErrorCount(v)
	return _u
}

// SetOverthinkingErrorCount sets the "overthinking_error_count" field.
func (_u *MetricsRecordUpdate) SetOverthinkingErrorCount(v int) *MetricsRecordUpdate {
	_u.mutation.ResetOverthinkingErrorCount()
	_u.mutation.SetOverthinkingErrorCount(v)
	return _u
}

// SetNillableOverthinkingErrorCount sets the "overthinking_error_count" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableOverthinkingErrorCount(v *int) *MetricsRecordUpdate {
	if v != nil {
		_u.SetOverthinkingErrorCount(*v)
	}
	return _u
}

// AddOverthinkingErrorCount adds value to the "overthinking_error_count" field.
func (_u *MetricsRecordUpdate) AddOverthinkingErrorCount(v int) *MetricsRecordUpdate {
	_u.mutation.AddOverthinkingErrorCount(v)
	return _u
}

// SetGuessProbability sets the "guess_probability" field.
func (_u *MetricsRecordUpdate) SetGuessProbability(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetGuessProbability()
	_u.mutation.SetGuessProbability(v)
	return _u
}

// SetNillableGuessProbability sets the "guess_probability" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableGuessProbability(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetGuessProbability(*v)
	}
	return _u
}

// AddGuessProbability adds value to the "guess_probability" field.
func (_u *MetricsRecordUpdate) AddGuessProbability(v float64) *MetricsRecordUpdate {
	_u.mutation.AddGuessProbability(v)
	return _u
}

// SetCognitiveBreakdown sets the "cognitive_breakdown" field.
func (_u *MetricsRecordUpdate) SetCognitiveBreakdown(v map[string]float64) *MetricsRecordUpdate {
	_u.mutation.SetCognitiveBreakdown(v)
	return _u
}

// SetFatigueCurve sets the "fatigue_curve" field.
func (_u *MetricsRecordUpdate) SetFatigueCurve(v map[string]interface{}) *MetricsRecordUpdate {
	_u.mutation.SetFatigueCurve(v)
	return _u
}

// SetRiskAppetite sets the "risk_appetite" field.
func (_u *MetricsRecordUpdate) SetRiskAppetite(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetRiskAppetite()
	_u.mutation.SetRiskAppetite(v)
	return _u
}

// SetNillableRiskAppetite sets the "risk_appetite" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableRiskAppetite(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetRiskAppetite(*v)
	}
	return _u
}

// AddRiskAppetite adds value to the "risk_appetite" field.
func (_u *MetricsRecordUpdate) AddRiskAppetite(v float64) *MetricsRecordUpdate {
	_u.mutation.AddRiskAppetite(v)
	return _u
}

// SetConfidenceIndex sets the "confidence_index" field.
func (_u *MetricsRecordUpdate) SetConfidenceIndex(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetConfidenceIndex()
	_u.mutation.SetConfidenceIndex(v)
	return _u
}

// SetNillableConfidenceIndex sets the "confidence_index" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableConfidenceIndex(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetConfidenceIndex(*v)
	}
	return _u
}

// AddConfidenceIndex adds value to the "confidence_index" field.
func (_u *MetricsRecordUpdate) AddConfidenceIndex(v float64) *MetricsRecordUpdate {
	_u.mutation.AddConfidenceIndex(v)
	return _u
}

// SetConsistencyIndex sets the "consistency_index" field.
func (_u *MetricsRecordUpdate) SetConsistencyIndex(v float64) *MetricsRecordUpdate {
	_u.mutation.ResetConsistencyIndex()
	_u.mutation.SetConsistencyIndex(v)
	return _u
}

// SetNillableConsistencyIndex sets the "consistency_index" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableConsistencyIndex(v *float64) *MetricsRecordUpdate {
	if v != nil {
		_u.SetConsistencyIndex(*v)
	}
	return _u
}

// AddConsistencyIndex adds value to the "consistency_index" field.
func (_u *MetricsRecordUpdate) AddConsistencyIndex(v float64) *MetricsRecordUpdate {
	_u.mutation.AddConsistencyIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MetricsRecordUpdate) SetCreatedAt(v time.Time) *MetricsRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableCreatedAt(v *time.Time) *MetricsRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *MetricsRecordUpdate) SetAttemptID(v int) *MetricsRecordUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *MetricsRecordUpdate) SetNillableAttemptID(v *int) *MetricsRecordUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *MetricsRecordUpdate) SetAttempt(v *Attempt) *MetricsRecordUpdate {
	return _u.SetAttemptID(v.ID)
}

// Mutation returns the MetricsRecordMutation object of the builder.
func (_u *MetricsRecordUpdate) Mutation() *MetricsRecordMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *MetricsRecordUpdate) ClearAttempt() *MetricsRecordUpdate {
	_u.mutation.ClearAttempt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MetricsRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricsRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MetricsRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricsRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricsRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := metricsrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MetricsRecord.user_id": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MetricsRecord.attempt"`)
	}
	return nil
}

func (_u *MetricsRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricsrecord.Table, metricsrecord.Columns, sqlgraph.NewFieldSpec(metricsrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(metricsrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(metricsrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(metricsrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptRatio(); ok {
		_spec.SetField(metricsrecord.FieldAttemptRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttemptRatio(); ok {
		_spec.AddField(metricsrecord.FieldAttemptRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NegativeMarks(); ok {
		_spec.SetField(metricsrecord.FieldNegativeMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNegativeMarks(); ok {
		_spec.AddField(metricsrecord.FieldNegativeMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstInstinctAccuracy(); ok {
		_spec.SetField(metricsrecord.FieldFirstInstinctAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstInstinctAccuracy(); ok {
		_spec.AddField(metricsrecord.FieldFirstInstinctAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EliminationEfficiency(); ok {
		_spec.SetField(metricsrecord.FieldEliminationEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEliminationEfficiency(); ok {
		_spec.AddField(metricsrecord.FieldEliminationEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImpulsiveErrorCount(); ok {
		_spec.SetField(metricsrecord.FieldImpulsiveErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpulsiveErrorCount(); ok {
		_spec.AddField(metricsrecord.FieldImpulsiveErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverthinkingErrorCount(); ok {
		_spec.SetField(metricsrecord.FieldOverthinkingErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverthinkingErrorCount(); ok {
		_spec.AddField(metricsrecord.FieldOverthinkingErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GuessProbability(); ok {
		_spec.SetField(metricsrecord.FieldGuessProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGuessProbability(); ok {
		_spec.AddField(metricsrecord.FieldGuessProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CognitiveBreakdown(); ok {
		_spec.SetField(metricsrecord.FieldCognitiveBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.FatigueCurve(); ok {
		_spec.SetField(metricsrecord.FieldFatigueCurve, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskAppetite(); ok {
		_spec.SetField(metricsrecord.FieldRiskAppetite, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskAppetite(); ok {
		_spec.AddField(metricsrecord.FieldRiskAppetite, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceIndex(); ok {
		_spec.SetField(metricsrecord.FieldConfidenceIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceIndex(); ok {
		_spec.AddField(metricsrecord.FieldConfidenceIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsistencyIndex(); ok {
		_spec.SetField(metricsrecord.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsistencyIndex(); ok {
		_spec.AddField(metricsrecord.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(metricsrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttemptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   metricsrecord.AttemptTable,
			Columns: []string{metricsrecord.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   metricsrecord.AttemptTable,
			Columns: []string{metricsrecord.AttemptColumn},
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
			err = &NotFoundError{metricsrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MetricsRecordUpdateOne is the builder for updating a single MetricsRecord entity.
type MetricsRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MetricsRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *MetricsRecordUpdateOne) SetUserID(v string) *MetricsRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableUserID(v *string) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *MetricsRecordUpdateOne) SetAccuracy(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableAccuracy(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *MetricsRecordUpdateOne) AddAccuracy(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetAttemptRatio sets the "attempt_ratio" field.
func (_u *MetricsRecordUpdateOne) SetAttemptRatio(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetAttemptRatio()
	_u.mutation.SetAttemptRatio(v)
	return _u
}

// SetNillableAttemptRatio sets the "attempt_ratio" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableAttemptRatio(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetAttemptRatio(*v)
	}
	return _u
}

// AddAttemptRatio adds value to the "attempt_ratio" field.
func (_u *MetricsRecordUpdateOne) AddAttemptRatio(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddAttemptRatio(v)
	return _u
}

// SetNegativeMarks sets the "negative_marks" field.
func (_u *MetricsRecordUpdateOne) SetNegativeMarks(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetNegativeMarks()
	_u.mutation.SetNegativeMarks(v)
	return _u
}

// SetNillableNegativeMarks sets the "negative_marks" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableNegativeMarks(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetNegativeMarks(*v)
	}
	return _u
}

// AddNegativeMarks adds value to the "negative_marks" field.
func (_u *MetricsRecordUpdateOne) AddNegativeMarks(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddNegativeMarks(v)
	return _u
}

// SetFirstInstinctAccuracy sets the "first_instinct_accuracy" field.
func (_u *MetricsRecordUpdateOne) SetFirstInstinctAccuracy(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetFirstInstinctAccuracy()
	_u.mutation.SetFirstInstinctAccuracy(v)
	return _u
}

// SetNillableFirstInstinctAccuracy sets the "first_instinct_accuracy" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableFirstInstinctAccuracy(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetFirstInstinctAccuracy(*v)
	}
	return _u
}

// AddFirstInstinctAccuracy adds value to the "first_instinct_accuracy" field.
func (_u *MetricsRecordUpdateOne) AddFirstInstinctAccuracy(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddFirstInstinctAccuracy(v)
	return _u
}

// SetEliminationEfficiency sets the "elimination_efficiency" field.
func (_u *MetricsRecordUpdateOne) SetEliminationEfficiency(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetEliminationEfficiency()
	_u.mutation.SetEliminationEfficiency(v)
	return _u
}

// SetNillableEliminationEfficiency sets the "elimination_efficiency" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableEliminationEfficiency(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetEliminationEfficiency(*v)
	}
	return _u
}

// AddEliminationEfficiency adds value to the "elimination_efficiency" field.
func (_u *MetricsRecordUpdateOne) AddEliminationEfficiency(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddEliminationEfficiency(v)
	return _u
}

// SetImpulsiveErrorCount sets the "impulsive_error_count" field.
func (_u *MetricsRecordUpdateOne) SetImpulsiveErrorCount(v int) *MetricsRecordUpdateOne {
	_u.mutation.ResetImpulsiveErrorCount()
	_u.mutation.SetImpulsiveErrorCount(v)
	return _u
}

// SetNillableImpulsiveErrorCount sets the "impulsive_error_count" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableImpulsiveErrorCount(v *int) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetImpulsiveErrorCount(*v)
	}
	return _u
}

// AddImpulsiveErrorCount adds value to the "impulsive_error_count" field.
func (_u *MetricsRecordUpdateOne) AddImpulsiveErrorCount(v int) *MetricsRecordUpdateOne {
	_u.mutation.AddImpulsiveErrorCount(v)
	return _u
}

// SetOverthinkingErrorCount sets the "overthinking_error_count" field.
func (_u *MetricsRecordUpdateOne) SetOverthinkingErrorCount(v int) *MetricsRecordUpdateOne {
	_u.mutation.ResetOverthinkingErrorCount()
	_u.mutation.SetOverthinkingErrorCount(v)
	return _u
}

// SetNillableOverthinkingErrorCount sets the "overthinking_error_count" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableOverthinkingErrorCount(v *int) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetOverthinkingErrorCount(*v)
	}
	return _u
}

// AddOverthinkingErrorCount adds value to the "overthinking_error_count" field.
func (_u *MetricsRecordUpdateOne) AddOverthinkingErrorCount(v int) *MetricsRecordUpdateOne {
	_u.mutation.AddOverthinkingErrorCount(v)
	return _u
}

// SetGuessProbability sets the "guess_probability" field.
func (_u *MetricsRecordUpdateOne) SetGuessProbability(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetGuessProbability()
	_u.mutation.SetGuessProbability(v)
	return _u
}

// SetNillableGuessProbability sets the "guess_probability" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableGuessProbability(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetGuessProbability(*v)
	}
	return _u
}

// AddGuessProbability adds value to the "guess_probability" field.
func (_u *MetricsRecordUpdateOne) AddGuessProbability(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddGuessProbability(v)
	return _u
}

// SetCognitiveBreakdown sets the "cognitive_breakdown" field.
func (_u *MetricsRecordUpdateOne) SetCognitiveBreakdown(v map[string]float64) *MetricsRecordUpdateOne {
	_u.mutation.SetCognitiveBreakdown(v)
	return _u
}

// SetFatigueCurve sets the "fatigue_curve" field.
func (_u *MetricsRecordUpdateOne) SetFatigueCurve(v map[string]interface{}) *MetricsRecordUpdateOne {
	_u.mutation.SetFatigueCurve(v)
	return _u
}

// SetRiskAppetite sets the "risk_appetite" field.
func (_u *MetricsRecordUpdateOne) SetRiskAppetite(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetRiskAppetite()
	_u.mutation.SetRiskAppetite(v)
	return _u
}

// SetNillableRiskAppetite sets the "risk_appetite" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableRiskAppetite(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetRiskAppetite(*v)
	}
	return _u
}

// AddRiskAppetite adds value to the "risk_appetite" field.
func (_u *MetricsRecordUpdateOne) AddRiskAppetite(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddRiskAppetite(v)
	return _u
}

// SetConfidenceIndex sets the "confidence_index" field.
func (_u *MetricsRecordUpdateOne) SetConfidenceIndex(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetConfidenceIndex()
	_u.mutation.SetConfidenceIndex(v)
	return _u
}

// SetNillableConfidenceIndex sets the "confidence_index" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableConfidenceIndex(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetConfidenceIndex(*v)
	}
	return _u
}

// AddConfidenceIndex adds value to the "confidence_index" field.
func (_u *MetricsRecordUpdateOne) AddConfidenceIndex(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddConfidenceIndex(v)
	return _u
}

// SetConsistencyIndex sets the "consistency_index" field.
func (_u *MetricsRecordUpdateOne) SetConsistencyIndex(v float64) *MetricsRecordUpdateOne {
	_u.mutation.ResetConsistencyIndex()
	_u.mutation.SetConsistencyIndex(v)
	return _u
}

// SetNillableConsistencyIndex sets the "consistency_index" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableConsistencyIndex(v *float64) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetConsistencyIndex(*v)
	}
	return _u
}

// AddConsistencyIndex adds value to the "consistency_index" field.
func (_u *MetricsRecordUpdateOne) AddConsistencyIndex(v float64) *MetricsRecordUpdateOne {
	_u.mutation.AddConsistencyIndex(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MetricsRecordUpdateOne) SetCreatedAt(v time.Time) *MetricsRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *MetricsRecordUpdateOne) SetAttemptID(v int) *MetricsRecordUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *MetricsRecordUpdateOne) SetNillableAttemptID(v *int) *MetricsRecordUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_u *MetricsRecordUpdateOne) SetAttempt(v *Attempt) *MetricsRecordUpdateOne {
	return _u.SetAttemptID(v.ID)
}

// Mutation returns the MetricsRecordMutation object of the builder.
func (_u *MetricsRecordUpdateOne) Mutation() *MetricsRecordMutation {
	return _u.mutation
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (_u *MetricsRecordUpdateOne) ClearAttempt() *MetricsRecordUpdateOne {
	_u.mutation.ClearAttempt()
	return _u
}

// Where appends a list predicates to the MetricsRecordUpdate builder.
func (_u *MetricsRecordUpdateOne) Where(ps ...predicate.MetricsRecord) *MetricsRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MetricsRecordUpdateOne) Select(field string, fields ...string) *MetricsRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MetricsRecord entity.
func (_u *MetricsRecordUpdateOne) Save(ctx context.Context) (*MetricsRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MetricsRecordUpdateOne) SaveX(ctx context.Context) *MetricsRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MetricsRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MetricsRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MetricsRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := metricsrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MetricsRecord.user_id": %w`, err)}
		}
	}
	if _u.mutation.AttemptCleared() && len(_u.mutation.AttemptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MetricsRecord.attempt"`)
	}
	return nil
}

func (_u *MetricsRecordUpdateOne) sqlSave(ctx context.Context) (_node *MetricsRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(metricsrecord.Table, metricsrecord.Columns, sqlgraph.NewFieldSpec(metricsrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MetricsRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, metricsrecord.FieldID)
		for _, f := range fields {
			if !metricsrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != metricsrecord.FieldID {
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
		_spec.SetField(metricsrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(metricsrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(metricsrecord.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AttemptRatio(); ok {
		_spec.SetField(metricsrecord.FieldAttemptRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAttemptRatio(); ok {
		_spec.AddField(metricsrecord.FieldAttemptRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NegativeMarks(); ok {
		_spec.SetField(metricsrecord.FieldNegativeMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNegativeMarks(); ok {
		_spec.AddField(metricsrecord.FieldNegativeMarks, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FirstInstinctAccuracy(); ok {
		_spec.SetField(metricsrecord.FieldFirstInstinctAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFirstInstinctAccuracy(); ok {
		_spec.AddField(metricsrecord.FieldFirstInstinctAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EliminationEfficiency(); ok {
		_spec.SetField(metricsrecord.FieldEliminationEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEliminationEfficiency(); ok {
		_spec.AddField(metricsrecord.FieldEliminationEfficiency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ImpulsiveErrorCount(); ok {
		_spec.SetField(metricsrecord.FieldImpulsiveErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedImpulsiveErrorCount(); ok {
		_spec.AddField(metricsrecord.FieldImpulsiveErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverthinkingErrorCount(); ok {
		_spec.SetField(metricsrecord.FieldOverthinkingErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverthinkingErrorCount(); ok {
		_spec.AddField(metricsrecord.FieldOverthinkingErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GuessProbability(); ok {
		_spec.SetField(metricsrecord.FieldGuessProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGuessProbability(); ok {
		_spec.AddField(metricsrecord.FieldGuessProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CognitiveBreakdown(); ok {
		_spec.SetField(metricsrecord.FieldCognitiveBreakdown, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.FatigueCurve(); ok {
		_spec.SetField(metricsrecord.FieldFatigueCurve, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.RiskAppetite(); ok {
		_spec.SetField(metricsrecord.FieldRiskAppetite, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRiskAppetite(); ok {
		_spec.AddField(metricsrecord.FieldRiskAppetite, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceIndex(); ok {
		_spec.SetField(metricsrecord.FieldConfidenceIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceIndex(); ok {
		_spec.AddField(metricsrecord.FieldConfidenceIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConsistencyIndex(); ok {
		_spec.SetField(metricsrecord.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConsistencyIndex(); ok {
		_spec.AddField(metricsrecord.FieldConsistencyIndex, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(metricsrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.AttemptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   metricsrecord.AttemptTable,
			Columns: []string{metricsrecord.AttemptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   metricsrecord.AttemptTable,
			Columns: []string{metricsrecord.AttemptColumn},
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
	_node = &MetricsRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{metricsrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
