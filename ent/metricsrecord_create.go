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
	"github.com/abhisek/examiz/ent/metricsrecord"
)

// MetricsRecordCreate is the builder for creating a MetricsRecord entity.
type MetricsRecordCreate struct {
	config
	mutation *MetricsRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MetricsRecordCreate) SetUserID(v string) *MetricsRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *MetricsRecordCreate) SetAccuracy(v float64) *MetricsRecordCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetAttemptRatio sets the "attempt_ratio" field.
func (_c *MetricsRecordCreate) SetAttemptRatio(v float64) *MetricsRecordCreate {
	_c.mutation.SetAttemptRatio(v)
	return _c
}

// SetNegativeMarks sets the "negative_marks" field.
func (_c *MetricsRecordCreate) SetNegativeMarks(v float64) *MetricsRecordCreate {
	_c.mutation.SetNegativeMarks(v)
	return _c
}

// SetFirstInstinctAccuracy sets the "first_instinct_accuracy" field.
func (_c *MetricsRecordCreate) SetFirstInstinctAccuracy(v float64) *MetricsRecordCreate {
	_c.mutation.SetFirstInstinctAccuracy(v)
	return _c
}

// SetEliminationEfficiency sets the "elimination_efficiency" field.
func (_c *MetricsRecordCreate) SetEliminationEfficiency(v float64) *MetricsRecordCreate {
	_c.mutation.SetEliminationEfficiency(v)
	return _c
}

// SetImpulsiveErrorCount sets the "impulsive_error_count" field.
func (_c *MetricsRecordCreate) SetImpulsiveErrorCount(v int) *MetricsRecordCreate {
	_c.mutation.SetImpulsiveErrorCount(v)
	return _c
}

// SetOverthinkingErrorCount sets the "overthinking_error_count" field.
func (_c *MetricsRecordCreate) SetOverthinkingErrorCount(v int) *MetricsRecordCreate {
	_c.mutation.SetOverthinkingErrorCount(v)
	return _c
}

// SetGuessProbability sets the "guess_probability" field.
func (_c *MetricsRecordCreate) SetGuessProbability(v float64) *MetricsRecordCreate {
	_c.mutation.SetGuessProbability(v)
	return _c
}

// SetCognitiveBreakdown sets the "cognitive_breakdown" field.
func (_c *MetricsRecordCreate) SetCognitiveBreakdown(v map[string]float64) *MetricsRecordCreate {
	_c.mutation.SetCognitiveBreakdown(v)
	return _c
}

// SetFatigueCurve sets the "fatigue_curve" field.
func (_c *MetricsRecordCreate) SetFatigueCurve(v map[string]interface{}) *MetricsRecordCreate {
	_c.mutation.SetFatigueCurve(v)
	return _c
}

// SetRiskAppetite sets the "risk_appetite" field.
func (_c *MetricsRecordCreate) SetRiskAppetite(v float64) *MetricsRecordCreate {
	_c.mutation.SetRiskAppetite(v)
	return _c
}

// SetConfidenceIndex sets the "confidence_index" field.
func (_c *MetricsRecordCreate) SetConfidenceIndex(v float64) *MetricsRecordCreate {
	_c.mutation.SetConfidenceIndex(v)
	return _c
}

// SetConsistencyIndex sets the "consistency_index" field.
func (_c *MetricsRecordCreate) SetConsistencyIndex(v float64) *MetricsRecordCreate {
	_c.mutation.SetConsistencyIndex(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MetricsRecordCreate) SetCreatedAt(v time.Time) *MetricsRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MetricsRecordCreate) SetNillableCreatedAt(v *time.Time) *MetricsRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *MetricsRecordCreate) SetAttemptID(v int) *MetricsRecordCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetAttempt sets the "attempt" edge to the Attempt entity.
func (_c *MetricsRecordCreate) SetAttempt(v *Attempt) *MetricsRecordCreate {
	return _c.SetAttemptID(v.ID)
}

// Mutation returns the MetricsRecordMutation object of the builder.
func (_c *MetricsRecordCreate) Mutation() *MetricsRecordMutation {
	return _c.mutation
}

// Save creates the MetricsRecord in the database.
func (_c *MetricsRecordCreate) Save(ctx context.Context) (*MetricsRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MetricsRecordCreate) SaveX(ctx context.Context) *MetricsRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MetricsRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := metricsrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MetricsRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MetricsRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := metricsrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MetricsRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "MetricsRecord.accuracy"`)}
	}
	if _, ok := _c.mutation.AttemptRatio(); !ok {
		return &ValidationError{Name: "attempt_ratio", err: errors.New(`ent: missing required field "MetricsRecord.attempt_ratio"`)}
	}
	if _, ok := _c.mutation.NegativeMarks(); !ok {
		return &ValidationError{Name: "negative_marks", err: errors.New(`ent: missing required field "MetricsRecord.negative_marks"`)}
	}
	if _, ok := _c.mutation.FirstInstinctAccuracy(); !ok {
		return &ValidationError{Name: "first_instinct_accuracy", err: errors.New(`ent: missing required field "MetricsRecord.first_instinct_accuracy"`)}
	}
	if _, ok := _c.mutation.EliminationEfficiency(); !ok {
		return &ValidationError{Name: "elimination_efficiency", err: errors.New(`ent: missing required field "MetricsRecord.elimination_efficiency"`)}
	}
	if _, ok := _c.mutation.ImpulsiveErrorCount(); !ok {
		return &ValidationError{Name: "impulsive_error_count", err: errors.New(`ent: missing required field "MetricsRecord.impulsive_error_count"`)}
	}
	if _, ok := _c.mutation.OverthinkingErrorCount(); !ok {
		return &ValidationError{Name: "overthinking_error_count", err: errors.New(`ent: missing required field "MetricsRecord.overthinking_error_count"`)}
	}
	if _, ok := _c.mutation.GuessProbability(); !ok {
		return &ValidationError{Name: "guess_probability", err: errors.New(`ent: missing required field "MetricsRecord.guess_probability"`)}
	}
	if _, ok := _c.mutation.CognitiveBreakdown(); !ok {
		return &ValidationError{Name: "cognitive_breakdown", err: errors.New(`ent: missing required field "MetricsRecord.cognitive_breakdown"`)}
	}
	if _, ok := _c.mutation.FatigueCurve(); !ok {
		return &ValidationError{Name: "fatigue_curve", err: errors.New(`ent: missing required field "MetricsRecord.fatigue_curve"`)}
	}
	if _, ok := _c.mutation.RiskAppetite(); !ok {
		return &ValidationError{Name: "risk_appetite", err: errors.New(`ent: missing required field "MetricsRecord.risk_appetite"`)}
	}
	if _, ok := _c.mutation.ConfidenceIndex(); !ok {
		return &ValidationError{Name: "confidence_index", err: errors.New(`ent: missing required field "MetricsRecord.confidence_index"`)}
	}
	if _, ok := _c.mutation.ConsistencyIndex(); !ok {
		return &ValidationError{Name: "consistency_index", err: errors.New(`ent: missing required field "MetricsRecord.consistency_index"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MetricsRecord.created_at"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "MetricsRecord.attempt_id"`)}
	}
	if len(_c.mutation.AttemptIDs()) == 0 {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required edge "MetricsRecord.attempt"`)}
	}
	return nil
}

func (_c *MetricsRecordCreate) sqlSave(ctx context.Context) (*MetricsRecord, error) {
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

func (_c *MetricsRecordCreate) createSpec() (*MetricsRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MetricsRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(metricsrecord.Table, sqlgraph.NewFieldSpec(metricsrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(metricsrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(metricsrecord.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.AttemptRatio(); ok {
		_spec.SetField(metricsrecord.FieldAttemptRatio, field.TypeFloat64, value)
		_node.AttemptRatio = value
	}
	if value, ok := _c.mutation.NegativeMarks(); ok {
		_spec.SetField(metricsrecord.FieldNegativeMarks, field.TypeFloat64, value)
		_node.NegativeMarks = value
	}
	if value, ok := _c.mutation.FirstInstinctAccuracy(); ok {
		_spec.SetField(metricsrecord.FieldFirstInstinctAccuracy, field.TypeFloat64, value)
		_node.FirstInstinctAccuracy = value
	}
	if value, ok := _c.mutation.EliminationEfficiency(); ok {
		_spec.SetField(metricsrecord.FieldEliminationEfficiency, field.TypeFloat64, value)
		_node.EliminationEfficiency = value
	}
	if value, ok := _c.mutation.ImpulsiveErrorCount(); ok {
		_spec.SetField(metricsrecord.FieldImpulsiveErrorCount, field.TypeInt, value)
		_node.ImpulsiveErrorCount = value
	}
	if value, ok := _c.mutation.OverthinkingErrorCount(); ok {
		_spec.SetField(metricsrecord.FieldOverthinkingErrorCount, field.TypeInt, value)
		_node.OverthinkingErrorCount = value
	}
	if value, ok := _c.mutation.GuessProbability(); ok {
		_spec.SetField(metricsrecord.FieldGuessProbability, field.TypeFloat64, value)
		_node.GuessProbability = value
	}
	if value, ok := _c.mutation.CognitiveBreakdown(); ok {
		_spec.SetField(metricsrecord.FieldCognitiveBreakdown, field.TypeJSON, value)
		_node.CognitiveBreakdown = value
	}
	if value, ok := _c.mutation.FatigueCurve(); ok {
		_spec.SetField(metricsrecord.FieldFatigueCurve, field.TypeJSON, value)
		_node.FatigueCurve = value
	}
	if value, ok := _c.mutation.RiskAppetite(); ok {
		_spec.SetField(metricsrecord.FieldRiskAppetite, field.TypeFloat64, value)
		_node.RiskAppetite = value
	}
	if value, ok := _c.mutation.ConfidenceIndex(); ok {
		_spec.SetField(metricsrecord.FieldConfidenceIndex, field.TypeFloat64, value)
		_node.ConfidenceIndex = value
	}
	if value, ok := _c.mutation.ConsistencyIndex(); ok {
		_spec.SetField(metricsrecord.FieldConsistencyIndex, field.TypeFloat64, value)
		_node.ConsistencyIndex = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(metricsrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AttemptIDs(); len(nodes) > 0 {
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
		_node.AttemptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MetricsRecordCreateBulk is the builder for creating many MetricsRecord entities in bulk.
type MetricsRecordCreateBulk struct {
	config
	err      error
	builders []*MetricsRecordCreate
}

// Save creates the MetricsRecord entities in the database.
func (_c *MetricsRecordCreateBulk) Save(ctx context.Context) ([]*MetricsRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MetricsRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MetricsRecordMutation)
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
func (_c *MetricsRecordCreateBulk) SaveX(ctx context.Context) []*MetricsRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MetricsRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MetricsRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
