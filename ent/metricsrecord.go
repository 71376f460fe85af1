// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/metricsrecord"
)

// MetricsRecord is the model entity for the MetricsRecord schema.
type MetricsRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Accuracy holds the value of the "accuracy" field.
	Accuracy float64 `json:"accuracy,omitempty"`
	// AttemptRatio holds the value of the "attempt_ratio" field.
	AttemptRatio float64 `json:"attempt_ratio,omitempty"`
	// NegativeMarks holds the value of the "negative_marks" field.
	NegativeMarks float64 `json:"negative_marks,omitempty"`
	// FirstInstinctAccuracy holds the value of the "first_instinct_accuracy" field.
	FirstInstinctAccuracy float64 `json:"first_instinct_accuracy,omitempty"`
	// EliminationEfficiency holds the value of the "elimination_efficiency" field.
	EliminationEfficiency float64 `json:"elimination_efficiency,omitempty"`
	// ImpulsiveErrorCount holds the value of the "impulsive_error_count" field.
	ImpulsiveErrorCount int `json:"impulsive_error_count,omitempty"`
	// OverthinkingErrorCount holds the value of the "overthinking_error_count" field.
	OverthinkingErrorCount int `json:"overthinking_error_count,omitempty"`
	// GuessProbability holds the value of the "guess_probability" field.
	GuessProbability float64 `json:"guess_probability,omitempty"`
	// Per-quarter accuracy: q1_accuracy .. q4_accuracy
	CognitiveBreakdown map[string]float64 `json:"cognitive_breakdown,omitempty"`
	// fatigue_index (SLOWING_DOWN|CONSISTENT) and accuracy_drop
	FatigueCurve map[string]interface{} `json:"fatigue_curve,omitempty"`
	// RiskAppetite holds the value of the "risk_appetite" field.
	RiskAppetite float64 `json:"risk_appetite,omitempty"`
	// ConfidenceIndex holds the value of the "confidence_index" field.
	ConfidenceIndex float64 `json:"confidence_index,omitempty"`
	// ConsistencyIndex holds the value of the "consistency_index" field.
	ConsistencyIndex float64 `json:"consistency_index,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID int `json:"attempt_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MetricsRecordQuery when eager-loading is set.
	Edges        MetricsRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MetricsRecordEdges holds the relations/edges for other nodes in the graph.
type MetricsRecordEdges struct {
	// Attempt holds the value of the attempt edge.
	Attempt *Attempt `json:"attempt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AttemptOrErr returns the Attempt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MetricsRecordEdges) AttemptOrErr() (*Attempt, error) {
	if e.Attempt != nil {
		return e.Attempt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: attempt.Label}
	}
	return nil, &NotLoadedError{edge: "attempt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MetricsRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case metricsrecord.FieldCognitiveBreakdown, metricsrecord.FieldFatigueCurve:
			values[i] = new([]byte)
		case metricsrecord.FieldAccuracy, metricsrecord.FieldAttemptRatio, metricsrecord.FieldNegativeMarks, metricsrecord.FieldFirstInstinctAccuracy, metricsrecord.FieldEliminationEfficiency, metricsrecord.FieldGuessProbability, metricsrecord.FieldRiskAppetite, metricsrecord.FieldConfidenceIndex, metricsrecord.FieldConsistencyIndex:
			values[i] = new(sql.NullFloat64)
		case metricsrecord.FieldID, metricsrecord.FieldImpulsiveErrorCount, metricsrecord.FieldOverthinkingErrorCount, metricsrecord.FieldAttemptID:
			values[i] = new(sql.NullInt64)
		case metricsrecord.FieldUserID:
			values[i] = new(sql.NullString)
		case metricsrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MetricsRecord fields.
func (_m *MetricsRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case metricsrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case metricsrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case metricsrecord.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case metricsrecord.FieldAttemptRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_ratio", values[i])
			} else if value.Valid {
				_m.AttemptRatio = value.Float64
			}
		case metricsrecord.FieldNegativeMarks:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field negative_marks", values[i])
			} else if value.Valid {
				_m.NegativeMarks = value.Float64
			}
		case metricsrecord.FieldFirstInstinctAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field first_instinct_accuracy", values[i])
			} else if value.Valid {
				_m.FirstInstinctAccuracy = value.Float64
			}
		case metricsrecord.FieldEliminationEfficiency:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field elimination_efficiency", values[i])
			} else if value.Valid {
				_m.EliminationEfficiency = value.Float64
			}
		case metricsrecord.FieldImpulsiveErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field impulsive_error_count", values[i])
			} else if value.Valid {
				_m.ImpulsiveErrorCount = int(value.Int64)
			}
		case metricsrecord.FieldOverthinkingErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overthinking_error_count", values[i])
			} else if value.Valid {
				_m.OverthinkingErrorCount = int(value.Int64)
			}
		case metricsrecord.FieldGuessProbability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field guess_probability", values[i])
			} else if value.Valid {
				_m.GuessProbability = value.Float64
			}
		case metricsrecord.FieldCognitiveBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CognitiveBreakdown); err != nil {
					return fmt.Errorf("unmarshal field cognitive_breakdown: %w", err)
				}
			}
		case metricsrecord.FieldFatigueCurve:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field fatigue_curve", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FatigueCurve); err != nil {
					return fmt.Errorf("unmarshal field fatigue_curve: %w", err)
				}
			}
		case metricsrecord.FieldRiskAppetite:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field risk_appetite", values[i])
			} else if value.Valid {
				_m.RiskAppetite = value.Float64
			}
		case metricsrecord.FieldConfidenceIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_index", values[i])
			} else if value.Valid {
				_m.ConfidenceIndex = value.Float64
			}
		case metricsrecord.FieldConsistencyIndex:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field consistency_index", values[i])
			} else if value.Valid {
				_m.ConsistencyIndex = value.Float64
			}
		case metricsrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case metricsrecord.FieldAttemptID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MetricsRecord.
// This includes values selected through modifiers, order, etc.
func (_m *MetricsRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempt queries the "attempt" edge of the MetricsRecord entity.
func (_m *MetricsRecord) QueryAttempt() *AttemptQuery {
	return NewMetricsRecordClient(_m.config).QueryAttempt(_m)
}

// Update returns a builder for updating this MetricsRecord.
// Note that you need to call MetricsRecord.Unwrap() before calling this method if this MetricsRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MetricsRecord) Update() *MetricsRecordUpdateOne {
	return NewMetricsRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MetricsRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MetricsRecord) Unwrap() *MetricsRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MetricsRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MetricsRecord) String() string {
	var builder strings.Builder
	builder.WriteString("MetricsRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("attempt_ratio=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptRatio))
	builder.WriteString(", ")
	builder.WriteString("negative_marks=")
	builder.WriteString(fmt.Sprintf("%v", _m.NegativeMarks))
	builder.WriteString(", ")
	builder.WriteString("first_instinct_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstInstinctAccuracy))
	builder.WriteString(", ")
	builder.WriteString("elimination_efficiency=")
	builder.WriteString(fmt.Sprintf("%v", _m.EliminationEfficiency))
	builder.WriteString(", ")
	builder.WriteString("impulsive_error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImpulsiveErrorCount))
	builder.WriteString(", ")
	builder.WriteString("overthinking_error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverthinkingErrorCount))
	builder.WriteString(", ")
	builder.WriteString("guess_probability=")
	builder.WriteString(fmt.Sprintf("%v", _m.GuessProbability))
	builder.WriteString(", ")
	builder.WriteString("cognitive_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.CognitiveBreakdown))
	builder.WriteString(", ")
	builder.WriteString("fatigue_curve=")
	builder.WriteString(fmt.Sprintf("%v", _m.FatigueCurve))
	builder.WriteString(", ")
	builder.WriteString("risk_appetite=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiskAppetite))
	builder.WriteString(", ")
	builder.WriteString("confidence_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceIndex))
	builder.WriteString(", ")
	builder.WriteString("consistency_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsistencyIndex))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptID))
	builder.WriteByte(')')
	return builder.String()
}

// MetricsRecords is a parsable slice of MetricsRecord.
type MetricsRecords []*MetricsRecord
