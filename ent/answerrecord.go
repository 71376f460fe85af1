// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/question"
)

// AnswerRecord is the model entity for the AnswerRecord schema.
type AnswerRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Denormalized from the attempt for fast unseen-question queries
	UserID string `json:"user_id,omitempty"`
	// 0 means the question was shown but not answered
	SelectedOptionID int `json:"selected_option_id,omitempty"`
	// FirstSelectedOptionID holds the value of the "first_selected_option_id" field.
	FirstSelectedOptionID int `json:"first_selected_option_id,omitempty"`
	// TimeSpentSeconds holds the value of the "time_spent_seconds" field.
	TimeSpentSeconds int `json:"time_spent_seconds,omitempty"`
	// SelectionChangeCount holds the value of the "selection_change_count" field.
	SelectionChangeCount int `json:"selection_change_count,omitempty"`
	// HoverCount holds the value of the "hover_count" field.
	HoverCount int `json:"hover_count,omitempty"`
	// EliminatedOptionIds holds the value of the "eliminated_option_ids" field.
	EliminatedOptionIds []int `json:"eliminated_option_ids,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// Classification holds the value of the "classification" field.
	Classification answerrecord.Classification `json:"classification,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt time.Time `json:"answered_at,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID int `json:"attempt_id,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID int `json:"question_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnswerRecordQuery when eager-loading is set.
	Edges        AnswerRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnswerRecordEdges holds the relations/edges for other nodes in the graph.
type AnswerRecordEdges struct {
	// Attempt holds the value of the attempt edge.
	Attempt *Attempt `json:"attempt,omitempty"`
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AttemptOrErr returns the Attempt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerRecordEdges) AttemptOrErr() (*Attempt, error) {
	if e.Attempt != nil {
		return e.Attempt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: attempt.Label}
	}
	return nil, &NotLoadedError{edge: "attempt"}
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnswerRecordEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldEliminatedOptionIds:
			values[i] = new([]byte)
		case answerrecord.FieldCorrect:
			values[i] = new(sql.NullBool)
		case answerrecord.FieldID, answerrecord.FieldSelectedOptionID, answerrecord.FieldFirstSelectedOptionID, answerrecord.FieldTimeSpentSeconds, answerrecord.FieldSelectionChangeCount, answerrecord.FieldHoverCount, answerrecord.FieldAttemptID, answerrecord.FieldQuestionID:
			values[i] = new(sql.NullInt64)
		case answerrecord.FieldUserID, answerrecord.FieldClassification:
			values[i] = new(sql.NullString)
		case answerrecord.FieldAnsweredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerRecord fields.
func (_m *AnswerRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case answerrecord.FieldSelectedOptionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selected_option_id", values[i])
			} else if value.Valid {
				_m.SelectedOptionID = int(value.Int64)
			}
		case answerrecord.FieldFirstSelectedOptionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field first_selected_option_id", values[i])
			} else if value.Valid {
				_m.FirstSelectedOptionID = int(value.Int64)
			}
		case answerrecord.FieldTimeSpentSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_seconds", values[i])
			} else if value.Valid {
				_m.TimeSpentSeconds = int(value.Int64)
			}
		case answerrecord.FieldSelectionChangeCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field selection_change_count", values[i])
			} else if value.Valid {
				_m.SelectionChangeCount = int(value.Int64)
			}
		case answerrecord.FieldHoverCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hover_count", values[i])
			} else if value.Valid {
				_m.HoverCount = int(value.Int64)
			}
		case answerrecord.FieldEliminatedOptionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field eliminated_option_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EliminatedOptionIds); err != nil {
					return fmt.Errorf("unmarshal field eliminated_option_ids: %w", err)
				}
			}
		case answerrecord.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case answerrecord.FieldClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field classification", values[i])
			} else if value.Valid {
				_m.Classification = answerrecord.Classification(value.String)
			}
		case answerrecord.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = value.Time
			}
		case answerrecord.FieldAttemptID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = int(value.Int64)
			}
		case answerrecord.FieldQuestionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempt queries the "attempt" edge of the AnswerRecord entity.
func (_m *AnswerRecord) QueryAttempt() *AttemptQuery {
	return NewAnswerRecordClient(_m.config).QueryAttempt(_m)
}

// QueryQuestion queries the "question" edge of the AnswerRecord entity.
func (_m *AnswerRecord) QueryQuestion() *QuestionQuery {
	return NewAnswerRecordClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this AnswerRecord.
// Note that you need to call AnswerRecord.Unwrap() before calling this method if this AnswerRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerRecord) Update() *AnswerRecordUpdateOne {
	return NewAnswerRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerRecord) Unwrap() *AnswerRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("selected_option_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectedOptionID))
	builder.WriteString(", ")
	builder.WriteString("first_selected_option_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FirstSelectedOptionID))
	builder.WriteString(", ")
	builder.WriteString("time_spent_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentSeconds))
	builder.WriteString(", ")
	builder.WriteString("selection_change_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SelectionChangeCount))
	builder.WriteString(", ")
	builder.WriteString("hover_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HoverCount))
	builder.WriteString(", ")
	builder.WriteString("eliminated_option_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.EliminatedOptionIds))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("classification=")
	builder.WriteString(fmt.Sprintf("%v", _m.Classification))
	builder.WriteString(", ")
	builder.WriteString("answered_at=")
	builder.WriteString(_m.AnsweredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("attempt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptID))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerRecords is a parsable slice of AnswerRecord.
type AnswerRecords []*AnswerRecord
