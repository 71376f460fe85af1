// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examiz/ent/question"
	"github.com/abhisek/examiz/ent/questionoption"
)

// QuestionOption is the model entity for the QuestionOption schema.
type QuestionOption struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// 1-based presentation order within the question
	Ord int `json:"ord,omitempty"`
	// QuestionID holds the value of the "question_id" field.
	QuestionID int `json:"question_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionOptionQuery when eager-loading is set.
	Edges        QuestionOptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionOptionEdges holds the relations/edges for other nodes in the graph.
type QuestionOptionEdges struct {
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e QuestionOptionEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionOption) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionoption.FieldCorrect:
			values[i] = new(sql.NullBool)
		case questionoption.FieldID, questionoption.FieldOrd, questionoption.FieldQuestionID:
			values[i] = new(sql.NullInt64)
		case questionoption.FieldText:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionOption fields.
func (_m *QuestionOption) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionoption.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionoption.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case questionoption.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case questionoption.FieldOrd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ord", values[i])
			} else if value.Valid {
				_m.Ord = int(value.Int64)
			}
		case questionoption.FieldQuestionID:
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

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionOption.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionOption) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the QuestionOption entity.
func (_m *QuestionOption) QueryQuestion() *QuestionQuery {
	return NewQuestionOptionClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this QuestionOption.
// Note that you need to call QuestionOption.Unwrap() before calling this method if this QuestionOption
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionOption) Update() *QuestionOptionUpdateOne {
	return NewQuestionOptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionOption entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionOption) Unwrap() *QuestionOption {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionOption is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionOption) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionOption(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("ord=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ord))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionID))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionOptions is a parsable slice of QuestionOption.
type QuestionOptions []*QuestionOption
