// Code generated by ent, DO NOT EDIT.

package answerrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the answerrecord type in the database.
	Label = "answer_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSelectedOptionID holds the string denoting the selected_option_id field in the database.
	FieldSelectedOptionID = "selected_option_id"
	// FieldFirstSelectedOptionID holds the string denoting the first_selected_option_id field in the database.
	FieldFirstSelectedOptionID = "first_selected_option_id"
	// FieldTimeSpentSeconds holds the string denoting the time_spent_seconds field in the database.
	FieldTimeSpentSeconds = "time_spent_seconds"
	// FieldSelectionChangeCount holds the string denoting the selection_change_count field in the database.
	FieldSelectionChangeCount = "selection_change_count"
	// FieldHoverCount holds the string denoting the hover_count field in the database.
	FieldHoverCount = "hover_count"
	// FieldEliminatedOptionIds holds the string denoting the eliminated_option_ids field in the database.
	FieldEliminatedOptionIds = "eliminated_option_ids"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldClassification holds the string denoting the classification field in the database.
	FieldClassification = "classification"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// EdgeAttempt holds the string denoting the attempt edge name in mutations.
	EdgeAttempt = "attempt"
	// EdgeQuestion holds the string denoting the question edge name in mutations.
	EdgeQuestion = "question"
	// Table holds the table name of the answerrecord in the database.
	Table = "answer_records"
	// AttemptTable is the table that holds the attempt relation/edge.
	AttemptTable = "answer_records"
	// AttemptInverseTable is the table name for the Attempt entity.
	// It exists in this package in order to avoid circular dependency with the "attempt" package.
	AttemptInverseTable = "attempts"
	// AttemptColumn is the table column denoting the attempt relation/edge.
	AttemptColumn = "attempt_id"
	// QuestionTable is the table that holds the question relation/edge.
	QuestionTable = "answer_records"
	// QuestionInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionInverseTable = "questions"
	// QuestionColumn is the table column denoting the question relation/edge.
	QuestionColumn = "question_id"
)

// Columns holds all SQL columns for answerrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSelectedOptionID,
	FieldFirstSelectedOptionID,
	FieldTimeSpentSeconds,
	FieldSelectionChangeCount,
	FieldHoverCount,
	FieldEliminatedOptionIds,
	FieldCorrect,
	FieldClassification,
	FieldAnsweredAt,
	FieldAttemptID,
	FieldQuestionID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultTimeSpentSeconds holds the default value on creation for the "time_spent_seconds" field.
	DefaultTimeSpentSeconds int
	// DefaultSelectionChangeCount holds the default value on creation for the "selection_change_count" field.
	DefaultSelectionChangeCount int
	// DefaultHoverCount holds the default value on creation for the "hover_count" field.
	DefaultHoverCount int
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect bool
	// DefaultAnsweredAt holds the default value on creation for the "answered_at" field.
	DefaultAnsweredAt func() time.Time
)

// Classification defines the type for the "classification" enum field.
type Classification string

// ClassificationUNKNOWN is the default value of the Classification enum.
const DefaultClassification = ClassificationUNKNOWN

// Classification values.
const (
	ClassificationBLIND_GUESS    Classification = "BLIND_GUESS"
	ClassificationEDUCATED_GUESS Classification = "EDUCATED_GUESS"
	ClassificationSURE           Classification = "SURE"
	ClassificationUNKNOWN        Classification = "UNKNOWN"
)

func (c Classification) String() string {
	return string(c)
}

// ClassificationValidator is a validator for the "classification" field enum values. It is called by the builders before save.
func ClassificationValidator(c Classification) error {
	switch c {
	case ClassificationBLIND_GUESS, ClassificationEDUCATED_GUESS, ClassificationSURE, ClassificationUNKNOWN:
		return nil
	default:
		return fmt.Errorf("answerrecord: invalid enum value for classification field: %q", c)
	}
}

// OrderOption defines the ordering options for the AnswerRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySelectedOptionID orders the results by the selected_option_id field.
func BySelectedOptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectedOptionID, opts...).ToFunc()
}

// ByFirstSelectedOptionID orders the results by the first_selected_option_id field.
func ByFirstSelectedOptionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSelectedOptionID, opts...).ToFunc()
}

// ByTimeSpentSeconds orders the results by the time_spent_seconds field.
func ByTimeSpentSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentSeconds, opts...).ToFunc()
}

// BySelectionChangeCount orders the results by the selection_change_count field.
func BySelectionChangeCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelectionChangeCount, opts...).ToFunc()
}

// ByHoverCount orders the results by the hover_count field.
func ByHoverCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHoverCount, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByClassification orders the results by the classification field.
func ByClassification(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassification, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByAttemptField orders the results by attempt field.
func ByAttemptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionField orders the results by question field.
func ByQuestionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionStep(), sql.OrderByField(field, opts...))
	}
}
func newAttemptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AttemptTable, AttemptColumn),
	)
}
func newQuestionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
	)
}
