// Code generated by ent, DO NOT EDIT.

package metricsrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the metricsrecord type in the database.
	Label = "metrics_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldAttemptRatio holds the string denoting the attempt_ratio field in the database.
	FieldAttemptRatio = "attempt_ratio"
	// FieldNegativeMarks holds the string denoting the negative_marks field in the database.
	FieldNegativeMarks = "negative_marks"
	// FieldFirstInstinctAccuracy holds the string denoting the first_instinct_accuracy field in the database.
	FieldFirstInstinctAccuracy = "first_instinct_accuracy"
	// FieldEliminationEfficiency holds the string denoting the elimination_efficiency field in the database.
	FieldEliminationEfficiency = "elimination_efficiency"
	// FieldImpulsiveErrorCount holds the string denoting the impulsive_error_count field in the database.
	FieldImpulsiveErrorCount = "impulsive_error_count"
	// FieldOverthinkingErrorCount holds the string denoting the overthinking_error_count field in the database.
	FieldOverthinkingErrorCount = "overthinking_error_count"
	// FieldGuessProbability holds the string denoting the guess_probability field in the database.
	FieldGuessProbability = "guess_probability"
	// FieldCognitiveBreakdown holds the string denoting the cognitive_breakdown field in the database.
	FieldCognitiveBreakdown = "cognitive_breakdown"
	// FieldFatigueCurve holds the string denoting the fatigue_curve field in the database.
	FieldFatigueCurve = "fatigue_curve"
	// FieldRiskAppetite holds the string denoting the risk_appetite field in the database.
	FieldRiskAppetite = "risk_appetite"
	// FieldConfidenceIndex holds the string denoting the confidence_index field in the database.
	FieldConfidenceIndex = "confidence_index"
	// FieldConsistencyIndex holds the string denoting the consistency_index field in the database.
	FieldConsistencyIndex = "consistency_index"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// EdgeAttempt holds the string denoting the attempt edge name in mutations.
	EdgeAttempt = "attempt"
	// Table holds the table name of the metricsrecord in the database.
	Table = "metrics_records"
	// AttemptTable is the table that holds the attempt relation/edge.
	AttemptTable = "metrics_records"
	// AttemptInverseTable is the table name for the Attempt entity.
	// It exists in this package in order to avoid circular dependency with the "attempt" package.
	AttemptInverseTable = "attempts"
	// AttemptColumn is the table column denoting the attempt relation/edge.
	AttemptColumn = "attempt_id"
)

// Columns holds all SQL columns for metricsrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldAccuracy,
	FieldAttemptRatio,
	FieldNegativeMarks,
	FieldFirstInstinctAccuracy,
	FieldEliminationEfficiency,
	FieldImpulsiveErrorCount,
	FieldOverthinkingErrorCount,
	FieldGuessProbability,
	FieldCognitiveBreakdown,
	FieldFatigueCurve,
	FieldRiskAppetite,
	FieldConfidenceIndex,
	FieldConsistencyIndex,
	FieldCreatedAt,
	FieldAttemptID,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the MetricsRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByAttemptRatio orders the results by the attempt_ratio field.
func ByAttemptRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptRatio, opts...).ToFunc()
}

// ByNegativeMarks orders the results by the negative_marks field.
func ByNegativeMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNegativeMarks, opts...).ToFunc()
}

// ByFirstInstinctAccuracy orders the results by the first_instinct_accuracy field.
func ByFirstInstinctAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstInstinctAccuracy, opts...).ToFunc()
}

// ByEliminationEfficiency orders the results by the elimination_efficiency field.
func ByEliminationEfficiency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEliminationEfficiency, opts...).ToFunc()
}

// ByImpulsiveErrorCount orders the results by the impulsive_error_count field.
func ByImpulsiveErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImpulsiveErrorCount, opts...).ToFunc()
}

// ByOverthinkingErrorCount orders the results by the overthinking_error_count field.
func ByOverthinkingErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverthinkingErrorCount, opts...).ToFunc()
}

// ByGuessProbability orders the results by the guess_probability field.
func ByGuessProbability(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuessProbability, opts...).ToFunc()
}

// ByRiskAppetite orders the results by the risk_appetite field.
func ByRiskAppetite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskAppetite, opts...).ToFunc()
}

// ByConfidenceIndex orders the results by the confidence_index field.
func ByConfidenceIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceIndex, opts...).ToFunc()
}

// ByConsistencyIndex orders the results by the consistency_index field.
func ByConsistencyIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsistencyIndex, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByAttemptField orders the results by attempt field.
func ByAttemptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptStep(), sql.OrderByField(field, opts...))
	}
}
func newAttemptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, AttemptTable, AttemptColumn),
	)
}
