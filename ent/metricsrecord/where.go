// Code generated by ent, DO NOT EDIT.

package metricsrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/examiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldUserID, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldAccuracy, v))
}

// AttemptRatio applies equality check predicate on the "attempt_ratio" field. It's identical to AttemptRatioEQ.
func AttemptRatio(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldAttemptRatio, v))
}

// NegativeMarks applies equality check predicate on the "negative_marks" field. It's identical to NegativeMarksEQ.
func NegativeMarks(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldNegativeMarks, v))
}

// FirstInstinctAccuracy applies equality check predicate on the "first_instinct_accuracy" field. It's identical to FirstInstinctAccuracyEQ.
func FirstInstinctAccuracy(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldFirstInstinctAccuracy, v))
}

// EliminationEfficiency applies equality check predicate on the "elimination_efficiency" field. It's identical to EliminationEfficiencyEQ.
func EliminationEfficiency(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldEliminationEfficiency, v))
}

// ImpulsiveErrorCount applies equality check predicate on the "impulsive_error_count" field. It's identical to ImpulsiveErrorCountEQ.
func ImpulsiveErrorCount(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldImpulsiveErrorCount, v))
}

// OverthinkingErrorCount applies equality check predicate on the "overthinking_error_count" field. It's identical to OverthinkingErrorCountEQ.
func OverthinkingErrorCount(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldOverthinkingErrorCount, v))
}

// GuessProbability applies equality check predicate on the "guess_probability" field. It's identical to GuessProbabilityEQ.
func GuessProbability(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldGuessProbability, v))
}

// RiskAppetite applies equality check predicate on the "risk_appetite" field. It's identical to RiskAppetiteEQ.
func RiskAppetite(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldRiskAppetite, v))
}

// ConfidenceIndex applies equality check predicate on the "confidence_index" field. It's identical to ConfidenceIndexEQ.
func ConfidenceIndex(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldConfidenceIndex, v))
}

// ConsistencyIndex applies equality check predicate on the "consistency_index" field. It's identical to ConsistencyIndexEQ.
func ConsistencyIndex(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldConsistencyIndex, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldAttemptID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldContainsFold(FieldUserID, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldAccuracy, v))
}

// AttemptRatioEQ applies the EQ predicate on the "attempt_ratio" field.
func AttemptRatioEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldAttemptRatio, v))
}

// AttemptRatioNEQ applies the NEQ predicate on the "attempt_ratio" field.
func AttemptRatioNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldAttemptRatio, v))
}

// AttemptRatioIn applies the In predicate on the "attempt_ratio" field.
func AttemptRatioIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldAttemptRatio, vs...))
}

// AttemptRatioNotIn applies the NotIn predicate on the "attempt_ratio" field.
func AttemptRatioNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldAttemptRatio, vs...))
}

// AttemptRatioGT applies the GT predicate on the "attempt_ratio" field.
func AttemptRatioGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldAttemptRatio, v))
}

// AttemptRatioGTE applies the GTE predicate on the "attempt_ratio" field.
func AttemptRatioGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldAttemptRatio, v))
}

// AttemptRatioLT applies the LT predicate on the "attempt_ratio" field.
func AttemptRatioLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldAttemptRatio, v))
}

// AttemptRatioLTE applies the LTE predicate on the "attempt_ratio" field.
func AttemptRatioLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldAttemptRatio, v))
}

// NegativeMarksEQ applies the EQ predicate on the "negative_marks" field.
func NegativeMarksEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldNegativeMarks, v))
}

// NegativeMarksNEQ applies the NEQ predicate on the "negative_marks" field.
func NegativeMarksNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldNegativeMarks, v))
}

// NegativeMarksIn applies the In predicate on the "negative_marks" field.
func NegativeMarksIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldNegativeMarks, vs...))
}

// NegativeMarksNotIn applies the NotIn predicate on the "negative_marks" field.
func NegativeMarksNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldNegativeMarks, vs...))
}

// NegativeMarksGT applies the GT predicate on the "negative_marks" field.
func NegativeMarksGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldNegativeMarks, v))
}

// NegativeMarksGTE applies the GTE predicate on the "negative_marks" field.
func NegativeMarksGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldNegativeMarks, v))
}

// NegativeMarksLT applies the LT predicate on the "negative_marks" field.
func NegativeMarksLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldNegativeMarks, v))
}

// NegativeMarksLTE applies the LTE predicate on the "negative_marks" field.
func NegativeMarksLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldNegativeMarks, v))
}

// FirstInstinctAccuracyEQ applies the EQ predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldFirstInstinctAccuracy, v))
}

// FirstInstinctAccuracyNEQ applies the NEQ predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldFirstInstinctAccuracy, v))
}

// FirstInstinctAccuracyIn applies the In predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldFirstInstinctAccuracy, vs...))
}

// FirstInstinctAccuracyNotIn applies the NotIn predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldFirstInstinctAccuracy, vs...))
}

// FirstInstinctAccuracyGT applies the GT predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldFirstInstinctAccuracy, v))
}

// FirstInstinctAccuracyGTE applies the GTE predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldFirstInstinctAccuracy, v))
}

// FirstInstinctAccuracyLT applies the LT predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldFirstInstinctAccuracy, v))
}

// FirstInstinctAccuracyLTE applies the LTE predicate on the "first_instinct_accuracy" field.
func FirstInstinctAccuracyLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldFirstInstinctAccuracy, v))
}

// EliminationEfficiencyEQ applies the EQ predicate on the "elimination_efficiency" field.
func EliminationEfficiencyEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldEliminationEfficiency, v))
}

// EliminationEfficiencyNEQ applies the NEQ predicate on the "elimination_efficiency" field.
func EliminationEfficiencyNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldEliminationEfficiency, v))
}

// EliminationEfficiencyIn applies the In predicate on the "elimination_efficiency" field.
func EliminationEfficiencyIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldEliminationEfficiency, vs...))
}

// EliminationEfficiencyNotIn applies the NotIn predicate on the "elimination_efficiency" field.
func EliminationEfficiencyNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldEliminationEfficiency, vs...))
}

// EliminationEfficiencyGT applies the GT predicate on the "elimination_efficiency" field.
func EliminationEfficiencyGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldEliminationEfficiency, v))
}

// EliminationEfficiencyGTE applies the GTE predicate on the "elimination_efficiency" field.
func EliminationEfficiencyGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldEliminationEfficiency, v))
}

// EliminationEfficiencyLT applies the LT predicate on the "elimination_efficiency" field.
func EliminationEfficiencyLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldEliminationEfficiency, v))
}

// EliminationEfficiencyLTE applies the LTE predicate on the "elimination_efficiency" field.
func EliminationEfficiencyLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldEliminationEfficiency, v))
}

// ImpulsiveErrorCountEQ applies the EQ predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountEQ(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldImpulsiveErrorCount, v))
}

// ImpulsiveErrorCountNEQ applies the NEQ predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountNEQ(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldImpulsiveErrorCount, v))
}

// ImpulsiveErrorCountIn applies the In predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountIn(vs ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldImpulsiveErrorCount, vs...))
}

// ImpulsiveErrorCountNotIn applies the NotIn predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountNotIn(vs ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldImpulsiveErrorCount, vs...))
}

// ImpulsiveErrorCountGT applies the GT predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountGT(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldImpulsiveErrorCount, v))
}

// ImpulsiveErrorCountGTE applies the GTE predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountGTE(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldImpulsiveErrorCount, v))
}

// ImpulsiveErrorCountLT applies the LT predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountLT(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldImpulsiveErrorCount, v))
}

// ImpulsiveErrorCountLTE applies the LTE predicate on the "impulsive_error_count" field.
func ImpulsiveErrorCountLTE(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldImpulsiveErrorCount, v))
}

// OverthinkingErrorCountEQ applies the EQ predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountEQ(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldOverthinkingErrorCount, v))
}

// OverthinkingErrorCountNEQ applies the NEQ predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountNEQ(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldOverthinkingErrorCount, v))
}

// OverthinkingErrorCountIn applies the In predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountIn(vs ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldOverthinkingErrorCount, vs...))
}

// OverthinkingErrorCountNotIn applies the NotIn predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountNotIn(vs ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldOverthinkingErrorCount, vs...))
}

// OverthinkingErrorCountGT applies the GT predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountGT(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldOverthinkingErrorCount, v))
}

// OverthinkingErrorCountGTE applies the GTE predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountGTE(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldOverthinkingErrorCount, v))
}

// OverthinkingErrorCountLT applies the LT predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountLT(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldOverthinkingErrorCount, v))
}

// OverthinkingErrorCountLTE applies the LTE predicate on the "overthinking_error_count" field.
func OverthinkingErrorCountLTE(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldOverthinkingErrorCount, v))
}

// GuessProbabilityEQ applies the EQ predicate on the "guess_probability" field.
func GuessProbabilityEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldGuessProbability, v))
}

// GuessProbabilityNEQ applies the NEQ predicate on the "guess_probability" field.
func GuessProbabilityNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldGuessProbability, v))
}

// GuessProbabilityIn applies the In predicate on the "guess_probability" field.
func GuessProbabilityIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldGuessProbability, vs...))
}

// GuessProbabilityNotIn applies the NotIn predicate on the "guess_probability" field.
func GuessProbabilityNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldGuessProbability, vs...))
}

// GuessProbabilityGT applies the GT predicate on the "guess_probability" field.
func GuessProbabilityGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldGuessProbability, v))
}

// GuessProbabilityGTE applies the GTE predicate on the "guess_probability" field.
func GuessProbabilityGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldGuessProbability, v))
}

// GuessProbabilityLT applies the LT predicate on the "guess_probability" field.
func GuessProbabilityLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldGuessProbability, v))
}

// GuessProbabilityLTE applies the LTE predicate on the "guess_probability" field.
func GuessProbabilityLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldGuessProbability, v))
}

// RiskAppetiteEQ applies the EQ predicate on the "risk_appetite" field.
func RiskAppetiteEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldRiskAppetite, v))
}

// RiskAppetiteNEQ applies the NEQ predicate on the "risk_appetite" field.
func RiskAppetiteNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldRiskAppetite, v))
}

// RiskAppetiteIn applies the In predicate on the "risk_appetite" field.
func RiskAppetiteIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldRiskAppetite, vs...))
}

// RiskAppetiteNotIn applies the NotIn predicate on the "risk_appetite" field.
func RiskAppetiteNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldRiskAppetite, vs...))
}

// RiskAppetiteGT applies the GT predicate on the "risk_appetite" field.
func RiskAppetiteGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldRiskAppetite, v))
}

// RiskAppetiteGTE applies the GTE predicate on the "risk_appetite" field.
func RiskAppetiteGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldRiskAppetite, v))
}

// RiskAppetiteLT applies the LT predicate on the "risk_appetite" field.
func RiskAppetiteLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldRiskAppetite, v))
}

// RiskAppetiteLTE applies the LTE predicate on the "risk_appetite" field.
func RiskAppetiteLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldRiskAppetite, v))
}

// ConfidenceIndexEQ applies the EQ predicate on the "confidence_index" field.
func ConfidenceIndexEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldConfidenceIndex, v))
}

// ConfidenceIndexNEQ applies the NEQ predicate on the "confidence_index" field.
func ConfidenceIndexNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldConfidenceIndex, v))
}

// ConfidenceIndexIn applies the In predicate on the "confidence_index" field.
func ConfidenceIndexIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldConfidenceIndex, vs...))
}

// ConfidenceIndexNotIn applies the NotIn predicate on the "confidence_index" field.
func ConfidenceIndexNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldConfidenceIndex, vs...))
}

// ConfidenceIndexGT applies the GT predicate on the "confidence_index" field.
func ConfidenceIndexGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldConfidenceIndex, v))
}

// ConfidenceIndexGTE applies the GTE predicate on the "confidence_index" field.
func ConfidenceIndexGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldConfidenceIndex, v))
}

// ConfidenceIndexLT applies the LT predicate on the "confidence_index" field.
func ConfidenceIndexLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldConfidenceIndex, v))
}

// ConfidenceIndexLTE applies the LTE predicate on the "confidence_index" field.
func ConfidenceIndexLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldConfidenceIndex, v))
}

// ConsistencyIndexEQ applies the EQ predicate on the "consistency_index" field.
func ConsistencyIndexEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldConsistencyIndex, v))
}

// ConsistencyIndexNEQ applies the NEQ predicate on the "consistency_index" field.
func ConsistencyIndexNEQ(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldConsistencyIndex, v))
}

// ConsistencyIndexIn applies the In predicate on the "consistency_index" field.
func ConsistencyIndexIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldConsistencyIndex, vs...))
}

// ConsistencyIndexNotIn applies the NotIn predicate on the "consistency_index" field.
func ConsistencyIndexNotIn(vs ...float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldConsistencyIndex, vs...))
}

// ConsistencyIndexGT applies the GT predicate on the "consistency_index" field.
func ConsistencyIndexGT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldConsistencyIndex, v))
}

// ConsistencyIndexGTE applies the GTE predicate on the "consistency_index" field.
func ConsistencyIndexGTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldConsistencyIndex, v))
}

// ConsistencyIndexLT applies the LT predicate on the "consistency_index" field.
func ConsistencyIndexLT(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldConsistencyIndex, v))
}

// ConsistencyIndexLTE applies the LTE predicate on the "consistency_index" field.
func ConsistencyIndexLTE(v float64) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldConsistencyIndex, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...int) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.FieldNotIn(FieldAttemptID, vs...))
}

// HasAttempt applies the HasEdge predicate on the "attempt" edge.
func HasAttempt() predicate.MetricsRecord {
	return predicate.MetricsRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, AttemptTable, AttemptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptWith applies the HasEdge predicate on the "attempt" edge with a given conditions (other predicates).
func HasAttemptWith(preds ...predicate.Attempt) predicate.MetricsRecord {
	return predicate.MetricsRecord(func(s *sql.Selector) {
		step := newAttemptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MetricsRecord) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MetricsRecord) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MetricsRecord) predicate.MetricsRecord {
	return predicate.MetricsRecord(sql.NotPredicates(p))
}
