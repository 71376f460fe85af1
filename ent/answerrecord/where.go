// Code generated by ent, DO NOT EDIT.

package answerrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/examiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldUserID, v))
}

// SelectedOptionID applies equality check predicate on the "selected_option_id" field. It's identical to SelectedOptionIDEQ.
func SelectedOptionID(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldSelectedOptionID, v))
}

// FirstSelectedOptionID applies equality check predicate on the "first_selected_option_id" field. It's identical to FirstSelectedOptionIDEQ.
func FirstSelectedOptionID(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldFirstSelectedOptionID, v))
}

// TimeSpentSeconds applies equality check predicate on the "time_spent_seconds" field. It's identical to TimeSpentSecondsEQ.
func TimeSpentSeconds(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// SelectionChangeCount applies equality check predicate on the "selection_change_count" field. It's identical to SelectionChangeCountEQ.
func SelectionChangeCount(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldSelectionChangeCount, v))
}

// HoverCount applies equality check predicate on the "hover_count" field. It's identical to HoverCountEQ.
func HoverCount(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldHoverCount, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldCorrect, v))
}

// AnsweredAt applies equality check predicate on the "answered_at" field. It's identical to AnsweredAtEQ.
func AnsweredAt(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldAnsweredAt, v))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldAttemptID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldQuestionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldContainsFold(FieldUserID, v))
}

// SelectedOptionIDEQ applies the EQ predicate on the "selected_option_id" field.
func SelectedOptionIDEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldSelectedOptionID, v))
}

// SelectedOptionIDNEQ applies the NEQ predicate on the "selected_option_id" field.
func SelectedOptionIDNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldSelectedOptionID, v))
}

// SelectedOptionIDIn applies the In predicate on the "selected_option_id" field.
func SelectedOptionIDIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldSelectedOptionID, vs...))
}

// SelectedOptionIDNotIn applies the NotIn predicate on the "selected_option_id" field.
func SelectedOptionIDNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldSelectedOptionID, vs...))
}

// SelectedOptionIDGT applies the GT predicate on the "selected_option_id" field.
func SelectedOptionIDGT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldSelectedOptionID, v))
}

// SelectedOptionIDGTE applies the GTE predicate on the "selected_option_id" field.
func SelectedOptionIDGTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldSelectedOptionID, v))
}

// SelectedOptionIDLT applies the LT predicate on the "selected_option_id" field.
func SelectedOptionIDLT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldSelectedOptionID, v))
}

// SelectedOptionIDLTE applies the LTE predicate on the "selected_option_id" field.
func SelectedOptionIDLTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldSelectedOptionID, v))
}

// SelectedOptionIDIsNil applies the IsNil predicate on the "selected_option_id" field.
func SelectedOptionIDIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldSelectedOptionID))
}

// SelectedOptionIDNotNil applies the NotNil predicate on the "selected_option_id" field.
func SelectedOptionIDNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldSelectedOptionID))
}

// FirstSelectedOptionIDEQ applies the EQ predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldFirstSelectedOptionID, v))
}

// FirstSelectedOptionIDNEQ applies the NEQ predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldFirstSelectedOptionID, v))
}

// FirstSelectedOptionIDIn applies the In predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldFirstSelectedOptionID, vs...))
}

// FirstSelectedOptionIDNotIn applies the NotIn predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldFirstSelectedOptionID, vs...))
}

// FirstSelectedOptionIDGT applies the GT predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDGT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldFirstSelectedOptionID, v))
}

// FirstSelectedOptionIDGTE applies the GTE predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDGTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldFirstSelectedOptionID, v))
}

// FirstSelectedOptionIDLT applies the LT predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDLT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldFirstSelectedOptionID, v))
}

// FirstSelectedOptionIDLTE applies the LTE predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDLTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldFirstSelectedOptionID, v))
}

// FirstSelectedOptionIDIsNil applies the IsNil predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldFirstSelectedOptionID))
}

// FirstSelectedOptionIDNotNil applies the NotNil predicate on the "first_selected_option_id" field.
func FirstSelectedOptionIDNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldFirstSelectedOptionID))
}

// TimeSpentSecondsEQ applies the EQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsNEQ applies the NEQ predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsIn applies the In predicate on the "time_spent_seconds" field.
func TimeSpentSecondsIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsNotIn applies the NotIn predicate on the "time_spent_seconds" field.
func TimeSpentSecondsNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldTimeSpentSeconds, vs...))
}

// TimeSpentSecondsGT applies the GT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsGTE applies the GTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsGTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLT applies the LT predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldTimeSpentSeconds, v))
}

// TimeSpentSecondsLTE applies the LTE predicate on the "time_spent_seconds" field.
func TimeSpentSecondsLTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldTimeSpentSeconds, v))
}

// SelectionChangeCountEQ applies the EQ predicate on the "selection_change_count" field.
func SelectionChangeCountEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldSelectionChangeCount, v))
}

// SelectionChangeCountNEQ applies the NEQ predicate on the "selection_change_count" field.
func SelectionChangeCountNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldSelectionChangeCount, v))
}

// SelectionChangeCountIn applies the In predicate on the "selection_change_count" field.
func SelectionChangeCountIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldSelectionChangeCount, vs...))
}

// SelectionChangeCountNotIn applies the NotIn predicate on the "selection_change_count" field.
func SelectionChangeCountNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldSelectionChangeCount, vs...))
}

// SelectionChangeCountGT applies the GT predicate on the "selection_change_count" field.
func SelectionChangeCountGT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldSelectionChangeCount, v))
}

// SelectionChangeCountGTE applies the GTE predicate on the "selection_change_count" field.
func SelectionChangeCountGTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldSelectionChangeCount, v))
}

// SelectionChangeCountLT applies the LT predicate on the "selection_change_count" field.
func SelectionChangeCountLT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldSelectionChangeCount, v))
}

// SelectionChangeCountLTE applies the LTE predicate on the "selection_change_count" field.
func SelectionChangeCountLTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldSelectionChangeCount, v))
}

// HoverCountEQ applies the EQ predicate on the "hover_count" field.
func HoverCountEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldHoverCount, v))
}

// HoverCountNEQ applies the NEQ predicate on the "hover_count" field.
func HoverCountNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldHoverCount, v))
}

// HoverCountIn applies the In predicate on the "hover_count" field.
func HoverCountIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldHoverCount, vs...))
}

// HoverCountNotIn applies the NotIn predicate on the "hover_count" field.
func HoverCountNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldHoverCount, vs...))
}

// HoverCountGT applies the GT predicate on the "hover_count" field.
func HoverCountGT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldHoverCount, v))
}

// HoverCountGTE applies the GTE predicate on the "hover_count" field.
func HoverCountGTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldHoverCount, v))
}

// HoverCountLT applies the LT predicate on the "hover_count" field.
func HoverCountLT(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldHoverCount, v))
}

// HoverCountLTE applies the LTE predicate on the "hover_count" field.
func HoverCountLTE(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldHoverCount, v))
}

// EliminatedOptionIdsIsNil applies the IsNil predicate on the "eliminated_option_ids" field.
func EliminatedOptionIdsIsNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIsNull(FieldEliminatedOptionIds))
}

// EliminatedOptionIdsNotNil applies the NotNil predicate on the "eliminated_option_ids" field.
func EliminatedOptionIdsNotNil() predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotNull(FieldEliminatedOptionIds))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldCorrect, v))
}

// ClassificationEQ applies the EQ predicate on the "classification" field.
func ClassificationEQ(v Classification) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldClassification, v))
}

// ClassificationNEQ applies the NEQ predicate on the "classification" field.
func ClassificationNEQ(v Classification) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldClassification, v))
}

// ClassificationIn applies the In predicate on the "classification" field.
func ClassificationIn(vs ...Classification) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldClassification, vs...))
}

// ClassificationNotIn applies the NotIn predicate on the "classification" field.
func ClassificationNotIn(vs ...Classification) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldClassification, vs...))
}

// AnsweredAtEQ applies the EQ predicate on the "answered_at" field.
func AnsweredAtEQ(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldAnsweredAt, v))
}

// AnsweredAtNEQ applies the NEQ predicate on the "answered_at" field.
func AnsweredAtNEQ(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldAnsweredAt, v))
}

// AnsweredAtIn applies the In predicate on the "answered_at" field.
func AnsweredAtIn(vs ...time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldAnsweredAt, vs...))
}

// AnsweredAtNotIn applies the NotIn predicate on the "answered_at" field.
func AnsweredAtNotIn(vs ...time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldAnsweredAt, vs...))
}

// AnsweredAtGT applies the GT predicate on the "answered_at" field.
func AnsweredAtGT(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGT(FieldAnsweredAt, v))
}

// AnsweredAtGTE applies the GTE predicate on the "answered_at" field.
func AnsweredAtGTE(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldGTE(FieldAnsweredAt, v))
}

// AnsweredAtLT applies the LT predicate on the "answered_at" field.
func AnsweredAtLT(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLT(FieldAnsweredAt, v))
}

// AnsweredAtLTE applies the LTE predicate on the "answered_at" field.
func AnsweredAtLTE(v time.Time) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldLTE(FieldAnsweredAt, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldAttemptID, vs...))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...int) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.FieldNotIn(FieldQuestionID, vs...))
}

// HasAttempt applies the HasEdge predicate on the "attempt" edge.
func HasAttempt() predicate.AnswerRecord {
	return predicate.AnswerRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AttemptTable, AttemptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptWith applies the HasEdge predicate on the "attempt" edge with a given conditions (other predicates).
func HasAttemptWith(preds ...predicate.Attempt) predicate.AnswerRecord {
	return predicate.AnswerRecord(func(s *sql.Selector) {
		step := newAttemptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestion applies the HasEdge predicate on the "question" edge.
func HasQuestion() predicate.AnswerRecord {
	return predicate.AnswerRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, QuestionTable, QuestionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionWith applies the HasEdge predicate on the "question" edge with a given conditions (other predicates).
func HasQuestionWith(preds ...predicate.Question) predicate.AnswerRecord {
	return predicate.AnswerRecord(func(s *sql.Selector) {
		step := newQuestionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerRecord) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerRecord) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerRecord) predicate.AnswerRecord {
	return predicate.AnswerRecord(sql.NotPredicates(p))
}
