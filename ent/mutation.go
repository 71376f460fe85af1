// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/llmrequestevent"
	"github.com/abhisek/examiz/ent/metricsrecord"
	"github.com/abhisek/examiz/ent/predicate"
	"github.com/abhisek/examiz/ent/question"
	"github.com/abhisek/examiz/ent/questionoption"
	"github.com/abhisek/examiz/ent/subject"
	"github.com/abhisek/examiz/ent/test"
	"github.com/abhisek/examiz/ent/topic"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerRecord    = "AnswerRecord"
	TypeAttempt         = "Attempt"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeMetricsRecord   = "MetricsRecord"
	TypeQuestion        = "Question"
	TypeQuestionOption  = "QuestionOption"
	TypeSubject         = "Subject"
	TypeTest            = "Test"
	TypeTopic           = "Topic"
)

// AnswerRecordMutation represents an operation that mutates the AnswerRecord nodes in the graph.
type AnswerRecordMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	user_id                     *string
	selected_option_id          *int
	addselected_option_id       *int
	first_selected_option_id    *int
	addfirst_selected_option_id *int
	time_spent_seconds          *int
	addtime_spent_seconds       *int
	selection_change_count      *int
	addselection_change_count   *int
	hover_count                 *int
	addhover_count              *int
	eliminated_option_ids       *[]int
	appendeliminated_option_ids []int
	correct                     *bool
	classification              *answerrecord.Classification
	answered_at                 *time.Time
	clearedFields               map[string]struct{}
	attempt                     *int
	clearedattempt              bool
	question                    *int
	clearedquestion             bool
	done                        bool
	oldValue                    func(context.Context) (*AnswerRecord, error)
	predicates                  []predicate.AnswerRecord
}

var _ ent.Mutation = (*AnswerRecordMutation)(nil)

// answerrecordOption allows management of the mutation configuration using functional options.
type answerrecordOption func(*AnswerRecordMutation)

// newAnswerRecordMutation creates new mutation for the AnswerRecord entity.
func newAnswerRecordMutation(c config, op Op, opts ...answerrecordOption) *AnswerRecordMutation {
	m := &AnswerRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerRecordID sets the ID field of the mutation.
func withAnswerRecordID(id int) answerrecordOption {
	return func(m *AnswerRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerRecord
		)
		m.oldValue = func(ctx context.Context) (*AnswerRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerRecord sets the old AnswerRecord of the mutation.
func withAnswerRecord(node *AnswerRecord) answerrecordOption {
	return func(m *AnswerRecordMutation) {
		m.oldValue = func(context.Context) (*AnswerRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AnswerRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnswerRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnswerRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetSelectedOptionID sets the "selected_option_id" field.
func (m *AnswerRecordMutation) SetSelectedOptionID(i int) {
	m.selected_option_id = &i
	m.addselected_option_id = nil
}

// SelectedOptionID returns the value of the "selected_option_id" field in the mutation.
func (m *AnswerRecordMutation) SelectedOptionID() (r int, exists bool) {
	v := m.selected_option_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedOptionID returns the old "selected_option_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldSelectedOptionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedOptionID: %w", err)
	}
	return oldValue.SelectedOptionID, nil
}

// AddSelectedOptionID adds i to the "selected_option_id" field.
func (m *AnswerRecordMutation) AddSelectedOptionID(i int) {
	if m.addselected_option_id != nil {
		*m.addselected_option_id += i
	} else {
		m.addselected_option_id = &i
	}
}

// AddedSelectedOptionID returns the value that was added to the "selected_option_id" field in this mutation.
func (m *AnswerRecordMutation) AddedSelectedOptionID() (r int, exists bool) {
	v := m.addselected_option_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSelectedOptionID clears the value of the "selected_option_id" field.
func (m *AnswerRecordMutation) ClearSelectedOptionID() {
	m.selected_option_id = nil
	m.addselected_option_id = nil
	m.clearedFields[answerrecord.FieldSelectedOptionID] = struct{}{}
}

// SelectedOptionIDCleared returns if the "selected_option_id" field was cleared in this mutation.
func (m *AnswerRecordMutation) SelectedOptionIDCleared() bool {
	_, ok := m.clearedFields[answerrecord.FieldSelectedOptionID]
	return ok
}

// ResetSelectedOptionID resets all changes to the "selected_option_id" field.
func (m *AnswerRecordMutation) ResetSelectedOptionID() {
	m.selected_option_id = nil
	m.addselected_option_id = nil
	delete(m.clearedFields, answerrecord.FieldSelectedOptionID)
}

// SetFirstSelectedOptionID sets the "first_selected_option_id" field.
func (m *AnswerRecordMutation) SetFirstSelectedOptionID(i int) {
	m.first_selected_option_id = &i
	m.addfirst_selected_option_id = nil
}

// FirstSelectedOptionID returns the value of the "first_selected_option_id" field in the mutation.
func (m *AnswerRecordMutation) FirstSelectedOptionID() (r int, exists bool) {
	v := m.first_selected_option_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSelectedOptionID returns the old "first_selected_option_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldFirstSelectedOptionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSelectedOptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSelectedOptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSelectedOptionID: %w", err)
	}
	return oldValue.FirstSelectedOptionID, nil
}

// AddFirstSelectedOptionID adds i to the "first_selected_option_id" field.
func (m *AnswerRecordMutation) AddFirstSelectedOptionID(i int) {
	if m.addfirst_selected_option_id != nil {
		*m.addfirst_selected_option_id += i
	} else {
		m.addfirst_selected_option_id = &i
	}
}

// AddedFirstSelectedOptionID returns the value that was added to the "first_selected_option_id" field in this mutation.
func (m *AnswerRecordMutation) AddedFirstSelectedOptionID() (r int, exists bool) {
	v := m.addfirst_selected_option_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstSelectedOptionID clears the value of the "first_selected_option_id" field.
func (m *AnswerRecordMutation) ClearFirstSelectedOptionID() {
	m.first_selected_option_id = nil
	m.addfirst_selected_option_id = nil
	m.clearedFields[answerrecord.FieldFirstSelectedOptionID] = struct{}{}
}

// FirstSelectedOptionIDCleared returns if the "first_selected_option_id" field was cleared in this mutation.
func (m *AnswerRecordMutation) FirstSelectedOptionIDCleared() bool {
	_, ok := m.clearedFields[answerrecord.FieldFirstSelectedOptionID]
	return ok
}

// ResetFirstSelectedOptionID resets all changes to the "first_selected_option_id" field.
func (m *AnswerRecordMutation) ResetFirstSelectedOptionID() {
	m.first_selected_option_id = nil
	m.addfirst_selected_option_id = nil
	delete(m.clearedFields, answerrecord.FieldFirstSelectedOptionID)
}

// SetTimeSpentSeconds sets the "time_spent_seconds" field.
func (m *AnswerRecordMutation) SetTimeSpentSeconds(i int) {
	m.time_spent_seconds = &i
	m.addtime_spent_seconds = nil
}

// TimeSpentSeconds returns the value of the "time_spent_seconds" field in the mutation.
func (m *AnswerRecordMutation) TimeSpentSeconds() (r int, exists bool) {
	v := m.time_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentSeconds returns the old "time_spent_seconds" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldTimeSpentSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentSeconds: %w", err)
	}
	return oldValue.TimeSpentSeconds, nil
}

// AddTimeSpentSeconds adds i to the "time_spent_seconds" field.
func (m *AnswerRecordMutation) AddTimeSpentSeconds(i int) {
	if m.addtime_spent_seconds != nil {
		*m.addtime_spent_seconds += i
	} else {
		m.addtime_spent_seconds = &i
	}
}

// AddedTimeSpentSeconds returns the value that was added to the "time_spent_seconds" field in this mutation.
func (m *AnswerRecordMutation) AddedTimeSpentSeconds() (r int, exists bool) {
	v := m.addtime_spent_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentSeconds resets all changes to the "time_spent_seconds" field.
func (m *AnswerRecordMutation) ResetTimeSpentSeconds() {
	m.time_spent_seconds = nil
	m.addtime_spent_seconds = nil
}

// SetSelectionChangeCount sets the "selection_change_count" field.
func (m *AnswerRecordMutation) SetSelectionChangeCount(i int) {
	m.selection_change_count = &i
	m.addselection_change_count = nil
}

// SelectionChangeCount returns the value of the "selection_change_count" field in the mutation.
func (m *AnswerRecordMutation) SelectionChangeCount() (r int, exists bool) {
	v := m.selection_change_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectionChangeCount returns the old "selection_change_count" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldSelectionChangeCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectionChangeCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectionChangeCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectionChangeCount: %w", err)
	}
	return oldValue.SelectionChangeCount, nil
}

// AddSelectionChangeCount adds i to the "selection_change_count" field.
func (m *AnswerRecordMutation) AddSelectionChangeCount(i int) {
	if m.addselection_change_count != nil {
		*m.addselection_change_count += i
	} else {
		m.addselection_change_count = &i
	}
}

// AddedSelectionChangeCount returns the value that was added to the "selection_change_count" field in this mutation.
func (m *AnswerRecordMutation) AddedSelectionChangeCount() (r int, exists bool) {
	v := m.addselection_change_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSelectionChangeCount resets all changes to the "selection_change_count" field.
func (m *AnswerRecordMutation) ResetSelectionChangeCount() {
	m.selection_change_count = nil
	m.addselection_change_count = nil
}

// SetHoverCount sets the "hover_count" field.
func (m *AnswerRecordMutation) SetHoverCount(i int) {
	m.hover_count = &i
	m.addhover_count = nil
}

// HoverCount returns the value of the "hover_count" field in the mutation.
func (m *AnswerRecordMutation) HoverCount() (r int, exists bool) {
	v := m.hover_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHoverCount returns the old "hover_count" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldHoverCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoverCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoverCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoverCount: %w", err)
	}
	return oldValue.HoverCount, nil
}

// AddHoverCount adds i to the "hover_count" field.
func (m *AnswerRecordMutation) AddHoverCount(i int) {
	if m.addhover_count != nil {
		*m.addhover_count += i
	} else {
		m.addhover_count = &i
	}
}

// AddedHoverCount returns the value that was added to the "hover_count" field in this mutation.
func (m *AnswerRecordMutation) AddedHoverCount() (r int, exists bool) {
	v := m.addhover_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHoverCount resets all changes to the "hover_count" field.
func (m *AnswerRecordMutation) ResetHoverCount() {
	m.hover_count = nil
	m.addhover_count = nil
}

// SetEliminatedOptionIds sets the "eliminated_option_ids" field.
func (m *AnswerRecordMutation) SetEliminatedOptionIds(i []int) {
	m.eliminated_option_ids = &i
	m.appendeliminated_option_ids = nil
}

// EliminatedOptionIds returns the value of the "eliminated_option_ids" field in the mutation.
func (m *AnswerRecordMutation) EliminatedOptionIds() (r []int, exists bool) {
	v := m.eliminated_option_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldEliminatedOptionIds returns the old "eliminated_option_ids" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldEliminatedOptionIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEliminatedOptionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEliminatedOptionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEliminatedOptionIds: %w", err)
	}
	return oldValue.EliminatedOptionIds, nil
}

// AppendEliminatedOptionIds adds i to the "eliminated_option_ids" field.
func (m *AnswerRecordMutation) AppendEliminatedOptionIds(i []int) {
	m.appendeliminated_option_ids = append(m.appendeliminated_option_ids, i...)
}

// AppendedEliminatedOptionIds returns the list of values that were appended to the "eliminated_option_ids" field in this mutation.
func (m *AnswerRecordMutation) AppendedEliminatedOptionIds() ([]int, bool) {
	if len(m.appendeliminated_option_ids) == 0 {
		return nil, false
	}
	return m.appendeliminated_option_ids, true
}

// ClearEliminatedOptionIds clears the value of the "eliminated_option_ids" field.
func (m *AnswerRecordMutation) ClearEliminatedOptionIds() {
	m.eliminated_option_ids = nil
	m.appendeliminated_option_ids = nil
	m.clearedFields[answerrecord.FieldEliminatedOptionIds] = struct{}{}
}

// EliminatedOptionIdsCleared returns if the "eliminated_option_ids" field was cleared in this mutation.
func (m *AnswerRecordMutation) EliminatedOptionIdsCleared() bool {
	_, ok := m.clearedFields[answerrecord.FieldEliminatedOptionIds]
	return ok
}

// ResetEliminatedOptionIds resets all changes to the "eliminated_option_ids" field.
func (m *AnswerRecordMutation) ResetEliminatedOptionIds() {
	m.eliminated_option_ids = nil
	m.appendeliminated_option_ids = nil
	delete(m.clearedFields, answerrecord.FieldEliminatedOptionIds)
}

// SetCorrect sets the "correct" field.
func (m *AnswerRecordMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerRecordMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerRecordMutation) ResetCorrect() {
	m.correct = nil
}

// SetClassification sets the "classification" field.
func (m *AnswerRecordMutation) SetClassification(a answerrecord.Classification) {
	m.classification = &a
}

// Classification returns the value of the "classification" field in the mutation.
func (m *AnswerRecordMutation) Classification() (r answerrecord.Classification, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldClassification(ctx context.Context) (v answerrecord.Classification, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *AnswerRecordMutation) ResetClassification() {
	m.classification = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *AnswerRecordMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *AnswerRecordMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *AnswerRecordMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *AnswerRecordMutation) SetAttemptID(i int) {
	m.attempt = &i
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AnswerRecordMutation) AttemptID() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldAttemptID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AnswerRecordMutation) ResetAttemptID() {
	m.attempt = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AnswerRecordMutation) SetQuestionID(i int) {
	m.question = &i
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AnswerRecordMutation) QuestionID() (r int, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AnswerRecordMutation) ResetQuestionID() {
	m.question = nil
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (m *AnswerRecordMutation) ClearAttempt() {
	m.clearedattempt = true
	m.clearedFields[answerrecord.FieldAttemptID] = struct{}{}
}

// AttemptCleared reports if the "attempt" edge to the Attempt entity was cleared.
func (m *AnswerRecordMutation) AttemptCleared() bool {
	return m.clearedattempt
}

// AttemptIDs returns the "attempt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AttemptID instead. It exists only for internal usage by the builders.
func (m *AnswerRecordMutation) AttemptIDs() (ids []int) {
	if id := m.attempt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAttempt resets all changes to the "attempt" edge.
func (m *AnswerRecordMutation) ResetAttempt() {
	m.attempt = nil
	m.clearedattempt = false
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *AnswerRecordMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[answerrecord.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *AnswerRecordMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *AnswerRecordMutation) QuestionIDs() (ids []int) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *AnswerRecordMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the AnswerRecordMutation builder.
func (m *AnswerRecordMutation) Where(ps ...predicate.AnswerRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerRecord).
func (m *AnswerRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, answerrecord.FieldUserID)
	}
	if m.selected_option_id != nil {
		fields = append(fields, answerrecord.FieldSelectedOptionID)
	}
	if m.first_selected_option_id != nil {
		fields = append(fields, answerrecord.FieldFirstSelectedOptionID)
	}
	if m.time_spent_seconds != nil {
		fields = append(fields, answerrecord.FieldTimeSpentSeconds)
	}
	if m.selection_change_count != nil {
		fields = append(fields, answerrecord.FieldSelectionChangeCount)
	}
	if m.hover_count != nil {
		fields = append(fields, answerrecord.FieldHoverCount)
	}
	if m.eliminated_option_ids != nil {
		fields = append(fields, answerrecord.FieldEliminatedOptionIds)
	}
	if m.correct != nil {
		fields = append(fields, answerrecord.FieldCorrect)
	}
	if m.classification != nil {
		fields = append(fields, answerrecord.FieldClassification)
	}
	if m.answered_at != nil {
		fields = append(fields, answerrecord.FieldAnsweredAt)
	}
	if m.attempt != nil {
		fields = append(fields, answerrecord.FieldAttemptID)
	}
	if m.question != nil {
		fields = append(fields, answerrecord.FieldQuestionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerrecord.FieldUserID:
		return m.UserID()
	case answerrecord.FieldSelectedOptionID:
		return m.SelectedOptionID()
	case answerrecord.FieldFirstSelectedOptionID:
		return m.FirstSelectedOptionID()
	case answerrecord.FieldTimeSpentSeconds:
		return m.TimeSpentSeconds()
	case answerrecord.FieldSelectionChangeCount:
		return m.SelectionChangeCount()
	case answerrecord.FieldHoverCount:
		return m.HoverCount()
	case answerrecord.FieldEliminatedOptionIds:
		return m.EliminatedOptionIds()
	case answerrecord.FieldCorrect:
		return m.Correct()
	case answerrecord.FieldClassification:
		return m.Classification()
	case answerrecord.FieldAnsweredAt:
		return m.AnsweredAt()
	case answerrecord.FieldAttemptID:
		return m.AttemptID()
	case answerrecord.FieldQuestionID:
		return m.QuestionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerrecord.FieldUserID:
		return m.OldUserID(ctx)
	case answerrecord.FieldSelectedOptionID:
		return m.OldSelectedOptionID(ctx)
	case answerrecord.FieldFirstSelectedOptionID:
		return m.OldFirstSelectedOptionID(ctx)
	case answerrecord.FieldTimeSpentSeconds:
		return m.OldTimeSpentSeconds(ctx)
	case answerrecord.FieldSelectionChangeCount:
		return m.OldSelectionChangeCount(ctx)
	case answerrecord.FieldHoverCount:
		return m.OldHoverCount(ctx)
	case answerrecord.FieldEliminatedOptionIds:
		return m.OldEliminatedOptionIds(ctx)
	case answerrecord.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerrecord.FieldClassification:
		return m.OldClassification(ctx)
	case answerrecord.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	case answerrecord.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case answerrecord.FieldQuestionID:
		return m.OldQuestionID(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case answerrecord.FieldSelectedOptionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedOptionID(v)
		return nil
	case answerrecord.FieldFirstSelectedOptionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSelectedOptionID(v)
		return nil
	case answerrecord.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentSeconds(v)
		return nil
	case answerrecord.FieldSelectionChangeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectionChangeCount(v)
		return nil
	case answerrecord.FieldHoverCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoverCount(v)
		return nil
	case answerrecord.FieldEliminatedOptionIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEliminatedOptionIds(v)
		return nil
	case answerrecord.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerrecord.FieldClassification:
		v, ok := value.(answerrecord.Classification)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case answerrecord.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	case answerrecord.FieldAttemptID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case answerrecord.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerRecordMutation) AddedFields() []string {
	var fields []string
	if m.addselected_option_id != nil {
		fields = append(fields, answerrecord.FieldSelectedOptionID)
	}
	if m.addfirst_selected_option_id != nil {
		fields = append(fields, answerrecord.FieldFirstSelectedOptionID)
	}
	if m.addtime_spent_seconds != nil {
		fields = append(fields, answerrecord.FieldTimeSpentSeconds)
	}
	if m.addselection_change_count != nil {
		fields = append(fields, answerrecord.FieldSelectionChangeCount)
	}
	if m.addhover_count != nil {
		fields = append(fields, answerrecord.FieldHoverCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerrecord.FieldSelectedOptionID:
		return m.AddedSelectedOptionID()
	case answerrecord.FieldFirstSelectedOptionID:
		return m.AddedFirstSelectedOptionID()
	case answerrecord.FieldTimeSpentSeconds:
		return m.AddedTimeSpentSeconds()
	case answerrecord.FieldSelectionChangeCount:
		return m.AddedSelectionChangeCount()
	case answerrecord.FieldHoverCount:
		return m.AddedHoverCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerrecord.FieldSelectedOptionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectedOptionID(v)
		return nil
	case answerrecord.FieldFirstSelectedOptionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstSelectedOptionID(v)
		return nil
	case answerrecord.FieldTimeSpentSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentSeconds(v)
		return nil
	case answerrecord.FieldSelectionChangeCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSelectionChangeCount(v)
		return nil
	case answerrecord.FieldHoverCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHoverCount(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(answerrecord.FieldSelectedOptionID) {
		fields = append(fields, answerrecord.FieldSelectedOptionID)
	}
	if m.FieldCleared(answerrecord.FieldFirstSelectedOptionID) {
		fields = append(fields, answerrecord.FieldFirstSelectedOptionID)
	}
	if m.FieldCleared(answerrecord.FieldEliminatedOptionIds) {
		fields = append(fields, answerrecord.FieldEliminatedOptionIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerRecordMutation) ClearField(name string) error {
	switch name {
	case answerrecord.FieldSelectedOptionID:
		m.ClearSelectedOptionID()
		return nil
	case answerrecord.FieldFirstSelectedOptionID:
		m.ClearFirstSelectedOptionID()
		return nil
	case answerrecord.FieldEliminatedOptionIds:
		m.ClearEliminatedOptionIds()
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerRecordMutation) ResetField(name string) error {
	switch name {
	case answerrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case answerrecord.FieldSelectedOptionID:
		m.ResetSelectedOptionID()
		return nil
	case answerrecord.FieldFirstSelectedOptionID:
		m.ResetFirstSelectedOptionID()
		return nil
	case answerrecord.FieldTimeSpentSeconds:
		m.ResetTimeSpentSeconds()
		return nil
	case answerrecord.FieldSelectionChangeCount:
		m.ResetSelectionChangeCount()
		return nil
	case answerrecord.FieldHoverCount:
		m.ResetHoverCount()
		return nil
	case answerrecord.FieldEliminatedOptionIds:
		m.ResetEliminatedOptionIds()
		return nil
	case answerrecord.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerrecord.FieldClassification:
		m.ResetClassification()
		return nil
	case answerrecord.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	case answerrecord.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case answerrecord.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.attempt != nil {
		edges = append(edges, answerrecord.EdgeAttempt)
	}
	if m.question != nil {
		edges = append(edges, answerrecord.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case answerrecord.EdgeAttempt:
		if id := m.attempt; id != nil {
			return []ent.Value{*id}
		}
	case answerrecord.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedattempt {
		edges = append(edges, answerrecord.EdgeAttempt)
	}
	if m.clearedquestion {
		edges = append(edges, answerrecord.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case answerrecord.EdgeAttempt:
		return m.clearedattempt
	case answerrecord.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerRecordMutation) ClearEdge(name string) error {
	switch name {
	case answerrecord.EdgeAttempt:
		m.ClearAttempt()
		return nil
	case answerrecord.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerRecordMutation) ResetEdge(name string) error {
	switch name {
	case answerrecord.EdgeAttempt:
		m.ResetAttempt()
		return nil
	case answerrecord.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord edge %s", name)
}

// AttemptMutation represents an operation that mutates the Attempt nodes in the graph.
type AttemptMutation struct {
	config
	op             Op
	typ            string
	id             *int
	public_id      *string
	user_id        *string
	status         *attempt.Status
	score          *int
	addscore       *int
	total_marks    *int
	addtotal_marks *int
	started_at     *time.Time
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	test           *int
	clearedtest    bool
	answers        map[int]struct{}
	removedanswers map[int]struct{}
	clearedanswers bool
	metrics        *int
	clearedmetrics bool
	done           bool
	oldValue       func(context.Context) (*Attempt, error)
	predicates     []predicate.Attempt
}

var _ ent.Mutation = (*AttemptMutation)(nil)

// attemptOption allows management of the mutation configuration using functional options.
type attemptOption func(*AttemptMutation)

// newAttemptMutation creates new mutation for the Attempt entity.
func newAttemptMutation(c config, op Op, opts ...attemptOption) *AttemptMutation {
	m := &AttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptID sets the ID field of the mutation.
func withAttemptID(id int) attemptOption {
	return func(m *AttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *Attempt
		)
		m.oldValue = func(ctx context.Context) (*Attempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttempt sets the old Attempt of the mutation.
func withAttempt(node *Attempt) attemptOption {
	return func(m *AttemptMutation) {
		m.oldValue = func(context.Context) (*Attempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *AttemptMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *AttemptMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *AttemptMutation) ResetPublicID() {
	m.public_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *AttemptMutation) SetStatus(a attempt.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AttemptMutation) Status() (r attempt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldStatus(ctx context.Context) (v attempt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AttemptMutation) ResetStatus() {
	m.status = nil
}

// SetScore sets the "score" field.
func (m *AttemptMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AttemptMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *AttemptMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AttemptMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AttemptMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetTotalMarks sets the "total_marks" field.
func (m *AttemptMutation) SetTotalMarks(i int) {
	m.total_marks = &i
	m.addtotal_marks = nil
}

// TotalMarks returns the value of the "total_marks" field in the mutation.
func (m *AttemptMutation) TotalMarks() (r int, exists bool) {
	v := m.total_marks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMarks returns the old "total_marks" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTotalMarks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMarks: %w", err)
	}
	return oldValue.TotalMarks, nil
}

// AddTotalMarks adds i to the "total_marks" field.
func (m *AttemptMutation) AddTotalMarks(i int) {
	if m.addtotal_marks != nil {
		*m.addtotal_marks += i
	} else {
		m.addtotal_marks = &i
	}
}

// AddedTotalMarks returns the value that was added to the "total_marks" field in this mutation.
func (m *AttemptMutation) AddedTotalMarks() (r int, exists bool) {
	v := m.addtotal_marks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMarks resets all changes to the "total_marks" field.
func (m *AttemptMutation) ResetTotalMarks() {
	m.total_marks = nil
	m.addtotal_marks = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AttemptMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AttemptMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AttemptMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AttemptMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AttemptMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AttemptMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[attempt.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AttemptMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[attempt.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AttemptMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, attempt.FieldCompletedAt)
}

// SetTestID sets the "test_id" field.
func (m *AttemptMutation) SetTestID(i int) {
	m.test = &i
}

// TestID returns the value of the "test_id" field in the mutation.
func (m *AttemptMutation) TestID() (r int, exists bool) {
	v := m.test
	if v == nil {
		return
	}
	return *v, true
}

// OldTestID returns the old "test_id" field's value of the Attempt entity.
// If the Attempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptMutation) OldTestID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestID: %w", err)
	}
	return oldValue.TestID, nil
}

// ResetTestID resets all changes to the "test_id" field.
func (m *AttemptMutation) ResetTestID() {
	m.test = nil
}

// ClearTest clears the "test" edge to the Test entity.
func (m *AttemptMutation) ClearTest() {
	m.clearedtest = true
	m.clearedFields[attempt.FieldTestID] = struct{}{}
}

// TestCleared reports if the "test" edge to the Test entity was cleared.
func (m *AttemptMutation) TestCleared() bool {
	return m.clearedtest
}

// TestIDs returns the "test" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestID instead. It exists only for internal usage by the builders.
func (m *AttemptMutation) TestIDs() (ids []int) {
	if id := m.test; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTest resets all changes to the "test" edge.
func (m *AttemptMutation) ResetTest() {
	m.test = nil
	m.clearedtest = false
}

// AddAnswerIDs adds the "answers" edge to the AnswerRecord entity by ids.
func (m *AttemptMutation) AddAnswerIDs(ids ...int) {
	if m.answers == nil {
		m.answers = make(map[int]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the AnswerRecord entity.
func (m *AttemptMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the AnswerRecord entity was cleared.
func (m *AttemptMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the AnswerRecord entity by IDs.
func (m *AttemptMutation) RemoveAnswerIDs(ids ...int) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the AnswerRecord entity.
func (m *AttemptMutation) RemovedAnswersIDs() (ids []int) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *AttemptMutation) AnswersIDs() (ids []int) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *AttemptMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// SetMetricsID sets the "metrics" edge to the MetricsRecord entity by id.
func (m *AttemptMutation) SetMetricsID(id int) {
	m.metrics = &id
}

// ClearMetrics clears the "metrics" edge to the MetricsRecord entity.
func (m *AttemptMutation) ClearMetrics() {
	m.clearedmetrics = true
}

// MetricsCleared reports if the "metrics" edge to the MetricsRecord entity was cleared.
func (m *AttemptMutation) MetricsCleared() bool {
	return m.clearedmetrics
}

// MetricsID returns the "metrics" edge ID in the mutation.
func (m *AttemptMutation) MetricsID() (id int, exists bool) {
	if m.metrics != nil {
		return *m.metrics, true
	}
	return
}

// MetricsIDs returns the "metrics" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MetricsID instead. It exists only for internal usage by the builders.
func (m *AttemptMutation) MetricsIDs() (ids []int) {
	if id := m.metrics; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMetrics resets all changes to the "metrics" edge.
func (m *AttemptMutation) ResetMetrics() {
	m.metrics = nil
	m.clearedmetrics = false
}

// Where appends a list predicates to the AttemptMutation builder.
func (m *AttemptMutation) Where(ps ...predicate.Attempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attempt).
func (m *AttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.public_id != nil {
		fields = append(fields, attempt.FieldPublicID)
	}
	if m.user_id != nil {
		fields = append(fields, attempt.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, attempt.FieldStatus)
	}
	if m.score != nil {
		fields = append(fields, attempt.FieldScore)
	}
	if m.total_marks != nil {
		fields = append(fields, attempt.FieldTotalMarks)
	}
	if m.started_at != nil {
		fields = append(fields, attempt.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, attempt.FieldCompletedAt)
	}
	if m.test != nil {
		fields = append(fields, attempt.FieldTestID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldPublicID:
		return m.PublicID()
	case attempt.FieldUserID:
		return m.UserID()
	case attempt.FieldStatus:
		return m.Status()
	case attempt.FieldScore:
		return m.Score()
	case attempt.FieldTotalMarks:
		return m.TotalMarks()
	case attempt.FieldStartedAt:
		return m.StartedAt()
	case attempt.FieldCompletedAt:
		return m.CompletedAt()
	case attempt.FieldTestID:
		return m.TestID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attempt.FieldPublicID:
		return m.OldPublicID(ctx)
	case attempt.FieldUserID:
		return m.OldUserID(ctx)
	case attempt.FieldStatus:
		return m.OldStatus(ctx)
	case attempt.FieldScore:
		return m.OldScore(ctx)
	case attempt.FieldTotalMarks:
		return m.OldTotalMarks(ctx)
	case attempt.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case attempt.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case attempt.FieldTestID:
		return m.OldTestID(ctx)
	}
	return nil, fmt.Errorf("unknown Attempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case attempt.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attempt.FieldStatus:
		v, ok := value.(attempt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case attempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case attempt.FieldTotalMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMarks(v)
		return nil
	case attempt.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case attempt.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case attempt.FieldTestID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestID(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, attempt.FieldScore)
	}
	if m.addtotal_marks != nil {
		fields = append(fields, attempt.FieldTotalMarks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attempt.FieldScore:
		return m.AddedScore()
	case attempt.FieldTotalMarks:
		return m.AddedTotalMarks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attempt.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case attempt.FieldTotalMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMarks(v)
		return nil
	}
	return fmt.Errorf("unknown Attempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attempt.FieldCompletedAt) {
		fields = append(fields, attempt.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptMutation) ClearField(name string) error {
	switch name {
	case attempt.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Attempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptMutation) ResetField(name string) error {
	switch name {
	case attempt.FieldPublicID:
		m.ResetPublicID()
		return nil
	case attempt.FieldUserID:
		m.ResetUserID()
		return nil
	case attempt.FieldStatus:
		m.ResetStatus()
		return nil
	case attempt.FieldScore:
		m.ResetScore()
		return nil
	case attempt.FieldTotalMarks:
		m.ResetTotalMarks()
		return nil
	case attempt.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case attempt.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case attempt.FieldTestID:
		m.ResetTestID()
		return nil
	}
	return fmt.Errorf("unknown Attempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.test != nil {
		edges = append(edges, attempt.EdgeTest)
	}
	if m.answers != nil {
		edges = append(edges, attempt.EdgeAnswers)
	}
	if m.metrics != nil {
		edges = append(edges, attempt.EdgeMetrics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attempt.EdgeTest:
		if id := m.test; id != nil {
			return []ent.Value{*id}
		}
	case attempt.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	case attempt.EdgeMetrics:
		if id := m.metrics; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedanswers != nil {
		edges = append(edges, attempt.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case attempt.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtest {
		edges = append(edges, attempt.EdgeTest)
	}
	if m.clearedanswers {
		edges = append(edges, attempt.EdgeAnswers)
	}
	if m.clearedmetrics {
		edges = append(edges, attempt.EdgeMetrics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case attempt.EdgeTest:
		return m.clearedtest
	case attempt.EdgeAnswers:
		return m.clearedanswers
	case attempt.EdgeMetrics:
		return m.clearedmetrics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptMutation) ClearEdge(name string) error {
	switch name {
	case attempt.EdgeTest:
		m.ClearTest()
		return nil
	case attempt.EdgeMetrics:
		m.ClearMetrics()
		return nil
	}
	return fmt.Errorf("unknown Attempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptMutation) ResetEdge(name string) error {
	switch name {
	case attempt.EdgeTest:
		m.ResetTest()
		return nil
	case attempt.EdgeAnswers:
		m.ResetAnswers()
		return nil
	case attempt.EdgeMetrics:
		m.ResetMetrics()
		return nil
	}
	return fmt.Errorf("unknown Attempt edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMRequestEventMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmrequestevent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMRequestEventMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmrequestevent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmrequestevent.FieldErrorMessage)
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmrequestevent.FieldErrorMessage) {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	switch name {
	case llmrequestevent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// MetricsRecordMutation represents an operation that mutates the MetricsRecord nodes in the graph.
type MetricsRecordMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	user_id                     *string
	accuracy                    *float64
	addaccuracy                 *float64
	attempt_ratio               *float64
	addattempt_ratio            *float64
	negative_marks              *float64
	addnegative_marks           *float64
	first_instinct_accuracy     *float64
	addfirst_instinct_accuracy  *float64
	elimination_efficiency      *float64
	addelimination_efficiency   *float64
	impulsive_error_count       *int
	addimpulsive_error_count    *int
	overthinking_error_count    *int
	addoverthinking_error_count *int
	guess_probability           *float64
	addguess_probability        *float64
	cognitive_breakdown         *map[string]float64
	fatigue_curve               *map[string]interface{}
	risk_appetite               *float64
	addrisk_appetite            *float64
	confidence_index            *float64
	addconfidence_index         *float64
	consistency_index           *float64
	addconsistency_index        *float64
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	attempt                     *int
	clearedattempt              bool
	done                        bool
	oldValue                    func(context.Context) (*MetricsRecord, error)
	predicates                  []predicate.MetricsRecord
}

var _ ent.Mutation = (*MetricsRecordMutation)(nil)

// metricsrecordOption allows management of the mutation configuration using functional options.
type metricsrecordOption func(*MetricsRecordMutation)

// newMetricsRecordMutation creates new mutation for the MetricsRecord entity.
func newMetricsRecordMutation(c config, op Op, opts ...metricsrecordOption) *MetricsRecordMutation {
	m := &MetricsRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMetricsRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMetricsRecordID sets the ID field of the mutation.
func withMetricsRecordID(id int) metricsrecordOption {
	return func(m *MetricsRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MetricsRecord
		)
		m.oldValue = func(ctx context.Context) (*MetricsRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MetricsRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMetricsRecord sets the old MetricsRecord of the mutation.
func withMetricsRecord(node *MetricsRecord) metricsrecordOption {
	return func(m *MetricsRecordMutation) {
		m.oldValue = func(context.Context) (*MetricsRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MetricsRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MetricsRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MetricsRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MetricsRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MetricsRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MetricsRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MetricsRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MetricsRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetAccuracy sets the "accuracy" field.
func (m *MetricsRecordMutation) SetAccuracy(f float64) {
	m.accuracy = &f
	m.addaccuracy = nil
}

// Accuracy returns the value of the "accuracy" field in the mutation.
func (m *MetricsRecordMutation) Accuracy() (r float64, exists bool) {
	v := m.accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracy returns the old "accuracy" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracy: %w", err)
	}
	return oldValue.Accuracy, nil
}

// AddAccuracy adds f to the "accuracy" field.
func (m *MetricsRecordMutation) AddAccuracy(f float64) {
	if m.addaccuracy != nil {
		*m.addaccuracy += f
	} else {
		m.addaccuracy = &f
	}
}

// AddedAccuracy returns the value that was added to the "accuracy" field in this mutation.
func (m *MetricsRecordMutation) AddedAccuracy() (r float64, exists bool) {
	v := m.addaccuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracy resets all changes to the "accuracy" field.
func (m *MetricsRecordMutation) ResetAccuracy() {
	m.accuracy = nil
	m.addaccuracy = nil
}

// SetAttemptRatio sets the "attempt_ratio" field.
func (m *MetricsRecordMutation) SetAttemptRatio(f float64) {
	m.attempt_ratio = &f
	m.addattempt_ratio = nil
}

// AttemptRatio returns the value of the "attempt_ratio" field in the mutation.
func (m *MetricsRecordMutation) AttemptRatio() (r float64, exists bool) {
	v := m.attempt_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptRatio returns the old "attempt_ratio" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldAttemptRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptRatio: %w", err)
	}
	return oldValue.AttemptRatio, nil
}

// AddAttemptRatio adds f to the "attempt_ratio" field.
func (m *MetricsRecordMutation) AddAttemptRatio(f float64) {
	if m.addattempt_ratio != nil {
		*m.addattempt_ratio += f
	} else {
		m.addattempt_ratio = &f
	}
}

// AddedAttemptRatio returns the value that was added to the "attempt_ratio" field in this mutation.
func (m *MetricsRecordMutation) AddedAttemptRatio() (r float64, exists bool) {
	v := m.addattempt_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptRatio resets all changes to the "attempt_ratio" field.
func (m *MetricsRecordMutation) ResetAttemptRatio() {
	m.attempt_ratio = nil
	m.addattempt_ratio = nil
}

// SetNegativeMarks sets the "negative_marks" field.
func (m *MetricsRecordMutation) SetNegativeMarks(f float64) {
	m.negative_marks = &f
	m.addnegative_marks = nil
}

// NegativeMarks returns the value of the "negative_marks" field in the mutation.
func (m *MetricsRecordMutation) NegativeMarks() (r float64, exists bool) {
	v := m.negative_marks
	if v == nil {
		return
	}
	return *v, true
}

// OldNegativeMarks returns the old "negative_marks" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldNegativeMarks(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNegativeMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNegativeMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNegativeMarks: %w", err)
	}
	return oldValue.NegativeMarks, nil
}

// AddNegativeMarks adds f to the "negative_marks" field.
func (m *MetricsRecordMutation) AddNegativeMarks(f float64) {
	if m.addnegative_marks != nil {
		*m.addnegative_marks += f
	} else {
		m.addnegative_marks = &f
	}
}

// AddedNegativeMarks returns the value that was added to the "negative_marks" field in this mutation.
func (m *MetricsRecordMutation) AddedNegativeMarks() (r float64, exists bool) {
	v := m.addnegative_marks
	if v == nil {
		return
	}
	return *v, true
}

// ResetNegativeMarks resets all changes to the "negative_marks" field.
func (m *MetricsRecordMutation) ResetNegativeMarks() {
	m.negative_marks = nil
	m.addnegative_marks = nil
}

// SetFirstInstinctAccuracy sets the "first_instinct_accuracy" field.
func (m *MetricsRecordMutation) SetFirstInstinctAccuracy(f float64) {
	m.first_instinct_accuracy = &f
	m.addfirst_instinct_accuracy = nil
}

// FirstInstinctAccuracy returns the value of the "first_instinct_accuracy" field in the mutation.
func (m *MetricsRecordMutation) FirstInstinctAccuracy() (r float64, exists bool) {
	v := m.first_instinct_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstInstinctAccuracy returns the old "first_instinct_accuracy" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldFirstInstinctAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstInstinctAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstInstinctAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstInstinctAccuracy: %w", err)
	}
	return oldValue.FirstInstinctAccuracy, nil
}

// AddFirstInstinctAccuracy adds f to the "first_instinct_accuracy" field.
func (m *MetricsRecordMutation) AddFirstInstinctAccuracy(f float64) {
	if m.addfirst_instinct_accuracy != nil {
		*m.addfirst_instinct_accuracy += f
	} else {
		m.addfirst_instinct_accuracy = &f
	}
}

// AddedFirstInstinctAccuracy returns the value that was added to the "first_instinct_accuracy" field in this mutation.
func (m *MetricsRecordMutation) AddedFirstInstinctAccuracy() (r float64, exists bool) {
	v := m.addfirst_instinct_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstInstinctAccuracy resets all changes to the "first_instinct_accuracy" field.
func (m *MetricsRecordMutation) ResetFirstInstinctAccuracy() {
	m.first_instinct_accuracy = nil
	m.addfirst_instinct_accuracy = nil
}

// SetEliminationEfficiency sets the "elimination_efficiency" field.
func (m *MetricsRecordMutation) SetEliminationEfficiency(f float64) {
	m.elimination_efficiency = &f
	m.addelimination_efficiency = nil
}

// EliminationEfficiency returns the value of the "elimination_efficiency" field in the mutation.
func (m *MetricsRecordMutation) EliminationEfficiency() (r float64, exists bool) {
	v := m.elimination_efficiency
	if v == nil {
		return
	}
	return *v, true
}

// OldEliminationEfficiency returns the old "elimination_efficiency" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldEliminationEfficiency(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEliminationEfficiency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEliminationEfficiency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEliminationEfficiency: %w", err)
	}
	return oldValue.EliminationEfficiency, nil
}

// AddEliminationEfficiency adds f to the "elimination_efficiency" field.
func (m *MetricsRecordMutation) AddEliminationEfficiency(f float64) {
	if m.addelimination_efficiency != nil {
		*m.addelimination_efficiency += f
	} else {
		m.addelimination_efficiency = &f
	}
}

// AddedEliminationEfficiency returns the value that was added to the "elimination_efficiency" field in this mutation.
func (m *MetricsRecordMutation) AddedEliminationEfficiency() (r float64, exists bool) {
	v := m.addelimination_efficiency
	if v == nil {
		return
	}
	return *v, true
}

// ResetEliminationEfficiency resets all changes to the "elimination_efficiency" field.
func (m *MetricsRecordMutation) ResetEliminationEfficiency() {
	m.elimination_efficiency = nil
	m.addelimination_efficiency = nil
}

// SetImpulsiveErrorCount sets the "impulsive_error_count" field.
func (m *MetricsRecordMutation) SetImpulsiveErrorCount(i int) {
	m.impulsive_error_count = &i
	m.addimpulsive_error_count = nil
}

// ImpulsiveErrorCount returns the value of the "impulsive_error_count" field in the mutation.
func (m *MetricsRecordMutation) ImpulsiveErrorCount() (r int, exists bool) {
	v := m.impulsive_error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldImpulsiveErrorCount returns the old "impulsive_error_count" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldImpulsiveErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpulsiveErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpulsiveErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpulsiveErrorCount: %w", err)
	}
	return oldValue.ImpulsiveErrorCount, nil
}

// AddImpulsiveErrorCount adds i to the "impulsive_error_count" field.
func (m *MetricsRecordMutation) AddImpulsiveErrorCount(i int) {
	if m.addimpulsive_error_count != nil {
		*m.addimpulsive_error_count += i
	} else {
		m.addimpulsive_error_count = &i
	}
}

// AddedImpulsiveErrorCount returns the value that was added to the "impulsive_error_count" field in this mutation.
func (m *MetricsRecordMutation) AddedImpulsiveErrorCount() (r int, exists bool) {
	v := m.addimpulsive_error_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetImpulsiveErrorCount resets all changes to the "impulsive_error_count" field.
func (m *MetricsRecordMutation) ResetImpulsiveErrorCount() {
	m.impulsive_error_count = nil
	m.addimpulsive_error_count = nil
}

// SetOverthinkingErrorCount sets the "overthinking_error_count" field.
func (m *MetricsRecordMutation) SetOverthinkingErrorCount(i int) {
	m.overthinking_error_count = &i
	m.addoverthinking_error_count = nil
}

// OverthinkingErrorCount returns the value of the "overthinking_error_count" field in the mutation.
func (m *MetricsRecordMutation) OverthinkingErrorCount() (r int, exists bool) {
	v := m.overthinking_error_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOverthinkingErrorCount returns the old "overthinking_error_count" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldOverthinkingErrorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverthinkingErrorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverthinkingErrorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverthinkingErrorCount: %w", err)
	}
	return oldValue.OverthinkingErrorCount, nil
}

// AddOverthinkingErrorCount adds i to the "overthinking_error_count" field.
func (m *MetricsRecordMutation) AddOverthinkingErrorCount(i int) {
	if m.addoverthinking_error_count != nil {
		*m.addoverthinking_error_count += i
	} else {
		m.addoverthinking_error_count = &i
	}
}

// AddedOverthinkingErrorCount returns the value that was added to the "overthinking_error_count" field in this mutation.
func (m *MetricsRecordMutation) AddedOverthinkingErrorCount() (r int, exists bool) {
	v := m.addoverthinking_error_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverthinkingErrorCount resets all changes to the "overthinking_error_count" field.
func (m *MetricsRecordMutation) ResetOverthinkingErrorCount() {
	m.overthinking_error_count = nil
	m.addoverthinking_error_count = nil
}

// SetGuessProbability sets the "guess_probability" field.
func (m *MetricsRecordMutation) SetGuessProbability(f float64) {
	m.guess_probability = &f
	m.addguess_probability = nil
}

// GuessProbability returns the value of the "guess_probability" field in the mutation.
func (m *MetricsRecordMutation) GuessProbability() (r float64, exists bool) {
	v := m.guess_probability
	if v == nil {
		return
	}
	return *v, true
}

// OldGuessProbability returns the old "guess_probability" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldGuessProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuessProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuessProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuessProbability: %w", err)
	}
	return oldValue.GuessProbability, nil
}

// AddGuessProbability adds f to the "guess_probability" field.
func (m *MetricsRecordMutation) AddGuessProbability(f float64) {
	if m.addguess_probability != nil {
		*m.addguess_probability += f
	} else {
		m.addguess_probability = &f
	}
}

// AddedGuessProbability returns the value that was added to the "guess_probability" field in this mutation.
func (m *MetricsRecordMutation) AddedGuessProbability() (r float64, exists bool) {
	v := m.addguess_probability
	if v == nil {
		return
	}
	return *v, true
}

// ResetGuessProbability resets all changes to the "guess_probability" field.
func (m *MetricsRecordMutation) ResetGuessProbability() {
	m.guess_probability = nil
	m.addguess_probability = nil
}

// SetCognitiveBreakdown sets the "cognitive_breakdown" field.
func (m *MetricsRecordMutation) SetCognitiveBreakdown(value map[string]float64) {
	m.cognitive_breakdown = &value
}

// CognitiveBreakdown returns the value of the "cognitive_breakdown" field in the mutation.
func (m *MetricsRecordMutation) CognitiveBreakdown() (r map[string]float64, exists bool) {
	v := m.cognitive_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldCognitiveBreakdown returns the old "cognitive_breakdown" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldCognitiveBreakdown(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCognitiveBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCognitiveBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCognitiveBreakdown: %w", err)
	}
	return oldValue.CognitiveBreakdown, nil
}

// ResetCognitiveBreakdown resets all changes to the "cognitive_breakdown" field.
func (m *MetricsRecordMutation) ResetCognitiveBreakdown() {
	m.cognitive_breakdown = nil
}

// SetFatigueCurve sets the "fatigue_curve" field.
func (m *MetricsRecordMutation) SetFatigueCurve(value map[string]interface{}) {
	m.fatigue_curve = &value
}

// FatigueCurve returns the value of the "fatigue_curve" field in the mutation.
func (m *MetricsRecordMutation) FatigueCurve() (r map[string]interface{}, exists bool) {
	v := m.fatigue_curve
	if v == nil {
		return
	}
	return *v, true
}

// OldFatigueCurve returns the old "fatigue_curve" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldFatigueCurve(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFatigueCurve is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFatigueCurve requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFatigueCurve: %w", err)
	}
	return oldValue.FatigueCurve, nil
}

// ResetFatigueCurve resets all changes to the "fatigue_curve" field.
func (m *MetricsRecordMutation) ResetFatigueCurve() {
	m.fatigue_curve = nil
}

// SetRiskAppetite sets the "risk_appetite" field.
func (m *MetricsRecordMutation) SetRiskAppetite(f float64) {
	m.risk_appetite = &f
	m.addrisk_appetite = nil
}

// RiskAppetite returns the value of the "risk_appetite" field in the mutation.
func (m *MetricsRecordMutation) RiskAppetite() (r float64, exists bool) {
	v := m.risk_appetite
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskAppetite returns the old "risk_appetite" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldRiskAppetite(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskAppetite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskAppetite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskAppetite: %w", err)
	}
	return oldValue.RiskAppetite, nil
}

// AddRiskAppetite adds f to the "risk_appetite" field.
func (m *MetricsRecordMutation) AddRiskAppetite(f float64) {
	if m.addrisk_appetite != nil {
		*m.addrisk_appetite += f
	} else {
		m.addrisk_appetite = &f
	}
}

// AddedRiskAppetite returns the value that was added to the "risk_appetite" field in this mutation.
func (m *MetricsRecordMutation) AddedRiskAppetite() (r float64, exists bool) {
	v := m.addrisk_appetite
	if v == nil {
		return
	}
	return *v, true
}

// ResetRiskAppetite resets all changes to the "risk_appetite" field.
func (m *MetricsRecordMutation) ResetRiskAppetite() {
	m.risk_appetite = nil
	m.addrisk_appetite = nil
}

// SetConfidenceIndex sets the "confidence_index" field.
func (m *MetricsRecordMutation) SetConfidenceIndex(f float64) {
	m.confidence_index = &f
	m.addconfidence_index = nil
}

// ConfidenceIndex returns the value of the "confidence_index" field in the mutation.
func (m *MetricsRecordMutation) ConfidenceIndex() (r float64, exists bool) {
	v := m.confidence_index
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceIndex returns the old "confidence_index" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldConfidenceIndex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceIndex: %w", err)
	}
	return oldValue.ConfidenceIndex, nil
}

// AddConfidenceIndex adds f to the "confidence_index" field.
func (m *MetricsRecordMutation) AddConfidenceIndex(f float64) {
	if m.addconfidence_index != nil {
		*m.addconfidence_index += f
	} else {
		m.addconfidence_index = &f
	}
}

// AddedConfidenceIndex returns the value that was added to the "confidence_index" field in this mutation.
func (m *MetricsRecordMutation) AddedConfidenceIndex() (r float64, exists bool) {
	v := m.addconfidence_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceIndex resets all changes to the "confidence_index" field.
func (m *MetricsRecordMutation) ResetConfidenceIndex() {
	m.confidence_index = nil
	m.addconfidence_index = nil
}

// SetConsistencyIndex sets the "consistency_index" field.
func (m *MetricsRecordMutation) SetConsistencyIndex(f float64) {
	m.consistency_index = &f
	m.addconsistency_index = nil
}

// ConsistencyIndex returns the value of the "consistency_index" field in the mutation.
func (m *MetricsRecordMutation) ConsistencyIndex() (r float64, exists bool) {
	v := m.consistency_index
	if v == nil {
		return
	}
	return *v, true
}

// OldConsistencyIndex returns the old "consistency_index" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldConsistencyIndex(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsistencyIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsistencyIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsistencyIndex: %w", err)
	}
	return oldValue.ConsistencyIndex, nil
}

// AddConsistencyIndex adds f to the "consistency_index" field.
func (m *MetricsRecordMutation) AddConsistencyIndex(f float64) {
	if m.addconsistency_index != nil {
		*m.addconsistency_index += f
	} else {
		m.addconsistency_index = &f
	}
}

// AddedConsistencyIndex returns the value that was added to the "consistency_index" field in this mutation.
func (m *MetricsRecordMutation) AddedConsistencyIndex() (r float64, exists bool) {
	v := m.addconsistency_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsistencyIndex resets all changes to the "consistency_index" field.
func (m *MetricsRecordMutation) ResetConsistencyIndex() {
	m.consistency_index = nil
	m.addconsistency_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MetricsRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MetricsRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MetricsRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *MetricsRecordMutation) SetAttemptID(i int) {
	m.attempt = &i
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *MetricsRecordMutation) AttemptID() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the MetricsRecord entity.
// If the MetricsRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MetricsRecordMutation) OldAttemptID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *MetricsRecordMutation) ResetAttemptID() {
	m.attempt = nil
}

// ClearAttempt clears the "attempt" edge to the Attempt entity.
func (m *MetricsRecordMutation) ClearAttempt() {
	m.clearedattempt = true
	m.clearedFields[metricsrecord.FieldAttemptID] = struct{}{}
}

// AttemptCleared reports if the "attempt" edge to the Attempt entity was cleared.
func (m *MetricsRecordMutation) AttemptCleared() bool {
	return m.clearedattempt
}

// AttemptIDs returns the "attempt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AttemptID instead. It exists only for internal usage by the builders.
func (m *MetricsRecordMutation) AttemptIDs() (ids []int) {
	if id := m.attempt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAttempt resets all changes to the "attempt" edge.
func (m *MetricsRecordMutation) ResetAttempt() {
	m.attempt = nil
	m.clearedattempt = false
}

// Where appends a list predicates to the MetricsRecordMutation builder.
func (m *MetricsRecordMutation) Where(ps ...predicate.MetricsRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MetricsRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MetricsRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MetricsRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MetricsRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MetricsRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MetricsRecord).
func (m *MetricsRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MetricsRecordMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.user_id != nil {
		fields = append(fields, metricsrecord.FieldUserID)
	}
	if m.accuracy != nil {
		fields = append(fields, metricsrecord.FieldAccuracy)
	}
	if m.attempt_ratio != nil {
		fields = append(fields, metricsrecord.FieldAttemptRatio)
	}
	if m.negative_marks != nil {
		fields = append(fields, metricsrecord.FieldNegativeMarks)
	}
	if m.first_instinct_accuracy != nil {
		fields = append(fields, metricsrecord.FieldFirstInstinctAccuracy)
	}
	if m.elimination_efficiency != nil {
		fields = append(fields, metricsrecord.FieldEliminationEfficiency)
	}
	if m.impulsive_error_count != nil {
		fields = append(fields, metricsrecord.FieldImpulsiveErrorCount)
	}
	if m.overthinking_error_count != nil {
		fields = append(fields, metricsrecord.FieldOverthinkingErrorCount)
	}
	if m.guess_probability != nil {
		fields = append(fields, metricsrecord.FieldGuessProbability)
	}
	if m.cognitive_breakdown != nil {
		fields = append(fields, metricsrecord.FieldCognitiveBreakdown)
	}
	if m.fatigue_curve != nil {
		fields = append(fields, metricsrecord.FieldFatigueCurve)
	}
	if m.risk_appetite != nil {
		fields = append(fields, metricsrecord.FieldRiskAppetite)
	}
	if m.confidence_index != nil {
		fields = append(fields, metricsrecord.FieldConfidenceIndex)
	}
	if m.consistency_index != nil {
		fields = append(fields, metricsrecord.FieldConsistencyIndex)
	}
	if m.created_at != nil {
		fields = append(fields, metricsrecord.FieldCreatedAt)
	}
	if m.attempt != nil {
		fields = append(fields, metricsrecord.FieldAttemptID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MetricsRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case metricsrecord.FieldUserID:
		return m.UserID()
	case metricsrecord.FieldAccuracy:
		return m.Accuracy()
	case metricsrecord.FieldAttemptRatio:
		return m.AttemptRatio()
	case metricsrecord.FieldNegativeMarks:
		return m.NegativeMarks()
	case metricsrecord.FieldFirstInstinctAccuracy:
		return m.FirstInstinctAccuracy()
	case metricsrecord.FieldEliminationEfficiency:
		return m.EliminationEfficiency()
	case metricsrecord.FieldImpulsiveErrorCount:
		return m.ImpulsiveErrorCount()
	case metricsrecord.FieldOverthinkingErrorCount:
		return m.OverthinkingErrorCount()
	case metricsrecord.FieldGuessProbability:
		return m.GuessProbability()
	case metricsrecord.FieldCognitiveBreakdown:
		return m.CognitiveBreakdown()
	case metricsrecord.FieldFatigueCurve:
		return m.FatigueCurve()
	case metricsrecord.FieldRiskAppetite:
		return m.RiskAppetite()
	case metricsrecord.FieldConfidenceIndex:
		return m.ConfidenceIndex()
	case metricsrecord.FieldConsistencyIndex:
		return m.ConsistencyIndex()
	case metricsrecord.FieldCreatedAt:
		return m.CreatedAt()
	case metricsrecord.FieldAttemptID:
		return m.AttemptID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MetricsRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case metricsrecord.FieldUserID:
		return m.OldUserID(ctx)
	case metricsrecord.FieldAccuracy:
		return m.OldAccuracy(ctx)
	case metricsrecord.FieldAttemptRatio:
		return m.OldAttemptRatio(ctx)
	case metricsrecord.FieldNegativeMarks:
		return m.OldNegativeMarks(ctx)
	case metricsrecord.FieldFirstInstinctAccuracy:
		return m.OldFirstInstinctAccuracy(ctx)
	case metricsrecord.FieldEliminationEfficiency:
		return m.OldEliminationEfficiency(ctx)
	case metricsrecord.FieldImpulsiveErrorCount:
		return m.OldImpulsiveErrorCount(ctx)
	case metricsrecord.FieldOverthinkingErrorCount:
		return m.OldOverthinkingErrorCount(ctx)
	case metricsrecord.FieldGuessProbability:
		return m.OldGuessProbability(ctx)
	case metricsrecord.FieldCognitiveBreakdown:
		return m.OldCognitiveBreakdown(ctx)
	case metricsrecord.FieldFatigueCurve:
		return m.OldFatigueCurve(ctx)
	case metricsrecord.FieldRiskAppetite:
		return m.OldRiskAppetite(ctx)
	case metricsrecord.FieldConfidenceIndex:
		return m.OldConfidenceIndex(ctx)
	case metricsrecord.FieldConsistencyIndex:
		return m.OldConsistencyIndex(ctx)
	case metricsrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case metricsrecord.FieldAttemptID:
		return m.OldAttemptID(ctx)
	}
	return nil, fmt.Errorf("unknown MetricsRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case metricsrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case metricsrecord.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracy(v)
		return nil
	case metricsrecord.FieldAttemptRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptRatio(v)
		return nil
	case metricsrecord.FieldNegativeMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNegativeMarks(v)
		return nil
	case metricsrecord.FieldFirstInstinctAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstInstinctAccuracy(v)
		return nil
	case metricsrecord.FieldEliminationEfficiency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEliminationEfficiency(v)
		return nil
	case metricsrecord.FieldImpulsiveErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpulsiveErrorCount(v)
		return nil
	case metricsrecord.FieldOverthinkingErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverthinkingErrorCount(v)
		return nil
	case metricsrecord.FieldGuessProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuessProbability(v)
		return nil
	case metricsrecord.FieldCognitiveBreakdown:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCognitiveBreakdown(v)
		return nil
	case metricsrecord.FieldFatigueCurve:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFatigueCurve(v)
		return nil
	case metricsrecord.FieldRiskAppetite:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskAppetite(v)
		return nil
	case metricsrecord.FieldConfidenceIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceIndex(v)
		return nil
	case metricsrecord.FieldConsistencyIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsistencyIndex(v)
		return nil
	case metricsrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case metricsrecord.FieldAttemptID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MetricsRecordMutation) AddedFields() []string {
	var fields []string
	if m.addaccuracy != nil {
		fields = append(fields, metricsrecord.FieldAccuracy)
	}
	if m.addattempt_ratio != nil {
		fields = append(fields, metricsrecord.FieldAttemptRatio)
	}
	if m.addnegative_marks != nil {
		fields = append(fields, metricsrecord.FieldNegativeMarks)
	}
	if m.addfirst_instinct_accuracy != nil {
		fields = append(fields, metricsrecord.FieldFirstInstinctAccuracy)
	}
	if m.addelimination_efficiency != nil {
		fields = append(fields, metricsrecord.FieldEliminationEfficiency)
	}
	if m.addimpulsive_error_count != nil {
		fields = append(fields, metricsrecord.FieldImpulsiveErrorCount)
	}
	if m.addoverthinking_error_count != nil {
		fields = append(fields, metricsrecord.FieldOverthinkingErrorCount)
	}
	if m.addguess_probability != nil {
		fields = append(fields, metricsrecord.FieldGuessProbability)
	}
	if m.addrisk_appetite != nil {
		fields = append(fields, metricsrecord.FieldRiskAppetite)
	}
	if m.addconfidence_index != nil {
		fields = append(fields, metricsrecord.FieldConfidenceIndex)
	}
	if m.addconsistency_index != nil {
		fields = append(fields, metricsrecord.FieldConsistencyIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MetricsRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case metricsrecord.FieldAccuracy:
		return m.AddedAccuracy()
	case metricsrecord.FieldAttemptRatio:
		return m.AddedAttemptRatio()
	case metricsrecord.FieldNegativeMarks:
		return m.AddedNegativeMarks()
	case metricsrecord.FieldFirstInstinctAccuracy:
		return m.AddedFirstInstinctAccuracy()
	case metricsrecord.FieldEliminationEfficiency:
		return m.AddedEliminationEfficiency()
	case metricsrecord.FieldImpulsiveErrorCount:
		return m.AddedImpulsiveErrorCount()
	case metricsrecord.FieldOverthinkingErrorCount:
		return m.AddedOverthinkingErrorCount()
	case metricsrecord.FieldGuessProbability:
		return m.AddedGuessProbability()
	case metricsrecord.FieldRiskAppetite:
		return m.AddedRiskAppetite()
	case metricsrecord.FieldConfidenceIndex:
		return m.AddedConfidenceIndex()
	case metricsrecord.FieldConsistencyIndex:
		return m.AddedConsistencyIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MetricsRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case metricsrecord.FieldAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracy(v)
		return nil
	case metricsrecord.FieldAttemptRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptRatio(v)
		return nil
	case metricsrecord.FieldNegativeMarks:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNegativeMarks(v)
		return nil
	case metricsrecord.FieldFirstInstinctAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstInstinctAccuracy(v)
		return nil
	case metricsrecord.FieldEliminationEfficiency:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEliminationEfficiency(v)
		return nil
	case metricsrecord.FieldImpulsiveErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImpulsiveErrorCount(v)
		return nil
	case metricsrecord.FieldOverthinkingErrorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverthinkingErrorCount(v)
		return nil
	case metricsrecord.FieldGuessProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGuessProbability(v)
		return nil
	case metricsrecord.FieldRiskAppetite:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRiskAppetite(v)
		return nil
	case metricsrecord.FieldConfidenceIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceIndex(v)
		return nil
	case metricsrecord.FieldConsistencyIndex:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsistencyIndex(v)
		return nil
	}
	return fmt.Errorf("unknown MetricsRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MetricsRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MetricsRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MetricsRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MetricsRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MetricsRecordMutation) ResetField(name string) error {
	switch name {
	case metricsrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case metricsrecord.FieldAccuracy:
		m.ResetAccuracy()
		return nil
	case metricsrecord.FieldAttemptRatio:
		m.ResetAttemptRatio()
		return nil
	case metricsrecord.FieldNegativeMarks:
		m.ResetNegativeMarks()
		return nil
	case metricsrecord.FieldFirstInstinctAccuracy:
		m.ResetFirstInstinctAccuracy()
		return nil
	case metricsrecord.FieldEliminationEfficiency:
		m.ResetEliminationEfficiency()
		return nil
	case metricsrecord.FieldImpulsiveErrorCount:
		m.ResetImpulsiveErrorCount()
		return nil
	case metricsrecord.FieldOverthinkingErrorCount:
		m.ResetOverthinkingErrorCount()
		return nil
	case metricsrecord.FieldGuessProbability:
		m.ResetGuessProbability()
		return nil
	case metricsrecord.FieldCognitiveBreakdown:
		m.ResetCognitiveBreakdown()
		return nil
	case metricsrecord.FieldFatigueCurve:
		m.ResetFatigueCurve()
		return nil
	case metricsrecord.FieldRiskAppetite:
		m.ResetRiskAppetite()
		return nil
	case metricsrecord.FieldConfidenceIndex:
		m.ResetConfidenceIndex()
		return nil
	case metricsrecord.FieldConsistencyIndex:
		m.ResetConsistencyIndex()
		return nil
	case metricsrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case metricsrecord.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	}
	return fmt.Errorf("unknown MetricsRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MetricsRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attempt != nil {
		edges = append(edges, metricsrecord.EdgeAttempt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MetricsRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case metricsrecord.EdgeAttempt:
		if id := m.attempt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MetricsRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MetricsRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MetricsRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattempt {
		edges = append(edges, metricsrecord.EdgeAttempt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MetricsRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case metricsrecord.EdgeAttempt:
		return m.clearedattempt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MetricsRecordMutation) ClearEdge(name string) error {
	switch name {
	case metricsrecord.EdgeAttempt:
		m.ClearAttempt()
		return nil
	}
	return fmt.Errorf("unknown MetricsRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MetricsRecordMutation) ResetEdge(name string) error {
	switch name {
	case metricsrecord.EdgeAttempt:
		m.ResetAttempt()
		return nil
	}
	return fmt.Errorf("unknown MetricsRecord edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op             Op
	typ            string
	id             *int
	text           *string
	question_type  *question.QuestionType
	difficulty     *question.Difficulty
	explanation    *string
	source         *question.Source
	verified       *bool
	active         *bool
	fingerprint    *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	subject        *int
	clearedsubject bool
	topic          *int
	clearedtopic   bool
	options        map[int]struct{}
	removedoptions map[int]struct{}
	clearedoptions bool
	answers        map[int]struct{}
	removedanswers map[int]struct{}
	clearedanswers bool
	done           bool
	oldValue       func(context.Context) (*Question, error)
	predicates     []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *QuestionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionMutation) ResetText() {
	m.text = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(qt question.QuestionType) {
	m.question_type = &qt
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r question.QuestionType, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v question.QuestionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *QuestionMutation) SetDifficulty(q question.Difficulty) {
	m.difficulty = &q
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *QuestionMutation) Difficulty() (r question.Difficulty, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldDifficulty(ctx context.Context) (v question.Difficulty, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *QuestionMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetExplanation sets the "explanation" field.
func (m *QuestionMutation) SetExplanation(s string) {
	m.explanation = &s
}

// Explanation returns the value of the "explanation" field in the mutation.
func (m *QuestionMutation) Explanation() (r string, exists bool) {
	v := m.explanation
	if v == nil {
		return
	}
	return *v, true
}

// OldExplanation returns the old "explanation" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldExplanation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExplanation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExplanation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExplanation: %w", err)
	}
	return oldValue.Explanation, nil
}

// ClearExplanation clears the value of the "explanation" field.
func (m *QuestionMutation) ClearExplanation() {
	m.explanation = nil
	m.clearedFields[question.FieldExplanation] = struct{}{}
}

// ExplanationCleared returns if the "explanation" field was cleared in this mutation.
func (m *QuestionMutation) ExplanationCleared() bool {
	_, ok := m.clearedFields[question.FieldExplanation]
	return ok
}

// ResetExplanation resets all changes to the "explanation" field.
func (m *QuestionMutation) ResetExplanation() {
	m.explanation = nil
	delete(m.clearedFields, question.FieldExplanation)
}

// SetSource sets the "source" field.
func (m *QuestionMutation) SetSource(q question.Source) {
	m.source = &q
}

// Source returns the value of the "source" field in the mutation.
func (m *QuestionMutation) Source() (r question.Source, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSource(ctx context.Context) (v question.Source, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *QuestionMutation) ResetSource() {
	m.source = nil
}

// SetVerified sets the "verified" field.
func (m *QuestionMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *QuestionMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *QuestionMutation) ResetVerified() {
	m.verified = nil
}

// SetActive sets the "active" field.
func (m *QuestionMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *QuestionMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *QuestionMutation) ResetActive() {
	m.active = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *QuestionMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *QuestionMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *QuestionMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *QuestionMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *QuestionMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldSubjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *QuestionMutation) ResetSubjectID() {
	m.subject = nil
}

// SetTopicID sets the "topic_id" field.
func (m *QuestionMutation) SetTopicID(i int) {
	m.topic = &i
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *QuestionMutation) TopicID() (r int, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *QuestionMutation) ClearTopicID() {
	m.topic = nil
	m.clearedFields[question.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *QuestionMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[question.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *QuestionMutation) ResetTopicID() {
	m.topic = nil
	delete(m.clearedFields, question.FieldTopicID)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuestionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuestionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuestionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *QuestionMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[question.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *QuestionMutation) SubjectCleared() bool {
	return m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *QuestionMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *QuestionMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[question.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *QuestionMutation) TopicCleared() bool {
	return m.TopicIDCleared() || m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *QuestionMutation) TopicIDs() (ids []int) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *QuestionMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// AddOptionIDs adds the "options" edge to the QuestionOption entity by ids.
func (m *QuestionMutation) AddOptionIDs(ids ...int) {
	if m.options == nil {
		m.options = make(map[int]struct{})
	}
	for i := range ids {
		m.options[ids[i]] = struct{}{}
	}
}

// ClearOptions clears the "options" edge to the QuestionOption entity.
func (m *QuestionMutation) ClearOptions() {
	m.clearedoptions = true
}

// OptionsCleared reports if the "options" edge to the QuestionOption entity was cleared.
func (m *QuestionMutation) OptionsCleared() bool {
	return m.clearedoptions
}

// RemoveOptionIDs removes the "options" edge to the QuestionOption entity by IDs.
func (m *QuestionMutation) RemoveOptionIDs(ids ...int) {
	if m.removedoptions == nil {
		m.removedoptions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.options, ids[i])
		m.removedoptions[ids[i]] = struct{}{}
	}
}

// RemovedOptions returns the removed IDs of the "options" edge to the QuestionOption entity.
func (m *QuestionMutation) RemovedOptionsIDs() (ids []int) {
	for id := range m.removedoptions {
		ids = append(ids, id)
	}
	return
}

// OptionsIDs returns the "options" edge IDs in the mutation.
func (m *QuestionMutation) OptionsIDs() (ids []int) {
	for id := range m.options {
		ids = append(ids, id)
	}
	return
}

// ResetOptions resets all changes to the "options" edge.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
	m.clearedoptions = false
	m.removedoptions = nil
}

// AddAnswerIDs adds the "answers" edge to the AnswerRecord entity by ids.
func (m *QuestionMutation) AddAnswerIDs(ids ...int) {
	if m.answers == nil {
		m.answers = make(map[int]struct{})
	}
	for i := range ids {
		m.answers[ids[i]] = struct{}{}
	}
}

// ClearAnswers clears the "answers" edge to the AnswerRecord entity.
func (m *QuestionMutation) ClearAnswers() {
	m.clearedanswers = true
}

// AnswersCleared reports if the "answers" edge to the AnswerRecord entity was cleared.
func (m *QuestionMutation) AnswersCleared() bool {
	return m.clearedanswers
}

// RemoveAnswerIDs removes the "answers" edge to the AnswerRecord entity by IDs.
func (m *QuestionMutation) RemoveAnswerIDs(ids ...int) {
	if m.removedanswers == nil {
		m.removedanswers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.answers, ids[i])
		m.removedanswers[ids[i]] = struct{}{}
	}
}

// RemovedAnswers returns the removed IDs of the "answers" edge to the AnswerRecord entity.
func (m *QuestionMutation) RemovedAnswersIDs() (ids []int) {
	for id := range m.removedanswers {
		ids = append(ids, id)
	}
	return
}

// AnswersIDs returns the "answers" edge IDs in the mutation.
func (m *QuestionMutation) AnswersIDs() (ids []int) {
	for id := range m.answers {
		ids = append(ids, id)
	}
	return
}

// ResetAnswers resets all changes to the "answers" edge.
func (m *QuestionMutation) ResetAnswers() {
	m.answers = nil
	m.clearedanswers = false
	m.removedanswers = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.text != nil {
		fields = append(fields, question.FieldText)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.difficulty != nil {
		fields = append(fields, question.FieldDifficulty)
	}
	if m.explanation != nil {
		fields = append(fields, question.FieldExplanation)
	}
	if m.source != nil {
		fields = append(fields, question.FieldSource)
	}
	if m.verified != nil {
		fields = append(fields, question.FieldVerified)
	}
	if m.active != nil {
		fields = append(fields, question.FieldActive)
	}
	if m.fingerprint != nil {
		fields = append(fields, question.FieldFingerprint)
	}
	if m.subject != nil {
		fields = append(fields, question.FieldSubjectID)
	}
	if m.topic != nil {
		fields = append(fields, question.FieldTopicID)
	}
	if m.created_at != nil {
		fields = append(fields, question.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, question.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldText:
		return m.Text()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldDifficulty:
		return m.Difficulty()
	case question.FieldExplanation:
		return m.Explanation()
	case question.FieldSource:
		return m.Source()
	case question.FieldVerified:
		return m.Verified()
	case question.FieldActive:
		return m.Active()
	case question.FieldFingerprint:
		return m.Fingerprint()
	case question.FieldSubjectID:
		return m.SubjectID()
	case question.FieldTopicID:
		return m.TopicID()
	case question.FieldCreatedAt:
		return m.CreatedAt()
	case question.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldText:
		return m.OldText(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case question.FieldExplanation:
		return m.OldExplanation(ctx)
	case question.FieldSource:
		return m.OldSource(ctx)
	case question.FieldVerified:
		return m.OldVerified(ctx)
	case question.FieldActive:
		return m.OldActive(ctx)
	case question.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case question.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case question.FieldTopicID:
		return m.OldTopicID(ctx)
	case question.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case question.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(question.QuestionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldDifficulty:
		v, ok := value.(question.Difficulty)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case question.FieldExplanation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExplanation(v)
		return nil
	case question.FieldSource:
		v, ok := value.(question.Source)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case question.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case question.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case question.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case question.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case question.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case question.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case question.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(question.FieldExplanation) {
		fields = append(fields, question.FieldExplanation)
	}
	if m.FieldCleared(question.FieldTopicID) {
		fields = append(fields, question.FieldTopicID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	switch name {
	case question.FieldExplanation:
		m.ClearExplanation()
		return nil
	case question.FieldTopicID:
		m.ClearTopicID()
		return nil
	}
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldText:
		m.ResetText()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case question.FieldExplanation:
		m.ResetExplanation()
		return nil
	case question.FieldSource:
		m.ResetSource()
		return nil
	case question.FieldVerified:
		m.ResetVerified()
		return nil
	case question.FieldActive:
		m.ResetActive()
		return nil
	case question.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case question.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case question.FieldTopicID:
		m.ResetTopicID()
		return nil
	case question.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case question.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.subject != nil {
		edges = append(edges, question.EdgeSubject)
	}
	if m.topic != nil {
		edges = append(edges, question.EdgeTopic)
	}
	if m.options != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.answers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.options))
		for id := range m.options {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.answers))
		for id := range m.answers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedoptions != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.removedanswers != nil {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.removedoptions))
		for id := range m.removedoptions {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeAnswers:
		ids := make([]ent.Value, 0, len(m.removedanswers))
		for id := range m.removedanswers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedsubject {
		edges = append(edges, question.EdgeSubject)
	}
	if m.clearedtopic {
		edges = append(edges, question.EdgeTopic)
	}
	if m.clearedoptions {
		edges = append(edges, question.EdgeOptions)
	}
	if m.clearedanswers {
		edges = append(edges, question.EdgeAnswers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeSubject:
		return m.clearedsubject
	case question.EdgeTopic:
		return m.clearedtopic
	case question.EdgeOptions:
		return m.clearedoptions
	case question.EdgeAnswers:
		return m.clearedanswers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	case question.EdgeSubject:
		m.ClearSubject()
		return nil
	case question.EdgeTopic:
		m.ClearTopic()
		return nil
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeSubject:
		m.ResetSubject()
		return nil
	case question.EdgeTopic:
		m.ResetTopic()
		return nil
	case question.EdgeOptions:
		m.ResetOptions()
		return nil
	case question.EdgeAnswers:
		m.ResetAnswers()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// QuestionOptionMutation represents an operation that mutates the QuestionOption nodes in the graph.
type QuestionOptionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	text            *string
	correct         *bool
	ord             *int
	addord          *int
	clearedFields   map[string]struct{}
	question        *int
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*QuestionOption, error)
	predicates      []predicate.QuestionOption
}

var _ ent.Mutation = (*QuestionOptionMutation)(nil)

// questionoptionOption allows management of the mutation configuration using functional options.
type questionoptionOption func(*QuestionOptionMutation)

// newQuestionOptionMutation creates new mutation for the QuestionOption entity.
func newQuestionOptionMutation(c config, op Op, opts ...questionoptionOption) *QuestionOptionMutation {
	m := &QuestionOptionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionOption,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionOptionID sets the ID field of the mutation.
func withQuestionOptionID(id int) questionoptionOption {
	return func(m *QuestionOptionMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionOption
		)
		m.oldValue = func(ctx context.Context) (*QuestionOption, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionOption.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionOption sets the old QuestionOption of the mutation.
func withQuestionOption(node *QuestionOption) questionoptionOption {
	return func(m *QuestionOptionMutation) {
		m.oldValue = func(context.Context) (*QuestionOption, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionOptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionOptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionOptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionOptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionOption.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *QuestionOptionMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *QuestionOptionMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *QuestionOptionMutation) ResetText() {
	m.text = nil
}

// SetCorrect sets the "correct" field.
func (m *QuestionOptionMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *QuestionOptionMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *QuestionOptionMutation) ResetCorrect() {
	m.correct = nil
}

// SetOrd sets the "ord" field.
func (m *QuestionOptionMutation) SetOrd(i int) {
	m.ord = &i
	m.addord = nil
}

// Ord returns the value of the "ord" field in the mutation.
func (m *QuestionOptionMutation) Ord() (r int, exists bool) {
	v := m.ord
	if v == nil {
		return
	}
	return *v, true
}

// OldOrd returns the old "ord" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldOrd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrd: %w", err)
	}
	return oldValue.Ord, nil
}

// AddOrd adds i to the "ord" field.
func (m *QuestionOptionMutation) AddOrd(i int) {
	if m.addord != nil {
		*m.addord += i
	} else {
		m.addord = &i
	}
}

// AddedOrd returns the value that was added to the "ord" field in this mutation.
func (m *QuestionOptionMutation) AddedOrd() (r int, exists bool) {
	v := m.addord
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrd resets all changes to the "ord" field.
func (m *QuestionOptionMutation) ResetOrd() {
	m.ord = nil
	m.addord = nil
}

// SetQuestionID sets the "question_id" field.
func (m *QuestionOptionMutation) SetQuestionID(i int) {
	m.question = &i
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *QuestionOptionMutation) QuestionID() (r int, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the QuestionOption entity.
// If the QuestionOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionOptionMutation) OldQuestionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *QuestionOptionMutation) ResetQuestionID() {
	m.question = nil
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *QuestionOptionMutation) ClearQuestion() {
	m.clearedquestion = true
	m.clearedFields[questionoption.FieldQuestionID] = struct{}{}
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *QuestionOptionMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *QuestionOptionMutation) QuestionIDs() (ids []int) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *QuestionOptionMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the QuestionOptionMutation builder.
func (m *QuestionOptionMutation) Where(ps ...predicate.QuestionOption) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionOptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionOptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionOption, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionOptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionOptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionOption).
func (m *QuestionOptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionOptionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.text != nil {
		fields = append(fields, questionoption.FieldText)
	}
	if m.correct != nil {
		fields = append(fields, questionoption.FieldCorrect)
	}
	if m.ord != nil {
		fields = append(fields, questionoption.FieldOrd)
	}
	if m.question != nil {
		fields = append(fields, questionoption.FieldQuestionID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionOptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionoption.FieldText:
		return m.Text()
	case questionoption.FieldCorrect:
		return m.Correct()
	case questionoption.FieldOrd:
		return m.Ord()
	case questionoption.FieldQuestionID:
		return m.QuestionID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionOptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionoption.FieldText:
		return m.OldText(ctx)
	case questionoption.FieldCorrect:
		return m.OldCorrect(ctx)
	case questionoption.FieldOrd:
		return m.OldOrd(ctx)
	case questionoption.FieldQuestionID:
		return m.OldQuestionID(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionOption field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionoption.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case questionoption.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case questionoption.FieldOrd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrd(v)
		return nil
	case questionoption.FieldQuestionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOption field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionOptionMutation) AddedFields() []string {
	var fields []string
	if m.addord != nil {
		fields = append(fields, questionoption.FieldOrd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionOptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case questionoption.FieldOrd:
		return m.AddedOrd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionOptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case questionoption.FieldOrd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrd(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionOption numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionOptionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionOptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionOptionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestionOption nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionOptionMutation) ResetField(name string) error {
	switch name {
	case questionoption.FieldText:
		m.ResetText()
		return nil
	case questionoption.FieldCorrect:
		m.ResetCorrect()
		return nil
	case questionoption.FieldOrd:
		m.ResetOrd()
		return nil
	case questionoption.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	}
	return fmt.Errorf("unknown QuestionOption field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionOptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, questionoption.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionOptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case questionoption.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionOptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionOptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionOptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, questionoption.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionOptionMutation) EdgeCleared(name string) bool {
	switch name {
	case questionoption.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionOptionMutation) ClearEdge(name string) error {
	switch name {
	case questionoption.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown QuestionOption unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionOptionMutation) ResetEdge(name string) error {
	switch name {
	case questionoption.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown QuestionOption edge %s", name)
}

// SubjectMutation represents an operation that mutates the Subject nodes in the graph.
type SubjectMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *string
	clearedFields    map[string]struct{}
	topics           map[int]struct{}
	removedtopics    map[int]struct{}
	clearedtopics    bool
	questions        map[int]struct{}
	removedquestions map[int]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*Subject, error)
	predicates       []predicate.Subject
}

var _ ent.Mutation = (*SubjectMutation)(nil)

// subjectOption allows management of the mutation configuration using functional options.
type subjectOption func(*SubjectMutation)

// newSubjectMutation creates new mutation for the Subject entity.
func newSubjectMutation(c config, op Op, opts ...subjectOption) *SubjectMutation {
	m := &SubjectMutation{
		config:        c,
		op:            op,
		typ:           TypeSubject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectID sets the ID field of the mutation.
func withSubjectID(id int) subjectOption {
	return func(m *SubjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Subject
		)
		m.oldValue = func(ctx context.Context) (*Subject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubject sets the old Subject of the mutation.
func withSubject(node *Subject) subjectOption {
	return func(m *SubjectMutation) {
		m.oldValue = func(context.Context) (*Subject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SubjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subject entity.
// If the Subject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubjectMutation) ResetName() {
	m.name = nil
}

// AddTopicIDs adds the "topics" edge to the Topic entity by ids.
func (m *SubjectMutation) AddTopicIDs(ids ...int) {
	if m.topics == nil {
		m.topics = make(map[int]struct{})
	}
	for i := range ids {
		m.topics[ids[i]] = struct{}{}
	}
}

// ClearTopics clears the "topics" edge to the Topic entity.
func (m *SubjectMutation) ClearTopics() {
	m.clearedtopics = true
}

// TopicsCleared reports if the "topics" edge to the Topic entity was cleared.
func (m *SubjectMutation) TopicsCleared() bool {
	return m.clearedtopics
}

// RemoveTopicIDs removes the "topics" edge to the Topic entity by IDs.
func (m *SubjectMutation) RemoveTopicIDs(ids ...int) {
	if m.removedtopics == nil {
		m.removedtopics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.topics, ids[i])
		m.removedtopics[ids[i]] = struct{}{}
	}
}

// RemovedTopics returns the removed IDs of the "topics" edge to the Topic entity.
func (m *SubjectMutation) RemovedTopicsIDs() (ids []int) {
	for id := range m.removedtopics {
		ids = append(ids, id)
	}
	return
}

// TopicsIDs returns the "topics" edge IDs in the mutation.
func (m *SubjectMutation) TopicsIDs() (ids []int) {
	for id := range m.topics {
		ids = append(ids, id)
	}
	return
}

// ResetTopics resets all changes to the "topics" edge.
func (m *SubjectMutation) ResetTopics() {
	m.topics = nil
	m.clearedtopics = false
	m.removedtopics = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *SubjectMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *SubjectMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *SubjectMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *SubjectMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *SubjectMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *SubjectMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *SubjectMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the SubjectMutation builder.
func (m *SubjectMutation) Where(ps ...predicate.Subject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subject).
func (m *SubjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.name != nil {
		fields = append(fields, subject.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subject.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subject.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Subject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subject.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Subject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectMutation) ResetField(name string) error {
	switch name {
	case subject.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Subject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.topics != nil {
		edges = append(edges, subject.EdgeTopics)
	}
	if m.questions != nil {
		edges = append(edges, subject.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.topics))
		for id := range m.topics {
			ids = append(ids, id)
		}
		return ids
	case subject.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtopics != nil {
		edges = append(edges, subject.EdgeTopics)
	}
	if m.removedquestions != nil {
		edges = append(edges, subject.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subject.EdgeTopics:
		ids := make([]ent.Value, 0, len(m.removedtopics))
		for id := range m.removedtopics {
			ids = append(ids, id)
		}
		return ids
	case subject.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtopics {
		edges = append(edges, subject.EdgeTopics)
	}
	if m.clearedquestions {
		edges = append(edges, subject.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectMutation) EdgeCleared(name string) bool {
	switch name {
	case subject.EdgeTopics:
		return m.clearedtopics
	case subject.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Subject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectMutation) ResetEdge(name string) error {
	switch name {
	case subject.EdgeTopics:
		m.ResetTopics()
		return nil
	case subject.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Subject edge %s", name)
}

// TestMutation represents an operation that mutates the Test nodes in the graph.
type TestMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	public_id           *string
	target_difficulty   *test.TargetDifficulty
	test_type           *test.TestType
	total_questions     *int
	addtotal_questions  *int
	total_marks         *int
	addtotal_marks      *int
	duration_minutes    *int
	addduration_minutes *int
	question_ids        *[]int
	appendquestion_ids  []int
	created_by          *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	subject             *int
	clearedsubject      bool
	topic               *int
	clearedtopic        bool
	attempts            map[int]struct{}
	removedattempts     map[int]struct{}
	clearedattempts     bool
	done                bool
	oldValue            func(context.Context) (*Test, error)
	predicates          []predicate.Test
}

var _ ent.Mutation = (*TestMutation)(nil)

// testOption allows management of the mutation configuration using functional options.
type testOption func(*TestMutation)

// newTestMutation creates new mutation for the Test entity.
func newTestMutation(c config, op Op, opts ...testOption) *TestMutation {
	m := &TestMutation{
		config:        c,
		op:            op,
		typ:           TypeTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestID sets the ID field of the mutation.
func withTestID(id int) testOption {
	return func(m *TestMutation) {
		var (
			err   error
			once  sync.Once
			value *Test
		)
		m.oldValue = func(ctx context.Context) (*Test, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Test.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTest sets the old Test of the mutation.
func withTest(node *Test) testOption {
	return func(m *TestMutation) {
		m.oldValue = func(context.Context) (*Test, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Test.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPublicID sets the "public_id" field.
func (m *TestMutation) SetPublicID(s string) {
	m.public_id = &s
}

// PublicID returns the value of the "public_id" field in the mutation.
func (m *TestMutation) PublicID() (r string, exists bool) {
	v := m.public_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicID returns the old "public_id" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldPublicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicID: %w", err)
	}
	return oldValue.PublicID, nil
}

// ResetPublicID resets all changes to the "public_id" field.
func (m *TestMutation) ResetPublicID() {
	m.public_id = nil
}

// SetTargetDifficulty sets the "target_difficulty" field.
func (m *TestMutation) SetTargetDifficulty(td test.TargetDifficulty) {
	m.target_difficulty = &td
}

// TargetDifficulty returns the value of the "target_difficulty" field in the mutation.
func (m *TestMutation) TargetDifficulty() (r test.TargetDifficulty, exists bool) {
	v := m.target_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetDifficulty returns the old "target_difficulty" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTargetDifficulty(ctx context.Context) (v test.TargetDifficulty, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetDifficulty: %w", err)
	}
	return oldValue.TargetDifficulty, nil
}

// ResetTargetDifficulty resets all changes to the "target_difficulty" field.
func (m *TestMutation) ResetTargetDifficulty() {
	m.target_difficulty = nil
}

// SetTestType sets the "test_type" field.
func (m *TestMutation) SetTestType(tt test.TestType) {
	m.test_type = &tt
}

// TestType returns the value of the "test_type" field in the mutation.
func (m *TestMutation) TestType() (r test.TestType, exists bool) {
	v := m.test_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTestType returns the old "test_type" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTestType(ctx context.Context) (v test.TestType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestType: %w", err)
	}
	return oldValue.TestType, nil
}

// ResetTestType resets all changes to the "test_type" field.
func (m *TestMutation) ResetTestType() {
	m.test_type = nil
}

// SetTotalQuestions sets the "total_questions" field.
func (m *TestMutation) SetTotalQuestions(i int) {
	m.total_questions = &i
	m.addtotal_questions = nil
}

// TotalQuestions returns the value of the "total_questions" field in the mutation.
func (m *TestMutation) TotalQuestions() (r int, exists bool) {
	v := m.total_questions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestions returns the old "total_questions" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTotalQuestions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestions: %w", err)
	}
	return oldValue.TotalQuestions, nil
}

// AddTotalQuestions adds i to the "total_questions" field.
func (m *TestMutation) AddTotalQuestions(i int) {
	if m.addtotal_questions != nil {
		*m.addtotal_questions += i
	} else {
		m.addtotal_questions = &i
	}
}

// AddedTotalQuestions returns the value that was added to the "total_questions" field in this mutation.
func (m *TestMutation) AddedTotalQuestions() (r int, exists bool) {
	v := m.addtotal_questions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestions resets all changes to the "total_questions" field.
func (m *TestMutation) ResetTotalQuestions() {
	m.total_questions = nil
	m.addtotal_questions = nil
}

// SetTotalMarks sets the "total_marks" field.
func (m *TestMutation) SetTotalMarks(i int) {
	m.total_marks = &i
	m.addtotal_marks = nil
}

// TotalMarks returns the value of the "total_marks" field in the mutation.
func (m *TestMutation) TotalMarks() (r int, exists bool) {
	v := m.total_marks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalMarks returns the old "total_marks" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTotalMarks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalMarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalMarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalMarks: %w", err)
	}
	return oldValue.TotalMarks, nil
}

// AddTotalMarks adds i to the "total_marks" field.
func (m *TestMutation) AddTotalMarks(i int) {
	if m.addtotal_marks != nil {
		*m.addtotal_marks += i
	} else {
		m.addtotal_marks = &i
	}
}

// AddedTotalMarks returns the value that was added to the "total_marks" field in this mutation.
func (m *TestMutation) AddedTotalMarks() (r int, exists bool) {
	v := m.addtotal_marks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalMarks resets all changes to the "total_marks" field.
func (m *TestMutation) ResetTotalMarks() {
	m.total_marks = nil
	m.addtotal_marks = nil
}

// SetDurationMinutes sets the "duration_minutes" field.
func (m *TestMutation) SetDurationMinutes(i int) {
	m.duration_minutes = &i
	m.addduration_minutes = nil
}

// DurationMinutes returns the value of the "duration_minutes" field in the mutation.
func (m *TestMutation) DurationMinutes() (r int, exists bool) {
	v := m.duration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMinutes returns the old "duration_minutes" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldDurationMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMinutes: %w", err)
	}
	return oldValue.DurationMinutes, nil
}

// AddDurationMinutes adds i to the "duration_minutes" field.
func (m *TestMutation) AddDurationMinutes(i int) {
	if m.addduration_minutes != nil {
		*m.addduration_minutes += i
	} else {
		m.addduration_minutes = &i
	}
}

// AddedDurationMinutes returns the value that was added to the "duration_minutes" field in this mutation.
func (m *TestMutation) AddedDurationMinutes() (r int, exists bool) {
	v := m.addduration_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMinutes resets all changes to the "duration_minutes" field.
func (m *TestMutation) ResetDurationMinutes() {
	m.duration_minutes = nil
	m.addduration_minutes = nil
}

// SetQuestionIds sets the "question_ids" field.
func (m *TestMutation) SetQuestionIds(i []int) {
	m.question_ids = &i
	m.appendquestion_ids = nil
}

// QuestionIds returns the value of the "question_ids" field in the mutation.
func (m *TestMutation) QuestionIds() (r []int, exists bool) {
	v := m.question_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIds returns the old "question_ids" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldQuestionIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIds: %w", err)
	}
	return oldValue.QuestionIds, nil
}

// AppendQuestionIds adds i to the "question_ids" field.
func (m *TestMutation) AppendQuestionIds(i []int) {
	m.appendquestion_ids = append(m.appendquestion_ids, i...)
}

// AppendedQuestionIds returns the list of values that were appended to the "question_ids" field in this mutation.
func (m *TestMutation) AppendedQuestionIds() ([]int, bool) {
	if len(m.appendquestion_ids) == 0 {
		return nil, false
	}
	return m.appendquestion_ids, true
}

// ResetQuestionIds resets all changes to the "question_ids" field.
func (m *TestMutation) ResetQuestionIds() {
	m.question_ids = nil
	m.appendquestion_ids = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *TestMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *TestMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *TestMutation) ResetCreatedBy() {
	m.created_by = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *TestMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *TestMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldSubjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *TestMutation) ResetSubjectID() {
	m.subject = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TestMutation) SetTopicID(i int) {
	m.topic = &i
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TestMutation) TopicID() (r int, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *TestMutation) ClearTopicID() {
	m.topic = nil
	m.clearedFields[test.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *TestMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[test.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TestMutation) ResetTopicID() {
	m.topic = nil
	delete(m.clearedFields, test.FieldTopicID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Test entity.
// If the Test object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *TestMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[test.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *TestMutation) SubjectCleared() bool {
	return m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *TestMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *TestMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *TestMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[test.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *TestMutation) TopicCleared() bool {
	return m.TopicIDCleared() || m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *TestMutation) TopicIDs() (ids []int) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *TestMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// AddAttemptIDs adds the "attempts" edge to the Attempt entity by ids.
func (m *TestMutation) AddAttemptIDs(ids ...int) {
	if m.attempts == nil {
		m.attempts = make(map[int]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the Attempt entity.
func (m *TestMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the Attempt entity was cleared.
func (m *TestMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the Attempt entity by IDs.
func (m *TestMutation) RemoveAttemptIDs(ids ...int) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the Attempt entity.
func (m *TestMutation) RemovedAttemptsIDs() (ids []int) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *TestMutation) AttemptsIDs() (ids []int) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *TestMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the TestMutation builder.
func (m *TestMutation) Where(ps ...predicate.Test) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Test, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Test).
func (m *TestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.public_id != nil {
		fields = append(fields, test.FieldPublicID)
	}
	if m.target_difficulty != nil {
		fields = append(fields, test.FieldTargetDifficulty)
	}
	if m.test_type != nil {
		fields = append(fields, test.FieldTestType)
	}
	if m.total_questions != nil {
		fields = append(fields, test.FieldTotalQuestions)
	}
	if m.total_marks != nil {
		fields = append(fields, test.FieldTotalMarks)
	}
	if m.duration_minutes != nil {
		fields = append(fields, test.FieldDurationMinutes)
	}
	if m.question_ids != nil {
		fields = append(fields, test.FieldQuestionIds)
	}
	if m.created_by != nil {
		fields = append(fields, test.FieldCreatedBy)
	}
	if m.subject != nil {
		fields = append(fields, test.FieldSubjectID)
	}
	if m.topic != nil {
		fields = append(fields, test.FieldTopicID)
	}
	if m.created_at != nil {
		fields = append(fields, test.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case test.FieldPublicID:
		return m.PublicID()
	case test.FieldTargetDifficulty:
		return m.TargetDifficulty()
	case test.FieldTestType:
		return m.TestType()
	case test.FieldTotalQuestions:
		return m.TotalQuestions()
	case test.FieldTotalMarks:
		return m.TotalMarks()
	case test.FieldDurationMinutes:
		return m.DurationMinutes()
	case test.FieldQuestionIds:
		return m.QuestionIds()
	case test.FieldCreatedBy:
		return m.CreatedBy()
	case test.FieldSubjectID:
		return m.SubjectID()
	case test.FieldTopicID:
		return m.TopicID()
	case test.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case test.FieldPublicID:
		return m.OldPublicID(ctx)
	case test.FieldTargetDifficulty:
		return m.OldTargetDifficulty(ctx)
	case test.FieldTestType:
		return m.OldTestType(ctx)
	case test.FieldTotalQuestions:
		return m.OldTotalQuestions(ctx)
	case test.FieldTotalMarks:
		return m.OldTotalMarks(ctx)
	case test.FieldDurationMinutes:
		return m.OldDurationMinutes(ctx)
	case test.FieldQuestionIds:
		return m.OldQuestionIds(ctx)
	case test.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case test.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case test.FieldTopicID:
		return m.OldTopicID(ctx)
	case test.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Test field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case test.FieldPublicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicID(v)
		return nil
	case test.FieldTargetDifficulty:
		v, ok := value.(test.TargetDifficulty)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetDifficulty(v)
		return nil
	case test.FieldTestType:
		v, ok := value.(test.TestType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestType(v)
		return nil
	case test.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestions(v)
		return nil
	case test.FieldTotalMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalMarks(v)
		return nil
	case test.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMinutes(v)
		return nil
	case test.FieldQuestionIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIds(v)
		return nil
	case test.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case test.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case test.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case test.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_questions != nil {
		fields = append(fields, test.FieldTotalQuestions)
	}
	if m.addtotal_marks != nil {
		fields = append(fields, test.FieldTotalMarks)
	}
	if m.addduration_minutes != nil {
		fields = append(fields, test.FieldDurationMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case test.FieldTotalQuestions:
		return m.AddedTotalQuestions()
	case test.FieldTotalMarks:
		return m.AddedTotalMarks()
	case test.FieldDurationMinutes:
		return m.AddedDurationMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case test.FieldTotalQuestions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestions(v)
		return nil
	case test.FieldTotalMarks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalMarks(v)
		return nil
	case test.FieldDurationMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Test numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(test.FieldTopicID) {
		fields = append(fields, test.FieldTopicID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestMutation) ClearField(name string) error {
	switch name {
	case test.FieldTopicID:
		m.ClearTopicID()
		return nil
	}
	return fmt.Errorf("unknown Test nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestMutation) ResetField(name string) error {
	switch name {
	case test.FieldPublicID:
		m.ResetPublicID()
		return nil
	case test.FieldTargetDifficulty:
		m.ResetTargetDifficulty()
		return nil
	case test.FieldTestType:
		m.ResetTestType()
		return nil
	case test.FieldTotalQuestions:
		m.ResetTotalQuestions()
		return nil
	case test.FieldTotalMarks:
		m.ResetTotalMarks()
		return nil
	case test.FieldDurationMinutes:
		m.ResetDurationMinutes()
		return nil
	case test.FieldQuestionIds:
		m.ResetQuestionIds()
		return nil
	case test.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case test.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case test.FieldTopicID:
		m.ResetTopicID()
		return nil
	case test.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Test field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.subject != nil {
		edges = append(edges, test.EdgeSubject)
	}
	if m.topic != nil {
		edges = append(edges, test.EdgeTopic)
	}
	if m.attempts != nil {
		edges = append(edges, test.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case test.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case test.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	case test.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedattempts != nil {
		edges = append(edges, test.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case test.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedsubject {
		edges = append(edges, test.EdgeSubject)
	}
	if m.clearedtopic {
		edges = append(edges, test.EdgeTopic)
	}
	if m.clearedattempts {
		edges = append(edges, test.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestMutation) EdgeCleared(name string) bool {
	switch name {
	case test.EdgeSubject:
		return m.clearedsubject
	case test.EdgeTopic:
		return m.clearedtopic
	case test.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestMutation) ClearEdge(name string) error {
	switch name {
	case test.EdgeSubject:
		m.ClearSubject()
		return nil
	case test.EdgeTopic:
		m.ClearTopic()
		return nil
	}
	return fmt.Errorf("unknown Test unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestMutation) ResetEdge(name string) error {
	switch name {
	case test.EdgeSubject:
		m.ResetSubject()
		return nil
	case test.EdgeTopic:
		m.ResetTopic()
		return nil
	case test.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown Test edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *string
	clearedFields    map[string]struct{}
	subject          *int
	clearedsubject   bool
	questions        map[int]struct{}
	removedquestions map[int]struct{}
	clearedquestions bool
	done             bool
	oldValue         func(context.Context) (*Topic, error)
	predicates       []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id int) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TopicMutation) ResetName() {
	m.name = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *TopicMutation) SetSubjectID(i int) {
	m.subject = &i
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *TopicMutation) SubjectID() (r int, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldSubjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *TopicMutation) ResetSubjectID() {
	m.subject = nil
}

// ClearSubject clears the "subject" edge to the Subject entity.
func (m *TopicMutation) ClearSubject() {
	m.clearedsubject = true
	m.clearedFields[topic.FieldSubjectID] = struct{}{}
}

// SubjectCleared reports if the "subject" edge to the Subject entity was cleared.
func (m *TopicMutation) SubjectCleared() bool {
	return m.clearedsubject
}

// SubjectIDs returns the "subject" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubjectID instead. It exists only for internal usage by the builders.
func (m *TopicMutation) SubjectIDs() (ids []int) {
	if id := m.subject; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubject resets all changes to the "subject" edge.
func (m *TopicMutation) ResetSubject() {
	m.subject = nil
	m.clearedsubject = false
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *TopicMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *TopicMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *TopicMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *TopicMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *TopicMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *TopicMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *TopicMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, topic.FieldName)
	}
	if m.subject != nil {
		fields = append(fields, topic.FieldSubjectID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldName:
		return m.Name()
	case topic.FieldSubjectID:
		return m.SubjectID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldName:
		return m.OldName(ctx)
	case topic.FieldSubjectID:
		return m.OldSubjectID(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case topic.FieldSubjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldName:
		m.ResetName()
		return nil
	case topic.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.subject != nil {
		edges = append(edges, topic.EdgeSubject)
	}
	if m.questions != nil {
		edges = append(edges, topic.EdgeQuestions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeSubject:
		if id := m.subject; id != nil {
			return []ent.Value{*id}
		}
	case topic.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquestions != nil {
		edges = append(edges, topic.EdgeQuestions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubject {
		edges = append(edges, topic.EdgeSubject)
	}
	if m.clearedquestions {
		edges = append(edges, topic.EdgeQuestions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	switch name {
	case topic.EdgeSubject:
		return m.clearedsubject
	case topic.EdgeQuestions:
		return m.clearedquestions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	switch name {
	case topic.EdgeSubject:
		m.ClearSubject()
		return nil
	}
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	switch name {
	case topic.EdgeSubject:
		m.ResetSubject()
		return nil
	case topic.EdgeQuestions:
		m.ResetQuestions()
		return nil
	}
	return fmt.Errorf("unknown Topic edge %s", name)
}
