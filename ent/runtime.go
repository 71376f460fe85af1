// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/examiz/ent/answerrecord"
	"github.com/abhisek/examiz/ent/attempt"
	"github.com/abhisek/examiz/ent/llmrequestevent"
	"github.com/abhisek/examiz/ent/metricsrecord"
	"github.com/abhisek/examiz/ent/question"
	"github.com/abhisek/examiz/ent/questionoption"
	"github.com/abhisek/examiz/ent/schema"
	"github.com/abhisek/examiz/ent/subject"
	"github.com/abhisek/examiz/ent/test"
	"github.com/abhisek/examiz/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerrecordFields := schema.AnswerRecord{}.Fields()
	_ = answerrecordFields
	// answerrecordDescUserID is the schema descriptor for user_id field.
	answerrecordDescUserID := answerrecordFields[0].Descriptor()
	// answerrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerrecord.UserIDValidator = answerrecordDescUserID.Validators[0].(func(string) error)
	// answerrecordDescTimeSpentSeconds is the schema descriptor for time_spent_seconds field.
	answerrecordDescTimeSpentSeconds := answerrecordFields[3].Descriptor()
	// answerrecord.DefaultTimeSpentSeconds holds the default value on creation for the time_spent_seconds field.
	answerrecord.DefaultTimeSpentSeconds = answerrecordDescTimeSpentSeconds.Default.(int)
	// answerrecordDescSelectionChangeCount is the schema descriptor for selection_change_count field.
	answerrecordDescSelectionChangeCount := answerrecordFields[4].Descriptor()
	// answerrecord.DefaultSelectionChangeCount holds the default value on creation for the selection_change_count field.
	answerrecord.DefaultSelectionChangeCount = answerrecordDescSelectionChangeCount.Default.(int)
	// answerrecordDescHoverCount is the schema descriptor for hover_count field.
	answerrecordDescHoverCount := answerrecordFields[5].Descriptor()
	// answerrecord.DefaultHoverCount holds the default value on creation for the hover_count field.
	answerrecord.DefaultHoverCount = answerrecordDescHoverCount.Default.(int)
	// answerrecordDescCorrect is the schema descriptor for correct field.
	answerrecordDescCorrect := answerrecordFields[7].Descriptor()
	// answerrecord.DefaultCorrect holds the default value on creation for the correct field.
	answerrecord.DefaultCorrect = answerrecordDescCorrect.Default.(bool)
	// answerrecordDescAnsweredAt is the schema descriptor for answered_at field.
	answerrecordDescAnsweredAt := answerrecordFields[9].Descriptor()
	// answerrecord.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	answerrecord.DefaultAnsweredAt = answerrecordDescAnsweredAt.Default.(func() time.Time)
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescPublicID is the schema descriptor for public_id field.
	attemptDescPublicID := attemptFields[0].Descriptor()
	// attempt.DefaultPublicID holds the default value on creation for the public_id field.
	attempt.DefaultPublicID = attemptDescPublicID.Default.(func() string)
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[1].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[3].Descriptor()
	// attempt.DefaultScore holds the default value on creation for the score field.
	attempt.DefaultScore = attemptDescScore.Default.(int)
	// attemptDescStartedAt is the schema descriptor for started_at field.
	attemptDescStartedAt := attemptFields[5].Descriptor()
	// attempt.DefaultStartedAt holds the default value on creation for the started_at field.
	attempt.DefaultStartedAt = attemptDescStartedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	metricsrecordFields := schema.MetricsRecord{}.Fields()
	_ = metricsrecordFields
	// metricsrecordDescUserID is the schema descriptor for user_id field.
	metricsrecordDescUserID := metricsrecordFields[0].Descriptor()
	// metricsrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	metricsrecord.UserIDValidator = metricsrecordDescUserID.Validators[0].(func(string) error)
	// metricsrecordDescCreatedAt is the schema descriptor for created_at field.
	metricsrecordDescCreatedAt := metricsrecordFields[14].Descriptor()
	// metricsrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	metricsrecord.DefaultCreatedAt = metricsrecordDescCreatedAt.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[0].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescVerified is the schema descriptor for verified field.
	questionDescVerified := questionFields[5].Descriptor()
	// question.DefaultVerified holds the default value on creation for the verified field.
	question.DefaultVerified = questionDescVerified.Default.(bool)
	// questionDescActive is the schema descriptor for active field.
	questionDescActive := questionFields[6].Descriptor()
	// question.DefaultActive holds the default value on creation for the active field.
	question.DefaultActive = questionDescActive.Default.(bool)
	// questionDescFingerprint is the schema descriptor for fingerprint field.
	questionDescFingerprint := questionFields[7].Descriptor()
	// question.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	question.FingerprintValidator = questionDescFingerprint.Validators[0].(func(string) error)
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionFields[10].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionFields[11].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	questionoptionFields := schema.QuestionOption{}.Fields()
	_ = questionoptionFields
	// questionoptionDescText is the schema descriptor for text field.
	questionoptionDescText := questionoptionFields[0].Descriptor()
	// questionoption.TextValidator is a validator for the "text" field. It is called by the builders before save.
	questionoption.TextValidator = questionoptionDescText.Validators[0].(func(string) error)
	// questionoptionDescCorrect is the schema descriptor for correct field.
	questionoptionDescCorrect := questionoptionFields[1].Descriptor()
	// questionoption.DefaultCorrect holds the default value on creation for the correct field.
	questionoption.DefaultCorrect = questionoptionDescCorrect.Default.(bool)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[0].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	testFields := schema.Test{}.Fields()
	_ = testFields
	// testDescPublicID is the schema descriptor for public_id field.
	testDescPublicID := testFields[0].Descriptor()
	// test.DefaultPublicID holds the default value on creation for the public_id field.
	test.DefaultPublicID = testDescPublicID.Default.(func() string)
	// testDescCreatedBy is the schema descriptor for created_by field.
	testDescCreatedBy := testFields[7].Descriptor()
	// test.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	test.CreatedByValidator = testDescCreatedBy.Validators[0].(func(string) error)
	// testDescCreatedAt is the schema descriptor for created_at field.
	testDescCreatedAt := testFields[10].Descriptor()
	// test.DefaultCreatedAt holds the default value on creation for the created_at field.
	test.DefaultCreatedAt = testDescCreatedAt.Default.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[0].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
}
