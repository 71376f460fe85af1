// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerRecord is the predicate function for answerrecord builders.
type AnswerRecord func(*sql.Selector)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MetricsRecord is the predicate function for metricsrecord builders.
type MetricsRecord func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// QuestionOption is the predicate function for questionoption builders.
type QuestionOption func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)

// Test is the predicate function for test builders.
type Test func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
