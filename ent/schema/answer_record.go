package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerRecord is the per-question telemetry of one attempt. It also serves
// as the per-user "seen question" marker consulted by the sourcing pipeline.
type AnswerRecord struct {
	ent.Schema
}

func (AnswerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Denormalized from the attempt for fast unseen-question queries"),
		field.Int("selected_option_id").
			Optional().
			Comment("0 means the question was shown but not answered"),
		field.Int("first_selected_option_id").
			Optional(),
		field.Int("time_spent_seconds").
			Default(0),
		field.Int("selection_change_count").
			Default(0),
		field.Int("hover_count").
			Default(0),
		field.JSON("eliminated_option_ids", []int{}).
			Optional(),
		field.Bool("correct").
			Default(false),
		field.Enum("classification").
			Values("BLIND_GUESS", "EDUCATED_GUESS", "SURE", "UNKNOWN").
			Default("UNKNOWN"),
		field.Time("answered_at").
			Default(time.Now).
			Immutable(),
		field.Int("attempt_id"),
		field.Int("question_id"),
	}
}

func (AnswerRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attempt", Attempt.Type).
			Ref("answers").
			Field("attempt_id").
			Unique().
			Required(),
		edge.From("question", Question.Type).
			Ref("answers").
			Field("question_id").
			Unique().
			Required(),
	}
}

func (AnswerRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("attempt", "question").
			Unique(),
		index.Fields("user_id").
			Edges("question"),
	}
}
