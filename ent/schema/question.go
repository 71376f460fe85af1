package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a bank question. Questions are never hard-deleted; retiring
// one clears the active flag so historical test snapshots stay resolvable.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text").
			NotEmpty().
			Comment("The question prompt shown to the user"),
		field.Enum("question_type").
			Values("MCQ", "SUBJECTIVE", "TRUE_FALSE"),
		field.Enum("difficulty").
			Values("EASY", "MEDIUM", "HARD"),
		field.Text("explanation").
			Optional().
			Comment("Worked explanation shown after grading"),
		field.Enum("source").
			Values("PYQ", "AI", "USER").
			Comment("Sourcing tier this question belongs to"),
		field.Bool("verified").
			Default(false).
			Comment("Reviewed by a human; AI-generated questions start unverified"),
		field.Bool("active").
			Default(true).
			Comment("Soft-delete flag; inactive questions are never sourced"),
		field.String("fingerprint").
			NotEmpty().
			Unique().
			Comment("Normalized content hash used for dedup (see exam.Fingerprint)"),
		field.Int("subject_id"),
		field.Int("topic_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("questions").
			Field("subject_id").
			Unique().
			Required(),
		edge.From("topic", Topic.Type).
			Ref("questions").
			Field("topic_id").
			Unique(),
		edge.To("options", QuestionOption.Type),
		edge.To("answers", AnswerRecord.Type),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty", "source", "active"),
	}
}
