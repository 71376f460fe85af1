package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Test is an assembled test aggregate. The question snapshot is stored as
// an ordered id list and never mutated after creation.
type Test struct {
	ent.Schema
}

func (Test) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable().
			Comment("Stable external identifier"),
		field.Enum("target_difficulty").
			Values("EASY", "MEDIUM", "HARD"),
		field.Enum("test_type").
			Values("MOCK", "PRACTICE", "PREVIOUS_YEAR", "AI_GENERATED"),
		field.Int("total_questions"),
		field.Int("total_marks"),
		field.Int("duration_minutes"),
		field.JSON("question_ids", []int{}).
			Comment("Ordered immutable snapshot of the assembled questions"),
		field.String("created_by").
			NotEmpty().
			Comment("External user id of the requester"),
		field.Int("subject_id"),
		field.Int("topic_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Test) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subject", Subject.Type).
			Field("subject_id").
			Unique().
			Required(),
		edge.To("topic", Topic.Type).
			Field("topic_id").
			Unique(),
		edge.To("attempts", Attempt.Type),
	}
}
