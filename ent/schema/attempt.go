package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attempt is one user's run through a test. A partial unique index
// guarantees at most one IN_PROGRESS attempt per (test, user) pair;
// writers must re-select on a constraint violation.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			DefaultFunc(uuid.NewString).
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.Enum("status").
			NamedValues(
				"InProgress", "IN_PROGRESS",
				"Completed", "COMPLETED",
				"Abandoned", "ABANDONED",
			).
			Default("IN_PROGRESS"),
		field.Int("score").
			Default(0),
		field.Int("total_marks").
			Comment("Copied from the test at start time"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("test_id"),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("test", Test.Type).
			Ref("attempts").
			Field("test_id").
			Unique().
			Required(),
		edge.To("answers", AnswerRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("metrics", MetricsRecord.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").
			Edges("test").
			Unique().
			Annotations(entsql.IndexWhere("status = 'IN_PROGRESS'")),
		index.Fields("user_id", "started_at"),
	}
}
