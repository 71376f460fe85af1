package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic is a subdivision of a Subject.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name, unique within its subject"),
		field.Int("subject_id"),
	}
}

func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subject", Subject.Type).
			Ref("topics").
			Field("subject_id").
			Unique().
			Required(),
		edge.To("questions", Question.Type),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").
			Edges("subject").
			Unique(),
	}
}
