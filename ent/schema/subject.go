package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Subject is a top-level content area (History, Polity, Economy, ...).
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Display name, unique across the bank"),
	}
}

func (Subject) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("topics", Topic.Type),
		edge.To("questions", Question.Type),
	}
}
