package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// QuestionOption is one answer choice of a question.
type QuestionOption struct {
	ent.Schema
}

func (QuestionOption) Fields() []ent.Field {
	return []ent.Field{
		field.Text("text").
			NotEmpty(),
		field.Bool("correct").
			Default(false),
		field.Int("ord").
			Comment("1-based presentation order within the question"),
		field.Int("question_id"),
	}
}

func (QuestionOption) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("options").
			Field("question_id").
			Unique().
			Required(),
	}
}
