package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// MetricsRecord holds the behavioral metrics derived from one completed
// attempt. Exactly one record per attempt; recomputation overwrites.
type MetricsRecord struct {
	ent.Schema
}

func (MetricsRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Float("accuracy"),
		field.Float("attempt_ratio"),
		field.Float("negative_marks"),
		field.Float("first_instinct_accuracy"),
		field.Float("elimination_efficiency"),
		field.Int("impulsive_error_count"),
		field.Int("overthinking_error_count"),
		field.Float("guess_probability"),
		field.JSON("cognitive_breakdown", map[string]float64{}).
			Comment("Per-quarter accuracy: q1_accuracy .. q4_accuracy"),
		field.JSON("fatigue_curve", map[string]any{}).
			Comment("fatigue_index (SLOWING_DOWN|CONSISTENT) and accuracy_drop"),
		field.Float("risk_appetite"),
		field.Float("confidence_index"),
		field.Float("consistency_index"),
		field.Time("created_at").
			Default(time.Now),
		field.Int("attempt_id").
			Unique(),
	}
}

func (MetricsRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attempt", Attempt.Type).
			Ref("metrics").
			Field("attempt_id").
			Unique().
			Required(),
	}
}
