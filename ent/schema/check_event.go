package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CheckEvent records the outcome of a single check cycle.
type CheckEvent struct {
	ent.Schema
}

func (CheckEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CheckEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("activity_id").
			NotEmpty().
			Comment("Activity the check ran against"),
		field.String("outcome").
			NotEmpty().
			Comment("Terminal cycle kind: feedback-only, navigate-only, etc."),
		field.Bool("correct").
			Comment("Whether every selected rule result was correct"),
		field.Int("mutation_count").
			Default(0).
			Comment("State changes the cycle applied"),
		field.Int("error_count").
			Default(0).
			Comment("Per-operation diagnostics recorded during the cycle"),
		field.Float("score").
			Default(0).
			Comment("tutorialScore + currentQuestionScore after mutation"),
	}
}

func (CheckEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("activity_id"),
		index.Fields("correct"),
	}
}
