package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NavigationEvent records a navigation decision emitted by a check cycle.
type NavigationEvent struct {
	ent.Schema
}

func (NavigationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (NavigationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("from_activity").
			NotEmpty().
			Comment("Activity the learner navigated away from"),
		field.String("kind").
			NotEmpty().
			Comment("next, prev, first, last, activity, or pending"),
		field.String("target").
			Optional().
			Comment("Explicit activity id for kind=activity"),
		field.Bool("pending").
			Default(false).
			Comment("True when navigation waits behind feedback"),
	}
}

func (NavigationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("from_activity"),
	}
}
