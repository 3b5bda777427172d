package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a part state save or submit.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("activity_id").
			NotEmpty().
			Comment("Owning activity"),
		field.String("part_id").
			NotEmpty().
			Comment("Part that reported state"),
		field.String("attempt_guid").
			NotEmpty().
			Comment("Activity attempt guid"),
		field.String("part_attempt_guid").
			NotEmpty().
			Comment("Part attempt guid"),
		field.Bool("finalize").
			Default(false).
			Comment("True for submit, false for save"),
		field.Int("key_count").
			Default(0).
			Comment("Number of response keys written"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("activity_id"),
		index.Fields("part_id"),
	}
}
