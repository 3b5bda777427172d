package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures a session's scripting environment at a point in time so
// a lesson can resume with its variables intact.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the environment belongs to"),
		field.Int64("sequence").
			Comment("Global sequence at capture time"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("UTC wall-clock time of the capture"),
		field.JSON("data", map[string]any{}).
			Comment("Fully-qualified variable path to value"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("timestamp"),
	}
}
