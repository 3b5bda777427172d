// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "part_id", Type: field.TypeString},
		{Name: "attempt_guid", Type: field.TypeString},
		{Name: "part_attempt_guid", Type: field.TypeString},
		{Name: "finalize", Type: field.TypeBool, Default: false},
		{Name: "key_count", Type: field.TypeInt, Default: 0},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_part_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
		},
	}
	// CheckEventsColumns holds the columns for the "check_events" table.
	CheckEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "activity_id", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "mutation_count", Type: field.TypeInt, Default: 0},
		{Name: "error_count", Type: field.TypeInt, Default: 0},
		{Name: "score", Type: field.TypeFloat64, Default: 0},
	}
	// CheckEventsTable holds the schema information for the "check_events" table.
	CheckEventsTable = &schema.Table{
		Name:       "check_events",
		Columns:    CheckEventsColumns,
		PrimaryKey: []*schema.Column{CheckEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[1]},
			},
			{
				Name:    "checkevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[2]},
			},
			{
				Name:    "checkevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[3]},
			},
			{
				Name:    "checkevent_activity_id",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[4]},
			},
			{
				Name:    "checkevent_correct",
				Unique:  false,
				Columns: []*schema.Column{CheckEventsColumns[6]},
			},
		},
	}
	// NavigationEventsColumns holds the columns for the "navigation_events" table.
	NavigationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "from_activity", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "target", Type: field.TypeString, Nullable: true},
		{Name: "pending", Type: field.TypeBool, Default: false},
	}
	// NavigationEventsTable holds the schema information for the "navigation_events" table.
	NavigationEventsTable = &schema.Table{
		Name:       "navigation_events",
		Columns:    NavigationEventsColumns,
		PrimaryKey: []*schema.Column{NavigationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "navigationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{NavigationEventsColumns[1]},
			},
			{
				Name:    "navigationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{NavigationEventsColumns[2]},
			},
			{
				Name:    "navigationevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{NavigationEventsColumns[3]},
			},
			{
				Name:    "navigationevent_from_activity",
				Unique:  false,
				Columns: []*schema.Column{NavigationEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "checks_run", Type: field.TypeInt, Default: 0},
		{Name: "correct_checks", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_session_id",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		CheckEventsTable,
		NavigationEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
