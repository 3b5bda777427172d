// Code generated by ent, DO NOT EDIT.

package navigationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the navigationevent type in the database.
	Label = "navigation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldFromActivity holds the string denoting the from_activity field in the database.
	FieldFromActivity = "from_activity"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldPending holds the string denoting the pending field in the database.
	FieldPending = "pending"
	// Table holds the table name of the navigationevent in the database.
	Table = "navigation_events"
)

// Columns holds all SQL columns for navigationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldFromActivity,
	FieldKind,
	FieldTarget,
	FieldPending,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// FromActivityValidator is a validator for the "from_activity" field. It is called by the builders before save.
	FromActivityValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultPending holds the default value on creation for the "pending" field.
	DefaultPending bool
)

// OrderOption defines the ordering options for the NavigationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByFromActivity orders the results by the from_activity field.
func ByFromActivity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromActivity, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// ByPending orders the results by the pending field.
func ByPending(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPending, opts...).ToFunc()
}
