// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldActivityID holds the string denoting the activity_id field in the database.
	FieldActivityID = "activity_id"
	// FieldPartID holds the string denoting the part_id field in the database.
	FieldPartID = "part_id"
	// FieldAttemptGUID holds the string denoting the attempt_guid field in the database.
	FieldAttemptGUID = "attempt_guid"
	// FieldPartAttemptGUID holds the string denoting the part_attempt_guid field in the database.
	FieldPartAttemptGUID = "part_attempt_guid"
	// FieldFinalize holds the string denoting the finalize field in the database.
	FieldFinalize = "finalize"
	// FieldKeyCount holds the string denoting the key_count field in the database.
	FieldKeyCount = "key_count"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldActivityID,
	FieldPartID,
	FieldAttemptGUID,
	FieldPartAttemptGUID,
	FieldFinalize,
	FieldKeyCount,
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
	// ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	ActivityIDValidator func(string) error
	// PartIDValidator is a validator for the "part_id" field. It is called by the builders before save.
	PartIDValidator func(string) error
	// AttemptGUIDValidator is a validator for the "attempt_guid" field. It is called by the builders before save.
	AttemptGUIDValidator func(string) error
	// PartAttemptGUIDValidator is a validator for the "part_attempt_guid" field. It is called by the builders before save.
	PartAttemptGUIDValidator func(string) error
	// DefaultFinalize holds the default value on creation for the "finalize" field.
	DefaultFinalize bool
	// DefaultKeyCount holds the default value on creation for the "key_count" field.
	DefaultKeyCount int
)

// OrderOption defines the ordering options for the AttemptEvent queries.
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

// ByActivityID orders the results by the activity_id field.
func ByActivityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityID, opts...).ToFunc()
}

// ByPartID orders the results by the part_id field.
func ByPartID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartID, opts...).ToFunc()
}

// ByAttemptGUID orders the results by the attempt_guid field.
func ByAttemptGUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptGUID, opts...).ToFunc()
}

// ByPartAttemptGUID orders the results by the part_attempt_guid field.
func ByPartAttemptGUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartAttemptGUID, opts...).ToFunc()
}

// ByFinalize orders the results by the finalize field.
func ByFinalize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalize, opts...).ToFunc()
}

// ByKeyCount orders the results by the key_count field.
func ByKeyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyCount, opts...).ToFunc()
}
