// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jtrask/stagehand/ent/navigationevent"
)

// NavigationEvent is the model entity for the NavigationEvent schema.
type NavigationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Activity the learner navigated away from
	FromActivity string `json:"from_activity,omitempty"`
	// next, prev, first, last, activity, or pending
	Kind string `json:"kind,omitempty"`
	// Explicit activity id for kind=activity
	Target string `json:"target,omitempty"`
	// True when navigation waits behind feedback
	Pending      bool `json:"pending,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NavigationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case navigationevent.FieldPending:
			values[i] = new(sql.NullBool)
		case navigationevent.FieldID, navigationevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case navigationevent.FieldSessionID, navigationevent.FieldFromActivity, navigationevent.FieldKind, navigationevent.FieldTarget:
			values[i] = new(sql.NullString)
		case navigationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NavigationEvent fields.
func (_m *NavigationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case navigationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case navigationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case navigationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case navigationevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case navigationevent.FieldFromActivity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_activity", values[i])
			} else if value.Valid {
				_m.FromActivity = value.String
			}
		case navigationevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case navigationevent.FieldTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = value.String
			}
		case navigationevent.FieldPending:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pending", values[i])
			} else if value.Valid {
				_m.Pending = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NavigationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *NavigationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NavigationEvent.
// Note that you need to call NavigationEvent.Unwrap() before calling this method if this NavigationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NavigationEvent) Update() *NavigationEventUpdateOne {
	return NewNavigationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NavigationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NavigationEvent) Unwrap() *NavigationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NavigationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NavigationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("NavigationEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("from_activity=")
	builder.WriteString(_m.FromActivity)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(_m.Target)
	builder.WriteString(", ")
	builder.WriteString("pending=")
	builder.WriteString(fmt.Sprintf("%v", _m.Pending))
	builder.WriteByte(')')
	return builder.String()
}

// NavigationEvents is a parsable slice of NavigationEvent.
type NavigationEvents []*NavigationEvent
