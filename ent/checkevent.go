// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jtrask/stagehand/ent/checkevent"
)

// CheckEvent is the model entity for the CheckEvent schema.
type CheckEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Activity the check ran against
	ActivityID string `json:"activity_id,omitempty"`
	// Terminal cycle kind: feedback-only, navigate-only, etc.
	Outcome string `json:"outcome,omitempty"`
	// Whether every selected rule result was correct
	Correct bool `json:"correct,omitempty"`
	// State changes the cycle applied
	MutationCount int `json:"mutation_count,omitempty"`
	// Per-operation diagnostics recorded during the cycle
	ErrorCount int `json:"error_count,omitempty"`
	// tutorialScore + currentQuestionScore after mutation
	Score        float64 `json:"score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CheckEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case checkevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case checkevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case checkevent.FieldID, checkevent.FieldSequence, checkevent.FieldMutationCount, checkevent.FieldErrorCount:
			values[i] = new(sql.NullInt64)
		case checkevent.FieldSessionID, checkevent.FieldActivityID, checkevent.FieldOutcome:
			values[i] = new(sql.NullString)
		case checkevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CheckEvent fields.
func (_m *CheckEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case checkevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case checkevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case checkevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case checkevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case checkevent.FieldActivityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field activity_id", values[i])
			} else if value.Valid {
				_m.ActivityID = value.String
			}
		case checkevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case checkevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case checkevent.FieldMutationCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mutation_count", values[i])
			} else if value.Valid {
				_m.MutationCount = int(value.Int64)
			}
		case checkevent.FieldErrorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field error_count", values[i])
			} else if value.Valid {
				_m.ErrorCount = int(value.Int64)
			}
		case checkevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CheckEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CheckEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CheckEvent.
// Note that you need to call CheckEvent.Unwrap() before calling this method if this CheckEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CheckEvent) Update() *CheckEventUpdateOne {
	return NewCheckEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CheckEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CheckEvent) Unwrap() *CheckEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CheckEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CheckEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CheckEvent(")
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
	builder.WriteString("activity_id=")
	builder.WriteString(_m.ActivityID)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("mutation_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MutationCount))
	builder.WriteString(", ")
	builder.WriteString("error_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorCount))
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteByte(')')
	return builder.String()
}

// CheckEvents is a parsable slice of CheckEvent.
type CheckEvents []*CheckEvent
