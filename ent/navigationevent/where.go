// Code generated by ent, DO NOT EDIT.

package navigationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jtrask/stagehand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldSessionID, v))
}

// FromActivity applies equality check predicate on the "from_activity" field. It's identical to FromActivityEQ.
func FromActivity(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldFromActivity, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldKind, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldTarget, v))
}

// Pending applies equality check predicate on the "pending" field. It's identical to PendingEQ.
func Pending(v bool) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldPending, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// FromActivityEQ applies the EQ predicate on the "from_activity" field.
func FromActivityEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldFromActivity, v))
}

// FromActivityNEQ applies the NEQ predicate on the "from_activity" field.
func FromActivityNEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldFromActivity, v))
}

// FromActivityIn applies the In predicate on the "from_activity" field.
func FromActivityIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIn(FieldFromActivity, vs...))
}

// FromActivityNotIn applies the NotIn predicate on the "from_activity" field.
func FromActivityNotIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotIn(FieldFromActivity, vs...))
}

// FromActivityGT applies the GT predicate on the "from_activity" field.
func FromActivityGT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGT(FieldFromActivity, v))
}

// FromActivityGTE applies the GTE predicate on the "from_activity" field.
func FromActivityGTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGTE(FieldFromActivity, v))
}

// FromActivityLT applies the LT predicate on the "from_activity" field.
func FromActivityLT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLT(FieldFromActivity, v))
}

// FromActivityLTE applies the LTE predicate on the "from_activity" field.
func FromActivityLTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLTE(FieldFromActivity, v))
}

// FromActivityContains applies the Contains predicate on the "from_activity" field.
func FromActivityContains(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContains(FieldFromActivity, v))
}

// FromActivityHasPrefix applies the HasPrefix predicate on the "from_activity" field.
func FromActivityHasPrefix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasPrefix(FieldFromActivity, v))
}

// FromActivityHasSuffix applies the HasSuffix predicate on the "from_activity" field.
func FromActivityHasSuffix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasSuffix(FieldFromActivity, v))
}

// FromActivityEqualFold applies the EqualFold predicate on the "from_activity" field.
func FromActivityEqualFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEqualFold(FieldFromActivity, v))
}

// FromActivityContainsFold applies the ContainsFold predicate on the "from_activity" field.
func FromActivityContainsFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContainsFold(FieldFromActivity, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContainsFold(FieldKind, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldLTE(FieldTarget, v))
}

// TargetContains applies the Contains predicate on the "target" field.
func TargetContains(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContains(FieldTarget, v))
}

// TargetHasPrefix applies the HasPrefix predicate on the "target" field.
func TargetHasPrefix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasPrefix(FieldTarget, v))
}

// TargetHasSuffix applies the HasSuffix predicate on the "target" field.
func TargetHasSuffix(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldHasSuffix(FieldTarget, v))
}

// TargetIsNil applies the IsNil predicate on the "target" field.
func TargetIsNil() predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldIsNull(FieldTarget))
}

// TargetNotNil applies the NotNil predicate on the "target" field.
func TargetNotNil() predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNotNull(FieldTarget))
}

// TargetEqualFold applies the EqualFold predicate on the "target" field.
func TargetEqualFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEqualFold(FieldTarget, v))
}

// TargetContainsFold applies the ContainsFold predicate on the "target" field.
func TargetContainsFold(v string) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldContainsFold(FieldTarget, v))
}

// PendingEQ applies the EQ predicate on the "pending" field.
func PendingEQ(v bool) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldEQ(FieldPending, v))
}

// PendingNEQ applies the NEQ predicate on the "pending" field.
func PendingNEQ(v bool) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.FieldNEQ(FieldPending, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.NavigationEvent) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.NavigationEvent) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.NavigationEvent) predicate.NavigationEvent {
	return predicate.NavigationEvent(sql.NotPredicates(p))
}
