// Code generated by ent, DO NOT EDIT.

package checkevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jtrask/stagehand/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSessionID, v))
}

// ActivityID applies equality check predicate on the "activity_id" field. It's identical to ActivityIDEQ.
func ActivityID(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldActivityID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldOutcome, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldCorrect, v))
}

// MutationCount applies equality check predicate on the "mutation_count" field. It's identical to MutationCountEQ.
func MutationCount(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldMutationCount, v))
}

// ErrorCount applies equality check predicate on the "error_count" field. It's identical to ErrorCountEQ.
func ErrorCount(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldErrorCount, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldScore, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActivityIDEQ applies the EQ predicate on the "activity_id" field.
func ActivityIDEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldActivityID, v))
}

// ActivityIDNEQ applies the NEQ predicate on the "activity_id" field.
func ActivityIDNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldActivityID, v))
}

// ActivityIDIn applies the In predicate on the "activity_id" field.
func ActivityIDIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldActivityID, vs...))
}

// ActivityIDNotIn applies the NotIn predicate on the "activity_id" field.
func ActivityIDNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldActivityID, vs...))
}

// ActivityIDGT applies the GT predicate on the "activity_id" field.
func ActivityIDGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldActivityID, v))
}

// ActivityIDGTE applies the GTE predicate on the "activity_id" field.
func ActivityIDGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldActivityID, v))
}

// ActivityIDLT applies the LT predicate on the "activity_id" field.
func ActivityIDLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldActivityID, v))
}

// ActivityIDLTE applies the LTE predicate on the "activity_id" field.
func ActivityIDLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldActivityID, v))
}

// ActivityIDContains applies the Contains predicate on the "activity_id" field.
func ActivityIDContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldActivityID, v))
}

// ActivityIDHasPrefix applies the HasPrefix predicate on the "activity_id" field.
func ActivityIDHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldActivityID, v))
}

// ActivityIDHasSuffix applies the HasSuffix predicate on the "activity_id" field.
func ActivityIDHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldActivityID, v))
}

// ActivityIDEqualFold applies the EqualFold predicate on the "activity_id" field.
func ActivityIDEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldActivityID, v))
}

// ActivityIDContainsFold applies the ContainsFold predicate on the "activity_id" field.
func ActivityIDContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldActivityID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldCorrect, v))
}

// MutationCountEQ applies the EQ predicate on the "mutation_count" field.
func MutationCountEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldMutationCount, v))
}

// MutationCountNEQ applies the NEQ predicate on the "mutation_count" field.
func MutationCountNEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldMutationCount, v))
}

// MutationCountIn applies the In predicate on the "mutation_count" field.
func MutationCountIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldMutationCount, vs...))
}

// MutationCountNotIn applies the NotIn predicate on the "mutation_count" field.
func MutationCountNotIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldMutationCount, vs...))
}

// MutationCountGT applies the GT predicate on the "mutation_count" field.
func MutationCountGT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldMutationCount, v))
}

// MutationCountGTE applies the GTE predicate on the "mutation_count" field.
func MutationCountGTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldMutationCount, v))
}

// MutationCountLT applies the LT predicate on the "mutation_count" field.
func MutationCountLT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldMutationCount, v))
}

// MutationCountLTE applies the LTE predicate on the "mutation_count" field.
func MutationCountLTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldMutationCount, v))
}

// ErrorCountEQ applies the EQ predicate on the "error_count" field.
func ErrorCountEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldErrorCount, v))
}

// ErrorCountNEQ applies the NEQ predicate on the "error_count" field.
func ErrorCountNEQ(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldErrorCount, v))
}

// ErrorCountIn applies the In predicate on the "error_count" field.
func ErrorCountIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldErrorCount, vs...))
}

// ErrorCountNotIn applies the NotIn predicate on the "error_count" field.
func ErrorCountNotIn(vs ...int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldErrorCount, vs...))
}

// ErrorCountGT applies the GT predicate on the "error_count" field.
func ErrorCountGT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldErrorCount, v))
}

// ErrorCountGTE applies the GTE predicate on the "error_count" field.
func ErrorCountGTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldErrorCount, v))
}

// ErrorCountLT applies the LT predicate on the "error_count" field.
func ErrorCountLT(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldErrorCount, v))
}

// ErrorCountLTE applies the LTE predicate on the "error_count" field.
func ErrorCountLTE(v int) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldErrorCount, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.CheckEvent {
	return predicate.CheckEvent(sql.FieldLTE(FieldScore, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CheckEvent) predicate.CheckEvent {
	return predicate.CheckEvent(sql.NotPredicates(p))
}
