// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jtrask/stagehand/ent/attemptevent"
	"github.com/jtrask/stagehand/ent/checkevent"
	"github.com/jtrask/stagehand/ent/navigationevent"
	"github.com/jtrask/stagehand/ent/schema"
	"github.com/jtrask/stagehand/ent/sessionevent"
	"github.com/jtrask/stagehand/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescActivityID is the schema descriptor for activity_id field.
	attempteventDescActivityID := attempteventFields[1].Descriptor()
	// attemptevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	attemptevent.ActivityIDValidator = attempteventDescActivityID.Validators[0].(func(string) error)
	// attempteventDescPartID is the schema descriptor for part_id field.
	attempteventDescPartID := attempteventFields[2].Descriptor()
	// attemptevent.PartIDValidator is a validator for the "part_id" field. It is called by the builders before save.
	attemptevent.PartIDValidator = attempteventDescPartID.Validators[0].(func(string) error)
	// attempteventDescAttemptGUID is the schema descriptor for attempt_guid field.
	attempteventDescAttemptGUID := attempteventFields[3].Descriptor()
	// attemptevent.AttemptGUIDValidator is a validator for the "attempt_guid" field. It is called by the builders before save.
	attemptevent.AttemptGUIDValidator = attempteventDescAttemptGUID.Validators[0].(func(string) error)
	// attempteventDescPartAttemptGUID is the schema descriptor for part_attempt_guid field.
	attempteventDescPartAttemptGUID := attempteventFields[4].Descriptor()
	// attemptevent.PartAttemptGUIDValidator is a validator for the "part_attempt_guid" field. It is called by the builders before save.
	attemptevent.PartAttemptGUIDValidator = attempteventDescPartAttemptGUID.Validators[0].(func(string) error)
	// attempteventDescFinalize is the schema descriptor for finalize field.
	attempteventDescFinalize := attempteventFields[5].Descriptor()
	// attemptevent.DefaultFinalize holds the default value on creation for the finalize field.
	attemptevent.DefaultFinalize = attempteventDescFinalize.Default.(bool)
	// attempteventDescKeyCount is the schema descriptor for key_count field.
	attempteventDescKeyCount := attempteventFields[6].Descriptor()
	// attemptevent.DefaultKeyCount holds the default value on creation for the key_count field.
	attemptevent.DefaultKeyCount = attempteventDescKeyCount.Default.(int)
	checkeventMixin := schema.CheckEvent{}.Mixin()
	checkeventMixinFields0 := checkeventMixin[0].Fields()
	_ = checkeventMixinFields0
	checkeventFields := schema.CheckEvent{}.Fields()
	_ = checkeventFields
	// checkeventDescTimestamp is the schema descriptor for timestamp field.
	checkeventDescTimestamp := checkeventMixinFields0[1].Descriptor()
	// checkevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	checkevent.DefaultTimestamp = checkeventDescTimestamp.Default.(func() time.Time)
	// checkeventDescSessionID is the schema descriptor for session_id field.
	checkeventDescSessionID := checkeventFields[0].Descriptor()
	// checkevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	checkevent.SessionIDValidator = checkeventDescSessionID.Validators[0].(func(string) error)
	// checkeventDescActivityID is the schema descriptor for activity_id field.
	checkeventDescActivityID := checkeventFields[1].Descriptor()
	// checkevent.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	checkevent.ActivityIDValidator = checkeventDescActivityID.Validators[0].(func(string) error)
	// checkeventDescOutcome is the schema descriptor for outcome field.
	checkeventDescOutcome := checkeventFields[2].Descriptor()
	// checkevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	checkevent.OutcomeValidator = checkeventDescOutcome.Validators[0].(func(string) error)
	// checkeventDescMutationCount is the schema descriptor for mutation_count field.
	checkeventDescMutationCount := checkeventFields[4].Descriptor()
	// checkevent.DefaultMutationCount holds the default value on creation for the mutation_count field.
	checkevent.DefaultMutationCount = checkeventDescMutationCount.Default.(int)
	// checkeventDescErrorCount is the schema descriptor for error_count field.
	checkeventDescErrorCount := checkeventFields[5].Descriptor()
	// checkevent.DefaultErrorCount holds the default value on creation for the error_count field.
	checkevent.DefaultErrorCount = checkeventDescErrorCount.Default.(int)
	// checkeventDescScore is the schema descriptor for score field.
	checkeventDescScore := checkeventFields[6].Descriptor()
	// checkevent.DefaultScore holds the default value on creation for the score field.
	checkevent.DefaultScore = checkeventDescScore.Default.(float64)
	navigationeventMixin := schema.NavigationEvent{}.Mixin()
	navigationeventMixinFields0 := navigationeventMixin[0].Fields()
	_ = navigationeventMixinFields0
	navigationeventFields := schema.NavigationEvent{}.Fields()
	_ = navigationeventFields
	// navigationeventDescTimestamp is the schema descriptor for timestamp field.
	navigationeventDescTimestamp := navigationeventMixinFields0[1].Descriptor()
	// navigationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	navigationevent.DefaultTimestamp = navigationeventDescTimestamp.Default.(func() time.Time)
	// navigationeventDescSessionID is the schema descriptor for session_id field.
	navigationeventDescSessionID := navigationeventFields[0].Descriptor()
	// navigationevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	navigationevent.SessionIDValidator = navigationeventDescSessionID.Validators[0].(func(string) error)
	// navigationeventDescFromActivity is the schema descriptor for from_activity field.
	navigationeventDescFromActivity := navigationeventFields[1].Descriptor()
	// navigationevent.FromActivityValidator is a validator for the "from_activity" field. It is called by the builders before save.
	navigationevent.FromActivityValidator = navigationeventDescFromActivity.Validators[0].(func(string) error)
	// navigationeventDescKind is the schema descriptor for kind field.
	navigationeventDescKind := navigationeventFields[2].Descriptor()
	// navigationevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	navigationevent.KindValidator = navigationeventDescKind.Validators[0].(func(string) error)
	// navigationeventDescPending is the schema descriptor for pending field.
	navigationeventDescPending := navigationeventFields[4].Descriptor()
	// navigationevent.DefaultPending holds the default value on creation for the pending field.
	navigationevent.DefaultPending = navigationeventDescPending.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[2].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescChecksRun is the schema descriptor for checks_run field.
	sessioneventDescChecksRun := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultChecksRun holds the default value on creation for the checks_run field.
	sessionevent.DefaultChecksRun = sessioneventDescChecksRun.Default.(int)
	// sessioneventDescCorrectChecks is the schema descriptor for correct_checks field.
	sessioneventDescCorrectChecks := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectChecks holds the default value on creation for the correct_checks field.
	sessionevent.DefaultCorrectChecks = sessioneventDescCorrectChecks.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescSessionID is the schema descriptor for session_id field.
	snapshotDescSessionID := snapshotFields[0].Descriptor()
	// snapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	snapshot.SessionIDValidator = snapshotDescSessionID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
