package store

import (
	"context"
	"time"
)

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID     string
	Action        string // "start" or "end"
	LessonID      string
	ChecksRun     int
	CorrectChecks int
	DurationSecs  int
}

// CheckEventData captures the outcome of one check cycle.
type CheckEventData struct {
	SessionID     string
	ActivityID    string
	Outcome       string
	Correct       bool
	MutationCount int
	ErrorCount    int
	Score         float64
}

// AttemptEventData captures a part state save or submit.
type AttemptEventData struct {
	SessionID       string
	ActivityID      string
	PartID          string
	AttemptGuid     string
	PartAttemptGuid string
	Finalize        bool
	KeyCount        int
}

// NavigationEventData captures a navigation decision.
type NavigationEventData struct {
	SessionID    string
	FromActivity string
	Kind         string
	Target       string
	Pending      bool
}

// CheckStats aggregates check events for reporting.
type CheckStats struct {
	Total      int
	Correct    int
	ByActivity map[string]int
}

// EventRepo provides append and query access to delivery events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendCheckEvent records a completed check cycle.
	AppendCheckEvent(ctx context.Context, data CheckEventData) error

	// AppendAttemptEvent records a part state save or submit.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendNavigationEvent records a navigation decision.
	AppendNavigationEvent(ctx context.Context, data NavigationEventData) error

	// CheckAccuracy returns the fraction of correct check cycles for the
	// activity across all sessions (0 when no checks exist).
	CheckAccuracy(ctx context.Context, activityID string) (float64, error)

	// SessionCheckStats aggregates check cycles for a session.
	SessionCheckStats(ctx context.Context, sessionID string) (*CheckStats, error)

	// LatestCheckTime returns the timestamp of the most recent check for
	// the activity, or the zero time when none exist.
	LatestCheckTime(ctx context.Context, activityID string) (time.Time, error)
}

// EnvSnapshot is a point-in-time capture of a session's environment.
type EnvSnapshot struct {
	ID        int
	SessionID string
	Sequence  int64
	Timestamp time.Time
	Vars      map[string]any
}

// SnapshotRepo manages environment snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot, assigning it the next global sequence
	// number (written back to snap.Sequence).
	Save(ctx context.Context, snap *EnvSnapshot) error

	// Latest returns the most recent snapshot for the session, or nil if
	// none exist.
	Latest(ctx context.Context, sessionID string) (*EnvSnapshot, error)

	// Prune deletes all but the N most recent snapshots for the session.
	Prune(ctx context.Context, sessionID string, keep int) error
}
