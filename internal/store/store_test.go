package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "sess-1")
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot, got %+v", snap)
	}

	first := &EnvSnapshot{
		SessionID: "sess-1",
		Timestamp: time.Now().UTC(),
		Vars:      map[string]any{"session.tutorialScore": 2.0},
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := &EnvSnapshot{
		SessionID: "sess-1",
		Timestamp: time.Now().UTC(),
		Vars:      map[string]any{"session.tutorialScore": 5.0},
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Save assigns each snapshot a position in the global event sequence.
	if first.Sequence == 0 || second.Sequence <= first.Sequence {
		t.Errorf("sequences = %d, %d, want assigned and increasing", first.Sequence, second.Sequence)
	}

	got, err := repo.Latest(ctx, "sess-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.Vars["session.tutorialScore"] != 5.0 {
		t.Errorf("latest vars = %v, want the second save", got.Vars)
	}
	if got.Sequence != second.Sequence {
		t.Errorf("latest sequence = %d, want %d", got.Sequence, second.Sequence)
	}

	// snapshots are per session
	other, err := repo.Latest(ctx, "sess-2")
	if err != nil {
		t.Fatalf("latest other session: %v", err)
	}
	if other != nil {
		t.Errorf("snapshot leaked across sessions: %+v", other)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &EnvSnapshot{
			SessionID: "sess-1",
			Timestamp: time.Now().UTC(),
			Vars:      map[string]any{"n": float64(i)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "sess-1", 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	got, err := repo.Latest(ctx, "sess-1")
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if got == nil || got.Vars["n"] != 4.0 {
		t.Errorf("latest after prune = %+v, want the newest kept", got)
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "sess-1", Action: "start", LessonID: "lesson-1",
	})
	if err != nil {
		t.Fatalf("session event: %v", err)
	}

	checks := []CheckEventData{
		{SessionID: "sess-1", ActivityID: "q-1", Outcome: "feedback-only", Correct: true, Score: 1},
		{SessionID: "sess-1", ActivityID: "q-1", Outcome: "feedback-only", Correct: false},
		{SessionID: "sess-1", ActivityID: "q-2", Outcome: "navigate-only", Correct: true},
		{SessionID: "sess-2", ActivityID: "q-1", Outcome: "feedback-only", Correct: true},
	}
	for i, c := range checks {
		if err := repo.AppendCheckEvent(ctx, c); err != nil {
			t.Fatalf("check event %d: %v", i, err)
		}
	}

	stats, err := repo.SessionCheckStats(ctx, "sess-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 3 || stats.Correct != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.ByActivity["q-1"] != 2 || stats.ByActivity["q-2"] != 1 {
		t.Errorf("ByActivity = %v", stats.ByActivity)
	}

	// accuracy spans sessions: q-1 has 2 correct of 3
	acc, err := repo.CheckAccuracy(ctx, "q-1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc < 0.66 || acc > 0.67 {
		t.Errorf("accuracy = %v, want 2/3", acc)
	}

	ts, err := repo.LatestCheckTime(ctx, "q-1")
	if err != nil {
		t.Fatalf("latest check time: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected a non-zero latest check time")
	}

	noAcc, err := repo.CheckAccuracy(ctx, "unseen")
	if err != nil {
		t.Fatalf("accuracy unseen: %v", err)
	}
	if noAcc != 0 {
		t.Errorf("accuracy unseen = %v, want 0", noAcc)
	}
}

func TestAttemptAndNavigationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		SessionID:       "sess-1",
		ActivityID:      "q-1",
		PartID:          "input",
		AttemptGuid:     "a-1",
		PartAttemptGuid: "p-1",
		KeyCount:        2,
	})
	if err != nil {
		t.Fatalf("attempt event: %v", err)
	}

	saved, err := s.Client().AttemptEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query attempt event: %v", err)
	}
	if saved.AttemptGUID != "a-1" || saved.PartAttemptGUID != "p-1" {
		t.Errorf("stored guids = %q, %q, want a-1, p-1", saved.AttemptGUID, saved.PartAttemptGUID)
	}
	if saved.KeyCount != 2 {
		t.Errorf("stored key count = %d, want 2", saved.KeyCount)
	}

	err = repo.AppendNavigationEvent(ctx, NavigationEventData{
		SessionID:    "sess-1",
		FromActivity: "q-1",
		Kind:         "next",
	})
	if err != nil {
		t.Fatalf("navigation event: %v", err)
	}
}
