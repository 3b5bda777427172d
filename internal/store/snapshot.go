package store

import (
	"context"
	"fmt"

	"github.com/jtrask/stagehand/ent"
	"github.com/jtrask/stagehand/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *EnvSnapshot) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	snap.Sequence = seqNum

	_, err = r.client.Snapshot.Create().
		SetSessionID(snap.SessionID).
		SetSequence(seqNum).
		SetTimestamp(snap.Timestamp).
		SetData(snap.Vars).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, sessionID string) (*EnvSnapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.SessionID(sessionID)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &EnvSnapshot{
		ID:        s.ID,
		SessionID: s.SessionID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Vars:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, sessionID string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.SessionID(sessionID)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SessionID(sessionID), snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
