package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendNavigationEvent(ctx context.Context, data NavigationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.NavigationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetFromActivity(data.FromActivity).
		SetKind(data.Kind).
		SetTarget(data.Target).
		SetPending(data.Pending).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save navigation event: %w", err)
	}
	return nil
}
