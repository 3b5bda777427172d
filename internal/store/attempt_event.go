package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetActivityID(data.ActivityID).
		SetPartID(data.PartID).
		SetAttemptGUID(data.AttemptGuid).
		SetPartAttemptGUID(data.PartAttemptGuid).
		SetFinalize(data.Finalize).
		SetKeyCount(data.KeyCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}
