package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jtrask/stagehand/ent"
	"github.com/jtrask/stagehand/ent/checkevent"
)

func (r *eventRepo) AppendCheckEvent(ctx context.Context, data CheckEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CheckEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetActivityID(data.ActivityID).
		SetOutcome(data.Outcome).
		SetCorrect(data.Correct).
		SetMutationCount(data.MutationCount).
		SetErrorCount(data.ErrorCount).
		SetScore(data.Score).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save check event: %w", err)
	}
	return nil
}

func (r *eventRepo) CheckAccuracy(ctx context.Context, activityID string) (float64, error) {
	events, err := r.client.CheckEvent.Query().
		Where(checkevent.ActivityID(activityID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query check accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), nil
}

func (r *eventRepo) SessionCheckStats(ctx context.Context, sessionID string) (*CheckStats, error) {
	events, err := r.client.CheckEvent.Query().
		Where(checkevent.SessionID(sessionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session checks: %w", err)
	}

	stats := &CheckStats{ByActivity: make(map[string]int)}
	for _, e := range events {
		stats.Total++
		if e.Correct {
			stats.Correct++
		}
		stats.ByActivity[e.ActivityID]++
	}
	return stats, nil
}

func (r *eventRepo) LatestCheckTime(ctx context.Context, activityID string) (time.Time, error) {
	ce, err := r.client.CheckEvent.Query().
		Where(checkevent.ActivityID(activityID)).
		Order(ent.Desc(checkevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest check time: %w", err)
	}
	return ce.Timestamp, nil
}
