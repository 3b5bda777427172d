// Package attempt tracks the attempt records that bind activities and parts
// to their persistence guids for one lesson session. The registry replaces
// the authored runtime's module-global shared maps: each session owns its
// own registry, so cross-session isolation is structural.
package attempt

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jtrask/stagehand/internal/activity"
)

// ErrMissingBinding reports a save/submit/read that references an attempt or
// part with no registered record. Fatal to that single operation only.
var ErrMissingBinding = errors.New("no attempt record for reference")

// ResponseInput is one key written by a part: the part-relative key plus the
// full "partId.key" path used for environment assignment.
type ResponseInput struct {
	Key   string `json:"key"`
	Path  string `json:"path"`
	Value any    `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Response is the interactive state a part reports on save or submit.
type Response struct {
	Input []ResponseInput `json:"input"`
}

// PartAttempt binds one part to its attempt guid and latest response.
type PartAttempt struct {
	PartID      string
	AttemptGuid string
	Response    *Response
}

// Attempt is the per-activity attempt record.
type Attempt struct {
	ActivityID  string
	AttemptGuid string
	Number      int
	Parts       []*PartAttempt
}

// Part returns the part attempt for partID, or nil.
func (a *Attempt) Part(partID string) *PartAttempt {
	for _, p := range a.Parts {
		if p.PartID == partID {
			return p
		}
	}
	return nil
}

// PartByGuid returns the part attempt with the given guid, or nil.
func (a *Attempt) PartByGuid(guid string) *PartAttempt {
	for _, p := range a.Parts {
		if p.AttemptGuid == guid {
			return p
		}
	}
	return nil
}

// Registry holds the attempt records of one session.
type Registry struct {
	mu         sync.Mutex
	byGuid     map[string]*Attempt
	byActivity map[string]*Attempt
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byGuid:     make(map[string]*Attempt),
		byActivity: make(map[string]*Attempt),
	}
}

// Register creates attempt records for the activity and all its parts,
// assigning fresh guids. Re-registering an activity starts a new attempt
// (number incremented), matching what happens after an incorrect check.
func (r *Registry) Register(a *activity.Activity) *Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()

	number := 1
	if prev, ok := r.byActivity[a.ID]; ok {
		number = prev.Number + 1
		delete(r.byGuid, prev.AttemptGuid)
	}

	att := &Attempt{
		ActivityID:  a.ID,
		AttemptGuid: uuid.NewString(),
		Number:      number,
	}
	for _, p := range a.Content.PartsLayout {
		att.Parts = append(att.Parts, &PartAttempt{
			PartID:      p.ID,
			AttemptGuid: uuid.NewString(),
		})
	}
	r.byGuid[att.AttemptGuid] = att
	r.byActivity[a.ID] = att
	return att
}

// ByGuid looks up an attempt by its guid.
func (r *Registry) ByGuid(guid string) (*Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	att, ok := r.byGuid[guid]
	if !ok {
		return nil, fmt.Errorf("%w: attempt %s", ErrMissingBinding, guid)
	}
	return att, nil
}

// ByActivity looks up the current attempt for an activity id.
func (r *Registry) ByActivity(activityID string) (*Attempt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	att, ok := r.byActivity[activityID]
	if !ok {
		return nil, fmt.Errorf("%w: activity %s", ErrMissingBinding, activityID)
	}
	return att, nil
}

// Drop removes the attempt records of an activity, used when an activity
// unloads on navigation.
func (r *Registry) Drop(activityID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if att, ok := r.byActivity[activityID]; ok {
		delete(r.byGuid, att.AttemptGuid)
		delete(r.byActivity, activityID)
	}
}
