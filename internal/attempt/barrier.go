package attempt

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrInitTimeout reports that not every part signalled ready before the
// barrier's deadline.
var ErrInitTimeout = errors.New("parts failed to initialize within time limit")

// InitBarrier is the all-parts-ready latch for one activity. Every part
// calls Ready once during mount; Wait releases when the last one arrives or
// fails with the ids still outstanding. An activity with no parts releases
// immediately.
type InitBarrier struct {
	mu      sync.Mutex
	pending map[string]bool
	done    chan struct{}
}

// NewInitBarrier creates a barrier over the given part ids.
func NewInitBarrier(partIDs []string) *InitBarrier {
	b := &InitBarrier{
		pending: make(map[string]bool, len(partIDs)),
		done:    make(chan struct{}),
	}
	for _, id := range partIDs {
		b.pending[id] = true
	}
	if len(b.pending) == 0 {
		close(b.done)
	}
	return b
}

// Ready marks a part initialized. Unknown and repeated ids are no-ops.
func (b *InitBarrier) Ready(partID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.pending[partID] {
		return
	}
	delete(b.pending, partID)
	if len(b.pending) == 0 {
		close(b.done)
	}
}

// Pending returns the part ids still outstanding.
func (b *InitBarrier) Pending() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.pending))
	for id := range b.pending {
		ids = append(ids, id)
	}
	return ids
}

// Wait blocks until every part is ready, the timeout passes, or ctx is
// cancelled.
func (b *InitBarrier) Wait(ctx context.Context, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-b.done:
		return nil
	case <-timer.C:
		return ErrInitTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}
