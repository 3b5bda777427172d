package attempt

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestInitBarrierReleasesWhenAllReady(t *testing.T) {
	b := NewInitBarrier([]string{"input", "hint"})

	b.Ready("input")
	b.Ready("hint")

	if err := b.Wait(context.Background(), 100*time.Millisecond); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if got := b.Pending(); len(got) != 0 {
		t.Errorf("Pending = %v", got)
	}
}

func TestInitBarrierEmptyReleasesImmediately(t *testing.T) {
	b := NewInitBarrier(nil)
	if err := b.Wait(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestInitBarrierTimeout(t *testing.T) {
	b := NewInitBarrier([]string{"input", "hint"})
	b.Ready("input")

	err := b.Wait(context.Background(), 10*time.Millisecond)
	if !errors.Is(err, ErrInitTimeout) {
		t.Fatalf("err = %v, want ErrInitTimeout", err)
	}
	got := b.Pending()
	if len(got) != 1 || got[0] != "hint" {
		t.Errorf("Pending = %v, want [hint]", got)
	}
}

func TestInitBarrierContextCancel(t *testing.T) {
	b := NewInitBarrier([]string{"input"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := b.Wait(ctx, time.Second); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestInitBarrierIgnoresUnknownAndRepeatedReady(t *testing.T) {
	b := NewInitBarrier([]string{"input"})
	b.Ready("stranger")
	b.Ready("input")
	b.Ready("input") // repeat after release must not panic

	if err := b.Wait(context.Background(), 100*time.Millisecond); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}

func TestInitBarrierConcurrentReady(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	b := NewInitBarrier(ids)

	for _, id := range ids {
		go b.Ready(id)
	}

	if err := b.Wait(context.Background(), time.Second); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}
