package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/attempt"
	"github.com/jtrask/stagehand/internal/check"
	"github.com/jtrask/stagehand/internal/scripting"
)

// stubRules returns fixed results, optionally blocking until released.
type stubRules struct {
	results []check.RuleResult
	block   chan struct{}
}

func (s *stubRules) Evaluate(ctx context.Context, activityID string, env *scripting.Environment, tree activity.Tree) ([]check.RuleResult, []error) {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, []error{ctx.Err()}
		}
	}
	return s.results, nil
}

func questionTree() activity.Tree {
	return activity.Tree{
		{
			ID: "q-1",
			Content: activity.Content{PartsLayout: []activity.Part{
				{ID: "input"},
			}},
		},
	}
}

func newTestSession(t *testing.T, rules RuleEvaluator) (*Session, *CollectDispatcher) {
	t.Helper()
	disp := &CollectDispatcher{}
	sess := New(Options{
		LessonID:   "lesson-1",
		Rules:      rules,
		Dispatcher: disp,
	})
	if err := sess.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := sess.SetActivityTree(questionTree()); err != nil {
		t.Fatalf("set tree: %v", err)
	}
	return sess, disp
}

func TestStartSeedsAttemptNumber(t *testing.T) {
	sess, _ := newTestSession(t, &stubRules{})
	if got := sess.Env.GetNumber(check.AttemptNumberPath); got != 1 {
		t.Errorf("attempt number = %v, want 1", got)
	}
}

func TestOnCheckTriggered(t *testing.T) {
	rules := &stubRules{results: []check.RuleResult{{
		Name:    "always-right",
		Correct: true,
		Actions: []check.Action{
			check.MutateStateAction{Target: "session.tutorialScore", Operator: scripting.OpAdding, Value: 1, TargetType: "number"},
			check.FeedbackAction{Feedback: check.Feedback{Message: "well done"}},
		},
	}}}
	sess, disp := newTestSession(t, rules)

	outcome, err := sess.OnCheckTriggered(context.Background(), "q-1")
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != check.OutcomeFeedbackOnly {
		t.Errorf("Kind = %v", outcome.Kind)
	}
	if !outcome.Correct || outcome.Score != 1 {
		t.Errorf("Correct=%t Score=%v", outcome.Correct, outcome.Score)
	}
	if len(disp.Feedbacks) != 1 || disp.Feedbacks[0].Message != "well done" {
		t.Errorf("dispatched feedbacks = %+v", disp.Feedbacks)
	}
	if disp.Score != 1 {
		t.Errorf("dispatched score = %v", disp.Score)
	}
	if disp.Changes["session.tutorialScore"] != 1.0 {
		t.Errorf("dispatched changes = %+v", disp.Changes)
	}
}

func TestOnCheckTriggeredUnknownActivity(t *testing.T) {
	sess, _ := newTestSession(t, &stubRules{})
	if _, err := sess.OnCheckTriggered(context.Background(), "nope"); !errors.Is(err, ErrUnknownActivity) {
		t.Errorf("err = %v, want ErrUnknownActivity", err)
	}
	// the latch must be released after a failed trigger
	if _, err := sess.OnCheckTriggered(context.Background(), "q-1"); err != nil {
		t.Errorf("second trigger after failure: %v", err)
	}
}

func TestOnCheckTriggeredInFlight(t *testing.T) {
	block := make(chan struct{})
	rules := &stubRules{block: block}
	sess, _ := newTestSession(t, rules)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = sess.OnCheckTriggered(context.Background(), "q-1")
	}()

	// wait until the first cycle holds the latch
	deadline := time.Now().Add(time.Second)
	for !sess.checking.Load() {
		if time.Now().After(deadline) {
			t.Fatal("first cycle never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := sess.OnCheckTriggered(context.Background(), "q-1"); !errors.Is(err, ErrCheckInFlight) {
		t.Errorf("err = %v, want ErrCheckInFlight", err)
	}

	close(block)
	wg.Wait()
	if firstErr != nil {
		t.Errorf("first cycle: %v", firstErr)
	}
}

func TestOnCheckTriggeredTimeout(t *testing.T) {
	rules := &stubRules{block: make(chan struct{})} // never released
	disp := &CollectDispatcher{}
	sess := New(Options{
		LessonID:     "lesson-1",
		Rules:        rules,
		Dispatcher:   disp,
		CheckTimeout: 20 * time.Millisecond,
	})
	if err := sess.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := sess.SetActivityTree(questionTree()); err != nil {
		t.Fatal(err)
	}

	if _, err := sess.OnCheckTriggered(context.Background(), "q-1"); !errors.Is(err, ErrCheckTimeout) {
		t.Errorf("err = %v, want ErrCheckTimeout", err)
	}
}

func TestNavigationDispatch(t *testing.T) {
	rules := &stubRules{results: []check.RuleResult{{
		Correct: true,
		Actions: []check.Action{check.NavigationAction{Target: "next"}},
	}}}
	sess, disp := newTestSession(t, rules)

	outcome, err := sess.OnCheckTriggered(context.Background(), "q-1")
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != check.OutcomeNavigateOnly {
		t.Fatalf("Kind = %v", outcome.Kind)
	}
	if len(disp.Navigations) != 1 || disp.Navigations[0].Kind != check.NavNext {
		t.Errorf("Navigations = %+v", disp.Navigations)
	}
}

func TestSeedAndSnapshot(t *testing.T) {
	sess, _ := newTestSession(t, &stubRules{})

	diags := sess.Seed([]scripting.ApplyOperation{
		{Target: "session.theme", Operator: scripting.OpAssign, Value: "dark"},
		{Target: "q-1|stage.input.value", Operator: scripting.OpAssign, Value: "7", TargetType: "number"},
	})
	if len(diags) != 0 {
		t.Fatalf("diags = %v", diags)
	}

	snap := sess.Snapshot([]string{"q-1"})
	if snap["session.theme"] != scripting.String("dark") {
		t.Errorf("global missing: %+v", snap["session.theme"])
	}
	if snap["stage.input.value"] != scripting.Number(7) {
		t.Errorf("bare alias missing: %+v", snap["stage.input.value"])
	}
}

func TestWaitReady(t *testing.T) {
	disp := &CollectDispatcher{}
	sess := New(Options{
		LessonID:    "lesson-1",
		Rules:       &stubRules{},
		Dispatcher:  disp,
		InitTimeout: 20 * time.Millisecond,
	})
	if err := sess.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := sess.SetActivityTree(questionTree()); err != nil {
		t.Fatal(err)
	}

	if err := sess.WaitReady(context.Background(), "q-1"); !errors.Is(err, attempt.ErrInitTimeout) {
		t.Errorf("err = %v, want init timeout before parts are ready", err)
	}

	sess.PartReady("q-1", "input")
	if err := sess.WaitReady(context.Background(), "q-1"); err != nil {
		t.Errorf("WaitReady after all parts ready: %v", err)
	}

	if err := sess.WaitReady(context.Background(), "nope"); !errors.Is(err, ErrUnknownActivity) {
		t.Errorf("unknown activity: %v", err)
	}
}

func TestTreeSwapPreservesEnvironment(t *testing.T) {
	sess, _ := newTestSession(t, &stubRules{})
	sess.Env.Set("session.kept", scripting.Number(5))

	next := activity.Tree{
		questionTree()[0],
		{
			ID:      "q-2",
			Content: activity.Content{PartsLayout: []activity.Part{{ID: "input"}}},
		},
	}
	if err := sess.SetActivityTree(next); err != nil {
		t.Fatal(err)
	}
	if sess.Current().ID != "q-2" {
		t.Errorf("Current = %s, want the last tree entry", sess.Current().ID)
	}
	if got := sess.Env.GetNumber("session.kept"); got != 5 {
		t.Errorf("environment lost on swap: %v", got)
	}
}
