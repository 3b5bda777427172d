// Package session owns the runtime context of one lesson delivery: the
// scripting environment, the active activity tree, attempt records and the
// check entry point. Everything that the authored runtime kept in
// module-global registries lives here, so two sessions can never see each
// other's state.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/attempt"
	"github.com/jtrask/stagehand/internal/check"
	"github.com/jtrask/stagehand/internal/scripting"
	"github.com/jtrask/stagehand/internal/store"
)

var (
	// ErrCheckInFlight reports a check trigger while a cycle is running.
	// Cycles for one session are never interleaved; the caller retries
	// after the current one completes.
	ErrCheckInFlight = errors.New("a check cycle is already in progress")

	// ErrCheckTimeout reports that no rule results arrived in time.
	ErrCheckTimeout = errors.New("check cycle timed out waiting for rule results")

	// ErrUnknownActivity reports a check against an activity that is not
	// in the current tree.
	ErrUnknownActivity = errors.New("activity not in current tree")
)

// RuleEvaluator produces the rule results of a check cycle. The delivery-
// local engine in internal/rules implements it; a hosted engine can too.
type RuleEvaluator interface {
	Evaluate(ctx context.Context, activityID string, env *scripting.Environment, tree activity.Tree) ([]check.RuleResult, []error)
}

// Options configures a Session. Events, Snapshots and the state
// collaborators are optional; absent ones simply skip their concern.
type Options struct {
	LessonID     string
	Rules        RuleEvaluator
	Dispatcher   Dispatcher
	Events       store.EventRepo
	Snapshots    store.SnapshotRepo
	WriteState   attempt.WriteStateFunc
	ReadState    attempt.ReadStateFunc
	CheckTimeout time.Duration
	InitTimeout  time.Duration
	SnapshotKeep int
}

// DefaultCheckTimeout bounds how long a cycle waits for rule results.
const DefaultCheckTimeout = 10 * time.Second

// DefaultInitTimeout bounds the all-parts-ready barrier.
const DefaultInitTimeout = 10 * time.Second

// DefaultSnapshotKeep is how many environment snapshots survive pruning.
const DefaultSnapshotKeep = 5

// Session is the per-lesson runtime context.
type Session struct {
	ID  string
	Env *scripting.Environment

	lessonID     string
	rules        RuleEvaluator
	dispatch     Dispatcher
	events       store.EventRepo
	snapshots    store.SnapshotRepo
	checkTimeout time.Duration
	initTimeout  time.Duration
	snapshotKeep int

	registry *attempt.Registry
	saver    *attempt.Saver

	mu       sync.Mutex
	tree     activity.Tree
	current  *activity.Activity
	barriers map[string]*attempt.InitBarrier

	checking atomic.Bool

	started       time.Time
	checksRun     int
	correctChecks int
}

// New creates a Session with a fresh environment and attempt registry.
func New(opts Options) *Session {
	if opts.CheckTimeout <= 0 {
		opts.CheckTimeout = DefaultCheckTimeout
	}
	if opts.InitTimeout <= 0 {
		opts.InitTimeout = DefaultInitTimeout
	}
	if opts.SnapshotKeep <= 0 {
		opts.SnapshotKeep = DefaultSnapshotKeep
	}
	env := scripting.NewEnvironment()
	registry := attempt.NewRegistry()
	return &Session{
		ID:           uuid.NewString(),
		Env:          env,
		lessonID:     opts.LessonID,
		rules:        opts.Rules,
		dispatch:     opts.Dispatcher,
		events:       opts.Events,
		snapshots:    opts.Snapshots,
		checkTimeout: opts.CheckTimeout,
		initTimeout:  opts.InitTimeout,
		snapshotKeep: opts.SnapshotKeep,
		registry:     registry,
		saver: &attempt.Saver{
			Registry:   registry,
			Env:        env,
			WriteState: opts.WriteState,
			ReadState:  opts.ReadState,
		},
		barriers: make(map[string]*attempt.InitBarrier),
	}
}

// Saver returns the part-state saver bound to this session.
func (s *Session) Saver() *attempt.Saver { return s.saver }

// Start records the session start.
func (s *Session) Start(ctx context.Context) error {
	s.started = time.Now()
	s.Env.Set(check.AttemptNumberPath, scripting.Number(1))
	if s.events == nil {
		return nil
	}
	return s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: s.ID,
		Action:    "start",
		LessonID:  s.lessonID,
	})
}

// End records the session end and persists a final environment snapshot.
func (s *Session) End(ctx context.Context) error {
	if err := s.persistSnapshot(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist final snapshot: %v\n", err)
	}
	if s.events == nil {
		return nil
	}
	return s.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:     s.ID,
		Action:        "end",
		LessonID:      s.lessonID,
		ChecksRun:     s.checksRun,
		CorrectChecks: s.correctChecks,
		DurationSecs:  int(time.Since(s.started).Seconds()),
	})
}

// SetActivityTree swaps the active tree, registering attempt records and an
// init barrier for any activity not seen before. The last entry is the
// current activity. The environment persists across swaps.
func (s *Session) SetActivityTree(tree activity.Tree) error {
	if len(tree) == 0 {
		return errors.New("empty activity tree")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range tree {
		if _, err := s.registry.ByActivity(a.ID); err != nil {
			s.registry.Register(a)
			partIDs := make([]string, 0, len(a.Content.PartsLayout))
			for _, p := range a.Content.PartsLayout {
				partIDs = append(partIDs, p.ID)
			}
			s.barriers[a.ID] = attempt.NewInitBarrier(partIDs)
		}
	}
	s.tree = tree
	s.current = tree[len(tree)-1]
	return nil
}

// Tree returns the current activity tree snapshot.
func (s *Session) Tree() activity.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

// Current returns the current activity, or nil before the first tree swap.
func (s *Session) Current() *activity.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// PartReady marks a part of the activity initialized.
func (s *Session) PartReady(activityID, partID string) {
	s.mu.Lock()
	b := s.barriers[activityID]
	s.mu.Unlock()
	if b != nil {
		b.Ready(partID)
	}
}

// WaitReady blocks until every part of the activity has initialized, up to
// the configured init timeout.
func (s *Session) WaitReady(ctx context.Context, activityID string) error {
	s.mu.Lock()
	b := s.barriers[activityID]
	s.mu.Unlock()
	if b == nil {
		return fmt.Errorf("%w: %s", ErrUnknownActivity, activityID)
	}
	if err := b.Wait(ctx, s.initTimeout); err != nil {
		return fmt.Errorf("activity %s (pending parts %v): %w", activityID, b.Pending(), err)
	}
	return nil
}

// Snapshot returns the localized view of the environment for the given
// activities.
func (s *Session) Snapshot(activityIDs []string) map[string]scripting.Value {
	return s.Env.LocalizedSnapshot(activityIDs)
}

// Seed applies initialization-time variable assignments outside a check
// cycle, returning any per-operation diagnostics.
func (s *Session) Seed(ops []scripting.ApplyOperation) []error {
	_, errs := scripting.ApplyBulk(ops, s.Env)
	return errs
}

// OnCheckTriggered runs one check cycle for the activity: evaluate rules
// (bounded by the check timeout), reduce the results, dispatch the derived
// commands and record the cycle. A second trigger while a cycle is running
// fails with ErrCheckInFlight.
func (s *Session) OnCheckTriggered(ctx context.Context, activityID string) (*check.Outcome, error) {
	if !s.checking.CompareAndSwap(false, true) {
		return nil, ErrCheckInFlight
	}
	defer s.checking.Store(false)

	s.mu.Lock()
	tree := s.tree
	current := tree.Find(activityID)
	s.mu.Unlock()
	if current == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownActivity, activityID)
	}

	results, evalErrs, err := s.evaluateRules(ctx, activityID, tree)
	if err != nil {
		s.recordTimeout(ctx, activityID)
		return nil, err
	}
	for _, e := range evalErrs {
		fmt.Fprintf(os.Stderr, "warning: rule evaluation: %v\n", e)
	}

	outcome := check.Reduce(results, current, tree, s.Env)
	for _, e := range outcome.Errors {
		fmt.Fprintf(os.Stderr, "warning: check cycle: %v\n", e)
	}

	s.dispatchOutcome(outcome)
	s.recordOutcome(ctx, activityID, outcome)

	// persistence is best-effort after the synchronous reduction
	if err := s.persistSnapshot(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist snapshot: %v\n", err)
	}

	s.checksRun++
	if outcome.Correct {
		s.correctChecks++
	}
	return outcome, nil
}

// evaluateRules runs the rule evaluator bounded by the check timeout so a
// stalled collaborator cannot hang the learner.
func (s *Session) evaluateRules(ctx context.Context, activityID string, tree activity.Tree) ([]check.RuleResult, []error, error) {
	type ruleOutput struct {
		results []check.RuleResult
		errs    []error
	}
	out := make(chan ruleOutput, 1)

	evalCtx, cancel := context.WithTimeout(ctx, s.checkTimeout)
	defer cancel()

	go func() {
		results, errs := s.rules.Evaluate(evalCtx, activityID, s.Env, tree)
		out <- ruleOutput{results: results, errs: errs}
	}()

	select {
	case o := <-out:
		return o.results, o.errs, nil
	case <-evalCtx.Done():
		if errors.Is(evalCtx.Err(), context.DeadlineExceeded) {
			return nil, nil, ErrCheckTimeout
		}
		return nil, nil, evalCtx.Err()
	}
}

func (s *Session) dispatchOutcome(outcome *check.Outcome) {
	if s.dispatch == nil {
		return
	}
	if len(outcome.Changes) > 0 {
		s.dispatch.SetMutationChanges(outcome.Changes)
	}
	s.dispatch.SetScore(outcome.Score)

	switch outcome.Kind {
	case check.OutcomeFeedbackOnly:
		s.dispatch.SetFeedbacks(outcome.Feedbacks, outcome.Correct)
	case check.OutcomeFeedbackThenNavigate:
		s.dispatch.SetFeedbacks(outcome.Feedbacks, outcome.Correct)
		s.dispatch.SetNextActivity(outcome.PendingNavigation)
	case check.OutcomeNavigateOnly:
		s.dispatch.Navigate(outcome.Navigation)
	}
}

func (s *Session) recordOutcome(ctx context.Context, activityID string, outcome *check.Outcome) {
	if s.events == nil {
		return
	}
	err := s.events.AppendCheckEvent(ctx, store.CheckEventData{
		SessionID:     s.ID,
		ActivityID:    activityID,
		Outcome:       outcome.Kind.String(),
		Correct:       outcome.Correct,
		MutationCount: len(outcome.Changes),
		ErrorCount:    len(outcome.Errors),
		Score:         outcome.Score,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record check event: %v\n", err)
	}

	if outcome.Kind == check.OutcomeNavigateOnly || outcome.Kind == check.OutcomeFeedbackThenNavigate {
		data := store.NavigationEventData{
			SessionID:    s.ID,
			FromActivity: activityID,
			Kind:         outcome.Navigation.Kind.String(),
			Target:       outcome.Navigation.Target,
		}
		if outcome.Kind == check.OutcomeFeedbackThenNavigate {
			data.Kind = "pending"
			data.Target = outcome.PendingNavigation
			data.Pending = true
		}
		if err := s.events.AppendNavigationEvent(ctx, data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: record navigation event: %v\n", err)
		}
	}
}

func (s *Session) recordTimeout(ctx context.Context, activityID string) {
	fmt.Fprintf(os.Stderr, "warning: check for %s produced no rule results in %s\n", activityID, s.checkTimeout)
	if s.events == nil {
		return
	}
	err := s.events.AppendCheckEvent(ctx, store.CheckEventData{
		SessionID:  s.ID,
		ActivityID: activityID,
		Outcome:    "timeout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record check timeout: %v\n", err)
	}
}

func (s *Session) persistSnapshot(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	vars := make(map[string]any)
	for k, v := range s.Env.Snapshot() {
		vars[k] = v.Interface()
	}
	err := s.snapshots.Save(ctx, &store.EnvSnapshot{
		SessionID: s.ID,
		Timestamp: time.Now().UTC(),
		Vars:      vars,
	})
	if err != nil {
		return err
	}
	return s.snapshots.Prune(ctx, s.ID, s.snapshotKeep)
}

// SavePartToTree saves a part response across the current tree and records
// the attempt event.
func (s *Session) SavePartToTree(ctx context.Context, attemptGuid, partAttemptGuid string, resp *attempt.Response) error {
	s.mu.Lock()
	tree := s.tree
	s.mu.Unlock()

	att, err := s.registry.ByGuid(attemptGuid)
	if err != nil {
		return err
	}
	part := att.PartByGuid(partAttemptGuid)
	if part == nil {
		return fmt.Errorf("%w: part attempt %s", attempt.ErrMissingBinding, partAttemptGuid)
	}

	if err := s.saver.SavePartToTree(ctx, attemptGuid, partAttemptGuid, resp, tree); err != nil {
		return err
	}

	if s.events != nil {
		keyCount := 0
		if resp != nil {
			keyCount = len(resp.Input)
		}
		err := s.events.AppendAttemptEvent(ctx, store.AttemptEventData{
			SessionID:       s.ID,
			ActivityID:      att.ActivityID,
			PartID:          part.PartID,
			AttemptGuid:     attemptGuid,
			PartAttemptGuid: partAttemptGuid,
			KeyCount:        keyCount,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: record attempt event: %v\n", err)
		}
	}
	return nil
}
