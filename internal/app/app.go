// Package app drives a headless lesson run: it walks the authored activity
// sequence, fires a check cycle per activity and follows the navigation the
// rules decide, printing feedback as it goes.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/check"
	"github.com/jtrask/stagehand/internal/manifest"
	"github.com/jtrask/stagehand/internal/session"
	"github.com/jtrask/stagehand/internal/store"
)

// maxSteps caps a run so a navigation cycle in authored rules cannot spin
// forever.
const maxSteps = 1000

// Options carries the collaborators of a lesson run. Events and Snapshots
// are optional.
type Options struct {
	Manifest  *manifest.Manifest
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Out       io.Writer

	CheckTimeoutSecs int
	InitTimeoutSecs  int
	SnapshotKeep     int
}

// Run walks the lesson from its first activity until the rules stop
// navigating or the step cap is reached.
func Run(ctx context.Context, opts Options) error {
	m := opts.Manifest
	if m == nil || len(m.Activities) == 0 {
		return errors.New("lesson has no activities")
	}

	disp := &consoleDispatcher{out: opts.Out}
	sess := session.New(session.Options{
		LessonID:     m.ID,
		Rules:        m.RuleSet(),
		Dispatcher:   disp,
		Events:       opts.Events,
		Snapshots:    opts.Snapshots,
		CheckTimeout: secsToDuration(opts.CheckTimeoutSecs),
		InitTimeout:  secsToDuration(opts.InitTimeoutSecs),
		SnapshotKeep: opts.SnapshotKeep,
	})

	if err := sess.Start(ctx); err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer func() {
		if err := sess.End(ctx); err != nil {
			fmt.Fprintf(opts.Out, "warning: end session: %v\n", err)
		}
	}()

	for _, d := range sess.Seed(m.InitState) {
		fmt.Fprintf(opts.Out, "warning: seed state: %v\n", d)
	}

	order := make([]string, len(m.Activities))
	for i, a := range m.Activities {
		order[i] = a.ID
	}
	current := order[0]

	fmt.Fprintf(opts.Out, "lesson %s (%d activities)\n", m.ID, len(order))

	for step := 0; step < maxSteps; step++ {
		tree, err := m.TreeFor(current)
		if err != nil {
			return err
		}
		if err := sess.SetActivityTree(tree); err != nil {
			return err
		}
		readyAllParts(sess, tree)
		if err := sess.WaitReady(ctx, current); err != nil {
			return err
		}

		fmt.Fprintf(opts.Out, "\n[%s]\n", current)
		outcome, err := sess.OnCheckTriggered(ctx, current)
		if err != nil {
			return fmt.Errorf("check %s: %w", current, err)
		}

		next, stop := nextActivity(outcome, current, order)
		if stop {
			fmt.Fprintf(opts.Out, "lesson stopped at %s (%s)\n", current, outcome.Kind)
			return nil
		}
		current = next
	}
	return fmt.Errorf("navigation did not settle after %d steps", maxSteps)
}

// readyAllParts marks every part initialized. A headless run has no live
// part components, so readiness is immediate.
func readyAllParts(sess *session.Session, tree activity.Tree) {
	for _, a := range tree {
		for _, p := range a.Content.PartsLayout {
			sess.PartReady(a.ID, p.ID)
		}
	}
}

// nextActivity resolves where the outcome sends the run next. Outcomes that
// wait on the learner (feedback-only, self-retry, mutation-only) stop a
// headless run.
func nextActivity(outcome *check.Outcome, current string, order []string) (string, bool) {
	switch outcome.Kind {
	case check.OutcomeNavigateOnly:
		return follow(outcome.Navigation, current, order)
	case check.OutcomeFeedbackThenNavigate:
		decision := check.ResolveTarget(outcome.PendingNavigation)
		return follow(decision, current, order)
	default:
		return "", true
	}
}

func follow(decision check.NavigationDecision, current string, order []string) (string, bool) {
	idx := -1
	for i, id := range order {
		if id == current {
			idx = i
			break
		}
	}
	switch decision.Kind {
	case check.NavNext:
		if idx+1 >= len(order) {
			return "", true
		}
		return order[idx+1], false
	case check.NavPrev:
		if idx <= 0 {
			return "", true
		}
		return order[idx-1], false
	case check.NavFirst:
		return order[0], false
	case check.NavLast:
		return order[len(order)-1], false
	case check.NavActivity:
		for _, id := range order {
			if id == decision.Target {
				return id, false
			}
		}
		return "", true
	default:
		return "", true
	}
}

func secsToDuration(secs int) time.Duration {
	if secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
