package rules

import (
	"context"
	"fmt"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/check"
	"github.com/jtrask/stagehand/internal/scripting"
)

// Set maps activity ids to their rule engines, so one session can answer
// check triggers for any activity in its lesson.
type Set map[string]*Engine

// Add registers the engine for an activity, replacing any previous one.
func (s Set) Add(activityID string, e *Engine) { s[activityID] = e }

// Evaluate runs the engine registered for the activity. An activity with no
// registered engine yields an empty batch and a diagnostic; the reducer
// treats that as a correct no-op cycle.
func (s Set) Evaluate(ctx context.Context, activityID string, env *scripting.Environment, tree activity.Tree) ([]check.RuleResult, []error) {
	e, ok := s[activityID]
	if !ok {
		return nil, []error{fmt.Errorf("no rules registered for activity %s", activityID)}
	}
	return e.Evaluate(ctx, env, tree)
}
