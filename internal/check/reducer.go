package check

import (
	"fmt"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/scripting"
)

// Session score variables re-read after every cycle.
const (
	TutorialScorePath = "session.tutorialScore"
	QuestionScorePath = "session.currentQuestionScore"
	AttemptNumberPath = "session.attemptNumber"
)

// OutcomeKind is the terminal state of a check cycle.
type OutcomeKind int

const (
	// OutcomeMutationOnly: state changed (or nothing at all happened), no
	// feedback to show and no navigation to perform.
	OutcomeMutationOnly OutcomeKind = iota
	// OutcomeFeedbackOnly: feedback must display; no navigation follows.
	OutcomeFeedbackOnly
	// OutcomeFeedbackThenNavigate: feedback displays first, then the
	// pending navigation target applies on dismissal.
	OutcomeFeedbackThenNavigate
	// OutcomeNavigateOnly: navigate immediately.
	OutcomeNavigateOnly
	// OutcomeSelfRetry: a navigation back to the current activity with
	// combined feedback; attempt counters reset, nothing visibly moves.
	OutcomeSelfRetry
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFeedbackOnly:
		return "feedback-only"
	case OutcomeFeedbackThenNavigate:
		return "feedback-then-navigate"
	case OutcomeNavigateOnly:
		return "navigate-only"
	case OutcomeSelfRetry:
		return "self-retry-mutation-only"
	default:
		return "mutation-only"
	}
}

// Outcome is the single coherent result of one check cycle.
type Outcome struct {
	Kind    OutcomeKind
	Correct bool

	// Feedbacks to display, in order of appearance across selected results.
	Feedbacks []Feedback

	// Navigation is the visible navigation decision (NavNone unless the
	// cycle is navigate-only).
	Navigation NavigationDecision

	// PendingNavigation holds the target captured behind feedback for
	// feedback-then-navigate cycles; empty otherwise.
	PendingNavigation string

	// Score is session.tutorialScore + session.currentQuestionScore read
	// after mutation, every cycle.
	Score float64

	// Changes maps each mutated target (as authored, pre-scoping) to its
	// final post-batch value.
	Changes map[string]any

	// Errors collects per-operation diagnostics. A non-empty list does not
	// invalidate the outcome; one bad rule must not block the cycle.
	Errors []error
}

// Reduce consumes the rule results of one check cycle for the current
// activity and produces the cycle's outcome. The activity tree snapshot must
// be the one the results were evaluated against; every scope resolution in
// the cycle uses it.
func Reduce(results []RuleResult, current *activity.Activity, tree activity.Tree, env *scripting.Environment) *Outcome {
	out := &Outcome{Changes: map[string]any{}}
	if len(results) == 0 || current == nil {
		out.Score = env.GetNumber(TutorialScorePath) + env.GetNumber(QuestionScorePath)
		return out
	}

	isCorrect := true
	for _, r := range results {
		if !r.Correct {
			isCorrect = false
			break
		}
	}

	// Selection: with combineFeedback off only the first result counts.
	// With it on, all results combine when they agree on a single shared
	// navigation target; otherwise a failing first-result navigation
	// short-circuits the rest.
	selected := results[:1]
	firstHasNavigation := false
	if current.Custom.CombineFeedback {
		if allSameNavigation(results) {
			selected = results
		} else {
			firstHasNavigation = results[0].hasNavigation()
			if firstHasNavigation && !isCorrect {
				selected = results[:1]
			} else {
				selected = results
			}
		}
	}

	// Classification: flatten into ordered per-kind lists.
	var feedbacks []Feedback
	var mutations []MutateStateAction
	var navigations []NavigationAction
	for _, r := range selected {
		for _, a := range r.Actions {
			switch act := a.(type) {
			case FeedbackAction:
				feedbacks = append(feedbacks, act.Feedback)
			case MutateStateAction:
				mutations = append(mutations, act)
			case NavigationAction:
				navigations = append(navigations, act)
			default:
				out.Errors = append(out.Errors, fmt.Errorf("unhandled action %T", a))
			}
		}
	}

	if len(mutations) > 0 {
		out.applyMutations(mutations, current, tree, env)
	}

	// Scoring: re-read unconditionally so the reported score stays
	// consistent even when no rule touched it.
	out.Score = env.GetNumber(TutorialScorePath) + env.GetNumber(QuestionScorePath)

	hasFeedback := len(feedbacks) > 0
	hasNavigation := len(navigations) > 0

	switch {
	case hasFeedback:
		out.Feedbacks = feedbacks
		out.Correct = isCorrect
		out.Kind = OutcomeFeedbackOnly
		if hasNavigation {
			// feedback displays first; navigation waits for dismissal
			out.PendingNavigation = navigations[0].Target
			out.Kind = OutcomeFeedbackThenNavigate
		}

	case hasNavigation:
		out.Correct = isCorrect
		decision := ResolveTarget(navigations[0].Target)
		if decision.Kind == NavActivity &&
			firstHasNavigation && current.Custom.CombineFeedback &&
			decision.Target == current.ID {
			// a self-navigation is a retry: reset the attempt counters
			// and keep the learner where they are
			reset := []scripting.ApplyOperation{
				{Target: AttemptNumberPath, Operator: scripting.OpAssign, Value: 1},
				{Target: decision.Target + "|" + AttemptNumberPath, Operator: scripting.OpAssign, Value: 1},
			}
			if _, errs := scripting.ApplyBulk(reset, env); len(errs) > 0 {
				out.Errors = append(out.Errors, errs...)
			}
			out.Kind = OutcomeSelfRetry
		} else {
			out.Navigation = decision
			out.Kind = OutcomeNavigateOnly
		}

	default:
		out.Correct = isCorrect
		out.Kind = OutcomeMutationOnly
	}

	return out
}

// applyMutations scopes each mutation's target and value against the tree,
// applies the batch, then re-reads every mutated path to build the change
// set reported to observers.
func (out *Outcome) applyMutations(mutations []MutateStateAction, current *activity.Activity, tree activity.Tree, env *scripting.Environment) {
	ops := make([]scripting.ApplyOperation, 0, len(mutations))
	scoped := make([]string, 0, len(mutations))
	authored := make([]string, 0, len(mutations))

	for _, m := range mutations {
		target, err := activity.ScopeTarget(m.Target, tree, current.ID)
		if err != nil {
			out.Errors = append(out.Errors, fmt.Errorf("scope target %q: %w", m.Target, err))
			continue
		}

		value := m.Value
		if s, ok := value.(string); ok {
			scopedValue, err := activity.ScopeValue(s, m.Operator, tree)
			if err != nil {
				out.Errors = append(out.Errors, fmt.Errorf("scope value for %q: %w", m.Target, err))
				continue
			}
			value = scopedValue
		}

		ops = append(ops, m.Operation(target, value))
		scoped = append(scoped, target)
		authored = append(authored, m.Target)
	}

	_, errs := scripting.ApplyBulk(ops, env)
	out.Errors = append(out.Errors, errs...)

	changes := scripting.MutationChanges(scoped, env)
	for i, path := range scoped {
		out.Changes[authored[i]] = changes[path]
	}
}

// allSameNavigation reports whether every result navigates and all of them
// share exactly one navigation target.
func allSameNavigation(results []RuleResult) bool {
	var targets []string
	withNav := 0
	for _, r := range results {
		rt := r.navigationTargets()
		if len(rt) > 0 {
			withNav++
		}
		for _, t := range rt {
			seen := false
			for _, known := range targets {
				if known == t {
					seen = true
					break
				}
			}
			if !seen {
				targets = append(targets, t)
			}
		}
	}
	return withNav == len(results) && len(targets) == 1
}
