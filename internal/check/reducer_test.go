package check

import (
	"testing"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/scripting"
)

func questionActivity(combine bool) *activity.Activity {
	return &activity.Activity{
		ID: "q-1",
		Content: activity.Content{PartsLayout: []activity.Part{
			{ID: "input"},
		}},
		Custom: activity.Custom{CombineFeedback: combine},
	}
}

func treeFor(a *activity.Activity) activity.Tree {
	return activity.Tree{a}
}

func feedback(msg string) FeedbackAction {
	return FeedbackAction{Feedback: Feedback{Message: msg}}
}

func mutate(target, operator string, value any, targetType string) MutateStateAction {
	return MutateStateAction{Target: target, Operator: operator, Value: value, TargetType: targetType}
}

func navigate(target string) NavigationAction {
	return NavigationAction{Target: target}
}

func TestReduceEmptyBatch(t *testing.T) {
	env := scripting.NewEnvironment()
	env.Set(TutorialScorePath, scripting.Number(3))
	env.Set(QuestionScorePath, scripting.Number(2))

	a := questionActivity(false)
	out := Reduce(nil, a, treeFor(a), env)

	if out.Kind != OutcomeMutationOnly {
		t.Errorf("Kind = %v", out.Kind)
	}
	if out.Score != 5 {
		t.Errorf("Score = %v, want 5 even with no results", out.Score)
	}
	if len(out.Changes) != 0 {
		t.Errorf("Changes = %v", out.Changes)
	}
}

func TestReduceMutationOnly(t *testing.T) {
	env := scripting.NewEnvironment()
	a := questionActivity(false)

	results := []RuleResult{{
		Name:    "track-answer",
		Correct: true,
		Actions: []Action{
			mutate("stage.input.value", scripting.OpAssign, "7", "number"),
			mutate("session.tutorialScore", scripting.OpAdding, 2, "number"),
		},
	}}

	out := Reduce(results, a, treeFor(a), env)

	if out.Kind != OutcomeMutationOnly {
		t.Fatalf("Kind = %v", out.Kind)
	}
	if !out.Correct {
		t.Error("Correct = false")
	}
	// the write lands owner-qualified, the change set keys stay authored
	if v, _ := env.Get("q-1|stage.input.value"); v != scripting.Number(7) {
		t.Errorf("scoped write = %+v", v)
	}
	if out.Changes["stage.input.value"] != 7.0 {
		t.Errorf("Changes[stage.input.value] = %v", out.Changes["stage.input.value"])
	}
	if out.Score != 2 {
		t.Errorf("Score = %v, want 2 after adding", out.Score)
	}
}

func TestReduceMutationOrderAndIsolation(t *testing.T) {
	env := scripting.NewEnvironment()
	a := questionActivity(false)

	results := []RuleResult{{
		Name: "chained",
		Actions: []Action{
			mutate("session.base", scripting.OpAssign, 10, "number"),
			mutate("session.broken", scripting.OpAssign, "oops", "number"),
			mutate("session.doubled", scripting.OpAssign, "{session.base * 2}", "number"),
		},
	}}

	out := Reduce(results, a, treeFor(a), env)

	if len(out.Errors) != 1 {
		t.Fatalf("Errors = %v, want exactly one", out.Errors)
	}
	// the failing middle op does not block the later one
	if got := env.GetNumber("session.doubled"); got != 20 {
		t.Errorf("session.doubled = %v, want 20", got)
	}
	if out.Changes["session.broken"] != nil {
		t.Errorf("Changes[session.broken] = %v, want nil", out.Changes["session.broken"])
	}
}

func TestReduceFeedbackOnly(t *testing.T) {
	env := scripting.NewEnvironment()
	a := questionActivity(false)

	results := []RuleResult{
		{Name: "wrong", Correct: false, Actions: []Action{feedback("try again")}},
		{Name: "also-wrong", Correct: false, Actions: []Action{feedback("ignored: combine off")}},
	}

	out := Reduce(results, a, treeFor(a), env)

	if out.Kind != OutcomeFeedbackOnly {
		t.Fatalf("Kind = %v", out.Kind)
	}
	if out.Correct {
		t.Error("Correct = true")
	}
	if len(out.Feedbacks) != 1 || out.Feedbacks[0].Message != "try again" {
		t.Errorf("Feedbacks = %+v, want only the first result's", out.Feedbacks)
	}
}

func TestReduceCombineFeedback(t *testing.T) {
	t.Run("all share one navigation target", func(t *testing.T) {
		env := scripting.NewEnvironment()
		a := questionActivity(true)

		results := []RuleResult{
			{Correct: true, Actions: []Action{feedback("nice"), navigate("next")}},
			{Correct: true, Actions: []Action{feedback("bonus fact"), navigate("next")}},
		}

		out := Reduce(results, a, treeFor(a), env)

		if out.Kind != OutcomeFeedbackThenNavigate {
			t.Fatalf("Kind = %v", out.Kind)
		}
		if len(out.Feedbacks) != 2 {
			t.Errorf("Feedbacks = %+v, want both", out.Feedbacks)
		}
		if out.PendingNavigation != "next" {
			t.Errorf("PendingNavigation = %q", out.PendingNavigation)
		}
		if out.Navigation.Kind != NavNone {
			t.Errorf("visible Navigation = %+v, want none while feedback shows", out.Navigation)
		}
	})

	t.Run("incorrect first navigation short-circuits", func(t *testing.T) {
		env := scripting.NewEnvironment()
		a := questionActivity(true)

		results := []RuleResult{
			{Correct: false, Actions: []Action{feedback("wrong"), navigate("q-9")}},
			{Correct: false, Actions: []Action{feedback("should be dropped")}},
		}

		out := Reduce(results, a, treeFor(a), env)

		if len(out.Feedbacks) != 1 || out.Feedbacks[0].Message != "wrong" {
			t.Errorf("Feedbacks = %+v, want only the first", out.Feedbacks)
		}
		if out.PendingNavigation != "q-9" {
			t.Errorf("PendingNavigation = %q", out.PendingNavigation)
		}
	})

	t.Run("correct results combine without navigation agreement", func(t *testing.T) {
		env := scripting.NewEnvironment()
		a := questionActivity(true)

		results := []RuleResult{
			{Correct: true, Actions: []Action{feedback("one")}},
			{Correct: true, Actions: []Action{feedback("two")}},
		}

		out := Reduce(results, a, treeFor(a), env)

		if len(out.Feedbacks) != 2 {
			t.Errorf("Feedbacks = %+v, want both", out.Feedbacks)
		}
	})
}

func TestReduceNavigateOnly(t *testing.T) {
	env := scripting.NewEnvironment()
	a := questionActivity(false)

	results := []RuleResult{{
		Correct: true,
		Actions: []Action{navigate("next")},
	}}

	out := Reduce(results, a, treeFor(a), env)

	if out.Kind != OutcomeNavigateOnly {
		t.Fatalf("Kind = %v", out.Kind)
	}
	if out.Navigation.Kind != NavNext {
		t.Errorf("Navigation = %+v", out.Navigation)
	}
}

func TestReduceSelfRetry(t *testing.T) {
	env := scripting.NewEnvironment()
	env.Set(AttemptNumberPath, scripting.Number(3))
	env.Set("q-1|"+AttemptNumberPath, scripting.Number(3))
	a := questionActivity(true)

	// combined results that do not agree on a target, first navigates to
	// the current activity: a retry, not a visible navigation
	results := []RuleResult{
		{Correct: false, Actions: []Action{navigate("q-1")}},
		{Correct: false, Actions: []Action{}},
	}

	out := Reduce(results, a, treeFor(a), env)

	if out.Kind != OutcomeSelfRetry {
		t.Fatalf("Kind = %v", out.Kind)
	}
	if out.Navigation.Kind != NavNone {
		t.Errorf("Navigation = %+v, want none", out.Navigation)
	}
	if got := env.GetNumber(AttemptNumberPath); got != 1 {
		t.Errorf("attempt number = %v, want reset to 1", got)
	}
	if got := env.GetNumber("q-1|" + AttemptNumberPath); got != 1 {
		t.Errorf("scoped attempt number = %v, want reset to 1", got)
	}
}

func TestReduceScoreReadEveryCycle(t *testing.T) {
	env := scripting.NewEnvironment()
	env.Set(TutorialScorePath, scripting.Number(7))
	env.Set(QuestionScorePath, scripting.Number(1))
	a := questionActivity(false)

	results := []RuleResult{{
		Correct: true,
		Actions: []Action{feedback("score untouched")},
	}}

	out := Reduce(results, a, treeFor(a), env)

	if out.Score != 8 {
		t.Errorf("Score = %v, want 8 even though no rule wrote it", out.Score)
	}
}

func TestAllSameNavigation(t *testing.T) {
	tests := []struct {
		name    string
		results []RuleResult
		want    bool
	}{
		{
			"agree on one target",
			[]RuleResult{
				{Actions: []Action{navigate("next")}},
				{Actions: []Action{navigate("next")}},
			},
			true,
		},
		{
			"different targets",
			[]RuleResult{
				{Actions: []Action{navigate("next")}},
				{Actions: []Action{navigate("q-3")}},
			},
			false,
		},
		{
			"one result without navigation",
			[]RuleResult{
				{Actions: []Action{navigate("next")}},
				{Actions: []Action{feedback("hi")}},
			},
			false,
		},
		{
			"no results navigate",
			[]RuleResult{
				{Actions: []Action{feedback("a")}},
				{Actions: []Action{feedback("b")}},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allSameNavigation(tt.results); got != tt.want {
				t.Errorf("allSameNavigation = %t, want %t", got, tt.want)
			}
		})
	}
}
