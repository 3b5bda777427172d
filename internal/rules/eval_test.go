package rules

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/check"
	"github.com/jtrask/stagehand/internal/scripting"
)

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

func feedbackAction(msg string) check.Action {
	return check.FeedbackAction{Feedback: check.Feedback{Message: msg}}
}

func TestEvaluateFiresMatchingRules(t *testing.T) {
	env := scripting.NewEnvironment()
	env.Set("q-1|stage.input.value", scripting.String("42"))

	engine := NewEngine([]Rule{
		{
			Name:       "correct-answer",
			Correct:    true,
			Conditions: []string{`{stage.input.value} == "42"`},
			Actions:    []check.Action{feedbackAction("yes")},
		},
		{
			Name:       "wrong-answer",
			Conditions: []string{`{stage.input.value} != "42"`},
			Actions:    []check.Action{feedbackAction("no")},
		},
	})

	results, errs := engine.Evaluate(context.Background(), env, questionTree())
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if len(results) != 1 || results[0].Name != "correct-answer" {
		t.Fatalf("results = %+v", results)
	}
	if !results[0].Correct {
		t.Error("Correct = false")
	}
}

func TestEvaluatePriorityOrder(t *testing.T) {
	env := scripting.NewEnvironment()

	engine := NewEngine([]Rule{
		{Name: "late", Priority: 10, Actions: []check.Action{feedbackAction("b")}},
		{Name: "early", Priority: 1, Actions: []check.Action{feedbackAction("a")}},
		{Name: "tied-with-late", Priority: 10, Actions: []check.Action{feedbackAction("c")}},
	})

	results, _ := engine.Evaluate(context.Background(), env, questionTree())
	got := make([]string, len(results))
	for i, r := range results {
		got[i] = r.Name
	}
	want := []string{"early", "late", "tied-with-late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestEvaluateDefaultsFireWhenNothingElse(t *testing.T) {
	env := scripting.NewEnvironment()

	engine := NewEngine([]Rule{
		{
			Name:       "never",
			Conditions: []string{"1 == 2"},
			Actions:    []check.Action{feedbackAction("unreachable")},
		},
		{
			Name:    "default-wrong",
			Default: true,
			Actions: []check.Action{feedbackAction("try again")},
		},
	})

	results, errs := engine.Evaluate(context.Background(), env, questionTree())
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if len(results) != 1 || results[0].Name != "default-wrong" {
		t.Fatalf("results = %+v, want the default", results)
	}
}

func TestEvaluateDefaultsSuppressedByFiredRule(t *testing.T) {
	env := scripting.NewEnvironment()

	engine := NewEngine([]Rule{
		{Name: "always", Actions: []check.Action{feedbackAction("hit")}},
		{Name: "fallback", Default: true, Actions: []check.Action{feedbackAction("miss")}},
	})

	results, _ := engine.Evaluate(context.Background(), env, questionTree())
	if len(results) != 1 || results[0].Name != "always" {
		t.Fatalf("results = %+v", results)
	}
}

func TestEvaluateSkipsDisabledAndBrokenRules(t *testing.T) {
	env := scripting.NewEnvironment()

	engine := NewEngine([]Rule{
		{Name: "off", Disabled: true, Actions: []check.Action{feedbackAction("off")}},
		{Name: "broken", Conditions: []string{"((("}, Actions: []check.Action{feedbackAction("broken")}},
		{Name: "fine", Actions: []check.Action{feedbackAction("fine")}},
	})

	results, errs := engine.Evaluate(context.Background(), env, questionTree())
	if len(results) != 1 || results[0].Name != "fine" {
		t.Fatalf("results = %+v", results)
	}
	if len(errs) != 1 {
		t.Fatalf("errs = %v, want the broken rule reported", errs)
	}
}

func TestEvaluateConjunction(t *testing.T) {
	env := scripting.NewEnvironment()
	env.Set("session.attemptNumber", scripting.Number(2))
	env.Set("q-1|stage.input.value", scripting.String("7"))

	engine := NewEngine([]Rule{{
		Name: "second-try-right",
		Conditions: []string{
			`{stage.input.value} == "7"`,
			"{session.attemptNumber} >= 2",
		},
		Actions: []check.Action{feedbackAction("got it on retry")},
	}})

	results, errs := engine.Evaluate(context.Background(), env, questionTree())
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v", results)
	}

	env.Set("session.attemptNumber", scripting.Number(1))
	results, _ = engine.Evaluate(context.Background(), env, questionTree())
	if len(results) != 0 {
		t.Fatalf("one false condition should block the rule: %+v", results)
	}
}

func TestEvaluateMissingPlaceholderIsZero(t *testing.T) {
	env := scripting.NewEnvironment()

	engine := NewEngine([]Rule{{
		Name:       "unanswered",
		Conditions: []string{`{stage.input.value} == ""`},
		Actions:    []check.Action{feedbackAction("please answer")},
	}})

	results, errs := engine.Evaluate(context.Background(), env, questionTree())
	if len(errs) != 0 {
		t.Fatalf("errs = %v", errs)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v, want the rule to fire on empty", results)
	}
}

func TestRuleUnmarshalJSON(t *testing.T) {
	raw := `{
		"id": "r1",
		"name": "check-answer",
		"priority": 2,
		"correct": true,
		"conditions": ["{stage.input.value} == \"42\""],
		"actions": [
			{"type": "feedback", "params": {"feedback": {"message": "well done"}}},
			{"type": "mutateState", "params": {"target": "session.tutorialScore", "operator": "adding", "value": 1, "type": "number"}},
			{"type": "navigation", "params": {"target": "next"}}
		]
	}`

	var r Rule
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatal(err)
	}
	if r.Name != "check-answer" || r.Priority != 2 || !r.Correct {
		t.Errorf("rule = %+v", r)
	}
	if len(r.Actions) != 3 {
		t.Fatalf("actions = %+v", r.Actions)
	}
	m, ok := r.Actions[1].(check.MutateStateAction)
	if !ok {
		t.Fatalf("actions[1] = %T", r.Actions[1])
	}
	// legacy "type" hint promotes into TargetType
	if m.TargetType != "number" {
		t.Errorf("TargetType = %q", m.TargetType)
	}

	bad := `{"name": "x", "actions": [{"type": "teleport", "params": {}}]}`
	if err := json.Unmarshal([]byte(bad), &r); err == nil {
		t.Error("unknown action type should fail decoding")
	}
}
