package scripting

import "testing"

func TestApplyBulk(t *testing.T) {
	t.Run("assign with coercion", func(t *testing.T) {
		env := NewEnvironment()
		_, errs := ApplyBulk([]ApplyOperation{
			{Target: "stage.count", Operator: OpAssign, Value: "5", TargetType: "number"},
			{Target: "stage.done", Operator: OpSetting, Value: "true", TargetType: "boolean"},
		}, env)
		if len(errs) != 0 {
			t.Fatalf("errs = %v", errs)
		}
		if v, _ := env.Get("stage.count"); v != Number(5) {
			t.Errorf("stage.count = %+v", v)
		}
		if v, _ := env.Get("stage.done"); v != Boolean(true) {
			t.Errorf("stage.done = %+v", v)
		}
	})

	t.Run("adding and subtracting accumulate", func(t *testing.T) {
		env := NewEnvironment()
		env.Set("session.tutorialScore", Number(10))
		_, errs := ApplyBulk([]ApplyOperation{
			{Target: "session.tutorialScore", Operator: OpAdding, Value: 5},
			{Target: "session.tutorialScore", Operator: OpSubtract, Value: 2},
		}, env)
		if len(errs) != 0 {
			t.Fatalf("errs = %v", errs)
		}
		if got := env.GetNumber("session.tutorialScore"); got != 13 {
			t.Errorf("score = %v, want 13", got)
		}
	})

	t.Run("later ops see earlier writes", func(t *testing.T) {
		env := NewEnvironment()
		_, errs := ApplyBulk([]ApplyOperation{
			{Target: "stage.a", Operator: OpAssign, Value: "7", TargetType: "number"},
			{Target: "stage.b", Operator: OpAssign, Value: "{stage.a}", TargetType: "number"},
		}, env)
		if len(errs) != 0 {
			t.Fatalf("errs = %v", errs)
		}
		if got := env.GetNumber("stage.b"); got != 7 {
			t.Errorf("stage.b = %v, want 7", got)
		}
	})

	t.Run("failed op does not stop the batch", func(t *testing.T) {
		env := NewEnvironment()
		results, errs := ApplyBulk([]ApplyOperation{
			{Target: "stage.bad", Operator: OpAssign, Value: "oops", TargetType: "number"},
			{Target: "stage.good", Operator: OpAssign, Value: 1, TargetType: "number"},
		}, env)
		if len(errs) != 1 {
			t.Fatalf("errs = %v, want exactly one", errs)
		}
		if len(results) != 2 {
			t.Fatalf("results = %d, want 2", len(results))
		}
		if results[0].Err == nil || results[1].Err != nil {
			t.Errorf("wrong op failed: %+v", results)
		}
		if _, ok := env.Get("stage.bad"); ok {
			t.Error("failed op wrote a value")
		}
		if got := env.GetNumber("stage.good"); got != 1 {
			t.Errorf("stage.good = %v, want 1", got)
		}
	})

	t.Run("unknown operator rejected", func(t *testing.T) {
		env := NewEnvironment()
		_, errs := ApplyBulk([]ApplyOperation{
			{Target: "stage.x", Operator: "multiplying", Value: 2},
		}, env)
		if len(errs) != 1 {
			t.Fatalf("errs = %v", errs)
		}
	})

	t.Run("empty target rejected", func(t *testing.T) {
		env := NewEnvironment()
		_, errs := ApplyBulk([]ApplyOperation{
			{Target: "  ", Operator: OpAssign, Value: 1},
		}, env)
		if len(errs) != 1 {
			t.Fatalf("errs = %v", errs)
		}
	})

	t.Run("bind tracks the bound path", func(t *testing.T) {
		env := NewEnvironment()
		env.Set("q-1|stage.input.value", String("42"))
		_, errs := ApplyBulk([]ApplyOperation{
			{Target: "stage.mirror", Operator: OpBind, Value: "q-1|stage.input.value", TargetType: "number"},
		}, env)
		if len(errs) != 0 {
			t.Fatalf("errs = %v", errs)
		}
		if v, _ := env.Get("stage.mirror"); v != Number(42) {
			t.Errorf("stage.mirror = %+v", v)
		}
	})
}

func TestMutationChanges(t *testing.T) {
	env := NewEnvironment()
	env.Set("stage.score", Number(4))
	env.Set("stage.note", String("score is {stage.score}"))

	changes := MutationChanges([]string{"stage.score", "stage.note", "stage.missing"}, env)

	if changes["stage.score"] != 4.0 {
		t.Errorf("stage.score = %v", changes["stage.score"])
	}
	// stored template strings resolve one more time before reporting
	if changes["stage.note"] != "score is 4" {
		t.Errorf("stage.note = %v", changes["stage.note"])
	}
	if changes["stage.missing"] != nil {
		t.Errorf("stage.missing = %v, want nil", changes["stage.missing"])
	}
}
