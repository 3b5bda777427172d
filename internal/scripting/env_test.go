package scripting

import "testing"

func TestEnvironmentGetSet(t *testing.T) {
	env := NewEnvironment()

	if _, ok := env.Get("session.visits"); ok {
		t.Fatal("unexpected value before Set")
	}
	if got := env.GetNumber("session.visits"); got != 0 {
		t.Errorf("GetNumber on missing path = %v, want 0", got)
	}

	env.Set("session.visits", Number(3))
	v, ok := env.Get("session.visits")
	if !ok || v != Number(3) {
		t.Errorf("Get = %+v, %t", v, ok)
	}

	env.Set("session.visits", Number(4))
	if got := env.GetNumber("session.visits"); got != 4 {
		t.Errorf("overwrite: GetNumber = %v, want 4", got)
	}

	env.Delete("session.visits")
	if _, ok := env.Get("session.visits"); ok {
		t.Error("value survived Delete")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	env := NewEnvironment()
	env.Set("a", Number(1))

	snap := env.Snapshot()
	snap["a"] = Number(99)
	snap["b"] = Number(2)

	if got := env.GetNumber("a"); got != 1 {
		t.Errorf("mutating snapshot leaked into env: a = %v", got)
	}
	if _, ok := env.Get("b"); ok {
		t.Error("mutating snapshot leaked into env: b exists")
	}
}

func TestLocalizedSnapshot(t *testing.T) {
	env := NewEnvironment()
	env.Set("session.attemptNumber", Number(2))
	env.Set("q-1|stage.input.value", String("red"))
	env.Set("q-2|stage.input.value", String("blue"))
	env.Set("q-3|stage.other", String("hidden"))

	snap := env.LocalizedSnapshot([]string{"q-1", "q-2"})

	if v := snap["session.attemptNumber"]; v != Number(2) {
		t.Errorf("global missing: %+v", v)
	}
	if v := snap["q-1|stage.input.value"]; v != String("red") {
		t.Errorf("scoped key missing: %+v", v)
	}
	// later activity id wins the bare alias
	if v := snap["stage.input.value"]; v != String("blue") {
		t.Errorf("bare alias = %+v, want blue", v)
	}
	if _, ok := snap["q-3|stage.other"]; ok {
		t.Error("out-of-list activity leaked into snapshot")
	}
	if _, ok := snap["stage.other"]; ok {
		t.Error("out-of-list alias leaked into snapshot")
	}
}
