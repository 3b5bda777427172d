package scripting

import (
	"errors"
	"strings"
	"testing"
)

func TestIsTemplated(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"{stage.input.value}", true},
		{"score is {session.tutorialScore}", true},
		{"plain text", false},
		{"half {open", false},
		{`{"type":"feedback"}`, false}, // raw JSON, not a template
		{"", false},
	}
	for _, tt := range tests {
		if got := IsTemplated(tt.in); got != tt.want {
			t.Errorf("IsTemplated(%q) = %t, want %t", tt.in, got, tt.want)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	got := Placeholders("a {x.y} b {q-1|z.w} c")
	want := []string{"{x.y}", "{q-1|z.w}"}
	if len(got) != len(want) {
		t.Fatalf("Placeholders = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placeholders[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTemplatize(t *testing.T) {
	env := NewEnvironment()
	env.Set("stage.input.value", String("7"))
	env.Set("q-1|stage.score", Number(4))

	t.Run("direct path", func(t *testing.T) {
		res := Templatize("you answered {stage.input.value}", env)
		if res.Text != "you answered 7" {
			t.Errorf("Text = %q", res.Text)
		}
		if len(res.Errors) != 0 {
			t.Errorf("unexpected errors: %v", res.Errors)
		}
	})

	t.Run("scoped path", func(t *testing.T) {
		res := Templatize("score {q-1|stage.score}", env)
		if res.Text != "score 4" {
			t.Errorf("Text = %q", res.Text)
		}
	})

	t.Run("expression inside placeholder", func(t *testing.T) {
		res := Templatize("next {q-1|stage.score + 1}", env)
		if res.Text != "next 5" {
			t.Errorf("Text = %q", res.Text)
		}
	})

	t.Run("unresolved degrades to empty", func(t *testing.T) {
		res := Templatize("got {no.such.path}!", env)
		if res.Text != "got !" {
			t.Errorf("Text = %q", res.Text)
		}
		if len(res.Errors) != 1 || !errors.Is(res.Errors[0], ErrUnresolvedPath) {
			t.Errorf("Errors = %v, want one ErrUnresolvedPath", res.Errors)
		}
	})

	t.Run("untemplated passes through", func(t *testing.T) {
		res := Templatize("no braces here", env)
		if res.Text != "no braces here" {
			t.Errorf("Text = %q", res.Text)
		}
	})
}

func TestEvaluate(t *testing.T) {
	env := NewEnvironment()
	env.Set("stage.score", Number(4))
	env.Set("stage.color", String("red"))

	t.Run("single placeholder keeps type", func(t *testing.T) {
		v, err := Evaluate("{stage.score}", env)
		if err != nil {
			t.Fatal(err)
		}
		if v != Number(4) {
			t.Errorf("Evaluate = %+v, want typed 4", v)
		}
	})

	t.Run("mixed text renders string", func(t *testing.T) {
		v, err := Evaluate("color: {stage.color}", env)
		if err != nil {
			t.Fatal(err)
		}
		if v != String("color: red") {
			t.Errorf("Evaluate = %+v", v)
		}
	})

	t.Run("arithmetic placeholder", func(t *testing.T) {
		v, err := Evaluate("{stage.score * 2}", env)
		if err != nil {
			t.Fatal(err)
		}
		if v.AsNumber() != 8 {
			t.Errorf("Evaluate = %+v, want 8", v)
		}
	})

	t.Run("plain text untouched", func(t *testing.T) {
		v, err := Evaluate("hello", env)
		if err != nil {
			t.Fatal(err)
		}
		if v != String("hello") {
			t.Errorf("Evaluate = %+v", v)
		}
	})

	t.Run("unresolved single placeholder errors", func(t *testing.T) {
		_, err := Evaluate("{missing.path}", env)
		if !errors.Is(err, ErrUnresolvedPath) {
			t.Errorf("err = %v, want ErrUnresolvedPath", err)
		}
		if err != nil && !strings.Contains(err.Error(), "missing.path") {
			t.Errorf("error should name the path: %v", err)
		}
	})
}
