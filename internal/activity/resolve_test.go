package activity

import (
	"errors"
	"testing"

	"github.com/jtrask/stagehand/internal/scripting"
)

func twoScreenTree() Tree {
	return Tree{
		{
			ID: "intro",
			Content: Content{PartsLayout: []Part{
				{ID: "banner"},
			}},
		},
		{
			ID: "q-1",
			Content: Content{PartsLayout: []Part{
				{ID: "input"},
				{ID: "hint"},
			}},
		},
	}
}

func TestOwnerOf(t *testing.T) {
	tree := twoScreenTree()

	owner, err := tree.OwnerOf("input")
	if err != nil {
		t.Fatal(err)
	}
	if owner == nil || owner.ID != "q-1" {
		t.Errorf("owner = %+v, want q-1", owner)
	}

	owner, err = tree.OwnerOf("unknown")
	if err != nil || owner != nil {
		t.Errorf("unknown part: owner=%v err=%v, want nil,nil", owner, err)
	}

	dup := append(Tree{}, tree...)
	dup = append(dup, &Activity{
		ID:      "q-2",
		Content: Content{PartsLayout: []Part{{ID: "input"}}},
	})
	if _, err := dup.OwnerOf("input"); !errors.Is(err, ErrAmbiguousPart) {
		t.Errorf("duplicate part: err = %v, want ErrAmbiguousPart", err)
	}
}

func TestResolvePath(t *testing.T) {
	tree := twoScreenTree()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"owned stage path", "stage.input.value", "q-1|stage.input.value"},
		{"owned in other activity", "stage.banner.text", "intro|stage.banner.text"},
		{"already qualified is idempotent", "q-1|stage.input.value", "q-1|stage.input.value"},
		{"unowned namespace passes through", "app.theme.color", "app.theme.color"},
		{"single segment passes through", "score", "score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.in, tree)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScopeTarget(t *testing.T) {
	tree := twoScreenTree()

	tests := []struct {
		name    string
		target  string
		current string
		want    string
	}{
		{"owned part", "stage.input.value", "q-1", "q-1|stage.input.value"},
		{"unowned stage falls back to current", "stage.summary.text", "q-1", "q-1|stage.summary.text"},
		{"non-stage untouched", "session.tutorialScore", "q-1", "session.tutorialScore"},
		{"already scoped untouched", "intro|stage.banner.text", "q-1", "intro|stage.banner.text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScopeTarget(tt.target, tree, tt.current)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ScopeTarget(%q) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestScopeValue(t *testing.T) {
	tree := twoScreenTree()

	tests := []struct {
		name     string
		value    string
		operator string
		want     string
	}{
		{
			"templated owned reference rewritten",
			"you typed {stage.input.value}",
			scripting.OpAssign,
			"you typed {q-1|stage.input.value}",
		},
		{
			"already qualified placeholder untouched",
			"{intro|stage.banner.text}",
			scripting.OpAssign,
			"{intro|stage.banner.text}",
		},
		{
			"short placeholder untouched",
			"{session.score}",
			scripting.OpAssign,
			"{session.score}",
		},
		{
			"bind operand rewritten whole",
			"stage.input.value",
			scripting.OpBind,
			"q-1|stage.input.value",
		},
		{
			"anchor operand rewritten whole",
			"stage.hint.text",
			scripting.OpAnchor,
			"q-1|stage.hint.text",
		},
		{
			"plain value untouched",
			"42",
			scripting.OpAssign,
			"42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScopeValue(tt.value, tt.operator, tree)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ScopeValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
