package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLesson = `{
	"id": "lesson-1",
	"title": "Fractions intro",
	"initState": [
		{"target": "session.tutorialScore", "operator": "=", "value": 0, "targetType": "number"}
	],
	"activities": [
		{
			"id": "intro",
			"content": {"partsLayout": [{"id": "banner"}]},
			"custom": {},
			"rules": [
				{"name": "advance", "actions": [{"type": "navigation", "params": {"target": "next"}}]}
			]
		},
		{
			"id": "q-1",
			"content": {"partsLayout": [{"id": "input"}]},
			"custom": {"combineFeedback": true},
			"rules": [
				{
					"name": "right",
					"correct": true,
					"conditions": ["{stage.input.value} == \"42\""],
					"actions": [{"type": "feedback", "params": {"feedback": {"message": "yes"}}}]
				},
				{
					"name": "fallback",
					"default": true,
					"actions": [{"type": "feedback", "params": {"feedback": {"message": "try again"}}}]
				}
			]
		}
	]
}`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleLesson))
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != "lesson-1" || len(m.Activities) != 2 {
		t.Fatalf("manifest = %+v", m)
	}
	if len(m.InitState) != 1 || m.InitState[0].Target != "session.tutorialScore" {
		t.Errorf("InitState = %+v", m.InitState)
	}
	if !m.Activities[1].Custom.CombineFeedback {
		t.Error("custom flags not decoded")
	}
	if len(m.Activities[1].Rules) != 2 {
		t.Errorf("rules = %+v", m.Activities[1].Rules)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"not json", "{nope", "invalid JSON"},
		{"missing id", `{"activities": [{"id": "a"}]}`, "validation failed"},
		{"no activities", `{"id": "x", "activities": []}`, "validation failed"},
		{"unnamed rule", `{"id": "x", "activities": [{"id": "a", "rules": [{"priority": 1}]}]}`, "validation failed"},
		{
			"duplicate activity ids",
			`{"id": "x", "activities": [{"id": "a"}, {"id": "a"}]}`,
			"duplicate activity id",
		},
		{
			"unknown action type",
			`{"id": "x", "activities": [{"id": "a", "rules": [{"name": "r", "actions": [{"type": "warp", "params": {}}]}]}]}`,
			"unknown action type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestTreeAndTreeFor(t *testing.T) {
	m, err := Parse([]byte(sampleLesson))
	if err != nil {
		t.Fatal(err)
	}

	tree := m.Tree()
	if len(tree) != 2 || tree[0].ID != "intro" || tree[1].ID != "q-1" {
		t.Fatalf("Tree = %+v", tree.IDs())
	}

	chain, err := m.TreeFor("intro")
	if err != nil {
		t.Fatal(err)
	}
	if len(chain) != 1 || chain[0].ID != "intro" {
		t.Errorf("TreeFor(intro) = %v", chain.IDs())
	}

	chain, err = m.TreeFor("q-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(chain) != 2 {
		t.Errorf("TreeFor(q-1) = %v", chain.IDs())
	}

	if _, err := m.TreeFor("nope"); err == nil {
		t.Error("TreeFor(nope) should fail")
	}
}

func TestRuleSet(t *testing.T) {
	m, err := Parse([]byte(sampleLesson))
	if err != nil {
		t.Fatal(err)
	}
	set := m.RuleSet()
	if len(set) != 2 {
		t.Fatalf("set = %v", set)
	}
	if set["q-1"] == nil || set["intro"] == nil {
		t.Error("missing engines")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson.json")
	if err := os.WriteFile(path, []byte(sampleLesson), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.ID != "lesson-1" {
		t.Errorf("ID = %q", m.ID)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file should fail")
	}
}
