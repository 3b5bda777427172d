package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jtrask/stagehand/internal/manifest"
)

const walkLesson = `{
	"id": "walk-1",
	"activities": [
		{
			"id": "intro",
			"content": {"partsLayout": [{"id": "banner"}]},
			"rules": [
				{"name": "advance", "correct": true, "actions": [{"type": "navigation", "params": {"target": "next"}}]}
			]
		},
		{
			"id": "q-1",
			"content": {"partsLayout": [{"id": "input"}]},
			"rules": [
				{"name": "wait", "actions": [{"type": "feedback", "params": {"feedback": {"message": "answer the question"}}}]}
			]
		}
	]
}`

func TestRunWalksUntilFeedback(t *testing.T) {
	m, err := manifest.Parse([]byte(walkLesson))
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Run(context.Background(), Options{Manifest: m, Out: &out}); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	for _, want := range []string{"[intro]", "[q-1]", "answer the question", "lesson stopped at q-1"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunNavigationCycleCapped(t *testing.T) {
	cycle := `{
		"id": "loop",
		"activities": [
			{
				"id": "a",
				"content": {"partsLayout": [{"id": "p"}]},
				"rules": [{"name": "go-b", "actions": [{"type": "navigation", "params": {"target": "b"}}]}]
			},
			{
				"id": "b",
				"content": {"partsLayout": [{"id": "p"}]},
				"rules": [{"name": "go-a", "actions": [{"type": "navigation", "params": {"target": "a"}}]}]
			}
		]
	}`
	m, err := manifest.Parse([]byte(cycle))
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err = Run(context.Background(), Options{Manifest: m, Out: &out})
	if err == nil || !strings.Contains(err.Error(), "did not settle") {
		t.Fatalf("err = %v, want the step cap", err)
	}
}

func TestRunEmptyManifest(t *testing.T) {
	if err := Run(context.Background(), Options{Manifest: nil, Out: &bytes.Buffer{}}); err == nil {
		t.Error("nil manifest should fail")
	}
}
