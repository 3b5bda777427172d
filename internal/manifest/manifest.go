// Package manifest loads authored lesson files: the activity tree, the
// per-activity rules and the initial variable state, validated against a
// JSON schema before decoding.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/rules"
	"github.com/jtrask/stagehand/internal/scripting"
)

// ManifestActivity is one authored activity plus its adaptivity rules.
type ManifestActivity struct {
	ID      string           `json:"id"`
	Content activity.Content `json:"content"`
	Custom  activity.Custom  `json:"custom"`
	Rules   []rules.Rule     `json:"rules"`
}

// Manifest is a complete authored lesson.
type Manifest struct {
	ID         string                     `json:"id"`
	Title      string                     `json:"title"`
	InitState  []scripting.ApplyOperation `json:"initState"`
	Activities []ManifestActivity         `json:"activities"`
}

// Load reads, validates and decodes a lesson manifest file.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw lesson JSON.
func Parse(raw []byte) (*Manifest, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	seen := make(map[string]bool, len(m.Activities))
	for _, a := range m.Activities {
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate activity id %q", a.ID)
		}
		seen[a.ID] = true
	}
	return &m, nil
}

// Tree returns the activity chain in authored order, outermost first.
func (m *Manifest) Tree() activity.Tree {
	tree := make(activity.Tree, len(m.Activities))
	for i, a := range m.Activities {
		tree[i] = &activity.Activity{ID: a.ID, Content: a.Content, Custom: a.Custom}
	}
	return tree
}

// TreeFor returns the ancestor chain ending at the given activity, or an
// error when the id is not in the manifest.
func (m *Manifest) TreeFor(activityID string) (activity.Tree, error) {
	for i, a := range m.Activities {
		if a.ID == activityID {
			return m.Tree()[:i+1], nil
		}
	}
	return nil, fmt.Errorf("activity %q not in manifest %q", activityID, m.ID)
}

// RuleSet builds the per-activity rule engines for the lesson.
func (m *Manifest) RuleSet() rules.Set {
	set := make(rules.Set, len(m.Activities))
	for _, a := range m.Activities {
		set.Add(a.ID, rules.NewEngine(a.Rules))
	}
	return set
}
