// Package rules evaluates authored adaptivity rules against the session
// environment, producing the rule-result batches the check reducer consumes.
// This is the delivery-local engine used in preview; a hosted rule engine
// can replace it behind the same session interface.
package rules

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jtrask/stagehand/internal/check"
)

// Rule is one authored adaptivity rule: a conjunction of conditions plus the
// actions that fire when they all hold.
type Rule struct {
	ID         string
	Name       string
	Priority   int
	Correct    bool
	Default    bool
	Disabled   bool
	Conditions []string
	Actions    []check.Action
}

type ruleWire struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Priority   int             `json:"priority"`
	Correct    bool            `json:"correct"`
	Default    bool            `json:"default"`
	Disabled   bool            `json:"disabled"`
	Conditions []string        `json:"conditions"`
	Actions    json.RawMessage `json:"actions"`
}

// UnmarshalJSON decodes a rule, resolving its actions into closed variants.
func (r *Rule) UnmarshalJSON(data []byte) error {
	var w ruleWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.ID = w.ID
	r.Name = w.Name
	r.Priority = w.Priority
	r.Correct = w.Correct
	r.Default = w.Default
	r.Disabled = w.Disabled
	r.Conditions = w.Conditions
	if len(w.Actions) > 0 {
		actions, err := check.UnmarshalActions(w.Actions)
		if err != nil {
			return fmt.Errorf("rule %q: %w", w.Name, err)
		}
		r.Actions = actions
	}
	return nil
}

// Engine holds the rules for one activity, ordered by priority (stable for
// equal priorities, preserving authored order).
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine over the given rules.
func NewEngine(rules []Rule) *Engine {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return &Engine{rules: sorted}
}
