// Package check turns a batch of fired rule results into one coherent
// outcome: a mutation change set, a feedback list, and a navigation
// decision, with scoring kept consistent whether or not any rule touched it.
package check

import (
	"encoding/json"
	"fmt"

	"github.com/jtrask/stagehand/internal/scripting"
)

// Action is the closed set of things a fired rule can do. The concrete
// types are FeedbackAction, MutateStateAction and NavigationAction;
// switches over Action handle all three and treat anything else as a
// malformed result.
type Action interface {
	isAction()
}

// Feedback is an authored feedback message surfaced to the learner.
type Feedback struct {
	ID           string `json:"id,omitempty"`
	Message      string `json:"message"`
	MainBtnLabel string `json:"mainBtnLabel,omitempty"`
}

// FeedbackAction shows feedback to the learner.
type FeedbackAction struct {
	Feedback Feedback
}

// MutateStateAction writes a variable. Target may still be unscoped
// ("stage.part.key") when the action arrives; the reducer qualifies it.
type MutateStateAction struct {
	Target     string
	Operator   string
	Value      any
	TargetType string
}

// NavigationAction moves the learner to another activity, or to one of the
// relative targets next/prev/first/last.
type NavigationAction struct {
	Target string
}

func (FeedbackAction) isAction()    {}
func (MutateStateAction) isAction() {}
func (NavigationAction) isAction()  {}

// Operation converts the action into an apply operation with the given
// resolved target and value.
func (a MutateStateAction) Operation(target string, value any) scripting.ApplyOperation {
	return scripting.ApplyOperation{
		Target:     target,
		Operator:   a.Operator,
		Value:      value,
		TargetType: a.TargetType,
	}
}

// RuleResult is one fired rule as produced by the rule engine: whether the
// rule marks the attempt correct, and the ordered actions it carries.
type RuleResult struct {
	Name    string
	Correct bool
	Actions []Action
}

// rawAction is the wire form of an action in authored content.
type rawAction struct {
	Type   string `json:"type"`
	Params struct {
		Feedback   *Feedback `json:"feedback,omitempty"`
		Target     string    `json:"target,omitempty"`
		Operator   string    `json:"operator,omitempty"`
		Value      any       `json:"value,omitempty"`
		TargetType string    `json:"targetType,omitempty"`
		// legacy content carries the type hint under "type"
		ValueType string `json:"type,omitempty"`
	} `json:"params"`
}

// UnmarshalActions decodes a JSON action list into closed variants.
// Unknown action kinds are an error rather than a silent drop.
func UnmarshalActions(data []byte) ([]Action, error) {
	var raws []rawAction
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode actions: %w", err)
	}
	actions := make([]Action, 0, len(raws))
	for _, r := range raws {
		switch r.Type {
		case "feedback":
			fb := Feedback{}
			if r.Params.Feedback != nil {
				fb = *r.Params.Feedback
			}
			actions = append(actions, FeedbackAction{Feedback: fb})
		case "mutateState":
			tt := r.Params.TargetType
			if tt == "" {
				tt = r.Params.ValueType
			}
			actions = append(actions, MutateStateAction{
				Target:     r.Params.Target,
				Operator:   r.Params.Operator,
				Value:      r.Params.Value,
				TargetType: tt,
			})
		case "navigation":
			actions = append(actions, NavigationAction{Target: r.Params.Target})
		default:
			return nil, fmt.Errorf("unknown action type %q", r.Type)
		}
	}
	return actions, nil
}

// hasNavigation reports whether the result carries any navigation action.
func (r RuleResult) hasNavigation() bool {
	for _, a := range r.Actions {
		if _, ok := a.(NavigationAction); ok {
			return true
		}
	}
	return false
}

// navigationTargets collects the distinct navigation targets in the result.
func (r RuleResult) navigationTargets() []string {
	var targets []string
	for _, a := range r.Actions {
		nav, ok := a.(NavigationAction)
		if !ok {
			continue
		}
		seen := false
		for _, t := range targets {
			if t == nav.Target {
				seen = true
				break
			}
		}
		if !seen {
			targets = append(targets, nav.Target)
		}
	}
	return targets
}
