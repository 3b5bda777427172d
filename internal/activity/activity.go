// Package activity models the delivery-time activity tree: the ancestor
// chain of layered/nested screens currently in play, each owning an ordered
// layout of interactive parts. Part ids are unique only within their owning
// activity, which is why every stage variable must be resolved to an
// owner-qualified path before it touches the session environment.
package activity

import "errors"

// ErrAmbiguousPart reports a part id declared by two different activities in
// the same tree. The authored model promises this never happens; when it
// does, scope resolution refuses to guess an owner.
var ErrAmbiguousPart = errors.New("part id owned by more than one activity in tree")

// Part is an interactive sub-component of an Activity.
type Part struct {
	ID     string         `json:"id"`
	Type   string         `json:"type,omitempty"`
	Custom map[string]any `json:"custom,omitempty"`
}

// Content holds the ordered part layout of an activity.
type Content struct {
	PartsLayout []Part `json:"partsLayout"`
}

// Custom is the authored configuration bag of an activity.
type Custom struct {
	CombineFeedback  bool   `json:"combineFeedback,omitempty"`
	MainBtnLabel     string `json:"mainBtnLabel,omitempty"`
	CheckButtonLabel string `json:"checkButtonLabel,omitempty"`
	ShowCheckBtn     bool   `json:"showCheckBtn,omitempty"`
	MaxAttempt       int    `json:"maxAttempt,omitempty"`
}

// Activity is one node of the tree. Immutable during a check cycle; the
// whole tree is swapped on navigation.
type Activity struct {
	ID      string  `json:"id"`
	Content Content `json:"content"`
	Custom  Custom  `json:"custom"`
}

// Tree is the active ancestor chain, outermost layer first with the current
// activity last.
type Tree []*Activity

// IDs returns the activity ids in tree order.
func (t Tree) IDs() []string {
	ids := make([]string, len(t))
	for i, a := range t {
		ids[i] = a.ID
	}
	return ids
}

// Find returns the activity with the given id, or nil.
func (t Tree) Find(id string) *Activity {
	for _, a := range t {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// OwnerOf returns the activity whose parts layout declares partID. A part id
// present in two activities returns ErrAmbiguousPart; a part id present in
// none returns nil, nil (out-of-tree namespaces are a valid miss).
func (t Tree) OwnerOf(partID string) (*Activity, error) {
	var owner *Activity
	for _, a := range t {
		for _, p := range a.Content.PartsLayout {
			if p.ID != partID {
				continue
			}
			if owner != nil && owner.ID != a.ID {
				return nil, ErrAmbiguousPart
			}
			owner = a
			break
		}
	}
	return owner, nil
}
