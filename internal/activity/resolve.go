package activity

import (
	"strings"

	"github.com/jtrask/stagehand/internal/scripting"
)

// ResolvePath rewrites an unscoped variable path to its owner-qualified
// form. Paths already carrying a "|" qualifier come back unchanged, which
// makes resolution idempotent. The owner is the activity whose parts layout
// declares the path's second segment; when none does (an external namespace
// like app.* variables), the path passes through untouched.
func ResolvePath(path string, tree Tree) (string, error) {
	if strings.Contains(path, "|") {
		return path, nil
	}
	segs := strings.Split(path, ".")
	if len(segs) < 2 {
		return path, nil
	}
	owner, err := tree.OwnerOf(segs[1])
	if err != nil {
		return path, err
	}
	if owner == nil {
		return path, nil
	}
	return owner.ID + "|" + path, nil
}

// ScopeTarget qualifies a mutation target. Only stage.* targets are scoped;
// when no activity in the tree owns the part, the target is attributed to
// the current activity so the write still lands somewhere observable.
func ScopeTarget(target string, tree Tree, currentID string) (string, error) {
	if !strings.HasPrefix(target, "stage") {
		return target, nil
	}
	resolved, err := ResolvePath(target, tree)
	if err != nil {
		return target, err
	}
	if resolved == target && !strings.Contains(target, "|") && currentID != "" {
		return currentID + "|" + target, nil
	}
	return resolved, nil
}

// ScopeValue rewrites the variable references inside an operation value so
// that authored cross-references resolve against their owning activity.
//
// Three shapes are handled:
//   - templated text: each {path} placeholder with three or more segments is
//     rewritten to {owner|path}; placeholders already qualified with "|" are
//     explicit cross-activity references and are left alone
//   - a "bind to" operand: the whole value is a bare path to qualify
//   - anything else passes through unchanged
func ScopeValue(value string, operator string, tree Tree) (string, error) {
	if scripting.IsTemplated(value) {
		out := value
		for _, ph := range scripting.Placeholders(value) {
			inner := ph[1 : len(ph)-1]
			if strings.Contains(inner, "|") {
				continue
			}
			if len(strings.Split(inner, ".")) < 3 {
				continue
			}
			resolved, err := ResolvePath(inner, tree)
			if err != nil {
				return value, err
			}
			if resolved == inner {
				continue
			}
			out = strings.Replace(out, ph, "{"+resolved+"}", 1)
		}
		return out, nil
	}

	if operator == scripting.OpBind || operator == scripting.OpAnchor {
		return ResolvePath(value, tree)
	}
	return value, nil
}
