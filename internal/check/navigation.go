package check

// NavKind classifies a navigation target.
type NavKind int

const (
	// NavNone means the cycle produced no visible navigation.
	NavNone NavKind = iota
	NavNext
	NavPrev
	NavFirst
	NavLast
	// NavActivity targets an explicit activity/sequence id.
	NavActivity
)

func (k NavKind) String() string {
	switch k {
	case NavNext:
		return "next"
	case NavPrev:
		return "prev"
	case NavFirst:
		return "first"
	case NavLast:
		return "last"
	case NavActivity:
		return "activity"
	default:
		return "none"
	}
}

// NavigationDecision is the resolved navigation outcome of a check cycle.
// Target is set only for NavActivity.
type NavigationDecision struct {
	Kind   NavKind
	Target string
}

// ResolveTarget maps an authored navigation target onto the fixed enum.
// Anything that is not a relative keyword is an explicit activity id.
func ResolveTarget(target string) NavigationDecision {
	switch target {
	case "next":
		return NavigationDecision{Kind: NavNext}
	case "prev":
		return NavigationDecision{Kind: NavPrev}
	case "first":
		return NavigationDecision{Kind: NavFirst}
	case "last":
		return NavigationDecision{Kind: NavLast}
	default:
		return NavigationDecision{Kind: NavActivity, Target: target}
	}
}
