package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/jtrask/stagehand/internal/check"
)

// consoleDispatcher renders check-cycle commands as plain lines on Out.
type consoleDispatcher struct {
	out io.Writer
}

func (d *consoleDispatcher) SetScore(score float64) {
	fmt.Fprintf(d.out, "  score: %g\n", score)
}

func (d *consoleDispatcher) SetFeedbacks(feedbacks []check.Feedback, correct bool) {
	verdict := "incorrect"
	if correct {
		verdict = "correct"
	}
	for _, f := range feedbacks {
		fmt.Fprintf(d.out, "  feedback (%s): %s\n", verdict, f.Message)
	}
}

func (d *consoleDispatcher) SetMutationChanges(changes map[string]any) {
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(d.out, "  set %s = %v\n", k, changes[k])
	}
}

func (d *consoleDispatcher) SetNextActivity(target string) {
	fmt.Fprintf(d.out, "  next activity queued: %s\n", target)
}

func (d *consoleDispatcher) Navigate(decision check.NavigationDecision) {
	if decision.Target != "" {
		fmt.Fprintf(d.out, "  navigate: %s (%s)\n", decision.Kind, decision.Target)
		return
	}
	fmt.Fprintf(d.out, "  navigate: %s\n", decision.Kind)
}
