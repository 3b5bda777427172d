package session

import "github.com/jtrask/stagehand/internal/check"

// Dispatcher is the external state store fed by check outcomes. The session
// only emits decisions; navigation and rendering happen in collaborators.
type Dispatcher interface {
	// SetScore reports the post-mutation session score, every cycle.
	SetScore(score float64)

	// SetFeedbacks replaces the feedback list to display, with the
	// correctness flag driving its styling.
	SetFeedbacks(feedbacks []check.Feedback, correct bool)

	// SetMutationChanges reports the final values of mutated variables so
	// part components can refresh.
	SetMutationChanges(changes map[string]any)

	// SetNextActivity records a navigation target queued behind feedback.
	SetNextActivity(target string)

	// Navigate performs an immediate navigation decision.
	Navigate(decision check.NavigationDecision)
}

// CollectDispatcher records every command it receives. Used by the CLI
// runner and by tests; a live host replaces it with its own store binding.
type CollectDispatcher struct {
	Score        float64
	Feedbacks    []check.Feedback
	Correct      bool
	Changes      map[string]any
	NextActivity string
	Navigations  []check.NavigationDecision
}

func (d *CollectDispatcher) SetScore(score float64) { d.Score = score }

func (d *CollectDispatcher) SetFeedbacks(feedbacks []check.Feedback, correct bool) {
	d.Feedbacks = feedbacks
	d.Correct = correct
}

func (d *CollectDispatcher) SetMutationChanges(changes map[string]any) { d.Changes = changes }

func (d *CollectDispatcher) SetNextActivity(target string) { d.NextActivity = target }

func (d *CollectDispatcher) Navigate(decision check.NavigationDecision) {
	d.Navigations = append(d.Navigations, decision)
}
