package cmd

import (
	"fmt"
	"strings"

	"github.com/jtrask/stagehand/internal/check"
	"github.com/jtrask/stagehand/internal/config"
	"github.com/jtrask/stagehand/internal/manifest"
	"github.com/jtrask/stagehand/internal/scripting"
	"github.com/jtrask/stagehand/internal/session"
	"github.com/spf13/cobra"
)

var checkSeeds []string

var checkCmd = &cobra.Command{
	Use:   "check <lesson.json> <activity-id>",
	Short: "Run one check cycle against an activity and print the outcome",
	Long: "Loads the lesson, seeds the session environment (initState plus any " +
		"--set overrides), fires a single check cycle for the given activity " +
		"and prints the reduced outcome. Nothing is persisted.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		m, err := manifest.Load(args[0])
		if err != nil {
			return fmt.Errorf("load lesson: %w", err)
		}
		activityID := args[1]

		tree, err := m.TreeFor(activityID)
		if err != nil {
			return err
		}

		disp := &session.CollectDispatcher{}
		sess := session.New(session.Options{
			LessonID:     m.ID,
			Rules:        m.RuleSet(),
			Dispatcher:   disp,
			CheckTimeout: cfg.CheckTimeout(),
			InitTimeout:  cfg.InitTimeout(),
		})

		ctx := cmd.Context()
		if err := sess.Start(ctx); err != nil {
			return err
		}
		for _, d := range sess.Seed(m.InitState) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: seed state: %v\n", d)
		}
		for _, d := range sess.Seed(parseSeeds(checkSeeds)) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: --set: %v\n", d)
		}

		if err := sess.SetActivityTree(tree); err != nil {
			return err
		}
		for _, a := range tree {
			for _, p := range a.Content.PartsLayout {
				sess.PartReady(a.ID, p.ID)
			}
		}
		if err := sess.WaitReady(ctx, activityID); err != nil {
			return err
		}

		outcome, err := sess.OnCheckTriggered(ctx, activityID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "outcome: %s\n", outcome.Kind)
		fmt.Fprintf(out, "correct: %t\n", outcome.Correct)
		fmt.Fprintf(out, "score:   %g\n", outcome.Score)
		for _, f := range outcome.Feedbacks {
			fmt.Fprintf(out, "feedback: %s\n", f.Message)
		}
		if outcome.Kind == check.OutcomeNavigateOnly {
			fmt.Fprintf(out, "navigate: %s %s\n", outcome.Navigation.Kind, outcome.Navigation.Target)
		}
		if outcome.PendingNavigation != "" {
			fmt.Fprintf(out, "pending navigation: %s\n", outcome.PendingNavigation)
		}
		for target, value := range disp.Changes {
			fmt.Fprintf(out, "changed: %s = %v\n", target, value)
		}
		for _, e := range outcome.Errors {
			fmt.Fprintf(out, "error: %v\n", e)
		}
		return nil
	},
}

// parseSeeds turns --set key=value flags into assignment operations. Values
// stay untyped strings; the environment infers kinds on write.
func parseSeeds(seeds []string) []scripting.ApplyOperation {
	ops := make([]scripting.ApplyOperation, 0, len(seeds))
	for _, s := range seeds {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			continue
		}
		ops = append(ops, scripting.ApplyOperation{
			Target:   k,
			Operator: scripting.OpAssign,
			Value:    v,
		})
	}
	return ops
}

func init() {
	checkCmd.Flags().StringArrayVar(&checkSeeds, "set", nil, "Seed a session variable before the check (key=value, repeatable)")
}
