package cmd

import (
	"fmt"
	"sort"

	"github.com/jtrask/stagehand/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <session-id>",
	Short: "Show check statistics from the event store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("init event repo: %w", err)
		}

		stats, err := events.SessionCheckStats(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "session %s\n", args[0])
		fmt.Fprintf(out, "  checks:  %d\n", stats.Total)
		fmt.Fprintf(out, "  correct: %d\n", stats.Correct)
		if stats.Total > 0 {
			fmt.Fprintf(out, "  accuracy: %.0f%%\n", 100*float64(stats.Correct)/float64(stats.Total))
		}

		ids := make([]string, 0, len(stats.ByActivity))
		for id := range stats.ByActivity {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			acc, err := events.CheckAccuracy(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("accuracy for %s: %w", id, err)
			}
			fmt.Fprintf(out, "  %s: %d checks, %.0f%% correct\n", id, stats.ByActivity[id], 100*acc)
		}
		return nil
	},
}
