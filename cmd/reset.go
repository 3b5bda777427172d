package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the event store",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "nothing to reset: %s does not exist\n", dbPath)
			return nil
		}
		if !resetForce {
			return fmt.Errorf("refusing to delete %s without --yes", dbPath)
		}
		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "yes", false, "Confirm deletion")
}
